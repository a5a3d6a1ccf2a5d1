package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// trackClickRequest is a click reported by a trusted forwarder, e.g. a bot
// resolving invite links on behalf of a visitor. Missing visitor fields
// are taken from the request itself. IP, Fingerprint and Country are
// ignored unless the forwarder is trusted.
type trackClickRequest struct {
	Code           string     `json:"code" validate:"required,max=64"`
	IP             string     `json:"ip" validate:"omitempty,ip"`
	UserAgent      string     `json:"user_agent" validate:"max=1024"`
	AcceptLanguage string     `json:"accept_language" validate:"max=256"`
	Referrer       string     `json:"referrer" validate:"max=2048"`
	Fingerprint    string     `json:"fingerprint" validate:"omitempty,len=64,hexadecimal"`
	Country        string     `json:"country" validate:"omitempty,len=2,alpha"`
	UTM            domain.UTM `json:"utm"`
}

type trackClickResponse struct {
	Outcome     port.Outcome `json:"outcome"`
	ClickID     int64        `json:"click_id,omitempty"`
	RedirectURL string       `json:"redirect_url,omitempty"`
	IsUnique    bool         `json:"is_unique"`
	Reason      string       `json:"reason,omitempty"`
}

type conversionRequest struct {
	UserID         int64                    `json:"user_id" validate:"required,gt=0"`
	IP             string                   `json:"ip" validate:"omitempty,ip"`
	Fingerprint    string                   `json:"fingerprint" validate:"omitempty,len=64,hexadecimal"`
	UserAgent      string                   `json:"user_agent" validate:"max=1024"`
	AcceptLanguage string                   `json:"accept_language" validate:"max=256"`
	Event          string                   `json:"event" validate:"max=64"`
	Context        domain.EvaluationContext `json:"context"`
}

type conversionDTO struct {
	ClickID     int64 `json:"click_id"`
	PromotionID int64 `json:"promotion_id"`
}

type settingErrorDTO struct {
	SettingID   int64  `json:"setting_id,omitempty"`
	PromotionID int64  `json:"promotion_id,omitempty"`
	Error       string `json:"error"`
}

type conversionResponse struct {
	Outcome     port.Outcome      `json:"outcome"`
	Reason      string            `json:"reason,omitempty"`
	Conversions []conversionDTO   `json:"conversions"`
	Rewards     []rewardDTO       `json:"rewards"`
	Errors      []settingErrorDTO `json:"errors,omitempty"`
}

// evaluationRequest carries the user and extra facts for a reward
// evaluation.
type evaluationRequest struct {
	UserID  int64                    `json:"user_id" validate:"required,gt=0"`
	Context domain.EvaluationContext `json:"context"`
}

type transitionRequest struct {
	Reason string `json:"reason" validate:"max=512"`
}

type recalculateRequest struct {
	Context domain.EvaluationContext `json:"context"`
}

type rewardDTO struct {
	ID                 int64                 `json:"id"`
	ServerID           int64                 `json:"server_id"`
	UserID             int64                 `json:"user_id"`
	PromotionID        *int64                `json:"promotion_id,omitempty"`
	ClickID            *int64                `json:"click_id,omitempty"`
	SettingID          int64                 `json:"setting_id"`
	Type               string                `json:"type"`
	Category           string                `json:"category,omitempty"`
	Amount             int64                 `json:"amount"`
	Status             domain.RewardStatus   `json:"status"`
	Priority           int                   `json:"priority"`
	DistributionMethod string                `json:"distribution_method,omitempty"`
	Metadata           domain.RewardMetadata `json:"metadata"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
	ApprovedAt         *time.Time            `json:"approved_at,omitempty"`
	DistributedAt      *time.Time            `json:"distributed_at,omitempty"`
}

func toRewardDTO(r domain.Reward) rewardDTO {
	return rewardDTO{
		ID:                 r.ID,
		ServerID:           r.ServerID,
		UserID:             r.UserID,
		PromotionID:        r.PromotionID,
		ClickID:            r.ClickID,
		SettingID:          r.SettingID,
		Type:               r.Type,
		Category:           r.Category,
		Amount:             r.Amount,
		Status:             r.Status,
		Priority:           r.Priority,
		DistributionMethod: r.DistributionMethod,
		Metadata:           r.Metadata,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		ApprovedAt:         r.ApprovedAt,
		DistributedAt:      r.DistributedAt,
	}
}

func toRewardDTOs(rewards []domain.Reward) []rewardDTO {
	out := make([]rewardDTO, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, toRewardDTO(r))
	}
	return out
}

func toSettingErrorDTOs(errs []port.SettingError) []settingErrorDTO {
	if len(errs) == 0 {
		return nil
	}
	out := make([]settingErrorDTO, 0, len(errs))
	for _, e := range errs {
		out = append(out, settingErrorDTO{SettingID: e.SettingID, PromotionID: e.PromotionID, Error: e.Err})
	}
	return out
}

type skippedDTO struct {
	SettingID int64  `json:"setting_id"`
	Reason    string `json:"reason"`
}

type processResponse struct {
	Rewards []rewardDTO       `json:"rewards"`
	Skipped []skippedDTO      `json:"skipped"`
	Errors  []settingErrorDTO `json:"errors,omitempty"`
}

type previewResponse struct {
	SettingID  int64    `json:"setting_id"`
	Eligible   bool     `json:"eligible"`
	Reason     string   `json:"reason,omitempty"`
	Amount     int64    `json:"amount"`
	Multiplier float64  `json:"multiplier"`
	Bonuses    []string `json:"bonuses,omitempty"`
}

// pathID parses a positive int64 path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
