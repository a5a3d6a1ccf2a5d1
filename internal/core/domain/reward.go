package domain

import (
	"maps"
	"time"
)

// RewardStatus is the lifecycle state of a reward.
type RewardStatus string

const (
	RewardPending     RewardStatus = "pending"
	RewardApproved    RewardStatus = "approved"
	RewardDistributed RewardStatus = "distributed"
	RewardFailed      RewardStatus = "failed"
	RewardCancelled   RewardStatus = "cancelled"
)

// rewardTransitions lists the allowed next states per state. failed goes
// back to pending only through an explicit correction.
var rewardTransitions = map[RewardStatus][]RewardStatus{
	RewardPending:  {RewardApproved, RewardCancelled, RewardFailed},
	RewardApproved: {RewardDistributed, RewardFailed},
	RewardFailed:   {RewardPending},
}

// CanTransitionTo reports whether a reward in s may move to next.
func (s RewardStatus) CanTransitionTo(next RewardStatus) bool {
	for _, allowed := range rewardTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s accepts no further transitions.
func (s RewardStatus) Terminal() bool {
	return s == RewardDistributed || s == RewardCancelled
}

// Valid reports whether s is a known status.
func (s RewardStatus) Valid() bool {
	switch s {
	case RewardPending, RewardApproved, RewardDistributed, RewardFailed, RewardCancelled:
		return true
	}
	return false
}

// Reward is a computed reward for a user. Amount is in integer units of
// Category.
type Reward struct {
	ID                 int64
	ServerID           int64
	UserID             int64
	PromotionID        *int64
	ClickID            *int64
	SettingID          int64
	Type               string
	Category           string
	Amount             int64
	Status             RewardStatus
	Priority           int
	DistributionMethod string
	DistributionConfig map[string]any
	Metadata           RewardMetadata
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ApprovedAt         *time.Time
	DistributedAt      *time.Time
}

// RewardMetadata is the audit record stored with each reward. SettingID,
// Context and CalculatedAt are required for recalculation.
type RewardMetadata struct {
	SettingID      int64             `json:"setting_id"`
	Context        EvaluationContext `json:"context"`
	CalculatedAt   time.Time         `json:"calculated_at"`
	Multiplier     float64           `json:"multiplier"`
	Bonuses        []string          `json:"bonuses,omitempty"`
	OriginalAmount *int64            `json:"original_amount,omitempty"`
	RecalculatedAt *time.Time        `json:"recalculated_at,omitempty"`
	FailureReason  string            `json:"failure_reason,omitempty"`
}

// EvaluationContext is the input of a reward evaluation. Optional facts are
// pointers so that a missing fact is distinguishable from a false one.
type EvaluationContext struct {
	Event               string         `json:"event"`
	UserID              int64          `json:"user_id"`
	ServerID            int64          `json:"server_id"`
	PromotionID         *int64         `json:"promotion_id,omitempty"`
	ClickID             *int64         `json:"click_id,omitempty"`
	IsFirstRegistration *bool          `json:"is_first_registration,omitempty"`
	ReferralValid       *bool          `json:"referral_valid,omitempty"`
	ReferredUserActive  *bool          `json:"referred_user_active,omitempty"`
	UserLevel           *int           `json:"user_level,omitempty"`
	AccountCreatedAt    *time.Time     `json:"account_created_at,omitempty"`
	ReferralChainLength int            `json:"referral_chain_length,omitempty"`
	SpecialEvent        string         `json:"special_event,omitempty"`
	Attributes          map[string]any `json:"attributes,omitempty"`
}

// Merge returns c overlaid with every fact set in patch. Attributes are
// merged key by key.
func (c EvaluationContext) Merge(patch EvaluationContext) EvaluationContext {
	out := c
	if patch.Event != "" {
		out.Event = patch.Event
	}
	if patch.UserID != 0 {
		out.UserID = patch.UserID
	}
	if patch.ServerID != 0 {
		out.ServerID = patch.ServerID
	}
	if patch.PromotionID != nil {
		out.PromotionID = patch.PromotionID
	}
	if patch.ClickID != nil {
		out.ClickID = patch.ClickID
	}
	if patch.IsFirstRegistration != nil {
		out.IsFirstRegistration = patch.IsFirstRegistration
	}
	if patch.ReferralValid != nil {
		out.ReferralValid = patch.ReferralValid
	}
	if patch.ReferredUserActive != nil {
		out.ReferredUserActive = patch.ReferredUserActive
	}
	if patch.UserLevel != nil {
		out.UserLevel = patch.UserLevel
	}
	if patch.AccountCreatedAt != nil {
		out.AccountCreatedAt = patch.AccountCreatedAt
	}
	if patch.ReferralChainLength != 0 {
		out.ReferralChainLength = patch.ReferralChainLength
	}
	if patch.SpecialEvent != "" {
		out.SpecialEvent = patch.SpecialEvent
	}
	if len(patch.Attributes) > 0 {
		merged := make(map[string]any, len(c.Attributes)+len(patch.Attributes))
		maps.Copy(merged, c.Attributes)
		maps.Copy(merged, patch.Attributes)
		out.Attributes = merged
	}
	return out
}
