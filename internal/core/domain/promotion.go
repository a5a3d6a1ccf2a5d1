package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PromotionStatus is the lifecycle state of a promotion. Promotions are never
// deleted, only moved between states.
type PromotionStatus string

const (
	PromotionActive  PromotionStatus = "active"
	PromotionPaused  PromotionStatus = "paused"
	PromotionExpired PromotionStatus = "expired"
)

// Promotion is a promoter's tracked link for a server.
type Promotion struct {
	ID         int64
	ServerID   int64
	PromoterID int64
	Code       string
	Link       string
	Status     PromotionStatus
	ExpiresAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Usable reports whether the promotion accepts clicks at now.
func (p *Promotion) Usable(now time.Time) bool {
	if p.Status != PromotionActive {
		return false
	}
	return p.ExpiresAt == nil || now.Before(*p.ExpiresAt)
}

// NewPromotionCode returns a fresh 16 character code. Codes are opaque and
// carry no meaning for humans.
func NewPromotionCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}
