package domain

import (
	"net/netip"
	"strings"
	"time"
)

// VisitorContext describes the anonymous visitor behind a click. The HTTP
// layer builds it from the request and passes it down explicitly; nothing in
// the engine reads request state on its own.
type VisitorContext struct {
	IP             string
	UserAgent      string
	AcceptLanguage string
	Referrer       string
	UTM            UTM
	// FingerprintHint is a fingerprint computed upstream, e.g. by a client
	// script. It is used only when well formed.
	FingerprintHint string
	// CountryHint is a country code supplied by an edge proxy.
	CountryHint string
}

// NormalizeIP returns the canonical form of s, with IPv4-mapped IPv6
// addresses unmapped, or "" when s is not an IP.
func NormalizeIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}

// ConversionContext describes a conversion event for a known user. Reward
// carries extra evaluation context merged into every triggered evaluation.
type ConversionContext struct {
	IP             string
	Fingerprint    string
	UserAgent      string
	AcceptLanguage string
	Event          string
	Reward         EvaluationContext
}

// VisitorSession is the short-lived fingerprint to click mapping kept in the
// counter store to speed up attribution.
type VisitorSession struct {
	PromotionID int64     `json:"promotion_id"`
	ClickID     int64     `json:"click_id"`
	CreatedAt   time.Time `json:"created_at"`
}
