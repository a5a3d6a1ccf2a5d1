package domain

import "time"

// UTM holds the campaign attributes carried on a tracked link.
type UTM struct {
	Source   string `json:"utm_source,omitempty"`
	Medium   string `json:"utm_medium,omitempty"`
	Campaign string `json:"utm_campaign,omitempty"`
	Term     string `json:"utm_term,omitempty"`
	Content  string `json:"utm_content,omitempty"`
}

// Geo is a best-effort location for an IP address.
type Geo struct {
	Country string `json:"country,omitempty"`
	City    string `json:"city,omitempty"`
}

// Click is an accepted click on a promotion link. It is written once and
// later flipped to converted at most once.
type Click struct {
	ID              int64
	PromotionID     int64
	ServerID        int64
	PromoterID      int64
	IP              string
	Fingerprint     string
	UserAgent       string
	Referrer        string
	UTM             UTM
	Country         string
	City            string
	IsUnique        bool
	IsConverted     bool
	ConvertedUserID *int64
	ConvertedAt     *time.Time
	CreatedAt       time.Time
}
