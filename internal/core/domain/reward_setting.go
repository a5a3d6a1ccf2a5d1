package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/goccy/go-json"
)

// ConditionKind names a trigger condition. Every key found in a stored
// trigger document maps to one of the known kinds or to ConditionCustom.
type ConditionKind string

const (
	ConditionFirstRegistration  ConditionKind = "is_first_registration"
	ConditionReferralValid      ConditionKind = "referral_valid"
	ConditionReferredUserActive ConditionKind = "referred_user_active"
	ConditionUserLevelMin       ConditionKind = "user_level_min"
	// ConditionAccountAgeMin is expressed in days.
	ConditionAccountAgeMin ConditionKind = "account_age_min"
	ConditionCustom        ConditionKind = "custom"
)

// Condition is one predicate of a trigger. Flag is set for boolean kinds,
// Number for minimum kinds, Key and Value for custom conditions.
type Condition struct {
	Kind   ConditionKind
	Flag   bool
	Number int64
	Key    string
	Value  json.RawMessage
}

// Name returns the document key of the condition.
func (c Condition) Name() string {
	if c.Kind == ConditionCustom {
		return c.Key
	}
	return string(c.Kind)
}

// TriggerCondition is the structured predicate a reward setting requires.
// Its persisted form is {"event": "...", "conditions": {"key": value}}.
type TriggerCondition struct {
	Event      string
	Conditions []Condition
}

type triggerDocument struct {
	Event      string                     `json:"event"`
	Conditions map[string]json.RawMessage `json:"conditions,omitempty"`
}

// UnmarshalJSON decodes the stored document. Known keys whose value has the
// wrong type are kept as custom conditions so they can never pass silently.
func (t *TriggerCondition) UnmarshalJSON(data []byte) error {
	var doc triggerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	t.Event = doc.Event
	t.Conditions = make([]Condition, 0, len(doc.Conditions))
	for _, key := range slices.Sorted(maps.Keys(doc.Conditions)) {
		t.Conditions = append(t.Conditions, parseCondition(key, doc.Conditions[key]))
	}
	return nil
}

// MarshalJSON encodes the trigger back into its document form.
func (t TriggerCondition) MarshalJSON() ([]byte, error) {
	doc := triggerDocument{Event: t.Event}
	if len(t.Conditions) > 0 {
		doc.Conditions = make(map[string]json.RawMessage, len(t.Conditions))
	}
	for _, c := range t.Conditions {
		var (
			raw []byte
			err error
		)
		switch c.Kind {
		case ConditionFirstRegistration, ConditionReferralValid, ConditionReferredUserActive:
			raw, err = json.Marshal(c.Flag)
		case ConditionUserLevelMin, ConditionAccountAgeMin:
			raw, err = json.Marshal(c.Number)
		default:
			raw = c.Value
			if len(raw) == 0 {
				raw = []byte("null")
			}
		}
		if err != nil {
			return nil, err
		}
		doc.Conditions[c.Name()] = raw
	}
	return json.Marshal(doc)
}

func parseCondition(key string, value json.RawMessage) Condition {
	kind := ConditionKind(key)
	switch kind {
	case ConditionFirstRegistration, ConditionReferralValid, ConditionReferredUserActive:
		var flag bool
		if err := json.Unmarshal(value, &flag); err == nil {
			return Condition{Kind: kind, Flag: flag}
		}
	case ConditionUserLevelMin, ConditionAccountAgeMin:
		var n int64
		if err := json.Unmarshal(value, &n); err == nil {
			return Condition{Kind: kind, Number: n}
		}
	}
	return Condition{Kind: ConditionCustom, Key: key, Value: value}
}

// Multipliers configures the bonuses applied on top of the base amount.
// A zero multiplier disables the corresponding bonus.
type Multipliers struct {
	FirstTime    float64 `json:"first_time,omitempty"`
	Chain        float64 `json:"chain,omitempty"`
	SpecialEvent float64 `json:"special_event,omitempty"`
	RandomBonus  bool    `json:"random_bonus,omitempty"`
}

// RewardConfig is the stored reward_config document.
type RewardConfig struct {
	BaseAmount         float64        `json:"base_amount"`
	Category           string         `json:"category,omitempty"`
	Multipliers        Multipliers    `json:"multipliers"`
	DistributionMethod string         `json:"distribution_method,omitempty"`
	DistributionConfig map[string]any `json:"distribution_config,omitempty"`
}

// LimitConfig is the stored limit_config document. Zero means unlimited for
// caps and "use the engine default" for the cooldown.
type LimitConfig struct {
	PerUser         int64 `json:"per_user,omitempty"`
	PerDay          int64 `json:"per_day,omitempty"`
	PerWeek         int64 `json:"per_week,omitempty"`
	PerMonth        int64 `json:"per_month,omitempty"`
	CooldownSeconds int64 `json:"cooldown_seconds,omitempty"`
}

// RewardSetting is a configured reward rule of a server.
type RewardSetting struct {
	ID             int64
	ServerID       int64
	SettingType    string
	RewardType     *string
	Trigger        TriggerCondition
	Reward         RewardConfig
	Limits         LimitConfig
	AutoApprove    bool
	AutoDistribute bool
	Priority       int
	Active         bool
	UsageCount     int64
	ErrorCount     int64
	LastUsedAt     *time.Time
	LastError      string
	// Malformed holds the decode error of a stored document. A malformed
	// setting is loaded but never evaluated.
	Malformed string
}

// Invalid returns a validation error when a stored document of the setting
// could not be decoded.
func (s *RewardSetting) Invalid() error {
	if s.Malformed == "" {
		return nil
	}
	return Validation("reward setting %d is malformed: %s", s.ID, s.Malformed)
}

// Triggers reports whether event evaluates the setting. A setting whose
// trigger could not be decoded has no event and is triggered by every
// event, so its failure is reported instead of dropped.
func (s *RewardSetting) Triggers(event string) bool {
	if s.Trigger.Event == "" && s.Malformed != "" {
		return true
	}
	return s.Trigger.Event == event
}

// Type returns the reward type of the setting, falling back to its setting
// type when no explicit scope is configured.
func (s *RewardSetting) Type() string {
	if s.RewardType != nil && *s.RewardType != "" {
		return *s.RewardType
	}
	return s.SettingType
}
