// Package kafka publishes reward distribution signals to a Kafka topic.
package kafka

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"promotrack/internal/config/configs"
	"promotrack/internal/core/domain"
)

// messageWriter is the subset of kafka-go's Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// DistributionSignal is the message body consumers of the topic receive.
type DistributionSignal struct {
	EventID            string         `json:"event_id"`
	RewardID           int64          `json:"reward_id"`
	ServerID           int64          `json:"server_id"`
	UserID             int64          `json:"user_id"`
	SettingID          int64          `json:"setting_id"`
	Type               string         `json:"type"`
	Category           string         `json:"category"`
	Amount             int64          `json:"amount"`
	DistributionMethod string         `json:"distribution_method,omitempty"`
	DistributionConfig map[string]any `json:"distribution_config,omitempty"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	PublishedAt        time.Time      `json:"published_at"`
}

// DistributionPublisher implements port.DistributionPublisher. Messages are
// keyed by reward id so that every signal of one reward lands on the same
// partition.
type DistributionPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewDistributionPublisher creates a publisher writing to cfg.Topic.
func NewDistributionPublisher(cfg configs.Kafka) (*DistributionPublisher, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("kafka: at least one broker required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic required")
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		MaxAttempts:            cfg.MaxAttempts,
		WriteTimeout:           cfg.WriteTimeout,
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: false,
	}
	return newDistributionPublisher(w), nil
}

func newDistributionPublisher(w messageWriter) *DistributionPublisher {
	return &DistributionPublisher{writer: w, now: time.Now}
}

// PublishDistribution writes one signal for reward.
func (p *DistributionPublisher) PublishDistribution(ctx context.Context, reward domain.Reward) error {
	signal := DistributionSignal{
		EventID:            uuid.NewString(),
		RewardID:           reward.ID,
		ServerID:           reward.ServerID,
		UserID:             reward.UserID,
		SettingID:          reward.SettingID,
		Type:               reward.Type,
		Category:           reward.Category,
		Amount:             reward.Amount,
		DistributionMethod: reward.DistributionMethod,
		DistributionConfig: reward.DistributionConfig,
		ApprovedAt:         reward.ApprovedAt,
		PublishedAt:        p.now().UTC(),
	}
	value, err := json.Marshal(signal)
	if err != nil {
		return fmt.Errorf("marshal distribution signal: %w", err)
	}
	msg := kafkago.Message{
		Key:   []byte(strconv.FormatInt(reward.ID, 10)),
		Value: value,
		Time:  signal.PublishedAt,
		Headers: []kafkago.Header{
			{Key: "event_id", Value: []byte(signal.EventID)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish reward %d: %w", reward.ID, err)
	}
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *DistributionPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
