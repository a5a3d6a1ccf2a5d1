package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promotrack/internal/config/configs"
	"promotrack/internal/core/domain"
)

type recordingWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishDistribution(t *testing.T) {
	w := &recordingWriter{}
	p := newDistributionPublisher(w)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	reward := domain.Reward{
		ID:                 17,
		ServerID:           3,
		UserID:             42,
		SettingID:          1,
		Type:               "referral",
		Category:           "points",
		Amount:             121,
		DistributionMethod: "webhook",
		ApprovedAt:         &now,
	}
	require.NoError(t, p.PublishDistribution(context.Background(), reward))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "17", string(msg.Key))
	assert.Equal(t, now, msg.Time)

	var signal DistributionSignal
	require.NoError(t, json.Unmarshal(msg.Value, &signal))
	assert.Equal(t, int64(17), signal.RewardID)
	assert.Equal(t, int64(121), signal.Amount)
	assert.Equal(t, "webhook", signal.DistributionMethod)
	assert.NotEmpty(t, signal.EventID)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, signal.EventID, string(msg.Headers[0].Value))
}

func TestPublishDistributionError(t *testing.T) {
	w := &recordingWriter{err: errors.New("leader not available")}
	p := newDistributionPublisher(w)

	err := p.PublishDistribution(context.Background(), domain.Reward{ID: 5})
	assert.ErrorContains(t, err, "publish reward 5")
	assert.ErrorIs(t, err, w.err)
}

func TestNewDistributionPublisherRequiresBrokers(t *testing.T) {
	_, err := NewDistributionPublisher(configs.Kafka{Topic: "rewards.distribution"})
	assert.Error(t, err)

	_, err = NewDistributionPublisher(configs.Kafka{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)

	p, err := NewDistributionPublisher(configs.Kafka{Brokers: []string{"localhost:9092"}, Topic: "rewards.distribution"})
	require.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestCloseNil(t *testing.T) {
	var p *DistributionPublisher
	assert.NoError(t, p.Close())
}
