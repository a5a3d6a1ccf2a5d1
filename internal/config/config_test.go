package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, int64(10), cfg.Fraud.MaxClicksPerIPPerDay)
	assert.Equal(t, 5*time.Minute, cfg.Fraud.BurstWindow)
	assert.Contains(t, cfg.Fraud.BotSignatures, "python-requests")
	assert.Equal(t, 24*time.Hour, cfg.Tracking.UniqueWindow)
	assert.Equal(t, "redis", cfg.Tracking.CounterBackend)
	assert.Equal(t, int64(10), cfg.Reward.GlobalDailyCap)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FRAUD_WHITELIST", "10.0.0.0/8,192.168.1.1")
	t.Setenv("FRAUD_MAX_CLICKS_PER_IP_PER_HOUR", "3")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("TRACKING_COUNTER_BACKEND", "memory")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/promo?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.Fraud.Whitelist)
	assert.Equal(t, int64(3), cfg.Fraud.MaxClicksPerIPPerHour)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "memory", cfg.Tracking.CounterBackend)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("REWARD_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
