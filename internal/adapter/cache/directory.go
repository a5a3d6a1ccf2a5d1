package cache

import (
	"context"
	"strconv"
	"time"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// Directory caches the active reward settings of each server in front of
// another port.Directory. It implements port.SettingsInvalidator; other
// lookups pass through.
type Directory struct {
	port.Directory
	cache *Cache
	ttl   time.Duration
}

// NewDirectory wraps next. A zero ttl disables caching.
func NewDirectory(next port.Directory, cache *Cache, ttl time.Duration) *Directory {
	return &Directory{Directory: next, cache: cache, ttl: ttl}
}

func settingsGeneration(serverID int64) string {
	return "settings:" + strconv.FormatInt(serverID, 10)
}

// GetActiveRewardSettings returns the cached settings of the server for the
// given filter, loading them on a miss.
func (d *Directory) GetActiveRewardSettings(ctx context.Context, serverID int64, filter port.SettingFilter) ([]domain.RewardSetting, error) {
	key := strconv.FormatInt(serverID, 10) + ":" + optional(filter.SettingType) + ":" + optional(filter.RewardType)
	return load(ctx, d.cache, "settings", settingsGeneration(serverID), key, d.ttl,
		func(ctx context.Context) ([]domain.RewardSetting, error) {
			return d.Directory.GetActiveRewardSettings(ctx, serverID, filter)
		})
}

// InvalidateRewardSettings drops every cached settings list of the server.
func (d *Directory) InvalidateRewardSettings(ctx context.Context, serverID int64) error {
	return d.cache.Bump(ctx, settingsGeneration(serverID))
}

func optional(s *string) string {
	if s == nil {
		return "*"
	}
	return strconv.Quote(*s)
}
