package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"

	"promotrack/internal/core/domain"
)

// Seed inserts demo servers, users, promotions and reward settings. Rows
// that already exist are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	for i := 1; i <= 3; i++ {
		_, err := db.Exec(ctx, `INSERT INTO servers (id, name, owner_id, active)
VALUES ($1,$2,$3,TRUE) ON CONFLICT DO NOTHING`, i, fmt.Sprintf("Server %d", i), 1000+i)
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 20; i++ {
		created := time.Now().AddDate(0, 0, -rand.IntN(90))
		_, err := db.Exec(ctx, `INSERT INTO users (id, level, active, created_at)
VALUES ($1,$2,TRUE,$3) ON CONFLICT DO NOTHING`, i, rand.IntN(10), created)
		if err != nil {
			return err
		}
	}

	for server := int64(1); server <= 3; server++ {
		for j := 0; j < 2; j++ {
			code := domain.NewPromotionCode()
			_, err := db.Exec(ctx, `INSERT INTO promotions (server_id, promoter_id, code, link, status)
VALUES ($1,$2,$3,$4,'active') ON CONFLICT DO NOTHING`,
				server, rand.Int64N(20)+1, code, fmt.Sprintf("https://discord.gg/%s", code))
			if err != nil {
				return err
			}
		}
		if err := seedSettings(ctx, db, server); err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(ctx context.Context, db *pgxpool.Pool, serverID int64) error {
	settings := []domain.RewardSetting{
		{
			SettingType: "referral",
			Trigger: domain.TriggerCondition{
				Event:      "user_registration",
				Conditions: []domain.Condition{{Kind: domain.ConditionFirstRegistration, Flag: true}},
			},
			Reward: domain.RewardConfig{
				BaseAmount:  100,
				Category:    "points",
				Multipliers: domain.Multipliers{FirstTime: 1.5, Chain: 1.1},
			},
			Limits:      domain.LimitConfig{PerUser: 1},
			AutoApprove: true,
			Priority:    10,
		},
		{
			SettingType: "activity",
			Trigger: domain.TriggerCondition{
				Event:      "user_registration",
				Conditions: []domain.Condition{{Kind: domain.ConditionUserLevelMin, Number: 3}},
			},
			Reward: domain.RewardConfig{
				BaseAmount:  25,
				Category:    "points",
				Multipliers: domain.Multipliers{RandomBonus: true},
			},
			Limits: domain.LimitConfig{PerDay: 3, CooldownSeconds: 600},
		},
	}
	for _, s := range settings {
		trigger, err := json.Marshal(s.Trigger)
		if err != nil {
			return err
		}
		reward, err := json.Marshal(s.Reward)
		if err != nil {
			return err
		}
		limits, err := json.Marshal(s.Limits)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO reward_settings
(server_id, setting_type, trigger_condition, reward_config, limit_config, auto_approve, auto_distribute, priority, active)
SELECT $1,$2,$3,$4,$5,$6,$7,$8,TRUE
WHERE NOT EXISTS (SELECT 1 FROM reward_settings WHERE server_id = $1 AND setting_type = $2)`,
			serverID, s.SettingType, trigger, reward, limits, s.AutoApprove, s.AutoDistribute, s.Priority)
		if err != nil {
			return err
		}
	}
	return nil
}
