package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promotrack/internal/adapter/memory"
	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
	"promotrack/internal/core/port/mocks"
	"promotrack/internal/core/rules"
)

var rewardNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type rewardFixture struct {
	uc          *RewardUseCase
	directory   *mocks.MockDirectory
	ledger      *mocks.MockRewardLedger
	invalidator *mocks.MockSettingsInvalidator
}

func newRewardFixture(t *testing.T) *rewardFixture {
	t.Helper()
	f := &rewardFixture{
		directory:   mocks.NewMockDirectory(t),
		ledger:      mocks.NewMockRewardLedger(t),
		invalidator: mocks.NewMockSettingsInvalidator(t),
	}
	engine := rules.NewEngine(f.directory, f.ledger, memory.NewCounterStore(discard), nil, rules.DefaultConfig(), discard,
		rules.WithClock(func() time.Time { return rewardNow }),
		rules.WithRandom(func() float64 { return 0 }),
	)
	f.uc = NewRewardUseCase(f.directory, engine, f.invalidator, time.Second, "", discard)
	return f
}

func referralSetting() domain.RewardSetting {
	return domain.RewardSetting{
		ID:          1,
		ServerID:    3,
		SettingType: "referral",
		Trigger:     domain.TriggerCondition{Event: "user_registration"},
		Reward:      domain.RewardConfig{BaseAmount: 100, Category: "points", Multipliers: domain.Multipliers{FirstTime: 1.5}},
		Active:      true,
	}
}

func TestProcessPromotionRewardDefaultsEvent(t *testing.T) {
	f := newRewardFixture(t)
	f.directory.EXPECT().GetPromotion(mock.Anything, int64(7)).Return(promotion(), nil)
	f.directory.EXPECT().GetServer(mock.Anything, int64(3)).Return(&domain.Server{ID: 3, Active: true}, nil)
	f.directory.EXPECT().GetUser(mock.Anything, int64(42)).Return(&domain.User{ID: 42, Active: true}, nil)
	f.directory.EXPECT().GetActiveRewardSettings(mock.Anything, int64(3), port.SettingFilter{}).
		Return([]domain.RewardSetting{referralSetting()}, nil)
	f.ledger.EXPECT().CreateReward(mock.Anything, mock.AnythingOfType("*domain.Reward")).Return(true, nil)
	f.ledger.EXPECT().RecordSettingUsage(mock.Anything, int64(1), rewardNow, nil).Return(nil)

	first := true
	res, err := f.uc.ProcessPromotionReward(context.Background(), 7, 42, domain.EvaluationContext{IsFirstRegistration: &first})
	require.NoError(t, err)
	require.Len(t, res.Rewards, 1)

	r := res.Rewards[0]
	assert.Equal(t, int64(150), r.Amount)
	assert.Equal(t, "user_registration", r.Metadata.Context.Event)
	require.NotNil(t, r.PromotionID)
	assert.Equal(t, int64(7), *r.PromotionID)
	assert.Equal(t, int64(3), r.ServerID)
}

func TestProcessPromotionRewardInactiveServer(t *testing.T) {
	f := newRewardFixture(t)
	f.directory.EXPECT().GetPromotion(mock.Anything, int64(7)).Return(promotion(), nil)
	f.directory.EXPECT().GetServer(mock.Anything, int64(3)).Return(&domain.Server{ID: 3, Active: false}, nil)

	res, err := f.uc.ProcessPromotionReward(context.Background(), 7, 42, domain.EvaluationContext{})
	require.NoError(t, err)
	assert.Empty(t, res.Rewards)
	assert.Empty(t, res.Errors)
}

func TestProcessPromotionRewardMissingRecords(t *testing.T) {
	f := newRewardFixture(t)
	f.directory.EXPECT().GetPromotion(mock.Anything, int64(7)).Return(nil, nil)
	f.directory.EXPECT().GetPromotion(mock.Anything, int64(8)).Return(&domain.Promotion{ID: 8, ServerID: 4}, nil)
	f.directory.EXPECT().GetServer(mock.Anything, int64(4)).Return(nil, nil)

	_, err := f.uc.ProcessPromotionReward(context.Background(), 7, 42, domain.EvaluationContext{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.ProcessPromotionReward(context.Background(), 8, 42, domain.EvaluationContext{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.ProcessPromotionReward(context.Background(), 0, 42, domain.EvaluationContext{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEvaluateRewardPreviews(t *testing.T) {
	f := newRewardFixture(t)
	s := referralSetting()
	f.directory.EXPECT().GetRewardSetting(mock.Anything, int64(1)).Return(&s, nil)
	f.directory.EXPECT().GetUser(mock.Anything, int64(42)).Return(&domain.User{ID: 42, Active: true}, nil)

	first := true
	res, err := f.uc.EvaluateReward(context.Background(), 1, 42, domain.EvaluationContext{IsFirstRegistration: &first})
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, int64(150), res.Amount)
	assert.Equal(t, []string{rules.BonusFirstTime}, res.Bonuses)
}

func TestTransitionRewardApproves(t *testing.T) {
	f := newRewardFixture(t)
	f.ledger.EXPECT().GetReward(mock.Anything, int64(9)).
		Return(&domain.Reward{ID: 9, SettingID: 1, Status: domain.RewardPending}, nil)
	f.ledger.EXPECT().TransitionReward(mock.Anything, int64(9), domain.RewardPending, domain.RewardApproved, rewardNow, "").
		Return(true, nil)
	s := referralSetting()
	f.directory.EXPECT().GetRewardSetting(mock.Anything, int64(1)).Return(&s, nil)

	r, err := f.uc.TransitionReward(context.Background(), 9, domain.RewardApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.RewardApproved, r.Status)
	require.NotNil(t, r.ApprovedAt)
}

func TestInvalidateRewardSettings(t *testing.T) {
	f := newRewardFixture(t)
	f.invalidator.EXPECT().InvalidateRewardSettings(mock.Anything, int64(3)).Return(nil).Once()
	f.invalidator.EXPECT().InvalidateRewardSettings(mock.Anything, int64(4)).Return(errors.New("redis down")).Once()

	require.NoError(t, f.uc.InvalidateRewardSettings(context.Background(), 3))
	assert.ErrorIs(t, f.uc.InvalidateRewardSettings(context.Background(), 4), domain.ErrDependency)
	assert.ErrorIs(t, f.uc.InvalidateRewardSettings(context.Background(), 0), domain.ErrValidation)
}

func TestInvalidateRewardSettingsWithoutCache(t *testing.T) {
	uc := NewRewardUseCase(nil, nil, nil, 0, "", discard)
	assert.NoError(t, uc.InvalidateRewardSettings(context.Background(), 3))
}

func TestRecalculateRewardRejectsApproved(t *testing.T) {
	f := newRewardFixture(t)
	f.ledger.EXPECT().GetReward(mock.Anything, int64(9)).
		Return(&domain.Reward{ID: 9, SettingID: 1, Status: domain.RewardApproved}, nil)

	_, err := f.uc.RecalculateReward(context.Background(), 9, domain.EvaluationContext{ReferralChainLength: 3})
	assert.ErrorIs(t, err, domain.ErrConflict)
}
