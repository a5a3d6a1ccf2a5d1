package attribution

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promotrack/internal/adapter/memory"
	"promotrack/internal/core/domain"
	"promotrack/internal/core/fingerprint"
	"promotrack/internal/core/port"
	"promotrack/internal/core/port/mocks"
)

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))
	now     = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newAttributor(ledger port.ClickLedger) (*Attributor, *memory.CounterStore) {
	store := memory.NewCounterStore(discard)
	return NewAttributor(ledger, store, DefaultConfig(), discard, WithClock(func() time.Time { return now })), store
}

func activePromotion() *domain.Promotion {
	return &domain.Promotion{ID: 7, ServerID: 3, PromoterID: 11, Code: "ABC123", Status: domain.PromotionActive}
}

func TestRecordClickInsertsAndStoresSession(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, store := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().
		InsertClick(mock.Anything, mock.AnythingOfType("*domain.Click"), now.Add(-24*time.Hour)).
		Run(func(_ context.Context, c *domain.Click, _ time.Time) {
			assert.Equal(t, int64(7), c.PromotionID)
			assert.Equal(t, int64(3), c.ServerID)
			assert.Equal(t, int64(11), c.PromoterID)
			assert.Equal(t, "DE", c.Country)
			c.ID = 100
			c.IsUnique = true
		}).
		Return(nil)

	click, err := a.RecordClick(context.Background(), activePromotion(), domain.VisitorContext{IP: "1.2.3.4", UserAgent: "ua"}, fp, &domain.Geo{Country: "DE"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), click.ID)
	assert.True(t, click.IsUnique)

	session := a.loadSession(context.Background(), fp)
	require.NotNil(t, session)
	assert.Equal(t, int64(100), session.ClickID)
	assert.Equal(t, int64(7), session.PromotionID)

	_, ok, err := store.Get(context.Background(), sessionKey(fp))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRecordClickRejectsUnusablePromotion(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	paused := activePromotion()
	paused.Status = domain.PromotionPaused
	_, err := a.RecordClick(context.Background(), paused, domain.VisitorContext{}, fp, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPromotion)

	expired := activePromotion()
	past := now.Add(-time.Minute)
	expired.ExpiresAt = &past
	_, err = a.RecordClick(context.Background(), expired, domain.VisitorContext{}, fp, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPromotion)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecordClickLedgerFailure(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().InsertClick(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("conn reset"))

	_, err := a.RecordClick(context.Background(), activePromotion(), domain.VisitorContext{}, fp, nil)
	assert.ErrorIs(t, err, domain.ErrDependency)
}

func TestAttributeConversionFlipsEveryPromotion(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().
		FindUnconverted(mock.Anything, port.UnconvertedQuery{Fingerprint: fp, Since: now.Add(-24 * time.Hour), Limit: 10}).
		Return([]domain.Click{{ID: 2, PromotionID: 8}, {ID: 1, PromotionID: 7}}, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(2), int64(55), now).Return(true, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(1), int64(55), now).Return(true, nil)

	got, err := a.AttributeConversion(context.Background(), 55, fp, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, []port.Conversion{{ClickID: 2, PromotionID: 8}, {ClickID: 1, PromotionID: 7}}, got)
}

func TestAttributeConversionOnePerPromotion(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().FindUnconverted(mock.Anything, mock.Anything).
		Return([]domain.Click{{ID: 3, PromotionID: 7}, {ID: 2, PromotionID: 7}, {ID: 1, PromotionID: 8}}, nil)
	// the newest click of promotion 7 was converted concurrently; the next one is used
	ledger.EXPECT().MarkConverted(mock.Anything, int64(3), int64(55), now).Return(false, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(2), int64(55), now).Return(true, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(1), int64(55), now).Return(true, nil)

	got, err := a.AttributeConversion(context.Background(), 55, fp, "")
	require.NoError(t, err)
	assert.Equal(t, []port.Conversion{{ClickID: 2, PromotionID: 7}, {ClickID: 1, PromotionID: 8}}, got)
}

func TestStatsInvalidatedByClicksAndConversions(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	stats := mocks.NewMockStatsInvalidator(t)
	a := NewAttributor(ledger, memory.NewCounterStore(discard), DefaultConfig(), discard,
		WithClock(func() time.Time { return now }),
		WithStatsInvalidator(stats),
	)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().InsertClick(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	stats.EXPECT().InvalidateStats(mock.Anything, int64(7)).Return(nil).Once()
	_, err := a.RecordClick(context.Background(), activePromotion(), domain.VisitorContext{IP: "1.2.3.4"}, fp, nil)
	require.NoError(t, err)

	ledger.EXPECT().FindUnconverted(mock.Anything, mock.Anything).
		Return([]domain.Click{{ID: 3, PromotionID: 9}, {ID: 2, PromotionID: 7}, {ID: 1, PromotionID: 8}}, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(3), int64(55), now).Return(false, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(2), int64(55), now).Return(true, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(1), int64(55), now).Return(true, nil)
	// only won conversions invalidate; a failed invalidation is not fatal
	stats.EXPECT().InvalidateStats(mock.Anything, int64(7)).Return(nil).Once()
	stats.EXPECT().InvalidateStats(mock.Anything, int64(8)).Return(errors.New("redis down")).Once()

	got, err := a.AttributeConversion(context.Background(), 55, fp, "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	stats.AssertNotCalled(t, "InvalidateStats", mock.Anything, int64(9))
}

func TestAttributeConversionSkipsLostRace(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().FindUnconverted(mock.Anything, mock.Anything).Return([]domain.Click{{ID: 1, PromotionID: 7}}, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(1), int64(55), now).Return(false, nil)

	got, err := a.AttributeConversion(context.Background(), 55, fp, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAttributeConversionFallsBackToIP(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().
		FindUnconverted(mock.Anything, mock.MatchedBy(func(q port.UnconvertedQuery) bool { return q.Fingerprint == fp })).
		Return(nil, nil)
	ledger.EXPECT().
		FindUnconverted(mock.Anything, mock.MatchedBy(func(q port.UnconvertedQuery) bool { return q.IP == "1.2.3.4" && q.Fingerprint == "" })).
		Return([]domain.Click{{ID: 9, PromotionID: 7}}, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(9), int64(55), now).Return(true, nil)

	got, err := a.AttributeConversion(context.Background(), 55, fp, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, []port.Conversion{{ClickID: 9, PromotionID: 7}}, got)
}

func TestAttributeConversionSessionClickFirst(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, store := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")
	a.storeSession(context.Background(), fp, domain.VisitorSession{PromotionID: 7, ClickID: 1, CreatedAt: now})

	ledger.EXPECT().FindUnconverted(mock.Anything, mock.Anything).
		Return([]domain.Click{{ID: 3, PromotionID: 9}, {ID: 2, PromotionID: 8}, {ID: 1, PromotionID: 7}}, nil)
	var order []int64
	ledger.EXPECT().MarkConverted(mock.Anything, mock.Anything, int64(55), now).
		Run(func(_ context.Context, id, _ int64, _ time.Time) { order = append(order, id) }).
		Return(true, nil)

	_, err := a.AttributeConversion(context.Background(), 55, fp, "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, order)

	_, ok, err := store.Get(context.Background(), sessionKey(fp))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttributeConversionPartialFailure(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)
	fp := fingerprint.Generate("1.2.3.4", "ua", "en")

	ledger.EXPECT().FindUnconverted(mock.Anything, mock.Anything).
		Return([]domain.Click{{ID: 2, PromotionID: 8}, {ID: 1, PromotionID: 7}}, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(2), int64(55), now).Return(true, nil)
	ledger.EXPECT().MarkConverted(mock.Anything, int64(1), int64(55), now).Return(false, errors.New("timeout"))

	got, err := a.AttributeConversion(context.Background(), 55, fp, "")
	assert.ErrorIs(t, err, domain.ErrDependency)
	assert.Equal(t, []port.Conversion{{ClickID: 2, PromotionID: 8}}, got)
}

func TestAttributeConversionValidation(t *testing.T) {
	ledger := mocks.NewMockClickLedger(t)
	a, _ := newAttributor(ledger)

	_, err := a.AttributeConversion(context.Background(), 0, "", "1.2.3.4")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = a.AttributeConversion(context.Background(), 1, "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = a.AttributeConversion(context.Background(), 1, "zz", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPromoteKeepsOrder(t *testing.T) {
	clicks := []domain.Click{{ID: 1}, {ID: 2}, {ID: 3}}

	assert.Equal(t, []domain.Click{{ID: 3}, {ID: 1}, {ID: 2}}, promote(clicks, 3))
	assert.Equal(t, clicks, promote(clicks, 1))
	assert.Equal(t, clicks, promote(clicks, 42))
}
