package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"promotrack/internal/core/attribution"
	"promotrack/internal/core/domain"
	"promotrack/internal/core/fingerprint"
	"promotrack/internal/core/fraud"
	"promotrack/internal/core/port"
	"promotrack/internal/metrics"
)

// TrackingConfig bounds the hot path of click and conversion handling.
type TrackingConfig struct {
	// FraudTimeout bounds the fraud checks of one request.
	FraudTimeout time.Duration
	// ConversionEvent is the trigger event of attributed conversions when
	// the request names none.
	ConversionEvent string
	// StatsRange is the default stats period when the request has no start.
	StatsRange time.Duration
}

// TrackingUseCase orchestrates fingerprinting, fraud detection, click
// recording and conversion attribution. It implements port.TrackingUseCase.
type TrackingUseCase struct {
	directory  port.Directory
	clicks     port.ClickLedger
	detector   *fraud.Detector
	attributor *attribution.Attributor
	rewards    port.RewardUseCase
	cfg        TrackingConfig
	logger     *slog.Logger
	now        func() time.Time
}

// NewTrackingUseCase wires the tracking use case. clicks is only used for
// statistics; writes go through the attributor.
func NewTrackingUseCase(
	directory port.Directory,
	clicks port.ClickLedger,
	detector *fraud.Detector,
	attributor *attribution.Attributor,
	rewards port.RewardUseCase,
	cfg TrackingConfig,
	logger *slog.Logger,
) *TrackingUseCase {
	if cfg.ConversionEvent == "" {
		cfg.ConversionEvent = "user_registration"
	}
	if cfg.StatsRange <= 0 {
		cfg.StatsRange = 30 * 24 * time.Hour
	}
	return &TrackingUseCase{
		directory:  directory,
		clicks:     clicks,
		detector:   detector,
		attributor: attributor,
		rewards:    rewards,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// TrackClick resolves the promotion, screens the visitor and records the
// click. A fraud rejection is a result, not an error. The visitor IP is
// normalized before it is screened, fingerprinted and stored.
func (u *TrackingUseCase) TrackClick(ctx context.Context, code string, visitor domain.VisitorContext) (*port.TrackClickResult, error) {
	visitor.IP = domain.NormalizeIP(visitor.IP)
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.Validation("promotion code is required")
	}
	promo, err := u.directory.GetPromotionByCode(ctx, code)
	if err != nil {
		return nil, domain.Dependency("get promotion", err)
	}
	if promo == nil {
		return nil, domain.NotFound("promotion", code)
	}
	if !promo.Usable(u.now().UTC()) {
		return nil, domain.ErrInvalidPromotion
	}

	verdict, err := u.checkClick(ctx, promo.ID, visitor)
	if err != nil {
		u.logger.Error("fraud check failed", slog.Int64("promotion_id", promo.ID), slog.Any("error", err))
		return nil, err
	}
	if !verdict.Allowed {
		metrics.ClicksTotal.WithLabelValues(string(port.OutcomeRejected)).Inc()
		return &port.TrackClickResult{Outcome: port.OutcomeRejected, Reason: string(verdict.Reason)}, nil
	}

	fp := fingerprint.Resolve(visitor)
	click, err := u.attributor.RecordClick(ctx, promo, visitor, fp, verdict.Geo)
	if err != nil {
		u.logger.Error("click not recorded", slog.Int64("promotion_id", promo.ID), slog.Any("error", err))
		return nil, err
	}
	metrics.ClicksTotal.WithLabelValues(string(port.OutcomeAccepted)).Inc()
	return &port.TrackClickResult{
		Outcome:     port.OutcomeAccepted,
		ClickID:     click.ID,
		RedirectURL: promo.Link,
		IsUnique:    click.IsUnique,
	}, nil
}

func (u *TrackingUseCase) checkClick(ctx context.Context, promotionID int64, visitor domain.VisitorContext) (fraud.Verdict, error) {
	if u.cfg.FraudTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.FraudTimeout)
		defer cancel()
	}
	return u.detector.Check(ctx, promotionID, visitor)
}

// TrackConversion attributes the conversion and evaluates rewards for every
// attributed promotion. Reward failures are collected per promotion and
// never undo an attribution.
func (u *TrackingUseCase) TrackConversion(ctx context.Context, userID int64, conv domain.ConversionContext) (*port.ConversionResult, error) {
	if userID <= 0 {
		return nil, domain.Validation("user id must be positive")
	}
	conv.IP = domain.NormalizeIP(conv.IP)
	visitor := domain.VisitorContext{IP: conv.IP, UserAgent: conv.UserAgent, AcceptLanguage: conv.AcceptLanguage}

	fctx := ctx
	if u.cfg.FraudTimeout > 0 {
		var cancel context.CancelFunc
		fctx, cancel = context.WithTimeout(ctx, u.cfg.FraudTimeout)
		defer cancel()
	}
	verdict, err := u.detector.CheckConversion(fctx, visitor)
	if err != nil {
		return nil, err
	}
	if !verdict.Allowed {
		return &port.ConversionResult{Outcome: port.OutcomeRejected, Reason: string(verdict.Reason)}, nil
	}

	fp := conv.Fingerprint
	if fp == "" && (conv.UserAgent != "" || conv.AcceptLanguage != "") {
		fp = fingerprint.Generate(conv.IP, conv.UserAgent, conv.AcceptLanguage)
	}
	conversions, attrErr := u.attributor.AttributeConversion(ctx, userID, fp, conv.IP)
	if attrErr != nil && len(conversions) == 0 {
		return nil, attrErr
	}

	res := &port.ConversionResult{Outcome: port.OutcomeAccepted, Conversions: conversions}
	event := conv.Event
	if event == "" {
		event = u.cfg.ConversionEvent
	}
	for _, c := range conversions {
		ectx := conv.Reward
		ectx.Event = event
		ectx.ClickID = &c.ClickID

		pr, err := u.rewards.ProcessPromotionReward(ctx, c.PromotionID, userID, ectx)
		if err != nil {
			u.logger.Error("reward processing failed",
				slog.Int64("promotion_id", c.PromotionID),
				slog.Int64("user_id", userID),
				slog.Any("error", err),
			)
			res.Errors = append(res.Errors, port.SettingError{PromotionID: c.PromotionID, Err: err.Error()})
			continue
		}
		res.Rewards = append(res.Rewards, pr.Rewards...)
		res.Errors = append(res.Errors, pr.Errors...)
	}
	u.logger.Info("conversion attributed",
		slog.Int64("user_id", userID),
		slog.Int("conversions", len(conversions)),
		slog.Int("rewards", len(res.Rewards)),
	)
	return res, attrErr
}

// GetStats returns the click aggregates of a promotion. A missing start
// defaults to StatsRange before the end, a missing end to now.
func (u *TrackingUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if req.PromotionID <= 0 {
		return nil, domain.Validation("promotion id must be positive")
	}
	if req.To.IsZero() {
		req.To = u.now().UTC()
	}
	if req.From.IsZero() {
		req.From = req.To.Add(-u.cfg.StatsRange)
	}
	if req.From.After(req.To) {
		return nil, domain.Validation("from must not be after to")
	}
	promo, err := u.directory.GetPromotion(ctx, req.PromotionID)
	if err != nil {
		return nil, domain.Dependency("get promotion", err)
	}
	if promo == nil {
		return nil, domain.NotFound("promotion", req.PromotionID)
	}
	stats, err := u.clicks.GetStats(ctx, req)
	if err != nil {
		return nil, domain.Dependency("get stats", err)
	}
	return stats, nil
}

// UnblockIP lifts an escalated fraud block.
func (u *TrackingUseCase) UnblockIP(ctx context.Context, ip string) error {
	return u.detector.Unblock(ctx, ip)
}
