package httpadapter

import (
	"net/http"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// handleTrackConversion attributes a conversion of a known user to the
// visitor's recent clicks. Behind a trusted proxy the visitor is identified
// by the fingerprint or IP in the body; otherwise by the request itself and
// its X-Visitor-Fingerprint header.
func (h *Handler) handleTrackConversion(w http.ResponseWriter, r *http.Request) {
	var req conversionRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	conv := domain.ConversionContext{
		IP:             clientIP(r, h.cfg.TrustProxy),
		Fingerprint:    r.Header.Get("X-Visitor-Fingerprint"),
		UserAgent:      req.UserAgent,
		AcceptLanguage: req.AcceptLanguage,
		Event:          req.Event,
		Reward:         req.Context,
	}
	if h.cfg.TrustProxy {
		if ip := parseIP(req.IP); ip != "" {
			conv.IP = ip
		}
		if req.Fingerprint != "" {
			conv.Fingerprint = req.Fingerprint
		}
	}
	if conv.UserAgent == "" {
		conv.UserAgent = r.UserAgent()
	}
	if conv.AcceptLanguage == "" {
		conv.AcceptLanguage = r.Header.Get("Accept-Language")
	}

	res, err := h.tracking.TrackConversion(r.Context(), req.UserID, conv)
	if err != nil {
		h.writeError(w, r, "track conversion", err)
		return
	}
	resp := conversionResponse{
		Outcome:     res.Outcome,
		Reason:      res.Reason,
		Conversions: make([]conversionDTO, 0, len(res.Conversions)),
		Rewards:     toRewardDTOs(res.Rewards),
		Errors:      toSettingErrorDTOs(res.Errors),
	}
	for _, c := range res.Conversions {
		resp.Conversions = append(resp.Conversions, conversionDTO{ClickID: c.ClickID, PromotionID: c.PromotionID})
	}
	status := http.StatusOK
	if res.Outcome == port.OutcomeRejected {
		status = http.StatusForbidden
	}
	h.writeJSON(w, status, resp)
}
