package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promotrack/internal/core/domain"
)

// transitions maps the action path segment to the target status.
var transitions = map[string]domain.RewardStatus{
	"approve":    domain.RewardApproved,
	"cancel":     domain.RewardCancelled,
	"distribute": domain.RewardDistributed,
	"fail":       domain.RewardFailed,
	"reopen":     domain.RewardPending,
}

// handlePreview evaluates one reward setting for a user without side
// effects.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid reward setting id")
		return
	}
	var req evaluationRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	res, err := h.rewards.EvaluateReward(r.Context(), id, req.UserID, req.Context)
	if err != nil {
		h.writeError(w, r, "preview reward", err)
		return
	}
	h.writeJSON(w, http.StatusOK, previewResponse{
		SettingID:  res.SettingID,
		Eligible:   res.Eligible,
		Reason:     res.Reason,
		Amount:     res.Amount,
		Multiplier: res.Multiplier,
		Bonuses:    res.Bonuses,
	})
}

// handleProcessRewards evaluates every matching setting of a promotion's
// server for a user and persists the granted rewards.
func (h *Handler) handleProcessRewards(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid promotion id")
		return
	}
	var req evaluationRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	res, err := h.rewards.ProcessPromotionReward(r.Context(), id, req.UserID, req.Context)
	if err != nil {
		h.writeError(w, r, "process rewards", err)
		return
	}
	resp := processResponse{
		Rewards: toRewardDTOs(res.Rewards),
		Skipped: make([]skippedDTO, 0, len(res.Skipped)),
		Errors:  toSettingErrorDTOs(res.Errors),
	}
	for _, s := range res.Skipped {
		resp.Skipped = append(resp.Skipped, skippedDTO{SettingID: s.SettingID, Reason: s.Reason})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleTransition moves a reward through its lifecycle. The fail action
// requires a reason.
func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid reward id")
		return
	}
	to, ok := transitions[chi.URLParam(r, "action")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	var req transitionRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	reward, err := h.rewards.TransitionReward(r.Context(), id, to, req.Reason)
	if err != nil {
		h.writeError(w, r, "transition reward", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRewardDTO(*reward))
}

// handleRecalculate recomputes a pending reward with the given facts
// merged into its original context.
func (h *Handler) handleRecalculate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid reward id")
		return
	}
	var req recalculateRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	reward, err := h.rewards.RecalculateReward(r.Context(), id, req.Context)
	if err != nil {
		h.writeError(w, r, "recalculate reward", err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRewardDTO(*reward))
}

// handleInvalidate drops the cached reward settings of a server.
func (h *Handler) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid server id")
		return
	}
	if err := h.rewards.InvalidateRewardSettings(r.Context(), id); err != nil {
		h.writeError(w, r, "invalidate settings", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
