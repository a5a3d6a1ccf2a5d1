package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"promotrack/internal/core/port"
)

// handleStats returns aggregated click statistics of a promotion. It
// accepts optional `from` and `to` query parameters as RFC3339 timestamps
// or dates; the use case fills in the defaults.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		h.badRequest(w, "invalid promotion id")
		return
	}
	req := port.StatsReq{PromotionID: id}
	var err error
	q := r.URL.Query()
	if s := q.Get("from"); s != "" {
		if req.From, err = parseTime(s); err != nil {
			h.badRequest(w, "invalid 'from' timestamp")
			return
		}
	}
	if s := q.Get("to"); s != "" {
		if req.To, err = parseTime(s); err != nil {
			h.badRequest(w, "invalid 'to' timestamp")
			return
		}
	}

	stats, err := h.tracking.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

// handleUnblock lifts an escalated fraud block of an IP.
func (h *Handler) handleUnblock(w http.ResponseWriter, r *http.Request) {
	ip := parseIP(chi.URLParam(r, "ip"))
	if ip == "" {
		h.badRequest(w, "invalid ip")
		return
	}
	if err := h.tracking.UnblockIP(r.Context(), ip); err != nil {
		h.writeError(w, r, "unblock ip", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
