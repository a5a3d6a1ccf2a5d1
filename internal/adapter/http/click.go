package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promotrack/internal/core/domain"
	"promotrack/internal/core/port"
)

// visitor builds the visitor context of a browser request. The fingerprint
// hint comes from a client script through the X-Visitor-Fingerprint header;
// the country hint is read only behind a trusted proxy.
func (h *Handler) visitor(r *http.Request) domain.VisitorContext {
	q := r.URL.Query()
	v := domain.VisitorContext{
		IP:             clientIP(r, h.cfg.TrustProxy),
		UserAgent:      r.UserAgent(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		Referrer:       r.Referer(),
		UTM: domain.UTM{
			Source:   q.Get("utm_source"),
			Medium:   q.Get("utm_medium"),
			Campaign: q.Get("utm_campaign"),
			Term:     q.Get("utm_term"),
			Content:  q.Get("utm_content"),
		},
		FingerprintHint: r.Header.Get("X-Visitor-Fingerprint"),
	}
	if h.cfg.TrustProxy {
		v.CountryHint = r.Header.Get("Cf-Ipcountry")
	}
	return v
}

// handleRedirect records a click on a promotion link and redirects the
// visitor to the promotion target. Rejected clicks get HTTP 403 with the
// reason; unknown codes HTTP 404 and expired or paused promotions HTTP 410.
func (h *Handler) handleRedirect(w http.ResponseWriter, r *http.Request) {
	res, err := h.tracking.TrackClick(r.Context(), chi.URLParam(r, "code"), h.visitor(r))
	if err != nil {
		h.writeError(w, r, "track click", err)
		return
	}
	if res.Outcome == port.OutcomeRejected {
		http.Error(w, "click rejected: "+res.Reason, http.StatusForbidden)
		return
	}
	http.Redirect(w, r, res.RedirectURL, http.StatusFound)
}

// handleTrackClick records a click forwarded as JSON. Fields missing in
// the body fall back to the request's own headers. The visitor IP,
// fingerprint and country are taken from the body only behind a trusted
// proxy; otherwise the request itself identifies the visitor.
func (h *Handler) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req trackClickRequest
	if err := decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v := h.visitor(r)
	if h.cfg.TrustProxy {
		if ip := parseIP(req.IP); ip != "" {
			v.IP = ip
		}
		if req.Fingerprint != "" {
			v.FingerprintHint = req.Fingerprint
		}
		if req.Country != "" {
			v.CountryHint = req.Country
		}
	}
	if req.UserAgent != "" {
		v.UserAgent = req.UserAgent
	}
	if req.AcceptLanguage != "" {
		v.AcceptLanguage = req.AcceptLanguage
	}
	if req.Referrer != "" {
		v.Referrer = req.Referrer
	}
	if req.UTM != (domain.UTM{}) {
		v.UTM = req.UTM
	}

	res, err := h.tracking.TrackClick(r.Context(), req.Code, v)
	if err != nil {
		h.writeError(w, r, "track click", err)
		return
	}
	status := http.StatusCreated
	if res.Outcome == port.OutcomeRejected {
		status = http.StatusForbidden
	}
	h.writeJSON(w, status, trackClickResponse{
		Outcome:     res.Outcome,
		ClickID:     res.ClickID,
		RedirectURL: res.RedirectURL,
		IsUnique:    res.IsUnique,
		Reason:      res.Reason,
	})
}
