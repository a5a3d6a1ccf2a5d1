package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"promotrack/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusOf maps a domain error class to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPromotion):
		return http.StatusGone
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDependency):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status of err. Server side failures are
// logged and their message is not exposed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusOf(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.String("path", r.URL.Path), slog.Any("error", err))
		msg = http.StatusText(status)
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}
