package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promotrack/internal/config/configs"
	"promotrack/internal/core/port"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

var validate = validator.New()

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the tracking and reward use cases and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	tracking port.TrackingUseCase
	rewards  port.RewardUseCase
	cfg      configs.HTTP
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The public
// tracking routes are rate limited per client IP; the reward and stats
// routes are meant for internal callers.
func NewHandler(tracking port.TrackingUseCase, rewards port.RewardUseCase, cfg configs.HTTP, logger *slog.Logger) *Handler {
	h := &Handler{tracking: tracking, rewards: rewards, cfg: cfg, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Handle("/metrics", promhttp.Handler())

	public := r.With(h.rateLimit())
	public.Get("/r/{code}", h.handleRedirect)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(h.rateLimit()).Post("/clicks", h.handleTrackClick)
		r.With(h.rateLimit()).Post("/conversions", h.handleTrackConversion)

		r.Get("/promotions/{id}/stats", h.handleStats)
		r.Post("/promotions/{id}/rewards", h.handleProcessRewards)
		r.Post("/reward-settings/{id}/preview", h.handlePreview)
		r.Post("/rewards/{id}/recalculate", h.handleRecalculate)
		r.Post("/rewards/{id}/{action}", h.handleTransition)
		r.Post("/servers/{id}/reward-settings/invalidate", h.handleInvalidate)
		r.Delete("/fraud/blocks/{ip}", h.handleUnblock)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// rateLimit limits requests per client IP. A zero limit disables it.
func (h *Handler) rateLimit() func(http.Handler) http.Handler {
	if h.cfg.RateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	window := h.cfg.RateWindow
	if window <= 0 {
		window = time.Minute
	}
	return httprate.Limit(h.cfg.RateLimit, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return clientIP(r, h.cfg.TrustProxy), nil
		}),
	)
}

// decode reads a JSON body into dst and validates it. An empty body
// leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return validate.Struct(dst)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
