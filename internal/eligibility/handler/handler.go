// Package handler exposes the eligibility reason engine over HTTP.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admission/internal/eligibility"
	"admission/internal/platform/metrics"
	"admission/internal/platform/middleware"
	dErrors "admission/pkg/domain-errors"
	"admission/pkg/platform/httputil"
	"admission/pkg/requestcontext"
)

// ServiceName identifies this service in health responses and logs.
const ServiceName = "eligibility-validator"

// Handler handles eligibility check endpoints. The engine is pure and
// stateless, so the handler needs no store and is safe for any number of
// concurrent requests.
type Handler struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a new eligibility Handler. A nil logger discards output,
// which keeps handler tests free of logging setup.
func New(logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{logger: logger, metrics: metrics}
}

// Register registers the eligibility routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Post("/check-eligibility", h.handleCheckEligibility)
	router.Get("/health", h.handleHealth)

	r.Mount("/", router)
}

// handleCheckEligibility evaluates applicant data in simulation mode:
// nothing is persisted, and invalid field values are reported inside a
// successful response rather than as a transport failure. Only a body that
// is not JSON at all is rejected.
func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var applicant eligibility.Applicant
	if err := json.NewDecoder(r.Body).Decode(&applicant); err != nil {
		h.logger.WarnContext(ctx, "invalid eligibility request body",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	decision := eligibility.Evaluate(applicant, requestcontext.Now(ctx))
	h.metrics.IncEligibilityCheck(string(decision.Status))

	httputil.WriteJSON(w, http.StatusOK, decision)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
	})
}
