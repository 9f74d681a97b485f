// Package handler exposes admission record operations over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"admission/internal/platform/metrics"
	"admission/internal/platform/middleware"
	"admission/internal/student/models"
	dErrors "admission/pkg/domain-errors"
	"admission/pkg/platform/httputil"
)

// ServiceName identifies this service in health responses and logs.
const ServiceName = "student-database"

// Service is the admission record contract the HTTP layer depends on.
// internal/student/service provides the implementation.
type Service interface {
	Create(ctx context.Context, params models.NewStudentParams) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Summarize(ctx context.Context) (models.Summary, error)
	Delete(ctx context.Context, rawID string) (*models.Student, error)
}

// Handler handles student admission endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a new student Handler. A nil logger discards output, which
// keeps handler tests free of logging setup.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{service: service, logger: logger, metrics: metrics}
}

// Register registers the student routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Post("/students", h.handleCreateStudent)
	router.Get("/students", h.handleListStudents)
	router.Get("/students/summary", h.handleSummary)
	router.Delete("/students/{id}", h.handleDeleteStudent)
	router.Get("/health", h.handleHealth)

	r.Mount("/", router)
}

func (h *Handler) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create student request body",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	params, err := req.toParams()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	student, err := h.service.Create(ctx, params)
	if err != nil {
		h.logError(ctx, "create student failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, studentResponse{
		Message: "Student admission saved successfully",
		Student: student,
	})
}

func (h *Handler) handleListStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	students, err := h.service.List(ctx)
	if err != nil {
		h.logError(ctx, "list students failed", err)
		httputil.WriteError(w, err)
		return
	}

	// A fresh store serializes as [], not null.
	if students == nil {
		students = []*models.Student{}
	}
	httputil.WriteJSON(w, http.StatusOK, students)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.Summarize(ctx)
	if err != nil {
		h.logError(ctx, "summarize students failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	student, err := h.service.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.logError(ctx, "delete student failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, studentResponse{
		Message: "Student record deleted successfully",
		Student: student,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
	})
}

// logError logs internal failures at error level and expected domain
// outcomes at warn level.
func (h *Handler) logError(ctx context.Context, msg string, err error) {
	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	}
	if dErrors.HasCode(err, dErrors.CodeInternal) {
		h.logger.ErrorContext(ctx, msg, attrs...)
		return
	}
	h.logger.WarnContext(ctx, msg, attrs...)
}
