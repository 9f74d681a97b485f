// Package service orchestrates admission record operations between the HTTP
// layer and the store. It owns validation-at-the-boundary, error
// translation, and metrics. It never retries; failures surface
// synchronously to the caller.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"admission/internal/platform/metrics"
	"admission/internal/student/models"
	dErrors "admission/pkg/domain-errors"
	"admission/pkg/platform/sentinel"
	"admission/pkg/requestcontext"
)

// Store is the persistence contract the service depends on.
// internal/student/store provides the implementations.
type Store interface {
	Insert(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	Summarize(ctx context.Context) (models.Summary, error)
	Delete(ctx context.Context, studentID uuid.UUID) (*models.Student, error)
	DeleteDuplicates(ctx context.Context) (int64, error)
}

// Service coordinates admission record lifecycle operations.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches Prometheus metrics to the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates a student admission service backed by the given store.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the candidate record, assigns its identity and
// timestamps, and persists it. Validation failures return CodeBadRequest
// errors and nothing is written.
func (s *Service) Create(ctx context.Context, params models.NewStudentParams) (*models.Student, error) {
	student, err := models.NewStudent(uuid.New(), params, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, student); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save student")
	}

	s.metrics.IncStudentsCreated()
	return student, nil
}

// List returns all records, most recent admission first.
func (s *Service) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch students")
	}
	return students, nil
}

// Summarize returns total, approved, and rejected record counts.
func (s *Service) Summarize(ctx context.Context) (models.Summary, error) {
	summary, err := s.store.Summarize(ctx)
	if err != nil {
		return models.Summary{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch summary")
	}
	return summary, nil
}

// Delete removes the record with the given identifier and returns its prior
// contents. An unknown identifier is a distinct not-found outcome, not a
// generic failure.
func (s *Service) Delete(ctx context.Context, rawID string) (*models.Student, error) {
	studentID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid student id")
	}

	student, err := s.store.Delete(ctx, studentID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "student not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete student")
	}

	s.metrics.IncStudentsDeleted()
	return student, nil
}

// RemoveDuplicates deletes all but the earliest-created copy of records
// sharing identical (name, age, mobile, dob). Idempotent batch cleanup; not
// part of the request path.
func (s *Service) RemoveDuplicates(ctx context.Context) (int64, error) {
	removed, err := s.store.DeleteDuplicates(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove duplicate students")
	}
	return removed, nil
}
