// Package store persists student admission records. Implementations are
// interface-driven so services stay testable against the in-memory store
// while production runs on PostgreSQL.
package store

import (
	"context"

	"github.com/google/uuid"

	"admission/internal/student/models"
)

// Store is the persistence contract for admission records. Each method is a
// single atomic store-level action; no operation spans multiple records
// transactionally, and no cross-operation isolation is promised beyond what
// the backing store gives a single statement.
type Store interface {
	// Insert persists a new record. The record is immutable afterwards.
	Insert(ctx context.Context, student *models.Student) error

	// List returns all records ordered by admission date descending,
	// ties broken by insertion order.
	List(ctx context.Context) ([]*models.Student, error)

	// Summarize counts total, approved, and rejected records.
	Summarize(ctx context.Context) (models.Summary, error)

	// Delete removes the record with the given ID and returns its prior
	// contents, or sentinel.ErrNotFound when no such record exists.
	Delete(ctx context.Context, studentID uuid.UUID) (*models.Student, error)

	// DeleteDuplicates removes records sharing identical
	// (name, age, mobile, dob), keeping only the earliest-created copy of
	// each group. Returns the number of removed records. Idempotent.
	DeleteDuplicates(ctx context.Context) (int64, error)
}
