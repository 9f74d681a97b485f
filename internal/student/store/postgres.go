package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"admission/internal/student/models"
	"admission/pkg/platform/sentinel"
)

// PostgresStore persists admission records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed record store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const schema = `
CREATE TABLE IF NOT EXISTS students (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	mobile VARCHAR(10) NOT NULL CHECK (mobile ~ '^[0-9]{10}$'),
	dob DATE NOT NULL,
	admission_status TEXT NOT NULL DEFAULT 'Rejected',
	eligibility_reasons TEXT[] NOT NULL DEFAULT '{}',
	admission_date TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_students_admission_status ON students (admission_status);
CREATE INDEX IF NOT EXISTS idx_students_admission_date ON students (admission_date DESC);
`

// EnsureSchema creates the students table and its indexes if they do not
// exist yet. Safe to run on every startup.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure students schema: %w", err)
	}
	return nil
}

const studentColumns = `id, name, age, mobile, dob, admission_status, eligibility_reasons, admission_date, created_at, updated_at`

func (s *PostgresStore) Insert(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(ctx, query,
		student.ID,
		student.Name,
		student.Age,
		student.Mobile,
		student.DOB,
		string(student.AdmissionStatus),
		pq.Array(student.EligibilityReasons),
		student.AdmissionDate,
		student.CreatedAt,
		student.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT ` + studentColumns + `
		FROM students
		ORDER BY admission_date DESC, created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *PostgresStore) Summarize(ctx context.Context) (models.Summary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE admission_status = $1),
			COUNT(*) FILTER (WHERE admission_status = $2)
		FROM students
	`
	var summary models.Summary
	err := s.db.QueryRowContext(ctx, query,
		string(models.AdmissionApproved),
		string(models.AdmissionRejected),
	).Scan(&summary.TotalStudents, &summary.ApprovedStudents, &summary.RejectedStudents)
	if err != nil {
		return models.Summary{}, fmt.Errorf("summarize students: %w", err)
	}
	return summary, nil
}

func (s *PostgresStore) Delete(ctx context.Context, studentID uuid.UUID) (*models.Student, error) {
	query := `
		DELETE FROM students
		WHERE id = $1
		RETURNING ` + studentColumns + `
	`
	row := s.db.QueryRowContext(ctx, query, studentID)
	student, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("delete student: %w", err)
	}
	return student, nil
}

func (s *PostgresStore) DeleteDuplicates(ctx context.Context) (int64, error) {
	// DISTINCT ON picks the earliest-created row per (name, age, mobile,
	// dob) group; everything else goes.
	query := `
		DELETE FROM students
		WHERE id NOT IN (
			SELECT DISTINCT ON (name, age, mobile, dob) id
			FROM students
			ORDER BY name, age, mobile, dob, created_at ASC, id ASC
		)
	`
	res, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("delete duplicate students: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete duplicate students: %w", err)
	}
	return removed, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (*models.Student, error) {
	var (
		student models.Student
		status  string
		reasons pq.StringArray
	)
	err := row.Scan(
		&student.ID,
		&student.Name,
		&student.Age,
		&student.Mobile,
		&student.DOB,
		&status,
		&reasons,
		&student.AdmissionDate,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	student.AdmissionStatus = models.AdmissionStatus(status)
	student.EligibilityReasons = []string(reasons)
	if student.EligibilityReasons == nil {
		student.EligibilityReasons = []string{}
	}
	return &student, nil
}
