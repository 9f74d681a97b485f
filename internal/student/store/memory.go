package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"admission/internal/student/models"
	"admission/pkg/platform/sentinel"
)

// InMemoryStore keeps records in insertion order behind a mutex. It backs
// unit tests and local development without a database.
type InMemoryStore struct {
	mu       sync.RWMutex
	students []*models.Student
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Insert(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *student
	s.students = append(s.students, &copied)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Student, 0, len(s.students))
	for _, st := range s.students {
		copied := *st
		out = append(out, &copied)
	}
	// Stable sort over insertion order gives the tie-break for equal
	// admission dates.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AdmissionDate.After(out[j].AdmissionDate)
	})
	return out, nil
}

func (s *InMemoryStore) Summarize(_ context.Context) (models.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := models.Summary{TotalStudents: len(s.students)}
	for _, st := range s.students {
		switch st.AdmissionStatus {
		case models.AdmissionApproved:
			summary.ApprovedStudents++
		case models.AdmissionRejected:
			summary.RejectedStudents++
		}
	}
	return summary, nil
}

func (s *InMemoryStore) Delete(_ context.Context, studentID uuid.UUID) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == studentID {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return st, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) DeleteDuplicates(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type groupKey string
	keyOf := func(st *models.Student) groupKey {
		return groupKey(fmt.Sprintf("%s|%d|%s|%s", st.Name, st.Age, st.Mobile, st.DOB.Format("2006-01-02")))
	}

	// First pass: earliest creation time per group. Insertion order breaks
	// creation-time ties because later records never replace an equal one.
	keep := make(map[groupKey]*models.Student)
	for _, st := range s.students {
		if cur, ok := keep[keyOf(st)]; !ok || st.CreatedAt.Before(cur.CreatedAt) {
			keep[keyOf(st)] = st
		}
	}

	var removed int64
	kept := s.students[:0]
	for _, st := range s.students {
		if keep[keyOf(st)] == st {
			kept = append(kept, st)
		} else {
			removed++
		}
	}
	s.students = kept
	return removed, nil
}
