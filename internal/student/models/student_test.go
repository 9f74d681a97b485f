package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "admission/pkg/domain-errors"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func validParams() NewStudentParams {
	return NewStudentParams{
		Name:   "Asha",
		Age:    intPtr(24),
		Mobile: "9876543210",
		DOB:    timePtr(time.Date(2000, time.January, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func TestNewStudent_AppliesDefaults(t *testing.T) {
	id := uuid.New()
	student, err := NewStudent(id, validParams(), testNow)
	require.NoError(t, err)

	assert.Equal(t, id, student.ID)
	assert.Equal(t, AdmissionRejected, student.AdmissionStatus, "status defaults to Rejected")
	require.NotNil(t, student.EligibilityReasons)
	assert.Empty(t, student.EligibilityReasons, "reasons default to empty, not nil")
	assert.Equal(t, testNow, student.AdmissionDate, "admission date defaults to creation time")
	assert.Equal(t, testNow, student.CreatedAt)
	assert.Equal(t, testNow, student.UpdatedAt)
}

func TestNewStudent_TrimsName(t *testing.T) {
	p := validParams()
	p.Name = "  Asha  "
	student, err := NewStudent(uuid.New(), p, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Asha", student.Name)
}

func TestNewStudent_ExplicitStatusAndReasons(t *testing.T) {
	p := validParams()
	p.AdmissionStatus = "Approved"
	p.EligibilityReasons = []string{"manual override"}
	supplied := testNow.Add(-24 * time.Hour)
	p.AdmissionDate = timePtr(supplied)

	student, err := NewStudent(uuid.New(), p, testNow)
	require.NoError(t, err)
	assert.Equal(t, AdmissionApproved, student.AdmissionStatus)
	assert.Equal(t, []string{"manual override"}, student.EligibilityReasons)
	assert.Equal(t, supplied, student.AdmissionDate)
}

func TestNewStudent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewStudentParams)
	}{
		{"empty name", func(p *NewStudentParams) { p.Name = "" }},
		{"whitespace name", func(p *NewStudentParams) { p.Name = "   " }},
		{"missing age", func(p *NewStudentParams) { p.Age = nil }},
		{"short mobile", func(p *NewStudentParams) { p.Mobile = "12345" }},
		{"long mobile", func(p *NewStudentParams) { p.Mobile = "12345678901" }},
		{"mobile with letters", func(p *NewStudentParams) { p.Mobile = "98765abc10" }},
		{"missing dob", func(p *NewStudentParams) { p.DOB = nil }},
		{"zero dob", func(p *NewStudentParams) { p.DOB = timePtr(time.Time{}) }},
		{"unknown status", func(p *NewStudentParams) { p.AdmissionStatus = "Pending" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := NewStudent(uuid.New(), p, testNow)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
		})
	}
}

func TestAdmissionStatusIsValid(t *testing.T) {
	assert.True(t, AdmissionApproved.IsValid())
	assert.True(t, AdmissionRejected.IsValid())
	assert.False(t, AdmissionStatus("Pending").IsValid())
	assert.False(t, AdmissionStatus("").IsValid())
}
