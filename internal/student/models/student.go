package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "admission/pkg/domain-errors"
)

// AdmissionStatus is the final admission outcome recorded for a student.
type AdmissionStatus string

const (
	AdmissionApproved AdmissionStatus = "Approved"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// IsValid reports whether the status is one of the two recorded outcomes.
func (s AdmissionStatus) IsValid() bool {
	return s == AdmissionApproved || s == AdmissionRejected
}

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Student is a persisted admission record.
//
// Invariants:
//   - Name is non-empty after trimming
//   - Mobile always matches the 10-digit pattern
//   - AdmissionStatus is Approved or Rejected
//   - EligibilityReasons is never nil
//   - Records are immutable once created; a correction is modeled as
//     delete + re-create, never an in-place update
type Student struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Age                int             `json:"age"`
	Mobile             string          `json:"mobile"`
	DOB                time.Time       `json:"dob"`
	AdmissionStatus    AdmissionStatus `json:"admissionStatus"`
	EligibilityReasons []string        `json:"eligibilityReasons"`
	AdmissionDate      time.Time       `json:"admissionDate"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// Summary holds the admission counts served by the summary endpoint.
// Records with a status outside the enum (possible only if written by
// another system) count toward the total but neither bucket, so
// approved+rejected never exceeds total.
type Summary struct {
	TotalStudents    int `json:"totalStudents"`
	ApprovedStudents int `json:"approvedStudents"`
	RejectedStudents int `json:"rejectedStudents"`
}

// NewStudentParams carries caller-supplied fields for record creation.
// Pointer fields distinguish absent from zero values.
type NewStudentParams struct {
	Name               string
	Age                *int
	Mobile             string
	DOB                *time.Time
	AdmissionStatus    string
	EligibilityReasons []string
	AdmissionDate      *time.Time
}

// NewStudent validates params and applies defaults explicitly at the create
// boundary: status defaults to Rejected, reasons to an empty list, and the
// admission date to now. Validation failures return CodeBadRequest errors
// and the record is not constructed.
func NewStudent(studentID uuid.UUID, p NewStudentParams, now time.Time) (*Student, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "student name is required")
	}
	if p.Age == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "student age is required")
	}
	if !mobilePattern.MatchString(p.Mobile) {
		return nil, dErrors.New(dErrors.CodeBadRequest, "parent mobile number must be exactly 10 digits")
	}
	if p.DOB == nil || p.DOB.IsZero() {
		return nil, dErrors.New(dErrors.CodeBadRequest, "date of birth is required")
	}

	status := AdmissionRejected
	if p.AdmissionStatus != "" {
		status = AdmissionStatus(p.AdmissionStatus)
		if !status.IsValid() {
			return nil, dErrors.New(dErrors.CodeBadRequest, "admission status must be Approved or Rejected")
		}
	}

	reasons := p.EligibilityReasons
	if reasons == nil {
		reasons = []string{}
	}

	admissionDate := now
	if p.AdmissionDate != nil && !p.AdmissionDate.IsZero() {
		admissionDate = *p.AdmissionDate
	}

	return &Student{
		ID:                 studentID,
		Name:               name,
		Age:                *p.Age,
		Mobile:             p.Mobile,
		DOB:                *p.DOB,
		AdmissionStatus:    status,
		EligibilityReasons: reasons,
		AdmissionDate:      admissionDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
