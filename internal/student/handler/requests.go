package handler

import (
	"admission/internal/eligibility"
	"admission/internal/student/models"
	dErrors "admission/pkg/domain-errors"
)

// createStudentRequest is the wire shape for confirming an admission.
// Age uses a pointer so a missing field is distinguishable from zero.
type createStudentRequest struct {
	Name               string   `json:"name"`
	Age                *int     `json:"age"`
	Mobile             string   `json:"mobile"`
	DOB                string   `json:"dob"`
	AdmissionStatus    string   `json:"admissionStatus"`
	EligibilityReasons []string `json:"eligibilityReasons"`
}

// toParams converts the wire request into creation params. Only the dob
// needs transport-level parsing; everything else is validated by the models
// constructor.
func (r createStudentRequest) toParams() (models.NewStudentParams, error) {
	params := models.NewStudentParams{
		Name:               r.Name,
		Age:                r.Age,
		Mobile:             r.Mobile,
		AdmissionStatus:    r.AdmissionStatus,
		EligibilityReasons: r.EligibilityReasons,
	}

	if r.DOB != "" {
		dob, err := eligibility.ParseDOB(r.DOB)
		if err != nil {
			return models.NewStudentParams{}, dErrors.New(dErrors.CodeBadRequest, "date of birth must be a valid date (YYYY-MM-DD)")
		}
		params.DOB = &dob
	}

	return params, nil
}
