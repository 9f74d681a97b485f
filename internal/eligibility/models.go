package eligibility

// Status is the final outcome of an eligibility evaluation.
type Status string

const (
	StatusEligible    Status = "Eligible"
	StatusNotEligible Status = "Not Eligible"
)

// Admission age bounds, inclusive on both ends.
const (
	MinAge = 18
	MaxAge = 35
)

// Rejection reasons are part of the public contract: callers display them
// verbatim, so the wording is fixed.
const (
	ReasonNameRequired    = "Student name is required"
	ReasonInvalidDOB      = "Date of Birth must be a valid past date"
	ReasonBelowMinimumAge = "Age is below minimum requirement (must be at least 18)"
	ReasonAboveMaximumAge = "Age exceeds maximum limit (must be 35 or below)"
	ReasonInvalidMobile   = "Parent mobile number must be exactly 10 digits"
)

// Applicant is the raw input to the reason engine. Fields arrive untrusted;
// the rules themselves decide what is malformed, so nothing here is
// validated up front.
type Applicant struct {
	Name   string `json:"name"`
	DOB    string `json:"dob"`
	Mobile string `json:"mobile"`
}

// Decision is the structured output of the reason engine.
// CalculatedAge is nil when the date of birth did not parse to a valid past
// date. RejectionReasons is empty iff Status is Eligible, and is never nil
// so it always serializes as a JSON array.
type Decision struct {
	Status           Status   `json:"eligibilityStatus"`
	CalculatedAge    *int     `json:"calculatedAge"`
	RejectionReasons []string `json:"rejectionReasons"`
}
