// Package eligibility implements the admission reason engine: a fixed
// sequence of independent field checks that turns raw applicant data into a
// deterministic decision plus human-readable rejection reasons.
package eligibility

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Accepted date-of-birth layouts. Plain dates are the norm; full timestamps
// are tolerated for callers that send what their date pickers produce.
var dobLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDOB parses a date-of-birth string. It does not check that the date is
// in the past; that is the dob rule's job.
func ParseDOB(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("date of birth is empty")
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Evaluate runs the four admission rules over the applicant and returns the
// decision. It is a pure function: no side effects, deterministic for a
// fixed now, and it never fails on malformed input since malformed input is
// exactly what the rules test for.
//
// The rules are evaluated independently in a fixed order (name, dob, age,
// mobile) with each failure appending one reason; a failure in one field
// never short-circuits the checks on the others. The single exception is the
// age rule, which depends on a parseable dob.
func Evaluate(app Applicant, now time.Time) Decision {
	reasons := make([]string, 0, 4)

	// Rule 1: name must be non-empty after trimming.
	if strings.TrimSpace(app.Name) == "" {
		reasons = append(reasons, ReasonNameRequired)
	}

	// Rule 2: dob must parse to a valid date strictly in the past.
	dob, err := ParseDOB(app.DOB)
	isValidDOB := err == nil && dob.Before(now)
	if !isValidDOB {
		reasons = append(reasons, ReasonInvalidDOB)
	}

	// Rule 3: age must fall within [MinAge, MaxAge]. Skipped entirely when
	// the dob is invalid: the dob rule's reason already covers the field,
	// so an age reason never co-occurs with the dob reason.
	var calculatedAge *int
	if isValidDOB {
		age := AgeAt(dob, now)
		calculatedAge = &age
		switch {
		case age < MinAge:
			reasons = append(reasons, ReasonBelowMinimumAge)
		case age > MaxAge:
			reasons = append(reasons, ReasonAboveMaximumAge)
		}
	}

	// Rule 4: mobile must be exactly 10 decimal digits.
	if !mobilePattern.MatchString(app.Mobile) {
		reasons = append(reasons, ReasonInvalidMobile)
	}

	status := StatusEligible
	if len(reasons) > 0 {
		status = StatusNotEligible
	}

	return Decision{
		Status:           status,
		CalculatedAge:    calculatedAge,
		RejectionReasons: reasons,
	}
}
