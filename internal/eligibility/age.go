package eligibility

import "time"

// AgeAt returns the number of completed years between dob and today,
// accounting for whether the birthday has occurred yet this year. The caller
// must ensure dob is a valid past date; Evaluate enforces that ordering.
func AgeAt(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}
	return age
}
