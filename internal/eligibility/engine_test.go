package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalTime is the fixed evaluation instant used across engine tests.
var evalTime = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func validApplicant() Applicant {
	return Applicant{Name: "Asha", DOB: "2000-01-15", Mobile: "9876543210"}
}

func TestEvaluate_EligibleApplicant(t *testing.T) {
	decision := Evaluate(validApplicant(), evalTime)

	assert.Equal(t, StatusEligible, decision.Status)
	require.NotNil(t, decision.CalculatedAge)
	assert.Equal(t, 24, *decision.CalculatedAge)
	require.NotNil(t, decision.RejectionReasons)
	assert.Empty(t, decision.RejectionReasons)
}

func TestEvaluate_NameRule(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run("name "+name, func(t *testing.T) {
			app := validApplicant()
			app.Name = name
			decision := Evaluate(app, evalTime)

			assert.Equal(t, StatusNotEligible, decision.Status)
			assert.Contains(t, decision.RejectionReasons, ReasonNameRequired)
		})
	}
}

func TestEvaluate_DOBRule(t *testing.T) {
	tests := []struct {
		name string
		dob  string
	}{
		{"missing", ""},
		{"unparsable", "not-a-date"},
		{"wrong format", "15/01/2000"},
		{"future date", "2030-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplicant()
			app.DOB = tt.dob
			decision := Evaluate(app, evalTime)

			assert.Equal(t, StatusNotEligible, decision.Status)
			assert.Contains(t, decision.RejectionReasons, ReasonInvalidDOB)
			assert.Nil(t, decision.CalculatedAge, "age must not be computed from an invalid dob")
			assert.NotContains(t, decision.RejectionReasons, ReasonBelowMinimumAge)
			assert.NotContains(t, decision.RejectionReasons, ReasonAboveMaximumAge)
		})
	}
}

func TestEvaluate_AgeRule(t *testing.T) {
	tests := []struct {
		name       string
		dob        string
		wantAge    int
		wantReason string
	}{
		{"well below minimum", "2010-01-01", 14, ReasonBelowMinimumAge},
		{"17 years 364 days", "2006-06-02", 17, ReasonBelowMinimumAge},
		{"exactly 18 on birthday", "2006-06-01", 18, ""},
		{"upper bound 35", "1988-06-10", 35, ""},
		{"just above maximum", "1988-05-01", 36, ReasonAboveMaximumAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplicant()
			app.DOB = tt.dob
			decision := Evaluate(app, evalTime)

			require.NotNil(t, decision.CalculatedAge)
			assert.Equal(t, tt.wantAge, *decision.CalculatedAge)
			if tt.wantReason == "" {
				assert.Equal(t, StatusEligible, decision.Status)
				assert.Empty(t, decision.RejectionReasons)
			} else {
				assert.Contains(t, decision.RejectionReasons, tt.wantReason)
			}
		})
	}
}

func TestEvaluate_MobileRule(t *testing.T) {
	for _, mobile := range []string{"", "123456789", "12345678901", "98765abc10", "12345"} {
		t.Run("mobile "+mobile, func(t *testing.T) {
			app := validApplicant()
			app.Mobile = mobile
			decision := Evaluate(app, evalTime)

			assert.Equal(t, StatusNotEligible, decision.Status)
			assert.Contains(t, decision.RejectionReasons, ReasonInvalidMobile)
		})
	}
}

// Failures across unrelated fields accumulate in rule order rather than
// short-circuiting.
func TestEvaluate_IndependentRulesAccumulateInOrder(t *testing.T) {
	app := Applicant{Name: "", DOB: "2010-01-01", Mobile: "12345"}
	decision := Evaluate(app, evalTime)

	assert.Equal(t, StatusNotEligible, decision.Status)
	require.NotNil(t, decision.CalculatedAge)
	assert.Equal(t, 14, *decision.CalculatedAge)
	assert.Equal(t, []string{
		ReasonNameRequired,
		ReasonBelowMinimumAge,
		ReasonInvalidMobile,
	}, decision.RejectionReasons)
}

func TestEvaluate_Idempotent(t *testing.T) {
	app := Applicant{Name: " ", DOB: "not-a-date", Mobile: "12"}

	first := Evaluate(app, evalTime)
	second := Evaluate(app, evalTime)

	assert.Equal(t, first, second)
}

func TestEvaluate_AcceptsRFC3339DOB(t *testing.T) {
	app := validApplicant()
	app.DOB = "2000-01-15T00:00:00Z"
	decision := Evaluate(app, evalTime)

	assert.Equal(t, StatusEligible, decision.Status)
	require.NotNil(t, decision.CalculatedAge)
	assert.Equal(t, 24, *decision.CalculatedAge)
}

func TestParseDOB(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		got, err := ParseDOB("2000-01-15")
		require.NoError(t, err)
		assert.Equal(t, date(2000, time.January, 15), got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		_, err := ParseDOB("  2000-01-15  ")
		assert.NoError(t, err)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseDOB("")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDOB("yesterday")
		assert.Error(t, err)
	})
}
