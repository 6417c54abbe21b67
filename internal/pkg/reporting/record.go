package reporting

import (
	"time"

	"mna-assessment-service/internal/pkg/scoring"
)

const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"

	NotProvided = "not_provided"
	Unknown     = "unknown"

	dateLayout = "2006-01-02"
)

// Record is the read-only view of a stored assessment the reports work on.
// Height is in centimetres and weight in kilograms.
type Record struct {
	ID            string
	Questionnaire string
	Anonymous     bool
	Name          string
	Gender        string
	DOB           *time.Time
	Height        *float64
	Weight        *float64
	Answers       scoring.Answers
	TotalScore    float64
	Status        string
	CreatedAt     time.Time
}

// providedGender returns the gender code used by the histograms, or
// NotProvided when the subject did not share it.
func (r Record) providedGender() string {
	if r.Anonymous {
		return NotProvided
	}
	switch r.Gender {
	case GenderMale, GenderFemale:
		return r.Gender
	default:
		return NotProvided
	}
}

// Age is the year difference between now and the date of birth. The second
// value is false for anonymous subjects, missing dates and birth days after
// the calendar day of now. DOB holds a calendar date, so its own day is
// compared with the day of now in now's location.
func (r Record) Age(now time.Time) (int, bool) {
	if r.Anonymous || r.DOB == nil || calendarDay(*r.DOB) > calendarDay(now) {
		return 0, false
	}
	return now.Year() - r.DOB.Year(), true
}

func calendarDay(t time.Time) string {
	return t.Format(dateLayout)
}

// BMI is weight / (height in metres)^2, available when both are positive.
func (r Record) BMI() (float64, bool) {
	if r.Height == nil || r.Weight == nil || *r.Height <= 0 || *r.Weight <= 0 {
		return 0, false
	}
	metres := *r.Height / 100
	return *r.Weight / (metres * metres), true
}
