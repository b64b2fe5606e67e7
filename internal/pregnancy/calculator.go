// Package pregnancy derives gestational progress from a reference
// date. The computation is pure: callers pass "today" explicitly, so
// client and server arrive at the same numbers independently.
package pregnancy

import (
	"errors"
	"math"
	"time"

	"github.com/nigelkyalo/mamacare-backend/internal/models"
)

// TermDays is the fixed 40-week term used for all derivations.
const TermDays = 280

// DateLayout is the wire format for profile dates.
const DateLayout = "2006-01-02"

var ErrUnknownMethod = errors.New("unknown calculation method")

// Progress is the derived state of a pregnancy at a point in time.
type Progress struct {
	DueDate    time.Time `json:"dueDate"`
	Weeks      int       `json:"weeks"`
	Days       int       `json:"days"`
	Percentage float64   `json:"percentage"`
}

// Calculate derives progress from the reference date. For the
// lastMenstrualPeriod method the due date is the reference plus 280
// days; for dueDate the reference is used as-is.
//
// Elapsed days are clamped to [0, TermDays]: dates past the due date
// read as week 40+0 at 100%, dates before the LMP as week 0+0 at 0%.
// Every field stays in range and progress is monotone as today
// advances.
func Calculate(today time.Time, method string, reference time.Time) (Progress, error) {
	var due time.Time
	switch method {
	case models.MethodDueDate:
		due = reference
	case models.MethodLastMenstrualPeriod:
		due = reference.AddDate(0, 0, TermDays)
	default:
		return Progress{}, ErrUnknownMethod
	}

	daysRemaining := int(math.Ceil(due.Sub(today).Hours() / 24))

	elapsed := TermDays - daysRemaining
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > TermDays {
		elapsed = TermDays
	}

	return Progress{
		DueDate:    due,
		Weeks:      elapsed / 7,
		Days:       elapsed % 7,
		Percentage: float64(elapsed) / TermDays * 100,
	}, nil
}

// FromProfile derives progress from a stored profile, parsing
// whichever date its calculation method selects.
func FromProfile(today time.Time, p *models.PregnancyProfile) (Progress, error) {
	raw := p.DueDate
	if p.CalculationMethod == models.MethodLastMenstrualPeriod {
		raw = p.LastMenstrualPeriod
	}

	reference, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Progress{}, err
	}
	return Calculate(today, p.CalculationMethod, reference)
}
