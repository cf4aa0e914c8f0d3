// Package valueobject holds the pure budget engine: period boundaries and usage figures.
package valueobject

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// Period is the half-open interval [Start, End) a budget is measured against.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on or after Start and on or before End.
// Both bounds are inclusive, matching how spending is matched to a period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// CurrentPeriod computes the recurrence window of a budget that contains now.
// When now precedes startDate the first window is returned instead.
//
// Monthly windows start at startDate.AddDate(0, n, 0). Unlike a plain month
// difference, n is lowered while that start still lies after now, so an anchor
// on a later day of month than today (or one normalised past a short month,
// Jan 31 + 1 month = Mar 3) yields the window containing now rather than the
// next one.
func CurrentPeriod(recurrence entity.BudgetPeriod, startDate time.Time, endDate *time.Time, now time.Time) Period {
	var p Period

	if now.Before(startDate) {
		p = Period{Start: startDate, End: addUnit(recurrence, startDate)}
	} else {
		switch recurrence {
		case entity.BudgetPeriodDaily:
			// Calendar day of now, not anchored to the start date's time of day.
			start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			p = Period{Start: start, End: start.AddDate(0, 0, 1)}

		case entity.BudgetPeriodWeekly:
			days := int(now.Sub(startDate) / (24 * time.Hour))
			start := startDate.AddDate(0, 0, (days/7)*7)
			p = Period{Start: start, End: start.AddDate(0, 0, 7)}

		case entity.BudgetPeriodMonthly:
			months := (now.Year()-startDate.Year())*12 + int(now.Month()-startDate.Month())
			start := startDate.AddDate(0, months, 0)
			for months > 0 && start.After(now) {
				months--
				start = startDate.AddDate(0, months, 0)
			}
			p = Period{Start: start, End: start.AddDate(0, 1, 0)}

		default:
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			p = Period{Start: start, End: start.AddDate(0, 1, 0)}
		}
	}

	if endDate != nil && p.End.After(*endDate) && endDate.After(p.Start) {
		p.End = *endDate
	}

	return p
}

func addUnit(recurrence entity.BudgetPeriod, t time.Time) time.Time {
	switch recurrence {
	case entity.BudgetPeriodDaily:
		return t.AddDate(0, 0, 1)
	case entity.BudgetPeriodWeekly:
		return t.AddDate(0, 0, 7)
	default:
		return t.AddDate(0, 1, 0)
	}
}
