package valueobject

import (
	"testing"
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		name       string
		recurrence entity.BudgetPeriod
		start      time.Time
		end        *time.Time
		now        time.Time
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			name:       "monthly anchored on the first",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.January, 1),
			now:        time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC),
			wantStart:  date(2023, time.March, 1),
			wantEnd:    date(2023, time.April, 1),
		},
		{
			name:       "monthly steps back when anchor day is later than today",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.January, 20),
			now:        date(2023, time.March, 5),
			wantStart:  date(2023, time.February, 20),
			wantEnd:    date(2023, time.March, 20),
		},
		{
			name:       "monthly anchor normalised past a short month",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.January, 31),
			now:        date(2023, time.March, 1),
			wantStart:  date(2023, time.January, 31),
			wantEnd:    date(2023, time.March, 3),
		},
		{
			name:       "monthly across a year boundary",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2022, time.November, 10),
			now:        date(2023, time.January, 12),
			wantStart:  date(2023, time.January, 10),
			wantEnd:    date(2023, time.February, 10),
		},
		{
			name:       "weekly counts whole weeks since start",
			recurrence: entity.BudgetPeriodWeekly,
			start:      date(2023, time.January, 2),
			now:        time.Date(2023, time.January, 18, 12, 0, 0, 0, time.UTC),
			wantStart:  date(2023, time.January, 16),
			wantEnd:    date(2023, time.January, 23),
		},
		{
			name:       "daily ignores the anchor time of day",
			recurrence: entity.BudgetPeriodDaily,
			start:      time.Date(2023, time.January, 1, 15, 0, 0, 0, time.UTC),
			now:        time.Date(2023, time.March, 3, 9, 0, 0, 0, time.UTC),
			wantStart:  date(2023, time.March, 3),
			wantEnd:    date(2023, time.March, 4),
		},
		{
			name:       "before start returns the first period",
			recurrence: entity.BudgetPeriodWeekly,
			start:      date(2023, time.June, 1),
			now:        date(2023, time.May, 1),
			wantStart:  date(2023, time.June, 1),
			wantEnd:    date(2023, time.June, 8),
		},
		{
			name:       "now equal to start counts as started",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.June, 1),
			now:        date(2023, time.June, 1),
			wantStart:  date(2023, time.June, 1),
			wantEnd:    date(2023, time.July, 1),
		},
		{
			name:       "end date clamps the period end",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.January, 1),
			end:        datePtr(2023, time.March, 20),
			now:        date(2023, time.March, 10),
			wantStart:  date(2023, time.March, 1),
			wantEnd:    date(2023, time.March, 20),
		},
		{
			name:       "end date before period start is not applied",
			recurrence: entity.BudgetPeriodMonthly,
			start:      date(2023, time.January, 1),
			end:        datePtr(2023, time.February, 10),
			now:        date(2023, time.March, 10),
			wantStart:  date(2023, time.March, 1),
			wantEnd:    date(2023, time.April, 1),
		},
		{
			name:       "unknown recurrence falls back to the calendar month",
			recurrence: entity.BudgetPeriod("yearly"),
			start:      date(2022, time.July, 17),
			now:        date(2023, time.March, 10),
			wantStart:  date(2023, time.March, 1),
			wantEnd:    date(2023, time.April, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentPeriod(tt.recurrence, tt.start, tt.end, tt.now)

			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("expected start %v, got %v", tt.wantStart, got.Start)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("expected end %v, got %v", tt.wantEnd, got.End)
			}
			if !got.End.After(got.Start) {
				t.Errorf("expected non-empty period, got [%v, %v)", got.Start, got.End)
			}
		})
	}
}

func TestCurrentPeriod_ContainsNow(t *testing.T) {
	start := date(2023, time.January, 31)
	for day := 0; day < 400; day += 3 {
		now := start.AddDate(0, 0, day).Add(7 * time.Hour)
		for _, recurrence := range []entity.BudgetPeriod{
			entity.BudgetPeriodDaily,
			entity.BudgetPeriodWeekly,
			entity.BudgetPeriodMonthly,
		} {
			p := CurrentPeriod(recurrence, start, nil, now)
			if now.Before(p.Start) || !now.Before(p.End) {
				t.Fatalf("%s: period [%v, %v) does not contain %v", recurrence, p.Start, p.End, now)
			}
		}
	}
}

func TestPeriod_Contains(t *testing.T) {
	p := Period{Start: date(2023, time.March, 1), End: date(2023, time.April, 1)}

	if !p.Contains(p.Start) {
		t.Error("expected start to be contained")
	}
	if !p.Contains(p.End) {
		t.Error("expected end to be contained")
	}
	if p.Contains(p.Start.Add(-time.Nanosecond)) {
		t.Error("expected instant before start to be excluded")
	}
	if p.Contains(p.End.Add(time.Nanosecond)) {
		t.Error("expected instant after end to be excluded")
	}
}
