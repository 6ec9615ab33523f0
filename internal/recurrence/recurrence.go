// Package recurrence decides on which calendar days a mission is due and
// provides the day, week and month ranges the rest of the service works with.
package recurrence

import (
	"time"

	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

// IsDue reports whether mission should be assigned on date.
// Dates are compared by calendar day in the location of date.
func IsDue(mission *entity.Mission, date time.Time) bool {
	if mission == nil || !mission.Active {
		return false
	}
	day := StartOfDay(date)
	loc := date.Location()
	if day.Before(StartOfDay(mission.StartDate.In(loc))) {
		return false
	}
	if mission.EndDate != nil && day.After(StartOfDay(mission.EndDate.In(loc))) {
		return false
	}
	if mission.RepeatDays.Empty() {
		return true
	}
	return mission.RepeatDays.Contains(day.Weekday())
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateIn reinterprets the calendar date of t (as stored in a DATE column) in loc.
func DateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// EndOfDay is the last representable instant of the day of t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// Range is an inclusive calendar range. Start is a midnight, End is the last nanosecond of the last day.
type Range struct {
	Start time.Time
	End   time.Time
}

// FirstDay and LastDay are the calendar dates of the range bounds.
func (r Range) FirstDay() time.Time { return StartOfDay(r.Start) }
func (r Range) LastDay() time.Time { return StartOfDay(r.End) }

func DayRange(t time.Time) Range {
	return Range{Start: StartOfDay(t), End: EndOfDay(t)}
}

// WeekRange spans Monday through Sunday of the week containing t.
func WeekRange(t time.Time) Range {
	day := StartOfDay(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday := day.AddDate(0, 0, -offset)
	return Range{Start: monday, End: EndOfDay(monday.AddDate(0, 0, 6))}
}

// MonthRange spans the whole calendar month of t.
func MonthRange(t time.Time) Range {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Range{Start: first, End: first.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// ParseYearMonth parses "YYYY-MM" to the first day of that month in loc.
func ParseYearMonth(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return time.Time{}, errorvalues.ErrInvalidYearMonth
	}
	return t, nil
}

// PreviousMonth returns the first day of the month before the month of t.
func PreviousMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, t.Location())
}
