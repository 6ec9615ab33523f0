package recurrence_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/recurrence"
	"github.com/limbo/clover/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

func TestIsDueEveryDay(t *testing.T) {
	end := date(2026, 10, 31)
	m := &entity.Mission{
		Active:    true,
		StartDate: date(2026, 10, 1),
		EndDate:   &end,
	}
	for d := date(2026, 10, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		assert.True(t, recurrence.IsDue(m, d.Add(13*time.Hour)), d.String())
	}
	assert.False(t, recurrence.IsDue(m, date(2026, 9, 30)))
	assert.False(t, recurrence.IsDue(m, date(2026, 11, 1)))
}

func TestIsDueRepeatDays(t *testing.T) {
	m := &entity.Mission{
		Active:     true,
		StartDate:  date(2026, 10, 1),
		RepeatDays: entity.NewWeekdaySet(time.Monday, time.Thursday),
	}
	for d := date(2026, 9, 25); d.Before(date(2026, 11, 30)); d = d.AddDate(0, 0, 1) {
		want := !d.Before(m.StartDate) && (d.Weekday() == time.Monday || d.Weekday() == time.Thursday)
		assert.Equal(t, want, recurrence.IsDue(m, d), d.String())
	}
}

func TestIsDueInactiveAndNil(t *testing.T) {
	m := &entity.Mission{Active: false, StartDate: date(2026, 1, 1)}
	assert.False(t, recurrence.IsDue(m, date(2026, 10, 14)))
	assert.False(t, recurrence.IsDue(nil, date(2026, 10, 14)))
}

func TestIsDueBoundaryDays(t *testing.T) {
	start := date(2026, 10, 14)
	m := &entity.Mission{Active: true, StartDate: start, EndDate: &start}
	assert.True(t, recurrence.IsDue(m, start))
	assert.True(t, recurrence.IsDue(m, start.Add(23*time.Hour+59*time.Minute)))
	assert.False(t, recurrence.IsDue(m, start.Add(-time.Minute)))
	assert.False(t, recurrence.IsDue(m, start.AddDate(0, 0, 1)))
}

func TestIsDueStoredUTCDates(t *testing.T) {
	// DATE columns come back as UTC midnights
	start := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	m := &entity.Mission{Active: true, StartDate: recurrence.DateIn(start, kst)}
	assert.True(t, recurrence.IsDue(m, date(2026, 10, 14).Add(time.Hour)))
	assert.False(t, recurrence.IsDue(m, date(2026, 10, 13).Add(23*time.Hour)))
}

func TestWeekRange(t *testing.T) {
	// 2026-10-14 is a Wednesday
	r := recurrence.WeekRange(date(2026, 10, 14).Add(10 * time.Hour))
	assert.Equal(t, date(2026, 10, 12), r.Start)
	assert.Equal(t, date(2026, 10, 19).Add(-time.Nanosecond), r.End)
	assert.Equal(t, date(2026, 10, 18), r.LastDay())

	sunday := recurrence.WeekRange(date(2026, 10, 18))
	assert.Equal(t, date(2026, 10, 12), sunday.Start)
}

func TestMonthRange(t *testing.T) {
	r := recurrence.MonthRange(date(2026, 2, 14))
	assert.Equal(t, date(2026, 2, 1), r.FirstDay())
	assert.Equal(t, date(2026, 2, 28), r.LastDay())
	assert.Equal(t, time.Date(2026, 2, 28, 23, 59, 59, 999999999, kst), r.End)
}

func TestParseYearMonth(t *testing.T) {
	m, err := recurrence.ParseYearMonth("2026-03", kst)
	require.NoError(t, err)
	assert.Equal(t, date(2026, 3, 1), m)
	assert.Equal(t, date(2026, 2, 1), recurrence.PreviousMonth(m))
	assert.Equal(t, date(2025, 12, 1), recurrence.PreviousMonth(date(2026, 1, 20)))

	_, err = recurrence.ParseYearMonth("2026/03", kst)
	assert.ErrorIs(t, err, errorvalues.ErrInvalidYearMonth)
}
