package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/clover/internal/analytics"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/recurrence"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
)

type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDaily, PeriodWeekly:
		return p, nil
	}
	return "", errorvalues.ErrInvalidPeriod
}

type StatsService struct {
	assignments repository.AssignmentsRepositoryI
	loc         *time.Location
}

func NewStatsService(assignmentsRepo repository.AssignmentsRepositoryI, loc *time.Location) *StatsService {
	if assignmentsRepo == nil {
		log.Fatal("provided nil assignmentsRepo")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{
		assignments: assignmentsRepo,
		loc:         loc,
	}
}

// MonthlyParticipation: assigned records are counted by assigned date,
// completed ones by completion time, both within the calendar month of month.
func (ss *StatsService) MonthlyParticipation(ctx context.Context, memberID uuid.UUID, month time.Time) (*entity.Participation, error) {
	r := recurrence.MonthRange(month.In(ss.loc))
	assigned, err := ss.assignments.CountAssigned(ctx, memberID, r.FirstDay(), r.LastDay())
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	completed, err := ss.assignments.CountCompleted(ctx, memberID, r.Start, r.End)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return &entity.Participation{
		Month:          r.Start.Format("2006-01"),
		AssignedCount:  assigned,
		CompletedCount: completed,
		Rate:           analytics.CompletionRate(assigned, completed),
	}, nil
}

// TopCategoryGrowth compares completions per category in month against the month before.
func (ss *StatsService) TopCategoryGrowth(ctx context.Context, memberID uuid.UUID, month time.Time, limit int) ([]entity.CategoryGrowth, error) {
	curr := recurrence.MonthRange(month.In(ss.loc))
	prev := recurrence.MonthRange(recurrence.PreviousMonth(curr.Start))
	prevCounts, err := ss.assignments.CountCompletedByCategory(ctx, memberID, prev.Start, prev.End)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	currCounts, err := ss.assignments.CountCompletedByCategory(ctx, memberID, curr.Start, curr.End)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return analytics.RankGrowth(prevCounts, currCounts, limit), nil
}

func (ss *StatsService) CompletedMissions(ctx context.Context, memberID uuid.UUID, period Period, date time.Time) ([]*entity.CompletedMission, error) {
	var r recurrence.Range
	switch period {
	case PeriodDaily:
		r = recurrence.DayRange(date.In(ss.loc))
	case PeriodWeekly:
		r = recurrence.WeekRange(date.In(ss.loc))
	default:
		return nil, errorvalues.ErrInvalidPeriod
	}
	completed, err := ss.assignments.ListCompleted(ctx, memberID, r.Start, r.End)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	for _, c := range completed {
		c.AssignedDate = recurrence.DateIn(c.AssignedDate, ss.loc)
		c.CompletedAt = c.CompletedAt.In(ss.loc)
	}
	return completed, nil
}
