package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/recurrence"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/metrics"
)

type AssignmentsService struct {
	missions    repository.MissionsRepositoryI
	assignments repository.AssignmentsRepositoryI
	loc         *time.Location
	now         func() time.Time
}

func NewAssignmentsService(missionsRepo repository.MissionsRepositoryI, assignmentsRepo repository.AssignmentsRepositoryI, loc *time.Location) *AssignmentsService {
	if missionsRepo == nil || assignmentsRepo == nil {
		log.Fatal("on assignments service provided nil repos")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AssignmentsService{
		missions:    missionsRepo,
		assignments: assignmentsRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// WithClock replaces the time source.
func (as *AssignmentsService) WithClock(now func() time.Time) *AssignmentsService {
	as.now = now
	return as
}

func (as *AssignmentsService) today() time.Time {
	return recurrence.StartOfDay(as.now().In(as.loc))
}

// PlanAssignments returns the records to create for today: one ASSIGNED record for every
// mission due today that has no record yet. It does not touch storage.
func PlanAssignments(memberID uuid.UUID, missions []*entity.Mission, existing []*entity.Assignment, today time.Time) []*entity.Assignment {
	assigned := make(map[uuid.UUID]struct{}, len(existing))
	for _, a := range existing {
		assigned[a.MissionID] = struct{}{}
	}
	planned := make([]*entity.Assignment, 0, len(missions))
	for _, m := range missions {
		if _, ok := assigned[m.ID]; ok {
			continue
		}
		if !recurrence.IsDue(m, today) {
			continue
		}
		assigned[m.ID] = struct{}{}
		planned = append(planned, &entity.Assignment{
			MissionID:    m.ID,
			MemberID:     memberID,
			AssignedDate: today,
			Status:       entity.StatusAssigned,
		})
	}
	return planned
}

// GetOrCreateTodaysAssignments is safe to call any number of times a day, from concurrent requests too:
// the (member, mission, date) unique key decides which insert wins and the result is always re-read.
func (as *AssignmentsService) GetOrCreateTodaysAssignments(ctx context.Context, memberID uuid.UUID) ([]*entity.Assignment, error) {
	today := as.today()
	missions, err := as.missions.ListAssignable(ctx, memberID)
	if err != nil {
		return nil, errors.New("missions repository error: " + err.Error())
	}
	for _, m := range missions {
		normalizeMission(m, as.loc)
	}
	existing, err := as.todays(ctx, memberID, today)
	if err != nil {
		return nil, err
	}
	planned := PlanAssignments(memberID, missions, existing, today)
	if len(planned) == 0 {
		return existing, nil
	}
	created, err := as.assignments.CreateBatch(ctx, planned)
	switch {
	case err == nil:
		metrics.RecordAssignmentsCreated(created)
	case errors.Is(err, errorvalues.ErrAssignmentExists):
		slog.Default().Debug("assignments created concurrently", slog.String("uid", memberID.String()))
	default:
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return as.todays(ctx, memberID, today)
}

func (as *AssignmentsService) todays(ctx context.Context, memberID uuid.UUID, today time.Time) ([]*entity.Assignment, error) {
	records, err := as.assignments.GetByMemberAndDate(ctx, memberID, today)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	for _, a := range records {
		a.AssignedDate = recurrence.DateIn(a.AssignedDate, as.loc)
	}
	return records, nil
}

// Complete marks member's assignment as done. Only today's records can be completed.
func (as *AssignmentsService) Complete(ctx context.Context, assignmentID, memberID uuid.UUID) (*entity.Assignment, error) {
	a, err := as.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentNotFound) {
			return nil, err
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	if a.MemberID != memberID {
		return nil, errorvalues.ErrWrongOwner
	}
	a.AssignedDate = recurrence.DateIn(a.AssignedDate, as.loc)
	now := as.now().In(as.loc)
	if recurrence.StartOfDay(now).After(a.AssignedDate) {
		return nil, errorvalues.ErrAssignmentExpired
	}
	if a.Status == entity.StatusCompleted {
		return nil, errorvalues.ErrAssignmentCompleted
	}
	err = as.assignments.MarkCompleted(ctx, a.ID, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentCompleted) {
			return nil, err
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	metrics.AssignmentsCompleted.Inc()
	a.Status = entity.StatusCompleted
	a.CompletedAt = &now
	return a, nil
}
