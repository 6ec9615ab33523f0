package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/recurrence"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/pkg/entity"
)

type MissionsService struct {
	repo repository.MissionsRepositoryI
	loc  *time.Location
}

func NewMissionsService(missionsRepo repository.MissionsRepositoryI, loc *time.Location) *MissionsService {
	if missionsRepo == nil {
		log.Fatal("provided nil missionsRepo")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &MissionsService{
		repo: missionsRepo,
		loc:  loc,
	}
}

// applyRequest copies validated request fields onto mission.
func (ms *MissionsService) applyRequest(mission *entity.Mission, req *MissionRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	days, err := entity.ParseWeekdaySet(req.RepeatDays)
	if err != nil {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	start := recurrence.DateIn(req.StartDate, ms.loc)
	var end *time.Time
	if req.EndDate != nil {
		e := recurrence.DateIn(*req.EndDate, ms.loc)
		if e.Before(start) {
			return errorvalues.ErrInvalidSchedule
		}
		end = &e
	}
	mission.Title = req.Title
	mission.Description = req.Description
	mission.Category = req.Category
	mission.StartDate = start
	mission.EndDate = end
	mission.RepeatDays = days
	if req.Active != nil {
		mission.Active = *req.Active
	}
	return nil
}

func (ms *MissionsService) CreateMission(ctx context.Context, memberID uuid.UUID, req *MissionRequest) (*entity.Mission, error) {
	m := entity.Mission{
		OwnerID: &memberID,
		Kind:    entity.MissionKindMy,
		Active:  true,
	}
	if err := ms.applyRequest(&m, req); err != nil {
		return nil, err
	}
	id, err := ms.repo.Create(ctx, &m)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrMemberNotFound
		}
		return nil, errors.New("missions repository error: " + err.Error())
	}
	return ms.getMission(ctx, id)
}

func (ms *MissionsService) GetMemberMissions(ctx context.Context, memberID uuid.UUID, pagination PaginationOpts) ([]*entity.Mission, error) {
	missions, err := ms.repo.GetByOwnerID(ctx, memberID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("missions repository error: " + err.Error())
	}
	for _, m := range missions {
		normalizeMission(m, ms.loc)
	}
	return missions, nil
}

// GetMission returns member's own mission or a clover one, which everybody can read.
func (ms *MissionsService) GetMission(ctx context.Context, missionID, memberID uuid.UUID) (*entity.Mission, error) {
	mission, err := ms.getMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if mission.Kind == entity.MissionKindClover {
		return mission, nil
	}
	if !ownedBy(mission, memberID) {
		return nil, errorvalues.ErrWrongOwner
	}
	return mission, nil
}

func (ms *MissionsService) UpdateMission(ctx context.Context, missionID, memberID uuid.UUID, req *MissionRequest) (*entity.Mission, error) {
	mission, err := ms.getMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if !ownedBy(mission, memberID) {
		return nil, errorvalues.ErrWrongOwner
	}
	if err = ms.applyRequest(mission, req); err != nil {
		return nil, err
	}
	err = ms.repo.Update(ctx, mission)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return nil, err
		}
		return nil, errors.New("missions repository error: " + err.Error())
	}
	return ms.getMission(ctx, missionID)
}

func (ms *MissionsService) DeleteMission(ctx context.Context, missionID, memberID uuid.UUID) error {
	mission, err := ms.getMission(ctx, missionID)
	if err != nil {
		return err
	}
	if !ownedBy(mission, memberID) {
		return errorvalues.ErrWrongOwner
	}
	err = ms.repo.Delete(ctx, missionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return err
		}
		return errors.New("missions repository error: " + err.Error())
	}
	return nil
}

func (ms *MissionsService) GetCloverMissions(ctx context.Context) ([]*entity.Mission, error) {
	missions, err := ms.repo.ListClover(ctx)
	if err != nil {
		return nil, errors.New("missions repository error: " + err.Error())
	}
	for _, m := range missions {
		normalizeMission(m, ms.loc)
	}
	return missions, nil
}

func (ms *MissionsService) getMission(ctx context.Context, id uuid.UUID) (*entity.Mission, error) {
	mission, err := ms.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			return nil, err
		}
		return nil, errors.New("missions repository error: " + err.Error())
	}
	normalizeMission(mission, ms.loc)
	return mission, nil
}

func ownedBy(mission *entity.Mission, memberID uuid.UUID) bool {
	return mission.OwnerID != nil && *mission.OwnerID == memberID
}

// normalizeMission moves DATE columns, which come back as UTC midnights, to the same day in loc.
func normalizeMission(m *entity.Mission, loc *time.Location) {
	m.StartDate = recurrence.DateIn(m.StartDate, loc)
	if m.EndDate != nil {
		end := recurrence.DateIn(*m.EndDate, loc)
		m.EndDate = &end
	}
}
