package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

type MissionsRepository struct {
	conn PgConnection
}

func NewMissionsRepo(conn PgConnection) *MissionsRepository {
	mustPing(conn, "missionsRepo")
	return &MissionsRepository{
		conn: conn,
	}
}

const missionColumns = `id, owner_id, kind, category, title, description, start_date, end_date, repeat_days, active, created_at, updated_at`

func scanMission(row pgx.Row) (*entity.Mission, error) {
	var (
		m          entity.Mission
		repeatDays int16
	)
	err := row.Scan(&m.ID, &m.OwnerID, &m.Kind, &m.Category, &m.Title, &m.Description,
		&m.StartDate, &m.EndDate, &repeatDays, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.RepeatDays = entity.WeekdaySet(repeatDays)
	return &m, nil
}

func collectMissions(rows pgx.Rows) ([]*entity.Mission, error) {
	defer rows.Close()
	missions := make([]*entity.Mission, 0)
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, errors.New("unmarshalling mission error: " + err.Error())
		}
		missions = append(missions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning missions: " + err.Error())
	}
	return missions, nil
}

func (mr *MissionsRepository) Create(ctx context.Context, mission *entity.Mission) (uuid.UUID, error) {
	var id uuid.UUID
	row := mr.conn.QueryRow(ctx, `INSERT INTO missions (owner_id, kind, category, title, description, start_date, end_date, repeat_days, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		mission.OwnerID,
		mission.Kind,
		mission.Category,
		mission.Title,
		mission.Description,
		mission.StartDate,
		mission.EndDate,
		int16(mission.RepeatDays),
		mission.Active,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return uuid.UUID{}, errorvalues.ErrOwnerNotFound
		}
		return uuid.UUID{}, errors.New("creating mission db error: " + err.Error())
	}
	return id, nil
}

func (mr *MissionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+missionColumns+` FROM missions WHERE id = $1;`, id)
	mission, err := scanMission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMissionNotFound
		}
		return nil, errors.New("getting mission by id error: " + err.Error())
	}
	return mission, nil
}

func (mr *MissionsRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Mission, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+missionColumns+`
		FROM missions WHERE owner_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3;`, ownerID, limit, offset)
	if err != nil {
		return nil, errors.New("getting missions by owner error: " + err.Error())
	}
	return collectMissions(rows)
}

func (mr *MissionsRepository) ListAssignable(ctx context.Context, memberID uuid.UUID) ([]*entity.Mission, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+missionColumns+`
		FROM missions WHERE active AND (owner_id = $1 OR kind = 'CLOVER') ORDER BY kind, created_at;`, memberID)
	if err != nil {
		return nil, errors.New("listing assignable missions error: " + err.Error())
	}
	return collectMissions(rows)
}

func (mr *MissionsRepository) ListClover(ctx context.Context) ([]*entity.Mission, error) {
	rows, err := mr.conn.Query(ctx, `SELECT `+missionColumns+`
		FROM missions WHERE kind = 'CLOVER' AND active ORDER BY created_at;`)
	if err != nil {
		return nil, errors.New("listing clover missions error: " + err.Error())
	}
	return collectMissions(rows)
}

func (mr *MissionsRepository) Update(ctx context.Context, mission *entity.Mission) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE missions SET category = $1, title = $2, description = $3, start_date = $4,
		end_date = $5, repeat_days = $6, active = $7, updated_at = NOW() WHERE id = $8;`,
		mission.Category,
		mission.Title,
		mission.Description,
		mission.StartDate,
		mission.EndDate,
		int16(mission.RepeatDays),
		mission.Active,
		mission.ID,
	)
	if err != nil {
		return errors.New("error updating mission: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMissionNotFound
	}
	return nil
}

func (mr *MissionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM missions WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting mission: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMissionNotFound
	}
	return nil
}

