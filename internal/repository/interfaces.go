package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/clover/pkg/entity"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . MembersRepositoryI,MissionsRepositoryI,AssignmentsRepositoryI,SurveysRepositoryI,RefreshTokensRepositoryI

type MembersRepositoryI interface {
	// Inserts a member or refreshes email of the existing one with the same provider account.
	// Returns the stored member
	Upsert(ctx context.Context, member *entity.Member) (*entity.Member, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	// Updates nickname and profile image key
	Update(ctx context.Context, member *entity.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MissionsRepositoryI interface {
	// Creates a mission, ID and timestamps are filled by the database
	Create(ctx context.Context, mission *entity.Mission) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Mission, error)
	// Lists missions owned by member. Requires pagination params provided
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Mission, error)
	// Every mission the reconciler may assign to member: own missions plus active clover catalog
	ListAssignable(ctx context.Context, memberID uuid.UUID) ([]*entity.Mission, error)
	ListClover(ctx context.Context) ([]*entity.Mission, error)
	// Updates schedule, title, description, category and active flag by ID
	Update(ctx context.Context, mission *entity.Mission) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AssignmentsRepositoryI interface {
	// Inserts all records in one statement. Records colliding with an existing
	// (member, mission, date) are skipped. Returns count of inserted rows
	CreateBatch(ctx context.Context, assignments []*entity.Assignment) (int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Assignment, error)
	GetByMemberAndDate(ctx context.Context, memberID uuid.UUID, date time.Time) ([]*entity.Assignment, error)
	// Sets status COMPLETED and completion time, only if the record is still ASSIGNED
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
	// Counts records with assigned date in [from, to]
	CountAssigned(ctx context.Context, memberID uuid.UUID, from, to time.Time) (int, error)
	// Counts completed records with completion time in [from, to]
	CountCompleted(ctx context.Context, memberID uuid.UUID, from, to time.Time) (int, error)
	CountCompletedByCategory(ctx context.Context, memberID uuid.UUID, from, to time.Time) (map[entity.Category]int, error)
	ListCompleted(ctx context.Context, memberID uuid.UUID, from, to time.Time) ([]*entity.CompletedMission, error)
}

type SurveysRepositoryI interface {
	// Stores all answers of member atomically. Fails with ErrSurveySubmitted on a second submission
	Submit(ctx context.Context, response *entity.SurveyResponse) error
	GetByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.SurveyResponse, error)
}

type RefreshTokensRepositoryI interface {
	// Stores token id as the only valid refresh token of member for ttl
	Save(ctx context.Context, memberID uuid.UUID, tokenID string, ttl time.Duration) error
	// Returns currently valid token id of member, ErrTokenRevoked when there is none
	Get(ctx context.Context, memberID uuid.UUID) (string, error)
	Revoke(ctx context.Context, memberID uuid.UUID) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
