package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/clover/internal/oauth"
	"github.com/limbo/clover/internal/survey"
	"github.com/limbo/clover/pkg/entity"
	jwtservice "github.com/limbo/clover/pkg/jwt_service"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . AuthServiceI,MembersServiceI,MissionsServiceI,AssignmentsServiceI,StatsServiceI,SurveysServiceI,UploadsServiceI

type PaginationOpts struct {
	Limit  int
	Offset int
}

type LoginRequest struct {
	Provider string `validate:"required"`
	Code     string `validate:"required,max=1024"`
}

// Nil fields are left untouched
type UpdateProfileRequest struct {
	Nickname        *string `validate:"omitempty,nickname"`
	ProfileImageKey *string `validate:"omitempty,max=512"`
}

type MissionRequest struct {
	Title       string          `validate:"required,max=100"`
	Description string          `validate:"max=500"`
	Category    entity.Category `validate:"required,category"`
	StartDate   time.Time       `validate:"required"`
	EndDate     *time.Time
	RepeatDays  []string `validate:"max=7,dive,weekday"`
	// Nil keeps current state on update and means active on create
	Active *bool
}

type PresignRequest struct {
	ContentType string `validate:"required"`
}

type TokenIssuer interface {
	GenerateAccessToken(memberID uuid.UUID) (string, error)
	GenerateRefreshToken(memberID uuid.UUID) (string, string, error)
	ParseToken(tokenString string, typ jwtservice.TokenType) (*jwtservice.Claims, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

type ProviderRegistry interface {
	Get(name string) (oauth.Provider, error)
}

type UploadPresigner interface {
	PresignPut(ctx context.Context, key, contentType string) (*entity.PresignedUpload, error)
}

type AuthServiceI interface {
	// Exchanges provider code, creates the member on first login and issues a token pair
	Login(ctx context.Context, req *LoginRequest) (*entity.TokenPair, *entity.Member, error)
	// Rotates refresh token. A token that is not the latest issued one revokes the session
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	Logout(ctx context.Context, memberID uuid.UUID) error
}

type MembersServiceI interface {
	GetProfile(ctx context.Context, memberID uuid.UUID) (*entity.Member, error)
	UpdateProfile(ctx context.Context, memberID uuid.UUID, req *UpdateProfileRequest) (*entity.Member, error)
	DeleteAccount(ctx context.Context, memberID uuid.UUID) error
}

type MissionsServiceI interface {
	CreateMission(ctx context.Context, memberID uuid.UUID, req *MissionRequest) (*entity.Mission, error)
	GetMemberMissions(ctx context.Context, memberID uuid.UUID, pagination PaginationOpts) ([]*entity.Mission, error)
	GetMission(ctx context.Context, missionID, memberID uuid.UUID) (*entity.Mission, error)
	UpdateMission(ctx context.Context, missionID, memberID uuid.UUID, req *MissionRequest) (*entity.Mission, error)
	DeleteMission(ctx context.Context, missionID, memberID uuid.UUID) error
	GetCloverMissions(ctx context.Context) ([]*entity.Mission, error)
}

type AssignmentsServiceI interface {
	// Makes sure every mission due today has exactly one record and returns today's records
	GetOrCreateTodaysAssignments(ctx context.Context, memberID uuid.UUID) ([]*entity.Assignment, error)
	Complete(ctx context.Context, assignmentID, memberID uuid.UUID) (*entity.Assignment, error)
}

type StatsServiceI interface {
	MonthlyParticipation(ctx context.Context, memberID uuid.UUID, month time.Time) (*entity.Participation, error)
	TopCategoryGrowth(ctx context.Context, memberID uuid.UUID, month time.Time, limit int) ([]entity.CategoryGrowth, error)
	CompletedMissions(ctx context.Context, memberID uuid.UUID, period Period, date time.Time) ([]*entity.CompletedMission, error)
}

type SurveysServiceI interface {
	Questions() *survey.Catalog
	Submit(ctx context.Context, memberID uuid.UUID, answers []entity.SurveyAnswer) (*entity.SurveyResponse, error)
	GetMemberSurvey(ctx context.Context, memberID uuid.UUID) (*entity.SurveyResponse, error)
}

type UploadsServiceI interface {
	PresignProfileImage(ctx context.Context, memberID uuid.UUID, req *PresignRequest) (*entity.PresignedUpload, error)
}
