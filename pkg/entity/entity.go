package entity

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID              uuid.UUID `json:"id"`
	Provider        string    `json:"provider"`
	ProviderUserID  string    `json:"-"`
	Nickname        string    `json:"nickname"`
	Email           string    `json:"email,omitempty"`
	ProfileImageKey string    `json:"profile_image_key,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Category string

const (
	CategoryHealth      Category = "HEALTH"
	CategoryStudy       Category = "STUDY"
	CategoryMindfulness Category = "MINDFULNESS"
	CategoryHobby       Category = "HOBBY"
	CategorySocial      Category = "SOCIAL"
	CategoryHousehold   Category = "HOUSEHOLD"
)

var Categories = []Category{
	CategoryHealth,
	CategoryStudy,
	CategoryMindfulness,
	CategoryHobby,
	CategorySocial,
	CategoryHousehold,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type MissionKind string

const (
	// Created and owned by a member
	MissionKindMy MissionKind = "MY"
	// System catalog mission, handed out to every member
	MissionKindClover MissionKind = "CLOVER"
)

// Mission is a recurring task definition. A nil EndDate means the mission never ends,
// an empty RepeatDays set means it is due every day of its window.
type Mission struct {
	ID          uuid.UUID   `json:"id"`
	OwnerID     *uuid.UUID  `json:"owner_id,omitempty"`
	Kind        MissionKind `json:"kind"`
	Category    Category    `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"desc"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	RepeatDays  WeekdaySet  `json:"repeat_days"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type AssignmentStatus string

const (
	StatusAssigned  AssignmentStatus = "ASSIGNED"
	StatusCompleted AssignmentStatus = "COMPLETED"
)

type Assignment struct {
	ID           uuid.UUID        `json:"id"`
	MissionID    uuid.UUID        `json:"mission_id"`
	MemberID     uuid.UUID        `json:"member_id"`
	AssignedDate time.Time        `json:"assigned_date"`
	Status       AssignmentStatus `json:"status"`
	CompletedAt  *time.Time       `json:"completed_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Expired reports whether the assignment can no longer be completed on today.
func (a *Assignment) Expired(today time.Time) bool {
	if a.Status != StatusAssigned {
		return false
	}
	y1, m1, d1 := a.AssignedDate.Date()
	y2, m2, d2 := today.Date()
	return time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).After(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC))
}

type CompletedMission struct {
	AssignmentID uuid.UUID   `json:"assignment_id"`
	MissionID    uuid.UUID   `json:"mission_id"`
	Title        string      `json:"title"`
	Category     Category    `json:"category"`
	Kind         MissionKind `json:"kind"`
	AssignedDate time.Time   `json:"assigned_date"`
	CompletedAt  time.Time   `json:"completed_at"`
}

type Participation struct {
	Month          string  `json:"month"`
	AssignedCount  int     `json:"assigned_count"`
	CompletedCount int     `json:"completed_count"`
	Rate           float64 `json:"rate"`
}

type CategoryGrowth struct {
	Rank          int      `json:"rank"`
	Category      Category `json:"category"`
	PrevCount     int      `json:"prev_count"`
	CurrCount     int      `json:"curr_count"`
	GrowthPercent float64  `json:"growth_percent"`
}

type SurveyAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type SurveyResponse struct {
	MemberID    uuid.UUID      `json:"member_id"`
	Answers     []SurveyAnswer `json:"answers"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

type PresignedUpload struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	Method    string    `json:"method"`
	ExpiresAt time.Time `json:"expires_at"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
