package errorvalues

import "errors"

var (
	ErrMemberNotFound = errors.New("member doesn't exist")
	ErrMemberExists   = errors.New("member with such provider account already exists")

	ErrMissionNotFound = errors.New("mission doesn't exist")
	ErrOwnerNotFound   = errors.New("mission owner doesn't exist")
	ErrWrongOwner      = errors.New("resource belongs to another member")
	ErrInvalidSchedule = errors.New("mission end date is before start date")

	ErrAssignmentNotFound  = errors.New("assignment doesn't exist")
	ErrAssignmentExists    = errors.New("assignment for this day already exists")
	ErrAssignmentExpired   = errors.New("assignment date has passed")
	ErrAssignmentCompleted = errors.New("assignment is already completed")

	ErrSurveySubmitted  = errors.New("survey already submitted")
	ErrSurveyNotFound   = errors.New("survey hasn't been submitted")
	ErrUnknownQuestion  = errors.New("unknown survey question")
	ErrInvalidAnswer    = errors.New("answer is not one of the question options")
	ErrMissingAnswer    = errors.New("required survey question left unanswered")
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidYearMonth = errors.New("invalid year-month, expected YYYY-MM")

	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("refresh token revoked or reused")
	ErrUnsupportedProvider = errors.New("unsupported oauth provider")
	ErrProviderExchange    = errors.New("oauth provider rejected authorization code")

	ErrUnsupportedContentType = errors.New("unsupported upload content type")
	ErrValidation             = errors.New("validation error")
)
