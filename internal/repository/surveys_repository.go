package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/entity"
)

type SurveysRepository struct {
	conn PgConnection
}

func NewSurveysRepo(conn PgConnection) *SurveysRepository {
	mustPing(conn, "surveysRepo")
	return &SurveysRepository{
		conn: conn,
	}
}

func (sr *SurveysRepository) Submit(ctx context.Context, response *entity.SurveyResponse) error {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning survey transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM survey_responses WHERE member_id = $1);`, response.MemberID).Scan(&exists)
	if err != nil {
		return errors.New("inspecting if survey exists error: " + err.Error())
	}
	if exists {
		return errorvalues.ErrSurveySubmitted
	}
	for _, answer := range response.Answers {
		_, err = tx.Exec(ctx, `INSERT INTO survey_responses (member_id, question_id, answer, submitted_at) VALUES ($1, $2, $3, $4);`,
			response.MemberID,
			answer.QuestionID,
			answer.Answer,
			response.SubmittedAt,
		)
		if err != nil {
			switch pgErrorCode(err) {
			case pgUniqueViolation:
				return errorvalues.ErrSurveySubmitted
			case pgForeignKeyViolation:
				return errorvalues.ErrMemberNotFound
			}
			return errors.New("storing survey answer error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing survey error: " + err.Error())
	}
	return nil
}

func (sr *SurveysRepository) GetByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.SurveyResponse, error) {
	rows, err := sr.conn.Query(ctx, `SELECT question_id, answer, submitted_at FROM survey_responses
		WHERE member_id = $1 ORDER BY question_id;`, memberID)
	if err != nil {
		return nil, errors.New("getting survey answers error: " + err.Error())
	}
	defer rows.Close()
	response := entity.SurveyResponse{MemberID: memberID, Answers: make([]entity.SurveyAnswer, 0)}
	for rows.Next() {
		var answer entity.SurveyAnswer
		if err := rows.Scan(&answer.QuestionID, &answer.Answer, &response.SubmittedAt); err != nil {
			return nil, errors.New("survey answer row parsing error: " + err.Error())
		}
		response.Answers = append(response.Answers, answer)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected survey rows error: " + err.Error())
	}
	if len(response.Answers) == 0 {
		return nil, errorvalues.ErrSurveyNotFound
	}
	return &response, nil
}
