package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository"
	"github.com/limbo/clover/internal/survey"
	"github.com/limbo/clover/pkg/entity"
)

type SurveysService struct {
	repo    repository.SurveysRepositoryI
	catalog *survey.Catalog
	now     func() time.Time
}

func NewSurveysService(surveysRepo repository.SurveysRepositoryI, catalog *survey.Catalog) *SurveysService {
	if surveysRepo == nil || catalog == nil {
		log.Fatal("on surveys service provided nil repo or catalog")
	}
	return &SurveysService{
		repo:    surveysRepo,
		catalog: catalog,
		now:     time.Now,
	}
}

func (ss *SurveysService) Questions() *survey.Catalog {
	return ss.catalog
}

func (ss *SurveysService) Submit(ctx context.Context, memberID uuid.UUID, answers []entity.SurveyAnswer) (*entity.SurveyResponse, error) {
	cleaned := make([]entity.SurveyAnswer, 0, len(answers))
	for _, a := range answers {
		cleaned = append(cleaned, entity.SurveyAnswer{
			QuestionID: strings.TrimSpace(a.QuestionID),
			Answer:     strings.TrimSpace(a.Answer),
		})
	}
	if err := ss.catalog.Validate(cleaned); err != nil {
		return nil, err
	}
	response := &entity.SurveyResponse{
		MemberID:    memberID,
		Answers:     cleaned,
		SubmittedAt: ss.now(),
	}
	err := ss.repo.Submit(ctx, response)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSurveySubmitted), errors.Is(err, errorvalues.ErrMemberNotFound):
			return nil, err
		}
		return nil, errors.New("surveys repository error: " + err.Error())
	}
	return response, nil
}

func (ss *SurveysService) GetMemberSurvey(ctx context.Context, memberID uuid.UUID) (*entity.SurveyResponse, error) {
	response, err := ss.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSurveyNotFound) {
			return nil, err
		}
		return nil, errors.New("surveys repository error: " + err.Error())
	}
	return response, nil
}
