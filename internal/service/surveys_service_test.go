package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/repository/mocks"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/internal/survey"
	"github.com/limbo/clover/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSurvey(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSurveysRepositoryI(ctrl)
	catalog, err := survey.Default()
	require.NoError(t, err)
	serv := service.NewSurveysService(repo, catalog)
	memberID := uuid.New()
	answers := []entity.SurveyAnswer{
		{QuestionID: " goal", Answer: "health "},
		{QuestionID: "time_of_day", Answer: "night"},
		{QuestionID: "missions_per_day", Answer: "1"},
	}

	testCases := []struct {
		Desc         string
		Error        error
		Answers      []entity.SurveyAnswer
		MockPrepFunc func()
	}{
		{
			Desc:    "success",
			Error:   nil,
			Answers: answers,
			MockPrepFunc: func() {
				repo.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.SurveyResponse) error {
					assert.Equal(t, memberID, r.MemberID)
					assert.Equal(t, entity.SurveyAnswer{QuestionID: "goal", Answer: "health"}, r.Answers[0])
					return nil
				})
			},
		},
		{
			Desc:         "error missing answers",
			Error:        errorvalues.ErrMissingAnswer,
			Answers:      answers[:1],
			MockPrepFunc: func() {},
		},
		{
			Desc:    "error submitted twice",
			Error:   errorvalues.ErrSurveySubmitted,
			Answers: answers,
			MockPrepFunc: func() {
				repo.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(errorvalues.ErrSurveySubmitted)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := serv.Submit(ctx, memberID, tc.Answers)
			assert.ErrorIs(t, err, tc.Error)
		})
	}
}

func TestGetMemberSurvey(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSurveysRepositoryI(ctrl)
	catalog, err := survey.Default()
	require.NoError(t, err)
	serv := service.NewSurveysService(repo, catalog)
	memberID := uuid.New()
	repo.EXPECT().GetByMemberID(gomock.Any(), memberID).Return(nil, errorvalues.ErrSurveyNotFound)
	_, err = serv.GetMemberSurvey(context.Background(), memberID)
	assert.ErrorIs(t, err, errorvalues.ErrSurveyNotFound)
}
