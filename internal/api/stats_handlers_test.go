package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/clover/internal/api"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/internal/service/mocks"
	"github.com/limbo/clover/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetParticipation(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{StatsService: sService, Location: kst, Now: clock})

	testCases := []struct {
		Desc         string
		Query        string
		ExpectedCode int
		Month        time.Time
	}{
		{Desc: "current month", Query: "", ExpectedCode: http.StatusOK, Month: time.Date(2026, time.October, 1, 0, 0, 0, 0, kst)},
		{Desc: "explicit month", Query: "?month=2026-02", ExpectedCode: http.StatusOK, Month: time.Date(2026, time.February, 1, 0, 0, 0, 0, kst)},
		{Desc: "invalid month", Query: "?month=2026-13", ExpectedCode: http.StatusBadRequest},
		{Desc: "wrong format", Query: "?month=202602", ExpectedCode: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			if tc.ExpectedCode == http.StatusOK {
				sService.EXPECT().MonthlyParticipation(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, month time.Time) (*entity.Participation, error) {
						assert.True(t, tc.Month.Equal(month), "got month %s", month)
						return &entity.Participation{Month: month.Format("2006-01"), AssignedCount: 10, CompletedCount: 7, Rate: 70}, nil
					})
			}
			rr := httptest.NewRecorder()
			serv.GetParticipation(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/participation"+tc.Query, nil)))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestGetCompletedMissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{StatsService: sService, Location: kst, Now: clock})

	t.Run("daily by default", func(t *testing.T) {
		sService.EXPECT().CompletedMissions(gomock.Any(), uid, service.PeriodDaily, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, _ service.Period, date time.Time) ([]*entity.CompletedMission, error) {
				assert.True(t, date.Equal(time.Date(2026, time.October, 14, 0, 0, 0, 0, kst)))
				return []*entity.CompletedMission{{AssignmentID: uuid.New(), Title: "walk"}}, nil
			})
		rr := httptest.NewRecorder()
		serv.GetCompletedMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/completed", nil)))
		require.Equal(t, http.StatusOK, rr.Code)
		var res api.CompletedMissionsResponse
		decodeEnvelope(t, rr, &res)
		assert.Equal(t, service.PeriodDaily, res.Period)
		assert.Equal(t, "2026-10-14", res.Date)
		assert.Len(t, res.Missions, 1)
	})
	t.Run("weekly with date", func(t *testing.T) {
		sService.EXPECT().CompletedMissions(gomock.Any(), uid, service.PeriodWeekly, gomock.Any()).Return(nil, nil)
		rr := httptest.NewRecorder()
		serv.GetCompletedMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/completed?period=WEEKLY&date=2026-10-01", nil)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("invalid period", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetCompletedMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/completed?period=yearly", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("invalid date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetCompletedMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/completed?date=yesterday", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetCategoryGrowth(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{StatsService: sService, Location: kst, Now: clock})
	october := time.Date(2026, time.October, 1, 0, 0, 0, 0, kst)

	t.Run("default limit", func(t *testing.T) {
		sService.EXPECT().TopCategoryGrowth(gomock.Any(), uid, october, 0).Return([]entity.CategoryGrowth{
			{Rank: 1, Category: entity.CategoryHealth, PrevCount: 2, CurrCount: 4, GrowthPercent: 100},
		}, nil)
		rr := httptest.NewRecorder()
		serv.GetCategoryGrowth(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/growth", nil)))
		require.Equal(t, http.StatusOK, rr.Code)
		var res api.CategoryGrowthResponse
		decodeEnvelope(t, rr, &res)
		assert.Equal(t, "2026-10", res.Month)
		require.Len(t, res.Categories, 1)
		assert.Equal(t, entity.CategoryHealth, res.Categories[0].Category)
	})
	t.Run("explicit limit", func(t *testing.T) {
		sService.EXPECT().TopCategoryGrowth(gomock.Any(), uid, gomock.Any(), 5).Return(nil, nil)
		rr := httptest.NewRecorder()
		serv.GetCategoryGrowth(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/growth?month=2026-09&limit=5", nil)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("invalid limit", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetCategoryGrowth(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats/growth?limit=0", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
