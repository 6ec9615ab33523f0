package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/clover/internal/api"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/internal/service/mocks"
	"github.com/limbo/clover/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMission(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMissionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{MissionsService: mService, Location: kst, Now: clock})
	missionID := uuid.New()
	end := "2026-12-31"
	mission := api.MissionRequest{
		Title:      "morning run",
		Category:   entity.CategoryHealth,
		StartDate:  "2026-10-20",
		EndDate:    &end,
		RepeatDays: []string{"MON", "FRI"},
	}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         func() io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				mService.EXPECT().CreateMission(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, req *service.MissionRequest) (*entity.Mission, error) {
						assert.True(t, req.StartDate.Equal(time.Date(2026, time.October, 20, 0, 0, 0, 0, kst)))
						require.NotNil(t, req.EndDate)
						assert.True(t, req.EndDate.Equal(time.Date(2026, time.December, 31, 0, 0, 0, 0, kst)))
						assert.Equal(t, []string{"MON", "FRI"}, req.RepeatDays)
						return &entity.Mission{ID: missionID, OwnerID: &uid, Kind: entity.MissionKindMy, Title: req.Title}, nil
					})
			},
			Body: func() io.Reader { return jsonBody(t, mission) },
		},
		{
			Desc:         "start date defaults to today",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				mService.EXPECT().CreateMission(gomock.Any(), uid, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ uuid.UUID, req *service.MissionRequest) (*entity.Mission, error) {
						assert.True(t, req.StartDate.Equal(time.Date(2026, time.October, 14, 0, 0, 0, 0, kst)))
						assert.Nil(t, req.EndDate)
						return &entity.Mission{ID: missionID}, nil
					})
			},
			Body: func() io.Reader {
				return jsonBody(t, api.MissionRequest{Title: "read", Category: entity.CategoryStudy})
			},
		},
		{
			Desc:         "bad date format",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body: func() io.Reader {
				return jsonBody(t, api.MissionRequest{Title: "read", Category: entity.CategoryStudy, StartDate: "20.10.2026"})
			},
		},
		{
			Desc:         "invalid schedule",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				mService.EXPECT().CreateMission(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrInvalidSchedule)
			},
			Body: func() io.Reader { return jsonBody(t, mission) },
		},
		{
			Desc:         "member gone",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				mService.EXPECT().CreateMission(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrMemberNotFound)
			},
			Body: func() io.Reader { return jsonBody(t, mission) },
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         func() io.Reader { return strings.NewReader("not json") },
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/missions", tc.Body())
			serv.CreateMission(rr, authorized(req))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetMissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMissionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{MissionsService: mService})

	testCases := []struct {
		Desc       string
		Query      string
		Pagination service.PaginationOpts
		Page       int
	}{
		{Desc: "defaults", Query: "", Pagination: service.PaginationOpts{Limit: 10, Offset: 0}, Page: 1},
		{Desc: "second page", Query: "?page=2&limit=5", Pagination: service.PaginationOpts{Limit: 5, Offset: 5}, Page: 2},
		{Desc: "limit above max", Query: "?limit=500", Pagination: service.PaginationOpts{Limit: 10, Offset: 0}, Page: 1},
		{Desc: "garbage", Query: "?page=abc&limit=-1", Pagination: service.PaginationOpts{Limit: 10, Offset: 0}, Page: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			mService.EXPECT().GetMemberMissions(gomock.Any(), uid, tc.Pagination).Return([]*entity.Mission{{ID: uuid.New()}}, nil)
			rr := httptest.NewRecorder()
			serv.GetMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/missions"+tc.Query, nil)))
			require.Equal(t, http.StatusOK, rr.Code)
			var res api.GetMissionsResponse
			decodeEnvelope(t, rr, &res)
			assert.Equal(t, tc.Page, res.Page)
			assert.Equal(t, tc.Pagination.Limit, res.Limit)
			assert.Len(t, res.Missions, 1)
		})
	}
}

func TestMissionByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMissionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{MissionsService: mService, Location: kst, Now: clock})
	missionID := uuid.New()

	request := func(method string, id string, body io.Reader) *http.Request {
		req := httptest.NewRequest(method, "/api/v1/missions/"+id, body)
		req.SetPathValue("id", id)
		return authorized(req)
	}

	t.Run("get", func(t *testing.T) {
		mService.EXPECT().GetMission(gomock.Any(), missionID, uid).Return(&entity.Mission{ID: missionID}, nil)
		rr := httptest.NewRecorder()
		serv.GetMission(rr, request(http.MethodGet, missionID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("get foreign mission", func(t *testing.T) {
		mService.EXPECT().GetMission(gomock.Any(), missionID, uid).Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		serv.GetMission(rr, request(http.MethodGet, missionID.String(), nil))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("get invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetMission(rr, request(http.MethodGet, "not-a-uuid", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("update", func(t *testing.T) {
		inactive := false
		mService.EXPECT().UpdateMission(gomock.Any(), missionID, uid, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID, req *service.MissionRequest) (*entity.Mission, error) {
				require.NotNil(t, req.Active)
				assert.False(t, *req.Active)
				return &entity.Mission{ID: missionID, Active: false}, nil
			})
		rr := httptest.NewRecorder()
		body := jsonBody(t, api.MissionRequest{Title: "x", Category: entity.CategoryHobby, StartDate: "2026-10-01", Active: &inactive})
		serv.UpdateMission(rr, request(http.MethodPut, missionID.String(), body))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("update clover mission", func(t *testing.T) {
		mService.EXPECT().UpdateMission(gomock.Any(), missionID, uid, gomock.Any()).Return(nil, errorvalues.ErrWrongOwner)
		rr := httptest.NewRecorder()
		body := jsonBody(t, api.MissionRequest{Title: "x", Category: entity.CategoryHobby, StartDate: "2026-10-01"})
		serv.UpdateMission(rr, request(http.MethodPut, missionID.String(), body))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("delete", func(t *testing.T) {
		mService.EXPECT().DeleteMission(gomock.Any(), missionID, uid).Return(nil)
		rr := httptest.NewRecorder()
		serv.DeleteMission(rr, request(http.MethodDelete, missionID.String(), nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("delete missing", func(t *testing.T) {
		mService.EXPECT().DeleteMission(gomock.Any(), missionID, uid).Return(errorvalues.ErrMissionNotFound)
		rr := httptest.NewRecorder()
		serv.DeleteMission(rr, request(http.MethodDelete, missionID.String(), nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetCloverMissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	mService := mocks.NewMockMissionsServiceI(ctrl)
	serv := api.New(&api.ServicesList{MissionsService: mService})
	mService.EXPECT().GetCloverMissions(gomock.Any()).Return([]*entity.Mission{
		{ID: uuid.New(), Kind: entity.MissionKindClover},
		{ID: uuid.New(), Kind: entity.MissionKindClover},
	}, nil)

	rr := httptest.NewRecorder()
	serv.GetCloverMissions(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/missions/clover", nil)))
	require.Equal(t, http.StatusOK, rr.Code)
	var res []*entity.Mission
	decodeEnvelope(t, rr, &res)
	assert.Len(t, res, 2)
}
