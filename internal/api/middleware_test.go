package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/clover/internal/api"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/service/mocks"
	"github.com/limbo/clover/pkg/entity"
	jwtservice "github.com/limbo/clover/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	membersService := mocks.NewMockMembersServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Minute, time.Hour)
	serv := api.New(&api.ServicesList{
		MembersService: membersService,
		JwtService:     jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	access, err := jwtService.GenerateAccessToken(uid)
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(uid)
	require.NoError(t, err)
	foreign, err := jwtservice.New("other", time.Minute, time.Hour).GenerateAccessToken(uid)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			Header:       "Bearer " + access,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				membersService.EXPECT().GetProfile(gomock.Any(), uid).Return(&entity.Member{ID: uid}, nil)
			},
		},
		{Desc: "no header", Header: "", ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{Desc: "not bearer", Header: "Basic " + access, ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{Desc: "refresh token", Header: "Bearer " + refresh, ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{Desc: "foreign signature", Header: "Bearer " + foreign, ExpectedCode: http.StatusUnauthorized, MockPrepFunc: func() {}},
		{
			Desc:         "member deleted",
			Header:       "Bearer " + access,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				membersService.EXPECT().GetProfile(gomock.Any(), uid).Return(nil, errorvalues.ErrMemberNotFound)
			},
		},
		{
			Desc:         "members lookup fails",
			Header:       "Bearer " + access,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				membersService.EXPECT().GetProfile(gomock.Any(), uid).Return(nil, errors.New("db down"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				req.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode == http.StatusOK {
				assert.Contains(t, rr.Body.String(), uid.String())
			}
		})
	}
}

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	membersService := mocks.NewMockMembersServiceI(ctrl)
	aService := mocks.NewMockAssignmentsServiceI(ctrl)
	jwtService := jwtservice.New("secret", time.Minute, time.Hour)
	serv := api.New(&api.ServicesList{
		MembersService:     membersService,
		AssignmentsService: aService,
		JwtService:         jwtService,
		Location:           kst,
		Now:                clock,
	})

	t.Run("healthz", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("request id is propagated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-42")
		serv.ServeHTTP(rr, req)
		assert.Equal(t, "req-42", rr.Header().Get("X-Request-ID"))
	})
	t.Run("protected route without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/assignments/today", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("path value reaches handler", func(t *testing.T) {
		access, err := jwtService.GenerateAccessToken(uid)
		require.NoError(t, err)
		assignmentID := uuid.New()
		membersService.EXPECT().GetProfile(gomock.Any(), uid).Return(&entity.Member{ID: uid}, nil)
		aService.EXPECT().Complete(gomock.Any(), assignmentID, uid).Return(nil, errorvalues.ErrAssignmentExpired)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/assignments/%s/complete", assignmentID), nil)
		req.Header.Set("Authorization", "Bearer "+access)
		serv.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusGone, rr.Code)
	})
	t.Run("metrics exposed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "http_request_duration_seconds")
	})
}

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		Err    error
		Status int
	}{
		{Err: errorvalues.ErrValidation, Status: http.StatusBadRequest},
		{Err: fmt.Errorf("%w: Title failed on required", errorvalues.ErrValidation), Status: http.StatusBadRequest},
		{Err: errorvalues.ErrInvalidPeriod, Status: http.StatusBadRequest},
		{Err: errorvalues.ErrInvalidToken, Status: http.StatusUnauthorized},
		{Err: errorvalues.ErrTokenRevoked, Status: http.StatusUnauthorized},
		{Err: errorvalues.ErrWrongOwner, Status: http.StatusForbidden},
		{Err: errorvalues.ErrMissionNotFound, Status: http.StatusNotFound},
		{Err: errorvalues.ErrAssignmentNotFound, Status: http.StatusNotFound},
		{Err: errorvalues.ErrAssignmentCompleted, Status: http.StatusConflict},
		{Err: errorvalues.ErrSurveySubmitted, Status: http.StatusConflict},
		{Err: errorvalues.ErrAssignmentExpired, Status: http.StatusGone},
		{Err: errors.New("anything else"), Status: http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.Err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.Status, api.StatusFor(tc.Err))
		})
	}
}
