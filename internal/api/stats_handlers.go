package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/recurrence"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/httputil"
)

type CompletedMissionsResponse struct {
	Period   service.Period             `json:"period"`
	Date     string                     `json:"date"`
	Missions []*entity.CompletedMission `json:"missions"`
}

type CategoryGrowthResponse struct {
	Month      string                  `json:"month"`
	Categories []entity.CategoryGrowth `json:"categories"`
}

// month reads ?month=YYYY-MM, the current month when absent.
func (s *Server) month(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get("month")
	if value == "" {
		today := s.today()
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc), nil
	}
	return recurrence.ParseYearMonth(value, s.loc)
}

func (s *Server) GetParticipation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get participation error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	month, err := s.month(r)
	if err != nil {
		writeServiceError(w, logger, "get participation", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.statsService.MonthlyParticipation(ctx, uid, month)
	if err != nil {
		writeServiceError(w, logger, "get participation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "participation provided", res)
}

func (s *Server) GetCompletedMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get completed missions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	periodValue := r.URL.Query().Get("period")
	if periodValue == "" {
		periodValue = string(service.PeriodDaily)
	}
	period, err := service.ParsePeriod(periodValue)
	if err != nil {
		writeServiceError(w, logger, "get completed missions", err)
		return
	}
	date, err := s.parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, logger, "get completed missions", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	missions, err := s.statsService.CompletedMissions(ctx, uid, period, date)
	if err != nil {
		writeServiceError(w, logger, "get completed missions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "completed missions provided", CompletedMissionsResponse{
		Period:   period,
		Date:     date.Format(time.DateOnly),
		Missions: missions,
	})
}

func (s *Server) GetCategoryGrowth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get category growth error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	month, err := s.month(r)
	if err != nil {
		writeServiceError(w, logger, "get category growth", err)
		return
	}
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			writeServiceError(w, logger, "get category growth",
				errors.Join(errorvalues.ErrValidation, errors.New("limit must be a positive integer")))
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	growth, err := s.statsService.TopCategoryGrowth(ctx, uid, month, limit)
	if err != nil {
		writeServiceError(w, logger, "get category growth", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "category growth provided", CategoryGrowthResponse{
		Month:      month.Format("2006-01"),
		Categories: growth,
	})
}
