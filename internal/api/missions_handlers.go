package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/httputil"
)

type MissionRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"desc"`
	Category    entity.Category `json:"category"`
	// YYYY-MM-DD, today when empty
	StartDate  string   `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	RepeatDays []string `json:"repeat_days"`
	Active     *bool    `json:"active"`
}

type GetMissionsResponse struct {
	MemberID string            `json:"uid"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Missions []*entity.Mission `json:"missions"`
}

func (s *Server) toServiceMission(req *MissionRequest) (*service.MissionRequest, error) {
	start, err := s.parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	var end *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		e, err := s.parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		end = &e
	}
	return &service.MissionRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   start,
		EndDate:     end,
		RepeatDays:  req.RepeatDays,
		Active:      req.Active,
	}, nil
}

func (s *Server) decodeMission(r *http.Request) (*service.MissionRequest, error) {
	var req MissionRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid request body"))
	}
	return s.toServiceMission(&req)
}

func (s *Server) CreateMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create mission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req, err := s.decodeMission(r)
	if err != nil {
		logger.Error("create mission error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	mission, err := s.missionsService.CreateMission(ctx, uid, req)
	if err != nil {
		writeServiceError(w, logger, "create mission", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, "mission created", mission)
	logger.Info("mission created", "mission_id", mission.ID.String())
}

func (s *Server) GetMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get missions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit := pagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	missions, err := s.missionsService.GetMemberMissions(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		writeServiceError(w, logger, "get missions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "missions provided", GetMissionsResponse{
		MemberID: uid.String(),
		Page:     page,
		Limit:    limit,
		Missions: missions,
	})
}

func (s *Server) GetCloverMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	missions, err := s.missionsService.GetCloverMissions(ctx)
	if err != nil {
		writeServiceError(w, logger, "get clover missions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "clover missions provided", missions)
}

func (s *Server) GetMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get mission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get mission error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	mission, err := s.missionsService.GetMission(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get mission", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "mission provided", mission)
}

func (s *Server) UpdateMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update mission error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update mission error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission id in path value", nil)
		return
	}
	req, err := s.decodeMission(r)
	if err != nil {
		logger.Error("update mission error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	mission, err := s.missionsService.UpdateMission(ctx, id, uid, req)
	if err != nil {
		writeServiceError(w, logger, "update mission", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "mission updated", mission)
	logger.Info("mission updated", "mission_id", id.String())
}

func (s *Server) DeleteMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mission deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("mission deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.missionsService.DeleteMission(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "mission deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "mission deleted", nil)
	logger.Info("mission deleted", "mission_id", id.String())
}
