package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/httputil"
)

type SubmitSurveyRequest struct {
	Answers []entity.SurveyAnswer `json:"answers"`
}

func (s *Server) GetSurveyQuestions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, "survey questions provided", s.surveysService.Questions())
}

func (s *Server) SubmitSurvey(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("submit survey error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SubmitSurveyRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("submit survey error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.surveysService.Submit(ctx, uid, req.Answers)
	if err != nil {
		writeServiceError(w, logger, "submit survey", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, "survey submitted", res)
	logger.Info("survey submitted")
}

func (s *Server) GetMySurvey(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get survey error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	res, err := s.surveysService.GetMemberSurvey(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get survey", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "survey provided", res)
}
