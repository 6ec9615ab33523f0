package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/httputil"
)

type TodaysAssignmentsResponse struct {
	Date        string               `json:"date"`
	Assignments []*entity.Assignment `json:"assignments"`
}

// GetTodaysAssignments creates missing records for missions due today and lists them.
func (s *Server) GetTodaysAssignments(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today's assignments error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	assignments, err := s.assignmentsService.GetOrCreateTodaysAssignments(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get today's assignments", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "today's assignments provided", TodaysAssignmentsResponse{
		Date:        s.today().Format(time.DateOnly),
		Assignments: assignments,
	})
}

func (s *Server) CompleteAssignment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("complete assignment error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete assignment error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid assignment id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	assignment, err := s.assignmentsService.Complete(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "complete assignment", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "assignment completed", assignment)
	logger.Info("assignment completed", "assignment_id", id.String())
}
