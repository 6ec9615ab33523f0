package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/entity"
	"github.com/limbo/clover/pkg/httputil"
)

type LoginRequest struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	entity.TokenPair
	Member *entity.Member `json:"member"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	pair, member, err := s.authService.Login(ctx, &service.LoginRequest{
		Provider: req.Provider,
		Code:     req.Code,
	})
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "logged in", LoginResponse{
		TokenPair: *pair,
		Member:    member,
	})
	logger.Info("successful login")
}

func (s *Server) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RefreshRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.RefreshToken == "" {
		logger.Error("refresh error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	pair, err := s.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		writeServiceError(w, logger, "token refresh", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "tokens refreshed", pair)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("logout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	if err = s.authService.Logout(ctx, uid); err != nil {
		writeServiceError(w, logger, "logout", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "logged out", nil)
	logger.Info("logged out")
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, "ok", nil)
}
