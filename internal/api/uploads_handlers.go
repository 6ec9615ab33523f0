package api

import (
	"context"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/clover/internal/service"
	"github.com/limbo/clover/pkg/httputil"
)

type PresignRequest struct {
	ContentType string `json:"content_type"`
}

// PresignUpload hands out a presigned PUT url for a profile image.
func (s *Server) PresignUpload(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("presign upload error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req PresignRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("presign upload error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	upload, err := s.uploadsService.PresignProfileImage(ctx, uid, &service.PresignRequest{ContentType: req.ContentType})
	if err != nil {
		writeServiceError(w, logger, "presign upload", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, "upload url issued", upload)
}
