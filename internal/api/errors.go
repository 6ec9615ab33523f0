package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/clover/internal/error_values"
	"github.com/limbo/clover/pkg/httputil"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{errorvalues.ErrValidation, http.StatusBadRequest},
	{errorvalues.ErrInvalidSchedule, http.StatusBadRequest},
	{errorvalues.ErrInvalidPeriod, http.StatusBadRequest},
	{errorvalues.ErrInvalidYearMonth, http.StatusBadRequest},
	{errorvalues.ErrUnknownQuestion, http.StatusBadRequest},
	{errorvalues.ErrInvalidAnswer, http.StatusBadRequest},
	{errorvalues.ErrMissingAnswer, http.StatusBadRequest},
	{errorvalues.ErrUnsupportedContentType, http.StatusBadRequest},
	{errorvalues.ErrUnsupportedProvider, http.StatusBadRequest},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized},
	{errorvalues.ErrTokenRevoked, http.StatusUnauthorized},
	{errorvalues.ErrProviderExchange, http.StatusUnauthorized},
	{errorvalues.ErrWrongOwner, http.StatusForbidden},
	{errorvalues.ErrMemberNotFound, http.StatusNotFound},
	{errorvalues.ErrMissionNotFound, http.StatusNotFound},
	{errorvalues.ErrAssignmentNotFound, http.StatusNotFound},
	{errorvalues.ErrSurveyNotFound, http.StatusNotFound},
	{errorvalues.ErrAssignmentCompleted, http.StatusConflict},
	{errorvalues.ErrAssignmentExists, http.StatusConflict},
	{errorvalues.ErrSurveySubmitted, http.StatusConflict},
	{errorvalues.ErrMemberExists, http.StatusConflict},
	{errorvalues.ErrAssignmentExpired, http.StatusGone},
}

// StatusFor maps service errors to HTTP status, anything unknown is internal.
func StatusFor(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err under op and writes the error envelope.
// Internal errors are not described to the client.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, "internal error during "+op, nil)
		return
	}
	logger.Warn(op+" error", slog.Int("status", status), slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, op+" failed", err)
}

func (s *Server) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

// parseDate reads YYYY-MM-DD in the server time zone, empty means today.
func (s *Server) parseDate(value string) (time.Time, error) {
	if value == "" {
		return s.today(), nil
	}
	t, err := time.ParseInLocation(time.DateOnly, value, s.loc)
	if err != nil {
		return time.Time{}, errors.Join(errorvalues.ErrValidation, errors.New("date must be YYYY-MM-DD"))
	}
	return t, nil
}

func pagination(r *http.Request) (page, limit int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err = strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit
}
