package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/diary/internal/common"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors map[string]string `json:"errors"`
}

func (s *HTTPServer) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn(ctx, "error writing response", "error", err)
	}
}

func (s *HTTPServer) writeError(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	s.writeJSON(ctx, w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service error to its status code. Anything
// unrecognised is logged and reported as an opaque 500.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrDuplicateEmail), errors.Is(err, common.ErrDuplicateUsername):
		s.writeError(ctx, w, http.StatusConflict, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		s.writeError(ctx, w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrEntryNotFound):
		s.writeError(ctx, w, http.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrExportDisabled):
		s.writeError(ctx, w, http.StatusServiceUnavailable, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		s.writeError(ctx, w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

const maxBodyBytes = 1 << 20

// decode reads a JSON body into v. It reports false after writing a 400.
func (s *HTTPServer) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(r.Context(), w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
