package dto_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

func TestNewErrorResponse_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantTitle   string
		wantFailure string
		wantDetail  string
	}{
		{
			name:        "validation",
			err:         domain.NewValidationError("name", "is required"),
			wantStatus:  http.StatusBadRequest,
			wantTitle:   "Bad Request",
			wantFailure: domain.KindValidation,
			wantDetail:  "validation error: name: is required",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("fetching project p-1: %w", domain.ErrNotFound),
			wantStatus:  http.StatusNotFound,
			wantTitle:   "Not Found",
			wantFailure: domain.KindNotFound,
		},
		{
			name:        "conflict",
			err:         fmt.Errorf("storing project p-1: %w", domain.ErrConflict),
			wantStatus:  http.StatusConflict,
			wantTitle:   "Conflict",
			wantFailure: domain.KindConflict,
		},
		{
			name:        "cancelled",
			err:         fmt.Errorf("fetching project: %w: %w", domain.ErrCancelled, context.Canceled),
			wantStatus:  dto.StatusClientClosedRequest,
			wantTitle:   "Client Closed Request",
			wantFailure: domain.KindCancelled,
		},
		{
			name:        "unavailable",
			err:         fmt.Errorf("delivering: %w", domain.ErrUnavailable),
			wantStatus:  http.StatusBadGateway,
			wantTitle:   "Bad Gateway",
			wantFailure: domain.KindUnavailable,
		},
		{
			name:        "persistence hides storage detail",
			err:         fmt.Errorf("listing: %w: near \"SELEC\": syntax error", domain.ErrPersistence),
			wantStatus:  http.StatusInternalServerError,
			wantTitle:   "Internal Server Error",
			wantFailure: domain.KindPersistence,
			wantDetail:  "an internal error occurred",
		},
		{
			name:        "unclassified hides detail",
			err:         errors.New("nil map write"),
			wantStatus:  http.StatusInternalServerError,
			wantTitle:   "Internal Server Error",
			wantFailure: domain.KindUnknown,
			wantDetail:  "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/api/v1/projects/p-1?verbose=1", nil)
			got := dto.NewErrorResponse(r, tt.err)

			assert.Equal(t, "about:blank", got.Type)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantFailure, got.Failure)
			assert.Equal(t, "/api/v1/projects/p-1?verbose=1", got.Instance)

			wantDetail := tt.wantDetail
			if wantDetail == "" {
				wantDetail = tt.err.Error()
			}
			assert.Equal(t, wantDetail, got.Detail)
		})
	}
}

func TestNewErrorResponse_FieldErrors(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)

	t.Run("sorted by location", func(t *testing.T) {
		t.Parallel()

		verr := &domain.ValidationError{Fields: map[string]string{
			"priority": `invalid: "urgent"`,
			"name":     "is required",
			"id":       "is required",
		}}
		got := dto.NewErrorResponse(r, fmt.Errorf("creating project: %w", verr))

		assert.Equal(t, []dto.ErrorDetail{
			{Location: "body.id", Message: "is required"},
			{Location: "body.name", Message: "is required"},
			{Location: "body.priority", Message: `invalid: "urgent"`},
		}, got.Errors)
	})

	t.Run("absent for other kinds", func(t *testing.T) {
		t.Parallel()

		got := dto.NewErrorResponse(r, domain.ErrNotFound)
		assert.Nil(t, got.Errors)
	})
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)

	dto.WriteErrorResponse(w, r, domain.NewValidationError("name", "is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Bad Request", body["title"])
	assert.EqualValues(t, http.StatusBadRequest, body["status"])
	assert.Equal(t, domain.KindValidation, body["failure"])
	assert.Equal(t, []any{map[string]any{"location": "body.name", "message": "is required"}}, body["errors"])
}

func TestWriteProblem_CustomStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/projects/p-1", nil)

	resp := dto.NewErrorResponse(r, domain.ErrValidation)
	resp.Status = http.StatusMethodNotAllowed
	resp.Title = "Method Not Allowed"
	dto.WriteProblem(w, r, resp)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, resp, got)
}

type failingWriter struct {
	*httptest.ResponseRecorder
}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteProblem_LogsEncodeFailure(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	r = r.WithContext(logging.WithLogger(r.Context(), logger))
	w := failingWriter{httptest.NewRecorder()}

	dto.WriteErrorResponse(w, r, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, logs.String(), "encoding problem response")
	assert.Contains(t, logs.String(), "connection reset")
}
