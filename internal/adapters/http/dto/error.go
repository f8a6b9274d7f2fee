package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
)

// StatusClientClosedRequest is reported when the caller went away before the
// command finished.
const StatusClientClosedRequest = 499

const (
	problemContentType = "application/problem+json"
	problemType        = "about:blank"

	// internalDetail stands in for the detail of every 5xx caused by storage
	// or an unclassified error.
	internalDetail = "an internal error occurred"
)

// kindStatus maps each failure kind onto its HTTP status. Unlisted kinds are
// served as 500.
var kindStatus = map[string]int{
	domain.KindValidation:  http.StatusBadRequest,
	domain.KindNotFound:    http.StatusNotFound,
	domain.KindConflict:    http.StatusConflict,
	domain.KindCancelled:   StatusClientClosedRequest,
	domain.KindUnavailable: http.StatusBadGateway,
	domain.KindPersistence: http.StatusInternalServerError,
}

// ErrorResponse is an RFC 9457 problem document. Failure repeats the
// tracker's failure kind so clients need not switch on Status.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Failure  string        `json:"failure"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse classifies err and builds the problem document for r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	kind := domain.FailureKind(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	resp := ErrorResponse{
		Type:     problemType,
		Title:    statusTitle(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
		Failure:  kind,
	}
	if status == http.StatusInternalServerError {
		resp.Detail = internalDetail
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse classifies err and writes it as a problem document.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, NewErrorResponse(r, err))
}

// WriteProblem writes resp with resp.Status as its HTTP status.
func WriteProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", err),
		)
	}
}

func statusTitle(status int) string {
	if status == StatusClientClosedRequest {
		return "Client Closed Request"
	}
	return http.StatusText(status)
}

// fieldDetails lists validation failures ordered by location.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
