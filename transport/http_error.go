package transport

import (
	"net/http"
	"time"

	"github.com/npesaras/clens/internal"
)

var (
	errRouteNotFound = internal.NewErrorf(internal.ErrorCodeNotFound, "Route not found")
	errInvalidJSON   = internal.NewErrorf(internal.ErrorCodeInvalidArgument, "Invalid JSON in request body")
	errMissingToken  = internal.NewErrorf(internal.ErrorCodeUnauthorized, "Authorization header with a Bearer token is required")
	errInvalidToken  = internal.NewErrorf(internal.ErrorCodeUnauthorized, "Invalid access token")
)

// Message rendered for every error that is not safe to show clients
const internalErrorMessage = "Oops! Something went wrong. Please try again later."

// HttpErrorResponse is the body of every failed request
type HttpErrorResponse struct {
	Name      string      `json:"name"`
	Message   string      `json:"message"`
	Timestamp time.Time   `json:"timestamp"`
	Path      string      `json:"path"`
	Method    string      `json:"method"`
	Issues    []HttpIssue `json:"issues,omitempty"`
}

// HttpIssue describes a single invalid field
type HttpIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatusOf maps an error code to its http status
func StatusOf(code internal.ErrorCode) int {
	switch code {
	case internal.ErrorCodeInvalidArgument:
		return http.StatusBadRequest
	case internal.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case internal.ErrorCodeNotFound:
		return http.StatusNotFound
	case internal.ErrorCodeConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NameOf maps an error code to the name rendered to clients
func NameOf(code internal.ErrorCode) string {
	switch code {
	case internal.ErrorCodeInvalidArgument:
		return "BadRequestError"
	case internal.ErrorCodeUnauthorized:
		return "UnauthorizedError"
	case internal.ErrorCodeNotFound:
		return "NotFoundError"
	case internal.ErrorCodeConflict:
		return "ConflictError"
	}
	return "InternalServerError"
}
