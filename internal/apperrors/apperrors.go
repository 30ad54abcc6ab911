package apperrors

import (
	"errors"
	"net/http"
)

// Domain errors. The strings are the exact messages returned to API clients,
// spelling included; existing clients match on them.
var (
	// ErrUserNotFound is returned when no user matches, or the user list is empty.
	ErrUserNotFound = errors.New("User Not Found.")
	// ErrMissingFields is returned when a required create-user field is absent.
	ErrMissingFields = errors.New("All fields are required.")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("Email already exits.")
	// ErrRoleNotFound is returned when no role matches the given id.
	ErrRoleNotFound = errors.New("Role not found.")
	// ErrNoRoles is returned when the role list is empty.
	ErrNoRoles = errors.New("No roles found.")
	// ErrRoleNameRequired is returned when a create-role request has no name.
	ErrRoleNameRequired = errors.New("Role name is required.")
	// ErrRoleNameTaken is returned when the role name already exists.
	ErrRoleNameTaken = errors.New("Role already exits.")
)

// ErrorResponse is the JSON body for every user-visible failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError carries a status code alongside the client message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to its response body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is a
// 500 and is left for Echo's error handler to log.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRoleNotFound), errors.Is(err, ErrNoRoles):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrRoleNameRequired), errors.Is(err, ErrRoleNameTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
