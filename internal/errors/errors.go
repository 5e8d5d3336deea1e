package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrDuplicateEmail is returned when a signup email is already taken
	// within the same principal collection.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrInvalidCredentials is returned on login failure. It deliberately
	// does not distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotAuthenticated is returned when a session cookie is required but absent.
	ErrNotAuthenticated = errors.New("please log in first")
	// ErrCourseNotFound is returned when a course id resolves to nothing.
	ErrCourseNotFound = errors.New("course not found")
	// ErrInvalidCourseID is returned when a course id fails to parse.
	ErrInvalidCourseID = errors.New("invalid course id")
	// ErrForbidden is returned when an admin mutates a course it does not own.
	ErrForbidden = errors.New("forbidden: you may only modify your own courses")
	// ErrMissingFields is returned when a course create request is incomplete.
	ErrMissingFields = errors.New("all fields are required")
	// ErrInvalidImageType is returned when the uploaded image MIME type is not allowed.
	ErrInvalidImageType = errors.New("invalid image type")
	// ErrInvalidPrice is returned when a course price is negative.
	ErrInvalidPrice = errors.New("price must be non-negative")
	// ErrUploadFailed is returned when the image storage collaborator fails.
	ErrUploadFailed = errors.New("image upload failed")
	// ErrAlreadyPurchased is returned when a (user, course) pair already exists.
	ErrAlreadyPurchased = errors.New("user has already purchased the course")
	// ErrNoPurchases is returned when a user has no purchase records. It is an
	// empty-result outcome, not a fault.
	ErrNoPurchases = errors.New("no purchases found for this user")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unmapped faults collapse
// to a generic 500 and leak no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, ErrDuplicateEmail.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrNotAuthenticated.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrCourseNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCourseNotFound.Error(), "COURSE_NOT_FOUND")
	case errors.Is(err, ErrInvalidCourseID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCourseID.Error(), "INVALID_COURSE_ID")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingFields.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrInvalidImageType):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidImageType.Error(), "INVALID_IMAGE_TYPE")
	case errors.Is(err, ErrInvalidPrice):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidPrice.Error(), "INVALID_PRICE")
	case errors.Is(err, ErrUploadFailed):
		return NewHTTPError(http.StatusInternalServerError, ErrUploadFailed.Error(), "UPLOAD_FAILED")
	case errors.Is(err, ErrAlreadyPurchased):
		return NewHTTPError(http.StatusBadRequest, ErrAlreadyPurchased.Error(), "ALREADY_PURCHASED")
	case errors.Is(err, ErrNoPurchases):
		return NewHTTPError(http.StatusNotFound, "no purchases found for this user.", "NO_PURCHASES")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
