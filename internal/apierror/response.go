package apierror

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// upstreamRetryAfter is the retry hint sent with 502 responses, in seconds
const upstreamRetryAfter = 5

// WriteProblem writes a ProblemDetails response to the gin context and
// aborts the handler chain. It sets the Retry-After header when RetryAfter
// is set.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)

	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}

	c.AbortWithStatusJSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError creates a 400 Bad Request response for invalid query
// parameters. Every failing parameter is reported at once.
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more query parameters failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your filters and try again",
		Errors:      errors,
	}
}

// InvalidWindow describes a window value outside 7, 30 and 90
func InvalidWindow(value string) FieldError {
	return FieldError{
		Field:   "window",
		Message: fmt.Sprintf("window %q must be one of 7, 30 or 90", value),
		Code:    CodeInvalidWindow,
	}
}

// InvalidTimezone describes a tz value that is not an IANA zone name
func InvalidTimezone(value string) FieldError {
	return FieldError{
		Field:   "tz",
		Message: fmt.Sprintf("timezone %q is not a known IANA zone", value),
		Code:    CodeInvalidTimezone,
	}
}

// InvalidDate describes a from/to value that is not RFC 3339 or YYYY-MM-DD
func InvalidDate(field, value string) FieldError {
	return FieldError{
		Field:   field,
		Message: fmt.Sprintf("%q must be an RFC 3339 timestamp or a YYYY-MM-DD date", value),
		Code:    CodeInvalidDate,
	}
}

// InvalidRange describes a from bound after the to bound
func InvalidRange() FieldError {
	return FieldError{
		Field:   "from",
		Message: "from must not be after to",
		Code:    CodeInvalidRange,
	}
}

// NewNotFoundError creates a 404 Not Found response for an unknown route.
func NewNotFoundError(requestID, path string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("No resource at '%s'", path),
		RequestID:   requestID,
		UserMessage: "The requested page could not be found",
	}
}

// NewUnauthorizedError creates a 401 Unauthorized response.
func NewUnauthorizedError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUnauthorized,
		Title:       TitleUnauthorized,
		Status:      http.StatusUnauthorized,
		Detail:      "Authentication is required to access this resource",
		RequestID:   requestID,
		UserMessage: "Please sign in to continue",
		Action:      "authenticate",
	}
}

// NewRateLimitError creates a 429 Too Many Requests response.
// retryAfter specifies seconds until the client should retry.
func NewRateLimitError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeRateLimit,
		Title:       TitleRateLimit,
		Status:      http.StatusTooManyRequests,
		Detail:      fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds", retryAfter),
		RequestID:   requestID,
		UserMessage: "Too many requests. Please wait before trying again.",
		RetryAfter:  &retryAfter,
	}
}

// NewBadGatewayError creates a 502 Bad Gateway response for a failing
// record store. Upstream details are logged, not returned.
func NewBadGatewayError(requestID string) *ProblemDetails {
	retryAfter := upstreamRetryAfter
	return &ProblemDetails{
		Type:        TypeBadGateway,
		Title:       TitleBadGateway,
		Status:      http.StatusBadGateway,
		Detail:      "Mood and task records could not be loaded",
		RequestID:   requestID,
		UserMessage: "We couldn't load your data right now. Please try again shortly.",
		RetryAfter:  &retryAfter,
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// Internal error details are never sent to the client.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}
