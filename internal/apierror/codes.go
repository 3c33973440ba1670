package apierror

// Error type URIs following the urn:wellbeing:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates query parameter validation failed (400)
	TypeValidation = "urn:wellbeing:error:validation"

	// TypeNotFound indicates an unknown route (404)
	TypeNotFound = "urn:wellbeing:error:not_found"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:wellbeing:error:unauthorized"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:wellbeing:error:rate_limit"

	// TypeBadGateway indicates the record store failed (502)
	TypeBadGateway = "urn:wellbeing:error:bad_gateway"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:wellbeing:error:internal"
)

// Field error codes
const (
	CodeInvalidWindow   = "invalid_window"
	CodeInvalidTimezone = "invalid_timezone"
	CodeInvalidDate     = "invalid_date"
	CodeInvalidRange    = "invalid_range"
)

const (
	TitleValidation   = "Validation Error"
	TitleNotFound     = "Resource Not Found"
	TitleUnauthorized = "Authentication Required"
	TitleRateLimit    = "Rate Limit Exceeded"
	TitleBadGateway   = "Upstream Unavailable"
	TitleInternal     = "Internal Server Error"
)
