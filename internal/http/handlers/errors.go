// HTTP-layer error codes. Codes are lowercase snake_case; the generic ones
// mirror HTTP status semantics, the domain ones name the business rule that
// rejected the request. Clients branch on the code, not the message.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeAreaCodeMismatch   = "area_code_mismatch"
	ErrCodeRegionMismatch     = "region_mismatch"
	ErrCodeValidationFailed   = "validation_failed"
	ErrCodeNotResolved        = "not_resolved"
	ErrCodeDuplicateFeedback  = "duplicate_feedback"
	ErrCodeUnsupportedUpload  = "unsupported_attachment"
	ErrCodeUploadTooLarge     = "attachment_too_large"
	ErrCodeMethodNotAllowed   = "method_not_allowed"
)
