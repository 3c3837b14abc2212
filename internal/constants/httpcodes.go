// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines application-specific response codes returned in
// the machine-readable "code" field of error responses. Clients branch on these
// codes rather than on message text.
package constants

// Response Status Flags indicate the overall outcome of a request.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false
)

// HTTP Response Code Types define application-specific response codes.
const (
	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeNotAuthenticated indicates that no credential was presented.
	CodeNotAuthenticated = "not_authenticated"

	// CodeForbidden indicates the user lacks permission for the requested action.
	CodeForbidden = "forbidden"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeInternalError indicates an unexpected server error.
	CodeInternalError = "internal_error"

	// CodeValidationError indicates request validation failed.
	CodeValidationError = "validation_error"

	// CodeInvalidCredentials indicates provided authentication credentials are incorrect.
	CodeInvalidCredentials = "invalid_credentials"

	// CodeTokenExpired indicates an authentication token has passed its natural expiry.
	CodeTokenExpired = "expired"

	// CodeTokenInvalid indicates an authentication token is malformed or tampered with.
	CodeTokenInvalid = "invalid"

	// CodeTokenRevoked indicates an authentication token was revoked at logout.
	CodeTokenRevoked = "revoked"

	// CodeConflict indicates a resource conflict, such as a duplicate registration.
	CodeConflict = "conflict"

	// CodeRateLimited indicates the client exceeded the allowed request rate.
	CodeRateLimited = "rate_limited"
)

// HTTP Header Names and Values used by the security middleware.
const (
	// HeaderContentType is the standard Content-Type header name.
	HeaderContentType = "Content-Type"

	// ContentTypeJSON is the MIME type for JSON responses.
	ContentTypeJSON = "application/json"

	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// ContentTypeOptionsNoSniff instructs browsers not to sniff content types.
	ContentTypeOptionsNoSniff = "nosniff"

	// HeaderXFrameOptions controls whether the page may be framed.
	HeaderXFrameOptions = "X-Frame-Options"

	// FrameOptionsDeny forbids framing entirely.
	FrameOptionsDeny = "DENY"

	// HeaderXXSSProtection enables the legacy browser XSS filter.
	HeaderXXSSProtection = "X-XSS-Protection"

	// XSSProtectionModeBlock blocks the page when an attack is detected.
	XSSProtectionModeBlock = "1; mode=block"

	// HeaderReferrerPolicy controls referrer information sent with requests.
	HeaderReferrerPolicy = "Referrer-Policy"

	// ReferrerPolicyStrictOrigin limits referrer data on cross-origin requests.
	ReferrerPolicyStrictOrigin = "strict-origin-when-cross-origin"

	// HeaderContentSecurityPolicy restricts the sources content may load from.
	HeaderContentSecurityPolicy = "Content-Security-Policy"

	// CSPDefaultSrc restricts all content to the API's own origin.
	CSPDefaultSrc = "default-src 'self'"
)
