// Package utils provides utility functions and helpers for the application.
//
// The validation.go file implements the input validation rules for
// registration and login payloads. The shape validators are pure, total
// functions returning a tagged ValidationResult; they never panic and never
// return more than one reason. Request-level struct validation (required
// fields, role membership) is layered on top using go-playground/validator.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/plateahq/Platea_Backend/internal/constants"
)

// ValidationResult is the uniform outcome of a shape validator: either Ok,
// or Invalid with exactly one human-readable reason.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// Ok returns a passing validation result.
func Ok() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid returns a failing validation result with the given reason.
func Invalid(reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

var (
	// emailPattern accepts local@domain.tld with no whitespace and no second
	// '@' before the domain, and requires at least one dot in the domain.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// namePattern accepts letters, spaces, hyphens and apostrophes.
	namePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

	// phonePattern accepts digits, spaces and the characters + - ( ).
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)

	// tagPattern matches tag-like substrings removed by SanitizeString.
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	// templatePattern matches ${...} template-injection fragments.
	templatePattern = regexp.MustCompile(`\$\{[^}]*\}`)

	// identifierPattern matches bare $identifier tokens.
	identifierPattern = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*`)
)

// ValidateEmail checks the structural shape of an email address. It performs
// no DNS or MX validation.
func ValidateEmail(s string) ValidationResult {
	if s == "" {
		return Invalid("Email is required")
	}
	if len(s) > constants.MaxEmailLength {
		return Invalid(fmt.Sprintf("Email must be at most %d characters long", constants.MaxEmailLength))
	}
	if !emailPattern.MatchString(s) {
		return Invalid("Email address is not valid")
	}
	return Ok()
}

// ValidatePassword checks password strength. On failure it reports only the
// first violated rule, in a fixed priority order: length, uppercase,
// lowercase, digit, symbol. The ordering is part of the contract.
func ValidatePassword(s string) ValidationResult {
	if len(s) < constants.MinPasswordLength {
		return Invalid(fmt.Sprintf("Password must be at least %d characters long", constants.MinPasswordLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, char := range s {
		switch {
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= '0' && char <= '9':
			hasDigit = true
		case strings.ContainsRune(constants.PasswordSymbolSet, char):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return Invalid("Password must contain at least one uppercase letter")
	case !hasLower:
		return Invalid("Password must contain at least one lowercase letter")
	case !hasDigit:
		return Invalid("Password must contain at least one digit")
	case !hasSymbol:
		return Invalid("Password must contain at least one special character")
	}
	return Ok()
}

// ValidateName checks a display name (first name, last name, restaurant name).
func ValidateName(s string) ValidationResult {
	if len(s) < constants.MinNameLength || len(s) > constants.MaxNameLength {
		return Invalid(fmt.Sprintf("Name must be between %d and %d characters long",
			constants.MinNameLength, constants.MaxNameLength))
	}
	if !namePattern.MatchString(s) {
		return Invalid("Name may only contain letters, spaces, hyphens and apostrophes")
	}
	return Ok()
}

// ValidatePhone checks a phone number. The empty string is valid because the
// phone field is optional. Callers must validate the raw input before any
// sanitization so that injection attempts are rejected rather than silently
// neutralized.
func ValidatePhone(s string) ValidationResult {
	if s == "" {
		return Ok()
	}
	if len(s) < constants.MinPhoneLength || len(s) > constants.MaxPhoneLength {
		return Invalid(fmt.Sprintf("Phone number must be between %d and %d characters long",
			constants.MinPhoneLength, constants.MaxPhoneLength))
	}
	if !phonePattern.MatchString(s) {
		return Invalid("Phone number may only contain digits, spaces and + - ( )")
	}
	return Ok()
}

// SanitizeString neutralizes a free-text input before persistence. It trims
// whitespace, truncates to the persistence limit, strips tag-like substrings
// and template-injection fragments, and entity-encodes the remaining HTML
// metacharacters. It is total: any input yields a usable string.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > constants.MaxSanitizedLength {
		s = s[:constants.MaxSanitizedLength]
	}

	s = tagPattern.ReplaceAllString(s, "")
	s = templatePattern.ReplaceAllString(s, "")
	s = identifierPattern.ReplaceAllString(s, "")

	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}

var (
	// validate is a singleton validator instance
	validate *validator.Validate
)

// InitValidator initializes the validator with custom validations
func InitValidator() {
	validate = validator.New()

	// Register function to get json tag names instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	log.Info().Msg("Validator initialized")
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// DecodeJSON decodes a JSON request body into the provided struct
// with improved error handling and size limits
func DecodeJSON(r *http.Request, v interface{}) error {
	// Limit the size of the request body to prevent DOS attacks
	r.Body = http.MaxBytesReader(nil, r.Body, constants.MaxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case err.Error() == "http: request body too large":
			return NewBadRequestError(constants.MsgRequestBodyTooLarge)

		case errors.Is(err, io.EOF):
			return NewBadRequestError(constants.MsgEmptyRequestBody)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return NewBadRequestError(constants.MsgMalformedJSON)

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return NewValidationError("unknown_field", fmt.Sprintf("Request body contains unknown field %s", fieldName))

		case errors.As(err, &syntaxError):
			return NewBadRequestError(fmt.Sprintf("Request body contains malformed JSON (at position %d)", syntaxError.Offset))

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return NewValidationError(unmarshalTypeError.Field, fmt.Sprintf("Must be a %s", unmarshalTypeError.Type.String()))
			}
			return NewBadRequestError(fmt.Sprintf("Request body contains incorrect JSON type (at position %d)", unmarshalTypeError.Offset))

		case errors.As(err, &invalidUnmarshalError):
			return NewInternalServerError(err)

		default:
			return NewBadRequestError(fmt.Sprintf("Error decoding JSON: %s", err.Error()))
		}
	}

	// Check for additional JSON data that would be ignored
	if dec.More() {
		return NewBadRequestError("Request body must only contain a single JSON object")
	}

	return nil
}

// ValidateStruct validates a struct using the validator
func ValidateStruct(v interface{}) error {
	if validate == nil {
		InitValidator()
	}

	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// Surface only the first violation; the shape validators in the
		// service layer own the detailed, ordered rule messages.
		e := validationErrors[0]
		return NewValidationError(e.Field(), getErrorMessage(e))
	}

	return NewBadRequestError(err.Error())
}

// DecodeAndValidate decodes a JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateStruct(v)
}

// getErrorMessage returns a user-friendly error message for a validation error
func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if e.Type().Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters long", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Type().Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters long", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "oneof":
		allowedValues := strings.ReplaceAll(e.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", allowedValues)
	default:
		return fmt.Sprintf("Failed validation on the '%s' tag", e.Tag())
	}
}
