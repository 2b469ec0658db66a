// Package constants provides shared constant values used throughout the application.
//
// The errortypes.go file defines the machine-readable type identifiers attached
// to validation error entries. Clients inspect these to distinguish missing
// parameters from coercion failures and constraint violations, so the values
// are part of the API contract and must remain stable.
package constants

// Validation Error Types identify the category of a single validation failure.
const (
	// ErrTypeMissing indicates a required parameter or field was not supplied.
	ErrTypeMissing = "missing"

	// ErrTypeIntParsing indicates a value could not be parsed as an integer.
	ErrTypeIntParsing = "int_parsing"

	// ErrTypeFloatParsing indicates a value could not be parsed as a number.
	ErrTypeFloatParsing = "float_parsing"

	// ErrTypeBoolParsing indicates a value is not one of the accepted boolean literals.
	ErrTypeBoolParsing = "bool_parsing"

	// ErrTypeEnum indicates a value is not a member of the permitted set.
	ErrTypeEnum = "enum"

	// ErrTypeStringTooShort indicates a string shorter than its minimum length.
	ErrTypeStringTooShort = "string_too_short"

	// ErrTypeStringTooLong indicates a string longer than its maximum length.
	ErrTypeStringTooLong = "string_too_long"

	// ErrTypeStringPattern indicates a string that does not match its required pattern.
	ErrTypeStringPattern = "string_pattern_mismatch"

	// ErrTypeGreaterThan indicates a number at or below an exclusive lower bound.
	ErrTypeGreaterThan = "greater_than"

	// ErrTypeGreaterThanEqual indicates a number below an inclusive lower bound.
	ErrTypeGreaterThanEqual = "greater_than_equal"

	// ErrTypeLessThan indicates a number at or above an exclusive upper bound.
	ErrTypeLessThan = "less_than"

	// ErrTypeLessThanEqual indicates a number above an inclusive upper bound.
	ErrTypeLessThanEqual = "less_than_equal"

	// ErrTypeJSONInvalid indicates a request body that is not valid JSON.
	ErrTypeJSONInvalid = "json_invalid"

	// ErrTypeTypeError indicates a JSON value of the wrong type for its field.
	ErrTypeTypeError = "type_error"

	// ErrTypeValueError is the fallback category for constraint failures with no
	// more specific type.
	ErrTypeValueError = "value_error"
)

// Validation Error Locations name the request sources a failing value came from.
const (
	// LocPath marks values extracted from named path segments.
	LocPath = "path"

	// LocQuery marks values extracted from the query string.
	LocQuery = "query"

	// LocCookie marks values extracted from cookies.
	LocCookie = "cookie"

	// LocBody marks values extracted from the JSON request body.
	LocBody = "body"
)
