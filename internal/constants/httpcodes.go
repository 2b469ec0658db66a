// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// headers, and content types. These constants ensure consistent HTTP
// communication patterns across the application and provide meaningful
// standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
// These codes indicate the result of the HTTP request processing.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusUnprocessableEntity indicates that the request was well-formed but failed validation.
	StatusUnprocessableEntity = 422

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500
)

// HTTP Headers define standard header names used in requests and responses.
const (
	// HeaderContentType specifies the media type of the resource.
	HeaderContentType = "Content-Type"

	// HeaderRequestID carries the correlation identifier assigned to each request.
	HeaderRequestID = "X-Request-ID"

	// HeaderOrigin identifies the origin of a cross-site request.
	HeaderOrigin = "Origin"
)

// Content Types define standard MIME types for response bodies.
const (
	// ContentTypeJSON is the MIME type for JSON content.
	ContentTypeJSON = "application/json"
)

// Response Messages define standard human-readable detail strings.
const (
	// MsgNotFound is the detail message returned when no route matches the request path.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is the detail message returned when the route exists but the method does not.
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is the detail message returned when a handler panics.
	MsgInternalServerError = "Internal Server Error"
)
