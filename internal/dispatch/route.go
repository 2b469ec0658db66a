// Package dispatch implements the request validation and dispatch layer for
// the application. Every endpoint is described by a Route: an HTTP method, a
// path pattern, an ordered list of parameter specifications, and a handler.
// The route table is built once at startup and never mutated.
//
// For each incoming request the dispatcher extracts the raw value of every
// declared parameter from its source (path segment, query string, cookie, or
// JSON body), coerces it to the declared kind, and checks the declared
// constraints. Handlers are only invoked with fully validated, already typed
// values; any failure short-circuits into a 422 response carrying every
// collected issue. Route matching itself is delegated to chi, which prefers
// literal segments over parameterized ones and supports trailing wildcards.
package dispatch

import (
	"context"
	"regexp"

	"github.com/sandgrav/catalog-api/internal/constants"
)

// Source identifies where a parameter's raw value is extracted from.
type Source int

const (
	// SourcePath extracts the value from a named path segment.
	SourcePath Source = iota

	// SourceQuery extracts the value from the URL query string.
	SourceQuery

	// SourceCookie extracts the value from a request cookie.
	SourceCookie

	// SourceBody extracts the value from the JSON request body.
	SourceBody
)

// String returns the wire name of the source as used in error locations.
func (s Source) String() string {
	switch s {
	case SourcePath:
		return constants.LocPath
	case SourceQuery:
		return constants.LocQuery
	case SourceCookie:
		return constants.LocCookie
	case SourceBody:
		return constants.LocBody
	default:
		return "unknown"
	}
}

// Kind is the semantic type a raw value is coerced to.
type Kind int

const (
	// KindString passes the raw value through after constraint checks.
	KindString Kind = iota

	// KindInt parses the value as a 64-bit integer.
	KindInt

	// KindFloat parses the value as a 64-bit float.
	KindFloat

	// KindBool parses the value using the accepted boolean literals.
	KindBool

	// KindEnum requires the value to equal one of the permitted members.
	KindEnum

	// KindStringList collects every repeated occurrence of a query parameter.
	KindStringList

	// KindModel decodes and validates a JSON body model.
	KindModel

	// KindWeights decodes an integer-keyed map of numbers from the body.
	KindWeights
)

// ParameterSpec declares a single parameter of a route: its name, source,
// semantic kind, and constraints. Specs are constructed once at startup and
// treated as immutable afterwards.
type ParameterSpec struct {
	// Name is the internal name handlers use to look the value up.
	Name string

	// Alias is the wire name used for extraction when it differs from Name.
	Alias string

	// Source selects where the raw value comes from.
	Source Source

	// Kind selects the coercion applied to the raw value.
	Kind Kind

	// Required rejects the request when no value and no default is available.
	// Path parameters are always required by construction.
	Required bool

	// Default is stored in place of an absent optional query or cookie value.
	Default any

	// Wildcard marks a path parameter that captures the rest of the path,
	// including embedded separators.
	Wildcard bool

	// Embed nests the body value under the wire name instead of using the
	// whole document.
	Embed bool

	// Enum lists the permitted members for KindEnum (case-sensitive).
	Enum []string

	// MinLength and MaxLength bound string lengths when non-nil.
	MinLength *int
	MaxLength *int

	// Pattern must match the whole value when non-nil.
	Pattern *regexp.Regexp

	// Ge, Gt, Le, Lt bound numeric values when non-nil. Ge/Le are inclusive,
	// Gt/Lt exclusive.
	Ge *float64
	Gt *float64
	Le *float64
	Lt *float64

	// New returns a fresh decode target for body parameters, typically a
	// pointer to a model struct, a slice of models, or a weights map.
	New func() any
}

// WireName returns the name used to look the value up in the request.
func (p *ParameterSpec) WireName() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Name
}

// HandlerFunc is invoked with validated, typed parameter values and returns
// the value to serialize as the response body. Handlers never see invalid
// input; a non-nil error is treated as an internal failure.
type HandlerFunc func(ctx context.Context, req *Request) (any, error)

// Route binds a method and path pattern to a parameter list and a handler.
// Path patterns use chi syntax: "/items/{item_id}" for named segments and a
// trailing "/*" for rest-of-path wildcards.
type Route struct {
	Method  string
	Path    string
	Params  []ParameterSpec
	Handler HandlerFunc
}

// Request carries the validated parameter values for a single request.
// Values are freshly built per request; nothing is shared between requests.
type Request struct {
	values map[string]any
}

// Has reports whether a value is present for the named parameter. Optional
// parameters without a default are simply absent when not supplied.
func (r *Request) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Int returns the named parameter as an int64. It returns zero when absent.
func (r *Request) Int(name string) int64 {
	v, _ := r.values[name].(int64)
	return v
}

// Float returns the named parameter as a float64. It returns zero when absent.
func (r *Request) Float(name string) float64 {
	v, _ := r.values[name].(float64)
	return v
}

// Bool returns the named parameter as a bool. It returns false when absent.
func (r *Request) Bool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

// String returns the named parameter as a string. It returns "" when absent.
func (r *Request) String(name string) string {
	v, _ := r.values[name].(string)
	return v
}

// Strings returns the named list parameter. It returns nil when absent.
func (r *Request) Strings(name string) []string {
	v, _ := r.values[name].([]string)
	return v
}

// Value returns the raw validated value, typically a decoded body model.
func (r *Request) Value(name string) any {
	return r.values[name]
}

// Int is a convenience for taking the address of an int literal in a spec.
func Int(v int) *int {
	return &v
}

// Float is a convenience for taking the address of a float literal in a spec.
func Float(v float64) *float64 {
	return &v
}
