package dispatch

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/utils"
)

// Mount registers every route on the router after checking its invariants.
// It is called once at startup; a non-nil error means the route table itself
// is malformed and the server must not start.
func Mount(r chi.Router, routes []Route) error {
	for i := range routes {
		route := routes[i]
		if err := checkRoute(&route); err != nil {
			return fmt.Errorf("route %s %s: %w", route.Method, route.Path, err)
		}
		r.Method(route.Method, route.Path, handlerFor(route))
	}
	return nil
}

// checkRoute enforces the route table invariants: a handler must be set,
// parameter names must be unique per route, path parameters are always
// required, and body parameters must provide a decode target.
func checkRoute(route *Route) error {
	if route.Handler == nil {
		return fmt.Errorf("handler is nil")
	}
	if route.Method == "" {
		return fmt.Errorf("method is empty")
	}

	seen := make(map[string]struct{}, len(route.Params))
	for i := range route.Params {
		spec := &route.Params[i]
		if spec.Name == "" {
			return fmt.Errorf("parameter %d has no name", i)
		}
		if _, dup := seen[spec.Name]; dup {
			return fmt.Errorf("duplicate parameter name %q", spec.Name)
		}
		seen[spec.Name] = struct{}{}

		if spec.Source == SourcePath {
			spec.Required = true
		}
		if spec.Source == SourceBody && spec.Kind != KindWeights && spec.New == nil {
			return fmt.Errorf("body parameter %q has no decode target", spec.Name)
		}
	}

	return nil
}

// handlerFor wraps a route in the per-request pipeline: extract and validate
// every declared parameter, then either short-circuit with the aggregated
// issues or invoke the handler with the assembled values.
func handlerFor(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := make(map[string]any, len(route.Params))
		var issues []utils.ValidationIssue
		var bodySpecs []*ParameterSpec

		for i := range route.Params {
			spec := &route.Params[i]

			if spec.Source == SourceBody {
				bodySpecs = append(bodySpecs, spec)
				continue
			}

			value, list, present := extractRaw(r, spec)
			if !present {
				if spec.Default != nil {
					values[spec.Name] = normalizeDefault(spec.Default)
					continue
				}
				if spec.Required {
					issues = append(issues, utils.ValidationIssue{
						Location: []string{spec.Source.String(), spec.WireName()},
						Message:  "Field required",
						Type:     constants.ErrTypeMissing,
					})
				}
				continue
			}

			loc := []string{spec.Source.String(), spec.WireName()}
			if spec.Kind == KindStringList {
				elems, listIssues := coerceList(spec, list, loc)
				if len(listIssues) > 0 {
					issues = append(issues, listIssues...)
					continue
				}
				values[spec.Name] = elems
				continue
			}

			typed, scalarIssues := coerceScalar(spec, value, loc)
			if len(scalarIssues) > 0 {
				issues = append(issues, scalarIssues...)
				continue
			}
			values[spec.Name] = typed
		}

		if len(bodySpecs) > 0 {
			issues = append(issues, extractBodyParams(r, bodySpecs, values)...)
		}

		if len(issues) > 0 {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("issues", len(issues)).
				Msg("Request validation failed")
			utils.ValidationFailed(w, issues)
			return
		}

		result, err := route.Handler(r.Context(), &Request{values: values})
		if err != nil {
			writeHandlerError(w, err)
			return
		}

		utils.JSON(w, constants.StatusOK, result)
	}
}

// writeHandlerError renders a handler error. Handlers in this repository
// normally cannot fail, but an AppError returned by one keeps its status and
// message; anything unclassified is an internal failure.
func writeHandlerError(w http.ResponseWriter, err error) {
	appErr := utils.ParseError(err)
	switch {
	case utils.IsValidationError(err):
		utils.ValidationFailed(w, appErr.Issues)
	case utils.StatusCode(err) >= constants.StatusInternalServerError:
		utils.InternalServerError(w, err)
	default:
		utils.JSON(w, appErr.StatusCode, utils.Detail{Detail: appErr.Message})
	}
}

// normalizeDefault widens untyped default literals to the types Request
// accessors return, so specs can use plain int and float literals.
func normalizeDefault(v any) any {
	switch d := v.(type) {
	case int:
		return int64(d)
	case int32:
		return int64(d)
	case float32:
		return float64(d)
	}
	return v
}
