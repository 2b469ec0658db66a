package dispatch

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// extractRaw locates the raw string value(s) for a non-body parameter.
// For list kinds every repeated query occurrence is returned; for scalar
// kinds only the first occurrence is used. The present flag distinguishes an
// absent parameter from an empty value.
//
// Path parameters are present by construction: chi only dispatches here when
// every named segment of the pattern matched.
func extractRaw(r *http.Request, spec *ParameterSpec) (value string, values []string, present bool) {
	switch spec.Source {
	case SourcePath:
		if spec.Wildcard {
			return chi.URLParam(r, "*"), nil, true
		}
		return chi.URLParam(r, spec.WireName()), nil, true

	case SourceQuery:
		vs, ok := r.URL.Query()[spec.WireName()]
		if !ok || len(vs) == 0 {
			return "", nil, false
		}
		if spec.Kind == KindStringList {
			return "", vs, true
		}
		return vs[0], nil, true

	case SourceCookie:
		c, err := r.Cookie(spec.WireName())
		if err != nil {
			return "", nil, false
		}
		return c.Value, nil, true
	}

	return "", nil, false
}
