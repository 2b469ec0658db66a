package dispatch

// NewTestRequest builds a Request carrying pre-validated values. It exists so
// handler tests can exercise handlers directly without going through the
// extraction pipeline.
func NewTestRequest(values map[string]any) *Request {
	if values == nil {
		values = make(map[string]any)
	}
	return &Request{values: values}
}
