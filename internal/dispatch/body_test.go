package dispatch

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandgrav/catalog-api/internal/constants"
	"github.com/sandgrav/catalog-api/internal/utils"
)

type testImage struct {
	URL  string `json:"url" validate:"required,url"`
	Name string `json:"name" validate:"required"`
}

type testItem struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

type testOffer struct {
	Name  string     `json:"name" validate:"required"`
	Items []testItem `json:"items" validate:"required,dive"`
}

// extractBody is a test helper running body extraction against a raw payload.
func extractBody(t *testing.T, payload string, spec ParameterSpec) (map[string]any, []utils.ValidationIssue) {
	t.Helper()
	r := httptest.NewRequest("POST", "/", bytes.NewBufferString(payload))
	values := make(map[string]any)
	issues := extractBodyParams(r, []*ParameterSpec{&spec}, values)
	return values, issues
}

// TestExtractBodyParams tests body decoding, defaults, and error collection
func TestExtractBodyParams(t *testing.T) {
	t.Run("ValidModel", func(t *testing.T) {
		values, issues := extractBody(t, `{"name":"Foo","price":35.4}`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testItem{} },
		})
		require.Empty(t, issues)

		item := values["item"].(*testItem)
		assert.Equal(t, "Foo", item.Name)
		require.NotNil(t, item.Price)
		assert.Equal(t, 35.4, *item.Price)
	})

	t.Run("EmptyBodyRequired", func(t *testing.T) {
		_, issues := extractBody(t, "", ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testItem{} },
		})
		require.Len(t, issues, 1)
		assert.Equal(t, []string{constants.LocBody}, issues[0].Location)
		assert.Equal(t, constants.ErrTypeMissing, issues[0].Type)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, issues := extractBody(t, `{"name":`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testItem{} },
		})
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ErrTypeJSONInvalid, issues[0].Type)
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		_, issues := extractBody(t, `{"name":"Foo","price":"cheap"}`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testItem{} },
		})
		require.NotEmpty(t, issues)
		assert.Equal(t, constants.ErrTypeTypeError, issues[0].Type)
		assert.Equal(t, []string{"body", "price"}, issues[0].Location)
	})

	t.Run("MissingFieldsCollected", func(t *testing.T) {
		_, issues := extractBody(t, `{}`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testItem{} },
		})
		require.Len(t, issues, 2)
		assert.Equal(t, []string{"body", "name"}, issues[0].Location)
		assert.Equal(t, []string{"body", "price"}, issues[1].Location)
		for _, issue := range issues {
			assert.Equal(t, constants.ErrTypeMissing, issue.Type)
			assert.Equal(t, "Field required", issue.Message)
		}
	})

	t.Run("NestedListErrorsCollected", func(t *testing.T) {
		payload := `{"items":[{"name":"ok","price":1.5},{}]}`
		_, issues := extractBody(t, payload, ParameterSpec{
			Name: "offer", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testOffer{} },
		})

		locations := make([][]string, 0, len(issues))
		for _, issue := range issues {
			locations = append(locations, issue.Location)
		}
		assert.Contains(t, locations, []string{"body", "name"})
		assert.Contains(t, locations, []string{"body", "items", "1", "name"})
		assert.Contains(t, locations, []string{"body", "items", "1", "price"})
	})

	t.Run("EmptyListFieldAccepted", func(t *testing.T) {
		// required on a slice rejects an omitted (nil) list, not an empty one
		values, issues := extractBody(t, `{"name":"Bundle","items":[]}`, ParameterSpec{
			Name: "offer", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testOffer{} },
		})
		require.Empty(t, issues)
		assert.Empty(t, values["offer"].(*testOffer).Items)
	})

	t.Run("OmittedListFieldRejected", func(t *testing.T) {
		_, issues := extractBody(t, `{"name":"Bundle"}`, ParameterSpec{
			Name: "offer", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &testOffer{} },
		})
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"body", "items"}, issues[0].Location)
		assert.Equal(t, constants.ErrTypeMissing, issues[0].Type)
	})

	t.Run("EmbeddedModel", func(t *testing.T) {
		values, issues := extractBody(t, `{"item":{"name":"Foo","price":2.0}}`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true, Embed: true,
			New: func() any { return &testItem{} },
		})
		require.Empty(t, issues)
		assert.Equal(t, "Foo", values["item"].(*testItem).Name)
	})

	t.Run("EmbeddedKeyMissing", func(t *testing.T) {
		_, issues := extractBody(t, `{"other":1}`, ParameterSpec{
			Name: "item", Source: SourceBody, Kind: KindModel, Required: true, Embed: true,
			New: func() any { return &testItem{} },
		})
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"body", "item"}, issues[0].Location)
		assert.Equal(t, constants.ErrTypeMissing, issues[0].Type)
	})

	t.Run("ModelList", func(t *testing.T) {
		payload := `[{"url":"https://example.com/a.jpg","name":"a"},{"url":"nope","name":""}]`
		_, issues := extractBody(t, payload, ParameterSpec{
			Name: "images", Source: SourceBody, Kind: KindModel, Required: true,
			New: func() any { return &[]testImage{} },
		})

		locations := make([][]string, 0, len(issues))
		for _, issue := range issues {
			locations = append(locations, issue.Location)
		}
		assert.Contains(t, locations, []string{"body", "1", "url"})
		assert.Contains(t, locations, []string{"body", "1", "name"})
	})

	t.Run("Weights", func(t *testing.T) {
		values, issues := extractBody(t, `{"2":3.8,"5":1.2}`, ParameterSpec{
			Name: "weights", Source: SourceBody, Kind: KindWeights, Required: true,
		})
		require.Empty(t, issues)
		assert.Equal(t, map[int64]float64{2: 3.8, 5: 1.2}, values["weights"])
	})

	t.Run("WeightsBadKey", func(t *testing.T) {
		_, issues := extractBody(t, `{"two":3.8}`, ParameterSpec{
			Name: "weights", Source: SourceBody, Kind: KindWeights, Required: true,
		})
		require.Len(t, issues, 1)
		assert.Equal(t, []string{"body", "two"}, issues[0].Location)
		assert.Equal(t, constants.ErrTypeIntParsing, issues[0].Type)
	})
}

// TestNamespaceTokens tests validator namespace translation
func TestNamespaceTokens(t *testing.T) {
	tests := []struct {
		namespace string
		expected  []string
	}{
		{"Item.name", []string{"name"}},
		{"Offer.items[0].price", []string{"items", "0", "price"}},
		{"Offer.items[12].image.url", []string{"items", "12", "image", "url"}},
		{"Item", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, namespaceTokens(tt.namespace), "namespace %q", tt.namespace)
	}
}
