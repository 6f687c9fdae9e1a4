package docs_test

import (
	"encoding/json"
	"testing"

	_ "voyage/docs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc("swagger")
	require.NoError(t, err)

	doc := struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	routes := map[string][]string{
		"/v1/bookings":                           {"get", "post"},
		"/v1/bookings/{id}/cancel":               {"post"},
		"/v1/bookings/{id}/complete":             {"post"},
		"/v1/room-types/{id}/availability":       {"get"},
		"/v1/hotels/{id}/rating":                 {"get"},
		"/v1/reviews/{id}/photos":                {"get", "post"},
		"/v1/destinations/{id}":                  {"get", "patch", "delete"},
		"/v1/hotels/{id}/amenities/{amenity_id}": {"delete"},
	}

	for path, methods := range routes {
		operations, ok := doc.Paths[path]
		require.True(t, ok, "missing path %s", path)

		for _, method := range methods {
			assert.Contains(t, operations, method, "%s %s", method, path)
		}
	}

	t.Run("every reference resolves", func(t *testing.T) {
		for path, operations := range doc.Paths {
			for method, operation := range operations {
				for _, ref := range references(t, operation) {
					assert.Contains(t, doc.Definitions, ref, "%s %s", method, path)
				}
			}
		}
	})
}

func references(t *testing.T, raw json.RawMessage) []string {
	t.Helper()

	var node any
	require.NoError(t, json.Unmarshal(raw, &node))

	var refs []string

	var walk func(any)
	walk = func(v any) {
		switch n := v.(type) {
		case map[string]any:
			for key, child := range n {
				if ref, ok := child.(string); ok && key == "$ref" {
					refs = append(refs, ref[len("#/definitions/"):])

					continue
				}

				walk(child)
			}
		case []any:
			for _, child := range n {
				walk(child)
			}
		}
	}
	walk(node)

	return refs
}
