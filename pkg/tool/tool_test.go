package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestObjectSchema(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		schema := ObjectSchema()

		assert.Equal(t, "object", schema["type"])
		assert.Equal(t, false, schema["additionalProperties"])
		assert.Empty(t, schema["properties"])
	})

	t.Run("RequiredInDeclarationOrder", func(t *testing.T) {
		schema := ObjectSchema(
			Parameter{Name: "website_id", Type: "integer", Description: "site", Required: true},
			Parameter{Name: "keyword_ids", Type: "array", Items: "integer", Description: "ids", Required: true},
			Parameter{Name: "note", Type: "string", Description: "optional"},
		)

		data, err := json.Marshal(schema)
		require.NoError(t, err)

		doc := gjson.ParseBytes(data)

		assert.Equal(t, "object", doc.Get("type").String())
		assert.Equal(t, `["website_id","keyword_ids"]`, doc.Get("required").Raw)
		assert.Equal(t, "integer", doc.Get("properties.website_id.type").String())
		assert.Equal(t, "integer", doc.Get("properties.keyword_ids.items.type").String())
		assert.False(t, doc.Get("properties.note.items").Exists())
		assert.Equal(t, "optional", doc.Get("properties.note.description").String())
	})
}
