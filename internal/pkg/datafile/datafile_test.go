package datafile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LittlestCube/toontown-archipelago/internal/errors"
	"github.com/LittlestCube/toontown-archipelago/internal/pkg/datafile"
)

const zoneSchema = `{
  "type": "object",
  "required": ["zones"],
  "properties": {
    "zones": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": { "id": { "type": "integer" }, "name": { "type": "string" } }
      }
    }
  }
}`

type zoneFile struct {
	Zones []struct {
		ID   int    `yaml:"id"`
		Name string `yaml:"name"`
	} `yaml:"zones"`
}

func TestDecode(t *testing.T) {
	schema, err := datafile.CompileSchema("zones.schema.json", zoneSchema)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		var out zoneFile
		err := schema.Decode([]byte("zones:\n  - id: 2000\n    name: Toontown Central\n"), &out)
		require.NoError(t, err)
		require.Len(t, out.Zones, 1)
		assert.Equal(t, 2000, out.Zones[0].ID)
	})

	t.Run("schema violation", func(t *testing.T) {
		var out zoneFile
		err := schema.Decode([]byte("zones:\n  - name: nowhere\n"), &out)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Equal(t, "zones.schema.json", errors.GetMeta(err)["file"])
	})

	t.Run("wrong type", func(t *testing.T) {
		var out zoneFile
		err := schema.Decode([]byte("zones:\n  - id: 12.5\n"), &out)
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		var out zoneFile
		err := schema.Decode([]byte("zones:\n  - id: 1\n    colour: red\n"), &out)
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		var out zoneFile
		err := schema.Decode([]byte("zones: [\n"), &out)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestCompileSchemaRejectsBadDocument(t *testing.T) {
	_, err := datafile.CompileSchema("bad.json", "{not json")
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
	assert.Equal(t, "bad.json", errors.GetMeta(err)["file"])
}
