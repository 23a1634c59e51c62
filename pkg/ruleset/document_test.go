package ruleset_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldrules/pkg/ruleset"
)

func TestDocument_Get(t *testing.T) {
	doc := ruleset.Document{
		"name":     "Ann",
		"a.b":      "literal",
		"address":  map[string]any{"city": "Berlin", "geo": map[string]any{"lat": 52.5}},
		"nested":   ruleset.Document{"key": 1},
		"scalar":   5,
		"nullable": nil,
	}

	assert.Equal(t, "Ann", doc.Get("name"))
	assert.Equal(t, "literal", doc.Get("a.b"))
	assert.Equal(t, "Berlin", doc.Get("address.city"))
	assert.Equal(t, 52.5, doc.Get("address.geo.lat"))
	assert.Equal(t, 1, doc.Get("nested.key"))
	assert.Nil(t, doc.Get("scalar.x"))
	assert.Nil(t, doc.Get("missing"))
	assert.Nil(t, doc.Get("address.zip"))
	assert.Nil(t, doc.Get("nullable"))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, ruleset.FormatYAML, ruleset.FormatFromPath("doc.yaml"))
	assert.Equal(t, ruleset.FormatYAML, ruleset.FormatFromPath("DOC.YML"))
	assert.Equal(t, ruleset.FormatJSON, ruleset.FormatFromPath("doc.json"))
	assert.Equal(t, ruleset.FormatJSON, ruleset.FormatFromPath("-"))
}

func TestDecodeDocument(t *testing.T) {
	t.Run("json file", func(t *testing.T) {
		f, err := os.Open("testdata/user.json")
		require.NoError(t, err)
		defer f.Close()

		doc, err := ruleset.DecodeDocument(f, ruleset.FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "ann@example.com", doc.Get("email"))
		assert.Equal(t, float64(30), doc.Get("age"))
		assert.Equal(t, "Berlin", doc.Get("address.city"))
	})

	t.Run("yaml file", func(t *testing.T) {
		f, err := os.Open("testdata/user.yaml")
		require.NoError(t, err)
		defer f.Close()

		doc, err := ruleset.DecodeDocument(f, ruleset.FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, 12, doc.Get("age"))
		assert.Equal(t, "Paris", doc.Get("address.city"))
	})

	t.Run("validates against ruleset", func(t *testing.T) {
		set := loadTestSet(t)
		f, err := os.Open("testdata/user.yaml")
		require.NoError(t, err)
		defer f.Close()

		doc, err := ruleset.DecodeDocument(f, ruleset.FormatYAML)
		require.NoError(t, err)
		err = set.Validate("user", doc)
		require.Error(t, err)
		assert.Equal(t, "age: value must be greater than 18", err.Error())
	})

	errorCases := []struct {
		name   string
		input  string
		format ruleset.Format
	}{
		{"array json", "[1, 2]", ruleset.FormatJSON},
		{"null json", "null", ruleset.FormatJSON},
		{"broken json", "{", ruleset.FormatJSON},
		{"empty yaml", "", ruleset.FormatYAML},
		{"scalar yaml", "just text", ruleset.FormatYAML},
		{"unknown format", "{}", ruleset.Format("toml")},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ruleset.DecodeDocument(strings.NewReader(tt.input), tt.format)
			assert.ErrorIs(t, err, ruleset.ErrInvalidDocument)
		})
	}
}
