package ruleset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a decoded key-value object validated by a ruleset.
type Document map[string]any

// Get returns the value at path. A path is a key, or keys joined with dots
// that descend into nested objects. Missing keys read as nil.
func (d Document) Get(path string) any {
	if v, ok := d[path]; ok {
		return v
	}

	var cur any = map[string]any(d)
	for key := range strings.SplitSeq(path, ".") {
		switch m := cur.(type) {
		case Document:
			cur = m[key]
		case map[string]any:
			cur = m[key]
		default:
			return nil
		}
	}
	return cur
}

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format by file extension; anything that is not
// .yaml or .yml is JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeDocument reads one document from r. The top-level value must be an object.
func DecodeDocument(r io.Reader, format Format) (Document, error) {
	var (
		doc map[string]any
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatJSON, "":
		err = json.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidDocument, format)
	}
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrInvalidDocument)
	}
	return Document(doc), nil
}
