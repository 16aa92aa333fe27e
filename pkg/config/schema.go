package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/marmos91/dataview/internal/bytesize"
)

var (
	byteSizeType = reflect.TypeOf(bytesize.ByteSize(0))
	durationType = reflect.TypeOf(time.Duration(0))
)

// JSONSchema returns a JSON Schema for the YAML configuration file, suitable
// for editor completion.
func JSONSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		FieldNameTag:   "yaml",
		DoNotReference: true,
		// every field has a default, so none is required in the file
		RequiredFromJSONSchemaTags: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			switch t {
			case byteSizeType:
				return &jsonschema.Schema{
					OneOf: []*jsonschema.Schema{
						{Type: "string", Pattern: `^[0-9.]+\s*[A-Za-z]*$`},
						{Type: "integer", Minimum: json.Number("0")},
					},
					Description: `Byte size, e.g. "16Mi" or 16777216`,
				}
			case durationType:
				return &jsonschema.Schema{Type: "string", Description: `Duration, e.g. "5s"`}
			}
			return nil
		},
	}

	schema := r.Reflect(&Config{})
	schema.Title = "dataview configuration"

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	return out, nil
}
