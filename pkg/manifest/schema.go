package manifest

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

const schemaDraft = "https://json-schema.org/draft/2020-12/schema"

var uuidType = reflect.TypeOf(uuid.UUID{})

// JSONSchema returns the JSON Schema describing the JSON form of f's
// format version.
func JSONSchema(f Format) ([]byte, error) {
	if f == nil {
		return nil, ErrNilFormat
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == uuidType {
				return &jsonschema.Schema{Type: "string", Format: "uuid"}
			}
			return nil
		},
	}

	schema := reflector.Reflect(f)
	schema.Version = schemaDraft
	schema.Title = fmt.Sprintf("Manifest %s", f.Version())
	schema.Description = fmt.Sprintf("JSON form of a format %s manifest", f.Version())

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	return out, nil
}
