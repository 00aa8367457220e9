package route

import (
	"github.com/invopop/jsonschema"
)

var jsonTypes = map[string]string{
	TypeString:  "string",
	TypeInteger: "integer",
	TypeFloat:   "number",
	TypeBoolean: "boolean",
	TypeArray:   "array",
	TypeHash:    "object",
}

// Schema returns the JSON Schema of an operation's parameters: an object with one property
// per parameter, in declaration order, and the required ones listed in Required.
func Schema(op Operation) *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	var required []string

	for _, p := range op.Params {
		jsonType, ok := jsonTypes[p.Type]
		if !ok {
			jsonType = "string"
		}
		properties.Set(p.Name, &jsonschema.Schema{
			Type:        jsonType,
			Description: p.Description,
		})
		if p.Required {
			required = append(required, p.Name)
		}
	}

	return &jsonschema.Schema{
		Type:        "object",
		Description: op.Summary,
		Properties:  properties,
		Required:    required,
	}
}
