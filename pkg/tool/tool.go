package tool

import (
	"context"
)

type Provider interface {
	Tools(ctx context.Context) ([]Tool, error)
}

type Schema map[string]any
type ExecuteFn func(ctx context.Context, args map[string]any) (any, error)

type Tool struct {
	Name        string
	Description string

	Schema  Schema
	Execute ExecuteFn
}

// Parameter describes one property of a tool's input object.
type Parameter struct {
	Name        string
	Description string

	// Type is the JSON type: "string", "integer" or "array".
	Type string

	// Items is the element type when Type is "array".
	Items string

	Required bool
}

func ObjectSchema(params ...Parameter) Schema {
	if len(params) == 0 {
		return Schema{
			"type":                 "object",
			"properties":           map[string]any{},
			"additionalProperties": false,
		}
	}

	properties := map[string]any{}
	required := []string{}

	for _, p := range params {
		property := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}

		if p.Type == "array" && p.Items != "" {
			property["items"] = map[string]any{
				"type": p.Items,
			}
		}

		properties[p.Name] = property

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return Schema{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
