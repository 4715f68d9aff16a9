package agent

import "encoding/json"

// Schema returns a JSON Schema describing an agent definition file as
// indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "agent definition",
		"description":          "One agent definition for the community store: display metadata, a system message, colors, and a set of tags drawn from the tag vocabulary.",
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"name", "emoji", "description", "system_message",
			"label_color", "text_color", "is_default",
		},
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Display name of the agent.",
			},
			"emoji": map[string]any{
				"type":        "string",
				"description": "Emoji shown alongside the agent name.",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One or two sentences describing what the agent does.",
			},
			"system_message": map[string]any{
				"type":        "string",
				"description": "The system prompt the agent runs with. Usually authored in literal block style (|); the writer preserves that choice on re-save.",
			},
			"label_color": map[string]any{
				"type":        "string",
				"pattern":     "^#[0-9A-Fa-f]{6}$",
				"description": "Hex color (#RRGGBB) for the agent's label background.",
			},
			"text_color": map[string]any{
				"type":        "string",
				"pattern":     "^#[0-9A-Fa-f]{6}$",
				"description": "Hex color (#RRGGBB) for the agent's label text.",
			},
			"is_default": map[string]any{
				"type":        "boolean",
				"description": "Whether this agent is part of the default set.",
			},
			"tags": map[string]any{
				"type":        "array",
				"description": "Tag identifiers. Every entry must exist in the tag vocabulary file.",
				"items":       map[string]any{"type": "string"},
			},
			"author": map[string]any{
				"type":        "string",
				"description": "Optional identifier of the agent's author.",
			},
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}
