package clozegen

import "github.com/abhisek/verbo/internal/llm"

// PayloadSchema defines the JSON schema for generated cloze exercises.
// Slots carry only (id, lemma, tense, person); the conjugated solution is
// computed locally and never requested from the model.
var PayloadSchema = &llm.Schema{
	Name:        "cloze-exercise",
	Description: "A Spanish fill-in-the-blank exercise: dialogue lines and sentences with verb slots, plus optional filler lines",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":        "array",
				"description": "Exercise lines in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"dialogue_line", "sentence", "filler"},
							"description": "dialogue_line and sentence may carry a slot; filler is plain connecting text",
						},
						"speaker": map[string]any{
							"type":        "string",
							"description": "Speaker name for dialogue lines, empty otherwise",
						},
						"pre": map[string]any{
							"type":        "string",
							"description": "Text before the blank (or the whole line when there is no slot)",
						},
						"post": map[string]any{
							"type":        "string",
							"description": "Text after the blank, empty if none",
						},
						"slot": map[string]any{
							"type":        "object",
							"description": "The blank, present only on slot-bearing items",
							"properties": map[string]any{
								"id": map[string]any{
									"type":        "string",
									"description": "Opaque unique id for this blank",
								},
								"lemma": map[string]any{
									"type":        "string",
									"description": "Infinitive of the verb to conjugate, from the requested list",
								},
								"tense": map[string]any{
									"type": "string",
									"enum": []any{"preterite", "present"},
								},
								"person": map[string]any{
									"type": "string",
									"enum": []any{"yo", "tu", "el", "nosotros", "vosotros", "ellos"},
								},
							},
							"required": []any{"id", "lemma", "tense", "person"},
						},
					},
					"required": []any{"type", "pre"},
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
