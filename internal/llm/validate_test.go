package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema(name string) *Schema {
	return &Schema{
		Name: name,
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"pre": map[string]any{"type": "string"},
						},
						"required": []any{"pre"},
					},
				},
			},
			"required":             []any{"items"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"items": [{"pre": "Ayer "}]}`)
	if err := validateResponse(testSchema("valid-case"), raw); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestValidateResponse_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"items": [`},
		{"missing required field", `{}`},
		{"extra property", `{"items": [], "answers": []}`},
		{"wrong item shape", `{"items": [{"post": "x"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema("reject-case"), json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("err = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"items": []}`)
	s := testSchema("cache-case")

	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Error("compiled schema not cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
