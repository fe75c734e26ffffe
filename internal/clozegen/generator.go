// Package clozegen produces cloze exercises through the LLM provider:
// prompt construction, schema-constrained generation, and a validator
// chain that rejects payloads before they ever reach a learner.
package clozegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/verbo/internal/exercise"
	"github.com/abhisek/verbo/internal/llm"
)

// Payload is the generated exercise as it comes off the wire: an item
// list with slots only, never solutions.
type Payload struct {
	Items []exercise.Item `json:"items"`
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated payload. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response. A whole
	// exercise is generated in one call, so this is generous.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// DialogueShare is the target fraction of slot-bearing items that
	// appear inside dialogue, the rest being standalone sentences.
	DialogueShare float64

	// MaxVocab is the maximum number of vocabulary words woven into
	// the prompt.
	MaxVocab int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults. The resolvable check needs the engine, so it is
// injected here.
func DefaultConfig(engine exercise.Conjugator) Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&SlotCountValidator{},
			&ResolvableValidator{Engine: engine},
		},
		MaxTokens:     4096,
		Temperature:   0.8,
		DialogueShare: 0.6,
		MaxVocab:      25,
	}
}

// LLMGenerator implements exercise.Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

var _ exercise.Generator = (*LLMGenerator)(nil)

// Generate produces a full exercise item list for the request.
func (g *LLMGenerator) Generate(ctx context.Context, req exercise.GenerateRequest) ([]exercise.Item, error) {
	ctx = llm.WithPurpose(ctx, "cloze-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, g.config)},
		},
		Schema:      PayloadSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var payload Payload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(payload.Items, req); verr != nil {
			return nil, verr
		}
	}

	return payload.Items, nil
}
