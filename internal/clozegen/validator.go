package clozegen

import (
	"fmt"

	"github.com/abhisek/verbo/internal/exercise"
)

// Validator checks a generated item list for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "slot-count".
	Name() string

	// Validate checks the items and returns nil if they pass.
	Validate(items []exercise.Item, req exercise.GenerateRequest) *ValidationError
}

// ValidationError describes why a generated payload was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks item shapes: known types, non-empty text,
// speaker rules, well-formed slots with unique ids.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(items []exercise.Item, _ exercise.GenerateRequest) *ValidationError {
	if len(items) == 0 {
		return v.fail("payload has no items")
	}

	seen := make(map[string]bool)
	for i, it := range items {
		switch it.Type {
		case exercise.ItemDialogueLine:
			if it.Speaker == "" {
				return v.fail(fmt.Sprintf("item %d: dialogue line without speaker", i))
			}
		case exercise.ItemSentence:
		case exercise.ItemFiller:
			if it.Slot != nil {
				return v.fail(fmt.Sprintf("item %d: filler carries a slot", i))
			}
		default:
			return v.fail(fmt.Sprintf("item %d: unknown type %q", i, it.Type))
		}

		if it.Pre == "" {
			return v.fail(fmt.Sprintf("item %d: empty pre text", i))
		}

		if it.Slot != nil {
			if it.Slot.ID == "" {
				return v.fail(fmt.Sprintf("item %d: slot with empty id", i))
			}
			if seen[it.Slot.ID] {
				return v.fail(fmt.Sprintf("item %d: duplicate slot id %q", i, it.Slot.ID))
			}
			seen[it.Slot.ID] = true
			if it.Slot.Lemma == "" {
				return v.fail(fmt.Sprintf("item %d: slot with empty lemma", i))
			}
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}

// SlotCountValidator checks that the number of slot-bearing items equals
// the requested size exactly.
type SlotCountValidator struct{}

func (v *SlotCountValidator) Name() string { return "slot-count" }

func (v *SlotCountValidator) Validate(items []exercise.Item, req exercise.GenerateRequest) *ValidationError {
	count := 0
	for _, it := range items {
		if it.Slot != nil {
			count++
		}
	}
	if count != req.Size {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("requested %d blanks, payload has %d", req.Size, count),
			Retryable: true,
		}
	}
	return nil
}

// ResolvableValidator checks that every slot uses a requested lemma, the
// requested tense, and a (lemma, tense, person) triple the conjugation
// engine can resolve. A slot that fails here would otherwise surface as
// a grading failure mid-session.
type ResolvableValidator struct {
	Engine exercise.Conjugator
}

func (v *ResolvableValidator) Name() string { return "resolvable" }

func (v *ResolvableValidator) Validate(items []exercise.Item, req exercise.GenerateRequest) *ValidationError {
	requested := make(map[string]bool, len(req.Lemmas))
	for _, l := range req.Lemmas {
		requested[l] = true
	}

	for _, it := range items {
		s := it.Slot
		if s == nil {
			continue
		}
		if !requested[s.Lemma] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("slot %q uses verb %q outside the requested list", s.ID, s.Lemma),
				Retryable: true,
			}
		}
		if s.Tense != req.Tense {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("slot %q uses tense %q, exercise is %q", s.ID, s.Tense, req.Tense),
				Retryable: true,
			}
		}
		if _, err := v.Engine.Conjugate(s.Lemma, s.Tense, s.Person); err != nil {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("slot %q is not resolvable: %v", s.ID, err),
				Retryable: false,
			}
		}
	}
	return nil
}
