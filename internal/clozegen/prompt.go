package clozegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/verbo/internal/exercise"
)

const systemPrompt = `You are a Spanish teacher writing fill-in-the-blank exercises for an adult learner.

Rules:
- Produce a JSON exercise: a mix of short dialogue exchanges and standalone sentences, with exactly the requested number of verb blanks.
- Each blank (slot) names only the infinitive, tense, and person. NEVER include the conjugated form anywhere in the text or the slot.
- Use only the requested verbs for slots, each in the single requested tense. Spread persons across the six-person set.
- The text around each blank must make the intended subject unambiguous (pronoun or named subject), so exactly one conjugation fits.
- Dialogue lines carry a short speaker name. Filler lines are plain connecting text and never carry a slot.
- Weave the provided vocabulary words naturally into the surrounding text where they fit. Do not force them.
- Keep the register simple and natural. Spanish only, no translations.
- Slot ids are opaque strings; uniqueness matters, ordering does not.`

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(req exercise.GenerateRequest, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tense: %s\n", req.Tense)
	fmt.Fprintf(&b, "Blanks: %d\n", req.Size)
	fmt.Fprintf(&b, "Verbs: %s\n", strings.Join(req.Lemmas, ", "))
	fmt.Fprintf(&b, "Dialogue share: about %.0f%% of blanks in dialogue, the rest in standalone sentences\n",
		cfg.DialogueShare*100)

	b.WriteString("\nVocabulary to weave in:\n")
	b.WriteString(buildVocab(req.Vocab, cfg.MaxVocab))

	return b.String()
}

// buildVocab formats the vocabulary context, respecting the max limit.
func buildVocab(words []string, max int) string {
	if len(words) == 0 {
		return "None"
	}
	if max > 0 && len(words) > max {
		words = words[:max]
	}
	return strings.Join(words, ", ")
}
