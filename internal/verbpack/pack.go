// Package verbpack provides irregular conjugation packs: pure data tables
// mapping lemma → tense → person → form. Packs are injected into the
// conjugation engine, never imported by it as globals, so tests and
// alternate languages can swap them freely.
package verbpack

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/abhisek/verbo/internal/conjug"
)

// Load parses a pack from JSON of the shape
// {"lemma": {"tense": {"person": "form", ...}, ...}, ...}.
// Every tense and person key must be one the engine accepts.
func Load(r io.Reader) (conjug.Pack, error) {
	var raw map[string]map[string]map[string]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode verb pack: %w", err)
	}

	pack := conjug.Pack{}
	for lemma, byTense := range raw {
		entry := map[conjug.Tense]map[conjug.Person]string{}
		for tense, byPerson := range byTense {
			t := conjug.Tense(tense)
			if !t.Valid() {
				return nil, fmt.Errorf("verb pack %q: unknown tense %q", lemma, tense)
			}
			forms := map[conjug.Person]string{}
			for person, form := range byPerson {
				p := conjug.Person(person)
				if !p.Valid() {
					return nil, fmt.Errorf("verb pack %q/%s: unknown person %q", lemma, tense, person)
				}
				forms[p] = form
			}
			for _, p := range conjug.Persons {
				if forms[p] == "" {
					return nil, fmt.Errorf("verb pack %q/%s: missing person %q", lemma, tense, p)
				}
			}
			entry[t] = forms
		}
		pack[lemma] = entry
	}
	return pack, nil
}

// Lemmas returns the pack lemmas covering the given tense, sorted.
func Lemmas(pack conjug.Pack, tense conjug.Tense) []string {
	var out []string
	for lemma, byTense := range pack {
		if _, ok := byTense[tense]; ok {
			out = append(out, lemma)
		}
	}
	sort.Strings(out)
	return out
}
