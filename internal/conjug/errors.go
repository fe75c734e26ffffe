package conjug

import "fmt"

// UnsupportedTenseError indicates a tense outside {preterite, present}.
type UnsupportedTenseError struct {
	Tense Tense
}

func (e *UnsupportedTenseError) Error() string {
	return fmt.Sprintf("unsupported tense: %q", string(e.Tense))
}

// UnsupportedPersonError indicates a person outside the six-person set.
type UnsupportedPersonError struct {
	Person Person
}

func (e *UnsupportedPersonError) Error() string {
	return fmt.Sprintf("unsupported person: %q", string(e.Person))
}

// InvalidInfinitiveError indicates a lemma the engine has no rule for:
// the suffix does not classify it as -ar/-er/-ir, or the requested tense
// is covered only by the irregular pack and the pack has no entry.
type InvalidInfinitiveError struct {
	Lemma string
	Tense Tense
}

func (e *InvalidInfinitiveError) Error() string {
	if e.Tense == TensePresent {
		return fmt.Sprintf("no present-tense form for %q: present is irregular-pack only", e.Lemma)
	}
	return fmt.Sprintf("not a Spanish infinitive: %q", e.Lemma)
}
