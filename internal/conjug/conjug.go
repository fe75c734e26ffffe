// Package conjug implements the deterministic Spanish conjugation engine.
//
// Regular rules cover the preterite for -ar/-er/-ir infinitives, including
// the car/gar/zar spelling changes in the yo form. Everything else (and the
// whole present tense) is served from an injected irregular pack, which
// fully overrides the regular rules for any lemma+tense it covers.
package conjug

import "strings"

// Tense identifies a verb tense the engine knows about.
type Tense string

const (
	TensePreterite Tense = "preterite"
	TensePresent   Tense = "present"
)

// Valid reports whether t is a tense the engine accepts.
func (t Tense) Valid() bool {
	return t == TensePreterite || t == TensePresent
}

// Person identifies one of the six grammatical persons.
type Person string

const (
	PersonYo       Person = "yo"
	PersonTu       Person = "tu"
	PersonEl       Person = "el"
	PersonNosotros Person = "nosotros"
	PersonVosotros Person = "vosotros"
	PersonEllos    Person = "ellos"
)

// Persons lists the six persons in canonical order.
var Persons = []Person{
	PersonYo, PersonTu, PersonEl,
	PersonNosotros, PersonVosotros, PersonEllos,
}

// Valid reports whether p is one of the six supported persons.
func (p Person) Valid() bool {
	switch p {
	case PersonYo, PersonTu, PersonEl, PersonNosotros, PersonVosotros, PersonEllos:
		return true
	}
	return false
}

// VerbClass is the conjugation class of a regular infinitive.
type VerbClass string

const (
	ClassAr VerbClass = "ar"
	ClassEr VerbClass = "er"
	ClassIr VerbClass = "ir"
)

// Pack maps lemma → tense → person → surface form. A pack entry for a
// lemma+tense overrides the regular rules for every person of that tense.
type Pack map[string]map[Tense]map[Person]string

// preteriteEndings holds the regular preterite ending tables.
// The er and ir classes share one table.
var preteriteEndings = map[VerbClass]map[Person]string{
	ClassAr: {
		PersonYo: "é", PersonTu: "aste", PersonEl: "ó",
		PersonNosotros: "amos", PersonVosotros: "asteis", PersonEllos: "aron",
	},
	ClassEr: {
		PersonYo: "í", PersonTu: "iste", PersonEl: "ió",
		PersonNosotros: "imos", PersonVosotros: "isteis", PersonEllos: "ieron",
	},
	ClassIr: {
		PersonYo: "í", PersonTu: "iste", PersonEl: "ió",
		PersonNosotros: "imos", PersonVosotros: "isteis", PersonEllos: "ieron",
	},
}

// Classify returns the verb class of an infinitive by suffix.
// The second result is false when the lemma is not a Spanish infinitive.
func Classify(lemma string) (VerbClass, bool) {
	s := strings.ToLower(strings.TrimSpace(lemma))
	switch {
	case strings.HasSuffix(s, "ar"):
		return ClassAr, true
	case strings.HasSuffix(s, "er"):
		return ClassEr, true
	case strings.HasSuffix(s, "ir"):
		return ClassIr, true
	}
	return "", false
}

// Engine conjugates lemmas using the regular rule tables and an
// injected irregular pack.
type Engine struct {
	pack Pack
}

// NewEngine creates an Engine backed by the given irregular pack.
// A nil pack leaves the engine with regular preterite rules only.
func NewEngine(pack Pack) *Engine {
	if pack == nil {
		pack = Pack{}
	}
	return &Engine{pack: pack}
}

// Conjugate returns the surface form for (lemma, tense, person).
//
// The irregular pack is consulted first: a pack entry for lemma+tense wins
// for all six persons, even when the lemma would classify as regular.
// Without a pack entry, the preterite is built from the regular tables and
// the present fails — present coverage is pack-only.
func (e *Engine) Conjugate(lemma string, tense Tense, person Person) (string, error) {
	if !tense.Valid() {
		return "", &UnsupportedTenseError{Tense: tense}
	}
	if !person.Valid() {
		return "", &UnsupportedPersonError{Person: person}
	}

	lemma = strings.ToLower(strings.TrimSpace(lemma))

	if byTense, ok := e.pack[lemma]; ok {
		if forms, ok := byTense[tense]; ok {
			// A hand-built pack may leave person gaps; never hand back
			// an empty form as if it were a conjugation.
			form, ok := forms[person]
			if !ok || form == "" {
				return "", &InvalidInfinitiveError{Lemma: lemma, Tense: tense}
			}
			return form, nil
		}
	}

	if tense == TensePresent {
		return "", &InvalidInfinitiveError{Lemma: lemma, Tense: tense}
	}

	class, ok := Classify(lemma)
	if !ok {
		return "", &InvalidInfinitiveError{Lemma: lemma, Tense: tense}
	}

	stem := lemma[:len(lemma)-2]
	if class == ClassAr && person == PersonYo {
		stem = preteriteYoStem(stem)
	}

	return stem + preteriteEndings[class][person], nil
}

// Resolvable reports whether Conjugate would succeed for the triple.
func (e *Engine) Resolvable(lemma string, tense Tense, person Person) bool {
	_, err := e.Conjugate(lemma, tense, person)
	return err == nil
}

// preteriteYoStem applies the -car/-gar/-zar spelling change before the
// -é ending: busc → busqu, pag → pagu, empez → empec. Only the ar-class
// yo cell uses this.
func preteriteYoStem(stem string) string {
	switch {
	case strings.HasSuffix(stem, "c"):
		return stem[:len(stem)-1] + "qu"
	case strings.HasSuffix(stem, "g"):
		return stem[:len(stem)-1] + "gu"
	case strings.HasSuffix(stem, "z"):
		return stem[:len(stem)-1] + "c"
	}
	return stem
}
