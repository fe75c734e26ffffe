// Package exercise implements the cloze exercise: the slot sequencer that
// orders blanks by their textual position, the progressive-disclosure
// visibility rule, and the session state machine that grades answers
// through the conjugation engine.
package exercise

import "github.com/abhisek/verbo/internal/conjug"

// ItemType tags the three exercise item variants.
type ItemType string

const (
	ItemDialogueLine ItemType = "dialogue_line"
	ItemSentence     ItemType = "sentence"
	ItemFiller       ItemType = "filler"
)

// Slot is one fill-in-the-blank position, tied to a specific conjugation.
// IDs are assigned by the generator and carry no ordering: the reveal
// order is the position of slot-bearing items in the item list.
type Slot struct {
	ID     string        `json:"id"`
	Lemma  string        `json:"lemma"`
	Tense  conjug.Tense  `json:"tense"`
	Person conjug.Person `json:"person"`
}

// Item is one generated exercise line. Dialogue lines and sentences carry
// text around an optional blank; fillers carry text only.
type Item struct {
	Type    ItemType `json:"type"`
	Speaker string   `json:"speaker,omitempty"`
	Pre     string   `json:"pre"`
	Post    string   `json:"post,omitempty"`
	Slot    *Slot    `json:"slot,omitempty"`
}
