package exercise

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/verbo/internal/conjug"
)

// Conjugator resolves a (lemma, tense, person) triple to its surface form.
// *conjug.Engine is the production implementation.
type Conjugator interface {
	Conjugate(lemma string, tense conjug.Tense, person conjug.Person) (string, error)
}

// State is the session lifecycle state.
type State string

const (
	StateIdle       State = "idle"        // no session exists
	StateReady      State = "ready"       // created, nothing revealed
	StateInProgress State = "in_progress" // some but not all slots revealed
	StateComplete   State = "complete"    // every slot revealed; terminal
)

// ErrSessionComplete is returned by SubmitAnswer once every blank has
// been revealed. Complete is terminal; revealed slots are never
// re-answered.
var ErrSessionComplete = errors.New("session is complete: no blank remains to answer")

// Score accumulates grading results over a session.
type Score struct {
	Attempted int
	Correct   int
}

// Session is an immutable snapshot of one cloze exercise run. Transitions
// (SubmitAnswer) return a new Session value, leaving the receiver intact,
// so a sequence of actions can be replayed or property-tested without any
// rendering coupling.
type Session struct {
	id       string
	engine   Conjugator
	items    []Item
	order    []string
	revealed map[string]bool
	answers  map[string]string
	correct  map[string]bool
	score    Score
}

// Start validates the generated item list and creates a session in the
// Ready state. A size below one, a slot count differing from size, a
// malformed slot, or a slot the engine cannot resolve is a fatal
// ValidationError: no session is created.
func Start(engine Conjugator, items []Item, size int) (Session, error) {
	if err := validateItems(engine, items, size); err != nil {
		return Session{}, err
	}

	copied := make([]Item, len(items))
	copy(copied, items)

	return Session{
		id:       uuid.NewString(),
		engine:   engine,
		items:    copied,
		order:    slotOrder(copied),
		revealed: map[string]bool{},
		answers:  map[string]string{},
		correct:  map[string]bool{},
	}, nil
}

// ID returns the session identifier.
func (s Session) ID() string { return s.id }

// Score returns the accumulated score.
func (s Session) Score() Score { return s.score }

// State reports where the session is in its lifecycle. The zero Session
// is Idle; a started session moves Ready → InProgress → Complete as
// blanks are revealed and never leaves Complete.
func (s Session) State() State {
	switch {
	case s.order == nil && s.revealed == nil:
		return StateIdle
	case len(s.revealed) == 0 && len(s.order) > 0:
		return StateReady
	case len(s.revealed) < len(s.order):
		return StateInProgress
	default:
		return StateComplete
	}
}

// CurrentSlot returns the earliest slot in reveal order that has not been
// revealed, or false when the session is complete. Slots after the
// current one are not yet enterable.
func (s Session) CurrentSlot() (Slot, bool) {
	for _, it := range s.items {
		if it.Slot != nil && !s.revealed[it.Slot.ID] {
			return *it.Slot, true
		}
	}
	return Slot{}, false
}

// SubmitAnswer grades text against the current slot and returns the
// advanced session. The engine supplies the reference form; comparison is
// accent-tolerant. An engine failure is propagated, never recorded as a
// wrong answer — an unresolvable slot at grading time is an upstream data
// problem, not a learner mistake.
func (s Session) SubmitAnswer(text string) (Session, error) {
	slot, ok := s.CurrentSlot()
	if !ok {
		return s, ErrSessionComplete
	}

	want, err := s.engine.Conjugate(slot.Lemma, slot.Tense, slot.Person)
	if err != nil {
		return s, fmt.Errorf("grading slot %q: %w", slot.ID, err)
	}

	matched := conjug.AnswersEqualTolerant(text, want)

	next := s
	next.revealed = cloneSet(s.revealed)
	next.answers = cloneMap(s.answers)
	next.correct = cloneSet(s.correct)

	next.revealed[slot.ID] = true
	next.answers[slot.ID] = text
	next.correct[slot.ID] = matched
	next.score.Attempted++
	if matched {
		next.score.Correct++
	}
	return next, nil
}

// ItemView is one item with its disclosure state. CorrectForm and
// grading fields are populated only once the slot is revealed — the
// reference form is never exposed beforehand.
type ItemView struct {
	Item        Item
	Visible     bool
	Revealed    bool
	Answer      string
	Correct     bool
	CorrectForm string
}

// VisibleState is the full presentation of a session at one instant.
type VisibleState struct {
	Items []ItemView
	Score Score
	State State
}

// VisibleState computes per-item visibility and reveal/grading details
// for every item. Visibility is monotone over a session's lifetime:
// advancing the reveal never hides previously visible content.
func (s Session) VisibleState() VisibleState {
	visible := computeVisibility(s.items, s.order, s.revealed)

	views := make([]ItemView, len(s.items))
	for i, it := range s.items {
		v := ItemView{Item: it, Visible: visible[i]}
		if it.Slot != nil && s.revealed[it.Slot.ID] {
			v.Revealed = true
			v.Answer = s.answers[it.Slot.ID]
			v.Correct = s.correct[it.Slot.ID]
			// Resolvability was checked at Start; the form cannot fail here.
			form, _ := s.engine.Conjugate(it.Slot.Lemma, it.Slot.Tense, it.Slot.Person)
			v.CorrectForm = form
		}
		views[i] = v
	}

	return VisibleState{Items: views, Score: s.score, State: s.State()}
}

func cloneSet(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
