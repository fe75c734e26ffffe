package exercise

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/verbo/internal/conjug"
)

// GenerateRequest is what the caller selects before generation: which
// lemmas to drill, the single tense of the exercise, and how many blanks.
type GenerateRequest struct {
	Lemmas []string
	Tense  conjug.Tense
	Size   int

	// Vocab lists non-verb vocabulary the generator should weave into
	// the surrounding text.
	Vocab []string
}

// Generator is the remote item source. Implementations produce an item
// list with exactly req.Size slot-bearing items and no solutions.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Item, error)
}

// ErrGenerationInFlight rejects a second generation request while one is
// outstanding. The guard lives here rather than in any UI control.
var ErrGenerationInFlight = errors.New("a generation request is already in flight")

// Coordinator owns the single live session and the generation boundary.
// It replaces the session only when a generation request resolves and
// validates; a failed or rejected request leaves the previous state
// untouched (Idle if there was none).
type Coordinator struct {
	engine *conjug.Engine
	gen    Generator

	mu       sync.Mutex
	inFlight bool
	session  Session
	started  bool
}

// NewCoordinator creates a Coordinator over the given engine and
// generator.
func NewCoordinator(engine *conjug.Engine, gen Generator) *Coordinator {
	return &Coordinator{engine: engine, gen: gen}
}

// StartSession requests a fresh exercise and, on success, replaces any
// previous session with a new Ready one. Overlapping calls fail fast with
// ErrGenerationInFlight; generation or validation failure leaves the
// coordinator exactly as it was.
func (c *Coordinator) StartSession(ctx context.Context, req GenerateRequest) (Session, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Session{}, ErrGenerationInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	items, err := c.gen.Generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		return Session{}, err
	}

	sess, err := Start(c.engine, items, req.Size)
	if err != nil {
		return Session{}, err
	}

	c.session = sess
	c.started = true
	return sess, nil
}

// Submit grades an answer against the current session and stores the
// advanced session.
func (c *Coordinator) Submit(text string) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return Session{}, errors.New("no active session")
	}

	next, err := c.session.SubmitAnswer(text)
	if err != nil {
		return c.session, err
	}
	c.session = next
	return next, nil
}

// Current returns the live session, if any.
func (c *Coordinator) Current() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, c.started
}
