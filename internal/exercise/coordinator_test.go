package exercise

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/verbo/internal/conjug"
)

// stubGenerator returns canned items, optionally blocking until released.
type stubGenerator struct {
	items   []Item
	err     error
	entered chan struct{}
	release chan struct{}
}

func (g *stubGenerator) Generate(ctx context.Context, req GenerateRequest) ([]Item, error) {
	if g.entered != nil {
		g.entered <- struct{}{}
	}
	if g.release != nil {
		<-g.release
	}
	return g.items, g.err
}

func testRequest() GenerateRequest {
	return GenerateRequest{
		Lemmas: []string{"hablar", "comer"},
		Tense:  conjug.TensePreterite,
		Size:   2,
	}
}

func TestCoordinator_StartSession(t *testing.T) {
	gen := &stubGenerator{items: []Item{
		slotItem("a", "hablar", conjug.PersonYo),
		slotItem("b", "comer", conjug.PersonTu),
	}}
	coord := NewCoordinator(testEngine(), gen)

	sess, err := coord.StartSession(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if sess.State() != StateReady {
		t.Errorf("State() = %q, want %q", sess.State(), StateReady)
	}

	cur, ok := coord.Current()
	if !ok || cur.ID() != sess.ID() {
		t.Error("Current() does not return the started session")
	}
}

func TestCoordinator_GenerationFailureKeepsPreviousState(t *testing.T) {
	genErr := errors.New("provider down")
	coord := NewCoordinator(testEngine(), &stubGenerator{err: genErr})

	_, err := coord.StartSession(context.Background(), testRequest())
	if !errors.Is(err, genErr) {
		t.Fatalf("err = %v, want %v", err, genErr)
	}
	if _, ok := coord.Current(); ok {
		t.Error("failed generation must not install a session")
	}
}

func TestCoordinator_ValidationFailureKeepsPreviousState(t *testing.T) {
	// One item short of the requested size.
	coord := NewCoordinator(testEngine(), &stubGenerator{items: []Item{
		slotItem("a", "hablar", conjug.PersonYo),
	}})

	_, err := coord.StartSession(context.Background(), testRequest())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if _, ok := coord.Current(); ok {
		t.Error("invalid payload must not install a session")
	}
}

func TestCoordinator_RejectsOverlappingGeneration(t *testing.T) {
	gen := &stubGenerator{
		items: []Item{
			slotItem("a", "hablar", conjug.PersonYo),
			slotItem("b", "comer", conjug.PersonTu),
		},
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	coord := NewCoordinator(testEngine(), gen)

	done := make(chan error, 1)
	go func() {
		_, err := coord.StartSession(context.Background(), testRequest())
		done <- err
	}()

	// Wait until the first request is inside the generator.
	select {
	case <-gen.entered:
	case <-time.After(time.Second):
		t.Fatal("first generation never started")
	}

	if _, err := coord.StartSession(context.Background(), testRequest()); !errors.Is(err, ErrGenerationInFlight) {
		t.Errorf("overlapping StartSession err = %v, want ErrGenerationInFlight", err)
	}

	close(gen.release)
	if err := <-done; err != nil {
		t.Fatalf("first StartSession: %v", err)
	}
}

func TestCoordinator_Submit(t *testing.T) {
	gen := &stubGenerator{items: []Item{
		slotItem("a", "hablar", conjug.PersonYo),
		slotItem("b", "comer", conjug.PersonTu),
	}}
	coord := NewCoordinator(testEngine(), gen)

	if _, err := coord.Submit("hablé"); err == nil {
		t.Error("Submit before StartSession should fail")
	}

	if _, err := coord.StartSession(context.Background(), testRequest()); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	sess, err := coord.Submit("hablé")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sess.Score().Correct != 1 {
		t.Errorf("Correct = %d, want 1", sess.Score().Correct)
	}

	cur, _ := coord.Current()
	if cur.Score().Attempted != 1 {
		t.Error("Submit did not store the advanced session")
	}
}
