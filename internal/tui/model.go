// Package tui renders a cloze session in the terminal. All exercise
// logic lives in internal/exercise; this package only displays visible
// state and forwards answers.
package tui

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/verbo/internal/exercise"
	"github.com/abhisek/verbo/internal/store"
)

// Options wires the practice screen.
type Options struct {
	Coordinator *exercise.Coordinator
	Request     exercise.GenerateRequest

	// Progress, when set, records a per-verb strength update for every
	// graded answer.
	Progress store.ProgressRepo
}

// Model is the Bubble Tea model for one practice run.
type Model struct {
	coord    *exercise.Coordinator
	req      exercise.GenerateRequest
	progress store.ProgressRepo

	sess    exercise.Session
	input   textinput.Model
	width   int
	height  int
	loading bool
	errMsg  string
}

// New creates the practice model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Type the verb form..."
	ti.CharLimit = 40
	ti.Focus()

	return Model{
		coord:    opts.Coordinator,
		req:      opts.Request,
		progress: opts.Progress,
		input:    ti,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.generateCmd(), m.input.Focus())
}

// generateCmd fires the generation request. The coordinator's in-flight
// guard rejects overlap, so re-entry is harmless.
func (m Model) generateCmd() tea.Cmd {
	coord, req := m.coord, m.req
	return func() tea.Msg {
		sess, err := coord.StartSession(context.Background(), req)
		return generatedMsg{Session: sess, Err: err}
	}
}

// saveProgressCmd records one graded answer against the slot's verb.
func (m Model) saveProgressCmd(lemma string, correct bool) tea.Cmd {
	repo := m.progress
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := repo.Apply(context.Background(), "verb:"+lemma, correct)
		return progressSavedMsg{Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case generatedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.sess = msg.Session
		return m, nil

	case progressSavedMsg:
		if msg.Err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to save progress:", msg.Err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	}

	if m.errMsg != "" {
		return m, tea.Quit
	}
	if m.loading {
		return m, nil
	}

	if m.sess.State() == exercise.StateComplete {
		// Any key leaves the summary.
		return m, tea.Quit
	}

	if msg.String() == "enter" {
		text := m.input.Value()
		if text == "" {
			return m, nil
		}

		slot, _ := m.sess.CurrentSlot()
		next, err := m.coord.Submit(text)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.sess = next
		m.input.SetValue("")
		return m, m.saveProgressCmd(slot.Lemma, answeredCorrectly(next, slot.ID))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// answeredCorrectly reads the grading result for a slot out of the
// session's visible state.
func answeredCorrectly(sess exercise.Session, slotID string) bool {
	for _, v := range sess.VisibleState().Items {
		if v.Item.Slot != nil && v.Item.Slot.ID == slotID {
			return v.Revealed && v.Correct
		}
	}
	return false
}

// Run starts the Bubble Tea program for one practice session.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
