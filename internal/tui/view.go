package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/verbo/internal/exercise"
)

// Color palette — warm, readable on dark terminals
var (
	colPrimary = lipgloss.Color("#F59E0B") // Amber
	colSuccess = lipgloss.Color("#22C55E") // Green
	colError   = lipgloss.Color("#F43F5E") // Rose
	colText    = lipgloss.Color("#F8FAFC") // White
	colTextDim = lipgloss.Color("#94A3B8") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleSpeaker = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleBody = lipgloss.NewStyle().
			Foreground(colText)

	styleDim = lipgloss.NewStyle().
			Foreground(colTextDim)

	styleBlank = lipgloss.NewStyle().
			Foreground(colPrimary).
			Underline(true)

	styleRight = lipgloss.NewStyle().
			Foreground(colSuccess).
			Bold(true)

	styleWrong = lipgloss.NewStyle().
			Foreground(colError).
			Bold(true)

	styleErrBox = lipgloss.NewStyle().
			Foreground(colError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colError).
			Padding(0, 1)
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	switch {
	case m.errMsg != "":
		v.SetContent(m.viewError())
	case m.loading:
		v.SetContent(m.viewLoading())
	case m.sess.State() == exercise.StateComplete:
		v.SetContent(m.viewSummary())
	default:
		v.SetContent(m.viewExercise())
	}
	return v
}

func (m Model) viewLoading() string {
	msg := styleDim.Render("Generating your exercise...")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}

func (m Model) viewError() string {
	box := styleErrBox.Render(m.errMsg) + "\n\n" +
		styleDim.Render("Press any key to exit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewExercise() string {
	vs := m.sess.VisibleState()

	var b strings.Builder
	b.WriteString(styleTitle.Render("Fill in the blanks"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render(strings.Repeat("─", min(m.width-4, 60))))
	b.WriteString("\n\n")

	for _, iv := range vs.Items {
		if !iv.Visible {
			continue
		}
		b.WriteString(renderItem(iv))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("Score: %d/%d", vs.Score.Correct, vs.Score.Attempted)))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Enter to answer · Esc to quit"))

	return lipgloss.NewStyle().Padding(1, 2).MaxWidth(m.width).Render(b.String())
}

// renderItem draws one exercise line. A blank is shown as underscores
// until revealed; a revealed blank shows the learner's answer with the
// grading mark and the reference form when they missed it.
func renderItem(iv exercise.ItemView) string {
	it := iv.Item

	var gap string
	switch {
	case it.Slot == nil:
		gap = ""
	case !iv.Revealed:
		gap = styleBlank.Render("______")
	case iv.Correct:
		gap = styleRight.Render(iv.Answer + " ✓")
	default:
		gap = styleWrong.Render(iv.Answer+" ✗") +
			styleDim.Render(" ("+iv.CorrectForm+")")
	}

	line := styleBody.Render(it.Pre) + gap + styleBody.Render(it.Post)
	if it.Speaker != "" {
		line = styleSpeaker.Render(it.Speaker+": ") + line
	}
	return line
}

func (m Model) viewSummary() string {
	score := m.sess.Score()

	var b strings.Builder
	b.WriteString(styleTitle.Render("Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(styleBody.Render(fmt.Sprintf("Answered: %d    Correct: %d", score.Attempted, score.Correct)))
	b.WriteString("\n")
	if score.Attempted > 0 {
		pct := float64(score.Correct) / float64(score.Attempted) * 100
		b.WriteString(styleBody.Render(fmt.Sprintf("Accuracy: %.0f%%", pct)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render("Press any key to exit"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colBorder).
		Padding(1, 3).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
