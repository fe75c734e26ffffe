package tui

import "github.com/abhisek/verbo/internal/exercise"

// generatedMsg is sent when the exercise generation request resolves.
type generatedMsg struct {
	Session exercise.Session
	Err     error
}

// progressSavedMsg is sent when recording per-verb progress completes.
type progressSavedMsg struct {
	Err error
}
