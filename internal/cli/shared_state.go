package cli

import "github.com/alexanderramin/ideefase/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Submission is the record under review. Views copy it before
	// evaluating so every evaluation starts from a fresh value.
	Submission domain.Submission

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines), toast (1 line) and status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
