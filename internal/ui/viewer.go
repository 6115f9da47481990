package ui

import "ctr/internal/domain"

// Viewer displays stored failures in an interactive TUI
type Viewer interface {
	View(report *domain.Report) error
}
