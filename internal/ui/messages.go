package ui

import (
	"dirhop/internal/deletion"
	"dirhop/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// deleteFinishedMsg carries the deleter's outcome back to the update loop
type deleteFinishedMsg struct {
	target  deletion.Target
	outcome deletion.Outcome
}

// diskUsageMsg contains the free space summary for dir
type diskUsageMsg struct {
	dir     string
	summary string
	err     error
}

// previewMsg is sent when the pager exits
type previewMsg struct {
	path string
	err  error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
