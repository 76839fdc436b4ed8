package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the RootModel to switch the active page.
// Payload, when set, is delivered to the new page instead of its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the login or register flow.
type LoginResult struct {
	Session models.Session
	Err     error
}

type snapshotMsg struct {
	snapshot models.Snapshot
}

type feedErrMsg struct {
	err error
}

type feedClosedMsg struct{}

type mutationDoneMsg struct {
	status string
	err    error
}

type profileUpdatedMsg struct {
	session models.Session
	err     error
}

// clearStatusMsg clears the status line unless a newer status replaced it.
type clearStatusMsg struct {
	seq int
}

type reportCopiedMsg struct {
	count int
	err   error
}
