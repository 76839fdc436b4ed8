package tui

import (
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	forceQuitKey = key.NewBinding(key.WithKeys("ctrl+c"))
	aboutKey     = key.NewBinding(key.WithKeys("v"))
)

// RootModel routes the login flow between its pages. It owns the global
// quit key, the about window and NavigateTo messages; everything else goes
// to the active page. A successful LoginResult ends the program.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	buildInfo models.AppBuildInfo
	about     bool

	session    models.Session
	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, cmd := r.handleGlobalKey(msg); handled {
			return next, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, RootModel, tea.Cmd) {
	switch {
	case key.Matches(msg, forceQuitKey):
		r.quitByUser = true
		return true, r, tea.Quit
	case key.Matches(msg, aboutKey) && r.onMenu():
		r.about = !r.about
		return true, r, nil
	case key.Matches(msg, keys.esc) && r.about:
		r.about = false
		return true, r, nil
	}

	// the about window swallows every other key
	return r.about, r, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.about = false
	r.current = next

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	switch {
	case r.about:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("GO NOTE KEEPER", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
