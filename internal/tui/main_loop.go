// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

type stage int

const (
	stageBrowse stage = iota
	stageSearch
	stageForm
	stageConfirmDelete
	stageSettings
)

// mainLoopModel renders the live collection and turns key presses into
// view changes or mutation intents. Mutations are never applied locally:
// the result arrives with the next snapshot.
type mainLoopModel struct {
	ctx     context.Context
	gateway service.MutationGateway
	auth    service.ClientAuthService
	sub     *service.Subscription
	logger  *logger.Logger

	session models.Session
	todo    bool

	snapshot models.Snapshot
	loaded   bool
	viewCfg  models.ViewConfig
	visible  []models.Item
	idx      int

	stage         stage
	form          itemForm
	search        textinput.Model
	settings      textinput.Model
	pendingDelete models.Item

	status    string
	statusSeq int
	errMsg    string
	width     int

	today          func() time.Time
	writeClipboard func(string) error

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.Session, sub *service.Subscription, mode string, log *logger.Logger) *mainLoopModel {
	search := newTextInput("search title or text", 100)
	settings := newTextInput("display name", 100)

	return &mainLoopModel{
		ctx:            ctx,
		gateway:        services.Gateway,
		auth:           services.AuthService,
		sub:            sub,
		logger:         log,
		session:        session,
		todo:           mode == config.ModeTodo,
		viewCfg:        models.DefaultViewConfig(),
		search:         search,
		settings:       settings,
		today:          time.Now,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return tea.Batch(waitForSnapshot(m.sub), waitForFeedError(m.sub))
}

func waitForSnapshot(sub *service.Subscription) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-sub.Updates()
		if !ok {
			return feedClosedMsg{}
		}
		return snapshotMsg{snapshot: snap}
	}
}

func waitForFeedError(sub *service.Subscription) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-sub.Errors()
		if !ok {
			return nil
		}
		return feedErrMsg{err: err}
	}
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		m.applySnapshot(msg.snapshot)
		if m.sub == nil {
			return m, nil
		}
		return m, waitForSnapshot(m.sub)

	case feedErrMsg:
		if m.expired(msg.err) {
			return m, tea.Quit
		}
		m.errMsg = humanizeError(msg.err)
		if m.sub == nil {
			return m, nil
		}
		return m, waitForFeedError(m.sub)

	case feedClosedMsg:
		m.errMsg = "Live updates stopped"
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			if m.expired(msg.err) {
				return m, tea.Quit
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, m.setStatus(msg.status)

	case reportCopiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy the report: " + msg.err.Error()
			return m, nil
		}
		return m, m.setStatus(fmt.Sprintf("Report copied (%d items)", msg.count))

	case profileUpdatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.session = msg.session
		m.stage = stageBrowse
		return m, m.setStatus("Display name updated")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.stage {
		case stageSearch:
			return m.updateSearch(msg)
		case stageForm:
			return m.updateForm(msg)
		case stageConfirmDelete:
			return m.updateConfirmDelete(msg)
		case stageSettings:
			return m.updateSettings(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	return m, nil
}

// expired reports whether err means the session is no longer valid. The
// model then quits as if the user had logged out.
func (m *mainLoopModel) expired(err error) bool {
	if errors.Is(err, service.ErrTokenIsExpiredOrInvalid) || errors.Is(err, service.ErrNotAuthenticated) {
		m.logger.Warn().Err(err).Msg("session expired")
		m.logout = true
		return true
	}
	return false
}

func (m *mainLoopModel) applySnapshot(snap models.Snapshot) {
	m.snapshot = snap
	m.loaded = true
	if !snap.FromCache && m.errMsg != "" {
		m.errMsg = ""
	}
	m.derive()

	if m.stage == stageConfirmDelete && !containsItem(snap.Items, m.pendingDelete.ID) {
		m.stage = stageBrowse
		m.pendingDelete = models.Item{}
	}
}

func containsItem(items []models.Item, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// derive recomputes the visible items and keeps the cursor on the same item
// when it is still visible.
func (m *mainLoopModel) derive() {
	var selectedID string
	if item, ok := m.selected(); ok {
		selectedID = item.ID
	}

	m.visible = view.Apply(m.snapshot.Items, m.viewCfg)

	m.idx = 0
	for i, item := range m.visible {
		if item.ID == selectedID {
			m.idx = i
			break
		}
	}
}

func (m *mainLoopModel) selected() (models.Item, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.Item{}, false
	}
	return m.visible[m.idx], true
}

func (m *mainLoopModel) setStatus(status string) tea.Cmd {
	m.errMsg = ""
	m.status = status
	m.statusSeq++

	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *mainLoopModel) move(step int) {
	if len(m.visible) == 0 {
		return
	}
	m.idx = max(0, min(m.idx+step, len(m.visible)-1))
}

// rowStep is the cursor step of up and down: a whole row in the grid.
func (m *mainLoopModel) rowStep() int {
	if m.todo || m.viewCfg.DisplayMode == models.DisplayList {
		return 1
	}
	return gridColumns(m.width)
}

func (m *mainLoopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		m.move(-m.rowStep())
	case key.Matches(msg, keys.down):
		m.move(m.rowStep())
	case msg.String() == "left" || msg.String() == "h":
		m.move(-1)
	case msg.String() == "right" || msg.String() == "l":
		m.move(1)

	case key.Matches(msg, keys.filter):
		m.viewCfg.FilterMode = models.NextFilterMode(m.viewCfg.FilterMode)
		m.derive()
	case key.Matches(msg, keys.sort):
		m.viewCfg.SortOrder = m.viewCfg.SortOrder.Toggle()
		m.derive()
	case key.Matches(msg, keys.display):
		if !m.todo {
			m.viewCfg.DisplayMode = m.viewCfg.DisplayMode.Toggle()
		}
	case key.Matches(msg, keys.search):
		m.stage = stageSearch
		m.search.SetValue(m.viewCfg.SearchQuery)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, keys.newItem):
		m.errMsg = ""
		m.form = newItemForm(nil, m.todo)
		m.stage = stageForm
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.errMsg = ""
		m.form = newItemForm(&item, m.todo)
		m.stage = stageForm
		return m, textinput.Blink
	case key.Matches(msg, keys.toggle):
		if item, ok := m.selected(); ok {
			return m, m.cmdToggle(item)
		}
	case key.Matches(msg, keys.pin):
		if item, ok := m.selected(); ok {
			return m, m.cmdPin(item)
		}
	case key.Matches(msg, keys.delete):
		if item, ok := m.selected(); ok {
			m.pendingDelete = item
			m.stage = stageConfirmDelete
		}

	case key.Matches(msg, keys.report):
		return m, m.cmdCopyReport()
	case key.Matches(msg, keys.refresh):
		if m.sub != nil {
			m.sub.Refresh()
		}
		return m, m.setStatus("Refreshing...")
	case key.Matches(msg, keys.settings):
		m.errMsg = ""
		m.stage = stageSettings
		m.settings.SetValue(m.session.DisplayName)
		m.settings.CursorEnd()
		return m, m.settings.Focus()
	}

	return m, nil
}

// updateSearch filters as the user types. Enter keeps the query, esc
// clears it.
func (m *mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.stage = stageBrowse
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.Reset()
		m.viewCfg.SearchQuery = ""
		m.derive()
		m.stage = stageBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.viewCfg.SearchQuery = m.search.Value()
	m.derive()
	return m, cmd
}

func (m *mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.stage = stageBrowse
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.nextColor):
		if !m.todo {
			m.form.nextColor()
		}
		return m, nil
	case key.Matches(msg, keys.save):
		return m.submitForm()
	}

	return m, m.form.update(msg)
}

func (m *mainLoopModel) submitForm() (tea.Model, tea.Cmd) {
	if !m.form.editing() {
		item, err := m.form.newItem()
		if err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.stage = stageBrowse
		return m, m.cmdCreate(item)
	}

	update, err := m.form.diff()
	if err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}

	m.stage = stageBrowse
	if update.IsEmpty() {
		return m, m.setStatus("No changes")
	}
	return m, m.cmdUpdate(m.form.original.ID, update)
}

// updateConfirmDelete answers the prompt for the item chosen when d was
// pressed, wherever the cursor is now.
func (m *mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		item := m.pendingDelete
		m.stage = stageBrowse
		m.pendingDelete = models.Item{}
		return m, m.cmdDelete(item)
	case key.Matches(msg, keys.no):
		m.stage = stageBrowse
		m.pendingDelete = models.Item{}
	}
	return m, nil
}

func (m *mainLoopModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.settings.Blur()
		m.errMsg = ""
		m.stage = stageBrowse
		return m, nil
	case "enter":
		return m, m.cmdUpdateDisplayName(strings.TrimSpace(m.settings.Value()))
	}

	var cmd tea.Cmd
	m.settings, cmd = m.settings.Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m *mainLoopModel) mutation(status string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return mutationDoneMsg{status: status, err: fn(ctx)}
	}
}

func (m *mainLoopModel) cmdCreate(item models.NewItem) tea.Cmd {
	return m.mutation("Item created", func(ctx context.Context) error {
		_, err := m.gateway.Create(ctx, item)
		return err
	})
}

func (m *mainLoopModel) cmdUpdate(id string, update models.ItemUpdate) tea.Cmd {
	return m.mutation("Item saved", func(ctx context.Context) error {
		return m.gateway.Update(ctx, id, update)
	})
}

func (m *mainLoopModel) cmdDelete(item models.Item) tea.Cmd {
	return m.mutation("Item deleted", func(ctx context.Context) error {
		return m.gateway.Delete(ctx, item.ID)
	})
}

func (m *mainLoopModel) cmdToggle(item models.Item) tea.Cmd {
	status := "Marked as done"
	if item.Completed {
		status = "Marked as not done"
	}
	return m.mutation(status, func(ctx context.Context) error {
		return m.gateway.Toggle(ctx, item)
	})
}

func (m *mainLoopModel) cmdPin(item models.Item) tea.Cmd {
	status := "Pinned"
	if item.IsPinned {
		status = "Unpinned"
	}
	return m.mutation(status, func(ctx context.Context) error {
		return m.gateway.Pin(ctx, item)
	})
}

// cmdCopyReport copies the report of the items currently on screen.
func (m *mainLoopModel) cmdCopyReport() tea.Cmd {
	report := view.Report(m.visible)
	count := len(m.visible)
	writeClipboard := m.writeClipboard

	return func() tea.Msg {
		return reportCopiedMsg{count: count, err: writeClipboard(report)}
	}
}

func (m *mainLoopModel) cmdUpdateDisplayName(name string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	auth := m.auth

	return func() tea.Msg {
		updated, err := auth.UpdateDisplayName(ctx, session, name)
		return profileUpdatedMsg{session: updated, err: err}
	}
}

// ── View ─────────────────────────────────────────────────────────────────────

func (m *mainLoopModel) View() string {
	switch m.stage {
	case stageForm:
		return m.form.view(m.errMsg)
	case stageSettings:
		return m.viewSettings()
	}

	user := m.session.User()
	title := fmt.Sprintf("GO NOTE KEEPER · %s %s", view.AvatarChar(user), view.DisplayName(user))
	if m.snapshot.FromCache {
		title += " · offline"
	}

	var b strings.Builder
	b.WriteString(renderToolbar(m.viewCfg, m.snapshot.Items, m.todo))
	b.WriteString("\n\n")
	b.WriteString(m.viewItems())

	switch m.stage {
	case stageSearch:
		b.WriteString("\n\nSearch: ")
		b.WriteString(m.search.View())
	case stageConfirmDelete:
		b.WriteString("\n\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny: yes │ n: no", fitText(itemLabel(m.pendingDelete), 40))))
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(title, b.String(), m.hotKeys())
}

func (m *mainLoopModel) viewItems() string {
	if !m.loaded {
		return "Loading..."
	}
	if len(m.visible) == 0 {
		if len(m.snapshot.Items) == 0 {
			return "Nothing here yet. Press n to add an item."
		}
		return "No items match the current filter or search."
	}

	today := m.today()
	switch {
	case m.todo:
		return renderTodoList(m.visible, today, m.idx)
	case m.viewCfg.DisplayMode == models.DisplayList:
		return renderCardList(m.visible, today, m.idx)
	default:
		return renderGrid(m.visible, today, m.idx, gridColumns(m.width))
	}
}

func (m *mainLoopModel) viewSettings() string {
	var b strings.Builder
	b.WriteString("E-mail        ")
	b.WriteString(m.session.Login)
	b.WriteString("\nDisplay name  [")
	b.WriteString(m.settings.View())
	b.WriteString("]")

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return renderPage("SETTINGS", b.String(), "enter: save │ esc: back")
}

func (m *mainLoopModel) hotKeys() string {
	switch m.stage {
	case stageSearch:
		return "enter: keep │ esc: clear"
	case stageConfirmDelete:
		return "y: delete │ n: cancel"
	}

	bindings := []key.Binding{
		keys.newItem, keys.edit, keys.toggle, keys.pin, keys.delete,
		keys.filter, keys.sort,
	}
	if !m.todo {
		bindings = append(bindings, keys.display)
	}
	bindings = append(bindings, keys.search, keys.report, keys.refresh, keys.settings, keys.logout, keys.quit)
	return helpLine(bindings...)
}

// itemLabel names an item in prompts: its title, else its text.
func itemLabel(item models.Item) string {
	if title := strings.TrimSpace(item.Title); title != "" {
		return title
	}
	return strings.TrimSpace(firstLine(item.Text))
}
