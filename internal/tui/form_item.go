package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formField int

const (
	fieldTitle formField = iota
	fieldText
	fieldDeadline
)

// itemForm creates a new item or edits an existing one.
// In todo mode only the text and the deadline are editable.
type itemForm struct {
	original *models.Item
	todo     bool

	title    textinput.Model
	text     textarea.Model
	deadline textinput.Model
	color    string

	fields []formField
	focus  int
}

func newItemForm(original *models.Item, todo bool) itemForm {
	f := itemForm{
		original: original,
		todo:     todo,
		title:    newTextInput("Title", 200),
		deadline: newTextInput("YYYY-MM-DD", len(models.DeadlineLayout)),
		color:    view.DefaultColor,
	}

	f.text = textarea.New()
	f.text.Placeholder = "Take a note..."
	f.text.CharLimit = 10000
	f.text.ShowLineNumbers = false
	f.text.SetWidth(48)
	f.text.SetHeight(5)

	if todo {
		f.fields = []formField{fieldText, fieldDeadline}
		f.text.SetHeight(2)
	} else {
		f.fields = []formField{fieldTitle, fieldText, fieldDeadline}
	}

	if original != nil {
		f.title.SetValue(original.Title)
		f.text.SetValue(original.Text)
		f.deadline.SetValue(original.Deadline)
		if view.IsPaletteColor(original.Color) {
			f.color = original.Color
		}
	}

	f.focusCurrent()
	return f
}

func (f *itemForm) editing() bool {
	return f.original != nil
}

func (f *itemForm) current() formField {
	return f.fields[f.focus]
}

func (f *itemForm) focusCurrent() {
	f.title.Blur()
	f.text.Blur()
	f.deadline.Blur()

	switch f.current() {
	case fieldTitle:
		f.title.Focus()
	case fieldText:
		f.text.Focus()
	case fieldDeadline:
		f.deadline.Focus()
	}
}

func (f *itemForm) focusNext() {
	f.focus = (f.focus + 1) % len(f.fields)
	f.focusCurrent()
}

func (f *itemForm) focusPrev() {
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.focusCurrent()
}

func (f *itemForm) nextColor() {
	f.color = view.NextColor(f.color)
}

// update passes msg to the focused field.
func (f *itemForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.current() {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldText:
		f.text, cmd = f.text.Update(msg)
	case fieldDeadline:
		f.deadline, cmd = f.deadline.Update(msg)
	}
	return cmd
}

func (f *itemForm) values() (title, text, deadline string) {
	title = strings.TrimSpace(f.title.Value())
	if f.todo && f.original == nil {
		title = ""
	}
	text = strings.TrimSpace(f.text.Value())
	deadline = strings.TrimSpace(f.deadline.Value())
	return title, text, deadline
}

// check runs the checks the server would run, so obvious mistakes are
// reported without a round-trip.
func (f *itemForm) check() error {
	title, text, deadline := f.values()
	if title == "" && text == "" {
		return validators.ErrEmptyItem
	}
	if deadline != "" {
		if _, err := time.Parse(models.DeadlineLayout, deadline); err != nil {
			return validators.ErrInvalidDeadline
		}
	}
	return nil
}

// newItem returns the item to create.
func (f *itemForm) newItem() (models.NewItem, error) {
	if err := f.check(); err != nil {
		return models.NewItem{}, err
	}

	title, text, deadline := f.values()
	item := models.NewItem{
		Title:    title,
		Text:     text,
		Deadline: deadline,
	}
	if !f.todo {
		item.Color = f.color
	}
	return item, nil
}

// diff returns the fields changed against the edited item.
// An empty update means there is nothing to send.
func (f *itemForm) diff() (models.ItemUpdate, error) {
	if err := f.check(); err != nil {
		return models.ItemUpdate{}, err
	}

	title, text, deadline := f.values()
	orig := f.original

	var u models.ItemUpdate
	if !f.todo && title != orig.Title {
		u.Title = models.Ptr(title)
	}
	if text != orig.Text {
		u.Text = models.Ptr(text)
	}
	if deadline != orig.Deadline {
		u.Deadline = models.Ptr(deadline)
	}
	if !f.todo && f.color != orig.Color {
		u.Color = models.Ptr(f.color)
	}
	return u, nil
}

func (f *itemForm) view(errMsg string) string {
	var b strings.Builder

	if !f.todo {
		b.WriteString("Title\n")
		b.WriteString(f.title.View())
		b.WriteString("\n\n")
	}

	b.WriteString("Text\n")
	b.WriteString(f.text.View())
	b.WriteString("\n\nDeadline\n")
	b.WriteString(f.deadline.View())

	if !f.todo {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(f.color)).Render("    ")
		b.WriteString("\n\nColor  ")
		b.WriteString(swatch)
		b.WriteString(" ")
		b.WriteString(f.color)
	}

	if errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(errMsg))
	}

	title := "NEW ITEM"
	if f.editing() {
		title = "EDIT ITEM"
	}

	hotKeys := []string{"tab: next field", "ctrl+s: save", "esc: cancel"}
	if !f.todo {
		hotKeys = append(hotKeys, "ctrl+o: color")
	}
	return renderPage(title, b.String(), joinHelp(hotKeys...))
}
