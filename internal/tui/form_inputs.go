package tui

import "github.com/charmbracelet/bubbles/textinput"

// inputGroup is a list of text inputs with a single focused one.
type inputGroup struct {
	inputs []textinput.Model
	focus  int
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newTextInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

func newInputGroup(inputs ...textinput.Model) inputGroup {
	g := inputGroup{inputs: inputs}
	if len(g.inputs) > 0 {
		g.inputs[0].Focus()
	}
	return g
}

func (g *inputGroup) focusNext() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus + 1) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) focusPrev() {
	g.inputs[g.focus].Blur()
	g.focus = (g.focus - 1 + len(g.inputs)) % len(g.inputs)
	g.inputs[g.focus].Focus()
}

func (g *inputGroup) value(i int) string {
	return g.inputs[i].Value()
}

func (g *inputGroup) reset() {
	for i := range g.inputs {
		g.inputs[i].Reset()
		g.inputs[i].Blur()
	}
	g.focus = 0
	g.inputs[0].Focus()
}
