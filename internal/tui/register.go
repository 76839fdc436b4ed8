package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerLogin = iota
	registerName
	registerPassword
	registerRepeat
)

// RegisterModel creates an account and logs the new user in.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputGroup
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newInputGroup(
			newTextInput("you@example.com", 254),
			newTextInput("display name (optional)", 100),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.form.reset()
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.form.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			user, errMsg := m.user()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(user)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// user checks the form locally. The server validates again.
func (m *RegisterModel) user() (models.User, string) {
	login := strings.TrimSpace(m.form.value(registerLogin))
	pass := m.form.value(registerPassword)

	switch {
	case login == "" || pass == "":
		return models.User{}, "E-mail and password are required"
	case pass != m.form.value(registerRepeat):
		return models.User{}, "Passwords do not match"
	}

	return models.User{
		Login:       login,
		DisplayName: strings.TrimSpace(m.form.value(registerName)),
		Password:    pass,
	}, ""
}

func (m *RegisterModel) View() string {
	labels := []string{"E-mail   ", "Name     ", "Password ", "Repeat   "}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(" [")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, user)
		return LoginResult{Session: session, Err: err}
	}
}
