package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/gophauth/internal/client/navigation"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"}).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Width(18).Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#D1D5DB"})
	focusStyle = labelStyle.Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#93C5FD"})
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}).MarginTop(1)
	panelStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.deps.Nav.Current() {
	case navigation.PathRegister:
		body = m.viewRegister()
	case navigation.PathHome:
		body = m.viewHome()
	default:
		body = m.viewLogin()
	}

	if m.deps.Loading.Active() {
		body += "\n\n" + m.spinner.View() + " working..."
	}
	body += m.footer()

	main := panelStyle.Render(body)
	toasts := notify.Render(m.deps.Notifier.Active(), m.toastWidth())
	if toasts == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, toasts)
}

func (m Model) toastWidth() int {
	if m.width <= 0 {
		return 48
	}
	return m.width / 3
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in"))
	b.WriteString("\n")
	renderForm(&b, &m.login)
	b.WriteString(hintStyle.Render("enter submit • tab next • ctrl+r create account • ctrl+t show password • ctrl+c quit"))
	return b.String()
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create account"))
	b.WriteString("\n")
	renderForm(&b, &m.register)
	b.WriteString(hintStyle.Render("enter submit • tab next • esc back • ctrl+t / ctrl+y show passwords • ctrl+c quit"))
	return b.String()
}

func (m Model) viewHome() string {
	u := m.deps.Auth.CurrentUser()
	if u == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome, " + u.DisplayName()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s\n", labelStyle.Render("e-mail"), u.Email)
	fmt.Fprintf(&b, "%s%d\n", labelStyle.Render("id"), u.ID)
	b.WriteString(hintStyle.Render("l log out • q quit"))
	return b.String()
}

func renderForm(b *strings.Builder, f *form) {
	for i, fl := range f.fields {
		label := labelStyle
		if i == f.focus {
			label = focusStyle
		}
		b.WriteString(label.Render(fl.label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
}

func (m Model) footer() string {
	if m.deps.Status == nil {
		return ""
	}
	s := m.deps.Status()
	if s == "" {
		return ""
	}
	return "\n" + hintStyle.Render("server: "+s)
}
