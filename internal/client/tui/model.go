// Package tui is the full-screen terminal front-end of the client. Screens
// follow the navigator's current path; all session work goes through the
// auth facade.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/gophauth/internal/client/loading"
	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/navigation"
	"github.com/dmitrijs2005/gophauth/internal/client/notify"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

const toastTick = 100 * time.Millisecond

// Deps are the shared collaborators. Status, when set, reports the
// connectivity mode shown in the footer.
type Deps struct {
	Auth     services.AuthService
	Nav      *navigation.Navigator
	Notifier *notify.Center
	Loading  *loading.Signal
	Status   func() string
}

type resultMsg struct {
	op  string
	err error
}

type tickMsg time.Time

type Model struct {
	ctx  context.Context
	deps Deps

	login    form
	register form
	spinner  spinner.Model

	width, height int
	quitting      bool
}

func New(ctx context.Context, d Deps) Model {
	m := Model{
		ctx:  ctx,
		deps: d,
		login: newForm(
			field{label: "e-mail"},
			field{label: "password", secret: passwordField},
		),
		register: newForm(
			field{label: "e-mail"},
			field{label: "name"},
			field{label: "surname"},
			field{label: "password", secret: passwordField},
			field{label: "repeat password", secret: confirmField},
		),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if d.Auth.CurrentUser() != nil && d.Nav.Current() == navigation.PathLogin {
		d.Nav.Replace(navigation.PathHome)
	}
	m.guard()
	m.syncEcho()
	return m
}

// Run blocks until the user quits or ctx is done.
func Run(ctx context.Context, d Deps) error {
	p := tea.NewProgram(New(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func tick() tea.Cmd {
	return tea.Tick(toastTick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tickMsg:
		cmd = tick()

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case resultMsg:
		if msg.err == nil {
			switch msg.op {
			case "login":
				m.login.reset()
			case "register":
				m.register.reset()
			}
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.guard()
	m.syncEcho()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "ctrl+t":
		m.deps.Auth.TogglePasswordVisibility()
		return nil
	case "ctrl+y":
		m.deps.Auth.ToggleConfirmPasswordVisibility()
		return nil
	case "ctrl+x":
		m.deps.Notifier.DismissNewest()
		return nil
	}

	switch m.deps.Nav.Current() {
	case navigation.PathRegister:
		return m.registerKey(msg)
	case navigation.PathHome:
		return m.homeKey(msg)
	default:
		return m.loginKey(msg)
	}
}

func (m *Model) loginKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+r":
		m.deps.Nav.Push(navigation.PathRegister)
		return nil
	case "tab", "down":
		m.login.move(1)
		return nil
	case "shift+tab", "up":
		m.login.move(-1)
		return nil
	case "enter":
		if !m.login.last() {
			m.login.move(1)
			return nil
		}
		creds := models.Credentials{Email: m.login.value(0), Password: m.login.value(1)}
		return m.submit("login", func(ctx context.Context) error { return m.deps.Auth.Login(ctx, creds) })
	}
	return m.login.update(msg)
}

func (m *Model) registerKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if !m.deps.Nav.Back() {
			m.deps.Nav.Replace(navigation.PathLogin)
		}
		return nil
	case "tab", "down":
		m.register.move(1)
		return nil
	case "shift+tab", "up":
		m.register.move(-1)
		return nil
	case "enter":
		if !m.register.last() {
			m.register.move(1)
			return nil
		}
		reg := models.Registration{
			Email:           m.register.value(0),
			Name:            m.register.value(1),
			Surname:         m.register.value(2),
			Password:        m.register.value(3),
			ConfirmPassword: m.register.value(4),
		}
		return m.submit("register", func(ctx context.Context) error { return m.deps.Auth.Register(ctx, reg) })
	}
	return m.register.update(msg)
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "l":
		ctx := m.ctx
		auth, nav := m.deps.Auth, m.deps.Nav
		return func() tea.Msg {
			err := auth.Logout(ctx)
			nav.Replace(navigation.PathLogin)
			return resultMsg{op: "logout", err: err}
		}
	case "q":
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// submit runs op off the update loop; the facade drives loading, toasts and
// navigation.
func (m *Model) submit(name string, op func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return resultMsg{op: name, err: op(ctx)}
	}
}

// guard keeps logged-out users off protected screens.
func (m *Model) guard() {
	cur := m.deps.Nav.Current()
	if cur == navigation.PathHome && m.deps.Auth.CurrentUser() == nil {
		m.deps.Nav.RedirectToLogin(cur)
	}
}

func (m *Model) syncEcho() {
	pw := m.deps.Auth.PasswordVisibility()
	confirm := m.deps.Auth.ConfirmPasswordVisibility()
	m.login.syncEcho(pw, confirm)
	m.register.syncEcho(pw, confirm)
}
