package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/gophauth/internal/client/services"
)

type secret int

const (
	plain secret = iota
	passwordField
	confirmField
)

type field struct {
	label  string
	secret secret
}

// form is a column of text inputs with one focused at a time.
type form struct {
	fields []field
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields, inputs: make([]textinput.Model, len(fields))}
	for i, fl := range fields {
		in := textinput.New()
		in.Placeholder = fl.label
		in.CharLimit = 128
		in.Prompt = ""
		f.inputs[i] = in
	}
	f.inputs[0].Focus()
	return f
}

func (f *form) value(i int) string { return f.inputs[i].Value() }

func (f *form) last() bool { return f.focus == len(f.inputs)-1 }

func (f *form) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// syncEcho masks secret inputs according to the facade's visibility flags.
func (f *form) syncEcho(pw, confirm services.Visibility) {
	for i, fl := range f.fields {
		var v services.Visibility
		switch fl.secret {
		case passwordField:
			v = pw
		case confirmField:
			v = confirm
		default:
			continue
		}
		if v.Masked() {
			f.inputs[i].EchoMode = textinput.EchoPassword
			f.inputs[i].EchoCharacter = '•'
		} else {
			f.inputs[i].EchoMode = textinput.EchoNormal
		}
	}
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
