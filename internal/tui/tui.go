// Package tui hosts the name form in a Bubble Tea program.
//
// Focus moves first input -> last input -> submit button. Leaving an input is
// a blur of that field, every edit is a change, and enter submits from
// anywhere. Submitting never ends the program; esc does.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/nameform/internal/form"
	"github.com/idilsaglam/nameform/internal/model"
	"github.com/idilsaglam/nameform/internal/ui"
)

type focus int

const (
	focusFirst focus = iota
	focusLast
	focusSubmit
	focusCount
)

func (f focus) field() (model.Field, bool) {
	switch f {
	case focusFirst:
		return model.First, true
	case focusLast:
		return model.Last, true
	}
	return 0, false
}

// Options tune the terminal form.
type Options struct {
	CharLimit int
	Logger    *zap.Logger
}

// Model is the Bubble Tea model wrapping a form.Controller.
type Model struct {
	form   *form.Controller
	inputs [2]textinput.Model
	focus  focus

	keys keyMap
	help help.Model
	log  *zap.Logger

	width    int
	quitting bool
}

// New builds a model over c with the first input focused.
func New(c *form.Controller, opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		form: c,
		keys: defaultKeys(),
		help: help.New(),
		log:  log,
	}
	v := c.View()
	for _, f := range model.Fields {
		fv := v.Field(f)
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = fv.Placeholder
		ti.CharLimit = opt.CharLimit
		ti.SetValue(fv.Value)
		m.inputs[f] = ti
	}
	m.inputs[model.First].Focus()
	return m
}

// Form returns the controller driven by this model.
func (m Model) Form() *form.Controller { return m.form }

// Run starts the program and returns the controller once the user quits.
func Run(ctx context.Context, c *form.Controller, opt Options) (*form.Controller, error) {
	p := tea.NewProgram(New(c, opt), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return c, nil
	}
	return fm.form, nil
}

// Update and View implement Bubble Tea's Model on Model
func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		}
	}

	f, ok := m.focus.field()
	if !ok {
		return m, nil
	}
	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if after := m.inputs[f].Value(); after != before {
		m.form.Change(f, after)
	}
	return m, cmd
}

// submit delivers a submit event; its default action would end the program.
func (m Model) submit() (tea.Model, tea.Cmd) {
	ev := &form.DefaultPrevented{}
	ok := m.form.Submit(ev)
	m.log.Debug("tui submit", zap.Bool("valid", ok))
	if !ev.Prevented {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if f, ok := m.focus.field(); ok {
		m.inputs[f].Blur()
		m.form.Blur(f)
	}
	m.focus = (m.focus + focus(delta) + focusCount) % focusCount
	if f, ok := m.focus.field(); ok {
		return m, m.inputs[f].Focus()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.form.View()
	t := ui.Current()

	var rows []string
	rows = append(rows, ui.TitleStyle().Render("Name form"), "")
	for _, f := range model.Fields {
		fv := v.Field(f)
		border := t.Muted
		switch {
		case fv.Invalid:
			border = t.Error
		case m.focus == focus(f):
			border = t.Accent
		}
		rows = append(rows, fv.Label, ui.BoxStyle(border).Width(m.inputWidth()).Render(m.inputs[f].View()))
		if fv.ShowError() {
			rows = append(rows, ui.ErrorStyle().Render(t.SymFail+" "+fv.Error))
		}
	}

	button := lipgloss.NewStyle().Padding(0, 2).Border(t.Border)
	if m.focus == focusSubmit {
		button = button.Reverse(true)
	}
	rows = append(rows, "", button.Render("Submit"))

	if v.ShowFullName {
		rows = append(rows, "", ui.SuccessStyle().Render(v.FullNameText()))
	}
	rows = append(rows, "", m.help.View(m.keys))

	return ui.BoxStyle(t.Muted).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) inputWidth() int {
	if m.width > 8 && m.width < 48 {
		return m.width - 8
	}
	return 40
}
