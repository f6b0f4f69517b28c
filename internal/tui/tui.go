// Package tui is the interactive terminal front-end. It feeds each entered
// line to a cli.Session and shows the replies in a scrollback pane.
package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/happy/internal/cli"
	"github.com/idilsaglam/happy/internal/ui"
)

// Options tune the front-end.
type Options struct {
	Name string // assistant name for the welcome banner
	Echo bool   // repeat each line as "Command entered: ..."
}

type keyMap struct {
	Submit   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PageUp, k.PageDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model is the bubbletea model. The session writes into buf; after every
// command the buffer is drained into the scrollback.
type Model struct {
	session *cli.Session
	buf     *bytes.Buffer
	opt     Options

	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap

	transcript strings.Builder
	width      int
	stopped    bool
	err        error
}

// New creates a model with a fresh session configured by opts.
func New(opt Options, opts ...cli.Option) *Model {
	buf := &bytes.Buffer{}
	m := &Model{
		session:  cli.NewSession(buf, opts...),
		buf:      buf,
		opt:      opt,
		input:    textinput.New(),
		viewport: viewport.New(78, 14),
		help:     help.New(),
		keys:     defaultKeys(),
	}
	m.input.Prompt = "> "
	m.input.Placeholder = "todo read book"
	m.input.CharLimit = 200
	m.input.Focus()

	m.err = m.session.Emit(m.session.Presenter().Welcome(opt.Name))
	m.flush()
	return m
}

// Run starts the program on in/out and blocks until bye, quit or ctx is done.
func Run(ctx context.Context, m *Model, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

func (m *Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			m.submit(line)
			if m.stopped || m.err != nil {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one line through the session the same way the line runner does.
func (m *Model) submit(line string) {
	p := m.session.Presenter()
	if m.opt.Echo {
		if m.err = m.session.Emit(p.Echo(line)); m.err != nil {
			return
		}
	}

	state, err := m.session.Execute(line)
	switch {
	case errors.Is(err, cli.ErrUnrecognizedCommand):
		m.err = m.session.Emit(p.Unrecognized())
	case err != nil:
		m.err = err
	}
	m.stopped = state == cli.Stopped
	m.flush()
}

func (m *Model) flush() {
	if m.buf.Len() == 0 {
		return
	}
	m.transcript.Write(m.buf.Bytes())
	m.buf.Reset()
	m.viewport.SetContent(strings.TrimSuffix(m.transcript.String(), "\n"))
	m.viewport.GotoBottom()
}

func (m *Model) resize(w, h int) {
	m.width = w
	// border, padding, header, progress, input and help lines
	m.viewport.Width = max(w-4, 10)
	m.viewport.Height = max(h-8, 3)
	m.input.Width = max(w-8, 10)
	m.help.Width = w
	m.viewport.GotoBottom()
}

// Transcript returns everything the assistant has printed so far.
func (m *Model) Transcript() string { return m.transcript.String() }

// Stopped reports whether a well-formed bye was handled.
func (m *Model) Stopped() bool { return m.stopped }

func (m *Model) View() string {
	theme := m.session.Presenter().Theme()
	done, pending := m.session.Stats()

	header := ui.Header(theme, done, pending)
	progress := theme.Muted.Render(ui.ProgressBar(done, done+pending, 20))
	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		progress,
		m.viewport.View(),
		m.input.View(),
		m.help.View(m.keys),
	)

	width := 0
	if m.width > 0 {
		width = m.width - 2
	}
	return ui.Panel(theme, content, width)
}
