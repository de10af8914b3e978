// Package ui runs an interactive session in the terminal.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/nibzard/tasks-go/internal/session"
	"github.com/nibzard/tasks-go/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	logger          *log.Logger
	theme           Theme
	glyph           string
	systemClipboard bool
	copyText        func(string) error
	input           io.Reader
	output          io.Writer
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// WithTheme replaces the default colors.
func WithTheme(theme Theme) TUIOption {
	return func(c *tuiConfig) {
		c.theme = theme
	}
}

// WithGlyph sets the completion glyph shown for completed tasks.
func WithGlyph(glyph string) TUIOption {
	return func(c *tuiConfig) {
		if glyph != "" {
			c.glyph = glyph
		}
	}
}

// WithSystemClipboard mirrors yanked tasks to the system clipboard.
func WithSystemClipboard(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.systemClipboard = enabled
	}
}

// WithIO overrides the terminal input and output.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

func newTUIConfig(opts []TUIOption) *tuiConfig {
	c := &tuiConfig{
		logger:   log.New(io.Discard),
		theme:    DefaultTheme,
		glyph:    DefaultGlyph,
		copyText: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunTUI runs s until the user quits and returns how the session ended.
// The terminal is put into raw mode for the duration of the call and restored
// on every return path.
func RunTUI(ctx context.Context, s *session.Session, opts ...TUIOption) (session.Exit, error) {
	c := newTUIConfig(opts)
	model := newTUIModel(s, c)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.input != nil {
		programOpts = append(programOpts, tea.WithInput(c.input))
	}
	if c.output != nil {
		programOpts = append(programOpts, tea.WithOutput(c.output))
	}

	program := tea.NewProgram(model, programOpts...)
	finalModel, err := program.Run()
	if err != nil {
		return session.ExitNone, fmt.Errorf("run tui: %w", err)
	}
	if m, ok := finalModel.(*tuiModel); ok {
		return m.exit, nil
	}
	return session.ExitNone, nil
}

type tuiModel struct {
	session  *session.Session
	cfg      *tuiConfig
	styles   styles
	exit     session.Exit
	copyErr  error
	quitting bool
}

func newTUIModel(s *session.Session, c *tuiConfig) *tuiModel {
	return &tuiModel{
		session: s,
		cfg:     c,
		styles:  newStyles(c.theme),
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Pasted text is only ever typed into the edit buffer, never run as
	// commands.
	if keyMsg.Paste && m.session.Mode() != session.ModeInput {
		return m, nil
	}

	m.copyErr = nil
	for _, k := range translateKey(keyMsg) {
		out := m.session.Handle(k)
		if out.Command != "" {
			m.cfg.logger.Debug("command",
				"name", out.Command,
				"key", k.String(),
				"list", m.session.CurrentListIndex(),
				"task", m.session.CurrentTaskIndex(),
			)
		}
		if len(out.Yanked) > 0 && m.cfg.systemClipboard {
			m.copyToSystemClipboard(out.Yanked)
		}
		if out.Exit != session.ExitNone {
			m.exit = out.Exit
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *tuiModel) copyToSystemClipboard(tasks []todo.Task) {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, "- "+t.String())
	}
	if err := m.cfg.copyText(strings.Join(lines, "\n")); err != nil {
		m.copyErr = err
		m.cfg.logger.Warn("copy to system clipboard failed", "err", err)
	}
}

func (m *tuiModel) View() string {
	// Leave nothing behind once the session has ended.
	if m.quitting {
		return ""
	}

	frame := m.session.Frame()
	var b strings.Builder
	if frame.Mode == session.ModeHelp {
		m.writeHelp(&b)
		return b.String()
	}

	m.writeTitle(&b, frame)
	m.writeTasks(&b, frame)
	if frame.Input != nil && frame.Input.Row == len(frame.Tasks) {
		b.WriteString(m.checkbox(false) + " " + m.renderInput(frame.Input) + "\n")
	}
	if frame.Prompt != "" {
		b.WriteString("[" + m.styles.warning.Render("!") + "] " + frame.Prompt + "\n")
	}
	if frame.Status != "" {
		b.WriteString(m.styles.status.Render(frame.Status) + "\n")
	}
	if m.copyErr != nil {
		b.WriteString(m.styles.status.Render("clipboard: "+m.copyErr.Error()) + "\n")
	}
	return b.String()
}

func (m *tuiModel) writeTitle(b *strings.Builder, frame session.Frame) {
	if frame.Input != nil && frame.Input.Row == session.TitleRow {
		b.WriteString(m.styles.title.Render(frame.Input.Prefix) + m.renderInput(frame.Input) + "\n")
		return
	}
	b.WriteString(m.styles.title.Render(frame.Title) + "\n")
}

func (m *tuiModel) writeTasks(b *strings.Builder, frame session.Frame) {
	for i, task := range frame.Tasks {
		if frame.Input != nil && frame.Input.Row == i {
			b.WriteString(m.checkbox(frame.Input.Completed) + " " + m.renderInput(frame.Input) + "\n")
			continue
		}
		line := m.checkbox(task.Completed()) + " "
		if frame.ShowCursor && frame.Mode == session.ModeNormal && i == frame.Cursor {
			line += m.styles.selected.Render(task.Description())
		} else {
			line += m.styles.task.Render(task.Description())
		}
		b.WriteString(line + "\n")
	}
}

func (m *tuiModel) writeHelp(b *strings.Builder) {
	b.WriteString(m.styles.helpTitle.Render("Keybinds") + "\n")
	for _, binding := range m.session.KeyMap().HelpBindings() {
		help := binding.Help()
		b.WriteString(m.styles.helpKey.Render(help.Key) + " " + m.styles.helpDesc.Render(help.Desc) + "\n")
	}
	b.WriteString("\n" + m.styles.helpHint.Render("Press any key to return") + "\n")
}

func (m *tuiModel) checkbox(completed bool) string {
	if completed {
		return "[" + m.styles.done.Render(m.cfg.glyph) + "]"
	}
	return "[ ]"
}

// renderInput draws the edit buffer with a block cursor at the offset.
func (m *tuiModel) renderInput(v *session.InputView) string {
	after := []rune(v.After())
	under := " "
	if len(after) > 0 {
		under = string(after[0])
		after = after[1:]
	}
	return v.Before() + m.styles.cursor.Render(under) + string(after)
}

// IsTTY returns true if f is a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
