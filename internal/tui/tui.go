// Package tui provides a Bubble Tea terminal user interface for audioprobe.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/audioprobe/audioprobe/internal/config"
	"github.com/audioprobe/audioprobe/internal/model"
	"github.com/audioprobe/audioprobe/internal/probe"
	"github.com/audioprobe/audioprobe/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateProbing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   probe.ProgressLevel
}

// byteProgress is shared between the probe goroutine and the UI tick.
type byteProgress struct {
	written atomic.Int64
	total   atomic.Int64
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	rep       *model.Report
	err       error

	// Probe context
	ctx    context.Context
	cancel context.CancelFunc

	bytes *byteProgress

	// Options
	keepFile bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/song.mp3"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		bytes:     &byteProgress{},
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when the prober reports a status message.
	ProgressMsg struct {
		Event probe.ProgressEvent
	}

	// ProbeDoneMsg is sent when the probe finishes.
	ProbeDoneMsg struct {
		Report *model.Report
		Err    error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateProbing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateProbing
				return m, tea.Batch(m.startProbe(), m.spinner.Tick, m.tickProgress())
			}

		case "k":
			if m.state == StateInput {
				m.keepFile = !m.keepFile
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new probe
				m.state = StateInput
				m.logs = nil
				m.rep = nil
				m.err = nil
				m.bytes = &byteProgress{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == probe.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		// Keep only last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case ProbeDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
			m.rep = msg.Report
		}

	case TickMsg:
		if m.state == StateProbing {
			written := m.bytes.written.Load()
			total := m.bytes.total.Load()

			var percent float64
			if total > 0 {
				percent = float64(written) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("audioprobe"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Report metadata for a remote audio file"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateProbing:
		b.WriteString(m.viewProbing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter audio URL:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	// Options
	keepCheck := "[ ]"
	if m.keepFile {
		keepCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Keep downloaded file (k)\n", keepCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewProbing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Downloading and reading metadata..."))
	b.WriteString("\n\n")

	written := m.bytes.written.Load()
	total := m.bytes.total.Load()

	var percent float64
	if total > 0 {
		percent = float64(written) / float64(total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	if total > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf(
			"Downloaded: %.2f / %.2f MB",
			model.SizeMB(written),
			model.SizeMB(total),
		)))
	} else {
		b.WriteString(infoStyle.Render(fmt.Sprintf(
			"Downloaded: %.2f MB",
			model.SizeMB(written),
		)))
	}
	b.WriteString("\n\n")

	// Logs
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	if m.rep == nil {
		return successStyle.Render("Done.")
	}

	var content strings.Builder
	report.Render(&content, m.rep)
	if m.rep.Path != "" {
		content.WriteString("\nDownloaded file kept at: " + m.rep.Path)
	}

	return boxStyle.Render(strings.TrimRight(content.String(), "\n"))
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Probe failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case probe.LevelError:
			style = errorStyle
			prefix = "✗"
		case probe.LevelWarning:
			style = warningStyle
			prefix = "!"
		case probe.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case probe.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: probe • k: keep file • v: verbose • esc: quit"
	case StateProbing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new probe • q: quit"
	}
	return ""
}

// startProbe runs the probe in the background and reports the result.
func (m *Model) startProbe() tea.Cmd {
	url := m.textInput.Value()
	ctx := m.ctx
	bytes := m.bytes

	settings := config.DefaultSettings()
	settings.KeepFile = m.keepFile
	settings.Verbose = m.verbose

	return func() tea.Msg {
		prober := probe.NewProber(settings, func(event probe.ProgressEvent) {
			// Status messages are folded into the byte-progress view;
			// the UI polls via TickMsg.
		}, func(written, total int64) {
			bytes.written.Store(written)
			bytes.total.Store(total)
		})

		rep, err := prober.Probe(ctx, url)
		return ProbeDoneMsg{Report: rep, Err: err}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
