// Package tui provides a Bubble Tea terminal user interface for wav-duration.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/wav-duration/internal/config"
	"github.com/handiism/wav-duration/internal/model"
	"github.com/handiism/wav-duration/internal/scan"
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

const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scan.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logs      []LogEntry
	summary   *model.Summary
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	scanner *scan.Scanner
	events  chan scan.ProgressEvent

	scanned int32
	total   int32

	// Options
	skip    bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model from settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = settings.Directory
	ti.SetValue(settings.Directory)
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
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		skip:      settings.OnError == config.PolicySkip,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one event emitted by the scanner.
	ProgressMsg struct {
		Event scan.ProgressEvent
	}

	// ScanDoneMsg is sent when the scan finishes.
	ScanDoneMsg struct {
		Summary *model.Summary
		Err     error
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
			if m.state == StateScanning {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateScanning
				m.startScan()
				return m, tea.Batch(m.runScan(), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "ctrl+s":
			if m.state == StateInput {
				m.skip = !m.skip
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		m.appendLog(msg.Event)
		cmds = append(cmds, m.waitForEvent())

	case ScanDoneMsg:
		m.drainEvents()
		if m.scanner != nil {
			m.scanned, m.total = m.scanner.Progress()
		}
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
			m.summary = msg.Summary
		}

	case TickMsg:
		if m.scanner != nil && m.state == StateScanning {
			m.scanned, m.total = m.scanner.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.scanned) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// appendLog keeps the last maxLogs events, hiding verbose ones unless enabled.
func (m *Model) appendLog(event scan.ProgressEvent) {
	if event.Level == scan.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// drainEvents moves any events still buffered into the log.
func (m *Model) drainEvents() {
	if m.events == nil {
		return
	}
	for {
		select {
		case event, ok := <-m.events:
			if !ok {
				return
			}
			m.appendLog(event)
		default:
			return
		}
	}
}

// scanSettings returns a copy of the settings with the UI options applied.
func (m Model) scanSettings() *config.Settings {
	settings := *m.settings
	settings.Directory = strings.TrimSpace(m.textInput.Value())
	settings.Verbose = m.verbose
	settings.OnError = config.PolicyAbort
	if m.skip {
		settings.OnError = config.PolicySkip
	}
	return &settings
}

// startScan creates the scanner for the current input.
func (m *Model) startScan() {
	events := make(chan scan.ProgressEvent, 256)
	m.events = events
	m.logs = nil
	m.scanner = scan.NewScanner(m.scanSettings(), func(event scan.ProgressEvent) {
		select {
		case events <- event:
		default:
			// UI is behind; drop rather than stall the scan.
		}
	})
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.summary = nil
	m.err = nil
	m.scanned = 0
	m.total = 0
	m.scanner = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.Focus()
}

// runScan runs the scan in the background.
func (m Model) runScan() tea.Cmd {
	scanner, ctx, dir := m.scanner, m.ctx, strings.TrimSpace(m.textInput.Value())
	events := m.events
	return func() tea.Msg {
		summary, err := scanner.Scan(ctx, dir)
		close(events)
		return ScanDoneMsg{Summary: summary, Err: err}
	}
}

// waitForEvent forwards the next scanner event to the program.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎵 WAV Duration"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Sum the playback time of a folder of WAV files"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Directory to scan:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	skipCheck := "[ ]"
	if m.skip {
		skipCheck = "[×]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Skip unreadable files instead of aborting (ctrl+s)\n", skipCheck))
	b.WriteString(fmt.Sprintf("  %s Show per-file durations (ctrl+t)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Matching files ending in %s", m.settings.Extension)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading headers..."))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.scanned) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", m.scanned, m.total)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.summary == nil {
		return ""
	}

	content := fmt.Sprintf(
		"✨ %s\n\n"+
			"Directory: %s\n"+
			"Files: %d\n"+
			"Duration: %s",
		scan.FormatTotal(m.summary.TotalSeconds),
		m.summary.Directory,
		m.summary.Count(),
		m.summary.Duration().Round(time.Millisecond),
	)
	if n := len(m.summary.Skipped); n > 0 {
		content += warningStyle.Render(fmt.Sprintf("\nSkipped: %d", n))
	}
	b.WriteString(boxStyle.Render(content))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
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
		case scan.LevelError:
			style = errorStyle
			prefix = "✗"
		case scan.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scan.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scan.LevelInfo:
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
		return "enter: scan • ctrl+s: skip bad files • ctrl+t: verbose • esc: quit"
	case StateScanning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new scan • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
