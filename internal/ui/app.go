package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lander/internal/logtail"
	"github.com/five82/lander/internal/prefs"
	"github.com/five82/lander/internal/state"
	"github.com/five82/lander/internal/tower"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    tower.API
	BaseURL   string
	Logger    *slog.Logger
	LogPath   string
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	LogLines  int

	// Now overrides the clock. Nil uses time.Now.
	Now func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    tower.API
	baseURL   string
	logger    *slog.Logger
	logPath   string
	prefsPath string
	pollTick  time.Duration
	now       func() time.Time

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	cursor   int
	spinner  spinner.Model
	showHelp bool

	// lastErr is the outcome of the most recent directory or status request.
	lastErr error

	// Operator log overlay
	showLogs   bool
	logLines   int
	logEntries []logtail.Entry
	logErr     error

	// Data state
	state state.State
}

// New creates a new Bubble Tea model. The directory load is marked as
// started; Init issues the request.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultPollInterval
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logLines := opts.LogLines
	if logLines <= 0 {
		logLines = prefs.Defaults().LogLines
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:       ctx,
		client:    opts.Client,
		baseURL:   opts.BaseURL,
		logger:    logger,
		logPath:   opts.LogPath,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		now:       now,
		keys:      DefaultKeyMap(),
		theme:     GetTheme(themeName),
		spinner:   sp,
		logLines:  logLines,
		state:     state.Reduce(state.New(), state.DirectoryRequested{}),
	}
}

// State returns the current client state.
func (m Model) State() state.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadDirectory(),
		m.spinner.Tick,
		tickCmd(m.pollTick),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case pollTickMsg:
		return m.handleTick()

	case directoryMsg:
		return m.handleDirectory(msg)

	case slowLoadMsg:
		m.state = state.Reduce(m.state, state.LoadingSlow{Gen: msg.gen})
		return m, nil

	case statusMsg:
		m.handleStatus(msg)
		return m, nil

	case landMsg:
		return m.handleLand(msg)

	case sweepMsg:
		m.state = state.Reduce(m.state, state.Sweep{At: time.Time(msg)})
		return m, nil

	case logEntriesMsg:
		m.logEntries = msg.entries
		m.logErr = msg.err
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once nothing is loading; a reload restarts it.
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.showLogs {
		b.WriteString(m.renderLogs())
	} else {
		b.WriteString(m.renderMain())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LogLines: m.logLines}); err != nil {
				m.logger.Warn("save prefs failed", slog.String("error", err.Error()))
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = !m.showLogs
		if m.showLogs {
			return m, readLogsCmd(m.logPath, m.logLines)
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.showLogs {
			m.showLogs = false
			return m, nil
		}
		m.state = state.Reduce(m.state, state.AirportSelected{})
		return m, nil
	}

	if m.showLogs {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Airports)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.state.Airports)-1, 0)
	case key.Matches(msg, m.keys.Select):
		return m.selectIndex(m.cursor)
	case key.Matches(msg, m.keys.Land):
		return m.land()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadDirectory()
	default:
		// 1-9 select directly
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx, _ := strconv.Atoi(s)
			return m.selectIndex(idx - 1)
		}
	}
	return m, nil
}

// selectIndex selects the airport at idx and checks its status right away
// rather than waiting for the next tick.
func (m Model) selectIndex(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(m.state.Airports) {
		return m, nil
	}
	m.cursor = idx
	airport := m.state.Airports[idx]
	m.state = state.Reduce(m.state, state.AirportSelected{ID: airport.ID})
	m.logger.Debug("airport selected", slog.String("airport", airport.ID))
	return m, m.checkStatus()
}

// land submits a landing attempt for the selection when allowed.
func (m Model) land() (tea.Model, tea.Cmd) {
	next := state.Reduce(m.state, state.LandRequested{})
	if !next.Landing || m.state.Landing {
		return m, nil
	}
	m.state = next
	m.logger.Info("landing requested", slog.String("airport", next.LandingTarget))
	return m, landCmd(m.ctx, m.client, next.LandingTarget, m.now)
}

// Messages

type directoryMsg struct {
	gen      uint64
	airports []tower.Airport
	err      error
}

type slowLoadMsg struct {
	gen uint64
}

type statusMsg struct {
	airportID string
	seq       uint64
	resp      tower.StatusResponse
	err       error
	at        time.Time
}

type landMsg struct {
	airportID string
	resp      tower.LandResponse
	err       error
	at        time.Time
}

type sweepMsg time.Time

type logEntriesMsg struct {
	entries []logtail.Entry
	err     error
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
