package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lander/internal/logtail"
	"github.com/five82/lander/internal/state"
	"github.com/five82/lander/internal/tower"
)

type pollTickMsg time.Time

// handleTick runs once per poll interval for the lifetime of the program.
// Without a selection the status check is a no-op but the timer keeps going.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}

	m.state = state.Reduce(m.state, state.Sweep{At: m.now()})

	if cmd := m.checkStatus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.showLogs {
		cmds = append(cmds, readLogsCmd(m.logPath, m.logLines))
	}
	return m, tea.Batch(cmds...)
}

// checkStatus tags a status request for the current selection. Returns nil
// when nothing is selected.
func (m *Model) checkStatus() tea.Cmd {
	m.state = state.Reduce(m.state, state.StatusCheckIssued{})
	if m.state.Selected == "" {
		return nil
	}
	return statusCmd(m.ctx, m.client, m.state.Selected, m.state.PollSeq, m.now)
}

// loadDirectory issues the request for the load generation already marked in
// state, plus its one-shot slow-load timer.
func (m *Model) loadDirectory() tea.Cmd {
	gen := m.state.LoadGen
	return tea.Batch(
		directoryCmd(m.ctx, m.client, gen),
		slowLoadCmd(gen),
	)
}

// reloadDirectory starts a fresh directory load unless one is outstanding.
func (m *Model) reloadDirectory() tea.Cmd {
	next := state.Reduce(m.state, state.DirectoryRequested{})
	if next.LoadGen == m.state.LoadGen {
		return nil
	}
	m.state = next
	m.logger.Info("reloading airport directory")
	return tea.Batch(m.loadDirectory(), m.spinner.Tick)
}

func (m Model) handleDirectory(msg directoryMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("fetch airports failed", slog.String("error", msg.err.Error()))
		m.lastErr = msg.err
		m.state = state.Reduce(m.state, state.DirectoryFailed{Gen: msg.gen, Err: msg.err})
		return m, nil
	}
	m.logger.Info("airport directory loaded", slog.Int("count", len(msg.airports)))
	m.lastErr = nil
	m.state = state.Reduce(m.state, state.DirectoryLoaded{Gen: msg.gen, Airports: msg.airports})
	if m.cursor >= len(m.state.Airports) {
		m.cursor = max(len(m.state.Airports)-1, 0)
	}
	return m, nil
}

func (m *Model) handleStatus(msg statusMsg) {
	before := m.state.AppliedSeq
	if msg.err != nil {
		m.logger.Warn("check airport status failed",
			slog.String("airport", msg.airportID),
			slog.Uint64("seq", msg.seq),
			slog.String("error", msg.err.Error()))
		m.state = state.Reduce(m.state, state.StatusFailed{AirportID: msg.airportID, Seq: msg.seq, Err: msg.err})
	} else {
		m.state = state.Reduce(m.state, state.StatusReceived{AirportID: msg.airportID, Seq: msg.seq, Resp: msg.resp, At: msg.at})
	}
	if m.state.AppliedSeq == before {
		m.logger.Debug("discarded stale status", slog.String("airport", msg.airportID), slog.Uint64("seq", msg.seq))
		return
	}
	m.lastErr = msg.err
}

func (m Model) handleLand(msg landMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Error("landing attempt failed",
			slog.String("airport", msg.airportID),
			slog.String("error", msg.err.Error()))
		m.state = state.Reduce(m.state, state.LandFailed{AirportID: msg.airportID, Err: msg.err, At: msg.at})
	} else {
		m.logger.Info("landing response",
			slog.String("airport", msg.airportID),
			slog.Bool("busy", msg.resp.IsBusy),
			slog.String("message", msg.resp.Message))
		m.state = state.Reduce(m.state, state.LandSucceeded{AirportID: msg.airportID, Resp: msg.resp, At: msg.at})
	}
	if m.state.Transient.Expires.IsZero() {
		return m, nil
	}
	return m, sweepCmd(m.state.Transient.Expires.Sub(m.now()))
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return pollTickMsg(t)
	})
}

func slowLoadCmd(gen uint64) tea.Cmd {
	return tea.Tick(state.SlowLoadAfter, func(time.Time) tea.Msg {
		return slowLoadMsg{gen: gen}
	})
}

// sweepCmd fires once the newest transient message has expired. The sweep
// only clears messages whose expiry has passed, so an early or duplicate
// sweep is harmless.
func sweepCmd(after time.Duration) tea.Cmd {
	if after < 0 {
		after = 0
	}
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return sweepMsg(t)
	})
}

func directoryCmd(ctx context.Context, client tower.API, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return directoryMsg{gen: gen, err: errNoClient}
		}
		reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		airports, err := client.ListAirports(reqCtx)
		return directoryMsg{gen: gen, airports: airports, err: err}
	}
}

func statusCmd(ctx context.Context, client tower.API, airportID string, seq uint64, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return statusMsg{airportID: airportID, seq: seq, err: errNoClient, at: now()}
		}
		reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		resp, err := client.AirportStatus(reqCtx, airportID)
		return statusMsg{airportID: airportID, seq: seq, resp: resp, err: err, at: now()}
	}
}

func landCmd(ctx context.Context, client tower.API, airportID string, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return landMsg{airportID: airportID, err: errNoClient, at: now()}
		}
		reqCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
		defer cancel()
		resp, err := client.Land(reqCtx, airportID)
		return landMsg{airportID: airportID, resp: resp, err: err, at: now()}
	}
}

func readLogsCmd(path string, lines int) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return logEntriesMsg{}
		}
		entries, err := logtail.ReadEntries(path, lines)
		return logEntriesMsg{entries: entries, err: err}
	}
}
