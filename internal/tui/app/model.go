// Package app is the full-screen refresh-and-viewport UI.
package app

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aemsenhuber/follow/internal/document"
	"github.com/aemsenhuber/follow/internal/runner"
	"github.com/aemsenhuber/follow/internal/sched"
	"github.com/aemsenhuber/follow/internal/viewport"
)

// Options configures one run of the UI.
type Options struct {
	Command         runner.Command
	Interval        time.Duration
	NoTitle         bool
	CaptureMaxBytes int64
}

type statusKind int

const (
	statusNone statusKind = iota
	// statusSpawn replaces the output area for the cycle; the next scheduled
	// refresh retries.
	statusSpawn
	// statusRead and statusOverflow keep the previous document visible with
	// the error on a status line.
	statusRead
	statusOverflow
	// statusDecode replaces the document with an empty flagged one; the
	// scroll position is preserved.
	statusDecode
)

type status struct {
	kind statusKind
	msg  string
}

type tickMsg time.Time

type resultMsg runner.Result

// Model drives the refresh cycle: a timer tick spawns the command unless one
// is already in flight, the completion message lays out and swaps the
// document, and key messages feed the viewport. All three sources arrive
// through the same Update call, so there is exactly one suspension point.
type Model struct {
	opts Options
	keys KeyMap
	help help.Model

	sched *sched.Scheduler
	doc   document.Document
	view  viewport.State

	width  int
	height int

	headerLeft  string
	headerRight string

	inflight     *runner.Instance
	forceRefresh bool
	started      bool

	status   status
	showHelp bool

	// Injection points for tests.
	now   func() time.Time
	spawn func(runner.Command, int64) (*runner.Instance, error)
}

func NewModel(opts Options) Model {
	h := help.New()
	h.ShowAll = true
	return Model{
		opts:  opts,
		keys:  DefaultKeyMap(),
		help:  h,
		sched: sched.New(opts.Interval),
		now:   time.Now,
		spawn: runner.Spawn,
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(m.now()) }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.view = m.view.Reclamp(m.extents())
		return m, nil
	case tickMsg:
		return m.onTick(time.Time(msg))
	case resultMsg:
		return m.onResult(runner.Result(msg))
	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

func (m Model) onTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.started {
		m.started = true
		m.sched.Anchor(now)
		return m.startRefresh(now)
	}
	if m.inflight != nil {
		// Deferred: the elapsed deadline is picked up when the in-flight
		// instance completes. No timer is needed until then.
		return m, nil
	}
	if m.sched.Due(now) {
		m.sched.Advance(now)
		return m.startRefresh(now)
	}
	return m, m.tickCmd(now)
}

func (m Model) startRefresh(now time.Time) (tea.Model, tea.Cmd) {
	m.headerLeft = headerLeft(m.opts.Command)
	m.headerRight = now.Format(time.ANSIC)

	inst, err := m.spawn(m.opts.Command, m.opts.CaptureMaxBytes)
	if err != nil {
		slog.Error("spawn failed", "err", err)
		m.status = status{kind: statusSpawn, msg: err.Error()}
		return m, m.tickCmd(now)
	}
	m.inflight = inst
	return m, waitCmd(inst)
}

func (m Model) onResult(res runner.Result) (tea.Model, tea.Cmd) {
	m.inflight = nil
	now := m.now()

	switch {
	case errors.Is(res.Err, runner.ErrCaptureOverflow):
		slog.Warn("capture overflow", "captured", len(res.Output))
		m.status = status{kind: statusOverflow, msg: "output exceeded the capture budget; previous output kept"}
	case res.Err != nil:
		slog.Error("read failed", "err", res.Err)
		m.status = status{kind: statusRead, msg: "read error: " + res.Err.Error()}
	default:
		doc := document.Layout(res.Output)
		if !doc.Decoded {
			m.doc = doc
			m.status = status{kind: statusDecode, msg: "output could not be decoded"}
		} else {
			m.doc = doc
			m.status = status{}
		}
	}
	m.view = m.view.Reclamp(m.extents())

	if m.forceRefresh {
		m.forceRefresh = false
		m.sched.Reset(now)
		return m.startRefresh(now)
	}
	if m.sched.Due(now) {
		m.sched.Advance(now)
		return m.startRefresh(now)
	}
	return m, m.tickCmd(now)
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Refresh):
		if m.inflight != nil {
			m.forceRefresh = true
			return m, nil
		}
		now := m.now()
		m.sched.Reset(now)
		return m.startRefresh(now)
	}

	doc, disp := m.extents()
	nav, ok := m.navFor(msg, disp)
	if !ok {
		return m, nil
	}
	m.view = m.view.Apply(nav, doc, disp).Reclamp(doc, disp)
	return m, nil
}

func (m Model) navFor(msg tea.KeyMsg, disp viewport.Extent) (viewport.Nav, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return viewport.ScrollRows(-1), true
	case key.Matches(msg, m.keys.Down):
		return viewport.ScrollRows(1), true
	case key.Matches(msg, m.keys.UpPast):
		return viewport.ScrollRowsPast(-1), true
	case key.Matches(msg, m.keys.DownPast):
		return viewport.ScrollRowsPast(1), true
	case key.Matches(msg, m.keys.Left):
		return viewport.ScrollCols(-1), true
	case key.Matches(msg, m.keys.Right):
		return viewport.ScrollCols(1), true
	case key.Matches(msg, m.keys.LeftPast):
		return viewport.ScrollColsPast(-1), true
	case key.Matches(msg, m.keys.RightPast):
		return viewport.ScrollColsPast(1), true
	case key.Matches(msg, m.keys.PageDown):
		return viewport.ScrollRows(disp.Rows), true
	case key.Matches(msg, m.keys.PageUp):
		return viewport.ScrollRows(-disp.Rows), true
	case key.Matches(msg, m.keys.HalfDown):
		return viewport.ScrollRows(disp.Rows / 2), true
	case key.Matches(msg, m.keys.HalfUp):
		return viewport.ScrollRows(-disp.Rows / 2), true
	case key.Matches(msg, m.keys.Top):
		return viewport.Top(), true
	case key.Matches(msg, m.keys.Bottom):
		return viewport.Bottom(), true
	case key.Matches(msg, m.keys.Follow):
		return viewport.ToggleFollow(), true
	}
	return viewport.Nav{}, false
}

func (m Model) extents() (viewport.Extent, viewport.Extent) {
	return viewport.DocExtent(m.doc), m.dispExtent()
}

// dispExtent is the area available to command output: the screen minus the
// header and, when present, the status line.
func (m Model) dispExtent() viewport.Extent {
	rows := m.height
	if !m.opts.NoTitle {
		rows--
	}
	switch m.status.kind {
	case statusRead, statusOverflow, statusDecode:
		rows--
	}
	if rows < 0 {
		rows = 0
	}
	return viewport.Extent{Rows: rows, Cols: m.width}
}

func (m Model) tickCmd(now time.Time) tea.Cmd {
	return tea.Tick(m.sched.Timeout(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func waitCmd(inst *runner.Instance) tea.Cmd {
	return func() tea.Msg { return resultMsg(<-inst.Done()) }
}

func headerLeft(cmd runner.Command) string {
	display := cmd.Display()
	host, err := os.Hostname()
	if err != nil || host == "" {
		return display
	}
	return host + ": " + display
}
