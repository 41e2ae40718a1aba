package tui

import (
	"os"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"levelmap/internal/config"
	"levelmap/internal/session"
	"levelmap/internal/viewport"
)

// target is the point set a paste or file load goes into.
type target int

const (
	toReference target = iota
	toMeasured
)

func (t target) String() string {
	if t == toMeasured {
		return "measured"
	}
	return "reference"
}

type Model struct {
	width  int
	height int

	cfg  *config.Config
	sess *session.Session

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd        string
	l          list.Model
	items      []list.Item
	selPath    string
	loadTarget target

	// paste mode
	pasteMode   bool
	pasteTarget target
	ta          textarea.Model

	// map container scroll, in element pixels
	scroll   viewport.Scroll
	anim     *viewport.ScrollAnimation
	centered bool

	// pointer state on the map
	pressed bool
	moved   bool

	// point info popup
	infoPopup string

	// hover state
	hovering      bool
	hoverCellX    int
	hoverCellY    int
	hoverHasWorld bool
	hoverX        float64
	hoverY        float64
	hoverID       string

	// results table
	showTable bool
	tbl       table.Model
	rowIDs    []string
}

// New builds the model around an existing session.
func New(cfg *config.Config, sess *session.Session) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:         cfg,
		sess:        sess,
		helpVisible: true,
		status:      "levelmap ready",
		loadTarget:  toMeasured,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files → measured"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste rows of: id x y z (tab or space separated). Enter applies, Esc cancels, empty clears the set."
	m.ta.CharLimit = 0
	m.ta.ShowLineNumbers = false
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// results table setup
	m.tbl = table.New(table.WithColumns(tableColumns(m.sess.Sort())), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	m.refreshTable()
	return m
}

type scrollTickMsg struct{}

func (m Model) scrollTick() tea.Cmd {
	d := m.cfg.Scroll.FrameInterval
	if d <= 0 {
		d = 16 * time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return scrollTickMsg{} })
}

func (m Model) Init() tea.Cmd { return nil }
