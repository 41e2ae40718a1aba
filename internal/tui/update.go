package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"levelmap/internal/config"
	"levelmap/internal/deviation"
	"levelmap/internal/export"
	"levelmap/internal/geom"
	"levelmap/internal/viewport"
)

// keys forwarded to the results table while it is shown
var tableKeys = map[string]bool{"up": true, "down": true, "pgup": true, "pgdown": true, "home": true, "end": true}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
		if !m.centered {
			m.centerSurface()
		}
		m.scroll = viewport.Clamp(m.scroll, m.sess.Viewport().Surface(), m.layout().container())
	case scrollTickMsg:
		if m.anim == nil {
			return m, nil
		}
		sc, done := m.anim.Step()
		m.scroll = sc
		if done {
			m.anim = nil
			return m, nil
		}
		return m, m.scrollTick()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable && tableKeys[msg.String()] {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "paste cancelled"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		m.pasteMode = false
		m.ta.Blur()
		if text == "" {
			m.apply(m.pasteTarget, nil)
			m.status = m.pasteTarget.String() + " points cleared"
			return m, nil
		}
		pts, malformed := geom.ParseRecords(text)
		m.apply(m.pasteTarget, pts)
		m.status = fmt.Sprintf("%s: %d points", m.pasteTarget, len(pts))
		if malformed > 0 {
			m.status += fmt.Sprintf(" (%d malformed)", malformed)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	v := m.sess.Viewport()
	lo := m.layout()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r", "m":
		m.pasteTarget = toReference
		pts := m.sess.Reference()
		if msg.String() == "m" {
			m.pasteTarget = toMeasured
			pts = m.sess.Measured()
		}
		m.pasteMode = true
		m.ta.SetValue(geom.FormatRecords(pts))
		m.ta.Focus()
		m.status = "paste " + m.pasteTarget.String() + " points"
	case "D":
		m.sess.LoadDemo()
		m.dataChanged()
		m.status = "demo survey loaded"
	case "R":
		m.sess.ResetAll()
		m.dataChanged()
		m.status = "all data cleared"
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		}
	case "t":
		if m.loadTarget == toMeasured {
			m.loadTarget = toReference
		} else {
			m.loadTarget = toMeasured
		}
		m.l.Title = "Files → " + m.loadTarget.String()
		m.status = "files load into " + m.loadTarget.String()
	case "enter":
		if m.showTable {
			return m.selectFromTable()
		}
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path, m.loadTarget)
			}
		}
	case "a":
		m.showTable = !m.showTable
		if m.showTable {
			m.refreshTable()
		}
	case "x", "delete":
		if !m.showTable {
			break
		}
		if id, ok := m.cursorID(); ok && m.sess.Delete(id) {
			m.refreshTable()
			m.infoPopup = ""
			m.status = "deleted " + id
		}
	case "s":
		st := m.sess.RequestSort(nextSortKey(m.sess.Sort().Key))
		m.refreshTable()
		m.status = "sort: " + string(st.Key)
	case "S":
		key := m.sess.Sort().Key
		if key == deviation.SortNone {
			key = deviation.SortKeys[0]
		}
		st := m.sess.RequestSort(key)
		m.refreshTable()
		m.status = fmt.Sprintf("sort: %s desc=%v", st.Key, st.Descending)
	case "1", "2", "3", "4":
		f := []deviation.Filter{deviation.All, deviation.OnlyAbove, deviation.OnlyWithin, deviation.OnlyBelow}[msg.String()[0]-'1']
		m.sess.SetFilter(f)
		m.refreshTable()
		m.status = "filter: " + f.String()
	case "[", "]", "{", "}":
		tol := m.sess.Tolerance()
		switch msg.String() {
		case "[":
			tol.Upper--
		case "]":
			tol.Upper++
		case "{":
			tol.Lower--
		case "}":
			tol.Lower++
		}
		tol.Upper = clamp(tol.Upper, 0, config.MaxLimit)
		tol.Lower = clamp(tol.Lower, 0, config.MaxLimit)
		if err := m.sess.SetTolerance(tol); err != nil {
			m.status = "tolerance: " + err.Error()
			break
		}
		m.refreshTable()
		m.status = fmt.Sprintf("tolerance: +%g / -%g mm", tol.Upper, tol.Lower)
	case "o":
		tol := m.sess.Tolerance()
		if tol.Mode == deviation.RelativeToAverage {
			tol.Mode = deviation.RelativeToPlane
		} else {
			tol.Mode = deviation.RelativeToAverage
		}
		_ = m.sess.SetTolerance(tol)
		m.refreshTable()
		m.status = "tolerance relative to " + tol.Mode.String()
	case "+", "=":
		if v.ZoomIn() {
			m.status = fmt.Sprintf("zoom: %.2fx", v.Zoom())
		}
	case "-", "_":
		if v.ZoomOut() {
			m.status = fmt.Sprintf("zoom: %.2fx", v.Zoom())
		}
	case "z":
		if v.ZoomPrevious() {
			m.status = fmt.Sprintf("zoom previous: %.2fx", v.Zoom())
		} else {
			m.status = "no previous zoom"
		}
	case "0":
		v.Reset()
		m.centerSurface()
		m.status = "view reset"
	case "up", "shift+up":
		m.scrollBy(0, -4*3, lo)
	case "down", "shift+down":
		m.scrollBy(0, 4*3, lo)
	case "left":
		m.scrollBy(-2*4, 0, lo)
	case "right":
		m.scrollBy(2*4, 0, lo)
	case "d":
		mode := m.sess.ToggleDrawing()
		m.status = "annotation: " + mode.String()
	case "A":
		if m.sess.AutoDraw() {
			m.status = "reference points connected"
		} else {
			m.status = "auto draw needs at least 2 reference points"
		}
	case "c":
		m.sess.ClearAnnotations()
		m.status = "annotations cleared"
	case "y":
		rows := m.sess.Rows()
		if err := clipboard.WriteAll(deviation.TSV(rows)); err != nil {
			m.status = "clipboard error: " + err.Error()
			break
		}
		m.status = fmt.Sprintf("copied %d rows", len(rows))
	case "e":
		m.status = m.exportSVG()
	case "h":
		m.helpVisible = !m.helpVisible
	case "esc":
		m.infoPopup = ""
	}
	return m, nil
}

// selectFromTable toggles the selection on the table cursor row and starts a
// smooth scroll that centres the point in the map container.
func (m Model) selectFromTable() (tea.Model, tea.Cmd) {
	id, ok := m.cursorID()
	if !ok {
		return m, nil
	}
	req, ok := m.sess.SelectAndCenter(id, m.layout().container())
	if !ok {
		m.infoPopup = ""
		m.status = "selection cleared"
		return m, nil
	}
	m.infoPopup = m.pointInfo(id)
	m.status = "selected " + id
	m.anim = viewport.NewScrollAnimation(m.scroll, req.Target, m.cfg.Scroll.Frames)
	return m, m.scrollTick()
}

func (m *Model) scrollBy(dx, dy float64, lo layout) {
	m.anim = nil
	m.scroll = viewport.Clamp(viewport.Scroll{X: m.scroll.X + dx, Y: m.scroll.Y + dy}, m.sess.Viewport().Surface(), lo.container())
}

// centerSurface scrolls the container to the middle of the surface.
func (m *Model) centerSurface() {
	if m.width == 0 || m.height == 0 {
		return
	}
	s := m.sess.Viewport().Surface()
	m.scroll = viewport.CenterOn(s.Width/2, s.Height/2, s, m.layout().container())
	m.centered = true
}

func (m Model) exportSVG() string {
	path := filepath.Join(m.cwd, "levelmap.svg")
	f, err := os.Create(path)
	if err != nil {
		return "export error: " + err.Error()
	}
	defer f.Close()
	if err := export.NewMapRenderer(m.sess).RenderToSVG(f); err != nil {
		return "export error: " + err.Error()
	}
	return "exported " + path
}

// pointInfo is the popup text for a point.
func (m Model) pointInfo(id string) string {
	for _, p := range m.sess.Classified() {
		if p.ID == id {
			return strings.Join([]string{
				titleStyle.Render("point " + p.ID),
				fmt.Sprintf("x: %.3f", p.X),
				fmt.Sprintf("y: %.3f", p.Y),
				fmt.Sprintf("z: %.3f", p.Z),
				fmt.Sprintf("deviation: %d mm", p.Deviation),
				"status: " + p.Status.Label(),
			}, "\n")
		}
	}
	if p, ok := geom.Find(m.sess.Reference(), id); ok {
		return strings.Join([]string{
			referenceStyle.Render("reference " + p.ID),
			fmt.Sprintf("x: %.3f", p.X),
			fmt.Sprintf("y: %.3f", p.Y),
			fmt.Sprintf("z: %.3f", p.Z),
		}, "\n")
	}
	if p, ok := geom.Find(m.sess.Measured(), id); ok {
		return strings.Join([]string{
			titleStyle.Render("point " + p.ID),
			fmt.Sprintf("x: %.3f", p.X),
			fmt.Sprintf("y: %.3f", p.Y),
			"no deviation",
		}, "\n")
	}
	return ""
}
