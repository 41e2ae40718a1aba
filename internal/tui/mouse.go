package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"levelmap/internal/annotate"
)

// hoverRadius is the hit distance for the hover readout, in cells.
const hoverRadius = 2

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
	v := m.sess.Viewport()

	// mouse cell within map?
	cx, cy := msg.X-lo.mapX, msg.Y-lo.mapY
	inMap := cx >= 0 && cx < lo.mapW && cy >= 0 && cy < lo.mapH && !m.pasteMode
	if !inMap {
		m.hovering = false
		m.hoverHasWorld = false
		if msg.Action == tea.MouseActionRelease && m.pressed {
			m.pressed = false
			v.EndDrag()
		}
		return m, nil
	}
	ex := float64(cx*2+1) + m.scroll.X
	ey := float64(cy*4+2) + m.scroll.Y
	sx, sy := v.ElementToSurface(ex, ey)

	m.hovering = true
	m.hoverCellX, m.hoverCellY = cx, cy
	m.hoverID = ""
	if x, y, ok := m.cellToWorld(cx, cy); ok {
		m.hoverHasWorld = true
		m.hoverX, m.hoverY = x, y
		m.sess.Annotations().MoveCursor(x, y)
	} else {
		m.hoverHasWorld = false
	}
	if mk, ok := m.sess.Nearest(sx, sy, hoverRadius*4/v.Zoom()); ok {
		m.hoverID = mk.Point.ID
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if v.Wheel(ex, ey, true) {
			m.status = "zoom in at cursor"
		}
	case msg.Button == tea.MouseButtonWheelDown:
		if v.Wheel(ex, ey, false) {
			m.status = "zoom out at cursor"
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressed, m.moved = true, false
		if m.sess.Annotations().Mode() != annotate.Drawing {
			v.BeginDrag(ex, ey)
		}
	case msg.Action == tea.MouseActionMotion && m.pressed:
		if v.DragTo(ex, ey) {
			m.moved = true
		}
	case msg.Action == tea.MouseActionRelease && m.pressed:
		m.pressed = false
		v.EndDrag()
		if !m.moved {
			m.click(sx, sy)
		}
	}
	return m, nil
}

// click routes a press-release without movement to the session: annotation
// clicks while drawing, otherwise a selection toggle with its info popup.
func (m *Model) click(sx, sy float64) {
	drawing := m.sess.Annotations().Mode() == annotate.Drawing
	mk, ok := m.sess.Click(sx, sy)
	if !ok {
		return
	}
	if drawing {
		m.status = "annotation at " + mk.Point.ID
		return
	}
	if id, selected := m.sess.Selection(); selected && id == mk.Point.ID {
		m.infoPopup = m.pointInfo(id)
		m.status = "selected " + id
	} else {
		m.infoPopup = ""
		m.status = "selection cleared"
	}
	m.refreshTable()
}
