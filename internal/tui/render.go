package tui

import (
	"math"
	"strings"

	"levelmap/internal/session"
)

// toMicro maps a surface position to micro-pixel coordinates of the map panel:
// surface → element through the view window, then minus the container scroll.
func (m Model) toMicro(sx, sy float64) (int, int) {
	ex, ey := m.sess.Viewport().SurfaceToElement(sx, sy)
	return int(math.Round(ex - m.scroll.X)), int(math.Round(ey - m.scroll.Y))
}

// cellToSurface is the inverse of toMicro for the centre of a map cell.
func (m Model) cellToSurface(cx, cy int) (float64, float64) {
	ex := float64(cx*2+1) + m.scroll.X
	ey := float64(cy*4+2) + m.scroll.Y
	return m.sess.Viewport().ElementToSurface(ex, ey)
}

// cellToWorld converts a map cell back to survey coordinates.
func (m Model) cellToWorld(cx, cy int) (float64, float64, bool) {
	tr, ok := m.sess.Transform()
	if !ok {
		return 0, 0, false
	}
	x, y := tr.ToWorld(m.cellToSurface(cx, cy))
	return x, y, true
}

// elementRadius scales a surface length by the current zoom.
func (m Model) elementRadius(r float64) int {
	return max(1, int(math.Round(r*m.sess.Viewport().Zoom())))
}

func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)

	// outline of the padded plot area
	surf := m.sess.Viewport().Surface()
	br.setPen(frameCol)
	x0, y0 := m.toMicro(surf.Padding, surf.Padding)
	x1, y1 := m.toMicro(surf.Width-surf.Padding, surf.Height-surf.Padding)
	for _, seg := range [4][4]int{{x0, y0, x1, y0}, {x1, y0, x1, y1}, {x1, y1, x0, y1}, {x0, y1, x0, y0}} {
		br.drawLineMicro(seg[0], seg[1], seg[2], seg[3])
	}

	tr, ok := m.sess.Transform()
	if !ok {
		return strings.Join(br.toLines(), "\n")
	}

	// committed and in-progress annotations
	tool := m.sess.Annotations()
	br.setPen(annotationCol)
	for _, pl := range append(tool.Polylines(), tool.Current()) {
		for i := 1; i < len(pl); i++ {
			ax, ay := m.toMicro(tr.Point(pl[i-1]))
			bx, by := m.toMicro(tr.Point(pl[i]))
			br.drawLineMicro(ax, ay, bx, by)
		}
	}
	if from, cx, cy, ok := tool.RubberBand(); ok {
		br.setPen(rubberBandCol)
		ax, ay := m.toMicro(tr.Point(from))
		bx, by := m.toMicro(tr.ToSurface(cx, cy))
		br.drawLineMicro(ax, ay, bx, by)
	}

	// markers in paint order; the selected point and references end on top
	markers := m.sess.Markers()
	for _, mk := range markers {
		mx, my := m.toMicro(mk.SX, mk.SY)
		br.setPen(mk.Color())
		br.fillDisc(mx, my, m.elementRadius(mk.Radius))
		if mk.Selected {
			br.setPen(selectionCol)
			br.ring(mx, my, m.elementRadius(mk.Radius)+2)
		}
	}

	// labels for references and the selection
	for _, mk := range markers {
		if mk.Kind != session.Reference && !mk.Selected {
			continue
		}
		mx, my := m.toMicro(mk.SX, mk.SY)
		br.setPen(mk.Color())
		if mk.Selected {
			br.setPen(selectionCol)
		}
		br.text(mx+m.elementRadius(mk.Radius)+3, my, mk.Point.ID)
	}

	// hover highlight at the hovered point
	if m.hovering && m.hoverID != "" {
		for _, mk := range markers {
			if mk.Point.ID != m.hoverID {
				continue
			}
			mx, my := m.toMicro(mk.SX, mk.SY)
			br.setPen(hoverCol)
			br.text(mx, my, "◯")
		}
	}
	return strings.Join(br.toLines(), "\n")
}
