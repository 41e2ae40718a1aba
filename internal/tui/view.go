package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"levelmap/internal/annotate"
	"levelmap/internal/viewport"
)

const (
	sidebarWidth = 28
	headerHeight = 2
	footerHeight = 2
	tableWidth   = 66
)

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	tableW             int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	lo := layout{contentW: max(10, m.width), contentH: m.height - headerHeight - footerHeight}
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
		lo.mapX = sidebarWidth + 1
	}
	if m.showTable {
		lo.tableW = min(tableWidth, lo.contentW/2)
	}
	lo.mapY = headerHeight
	lo.mapW = lo.contentW - lo.mapX - lo.tableW
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = lo.contentH
	return lo
}

// container is the map panel size in element pixels (one per braille dot).
func (lo layout) container() viewport.Container {
	return viewport.Container{Width: float64(lo.mapW * 2), Height: float64(lo.mapH * 4)}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(" levelmap ─ slab level deviation ")+"  "+m.planeLine(),
		m.statsLine(),
	)
	header = lipgloss.NewStyle().Width(lo.contentW).MaxHeight(headerHeight).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var mapView string
	if m.pasteMode {
		m.ta.SetWidth(lo.mapW)
		m.ta.SetHeight(min(lo.mapH-1, 16))
		title := titleStyle.Render("paste " + m.pasteTarget.String() + " points")
		mapView = lipgloss.JoinVertical(lipgloss.Left, title, m.ta.View())
	} else {
		mapView = m.renderMap(lo.mapW, lo.mapH)
	}
	mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).MaxHeight(lo.mapH).Render(mapView)

	// Point info popup overlays the left edge of the map
	if m.infoPopup != "" && !m.pasteMode {
		box := boxStyle.MaxWidth(min(40, lo.mapW)).Render(m.infoPopup)
		mapView = overlay(mapView, box)
	}

	cols := []string{}
	if m.showSidebar {
		cols = append(cols, sidebar, " ")
	}
	cols = append(cols, mapView)
	if m.showTable {
		cols = append(cols, m.renderTable(lo.tableW, lo.contentH))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasWorld {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.3f y=%.3f  ", m.hoverX, m.hoverY))
		if m.hoverID != "" {
			coords = dimStyle.Render(fmt.Sprintf("  %s  x=%.3f y=%.3f  ", m.hoverID, m.hoverX, m.hoverY))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).MaxHeight(footerHeight).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) planeLine() string {
	return dimStyle.Render("plane: ") + m.sess.PlaneText()
}

func (m Model) statsLine() string {
	var parts []string
	if mean, absMean, ok := m.sess.Averages(); ok {
		parts = append(parts, fmt.Sprintf("avg %d mm  |avg| %d mm", int(math.Round(mean)), int(math.Round(absMean))))
	}
	tol := m.sess.Tolerance()
	parts = append(parts, fmt.Sprintf("tol +%g/-%g (%s)", tol.Upper, tol.Lower, tol.Mode))

	c := m.sess.Counts()
	f := m.sess.Filter()
	label := func(name string, n int, on bool) string {
		s := fmt.Sprintf("%s %d", name, n)
		if on {
			return titleStyle.Render("[" + s + "]")
		}
		return s
	}
	parts = append(parts, strings.Join([]string{
		label("all", c.Total, f.String() == "all"),
		aboveStyle.Render(label("above", c.Above, f.String() == "above")),
		withinStyle.Render(label("within", c.Within(), f.String() == "within")),
		belowStyle.Render(label("below", c.Below, f.String() == "below")),
	}, " "))
	if n := len(m.sess.Rejected()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d rejected", n))
	}

	v := m.sess.Viewport()
	parts = append(parts, fmt.Sprintf("zoom %.2fx", v.Zoom()))
	if m.sess.Annotations().Mode() == annotate.Drawing {
		parts = append(parts, titleStyle.Render("drawing"))
	}
	return " " + strings.Join(parts, "  │  ")
}

// overlay places box over the top-left corner of base, line by line.
func overlay(base, box string) string {
	bl := strings.Split(base, "\n")
	ol := strings.Split(box, "\n")
	for i := 0; i < len(ol) && i < len(bl); i++ {
		bl[i] = ol[i] + ansi.TruncateLeft(bl[i], lipgloss.Width(ol[i]), "")
	}
	return strings.Join(bl, "\n")
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r/m paste",
		"Tab files",
		"t target",
		"D demo",
		"a table",
		"1-4 filter",
		"[ ] { } tol",
		"o mode",
		"+/- zoom",
		"z prev",
		"0 reset",
		"↑↓←→ scroll",
		"d draw",
		"A auto",
		"c clear",
		"y copy",
		"e export",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
