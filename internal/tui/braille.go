package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. Each cell carries
// the colour of the last shape painted into it and an optional text glyph
// that replaces the braille pattern.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	col  [][]string
	txt  [][]rune
	pen  string
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	col := make([][]string, h)
	txt := make([][]rune, h)
	for i := range m {
		m[i] = make([]uint8, w)
		col[i] = make([]string, w)
		txt[i] = make([]rune, w)
	}
	return &brailleBuf{w: w, h: h, m: m, col: col, txt: txt}
}

// setPen selects the colour used by following draw calls; "" keeps the
// terminal default.
func (b *brailleBuf) setPen(c string) { b.pen = c }

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.col[cy][cx] = b.pen
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	// skip segments far outside the buffer
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= b.w*2 && x1 >= b.w*2) || (y0 >= b.h*4 && y1 >= b.h*4) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillDisc sets every micro-pixel within r of (cx, cy).
func (b *brailleBuf) fillDisc(cx, cy, r int) {
	if cx+r < 0 || cy+r < 0 || cx-r >= b.w*2 || cy-r >= b.h*4 {
		return
	}
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				b.setPixel(cx+x, cy+y)
			}
		}
	}
}

// ring draws the outline of a circle of radius r.
func (b *brailleBuf) ring(cx, cy, r int) {
	if r <= 0 {
		b.setPixel(cx, cy)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			b.setPixel(cx+p[0], cy+p[1])
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// text writes s starting at the cell that holds micro coords (mx, my).
func (b *brailleBuf) text(mx, my int, s string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h {
		return
	}
	for _, r := range s {
		if cx >= b.w {
			return
		}
		b.txt[cy][cx] = r
		b.col[cy][cx] = b.pen
		cx++
	}
}

// toLines renders the buffer, grouping runs of equal colour into one style call.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runCol := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == "" {
				sb.WriteString(string(run))
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runCol)).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			var r rune
			c := b.col[y][x]
			switch {
			case b.txt[y][x] != 0:
				r = b.txt[y][x]
			case b.m[y][x] != 0:
				r = rune(0x2800 + int(b.m[y][x]))
			default:
				r, c = ' ', ""
			}
			if c != runCol {
				flush()
				runCol = c
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
