// Package export writes the deviation map as SVG, PNG or GeoJSON.
package export

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"levelmap/internal/session"
	"levelmap/internal/viewport"
)

// MapRenderer draws a session onto its display surface with the same mapping
// the terminal map uses.
type MapRenderer struct {
	Session    *session.Session
	Resolution canvas.Resolution // PNG output only
	Frame      bool              // dashed outline of the padded plot area
}

// NewMapRenderer creates a renderer with default settings.
func NewMapRenderer(s *session.Session) *MapRenderer {
	return &MapRenderer{
		Session:    s,
		Resolution: canvas.DPI(96),
		Frame:      true,
	}
}

// canvasRenderer is implemented by the svg and rasterizer renderers.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderToSVG writes the map as an SVG document.
func (r *MapRenderer) RenderToSVG(w io.Writer) error {
	surf := r.Session.Viewport().Surface()
	out := svg.New(w, surf.Width, surf.Height, nil)
	r.renderToCanvas(out, surf)
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing svg: %w", err)
	}
	return nil
}

// RenderToPNG writes the map as a PNG image.
func (r *MapRenderer) RenderToPNG(w io.Writer) error {
	surf := r.Session.Viewport().Surface()
	rast := rasterizer.New(surf.Width, surf.Height, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast, surf)
	return png.Encode(w, rast)
}

func (r *MapRenderer) renderToCanvas(renderer canvasRenderer, surf viewport.Surface) {
	// canvas is y-up, the surface is y-down
	toCanvas := func(sx, sy float64) (float64, float64) {
		return sx, surf.Height - sy
	}

	bg := canvas.DefaultStyle
	bg.Fill = canvas.Paint{Color: canvas.White}
	renderer.RenderPath(canvas.Rectangle(surf.Width, surf.Height), bg, canvas.Identity)

	if r.Frame {
		frame := canvas.DefaultStyle
		frame.Fill = canvas.Paint{Color: canvas.Transparent}
		frame.Stroke = canvas.Paint{Color: hexColor("#d1d5db")}
		frame.StrokeWidth = 1.0
		frame.Dashes = []float64{6.0, 4.0}
		p := canvas.Rectangle(surf.Width-2*surf.Padding, surf.Height-2*surf.Padding).
			Translate(surf.Padding, surf.Padding)
		renderer.RenderPath(p, frame, canvas.Identity)
	}

	tr, ok := r.Session.Transform()
	if !ok {
		return
	}

	line := canvas.DefaultStyle
	line.Fill = canvas.Paint{Color: canvas.Transparent}
	line.Stroke = canvas.Paint{Color: hexColor("#1f2937")}
	line.StrokeWidth = 2.0
	for _, pl := range r.Session.Annotations().Polylines() {
		cp := &canvas.Path{}
		for i, pt := range pl {
			cx, cy := toCanvas(tr.Point(pt))
			if i == 0 {
				cp.MoveTo(cx, cy)
			} else {
				cp.LineTo(cx, cy)
			}
		}
		renderer.RenderPath(cp, line, canvas.Identity)
	}

	for _, m := range r.Session.Markers() {
		style := canvas.DefaultStyle
		style.Fill = canvas.Paint{Color: hexColor(m.Color())}
		style.Stroke = canvas.Paint{Color: canvas.White}
		style.StrokeWidth = 1.5
		if m.Selected {
			style.Stroke = canvas.Paint{Color: canvas.Black}
			style.StrokeWidth = 3.0
		}
		cx, cy := toCanvas(m.SX, m.SY)
		renderer.RenderPath(canvas.Circle(m.Radius).Translate(cx, cy), style, canvas.Identity)
	}
}

// hexColor parses "#rrggbb"; anything else is black.
func hexColor(s string) color.RGBA {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || len(s) != 7 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
