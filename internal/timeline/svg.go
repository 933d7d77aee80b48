// Package timeline renders a chronosolve solve result as an SVG timeline:
// one bar per interval event, one tick per instant event, in the order
// solver.Solve placed them.
//
// This is the illustrative renderer spec.md §1 calls an external
// collaborator of the solver; it lives under internal/ so the solve CLI's
// --svg flag can use it without it becoming part of the solver's public
// surface.
package timeline

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/temporalgraph/chronosolve/temporal"
)

const (
	canvasWidth  = 1000
	canvasHeight = 200
	rowHeight    = 30
	barThickness = 16
)

// Render draws one row per result.Positions entry onto w as an SVG
// document.
func Render(w io.Writer, result *temporal.Result) {
	height := canvasHeight
	if n := len(result.Positions) * rowHeight; n+40 > height {
		height = n + 40
	}

	canvas := svg.New(w)
	canvas.Start(canvasWidth, height)
	canvas.Title("chronosolve timeline")

	for i, c := range result.Positions {
		y := 20 + i*rowHeight
		if c.Start == c.End {
			canvas.Circle(int(c.Start), y, 5, "fill:black")
		} else {
			canvas.Rect(int(c.Start), y-barThickness/2, int(c.End-c.Start), barThickness, "fill:steelblue;stroke:black")
		}
		canvas.Text(int(c.Start), y+rowHeight/2, c.EventID, "font-size:12px")
	}

	canvas.End()
}
