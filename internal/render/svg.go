// Package render turns a solved route into viewable output: an animated
// SVG for a browser, and a single labeled PNG frame for a quick static
// preview.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"

	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/solver"
)

// cellSize is the edge length, in SVG user units, of one grid cell.
const cellSize = 12

// palette maps a GitHub-style 0-4 contribution level to a fill color. Any
// color above 4 falls back to the highest defined shade rather than
// panicking, since callers may use a wider palette.
var palette = []string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"}

func shade(color int) string {
	if color < 0 {
		color = 0
	}
	if color >= len(palette) {
		color = len(palette) - 1
	}
	return palette[color]
}

// SVG renders the original grid's colors plus a CSS-animated trail walking
// the route's head positions in order, and returns a generated artifact ID
// suitable for a filename.
func SVG(w io.Writer, original *grid.Grid, route *solver.Route) string {
	id := uuid.NewString()
	width := original.Width * cellSize
	height := original.Height * cellSize

	canvas := svg.New(w)
	canvas.Start(width, height)

	fmt.Fprintf(w, "<style>\n")
	fmt.Fprintf(w, ".head { fill: #000; opacity: 0; animation: appear 1ms steps(1) forwards; }\n")
	fmt.Fprintf(w, "@keyframes appear { from { opacity: 1 } to { opacity: 1 } }\n")
	fmt.Fprintf(w, "</style>\n")

	colors := original.Colors()
	for y, row := range colors {
		for x, c := range row {
			canvas.Rect(x*cellSize, y*cellSize, cellSize-1, cellSize-1,
				fmt.Sprintf(`fill="%s"`, shade(c)))
		}
	}

	for i, pose := range route.Poses {
		h := pose.Head()
		fmt.Fprintf(w, `<rect class="head" x="%d" y="%d" width="%d" height="%d" `+
			`style="animation-delay:%dms"/>`+"\n",
			h.X*cellSize, h.Y*cellSize, cellSize-1, cellSize-1, i*stepMillis)
	}

	canvas.End()
	return id
}

// stepMillis is how long, in the rendered animation, the trail pauses on
// each pose before advancing to the next.
const stepMillis = 80
