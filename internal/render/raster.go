package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/solver"
)

var paletteRGBA = []color.RGBA{
	{0xeb, 0xed, 0xf0, 0xff},
	{0x9b, 0xe9, 0xa8, 0xff},
	{0x40, 0xc4, 0x63, 0xff},
	{0x30, 0xa1, 0x4e, 0xff},
	{0x21, 0x6e, 0x39, 0xff},
}

func shadeRGBA(c int) color.RGBA {
	if c < 0 {
		c = 0
	}
	if c >= len(paletteRGBA) {
		c = len(paletteRGBA) - 1
	}
	return paletteRGBA[c]
}

// PNG draws a single static frame: the original grid's colors with a label
// reporting how many cells the route consumed, and writes it as a PNG to
// w.
func PNG(w io.Writer, original *grid.Grid, route *solver.Route) error {
	width := original.Width * cellSize
	height := original.Height*cellSize + labelHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	for y, row := range original.Colors() {
		for x, c := range row {
			drawCell(img, x*cellSize, y*cellSize, shadeRGBA(c))
		}
	}

	eaten := map[geom.Point]bool{}
	for _, pose := range route.Poses {
		h := pose.Head()
		if c, err := original.AtOrEmpty(h); err == nil && c > 0 {
			eaten[h] = true
		}
	}
	label := fmt.Sprintf("%d cells", len(eaten))
	addLabel(img, 2, original.Height*cellSize+labelHeight-4, label)

	return png.Encode(w, img)
}

const labelHeight = 14

func drawCell(img *image.RGBA, x, y int, c color.RGBA) {
	rect := image.Rect(x, y, x+cellSize-1, y+cellSize-1)
	draw.Draw(img, rect, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
