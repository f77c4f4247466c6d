package outside_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
)

func TestRegionClassifiesEnclosedPocket(t *testing.T) {
	Convey("Given a grid with a colored ring around one empty cell", t, func() {
		g, err := grid.New([][]int{
			{1, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		})
		So(err, ShouldBeNil)

		Convey("When the outside region is built", func() {
			region := outside.Build(g)

			Convey("Then the enclosed cell is not outside", func() {
				So(region.Contains(geom.Point{X: 1, Y: 1}), ShouldBeFalse)
			})

			Convey("Then the margin around the grid is outside", func() {
				So(region.Contains(geom.Point{X: -1, Y: -1}), ShouldBeTrue)
			})

			Convey("Then a colored border cell is not itself outside", func() {
				So(region.Contains(geom.Point{X: 0, Y: 0}), ShouldBeFalse)
			})
		})
	})
}
