package chart_test

import (
	"testing"

	"github.com/okian/veloplot/internal/domain/chart"
	"github.com/okian/veloplot/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTooltipFor(t *testing.T) {
	Convey("Given a record with a doping allegation", t, func() {
		rec := model.Record{Year: 2003, Time: model.Elapsed(27*60 + 1), Name: "B", Nationality: "FRA", Doping: "Admitted"}

		Convey("When formatting its tooltip", func() {
			tip := chart.TooltipFor(rec)

			Convey("Then it should carry name, nationality, year, time and doping text", func() {
				So(tip.Year, ShouldEqual, 2003)
				So(tip.Lines, ShouldResemble, []string{"B : FRA", "Year: 2003 Time: 27:01", "Admitted"})
				So(tip.Text(), ShouldContainSubstring, "B : FRA")
				So(tip.Text(), ShouldContainSubstring, "Admitted")
			})
		})
	})
}

func TestTooltipPosition(t *testing.T) {
	Convey("Given an element bounding box", t, func() {
		bounds := chart.Rect{X: 300, Y: 420, Width: 10, Height: 10}

		Convey("Then the tooltip should sit 40px left and 100px above its origin", func() {
			So(chart.TooltipPosition(bounds), ShouldResemble, chart.Point{X: 260, Y: 320})
		})
	})
}

func TestTooltipState(t *testing.T) {
	Convey("Given the two-rider chart", t, func() {
		c, err := chart.Render(chart.Transform(twoRiders()))
		So(err, ShouldBeNil)
		var state chart.TooltipState

		Convey("Then the tooltip should start hidden", func() {
			So(state.Visible, ShouldBeFalse)
			So(state.Opacity, ShouldEqual, 0.0)
		})

		Convey("When hovering mark B", func() {
			m := c.Marks[1]
			bounds := c.MarkBounds(m, chart.Point{})
			state.Enter(m, bounds)

			Convey("Then the tooltip should show B's details", func() {
				So(state.Visible, ShouldBeTrue)
				So(state.Opacity, ShouldEqual, 0.9)
				So(state.Year, ShouldEqual, 2003)
				So(state.Lines[0], ShouldEqual, "B : FRA")
				So(state.Lines[2], ShouldEqual, "Admitted")
				So(state.Position, ShouldResemble, chart.TooltipPosition(bounds))
			})

			Convey("And leaving should hide it", func() {
				state.Leave()
				So(state.Visible, ShouldBeFalse)
				So(state.Opacity, ShouldEqual, 0.0)
			})

			Convey("And hovering another mark should replace the content", func() {
				a := c.Marks[0]
				state.Enter(a, c.MarkBounds(a, chart.Point{}))
				So(state.Year, ShouldEqual, 1994)
				So(state.Lines[0], ShouldEqual, "A : USA")
			})
		})
	})
}
