package scale_test

import (
	"testing"
	"time"

	"github.com/okian/veloplot/internal/domain/model"
	"github.com/okian/veloplot/internal/domain/scale"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLinear(t *testing.T) {
	Convey("Given a linear scale", t, func() {
		s := scale.NewLinear([2]float64{10, 20}, [2]float64{0, 500})

		Convey("When mapping domain values", func() {
			So(s.Map(10), ShouldEqual, 0.0)
			So(s.Map(15), ShouldEqual, 250.0)
			So(s.Map(20), ShouldEqual, 500.0)
			So(s.Map(30), ShouldEqual, 1000.0)
		})

		Convey("When inverting range positions", func() {
			So(s.Invert(250), ShouldEqual, 15.0)
			So(s.Invert(s.Map(12.5)), ShouldAlmostEqual, 12.5)
		})

		Convey("When the domain has zero width", func() {
			d := scale.NewLinear([2]float64{7, 7}, [2]float64{0, 500})

			Convey("Then every value should map to the range midpoint", func() {
				So(d.Degenerate(), ShouldBeTrue)
				So(d.Map(7), ShouldEqual, 250.0)
				So(d.Map(100), ShouldEqual, 250.0)
				So(d.Invert(42), ShouldEqual, 7.0)
			})
		})

		Convey("When the range is reversed", func() {
			r := scale.NewLinear([2]float64{0, 1}, [2]float64{500, 0})
			So(r.Map(0), ShouldEqual, 500.0)
			So(r.Map(1), ShouldEqual, 0.0)
			So(r.Domain(), ShouldResemble, [2]float64{0, 1})
			So(r.Range(), ShouldResemble, [2]float64{500, 0})
		})
	})
}

func TestTicks(t *testing.T) {
	Convey("Given tick helpers", t, func() {
		Convey("When computing nice steps", func() {
			So(scale.TickStep(0, 10, 10), ShouldEqual, float64(1))
			So(scale.TickStep(1993, 2016, 10), ShouldEqual, float64(2))
			So(scale.TickStep(0, 100, 10), ShouldEqual, float64(10))
			So(scale.TickStep(0, 45, 10), ShouldEqual, float64(5))
			So(scale.TickStep(5, 5, 10), ShouldEqual, float64(0))
		})

		Convey("When listing ticks", func() {
			So(scale.Ticks(1993, 2004, 10), ShouldResemble, []float64{1993, 1994, 1995, 1996, 1997, 1998, 1999, 2000, 2001, 2002, 2003, 2004})
			So(scale.TicksEvery(1993, 2016, 2)[0], ShouldEqual, 1994.0)
			So(scale.TicksEvery(3, 3, 1), ShouldResemble, []float64{3})
			So(scale.TicksEvery(10, 0, 5), ShouldResemble, []float64{0, 5, 10})
		})

		Convey("When choosing duration steps", func() {
			So(scale.DurationStep(180, 10), ShouldEqual, float64(15))
			So(scale.DurationStep(150, 10), ShouldEqual, float64(15))
			So(scale.DurationStep(4, 10), ShouldEqual, float64(1))
			So(scale.DurationStep(0, 10), ShouldEqual, float64(1))
			So(scale.DurationStep(600, 10), ShouldEqual, float64(60))
			So(scale.DurationStep(100000, 10), ShouldEqual, float64(2*3600))
		})
	})
}

func TestYearScale(t *testing.T) {
	Convey("Given a year scale over 1993..2004", t, func() {
		s := scale.NewYearScale(1993, 2004, [2]float64{0, 1000})

		Convey("Then the domain bounds should map to the range ends", func() {
			So(s.Domain(), ShouldResemble, [2]int{1993, 2004})
			So(s.Position(1993), ShouldEqual, 0.0)
			So(s.Position(2004), ShouldEqual, 1000.0)
		})

		Convey("And positions should be monotonic", func() {
			prev := -1.0
			for y := 1993; y <= 2004; y++ {
				So(s.Position(y), ShouldBeGreaterThan, prev)
				prev = s.Position(y)
			}
		})

		Convey("And inverting should return January 1st", func() {
			got := s.Invert(s.Position(1998))
			So(got.Equal(time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})

		Convey("And ticks should be whole years", func() {
			ticks := s.Ticks(10)
			So(ticks[0], ShouldEqual, 1993)
			So(ticks[len(ticks)-1], ShouldEqual, 2004)
		})
	})
}

func TestTimeScale(t *testing.T) {
	Convey("Given a time scale over 36:50..39:50", t, func() {
		lo, _ := model.ParseElapsed("36:50")
		hi, _ := model.ParseElapsed("39:50")
		s := scale.NewTimeScale(lo, hi, [2]float64{0, 500})

		Convey("Then the domain should be exact", func() {
			So(s.Domain(), ShouldResemble, [2]model.Elapsed{lo, hi})
			So(s.Position(lo), ShouldEqual, 0.0)
			So(s.Position(hi), ShouldEqual, 500.0)
			So(s.Invert(250), ShouldEqual, model.Elapsed(2300))
		})

		Convey("And ticks should fall on 15 second boundaries", func() {
			ticks := s.Ticks(10)
			So(ticks[0].String(), ShouldEqual, "37:00")
			So(ticks[1].String(), ShouldEqual, "37:15")
			So(ticks[len(ticks)-1].String(), ShouldEqual, "39:45")
		})
	})

	Convey("Given a zero-width time scale", t, func() {
		e, _ := model.ParseElapsed("28:50")
		s := scale.NewTimeScale(e, e, [2]float64{0, 500})

		Convey("Then the single value should sit at the midpoint", func() {
			So(s.Position(e), ShouldEqual, 250.0)
			So(s.Ticks(10), ShouldResemble, []model.Elapsed{e})
		})
	})
}
