package render

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/veloplot/internal/domain/chart"
)

// Named colors used by the scene, as raster colors.
var rasterColors = map[string]drawing.Color{
	chart.ColorClean:  drawing.ColorFromHex("ffa500"),
	chart.ColorDoping: drawing.ColorFromHex("4682b4"),
	chart.MarkStroke:  drawing.ColorBlack,
}

// flatPad widens a zero-width time axis so the raster range is valid.
const flatPad = 30

func dotStyle(fill string) gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    chart.MarkRadius,
		DotColor:    rasterColors[fill],
	}
}

// PNG writes c as a raster image. Y values are negated seconds so the
// fastest time sits at the top, as in the vector chart.
func PNG(w io.Writer, c *chart.Chart) error {
	if c == nil {
		return ErrNilChart
	}

	type xy struct{ xs, ys []float64 }
	groups := map[string]*xy{chart.ColorDoping: {}, chart.ColorClean: {}}
	for _, m := range c.Marks {
		g := groups[m.Fill]
		g.xs = append(g.xs, float64(m.Record.Year))
		g.ys = append(g.ys, -float64(m.Record.Time.Seconds()))
	}

	var series []gochart.Series
	for _, item := range c.Legend.Items {
		g := groups[item.Color]
		if len(g.xs) == 0 {
			continue
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    item.Label,
			XValues: g.xs,
			YValues: g.ys,
			Style:   dotStyle(item.Color),
		})
	}

	years := c.Scales.Year.Domain()
	xTicks := make([]gochart.Tick, 0, len(c.XAxis.Ticks))
	for _, y := range c.Scales.Year.Ticks(chart.TickCount) {
		xTicks = append(xTicks, gochart.Tick{Value: float64(y), Label: fmt.Sprintf("%04d", y)})
	}

	times := c.Scales.Time.Domain()
	lo, hi := -float64(times[1].Seconds()), -float64(times[0].Seconds())
	if lo == hi {
		lo, hi = lo-flatPad, hi+flatPad
	}
	yTicks := make([]gochart.Tick, 0, len(c.YAxis.Ticks))
	for _, t := range c.Scales.Time.Ticks(chart.TickCount) {
		yTicks = append(yTicks, gochart.Tick{Value: -float64(t.Seconds()), Label: t.String()})
	}

	ch := gochart.Chart{
		Title:  c.Title,
		Width:  int(c.Layout.Width),
		Height: int(c.Layout.Height),
		Background: gochart.Style{Padding: gochart.Box{
			Top:    int(c.Layout.Margin.Top),
			Left:   int(c.Layout.Margin.Left),
			Right:  int(c.Layout.Margin.Right),
			Bottom: int(c.Layout.Margin.Bottom),
		}},
		XAxis: gochart.XAxis{
			Name:  "Year",
			Range: &gochart.ContinuousRange{Min: float64(years[0]), Max: float64(years[1])},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name:  "Time (MM:SS)",
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
			Ticks: yTicks,
		},
		Series: series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("%w: %w", ErrRaster, err)
	}
	return nil
}
