package chart

// Chart geometry, colors and labels. The dimensions are fixed.
const (
	OuterWidth  = 1100
	OuterHeight = 600

	MarginTop    = 40
	MarginRight  = 40
	MarginBottom = 60
	MarginLeft   = 60

	PlotWidth  = OuterWidth - MarginLeft - MarginRight  // 1000
	PlotHeight = OuterHeight - MarginTop - MarginBottom // 500

	MarkRadius      = 5
	MarkStrokeWidth = 1
	MarkStroke      = "black"

	// ColorClean fills marks of riders without a doping allegation.
	ColorClean = "orange"
	// ColorDoping fills marks of riders with a doping allegation. The legend
	// swatch uses the same value.
	ColorDoping = "steelblue"

	LabelDoping = "Riders with doping allegations"
	LabelClean  = "No doping allegations"

	LegendSwatchSize = 20
	LegendRowHeight  = 30
	LegendLabelX     = 30
	LegendLabelY     = 15
	legendWidth      = 200
	legendTopOffset  = 20

	// TickCount is the approximate number of ticks per axis.
	TickCount = 10

	Title = "Doping in Professional Bicycle Racing"
)

// Point is a position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Margin surrounds the plot area.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Layout describes the drawing surface.
type Layout struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Margin     Margin  `json:"margin"`
	PlotWidth  float64 `json:"plotWidth"`
	PlotHeight float64 `json:"plotHeight"`
}

// DefaultLayout returns the fixed chart layout.
func DefaultLayout() Layout {
	return Layout{
		Width:      OuterWidth,
		Height:     OuterHeight,
		Margin:     Margin{Top: MarginTop, Right: MarginRight, Bottom: MarginBottom, Left: MarginLeft},
		PlotWidth:  PlotWidth,
		PlotHeight: PlotHeight,
	}
}

// PlotOrigin is the translation of the plot group inside the surface.
func (l Layout) PlotOrigin() Point {
	return Point{X: l.Margin.Left, Y: l.Margin.Top}
}

// LegendOrigin is the translation of the legend group inside the plot group.
func (l Layout) LegendOrigin() Point {
	return Point{X: l.PlotWidth - l.Margin.Right - legendWidth, Y: l.Margin.Top + legendTopOffset}
}
