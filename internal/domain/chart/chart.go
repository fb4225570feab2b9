// Package chart turns rider records into a renderable scatter-plot scene:
// one mark per record, two axes, a legend and the hover tooltip model.
package chart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/veloplot/internal/domain/model"
)

// Orientation selects where an axis is anchored.
type Orientation string

const (
	OrientBottom Orientation = "bottom"
	OrientLeft   Orientation = "left"
)

// Mark is the glyph drawn for one record.
type Mark struct {
	Index       int          `json:"index"`
	Record      model.Record `json:"record"`
	CX          float64      `json:"cx"`
	CY          float64      `json:"cy"`
	R           float64      `json:"r"`
	Fill        string       `json:"fill"`
	Stroke      string       `json:"stroke"`
	StrokeWidth float64      `json:"strokeWidth"`
	// XValue and YValue are exposed as data-xvalue / data-yvalue.
	XValue  int     `json:"xValue"`
	YValue  string  `json:"yValue"`
	Tooltip Tooltip `json:"tooltip"`
}

// Tick is one labelled axis tick; Offset is along the axis in pixels.
type Tick struct {
	Offset float64 `json:"offset"`
	Label  string  `json:"label"`
}

// Axis is a rendered axis.
type Axis struct {
	ID        string      `json:"id"`
	Orient    Orientation `json:"orient"`
	Translate Point       `json:"translate"`
	Length    float64     `json:"length"`
	Ticks     []Tick      `json:"ticks"`
}

// LegendItem is a swatch and its label.
type LegendItem struct {
	Color string  `json:"color"`
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

// Legend is the static color key.
type Legend struct {
	ID         string       `json:"id"`
	Translate  Point        `json:"translate"`
	SwatchSize float64      `json:"swatchSize"`
	LabelX     float64      `json:"labelX"`
	LabelY     float64      `json:"labelY"`
	Items      []LegendItem `json:"items"`
}

// Chart is the full scene graph of the scatter plot.
type Chart struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Layout   Layout  `json:"layout"`
	Scales   Scales  `json:"-"`
	Marks    []Mark  `json:"marks"`
	XAxis    Axis    `json:"xAxis"`
	YAxis    Axis    `json:"yAxis"`
	Legend   Legend  `json:"legend"`
	Dataset  Dataset `json:"-"`
}

// Option customizes Render.
type Option func(*Chart)

// WithID sets the chart identifier instead of a random one.
func WithID(id string) Option {
	return func(c *Chart) {
		if id != "" {
			c.ID = id
		}
	}
}

// WithSubtitle replaces the record-count subtitle.
func WithSubtitle(subtitle string) Option {
	return func(c *Chart) {
		if subtitle != "" {
			c.Subtitle = subtitle
		}
	}
}

// Render builds the scene for ds. It is a pure function of the dataset
// apart from the random chart ID.
func Render(ds Dataset, opts ...Option) (*Chart, error) {
	scales, err := ComputeScales(ds.Records)
	if err != nil {
		return nil, err
	}
	layout := DefaultLayout()
	c := &Chart{
		ID:       uuid.NewString(),
		Title:    Title,
		Subtitle: fmt.Sprintf("%d fastest times", len(ds.Records)),
		Layout:   layout,
		Scales:   scales,
		Marks:    renderMarks(ds.Records, scales),
		XAxis:    renderXAxis(scales, layout),
		YAxis:    renderYAxis(scales),
		Legend:   renderLegend(layout),
		Dataset:  ds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MarkFill returns the fill color for a record.
func MarkFill(r model.Record) string {
	if r.DopingAlleged() {
		return ColorDoping
	}
	return ColorClean
}

func renderMarks(records []model.Record, s Scales) []Mark {
	marks := make([]Mark, len(records))
	for i, r := range records {
		marks[i] = Mark{
			Index:       i,
			Record:      r,
			CX:          s.Year.Position(r.Year),
			CY:          s.Time.Position(r.Time),
			R:           MarkRadius,
			Fill:        MarkFill(r),
			Stroke:      MarkStroke,
			StrokeWidth: MarkStrokeWidth,
			XValue:      r.Year,
			YValue:      r.Time.ISO(),
			Tooltip:     TooltipFor(r),
		}
	}
	return marks
}

func renderXAxis(s Scales, l Layout) Axis {
	years := s.Year.Ticks(TickCount)
	ticks := make([]Tick, len(years))
	for i, y := range years {
		ticks[i] = Tick{Offset: s.Year.Position(y), Label: fmt.Sprintf("%04d", y)}
	}
	return Axis{
		ID:        "x-axis",
		Orient:    OrientBottom,
		Translate: Point{X: 0, Y: l.PlotHeight},
		Length:    l.PlotWidth,
		Ticks:     ticks,
	}
}

func renderYAxis(s Scales) Axis {
	times := s.Time.Ticks(TickCount)
	ticks := make([]Tick, len(times))
	for i, t := range times {
		ticks[i] = Tick{Offset: s.Time.Position(t), Label: t.String()}
	}
	r := s.Time.Range()
	return Axis{
		ID:     "y-axis",
		Orient: OrientLeft,
		Length: r[1] - r[0],
		Ticks:  ticks,
	}
}

func renderLegend(l Layout) Legend {
	return Legend{
		ID:         "legend",
		Translate:  l.LegendOrigin(),
		SwatchSize: LegendSwatchSize,
		LabelX:     LegendLabelX,
		LabelY:     LegendLabelY,
		Items: []LegendItem{
			{Color: ColorDoping, Label: LabelDoping, Y: 0},
			{Color: ColorClean, Label: LabelClean, Y: LegendRowHeight},
		},
	}
}

// Mark returns the mark at index.
func (c *Chart) Mark(index int) (Mark, error) {
	if index < 0 || index >= len(c.Marks) {
		return Mark{}, fmt.Errorf("%w: index %d of %d", ErrMarkNotFound, index, len(c.Marks))
	}
	return c.Marks[index], nil
}

// MarkBounds returns the bounding box of m in page coordinates when the
// drawing surface's top-left corner sits at surface.
func (c *Chart) MarkBounds(m Mark, surface Point) Rect {
	o := c.Layout.PlotOrigin()
	return Rect{
		X:      surface.X + o.X + m.CX - m.R,
		Y:      surface.Y + o.Y + m.CY - m.R,
		Width:  2 * m.R,
		Height: 2 * m.R,
	}
}

// CountByFill tallies marks per fill color.
func (c *Chart) CountByFill() map[string]int {
	out := make(map[string]int, 2)
	for _, m := range c.Marks {
		out[m.Fill]++
	}
	return out
}
