package chart

import (
	"fmt"
	"strings"

	"github.com/okian/veloplot/internal/domain/model"
)

// Tooltip opacities.
const (
	TooltipVisibleOpacity = 0.9
	TooltipHiddenOpacity  = 0
)

// TooltipOffset is applied to the hovered mark's bounding-box origin.
var TooltipOffset = Point{X: -40, Y: -100}

// Tooltip is the text shown for a hovered mark.
type Tooltip struct {
	Year  int      `json:"year"`
	Lines []string `json:"lines"`
}

// Text joins the tooltip lines with newlines.
func (t Tooltip) Text() string { return strings.Join(t.Lines, "\n") }

// TooltipFor formats the tooltip of r.
func TooltipFor(r model.Record) Tooltip {
	return Tooltip{
		Year: r.Year,
		Lines: []string{
			r.Name + " : " + r.Nationality,
			fmt.Sprintf("Year: %04d Time: %s", r.Year, r.Time),
			r.Doping,
		},
	}
}

// TooltipPosition returns where the tooltip's top-left corner goes for a
// hovered element with the given bounding box.
func TooltipPosition(bounds Rect) Point {
	return Point{X: bounds.X + TooltipOffset.X, Y: bounds.Y + TooltipOffset.Y}
}

// TooltipState is the single tooltip overlay. The zero value is hidden.
type TooltipState struct {
	Visible  bool     `json:"visible"`
	Opacity  float64  `json:"opacity"`
	Year     int      `json:"year,omitempty"`
	Lines    []string `json:"lines,omitempty"`
	Position Point    `json:"position"`
}

// Enter shows the tooltip for m hovered at bounds.
func (s *TooltipState) Enter(m Mark, bounds Rect) {
	s.Visible = true
	s.Opacity = TooltipVisibleOpacity
	s.Year = m.Tooltip.Year
	s.Lines = m.Tooltip.Lines
	s.Position = TooltipPosition(bounds)
}

// Leave hides the tooltip. Content and position are kept, as a fading
// overlay would.
func (s *TooltipState) Leave() {
	s.Visible = false
	s.Opacity = TooltipHiddenOpacity
}
