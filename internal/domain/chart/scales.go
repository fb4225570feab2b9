package chart

import (
	"github.com/okian/veloplot/internal/domain/model"
	"github.com/okian/veloplot/internal/domain/scale"
)

// Scales holds the two axis mappings of a chart.
type Scales struct {
	Year scale.YearScale
	Time scale.TimeScale
}

// ComputeScales derives the year and time scales from records.
// The year domain is padded by one year on each side; the time domain is
// the exact extent of the data.
func ComputeScales(records []model.Record) (Scales, error) {
	if len(records) == 0 {
		return Scales{}, ErrEmptyDataset
	}
	minYear, maxYear := records[0].Year, records[0].Year
	minTime, maxTime := records[0].Time, records[0].Time
	for _, r := range records[1:] {
		minYear = min(minYear, r.Year)
		maxYear = max(maxYear, r.Year)
		minTime = min(minTime, r.Time)
		maxTime = max(maxTime, r.Time)
	}
	return Scales{
		Year: scale.NewYearScale(minYear-1, maxYear+1, [2]float64{0, PlotWidth}),
		Time: scale.NewTimeScale(minTime, maxTime, [2]float64{0, PlotHeight}),
	}, nil
}
