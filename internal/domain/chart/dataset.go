package chart

import (
	"fmt"

	"github.com/okian/veloplot/internal/domain/model"
)

// Rejection describes a raw record that could not be plotted.
type Rejection struct {
	Index  int             `json:"index" yaml:"index"`
	Reason string          `json:"reason" yaml:"reason"`
	Raw    model.RawRecord `json:"raw" yaml:"raw"`
}

// Warning flags an accepted record with inconsistent fields.
type Warning struct {
	Index   int    `json:"index" yaml:"index"`
	Message string `json:"message" yaml:"message"`
}

// Dataset is the transformed input of a chart. Records keep input order.
type Dataset struct {
	Records  []model.Record `json:"records" yaml:"records"`
	Rejected []Rejection    `json:"rejected" yaml:"rejected"`
	Warnings []Warning      `json:"warnings" yaml:"warnings"`
}

// Transform parses raw records. Malformed rows are collected in Rejected
// instead of being plotted.
func Transform(raw []model.RawRecord) Dataset {
	ds := Dataset{
		Records:  make([]model.Record, 0, len(raw)),
		Rejected: []Rejection{},
		Warnings: []Warning{},
	}
	for i, r := range raw {
		rec, err := r.Parse()
		if err != nil {
			ds.Rejected = append(ds.Rejected, Rejection{Index: i, Reason: err.Error(), Raw: r})
			continue
		}
		if rec.SecondsMismatch() {
			ds.Warnings = append(ds.Warnings, Warning{
				Index:   i,
				Message: fmt.Sprintf("Seconds=%d disagrees with Time=%s (%ds)", rec.Seconds, rec.Time, rec.Time.Seconds()),
			})
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds
}
