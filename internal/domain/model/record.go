// Package model contains the rider records plotted by the chart.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// YearField holds the wire form of a year. The published dataset serves it
// as a JSON number, older copies as a "YYYY" string; both decode here.
type YearField string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (y *YearField) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*y = YearField(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*y = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidYear, string(b))
	}
	*y = YearField(n.String())
	return nil
}

// RawRecord is one object of the dataset JSON array.
type RawRecord struct {
	Time        string    `json:"Time"`
	Place       int       `json:"Place,omitempty"`
	Seconds     int       `json:"Seconds,omitempty"`
	Name        string    `json:"Name"`
	Year        YearField `json:"Year"`
	Nationality string    `json:"Nationality"`
	Doping      string    `json:"Doping"`
	URL         string    `json:"URL,omitempty"`

	// decodeErr is set when the element did not decode into the fields above.
	decodeErr error
}

// DecodeRawRecord decodes one element of the dataset array. An element with
// wrongly typed fields keeps whatever decoded and fails Validate.
func DecodeRawRecord(b []byte) RawRecord {
	var r RawRecord
	if err := json.Unmarshal(b, &r); err != nil {
		r.decodeErr = err
	}
	return r
}

// Validate checks the fields the chart depends on.
func (r RawRecord) Validate() error {
	if r.decodeErr != nil {
		return r.decodeErr
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Year, validation.Required, validation.Match(yearPattern).Error("must be a 4-digit year")),
		validation.Field(&r.Time, validation.Required, validation.Match(elapsedPattern).Error("must be MM:SS")),
		validation.Field(&r.Seconds, validation.Min(0)),
		validation.Field(&r.Place, validation.Min(0)),
	)
}

// Parse validates r and converts it to a Record.
func (r RawRecord) Parse() (Record, error) {
	if err := r.Validate(); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	year, err := strconv.Atoi(string(r.Year))
	if err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidYear, string(r.Year))
	}
	t, err := ParseElapsed(r.Time)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Year:        year,
		Time:        t,
		Place:       r.Place,
		Seconds:     r.Seconds,
		Name:        r.Name,
		Nationality: r.Nationality,
		Doping:      r.Doping,
		URL:         r.URL,
	}, nil
}

// Record is a parsed rider result.
type Record struct {
	Year        int     `json:"year" yaml:"year"`
	Time        Elapsed `json:"time" yaml:"time"`
	Place       int     `json:"place,omitempty" yaml:"place,omitempty"`
	Seconds     int     `json:"seconds,omitempty" yaml:"seconds,omitempty"`
	Name        string  `json:"name" yaml:"name"`
	Nationality string  `json:"nationality" yaml:"nationality"`
	Doping      string  `json:"doping" yaml:"doping"`
	URL         string  `json:"url,omitempty" yaml:"url,omitempty"`
}

// DopingAlleged reports whether the record carries a doping allegation.
func (r Record) DopingAlleged() bool { return r.Doping != "" }

// SecondsMismatch reports whether the Seconds field disagrees with Time.
// Records without Seconds never mismatch.
func (r Record) SecondsMismatch() bool {
	return r.Seconds != 0 && r.Seconds != r.Time.Seconds()
}
