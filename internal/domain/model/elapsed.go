package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// isoLayout is the millisecond-precision UTC form used for machine-readable
// time attributes, e.g. 1900-01-01T00:36:50.000Z.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// ReferenceDay anchors elapsed times on the time line when an instant is
// required.
var ReferenceDay = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

var elapsedPattern = regexp.MustCompile(`^(\d{1,2}):([0-5]\d)$`)

// Elapsed is a race duration in whole seconds.
type Elapsed int

// ParseElapsed parses an "MM:SS" string.
func ParseElapsed(s string) (Elapsed, error) {
	m := elapsedPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not MM:SS", ErrInvalidTime, s)
	}
	minutes, _ := strconv.Atoi(m[1])
	seconds, _ := strconv.Atoi(m[2])
	return Elapsed(minutes*60 + seconds), nil
}

// Seconds returns the total number of seconds.
func (e Elapsed) Seconds() int { return int(e) }

// Duration converts e to a time.Duration.
func (e Elapsed) Duration() time.Duration { return time.Duration(e) * time.Second }

// String formats e as MM:SS. Minutes are not wrapped at the hour.
func (e Elapsed) String() string {
	return fmt.Sprintf("%02d:%02d", int(e)/60, int(e)%60)
}

// Instant places e on ReferenceDay.
func (e Elapsed) Instant() time.Time { return ReferenceDay.Add(e.Duration()) }

// ISO returns the ISO-8601 instant string of e on ReferenceDay.
func (e Elapsed) ISO() string { return e.Instant().Format(isoLayout) }

// MarshalJSON encodes e as its MM:SS form.
func (e Elapsed) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON accepts the MM:SS form.
func (e *Elapsed) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTime, err.Error())
	}
	v, err := ParseElapsed(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalYAML encodes e as its MM:SS form.
func (e Elapsed) MarshalYAML() (any, error) {
	return e.String(), nil
}
