// Package render encodes a chart scene as SVG, an interactive HTML page,
// PNG, or exports its dataset as JSON and YAML.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/okian/veloplot/internal/domain/chart"
	"github.com/okian/veloplot/pkg/metrics"
)

// Format is an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatHTML, FormatPNG, FormatJSON, FormatYAML}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	}
	return "application/octet-stream"
}

// Extension returns the file extension of f, dot included.
func (f Format) Extension() string { return "." + string(f) }

// Encode writes c in format f. The output is buffered so a failed encode
// never leaves a partial document in w.
func Encode(w io.Writer, c *chart.Chart, f Format) error {
	if c == nil {
		return ErrNilChart
	}
	start := time.Now()
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatSVG:
		err = SVG(&buf, c)
	case FormatHTML:
		err = Page(&buf, c)
	case FormatPNG:
		err = PNG(&buf, c)
	case FormatJSON:
		err = JSON(&buf, c.Dataset)
	case FormatYAML:
		err = YAML(&buf, c.Dataset)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		metrics.RecordRenderError(string(f))
		return err
	}
	metrics.RecordRender(string(f), float64(time.Since(start).Microseconds())/1000)
	_, err = buf.WriteTo(w)
	return err
}

// SVG writes c as a standalone SVG document.
func SVG(w io.Writer, c *chart.Chart) error {
	if c == nil {
		return ErrNilChart
	}
	if err := templates.ExecuteTemplate(w, "svg", c); err != nil {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return nil
}

// Page writes c as an HTML document with the inline SVG, the tooltip
// overlay and its hover script.
func Page(w io.Writer, c *chart.Chart) error {
	if c == nil {
		return ErrNilChart
	}
	if err := templates.ExecuteTemplate(w, "page", c); err != nil {
		return fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return nil
}
