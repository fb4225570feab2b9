package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/okian/veloplot/internal/domain/chart"
)

// JSON writes the transformed dataset as indented JSON.
func JSON(w io.Writer, ds chart.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}

// YAML writes the transformed dataset as YAML.
func YAML(w io.Writer, ds chart.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ds); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrExport, err)
	}
	return nil
}
