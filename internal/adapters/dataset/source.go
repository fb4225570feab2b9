// Package dataset loads the rider dataset from a remote URL or a local file.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/okian/veloplot/internal/domain/model"
)

// DefaultURL is the published cyclist dataset.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/cyclist-data.json"

// Source kinds reported in logs and metrics.
const (
	KindHTTP = "http"
	KindFile = "file"
)

// Source yields the raw dataset.
type Source interface {
	// Load returns every record of the dataset. It does not retry.
	Load(ctx context.Context) ([]model.RawRecord, error)
	// Kind is KindHTTP or KindFile.
	Kind() string
	// Location is the URL or path the source reads.
	Location() string
}

// decode reads a JSON array of records from r. Elements are decoded one by
// one so a malformed row is rejected later instead of failing the payload.
func decode(r io.Reader) ([]model.RawRecord, error) {
	var elems []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&elems); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if elems == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON array", ErrDecode)
	}
	records := make([]model.RawRecord, len(elems))
	for i, e := range elems {
		records[i] = model.DecodeRawRecord(e)
	}
	return records, nil
}
