package render

import "errors"

// Error constants
var (
	ErrNilChart      = errors.New("render: chart is nil")
	ErrTemplate      = errors.New("render: template execution failed")
	ErrRaster        = errors.New("render: raster encoding failed")
	ErrExport        = errors.New("render: dataset export failed")
	ErrUnknownFormat = errors.New("render: unknown format")
)
