package dataset

import "errors"

// Sentinel kinds for dataset loading errors.
var (
	ErrFetch  = errors.New("dataset fetch failed")
	ErrStatus = errors.New("dataset fetch returned non-2xx status")
	ErrDecode = errors.New("dataset decode failed")
	ErrRead   = errors.New("dataset read failed")
	ErrWatch  = errors.New("dataset watch failed")
)

// resultLabel maps a load error to its metrics label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrStatus):
		return "status"
	case errors.Is(err, ErrDecode):
		return "decode"
	case errors.Is(err, ErrRead):
		return "read"
	default:
		return "fetch"
	}
}
