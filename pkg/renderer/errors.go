package renderer

import "errors"

var (
	// ErrWorkerFailed is returned when a render task stops abnormally.
	ErrWorkerFailed = errors.New("renderer: worker failed")

	// ErrInvalidImage is returned for an image sink without pixels.
	ErrInvalidImage = errors.New("renderer: image dimensions must be positive")

	// ErrInvalidCamera is returned for a camera that cannot form a view.
	ErrInvalidCamera = errors.New("renderer: invalid camera")
)
