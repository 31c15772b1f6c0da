package core

import (
	"errors"
)

var (
	// View construction over storage of the wrong byte size or alignment.
	ErrSizeMismatch = errors.New("aliased storage does not match view size")
	// Non-positive viewport width or height.
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
	// Field of view, aspect ratio or clip planes out of range.
	ErrInvalidProjection = errors.New("invalid perspective parameters")
	ErrInvalidConfig     = errors.New("invalid camera configuration")
	ErrCameraNotFound    = errors.New("camera not found")
	ErrWatcherClosed     = errors.New("config watcher already closed")
)
