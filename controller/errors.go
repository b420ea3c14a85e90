package controller

import (
	"errors"

	"github.com/automoto/tilemap-controller/shapes"
)

var (
	// ErrUnsupportedShape is returned by Move when a character shape cannot be
	// sampled.
	ErrUnsupportedShape = shapes.ErrUnsupportedShape

	// ErrUnresolvablePenetration is returned when a sample point is still
	// inside an obstacle after the maximum number of escape steps. The
	// best-effort correction has already been applied.
	ErrUnresolvablePenetration = errors.New("unable to resolve penetration")

	// ErrDegenerateDirection marks a sample point with no usable escape
	// direction. It is skipped rather than moved.
	ErrDegenerateDirection = errors.New("degenerate direction")
)
