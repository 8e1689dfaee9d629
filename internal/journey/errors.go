package journey

import "errors"

// ErrNotFound reports that no journey exists for the requested broker.
var ErrNotFound = errors.New("journey not found")

// ErrInvalidIndex reports a reorder index outside the step list.
var ErrInvalidIndex = errors.New("step index out of range")
