package osm2map

import "github.com/pkg/errors"

var (
	// ErrNoPoints is returned when the input has no points at all: no origin can be computed
	ErrNoPoints = errors.New("no points loaded")

	ErrEmptyTag  = errors.New("empty tag value")
	ErrBadNumber = errors.New("tag value is not a positive number")

	ErrUnknownOriginPolicy   = errors.New("unknown origin policy")
	ErrUnknownRecenterPolicy = errors.New("unknown recenter policy")

	ErrNoPath        = errors.New("no path between nodes")
	ErrUnknownNodeID = errors.New("node is not in the road graph")
)
