package heightmap

import "errors"

var (
	// ErrInvalidDetail is returned when a detail level (or sector LOD) is out of range.
	ErrInvalidDetail = errors.New("invalid detail level")
	// ErrInvalidRoughness is returned for negative or NaN roughness.
	ErrInvalidRoughness = errors.New("invalid roughness")
	// ErrOutOfRangeSector is returned when a sector does not fit inside the grid.
	ErrOutOfRangeSector = errors.New("sector out of range")
)
