package spatialmath

import "github.com/pkg/errors"

// returns an error for an argument that should have been a 3-vector.
func newBadVectorLengthError(name string, length int) error {
	return errors.Errorf("%s must have exactly 3 elements, got %d", name, length)
}
