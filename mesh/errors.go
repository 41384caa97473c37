package mesh

import "github.com/pkg/errors"

func newBadScaleError(scale float64) error {
	return errors.Errorf("scale must be greater than 0, got %f", scale)
}

func newZeroVolumeError() error {
	return errors.New("mesh encloses no volume, center of mass is undefined")
}

func newBadFaceIndexError(face, index, numPoints int) error {
	return errors.Errorf("face %d references point %d, mesh has %d points", face, index, numPoints)
}
