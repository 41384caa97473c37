// Package mesh provides an indexed triangle mesh and the geometric
// operations used to merge the surfaces of rigid bodies into one model.
package mesh

import (
	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
)

// Mesh is a triangulated surface: an ordered point set and a list of faces,
// each face a triple of indices into the point set. Point order is meaningful
// because faces reference it; points referenced by no face are permitted.
type Mesh struct {
	points []r3.Vector
	faces  [][3]int
}

// New returns a mesh over the given points and faces. The slices are not
// copied; callers that need independent storage should Clone the result.
func New(points []r3.Vector, faces [][3]int) *Mesh {
	return &Mesh{points: points, faces: faces}
}

// Points returns the mesh's point set.
func (m *Mesh) Points() []r3.Vector {
	return m.points
}

// Faces returns the mesh's faces as triples of point indices.
func (m *Mesh) Faces() [][3]int {
	return m.faces
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *Mesh) Clone() *Mesh {
	points := make([]r3.Vector, len(m.points))
	copy(points, m.points)
	faces := make([][3]int, len(m.faces))
	copy(faces, m.faces)
	return &Mesh{points: points, faces: faces}
}

// Validate checks that every face index is in range, reporting all
// violations rather than stopping at the first.
func (m *Mesh) Validate() error {
	var err error
	for i, face := range m.faces {
		for _, index := range face {
			if index < 0 || index >= len(m.points) {
				err = multierr.Append(err, newBadFaceIndexError(i, index, len(m.points)))
			}
		}
	}
	return err
}
