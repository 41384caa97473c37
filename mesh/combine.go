package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Combine merges a child mesh into its parent's frame. The child's points
// are carried through the relative transform and appended after the parent's
// points, and the child's faces are re-indexed past the parent's point count
// so they keep referencing the same coordinates. The result shares no
// storage with either input.
func Combine(parent, child *Mesh, relative mgl64.Mat4) *Mesh {
	transformed := Transform(child, relative)
	offset := len(parent.points)

	points := make([]r3.Vector, 0, len(parent.points)+len(child.points))
	points = append(points, parent.points...)
	points = append(points, transformed.points...)

	faces := make([][3]int, 0, len(parent.faces)+len(child.faces))
	faces = append(faces, parent.faces...)
	for _, face := range child.faces {
		faces = append(faces, [3]int{face[0] + offset, face[1] + offset, face[2] + offset})
	}
	return &Mesh{points: points, faces: faces}
}
