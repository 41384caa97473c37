package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"

	"github.com/kinetree/kinetree/spatialmath"
)

// Transform applies a homogeneous transform to a mesh's points. Faces carry
// over untouched since a rigid transform preserves winding and topology.
func Transform(m *Mesh, t mgl64.Mat4) *Mesh {
	faces := make([][3]int, len(m.faces))
	copy(faces, m.faces)
	return &Mesh{points: spatialmath.TransformPoints(m.points, t), faces: faces}
}

// TransformNormals carries a batch of direction vectors through a
// transform's rotation block. Directions have no position, so the
// translation does not apply.
func TransformNormals(normals []r3.Vector, t mgl64.Mat4) []r3.Vector {
	rot := spatialmath.RotationBlock(t)
	out := make([]r3.Vector, len(normals))
	for i, n := range normals {
		v := rot.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
		out[i] = r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
	}
	return out
}
