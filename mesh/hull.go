package mesh

import "github.com/golang/geo/r3"

// Huller computes convex hulls of point sets. It is the boundary to an
// external hull algorithm; the quickhull subpackage provides the default
// implementation.
type Huller interface {
	// ConvexHull returns the hull of a point set as a reduced point set plus
	// triangulated facets indexing into it.
	ConvexHull(points []r3.Vector) ([]r3.Vector, [][3]int, error)
}

// ConvexHull computes the convex hull of a mesh's points and repackages the
// result as a mesh.
func ConvexHull(m *Mesh, h Huller) (*Mesh, error) {
	points, faces, err := h.ConvexHull(m.points)
	if err != nil {
		return nil, err
	}
	return &Mesh{points: points, faces: faces}, nil
}
