// Package quickhull adapts the quickhull-go library to the mesh package's
// convex hull contract.
package quickhull

import (
	"github.com/golang/geo/r3"
	qh "github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

// Huller computes convex hulls with the quickhull algorithm.
type Huller struct{}

// ConvexHull returns the hull of the given points with triangulated,
// counter-clockwise wound facets. At least four points spanning a volume are
// required for a three-dimensional hull.
func (Huller) ConvexHull(points []r3.Vector) ([]r3.Vector, [][3]int, error) {
	if len(points) < 4 {
		return nil, nil, errors.Errorf("convex hull requires at least 4 points, got %d", len(points))
	}
	hull := new(qh.QuickHull).ConvexHull(points, true, false, 0)
	faces := make([][3]int, 0, len(hull.Indices)/3)
	for i := 0; i+2 < len(hull.Indices); i += 3 {
		faces = append(faces, [3]int{hull.Indices[i], hull.Indices[i+1], hull.Indices[i+2]})
	}
	return hull.Vertices, faces, nil
}
