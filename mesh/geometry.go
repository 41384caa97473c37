package mesh

import "github.com/golang/geo/r3"

// CenterOfMass computes the volumetric center of mass of a mesh by
// decomposing it into signed tetrahedra rooted at the origin. The mesh must
// be closed and consistently wound with outward normals for the result to be
// physically meaningful; that precondition is not checked. A mesh enclosing
// no volume has no center of mass, reported as an error rather than a
// non-finite point.
func CenterOfMass(m *Mesh) (r3.Vector, error) {
	var totalVolume float64
	var weighted r3.Vector
	for _, face := range m.faces {
		p0, p1, p2 := m.points[face[0]], m.points[face[1]], m.points[face[2]]
		volume := p0.Dot(p1.Cross(p2)) / 6
		centroid := p0.Add(p1).Add(p2).Mul(1.0 / 4.0)
		totalVolume += volume
		weighted = weighted.Add(centroid.Mul(volume))
	}
	if totalVolume == 0 {
		return r3.Vector{}, newZeroVolumeError()
	}
	return weighted.Mul(1 / totalVolume), nil
}

// Scale resizes a mesh about a pivot, leaving its topology untouched. The
// pivot is the mesh's volumetric center of mass unless aboutOrigin is set,
// in which case it is the origin. The scale must be strictly positive.
func Scale(m *Mesh, scale float64, aboutOrigin bool) (*Mesh, error) {
	if scale <= 0 {
		return nil, newBadScaleError(scale)
	}
	var pivot r3.Vector
	if !aboutOrigin {
		var err error
		if pivot, err = CenterOfMass(m); err != nil {
			return nil, err
		}
	}
	points := make([]r3.Vector, len(m.points))
	for i, p := range m.points {
		points[i] = p.Sub(pivot).Mul(scale).Add(pivot)
	}
	faces := make([][3]int, len(m.faces))
	copy(faces, m.faces)
	return &Mesh{points: points, faces: faces}, nil
}
