package spatialmath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Dynamics is the mass, center of mass and inertia tensor of a rigid body.
// The inertia tensor is taken about the center of mass, and all three fields
// are expressed in one common frame.
type Dynamics struct {
	Mass         float64
	CenterOfMass r3.Vector
	Inertia      mgl64.Mat3
}

// CombineDynamics merges the mass properties of several rigid bodies into
// one. Each body's inertia tensor is shifted from its own center of mass to
// the combined center of mass with the parallel-axis theorem. A list carrying
// no mass yields a zero-mass body with its center of mass at the origin, and
// an empty list yields the zero record; neither is an error. Inputs are never
// mutated.
func CombineDynamics(bodies []Dynamics) Dynamics {
	var mass float64
	var weighted r3.Vector
	for _, b := range bodies {
		mass += b.Mass
		weighted = weighted.Add(b.CenterOfMass.Mul(b.Mass))
	}
	var com r3.Vector
	if mass > 0 {
		com = weighted.Mul(1 / mass)
	}

	var inertia mgl64.Mat3
	for _, b := range bodies {
		r := b.CenterOfMass.Sub(com)
		shift := mgl64.Ident3().Mul(r.Dot(r)).Sub(outerProduct(r, r)).Mul(b.Mass)
		inertia = inertia.Add(b.Inertia).Add(shift)
	}
	return Dynamics{Mass: mass, CenterOfMass: com, Inertia: inertia}
}

// outerProduct computes a * b^T.
func outerProduct(a, b r3.Vector) mgl64.Mat3 {
	return mgl64.Mat3{
		a.X * b.X, a.Y * b.X, a.Z * b.X,
		a.X * b.Y, a.Y * b.Y, a.Z * b.Y,
		a.X * b.Z, a.Y * b.Z, a.Z * b.Z,
	}
}
