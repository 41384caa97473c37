package spatialmath

import "github.com/go-gl/mathgl/mgl64"

// Moments holds the six independent entries of a symmetric inertia tensor,
// named as they appear in a URDF inertial element.
type Moments struct {
	Ixx float64
	Ixy float64
	Ixz float64
	Iyy float64
	Iyz float64
	Izz float64
}

// TensorToMoments reads the independent upper-triangular entries of an
// inertia tensor.
func TensorToMoments(i mgl64.Mat3) Moments {
	return Moments{
		Ixx: i.At(0, 0),
		Ixy: i.At(0, 1),
		Ixz: i.At(0, 2),
		Iyy: i.At(1, 1),
		Iyz: i.At(1, 2),
		Izz: i.At(2, 2),
	}
}

// Tensor reconstructs the symmetric 3x3 inertia tensor from its moments.
func (m Moments) Tensor() mgl64.Mat3 {
	// Symmetric, so the column-major layout reads the same as row-major.
	return mgl64.Mat3{
		m.Ixx, m.Ixy, m.Ixz,
		m.Ixy, m.Iyy, m.Iyz,
		m.Ixz, m.Iyz, m.Izz,
	}
}

// MomentsToTensor reconstructs an inertia tensor from a six-element array of
// moments ordered [Ixx, Iyy, Izz, Ixy, Ixz, Iyz].
func MomentsToTensor(m [6]float64) mgl64.Mat3 {
	return Moments{Ixx: m[0], Iyy: m[1], Izz: m[2], Ixy: m[3], Ixz: m[4], Iyz: m[5]}.Tensor()
}

// RotateInertiaTensor re-expresses an inertia tensor in a rotated frame,
// applying R^T * I * R. The rotation must be the pure rotation block of a
// transform; shifting the reference point is the aggregation step's job and
// must never be folded into this call.
func RotateInertiaTensor(i, r mgl64.Mat3) mgl64.Mat3 {
	return r.Transpose().Mul3(i).Mul3(r)
}
