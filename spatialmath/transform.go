// Package spatialmath defines the rigid-body transform and inertia operations
// used to assemble articulated models from trees of parts.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// If the xy norm of the first rotation column falls below this, the matrix is
// at gimbal lock and the Euler decomposition loses a degree of freedom.
const singularityEpsilon = 1e-6

// RPY represents Tait-Bryan angles in radians: a roll about x, then a pitch
// about y, then a yaw about z.
type RPY struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// NewTransform composes a homogeneous transform from a translation and a set
// of Tait-Bryan angles. The rotation block is yaw * pitch * roll, so roll is
// applied first, and the translation is applied after the full rotation.
func NewTransform(origin r3.Vector, rpy RPY) mgl64.Mat4 {
	rot := mgl64.HomogRotate3DZ(rpy.Yaw).Mul4(mgl64.HomogRotate3DY(rpy.Pitch)).Mul4(mgl64.HomogRotate3DX(rpy.Roll))
	return mgl64.Translate3D(origin.X, origin.Y, origin.Z).Mul4(rot)
}

// NewTransformFromSlices is NewTransform for callers holding raw xyz and rpy
// triples, such as the attributes of a URDF origin element. Both slices must
// have exactly three elements.
func NewTransformFromSlices(origin, rpy []float64) (mgl64.Mat4, error) {
	if len(origin) != 3 {
		return mgl64.Mat4{}, newBadVectorLengthError("origin", len(origin))
	}
	if len(rpy) != 3 {
		return mgl64.Mat4{}, newBadVectorLengthError("rpy", len(rpy))
	}
	return NewTransform(
		r3.Vector{X: origin[0], Y: origin[1], Z: origin[2]},
		RPY{Roll: rpy[0], Pitch: rpy[1], Yaw: rpy[2]},
	), nil
}

// InvertTransform returns the inverse of a homogeneous transform. The full
// matrix inverse is computed rather than the rigid-transform transpose
// shortcut, so the result stays correct even when the rotation block is not
// perfectly orthonormal.
func InvertTransform(t mgl64.Mat4) mgl64.Mat4 {
	return t.Inv()
}

// RotationBlock extracts the top-left 3x3 rotation block of a transform.
func RotationBlock(t mgl64.Mat4) mgl64.Mat3 {
	return t.Mat3()
}

// TranslationBlock extracts the translation column of a transform.
func TranslationBlock(t mgl64.Mat4) r3.Vector {
	return r3.Vector{X: t.At(0, 3), Y: t.At(1, 3), Z: t.At(2, 3)}
}

// TransformPoints applies a homogeneous transform to a batch of points. The
// points are augmented with a homogeneous coordinate, multiplied through the
// transform and projected back to three dimensions. The input is never
// mutated and the result is freshly allocated; an empty batch is allowed.
func TransformPoints(pts []r3.Vector, t mgl64.Mat4) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	if len(pts) == 0 {
		return out
	}
	data := make([]float64, 0, len(pts)*4)
	for _, p := range pts {
		data = append(data, p.X, p.Y, p.Z, 1)
	}
	homog := mat.NewDense(len(pts), 4, data)
	transposed := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			transposed.Set(i, j, t.At(j, i))
		}
	}
	var product mat.Dense
	product.Mul(homog, transposed)
	for i := range out {
		out[i] = r3.Vector{X: product.At(i, 0), Y: product.At(i, 1), Z: product.At(i, 2)}
	}
	return out
}

// EulerAnglesFromRotation extracts Tait-Bryan angles from a rotation matrix.
// At gimbal lock the yaw and roll axes coincide; yaw is then fixed at zero
// and roll absorbs the remaining rotation about the shared axis.
func EulerAnglesFromRotation(m mgl64.Mat3) RPY {
	sy := math.Sqrt(m.At(0, 0)*m.At(0, 0) + m.At(1, 0)*m.At(1, 0))
	if sy < singularityEpsilon {
		return RPY{
			Roll:  math.Atan2(-m.At(1, 2), m.At(1, 1)),
			Pitch: math.Atan2(-m.At(2, 0), sy),
			Yaw:   0,
		}
	}
	return RPY{
		Roll:  math.Atan2(m.At(2, 1), m.At(2, 2)),
		Pitch: math.Atan2(-m.At(2, 0), sy),
		Yaw:   math.Atan2(m.At(1, 0), m.At(0, 0)),
	}
}

// RotationQuaternion returns the quaternion equivalent of a rotation matrix,
// for callers that compose orientations without going through matrices.
func RotationQuaternion(m mgl64.Mat3) quat.Number {
	q := mgl64.Mat4ToQuat(m.Mat4())
	return quat.Number{Real: q.W, Imag: q.X(), Jmag: q.Y(), Kmag: q.Z()}
}
