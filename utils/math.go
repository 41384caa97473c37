// Package utils contains small numeric helpers shared across packages.
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Float64AlmostEqual reports whether two numbers are within epsilon of each
// other.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// R3VectorAlmostEqual reports whether two vectors are within epsilon of each
// other in every component.
func R3VectorAlmostEqual(a, b r3.Vector, epsilon float64) bool {
	return Float64AlmostEqual(a.X, b.X, epsilon) &&
		Float64AlmostEqual(a.Y, b.Y, epsilon) &&
		Float64AlmostEqual(a.Z, b.Z, epsilon)
}

// Mat3AlmostEqual reports whether two matrices are within epsilon of each
// other in every entry.
func Mat3AlmostEqual(a, b mgl64.Mat3, epsilon float64) bool {
	for i := range a {
		if !Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

// Mat4AlmostEqual reports whether two matrices are within epsilon of each
// other in every entry.
func Mat4AlmostEqual(a, b mgl64.Mat4, epsilon float64) bool {
	for i := range a {
		if !Float64AlmostEqual(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}
