package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/kinetree/kinetree/spatialmath"
	"github.com/kinetree/kinetree/utils"
)

func TestCombine(t *testing.T) {
	t.Run("identical triangles under the identity", func(t *testing.T) {
		combined := Combine(makeTriangle(), makeTriangle(), mgl64.Ident4())
		test.That(t, combined.Points(), test.ShouldHaveLength, 6)
		test.That(t, combined.Faces(), test.ShouldResemble, [][3]int{{0, 1, 2}, {3, 4, 5}})
		test.That(t, combined.Validate(), test.ShouldBeNil)
	})

	t.Run("child points pass through the relative transform", func(t *testing.T) {
		relative := spatialmath.NewTransform(r3.Vector{Z: 5}, spatialmath.RPY{})
		combined := Combine(makeTriangle(), makeTriangle(), relative)
		test.That(t, utils.R3VectorAlmostEqual(combined.Points()[3], r3.Vector{Z: 5}, 1e-12), test.ShouldBeTrue)
		test.That(t, utils.R3VectorAlmostEqual(combined.Points()[4], r3.Vector{X: 1, Z: 5}, 1e-12), test.ShouldBeTrue)
	})

	t.Run("result shares no storage with its inputs", func(t *testing.T) {
		parent := makeTriangle()
		child := makeTriangle()
		combined := Combine(parent, child, mgl64.Ident4())
		combined.Points()[0] = r3.Vector{X: 99}
		combined.Faces()[0] = [3]int{2, 1, 0}
		test.That(t, parent.Points()[0], test.ShouldResemble, r3.Vector{})
		test.That(t, parent.Faces()[0], test.ShouldResemble, [3]int{0, 1, 2})
	})

	t.Run("combined cube halves keep their volume centers", func(t *testing.T) {
		parent := makeCube(r3.Vector{X: -2}, 1)
		child := makeCube(r3.Vector{}, 1)
		// place the child cube at +2 on x via the relative transform
		relative := spatialmath.NewTransform(r3.Vector{X: 2}, spatialmath.RPY{Yaw: math.Pi / 2})
		combined := Combine(parent, child, relative)
		test.That(t, combined.Points(), test.ShouldHaveLength, 16)
		test.That(t, combined.Faces(), test.ShouldHaveLength, 24)
		com, err := CenterOfMass(combined)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, utils.R3VectorAlmostEqual(com, r3.Vector{}, 1e-9), test.ShouldBeTrue)
	})
}

func TestTransform(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		m := makeCube(r3.Vector{}, 1)
		moved := Transform(m, mgl64.Ident4())
		for i := range m.Points() {
			test.That(t, utils.R3VectorAlmostEqual(moved.Points()[i], m.Points()[i], 1e-12), test.ShouldBeTrue)
		}
		test.That(t, moved.Faces(), test.ShouldResemble, m.Faces())
	})

	t.Run("translation moves the volume center", func(t *testing.T) {
		tf := spatialmath.NewTransform(r3.Vector{X: 3, Y: -1}, spatialmath.RPY{})
		moved := Transform(makeCube(r3.Vector{}, 1), tf)
		com, err := CenterOfMass(moved)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, utils.R3VectorAlmostEqual(com, r3.Vector{X: 3, Y: -1}, 1e-9), test.ShouldBeTrue)
	})
}

func TestTransformNormals(t *testing.T) {
	tf := spatialmath.NewTransform(r3.Vector{X: 100}, spatialmath.RPY{Yaw: math.Pi / 2})
	normals := TransformNormals([]r3.Vector{{X: 1}}, tf)
	// the translation must not leak into direction vectors
	test.That(t, utils.R3VectorAlmostEqual(normals[0], r3.Vector{Y: 1}, 1e-9), test.ShouldBeTrue)
}
