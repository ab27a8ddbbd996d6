package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestTwistSlices(t *testing.T) {
	tw, err := NewTwistFromSlice([]float64{1, 2, 3, 4, 5, 6})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, tw.Linear, test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, tw.Angular, test.ShouldResemble, r3.Vector{X: 4, Y: 5, Z: 6})
	test.That(t, tw.ToSlice(), test.ShouldResemble, []float64{1, 2, 3, 4, 5, 6})

	_, err = NewTwistFromSlice([]float64{1, 2, 3})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTwistArithmetic(t *testing.T) {
	a := Twist{Linear: r3.Vector{X: 1, Y: 0, Z: 0}, Angular: r3.Vector{X: 0, Y: 0, Z: 1}}
	b := Twist{Linear: r3.Vector{X: 0, Y: 2, Z: 0}, Angular: r3.Vector{X: 1, Y: 0, Z: 0}}
	test.That(t, a.Add(b), test.ShouldResemble, Twist{Linear: r3.Vector{X: 1, Y: 2, Z: 0}, Angular: r3.Vector{X: 1, Y: 0, Z: 1}})
	test.That(t, a.Add(b).Sub(b), test.ShouldResemble, a)
	test.That(t, a.Mul(3), test.ShouldResemble, Twist{Linear: r3.Vector{X: 3, Y: 0, Z: 0}, Angular: r3.Vector{X: 0, Y: 0, Z: 3}})
	test.That(t, NewZeroTwist(), test.ShouldResemble, Twist{})
}

func TestTwistRefPoint(t *testing.T) {
	// spinning about z at 1 rad/s, a point one unit along x moves along +y
	spin := Twist{Angular: r3.Vector{Z: 1}}
	moved := spin.RefPoint(r3.Vector{X: 1})
	test.That(t, moved.Linear, test.ShouldResemble, r3.Vector{Y: 1})
	test.That(t, moved.Angular, test.ShouldResemble, spin.Angular)

	back := moved.RefPoint(r3.Vector{X: -1})
	test.That(t, TwistAlmostEqual(back, spin, 1e-12), test.ShouldBeTrue)
}

func TestTransformTwist(t *testing.T) {
	p := NewPoseFromOrientation(r3.Vector{X: 2}, &R4AA{Theta: math.Pi / 2, RZ: 1})
	tw := Twist{Linear: r3.Vector{X: 1}, Angular: r3.Vector{Z: 1}}

	rotated := RotateTwist(p.Orientation(), tw)
	test.That(t, TwistAlmostEqual(rotated, Twist{Linear: r3.Vector{Y: 1}, Angular: r3.Vector{Z: 1}}, 1e-12), test.ShouldBeTrue)

	// velocity at the origin of the outer frame: v + p x w = (0,1,0) + (2,0,0)x(0,0,1) = (0,-1,0)
	out := TransformTwist(p, tw)
	test.That(t, TwistAlmostEqual(out, Twist{Linear: r3.Vector{Y: -1}, Angular: r3.Vector{Z: 1}}, 1e-12), test.ShouldBeTrue)
}
