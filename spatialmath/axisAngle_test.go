package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestR4AAToQuat(t *testing.T) {
	aa := &R4AA{Theta: math.Pi / 2, RZ: 2}
	q := aa.ToQuat()
	test.That(t, aa.RZ, test.ShouldEqual, 1.0)
	test.That(t, QuaternionAlmostEqual(q, quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)}, 1e-12), test.ShouldBeTrue)

	zero := &R4AA{Theta: 1}
	test.That(t, zero.ToQuat(), test.ShouldResemble, quat.Number{Real: 1})
}

func TestQuatToR4AA(t *testing.T) {
	for _, aa := range []*R4AA{
		{Theta: 0.3, RX: 1},
		{Theta: 1.2, RX: 0.6, RY: 0.8},
		{Theta: -2.5, RZ: 1},
	} {
		back := QuatToR4AA(aa.ToQuat())
		test.That(t, OrientationAlmostEqual(back, aa), test.ShouldBeTrue)
	}
	test.That(t, QuatToR4AA(quat.Number{Real: 1}).Theta, test.ShouldEqual, 0.0)
}

func TestR3Conversions(t *testing.T) {
	aa := &R4AA{Theta: 2, RY: 1}
	test.That(t, aa.ToR3(), test.ShouldResemble, r3.Vector{Y: 2})
	test.That(t, R3ToR4(r3.Vector{Y: 2}), test.ShouldResemble, aa)
	test.That(t, R3ToR4(r3.Vector{}), test.ShouldResemble, NewR4AA())
}

func TestRotateVector(t *testing.T) {
	o := &R4AA{Theta: math.Pi / 2, RX: 1}
	test.That(t, R3VectorAlmostEqual(RotateVector(o, r3.Vector{Y: 1}), r3.Vector{Z: 1}, 1e-12), test.ShouldBeTrue)
	test.That(t, R3VectorAlmostEqual(RotateVector(NewZeroOrientation(), r3.Vector{X: 1, Y: 2, Z: 3}), r3.Vector{X: 1, Y: 2, Z: 3}, 0), test.ShouldBeTrue)

	between := OrientationBetween(&R4AA{Theta: 0.2, RZ: 1}, &R4AA{Theta: 0.5, RZ: 1})
	test.That(t, OrientationAlmostEqual(between, &R4AA{Theta: 0.3, RZ: 1}), test.ShouldBeTrue)
}

func TestAxisAngleConfig(t *testing.T) {
	var cfg *AxisAngleConfig
	o, err := cfg.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(o, NewZeroOrientation()), test.ShouldBeTrue)

	cfg = &AxisAngleConfig{Theta: 90, RZ: 1}
	o, err = cfg.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(o, &R4AA{Theta: math.Pi / 2, RZ: 1}), test.ShouldBeTrue)

	_, err = (&AxisAngleConfig{Theta: 10}).ParseConfig()
	test.That(t, err, test.ShouldNotBeNil)

	tc := NewTranslationConfig(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, tc.ParseConfig(), test.ShouldResemble, r3.Vector{X: 1, Y: 2, Z: 3})
}
