package kinematics

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestJointVectorConstruction(t *testing.T) {
	v := NewJointVector(3)
	test.That(t, v.Floats(), test.ShouldResemble, []float64{0, 0, 0})

	values := []float64{1, 2, 3}
	fromFloats := JointVectorFromFloats(values...)
	values[0] = 100
	test.That(t, fromFloats.At(0), test.ShouldEqual, 1.)

	backing := []float64{4, 5}
	vec := mat.NewVecDense(2, backing)
	fromVec := JointVectorFromVec(vec)
	backing[1] = 50
	test.That(t, fromVec.Floats(), test.ShouldResemble, []float64{4, 5})

	moved := MoveJointVector(fromFloats)
	test.That(t, moved.Floats(), test.ShouldResemble, []float64{1, 2, 3})
	test.That(t, fromFloats.Len(), test.ShouldEqual, 0)

	out := moved.Floats()
	out[0] = -1
	test.That(t, moved.At(0), test.ShouldEqual, 1.)

	clone := moved.Clone()
	clone.Set(2, 9)
	test.That(t, moved.At(2), test.ShouldEqual, 3.)
	test.That(t, clone.At(2), test.ShouldEqual, 9.)

	dense := moved.VecDense()
	test.That(t, dense.Len(), test.ShouldEqual, 3)
	test.That(t, dense.AtVec(1), test.ShouldEqual, 2.)
	test.That(t, NewJointVector(0).VecDense(), test.ShouldBeNil)
	test.That(t, func() { moved.At(3) }, test.ShouldPanic)
}

func TestJointVectorResize(t *testing.T) {
	v := JointVectorFromFloats(1, 2, 3)
	v.Resize(5)
	test.That(t, v.Floats(), test.ShouldResemble, []float64{1, 2, 3, 0, 0})

	v.Resize(2)
	test.That(t, v.Floats(), test.ShouldResemble, []float64{1, 2})

	// growing again after a shrink does not resurrect old values
	v.Resize(3)
	test.That(t, v.Floats(), test.ShouldResemble, []float64{1, 2, 0})

	v.Resize(3)
	test.That(t, v.Len(), test.ShouldEqual, 3)
	v.Resize(0)
	test.That(t, v.Len(), test.ShouldEqual, 0)
}

func TestJointVectorArithmetic(t *testing.T) {
	a := JointVectorFromFloats(1, -2, 3.5, 1e-3)
	b := JointVectorFromFloats(0.25, 4, -1, 7)

	t.Run("add then subtract", func(t *testing.T) {
		d := NewJointVector(4)
		Add(a, b, d)
		test.That(t, JointVectorsAlmostEqual(d, JointVectorFromFloats(1.25, 2, 2.5, 7.001), 1e-12), test.ShouldBeTrue)
		d2 := NewJointVector(4)
		Subtract(d, b, d2)
		test.That(t, JointVectorsAlmostEqual(d2, a, 1e-12), test.ShouldBeTrue)
	})

	t.Run("scale then divide", func(t *testing.T) {
		for _, k := range []float64{2, -0.5, 1e6, 3} {
			d := NewJointVector(4)
			Multiply(a, k, d)
			test.That(t, d.At(1), test.ShouldAlmostEqual, -2*k)
			d2 := NewJointVector(4)
			Divide(d, k, d2)
			test.That(t, JointVectorsAlmostEqual(d2, a, 1e-9), test.ShouldBeTrue)
		}
	})

	t.Run("destination may alias a source", func(t *testing.T) {
		c := a.Clone()
		Add(c, b, c)
		Subtract(c, b, c)
		test.That(t, JointVectorsAlmostEqual(c, a, 1e-12), test.ShouldBeTrue)
		Multiply(c, 4, c)
		Divide(c, 4, c)
		test.That(t, JointVectorsAlmostEqual(c, a, 1e-12), test.ShouldBeTrue)
		SetToZero(c)
		test.That(t, c.Floats(), test.ShouldResemble, []float64{0, 0, 0, 0})
	})

	t.Run("length mismatch", func(t *testing.T) {
		short := NewJointVector(2)
		test.That(t, func() { Add(a, short, NewJointVector(4)) }, test.ShouldPanic)
		test.That(t, func() { Subtract(a, b, short) }, test.ShouldPanic)
		test.That(t, func() { Multiply(a, 1, short) }, test.ShouldPanic)
		test.That(t, func() { Divide(a, 1, short) }, test.ShouldPanic)
	})

	t.Run("interpolate", func(t *testing.T) {
		d := NewJointVector(4)
		Interpolate(a, b, 0.5, d)
		test.That(t, JointVectorsAlmostEqual(d, JointVectorFromFloats(0.625, 1, 1.25, 3.5005), 1e-12), test.ShouldBeTrue)
		Interpolate(a, b, 0, d)
		test.That(t, JointVectorsAlmostEqual(d, a, 0), test.ShouldBeTrue)
	})

	test.That(t, L2Distance(JointVectorFromFloats(0, 0), JointVectorFromFloats(3, 4)), test.ShouldAlmostEqual, 5)
	test.That(t, math.IsInf(L2Distance(a, NewJointVector(1)), 1), test.ShouldBeTrue)
}

func TestJointVectorEquality(t *testing.T) {
	a := JointVectorFromFloats(1, 2, math.Inf(1))
	test.That(t, JointVectorsAlmostEqual(a, a, 0), test.ShouldBeTrue)
	test.That(t, JointVectorsAlmostEqual(NewJointVector(0), NewJointVector(0), 0), test.ShouldBeTrue)

	b := JointVectorFromFloats(1, 2+1e-4, math.Inf(1))
	test.That(t, JointVectorsAlmostEqual(a, b, 1e-3), test.ShouldBeTrue)
	test.That(t, JointVectorsAlmostEqual(a, b, 1e-5), test.ShouldBeFalse)

	// lengths must match even when the shared prefix is equal
	test.That(t, JointVectorsAlmostEqual(JointVectorFromFloats(1, 2), JointVectorFromFloats(1, 2, 0), 1), test.ShouldBeFalse)
}
