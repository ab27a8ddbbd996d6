package kinematics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinchain/utils"
)

// JointVector holds one scalar per actuated joint of a chain, e.g. joint positions or velocities.
// Index i corresponds to the i-th actuated joint in chain order.
//   - revolute values are in radians.
//   - prismatic values are in the chain's length unit.
type JointVector struct {
	data []float64
}

// NewJointVector returns a zero filled vector of length n.
func NewJointVector(n int) *JointVector {
	return &JointVector{data: make([]float64, n)}
}

// JointVectorFromFloats returns a vector holding a copy of values.
func JointVectorFromFloats(values ...float64) *JointVector {
	data := make([]float64, len(values))
	copy(data, values)
	return &JointVector{data: data}
}

// JointVectorFromVec returns a vector holding a copy of the elements of v.
func JointVectorFromVec(v mat.Vector) *JointVector {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return &JointVector{data: data}
}

// MoveJointVector transfers the storage of src to a new vector, leaving src empty.
func MoveJointVector(src *JointVector) *JointVector {
	moved := &JointVector{data: src.data}
	src.data = nil
	return moved
}

// Len returns the number of elements.
func (v *JointVector) Len() int {
	return len(v.data)
}

// At returns element i.
func (v *JointVector) At(i int) float64 {
	return v.data[i]
}

// Set sets element i to value.
func (v *JointVector) Set(i int, value float64) {
	v.data[i] = value
}

// Resize changes the length to n. Elements below min(old, n) are kept and new elements are zero.
func (v *JointVector) Resize(n int) {
	switch {
	case n < len(v.data):
		clear(v.data[n:])
		v.data = v.data[:n]
	case n > len(v.data):
		v.data = append(v.data, make([]float64, n-len(v.data))...)
	}
}

// Floats returns a copy of the elements.
func (v *JointVector) Floats() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return out
}

// VecDense returns a copy of the elements as a gonum vector. An empty vector returns nil.
func (v *JointVector) VecDense() *mat.VecDense {
	if len(v.data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(v.data), v.Floats())
}

// Clone returns an independent copy of the vector.
func (v *JointVector) Clone() *JointVector {
	return &JointVector{data: v.Floats()}
}

// Add stores a+b in dest. All three vectors must have the same length; dest may alias a or b.
func Add(a, b, dest *JointVector) {
	floats.AddTo(dest.data, a.data, b.data)
}

// Subtract stores a-b in dest. All three vectors must have the same length; dest may alias a or b.
func Subtract(a, b, dest *JointVector) {
	floats.SubTo(dest.data, a.data, b.data)
}

// Multiply stores k*a in dest. Both vectors must have the same length; dest may alias a.
func Multiply(a *JointVector, k float64, dest *JointVector) {
	floats.ScaleTo(dest.data, k, a.data)
}

// Divide stores a/k in dest. Both vectors must have the same length; dest may alias a.
func Divide(a *JointVector, k float64, dest *JointVector) {
	if len(a.data) != len(dest.data) {
		panic("kinematics: slice lengths do not match")
	}
	for i, value := range a.data {
		dest.data[i] = value / k
	}
}

// SetToZero sets every element of dest to zero.
func SetToZero(dest *JointVector) {
	clear(dest.data)
}

// Interpolate stores the vector that is by of the way from "from" to "to" in dest, e.g. 0.5 is halfway.
// All three vectors must have the same length.
func Interpolate(from, to *JointVector, by float64, dest *JointVector) {
	if len(from.data) != len(to.data) || len(from.data) != len(dest.data) {
		panic("kinematics: slice lengths do not match")
	}
	for i, f := range from.data {
		dest.data[i] = f + (to.data[i]-f)*by
	}
}

// L2Distance returns the euclidean distance between two vectors, or +Inf when their lengths differ.
func L2Distance(a, b *JointVector) float64 {
	if len(a.data) != len(b.data) {
		return math.Inf(1)
	}
	return floats.Distance(a.data, b.data, 2)
}

// JointVectorsAlmostEqual reports whether the vectors have the same length and every pair of elements differs by
// at most epsilon.
func JointVectorsAlmostEqual(a, b *JointVector, epsilon float64) bool {
	return utils.Float64sAlmostEqual(a.data, b.data, epsilon)
}
