package kinematics

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/kinchain/spatialmath"
)

// jacobianRows is the number of rows of every Jacobian: linear x,y,z then angular x,y,z.
const jacobianRows = 6

// A Jacobian maps joint velocities to a spatial velocity. Column i is the twist produced by a unit velocity of
// the i-th actuated joint.
type Jacobian struct {
	columns int
	// data is nil when columns is zero
	data *mat.Dense
}

// NewJacobian returns a zero 6 x columns Jacobian.
func NewJacobian(columns int) *Jacobian {
	j := &Jacobian{columns: columns}
	if columns > 0 {
		j.data = mat.NewDense(jacobianRows, columns, nil)
	}
	return j
}

// JacobianFromDense returns a Jacobian holding a copy of m, which must have 6 rows.
func JacobianFromDense(m mat.Matrix) *Jacobian {
	rows, cols := m.Dims()
	if rows != jacobianRows {
		panic(mat.ErrShape)
	}
	j := &Jacobian{columns: cols}
	if cols > 0 {
		j.data = mat.DenseCopyOf(m)
	}
	return j
}

// Columns returns the number of columns, one per actuated joint.
func (j *Jacobian) Columns() int {
	return j.columns
}

// At returns the element at row r and column c.
func (j *Jacobian) At(r, c int) float64 {
	if j.data == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return j.data.At(r, c)
}

// Column returns column i as a twist.
func (j *Jacobian) Column(i int) spatialmath.Twist {
	if j.data == nil {
		panic(mat.ErrColAccess)
	}
	col := mat.Col(nil, i, j.data)
	return spatialmath.Twist{
		Linear:  r3.Vector{X: col[0], Y: col[1], Z: col[2]},
		Angular: r3.Vector{X: col[3], Y: col[4], Z: col[5]},
	}
}

// SetColumn overwrites column i with t.
func (j *Jacobian) SetColumn(i int, t spatialmath.Twist) {
	if j.data == nil {
		panic(mat.ErrColAccess)
	}
	j.data.SetCol(i, t.ToSlice())
}

// ChangeRefPoint moves the reference point of every column by v.
func (j *Jacobian) ChangeRefPoint(v r3.Vector) {
	for i := 0; i < j.columns; i++ {
		j.SetColumn(i, j.Column(i).RefPoint(v))
	}
}

// SetToZero sets every element to zero.
func (j *Jacobian) SetToZero() {
	if j.data != nil {
		j.data.Zero()
	}
}

// Dense returns a copy of the Jacobian as a gonum matrix, or nil when it has no columns.
func (j *Jacobian) Dense() *mat.Dense {
	if j.data == nil {
		return nil
	}
	return mat.DenseCopyOf(j.data)
}

// MultiplyJacobian returns the twist jac * qdot. The length of qdot must equal the number of Jacobian columns.
func MultiplyJacobian(jac *Jacobian, qdot *JointVector) spatialmath.Twist {
	if jac.columns != qdot.Len() {
		panic(mat.ErrShape)
	}
	if jac.columns == 0 {
		return spatialmath.NewZeroTwist()
	}
	var out mat.VecDense
	out.MulVec(jac.data, mat.NewVecDense(qdot.Len(), qdot.data))
	return spatialmath.Twist{
		Linear:  r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)},
		Angular: r3.Vector{X: out.AtVec(3), Y: out.AtVec(4), Z: out.AtVec(5)},
	}
}

// JacobiansAlmostEqual reports whether two Jacobians have the same shape and all elements within epsilon.
func JacobiansAlmostEqual(a, b *Jacobian, epsilon float64) bool {
	if a.columns != b.columns {
		return false
	}
	if a.columns == 0 {
		return true
	}
	return mat.EqualApprox(a.data, b.data, epsilon)
}
