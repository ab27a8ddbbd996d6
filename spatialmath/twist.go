package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Twist is a 6 component spatial velocity: the linear velocity of a reference point and the angular velocity
// of the body, both expressed in the same coordinate frame.
type Twist struct {
	Linear  r3.Vector `json:"linear"`
	Angular r3.Vector `json:"angular"`
}

// NewZeroTwist returns a twist with no motion.
func NewZeroTwist() Twist {
	return Twist{}
}

// NewTwistFromSlice builds a twist from 6 values ordered linear x,y,z then angular x,y,z.
func NewTwistFromSlice(values []float64) (Twist, error) {
	if len(values) != 6 {
		return Twist{}, errors.Errorf("a twist needs 6 values, got %d", len(values))
	}
	return Twist{
		Linear:  r3.Vector{X: values[0], Y: values[1], Z: values[2]},
		Angular: r3.Vector{X: values[3], Y: values[4], Z: values[5]},
	}, nil
}

// ToSlice returns the twist as linear x,y,z followed by angular x,y,z.
func (t Twist) ToSlice() []float64 {
	return []float64{t.Linear.X, t.Linear.Y, t.Linear.Z, t.Angular.X, t.Angular.Y, t.Angular.Z}
}

// RefPoint returns the same motion described at a reference point displaced by v from the current one.
func (t Twist) RefPoint(v r3.Vector) Twist {
	return Twist{Linear: t.Linear.Add(t.Angular.Cross(v)), Angular: t.Angular}
}

// Add returns the elementwise sum of two twists sharing a reference point and frame.
func (t Twist) Add(other Twist) Twist {
	return Twist{Linear: t.Linear.Add(other.Linear), Angular: t.Angular.Add(other.Angular)}
}

// Sub returns the elementwise difference of two twists sharing a reference point and frame.
func (t Twist) Sub(other Twist) Twist {
	return Twist{Linear: t.Linear.Sub(other.Linear), Angular: t.Angular.Sub(other.Angular)}
}

// Mul scales both parts of the twist.
func (t Twist) Mul(k float64) Twist {
	return Twist{Linear: t.Linear.Mul(k), Angular: t.Angular.Mul(k)}
}

func (t Twist) String() string {
	return fmt.Sprintf("{Linear:(%.4f, %.4f, %.4f) Angular:(%.4f, %.4f, %.4f)}",
		t.Linear.X, t.Linear.Y, t.Linear.Z, t.Angular.X, t.Angular.Y, t.Angular.Z)
}

// RotateTwist re-expresses a twist in a rotated coordinate frame without moving its reference point.
func RotateTwist(o Orientation, t Twist) Twist {
	return Twist{Linear: RotateVector(o, t.Linear), Angular: RotateVector(o, t.Angular)}
}

// TransformTwist changes a twist expressed in frame B at B's origin into frame A at A's origin, where p is the
// pose of B in A.
func TransformTwist(p Pose, t Twist) Twist {
	rotated := RotateTwist(p.Orientation(), t)
	rotated.Linear = rotated.Linear.Add(p.Point().Cross(rotated.Angular))
	return rotated
}

// TwistAlmostEqual reports whether both parts of two twists agree within epsilon.
func TwistAlmostEqual(a, b Twist, epsilon float64) bool {
	return R3VectorAlmostEqual(a.Linear, b.Linear, epsilon) && R3VectorAlmostEqual(a.Angular, b.Angular, epsilon)
}
