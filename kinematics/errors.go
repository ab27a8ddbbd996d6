package kinematics

import (
	"github.com/pkg/errors"
)

// OOBErrString is a string that all out of bounds errors contain, so that they can be told apart from other errors.
const OOBErrString = "input out of bounds"

// ErrJointType is wrapped by every error caused by a joint type used with the wrong constructor.
var ErrJointType = errors.New("joint type exception")

// NewJointTypeError is returned when a joint type is given to a constructor that cannot build it.
func NewJointTypeError(jointType JointType, constructor string) error {
	return errors.Wrapf(ErrJointType, "joint type %s cannot be built with %s", jointType, constructor)
}

// NewUnknownJointTypeError is returned when a joint type is outside of the supported set.
func NewUnknownJointTypeError(name string) error {
	return errors.Errorf("unknown joint type %q", name)
}

// NewZeroAxisError is returned when an axis joint is given a zero length axis.
func NewZeroAxisError(name string) error {
	return errors.Errorf("cannot use zero vector as the axis of joint %q", name)
}

// NewJointIndexOutOfRangeError is returned when an actuated joint index is outside of the chain.
func NewJointIndexOutOfRangeError(index, count int) error {
	return errors.Errorf("joint index %d out of range, chain has %d actuated joints", index, count)
}

// NewIncorrectDoFError is returned when a joint vector does not match the chain's actuated joint count.
func NewIncorrectDoFError(actual, expected int) error {
	return errors.Errorf("number of inputs does not match DoF, expected %d but got %d", expected, actual)
}

// NewOutOfBoundsError is returned alongside a computed result when a joint input violates its limits.
func NewOutOfBoundsError(jointName string, value float64, limit Limit) error {
	return errors.Errorf("joint %q: %.5f %s [%.5f, %.5f]", jointName, value, OOBErrString, limit.Min, limit.Max)
}
