package kinematics

import (
	"go.uber.org/multierr"

	"go.viam.com/kinchain/logging"
	"go.viam.com/kinchain/spatialmath"
)

// ChainSolver computes forward position, forward velocity, and the geometric Jacobian of a chain. All results are
// expressed in the chain base frame.
type ChainSolver struct {
	chain  *Chain
	logger logging.Logger
}

// NewChainSolver returns a solver for a snapshot of chain; later changes to chain are not seen by the solver.
// A nil logger discards all output.
func NewChainSolver(chain *Chain, logger logging.Logger) *ChainSolver {
	if logger == nil {
		logger = logging.NewBlankLogger("kinematics")
	}
	return &ChainSolver{chain: chain.Clone(), logger: logger}
}

// Chain returns a copy of the chain the solver works on.
func (s *ChainSolver) Chain() *Chain {
	return s.chain.Clone()
}

// checkDoF returns an error when any vector length does not match the joint count.
func (s *ChainSolver) checkDoF(vectors ...*JointVector) error {
	expected := s.chain.JointCount()
	for _, v := range vectors {
		if v.Len() != expected {
			return NewIncorrectDoFError(v.Len(), expected)
		}
	}
	return nil
}

// checkLimits returns the combined out of bounds errors of every joint position outside its limits.
func (s *ChainSolver) checkLimits(q *JointVector) error {
	var errAll error
	for i, joint := range s.chain.Joints() {
		value := q.At(i)
		if joint.InLimits(value) {
			continue
		}
		limit := joint.Limits()
		s.logger.Debugw("joint input out of limits", "joint", joint.Name(), "value", value, "min", limit.Min, "max", limit.Max)
		multierr.AppendInto(&errAll, NewOutOfBoundsError(joint.Name(), value, limit))
	}
	return errAll
}

// SegmentPoses returns the pose of every segment tip in the base frame at joint positions q.
// Out of limit positions are still evaluated and reported in the returned error.
func (s *ChainSolver) SegmentPoses(q *JointVector) ([]spatialmath.Pose, error) {
	if err := s.checkDoF(q); err != nil {
		return nil, err
	}
	oob := s.checkLimits(q)
	poses := make([]spatialmath.Pose, 0, s.chain.SegmentCount())
	total := spatialmath.NewZeroPose()
	j := 0
	for _, seg := range s.chain.segments {
		var input float64
		if seg.joint.Type().IsActuated() {
			input = q.At(j)
			j++
		}
		total = spatialmath.Compose(total, seg.Pose(input))
		poses = append(poses, total)
	}
	return poses, oob
}

// ForwardPosition returns the pose of the chain tip in the base frame at joint positions q.
// Out of limit positions are still evaluated and reported in the returned error.
func (s *ChainSolver) ForwardPosition(q *JointVector) (spatialmath.Pose, error) {
	poses, err := s.SegmentPoses(q)
	if poses == nil {
		return nil, err
	}
	if len(poses) == 0 {
		return spatialmath.NewZeroPose(), err
	}
	return poses[len(poses)-1], err
}

// ForwardVelocity returns the pose of the chain tip and its twist, expressed in the base frame with the tip as
// reference point, at joint positions q and joint velocities qdot.
func (s *ChainSolver) ForwardVelocity(q, qdot *JointVector) (spatialmath.Pose, spatialmath.Twist, error) {
	if err := s.checkDoF(q, qdot); err != nil {
		return nil, spatialmath.NewZeroTwist(), err
	}
	oob := s.checkLimits(q)
	pose := spatialmath.NewZeroPose()
	twist := spatialmath.NewZeroTwist()
	j := 0
	for _, seg := range s.chain.segments {
		var input, rate float64
		if seg.joint.Type().IsActuated() {
			input, rate = q.At(j), qdot.At(j)
			j++
		}
		next := spatialmath.Compose(pose, seg.Pose(input))
		twist = twist.RefPoint(next.Point().Sub(pose.Point())).
			Add(spatialmath.RotateTwist(pose.Orientation(), seg.Twist(input, rate)))
		pose = next
	}
	return pose, twist, oob
}

// Jacobian returns the geometric Jacobian of the chain at joint positions q. Column i is the tip twist, in the base
// frame with the tip as reference point, produced by a unit velocity of the i-th actuated joint.
func (s *ChainSolver) Jacobian(q *JointVector) (*Jacobian, error) {
	if err := s.checkDoF(q); err != nil {
		return nil, err
	}
	oob := s.checkLimits(q)
	jac := NewJacobian(s.chain.JointCount())
	pose := spatialmath.NewZeroPose()
	j := 0
	for _, seg := range s.chain.segments {
		actuated := seg.joint.Type().IsActuated()
		var input float64
		if actuated {
			input = q.At(j)
		}
		total := spatialmath.Compose(pose, seg.Pose(input))
		// move the columns already filled to the new tip
		jac.ChangeRefPoint(total.Point().Sub(pose.Point()))
		if actuated {
			jac.SetColumn(j, spatialmath.RotateTwist(pose.Orientation(), seg.Twist(input, 1)))
			j++
		}
		pose = total
	}
	return jac, oob
}
