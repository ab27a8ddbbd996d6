package kinematics

import (
	"go.viam.com/kinchain/spatialmath"
)

// A Segment is a joint followed by a rigid transform from the joint's end to the segment tip.
type Segment struct {
	name  string
	joint *Joint
	tip   spatialmath.Pose
}

// NewSegment creates a segment. A nil joint is replaced by a Fixed joint and a nil tip by the identity pose.
func NewSegment(name string, joint *Joint, tip spatialmath.Pose) Segment {
	if joint == nil {
		joint = NewFixedJoint("")
	}
	if tip == nil {
		tip = spatialmath.NewZeroPose()
	}
	return Segment{name: name, joint: joint, tip: tip}
}

// Name returns the name of the segment.
func (s Segment) Name() string {
	return s.name
}

// Joint returns the joint at the base of the segment.
func (s Segment) Joint() *Joint {
	return s.joint
}

// FrameToTip returns the fixed pose from the end of the joint to the segment tip.
func (s Segment) FrameToTip() spatialmath.Pose {
	return s.tip
}

// Pose returns the pose of the segment tip relative to the segment base at joint position q.
func (s Segment) Pose(q float64) spatialmath.Pose {
	return spatialmath.Compose(s.joint.Pose(q), s.tip)
}

// Twist returns the velocity of the segment tip, expressed in the segment base frame, at joint position q and
// joint velocity qdot.
func (s Segment) Twist(q, qdot float64) spatialmath.Twist {
	tipInBase := spatialmath.TransformPoint(s.joint.Pose(q), s.tip.Point())
	return s.joint.Twist(qdot).RefPoint(tipInBase)
}

func (s Segment) clone() Segment {
	return Segment{name: s.name, joint: s.joint.Clone(), tip: s.tip}
}

// SegmentsAlmostEqual compares names exactly and joints and tip poses within epsilon.
func SegmentsAlmostEqual(a, b Segment, epsilon float64) bool {
	return a.name == b.name &&
		JointsAlmostEqual(a.joint, b.joint, epsilon) &&
		spatialmath.PoseAlmostEqualEps(a.tip, b.tip, epsilon)
}
