// Package kinematics models serial kinematic chains: joints that map one scalar input to a rigid body
// transform, segments that follow each joint with a fixed offset, chains that compose segments base to tip,
// and the joint space vectors and Jacobians that relate joint motion to end effector motion.
package kinematics

// A Chain is an ordered sequence of segments from base (index 0) to tip. It keeps the indices of the segments
// whose joint is actuated, so that index i of a JointVector refers to the i-th actuated joint in chain order.
type Chain struct {
	segments []Segment
	// joints holds indices into segments of every segment with an actuated joint
	joints []int
}

// NewChain returns a chain of copies of the given segments.
func NewChain(segments ...Segment) *Chain {
	c := &Chain{}
	for _, seg := range segments {
		c.AddSegment(seg)
	}
	return c
}

// AddSegment appends a copy of seg to the end of the chain.
func (c *Chain) AddSegment(seg Segment) {
	seg = seg.clone()
	if seg.joint.Type().IsActuated() {
		c.joints = append(c.joints, len(c.segments))
	}
	c.segments = append(c.segments, seg)
}

// AddChain appends a copy of every segment of other, in order. other is not modified, and may be c itself.
func (c *Chain) AddChain(other *Chain) {
	n := len(other.segments)
	for i := 0; i < n; i++ {
		c.AddSegment(other.segments[i])
	}
}

// SegmentCount returns the number of segments.
func (c *Chain) SegmentCount() int {
	return len(c.segments)
}

// JointCount returns the number of actuated joints, which is the length of joint vectors used with the chain.
func (c *Chain) JointCount() int {
	return len(c.joints)
}

// Segment returns segment i without checking that i is in range; an out of range index panics.
func (c *Chain) Segment(i int) Segment {
	return c.segments[i]
}

// Joint returns the i-th actuated joint, or an error when i is out of range.
func (c *Chain) Joint(i int) (*Joint, error) {
	if i < 0 || i >= len(c.joints) {
		return nil, NewJointIndexOutOfRangeError(i, len(c.joints))
	}
	return c.segments[c.joints[i]].joint, nil
}

// Segments returns the segments of the chain in order. The slice is a copy but the segments share joints with
// the chain.
func (c *Chain) Segments() []Segment {
	segs := make([]Segment, len(c.segments))
	copy(segs, c.segments)
	return segs
}

// Joints returns the actuated joints in chain order.
func (c *Chain) Joints() []*Joint {
	joints := make([]*Joint, 0, len(c.joints))
	for _, idx := range c.joints {
		joints = append(joints, c.segments[idx].joint)
	}
	return joints
}

// Clone returns a deep copy of the chain that shares no state with c.
func (c *Chain) Clone() *Chain {
	clone := &Chain{
		segments: make([]Segment, 0, len(c.segments)),
		joints:   make([]int, 0, len(c.joints)),
	}
	clone.AddChain(c)
	return clone
}

// JointLimits returns the position limits of the actuated joints in chain order.
func (c *Chain) JointLimits() []Limit {
	limits := make([]Limit, 0, len(c.joints))
	for _, idx := range c.joints {
		limits = append(limits, c.segments[idx].joint.Limits())
	}
	return limits
}

// HomePositions returns a joint vector holding the home position of every actuated joint.
func (c *Chain) HomePositions() *JointVector {
	home := NewJointVector(len(c.joints))
	for i, idx := range c.joints {
		home.Set(i, c.segments[idx].joint.Home())
	}
	return home
}

// ChainsAlmostEqual reports whether two chains have the same segment and joint counts and every pair of
// segments and joints is equal within epsilon, in order.
func ChainsAlmostEqual(a, b *Chain, epsilon float64) bool {
	if a.SegmentCount() != b.SegmentCount() || a.JointCount() != b.JointCount() {
		return false
	}
	for i := range a.segments {
		if !SegmentsAlmostEqual(a.segments[i], b.segments[i], epsilon) {
			return false
		}
	}
	for i := range a.joints {
		if !JointsAlmostEqual(a.segments[a.joints[i]].joint, b.segments[b.joints[i]].joint, epsilon) {
			return false
		}
	}
	return true
}
