package kinematics

import (
	"math"
	"sync"

	"github.com/golang/geo/r3"

	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

// DefaultJointName is given to joints constructed without a name.
const DefaultJointName = "NoName"

// Limit represents the lower and upper position bounds of a joint.
type Limit struct {
	Min float64
	Max float64
}

// NoLimit is the default, unbounded, joint limit.
func NoLimit() Limit {
	return Limit{Min: math.Inf(-1), Max: math.Inf(1)}
}

// jointParams holds the scalar parameters shared by every joint type.
type jointParams struct {
	scale     float64
	offset    float64
	inertia   float64
	damping   float64
	stiffness float64
	limit     Limit
	home      float64
}

func defaultJointParams() jointParams {
	return jointParams{scale: 1, limit: NoLimit()}
}

// JointOption sets one of the optional scalar parameters of a joint.
type JointOption func(*jointParams)

// WithScale sets the ratio between joint input and geometric motion. The default is 1.
func WithScale(scale float64) JointOption {
	return func(p *jointParams) {
		p.scale = scale
	}
}

// WithOffset sets the offset between the logical and physical zero position.
func WithOffset(offset float64) JointOption {
	return func(p *jointParams) {
		p.offset = offset
	}
}

// WithInertia sets the 1D inertia along or about the joint axis.
func WithInertia(inertia float64) JointOption {
	return func(p *jointParams) {
		p.inertia = inertia
	}
}

// WithDamping sets the 1D damping along or about the joint axis.
func WithDamping(damping float64) JointOption {
	return func(p *jointParams) {
		p.damping = damping
	}
}

// WithStiffness sets the 1D stiffness along or about the joint axis.
func WithStiffness(stiffness float64) JointOption {
	return func(p *jointParams) {
		p.stiffness = stiffness
	}
}

// WithLimits sets the lower and upper position limits.
func WithLimits(lower, upper float64) JointOption {
	return func(p *jointParams) {
		p.limit = Limit{Min: lower, Max: upper}
	}
}

// WithHome sets the homing position.
func WithHome(home float64) JointOption {
	return func(p *jointParams) {
		p.home = home
	}
}

// axisGeometry is only present on RotAxis and TransAxis joints.
type axisGeometry struct {
	axis   r3.Vector
	origin r3.Vector
}

// poseCache holds the last evaluated input and the pose it produced.
type poseCache struct {
	mu    sync.Mutex
	valid bool
	q     uint64
	pose  spatialmath.Pose
}

// A Joint is one parameterized degree of freedom with scalar dynamic properties. Apart from its pose cache a
// Joint is immutable once constructed.
type Joint struct {
	name      string
	jointType JointType
	jointParams
	geometry *axisGeometry
	cache    *poseCache
}

// NewJoint creates a joint that moves about or along one of the principal axes, or a Fixed joint.
// RotAxis and TransAxis joints need an axis and origin and must be built with NewAxisJoint.
func NewJoint(name string, jointType JointType, opts ...JointOption) (*Joint, error) {
	if !jointType.valid() {
		return nil, NewUnknownJointTypeError(jointType.String())
	}
	if jointType.needsAxis() {
		return nil, NewJointTypeError(jointType, "NewJoint")
	}
	return newJoint(name, jointType, nil, opts), nil
}

// NewAxisJoint creates a RotAxis or TransAxis joint. RotAxis joints rotate about the line through origin with
// direction axis; TransAxis joints translate along axis. The axis is normalized.
func NewAxisJoint(name string, origin, axis r3.Vector, jointType JointType, opts ...JointOption) (*Joint, error) {
	if !jointType.needsAxis() {
		return nil, NewJointTypeError(jointType, "NewAxisJoint")
	}
	if spatialmath.R3VectorAlmostEqual(r3.Vector{}, axis, 1e-8) {
		return nil, NewZeroAxisError(name)
	}
	return newJoint(name, jointType, &axisGeometry{axis: axis.Normalize(), origin: origin}, opts), nil
}

// NewFixedJoint creates a joint that does not move.
func NewFixedJoint(name string) *Joint {
	return newJoint(name, Fixed, nil, nil)
}

func newJoint(name string, jointType JointType, geometry *axisGeometry, opts []JointOption) *Joint {
	if name == "" {
		name = DefaultJointName
	}
	params := defaultJointParams()
	for _, opt := range opts {
		opt(&params)
	}
	return &Joint{
		name:        name,
		jointType:   jointType,
		jointParams: params,
		geometry:    geometry,
		cache:       &poseCache{},
	}
}

// Clone returns an independent copy of the joint with an empty pose cache.
func (j *Joint) Clone() *Joint {
	return &Joint{
		name:        j.name,
		jointType:   j.jointType,
		jointParams: j.jointParams,
		geometry:    j.geometry,
		cache:       &poseCache{},
	}
}

// Name returns the name of the joint.
func (j *Joint) Name() string {
	return j.name
}

// Type returns the joint type.
func (j *Joint) Type() JointType {
	return j.jointType
}

// Scale returns the ratio between joint input and geometric motion.
func (j *Joint) Scale() float64 {
	return j.scale
}

// Offset returns the offset between the logical and physical zero position.
func (j *Joint) Offset() float64 {
	return j.offset
}

// Inertia returns the 1D inertia of the joint.
func (j *Joint) Inertia() float64 {
	return j.inertia
}

// Damping returns the 1D damping of the joint.
func (j *Joint) Damping() float64 {
	return j.damping
}

// Stiffness returns the 1D stiffness of the joint.
func (j *Joint) Stiffness() float64 {
	return j.stiffness
}

// Limits returns the lower and upper position limits.
func (j *Joint) Limits() Limit {
	return j.limit
}

// Home returns the homing position.
func (j *Joint) Home() float64 {
	return j.home
}

// InLimits reports whether q lies within the joint's position limits.
func (j *Joint) InLimits(q float64) bool {
	return q >= j.limit.Min && q <= j.limit.Max
}

// Axis returns the direction the joint rotates about or translates along, e.g. (1,0,0) for RotX and TransX.
// A Fixed joint has a zero axis.
func (j *Joint) Axis() r3.Vector {
	switch j.jointType {
	case RotX, TransX:
		return r3.Vector{X: 1}
	case RotY, TransY:
		return r3.Vector{Y: 1}
	case RotZ, TransZ:
		return r3.Vector{Z: 1}
	case RotAxis, TransAxis:
		return j.geometry.axis
	default:
		return r3.Vector{}
	}
}

// Origin returns the point the axis of a RotAxis or TransAxis joint passes through, the zero vector otherwise.
func (j *Joint) Origin() r3.Vector {
	if j.geometry == nil {
		return r3.Vector{}
	}
	return j.geometry.origin
}

// Pose returns the pose between the beginning and the end of the joint at joint position q.
// The last result is cached and returned again when q repeats exactly.
func (j *Joint) Pose(q float64) spatialmath.Pose {
	if j.cache == nil {
		return j.computePose(q)
	}
	key := math.Float64bits(q)

	j.cache.mu.Lock()
	defer j.cache.mu.Unlock()
	if j.cache.valid && j.cache.q == key {
		return j.cache.pose
	}
	pose := j.computePose(q)
	j.cache.valid = true
	j.cache.q = key
	j.cache.pose = pose
	return pose
}

func (j *Joint) computePose(q float64) spatialmath.Pose {
	value := j.scale*q + j.offset
	switch j.jointType {
	case RotX, RotY, RotZ:
		return spatialmath.NewPoseFromOrientation(r3.Vector{}, spatialmath.NewR4AAFromAxis(value, j.Axis()))
	case RotAxis:
		// rotate about the line through origin: p' = R(p - o) + o
		rot := spatialmath.NewR4AAFromAxis(value, j.geometry.axis)
		origin := j.geometry.origin
		return spatialmath.NewPoseFromOrientation(origin.Sub(spatialmath.RotateVector(rot, origin)), rot)
	case TransX, TransY, TransZ, TransAxis:
		return spatialmath.NewPoseFromPoint(j.Axis().Mul(value))
	default:
		return spatialmath.NewZeroPose()
	}
}

// Twist returns the spatial velocity produced by joint velocity qdot, expressed in the joint's base frame with
// its base origin as reference point. It does not depend on the joint position.
func (j *Joint) Twist(qdot float64) spatialmath.Twist {
	rate := j.scale * qdot
	switch j.jointType {
	case RotX, RotY, RotZ:
		return spatialmath.Twist{Angular: j.Axis().Mul(rate)}
	case RotAxis:
		omega := j.geometry.axis.Mul(rate)
		return spatialmath.Twist{Linear: j.geometry.origin.Cross(omega), Angular: omega}
	case TransX, TransY, TransZ, TransAxis:
		return spatialmath.Twist{Linear: j.Axis().Mul(rate)}
	default:
		return spatialmath.NewZeroTwist()
	}
}

// AlmostEqual reports whether two joints have identical names and types and all scalar, axis, and origin
// parameters within epsilon.
func (j *Joint) AlmostEqual(other *Joint, epsilon float64) bool {
	return JointsAlmostEqual(j, other, epsilon)
}

// JointsAlmostEqual reports whether two joints have identical names and types and all scalar, axis, and origin
// parameters within epsilon.
func JointsAlmostEqual(a, b *Joint, epsilon float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.name == b.name &&
		a.jointType == b.jointType &&
		utils.Float64AlmostEqual(a.scale, b.scale, epsilon) &&
		utils.Float64AlmostEqual(a.offset, b.offset, epsilon) &&
		utils.Float64AlmostEqual(a.inertia, b.inertia, epsilon) &&
		utils.Float64AlmostEqual(a.damping, b.damping, epsilon) &&
		utils.Float64AlmostEqual(a.stiffness, b.stiffness, epsilon) &&
		utils.Float64AlmostEqual(a.limit.Max, b.limit.Max, epsilon) &&
		utils.Float64AlmostEqual(a.limit.Min, b.limit.Min, epsilon) &&
		utils.Float64AlmostEqual(a.home, b.home, epsilon) &&
		spatialmath.R3VectorAlmostEqual(a.Axis(), b.Axis(), epsilon) &&
		spatialmath.R3VectorAlmostEqual(a.Origin(), b.Origin(), epsilon)
}
