package kinematics

import "strings"

// JointType enumerates the single degree of freedom motions a joint can have.
type JointType int

const (
	// RotAxis rotates about an arbitrary axis passing through an arbitrary origin.
	RotAxis JointType = iota
	// RotX rotates about the local x axis.
	RotX
	// RotY rotates about the local y axis.
	RotY
	// RotZ rotates about the local z axis.
	RotZ
	// TransAxis translates along an arbitrary axis.
	TransAxis
	// TransX translates along the local x axis.
	TransX
	// TransY translates along the local y axis.
	TransY
	// TransZ translates along the local z axis.
	TransZ
	// Fixed does not move and contributes no actuated degree of freedom.
	Fixed
	// None is a synonym of Fixed.
	None = Fixed
)

var jointTypeNames = map[JointType]string{
	RotAxis:   "RotAxis",
	RotX:      "RotX",
	RotY:      "RotY",
	RotZ:      "RotZ",
	TransAxis: "TransAxis",
	TransX:    "TransX",
	TransY:    "TransY",
	TransZ:    "TransZ",
	Fixed:     "None",
}

// String returns the name of the joint type. Fixed joints are named "None".
func (jt JointType) String() string {
	if name, ok := jointTypeNames[jt]; ok {
		return name
	}
	return "Unknown"
}

// ParseJointType returns the joint type with the given name. "Fixed" is accepted as a synonym of "None".
func ParseJointType(name string) (JointType, error) {
	for jt, n := range jointTypeNames {
		if strings.EqualFold(n, name) {
			return jt, nil
		}
	}
	if strings.EqualFold(name, "Fixed") {
		return Fixed, nil
	}
	return Fixed, NewUnknownJointTypeError(name)
}

func (jt JointType) valid() bool {
	return jt >= RotAxis && jt <= Fixed
}

// IsActuated reports whether the joint type contributes an entry to joint space vectors.
func (jt JointType) IsActuated() bool {
	return jt.valid() && jt != Fixed
}

// IsRotational reports whether the joint type is one of the rotational variants.
func (jt JointType) IsRotational() bool {
	return jt >= RotAxis && jt <= RotZ
}

// IsTranslational reports whether the joint type is one of the translational variants.
func (jt JointType) IsTranslational() bool {
	return jt >= TransAxis && jt <= TransZ
}

// needsAxis reports whether the joint type carries its own axis and origin.
func (jt JointType) needsAxis() bool {
	return jt == RotAxis || jt == TransAxis
}
