package kinematics

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"go.viam.com/kinchain/spatialmath"
	"go.viam.com/kinchain/utils"
)

// JointConfig is a serializable joint. For rotational joints offset, min, max and home are in degrees; they are
// converted to radians by ParseConfig.
type JointConfig struct {
	ID        string                         `json:"id"`
	Type      string                         `json:"type"`
	Axis      *spatialmath.TranslationConfig `json:"axis,omitempty"`
	Origin    *spatialmath.TranslationConfig `json:"origin,omitempty"`
	Scale     *float64                       `json:"scale,omitempty"`
	Offset    float64                        `json:"offset,omitempty"`
	Inertia   float64                        `json:"inertia,omitempty"`
	Damping   float64                        `json:"damping,omitempty"`
	Stiffness float64                        `json:"stiffness,omitempty"`
	Min       *float64                       `json:"min,omitempty"`
	Max       *float64                       `json:"max,omitempty"`
	Home      float64                        `json:"home,omitempty"`
}

// NewJointConfig returns the config that ParseConfig turns back into an equal joint.
func NewJointConfig(j *Joint) *JointConfig {
	convert := func(v float64) float64 { return v }
	if j.Type().IsRotational() {
		convert = utils.RadToDeg
	}
	scale := j.Scale()
	cfg := &JointConfig{
		ID:        j.Name(),
		Type:      j.Type().String(),
		Scale:     &scale,
		Offset:    convert(j.Offset()),
		Inertia:   j.Inertia(),
		Damping:   j.Damping(),
		Stiffness: j.Stiffness(),
		Home:      convert(j.Home()),
	}
	limit := j.Limits()
	if limit != NoLimit() {
		lower, upper := convert(limit.Min), convert(limit.Max)
		cfg.Min, cfg.Max = &lower, &upper
	}
	if j.Type().needsAxis() {
		cfg.Axis = spatialmath.NewTranslationConfig(j.Axis())
		cfg.Origin = spatialmath.NewTranslationConfig(j.Origin())
	}
	return cfg
}

// Validate ensures all parts of the config are valid.
func (cfg *JointConfig) Validate(path string) error {
	if cfg.ID == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "id")
	}
	if cfg.Type == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "type")
	}
	jointType, err := ParseJointType(cfg.Type)
	if err != nil {
		return goutils.NewConfigValidationError(path, err)
	}
	if jointType.needsAxis() {
		if cfg.Axis == nil {
			return goutils.NewConfigValidationFieldRequiredError(path, "axis")
		}
		if cfg.Axis.ParseConfig().Norm2() == 0 {
			return goutils.NewConfigValidationError(path, NewZeroAxisError(cfg.ID))
		}
	}
	if cfg.Min != nil && cfg.Max != nil && *cfg.Min > *cfg.Max {
		return goutils.NewConfigValidationError(path, errors.Errorf("min %v is greater than max %v", *cfg.Min, *cfg.Max))
	}
	return nil
}

// ParseConfig converts a JointConfig into a Joint.
func (cfg *JointConfig) ParseConfig() (*Joint, error) {
	jointType, err := ParseJointType(cfg.Type)
	if err != nil {
		return nil, err
	}
	convert := func(v float64) float64 { return v }
	if jointType.IsRotational() {
		convert = utils.DegToRad
	}

	opts := []JointOption{
		WithOffset(convert(cfg.Offset)),
		WithInertia(cfg.Inertia),
		WithDamping(cfg.Damping),
		WithStiffness(cfg.Stiffness),
		WithHome(convert(cfg.Home)),
	}
	if cfg.Scale != nil {
		opts = append(opts, WithScale(*cfg.Scale))
	}
	if cfg.Min != nil || cfg.Max != nil {
		limit := NoLimit()
		if cfg.Min != nil {
			limit.Min = convert(*cfg.Min)
		}
		if cfg.Max != nil {
			limit.Max = convert(*cfg.Max)
		}
		opts = append(opts, WithLimits(limit.Min, limit.Max))
	}

	if jointType.needsAxis() {
		if cfg.Axis == nil {
			return nil, NewZeroAxisError(cfg.ID)
		}
		return NewAxisJoint(cfg.ID, cfg.Origin.ParseConfig(), cfg.Axis.ParseConfig(), jointType, opts...)
	}
	return NewJoint(cfg.ID, jointType, opts...)
}

// SegmentConfig is a serializable segment. A missing joint is a Fixed joint and a missing orientation is no
// rotation.
type SegmentConfig struct {
	ID          string                         `json:"id"`
	Joint       *JointConfig                   `json:"joint,omitempty"`
	Translation *spatialmath.TranslationConfig `json:"translation,omitempty"`
	Orientation *spatialmath.AxisAngleConfig   `json:"orientation,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *SegmentConfig) Validate(path string) error {
	if cfg.ID == "" {
		return goutils.NewConfigValidationFieldRequiredError(path, "id")
	}
	if cfg.Joint != nil {
		if err := cfg.Joint.Validate(fmt.Sprintf("%s.%s", path, "joint")); err != nil {
			return err
		}
	}
	if _, err := cfg.Orientation.ParseConfig(); err != nil {
		return goutils.NewConfigValidationError(fmt.Sprintf("%s.%s", path, "orientation"), err)
	}
	return nil
}

// ParseConfig converts a SegmentConfig into a Segment.
func (cfg *SegmentConfig) ParseConfig() (Segment, error) {
	var joint *Joint
	if cfg.Joint != nil {
		var err error
		joint, err = cfg.Joint.ParseConfig()
		if err != nil {
			return Segment{}, errors.Wrapf(err, "segment %q", cfg.ID)
		}
	}
	orientation, err := cfg.Orientation.ParseConfig()
	if err != nil {
		return Segment{}, errors.Wrapf(err, "segment %q", cfg.ID)
	}
	tip := spatialmath.NewPoseFromOrientation(cfg.Translation.ParseConfig(), orientation)
	return NewSegment(cfg.ID, joint, tip), nil
}

// ChainConfig is a serializable chain, with segments ordered from base to tip.
type ChainConfig struct {
	Name     string          `json:"name,omitempty"`
	Segments []SegmentConfig `json:"segments"`
}

// Validate ensures all parts of the config are valid.
func (cfg *ChainConfig) Validate(path string) error {
	if len(cfg.Segments) == 0 {
		return goutils.NewConfigValidationFieldRequiredError(path, "segments")
	}
	for idx := range cfg.Segments {
		if err := cfg.Segments[idx].Validate(fmt.Sprintf("%s.%s.%d", path, "segments", idx)); err != nil {
			return err
		}
	}
	return nil
}

// ParseConfig converts a ChainConfig into a Chain.
func (cfg *ChainConfig) ParseConfig() (*Chain, error) {
	chain := NewChain()
	for idx := range cfg.Segments {
		seg, err := cfg.Segments[idx].ParseConfig()
		if err != nil {
			return nil, err
		}
		chain.AddSegment(seg)
	}
	return chain, nil
}

// ChainConfigFromAttributes decodes a generic attribute map, using the json field names, into a validated
// ChainConfig. Unknown attributes are an error.
func ChainConfigFromAttributes(attributes map[string]interface{}) (*ChainConfig, error) {
	cfg := &ChainConfig{}
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Result:   cfg,
		Metadata: &md,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "failed to decode chain attributes")
	}
	if len(md.Unused) > 0 {
		return nil, errors.Errorf("unknown chain attributes %v", md.Unused)
	}
	if err := cfg.Validate("chain"); err != nil {
		return nil, err
	}
	return cfg, nil
}
