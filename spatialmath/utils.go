package spatialmath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/kinchain/utils"
)

// TranslationConfig is a serializable description of a point or direction.
type TranslationConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewTranslationConfig returns a TranslationConfig from an r3.Vector.
func NewTranslationConfig(vec r3.Vector) *TranslationConfig {
	return &TranslationConfig{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// ParseConfig converts a TranslationConfig into an r3.Vector.
func (cfg *TranslationConfig) ParseConfig() r3.Vector {
	if cfg == nil {
		return r3.Vector{}
	}
	return r3.Vector{X: cfg.X, Y: cfg.Y, Z: cfg.Z}
}

// AxisAngleConfig is a serializable axis angle whose angle is given in degrees.
type AxisAngleConfig struct {
	Theta float64 `json:"th"`
	RX    float64 `json:"x"`
	RY    float64 `json:"y"`
	RZ    float64 `json:"z"`
}

// ParseConfig converts an AxisAngleConfig into an Orientation. A nil config is no rotation.
func (cfg *AxisAngleConfig) ParseConfig() (Orientation, error) {
	if cfg == nil {
		return NewZeroOrientation(), nil
	}
	if cfg.RX == 0 && cfg.RY == 0 && cfg.RZ == 0 {
		if cfg.Theta != 0 {
			return nil, errors.New("axis angle orientation needs a non-zero axis")
		}
		return NewZeroOrientation(), nil
	}
	return &R4AA{Theta: utils.DegToRad(cfg.Theta), RX: cfg.RX, RY: cfg.RY, RZ: cfg.RZ}, nil
}
