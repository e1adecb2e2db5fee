package models

import (
	"fmt"

	"github.com/san-kum/integro/internal/linalg"
)

const (
	DefaultMass      = 1.0
	DefaultStiffness = 10.0
	DefaultDamping   = 0.5
)

// SpringMass is a damped mass-spring oscillator
// m*x'' + c*x' + k*x = 0, written in first-order form.
// State: [position, velocity].
type SpringMass struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

func NewSpringMass() *SpringMass {
	return &SpringMass{
		Mass:      DefaultMass,
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
	}
}

func (s *SpringMass) Dim() int { return 2 }

func (s *SpringMass) Derive(t float64, y linalg.Vector) linalg.Vector {
	pos, vel := y[0], y[1]
	acc := -(s.Stiffness*pos + s.Damping*vel) / s.Mass
	return linalg.Vector{vel, acc}
}

func (s *SpringMass) DefaultState() linalg.Vector {
	return linalg.Vector{1.0, 0.0}
}

// Energy returns the total mechanical energy; it decays monotonically
// when Damping > 0.
func (s *SpringMass) Energy(y linalg.Vector) float64 {
	pos, vel := y[0], y[1]
	return 0.5*s.Mass*vel*vel + 0.5*s.Stiffness*pos*pos
}

func (s *SpringMass) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":      s.Mass,
		"stiffness": s.Stiffness,
		"damping":   s.Damping,
	}
}

func (s *SpringMass) SetParam(name string, value float64) error {
	switch name {
	case "mass":
		if value <= 0 {
			return fmt.Errorf("models: mass must be positive, got %g", value)
		}
		s.Mass = value
	case "stiffness":
		s.Stiffness = value
	case "damping":
		s.Damping = value
	default:
		return fmt.Errorf("models: spring_mass has no parameter %q", name)
	}
	return nil
}
