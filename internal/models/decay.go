package models

import (
	"fmt"

	"github.com/san-kum/integro/internal/linalg"
)

// Decay is the scalar test equation dy/dt = -rate*y with exact solution
// y0*exp(-rate*t). Useful for verifying integrator accuracy.
type Decay struct {
	Rate float64
}

func NewDecay() *Decay {
	return &Decay{Rate: 1.0}
}

func (d *Decay) Dim() int { return 1 }

func (d *Decay) Derive(t float64, y linalg.Vector) linalg.Vector {
	return linalg.Vector{-d.Rate * y[0]}
}

func (d *Decay) DefaultState() linalg.Vector {
	return linalg.Vector{1.0}
}

func (d *Decay) GetParams() map[string]float64 {
	return map[string]float64{"rate": d.Rate}
}

func (d *Decay) SetParam(name string, value float64) error {
	if name != "rate" {
		return fmt.Errorf("models: decay has no parameter %q", name)
	}
	d.Rate = value
	return nil
}
