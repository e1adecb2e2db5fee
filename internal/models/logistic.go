package models

import (
	"fmt"

	"github.com/san-kum/integro/internal/linalg"
)

// Logistic is the logistic growth equation
// dy/dt = rate*y*(1 - y/capacity).
type Logistic struct {
	Rate     float64
	Capacity float64
}

func NewLogistic() *Logistic {
	return &Logistic{Rate: 1.0, Capacity: 1.0}
}

func (l *Logistic) Dim() int { return 1 }

func (l *Logistic) Derive(t float64, y linalg.Vector) linalg.Vector {
	return linalg.Vector{l.Rate * y[0] * (1 - y[0]/l.Capacity)}
}

func (l *Logistic) DefaultState() linalg.Vector {
	return linalg.Vector{0.1}
}

func (l *Logistic) GetParams() map[string]float64 {
	return map[string]float64{
		"rate":     l.Rate,
		"capacity": l.Capacity,
	}
}

func (l *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "rate":
		l.Rate = value
	case "capacity":
		if value <= 0 {
			return fmt.Errorf("models: capacity must be positive, got %g", value)
		}
		l.Capacity = value
	default:
		return fmt.Errorf("models: logistic has no parameter %q", name)
	}
	return nil
}
