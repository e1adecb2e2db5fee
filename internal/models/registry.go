// Package models provides example ODE systems for the integrators.
package models

import (
	"fmt"
	"sort"

	"github.com/san-kum/integro/internal/linalg"
	"github.com/san-kum/integro/internal/ode"
)

// System couples an ODE right-hand side with a default initial state
// for use by the CLI.
type System interface {
	ode.System
	DefaultState() linalg.Vector
}

// Configurable exposes named scalar parameters for tuning from config
// files or flags.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// New constructs the named model with default parameters.
func New(name string) (System, error) {
	switch name {
	case "decay":
		return NewDecay(), nil
	case "logistic":
		return NewLogistic(), nil
	case "spring_mass":
		return NewSpringMass(), nil
	case "vanderpol":
		return NewVanDerPol(), nil
	default:
		return nil, fmt.Errorf("models: unknown model %q", name)
	}
}

// Names lists the available model names in sorted order.
func Names() []string {
	names := []string{"decay", "logistic", "spring_mass", "vanderpol"}
	sort.Strings(names)
	return names
}
