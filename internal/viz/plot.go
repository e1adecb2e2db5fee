// Package viz renders integration traces in the terminal.
package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/integro/internal/ode"
)

const (
	plotWidth  = 80
	plotHeight = 10
)

// Plot renders one state component of a trace as an ASCII chart.
func Plot(sol *ode.Solution, component int, caption string) (string, error) {
	if sol == nil || sol.Len() == 0 {
		return "", fmt.Errorf("viz: nothing to plot")
	}
	if component < 0 || component >= len(sol.States[0]) {
		return "", fmt.Errorf("viz: component %d out of range for dimension %d",
			component, len(sol.States[0]))
	}

	data := sol.Component(component)
	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
	return graph, nil
}
