package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/integro/internal/ode"
)

// Run bundles a trace with the configuration that produced it.
type Run struct {
	Model  string      `json:"model"`
	Method string      `json:"method"`
	Step   float64     `json:"step"`
	T0     float64     `json:"t0"`
	T1     float64     `json:"t1"`
	Steps  int         `json:"steps"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// NewRun packages a solution for JSON export.
func NewRun(model, method string, step, t0, t1 float64, sol *ode.Solution) Run {
	run := Run{
		Model:  model,
		Method: method,
		Step:   step,
		T0:     t0,
		T1:     t1,
		Steps:  sol.Len(),
		Times:  sol.Times,
		States: make([][]float64, len(sol.States)),
	}
	for i, s := range sol.States {
		run.States[i] = s
	}
	return run
}

// WriteJSON writes the run as indented JSON.
func WriteJSON(w io.Writer, run Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// SaveJSON writes the run to a file at path.
func SaveJSON(path string, run Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, run)
}
