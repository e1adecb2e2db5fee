// Package export serializes integration traces for external tools.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/integro/internal/linalg"
	"github.com/san-kum/integro/internal/ode"
)

// WriteCSV writes a trace as delimited text: a header row
// "t,y0,...,y{k-1}" followed by one row per time point. Values use the
// shortest decimal rendering that parses back to the same float64, so
// traces round-trip through ReadCSV exactly.
func WriteCSV(w io.Writer, sol *ode.Solution) error {
	if sol == nil || sol.Len() == 0 {
		return errors.New("export: empty solution")
	}

	cw := csv.NewWriter(w)
	dim := len(sol.States[0])

	header := make([]string, dim+1)
	header[0] = "t"
	for i := 0; i < dim; i++ {
		header[i+1] = "y" + strconv.Itoa(i)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, dim+1)
	for i, t := range sol.Times {
		row[0] = formatFloat(t)
		for j, v := range sol.States[i] {
			row[j+1] = formatFloat(v)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the trace to a file at path.
func SaveCSV(path string, sol *ode.Solution) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, sol)
}

// ReadCSV parses a trace written by WriteCSV.
func ReadCSV(r io.Reader) (*ode.Solution, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("export: reading header: %w", err)
	}
	if len(header) < 2 || header[0] != "t" {
		return nil, fmt.Errorf("export: unexpected header %v", header)
	}
	dim := len(header) - 1

	sol := &ode.Solution{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) != dim+1 {
			return nil, fmt.Errorf("export: row has %d fields, expected %d", len(row), dim+1)
		}

		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("export: parsing time %q: %w", row[0], err)
		}
		state := make(linalg.Vector, dim)
		for j := 0; j < dim; j++ {
			state[j], err = strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("export: parsing value %q: %w", row[j+1], err)
			}
		}

		sol.Times = append(sol.Times, t)
		sol.States = append(sol.States, state)
	}

	if sol.Len() == 0 {
		return nil, errors.New("export: no data rows")
	}
	return sol, nil
}

// LoadCSV reads a trace from a file at path.
func LoadCSV(path string) (*ode.Solution, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCSV(file)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
