// Package export writes simulation trajectories to files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"pursuit-sim/internal/simulation"
)

var header = []string{"run", "step", "mover", "x", "y", "z"}

// WriteCSV writes one row per mover per recorded step. Steps are numbered from 1.
func WriteCSV(w io.Writer, r simulation.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	format := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	for k := 0; k < r.Iterations; k++ {
		step := strconv.Itoa(k + 1)
		for i, name := range r.Names {
			p := r.Trajectories[i][k]
			if err := cw.Write([]string{r.ID, step, name, format(p.X), format(p.Y), format(p.Z)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the trajectories to path, creating parent directories.
func WriteCSVFile(path string, r simulation.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, r); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
