package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pursuit-sim/internal/common"
	"pursuit-sim/internal/simulation"

	"github.com/google/go-cmp/cmp"
)

func result() simulation.Result {
	return simulation.Result{
		ID:      "run-1",
		Names:   []string{"A", "B"},
		Leaders: []int{1, -1},
		Trajectories: [][]common.Vector{
			{common.NewVector(0, 1, 0), common.NewVector(0.5, 1, 0)},
			{common.NewVector(0, 2, 0), common.NewVector(0, 3, -1.25)},
		},
		Iterations: 2,
	}
}

const want = `run,step,mover,x,y,z
run-1,1,A,0,1,0
run-1,1,B,0,2,0
run-1,2,A,0.5,1,0
run-1,2,B,0,3,-1.25
`

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, result()); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, sb.String()); d != "" {
		t.Error(d)
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "trajectory.csv")
	if err := WriteCSVFile(path, result()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Error(d)
	}
}
