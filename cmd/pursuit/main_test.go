package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWithoutView(t *testing.T) {
	out := filepath.Join(t.TempDir(), "two-body.csv")
	err := run(options{scenario: "two-body", view: "none", projection: "pca", out: out})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "run,step,mover,x,y,z\n") {
		t.Errorf("unexpected CSV header in %q", string(data[:min(len(data), 40)]))
	}
}

func TestRunReturnsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want string
	}{
		{"unknown scenario", options{scenario: "five-body", view: "none", projection: "pca"}, "loading scenario"},
		{"missing file", options{configPath: filepath.Join(t.TempDir(), "missing.toml"), view: "none", projection: "pca"}, "loading scenario"},
		{"unknown projection", options{scenario: "two-body", view: "none", projection: "fisheye"}, "unknown projection"},
		{"unknown view", options{scenario: "two-body", view: "hologram", projection: "rotate"}, "unknown view"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got error %v, want one mentioning %q", err, tt.want)
			}
		})
	}
}
