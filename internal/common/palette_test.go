package common

import "testing"

func TestPalette(t *testing.T) {
	if got := Palette(0); len(got) != 0 {
		t.Errorf("Palette(0) returned %d colors", len(got))
	}

	colors := Palette(10)
	if len(colors) != 10 {
		t.Fatalf("Palette(10) returned %d colors", len(colors))
	}
	seen := map[[3]uint8]bool{}
	for _, c := range colors[:8] {
		key := [3]uint8{c.R, c.G, c.B}
		if seen[key] {
			t.Errorf("color %v repeated within the first eight", c)
		}
		seen[key] = true
		if c.A != 255 {
			t.Errorf("color %v is not opaque", c)
		}
	}
	if colors[8] != colors[0] || colors[9] != colors[1] {
		t.Error("palette does not cycle after eight colors")
	}
}
