package firefly

import (
	"bytes"
	"math/rand"
	"testing"
)

func seedrng(seed int64) {
	Rand = rand.New(rand.NewSource(seed))
}

func TestNewValidation(t *testing.T) {
	box := Box{Min: Point{X: 0, Y: 0}, Max: Point{X: 1, Y: 1}}

	if _, err := New(0, box); err != InvalidSizeErr {
		t.Errorf("n=0: expected InvalidSizeErr, got %v", err)
	}
	if _, err := New(-3, box); err != InvalidSizeErr {
		t.Errorf("n=-3: expected InvalidSizeErr, got %v", err)
	}

	inverted := Box{Min: Point{X: 2, Y: 0}, Max: Point{X: 1, Y: 1}}
	if _, err := New(5, inverted); err != InvalidBoundsErr {
		t.Errorf("inverted x: expected InvalidBoundsErr, got %v", err)
	}
	inverted = Box{Min: Point{X: 0, Y: 3}, Max: Point{X: 1, Y: 1}}
	if _, err := New(5, inverted); err != InvalidBoundsErr {
		t.Errorf("inverted y: expected InvalidBoundsErr, got %v", err)
	}
}

func TestNewInit(t *testing.T) {
	seedrng(7)
	box := Box{Min: Point{X: -2, Y: -3}, Max: Point{X: 4, Y: 5}}

	n := 1000
	p, err := New(n, box)
	if err != nil {
		t.Fatal(err)
	}

	if p.Len() != n {
		t.Fatalf("expected %v flies, got %v", n, p.Len())
	}
	for i := 0; i < n; i++ {
		if !box.In(p.X[i], p.Y[i]) {
			t.Errorf("fly %v initialized outside the box: (%v, %v)", i, p.X[i], p.Y[i])
		}
		if p.Light[i] != 0 {
			t.Errorf("fly %v light initialized to %v, want 0", i, p.Light[i])
		}
	}
}

func TestSnapshot(t *testing.T) {
	seedrng(7)
	box := Box{Min: Point{X: 0, Y: 0}, Max: Point{X: 1, Y: 1}}
	p, err := New(10, box)
	if err != nil {
		t.Fatal(err)
	}
	p.Light[3] = 42

	dup := p.Snapshot()
	for i := 0; i < p.Len(); i++ {
		if dup.X[i] != p.X[i] || dup.Y[i] != p.Y[i] || dup.Light[i] != p.Light[i] {
			t.Fatalf("snapshot differs at index %v", i)
		}
	}

	// mutating one must never affect the other
	dup.X[0] = -99
	dup.Light[3] = -99
	if p.X[0] == -99 || p.Light[3] == -99 {
		t.Errorf("snapshot shares storage with its source")
	}
}

func TestCopyFromSizeMismatch(t *testing.T) {
	box := Box{Min: Point{X: 0, Y: 0}, Max: Point{X: 1, Y: 1}}
	a, _ := New(4, box)
	b, _ := New(5, box)

	defer func() {
		if recover() == nil {
			t.Errorf("CopyFrom on mismatched sizes did not panic")
		}
	}()
	a.CopyFrom(b)
}

func TestBest(t *testing.T) {
	p := &Population{
		X:     []float64{1, 2, 3, 4},
		Y:     []float64{5, 6, 7, 8},
		Light: []float64{0.5, 3, 1, -2},
	}
	if i := p.Best(); i != 1 {
		t.Errorf("expected brightest index 1, got %v", i)
	}
	if pt := p.At(1); pt.X != 2 || pt.Y != 6 {
		t.Errorf("expected best at (2, 6), got %+v", pt)
	}
}

func TestWriteCoords(t *testing.T) {
	p := &Population{
		X:     []float64{0.1, 0.456, -1},
		Y:     []float64{0.2, 0.5, 2.346},
		Light: []float64{0, 0, 0},
	}

	var buf bytes.Buffer
	if err := p.WriteCoords(&buf); err != nil {
		t.Fatal(err)
	}

	want := "0.10 0.20\n0.46 0.50\n-1.00 2.35\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteFileBadPath(t *testing.T) {
	p := &Population{X: []float64{0}, Y: []float64{0}, Light: []float64{0}}
	if err := p.WriteFile("/nonexistent-dir/flies.dat"); err == nil {
		t.Errorf("expected an error writing to an unwritable path")
	}
}
