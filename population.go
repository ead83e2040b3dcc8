package firefly

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Population is a fixed-size set of fireflies stored as three parallel
// slices: index i in X, Y, and Light always refers to the same fly.  Light
// values start at zero and are overwritten by an Evaler each iteration;
// positions are mutated in place by the mover.  No order is implied between
// indices unless Rank has been called.
type Population struct {
	X     []float64
	Y     []float64
	Light []float64
}

// New creates a population of n fireflies uniformly distributed inside box
// with zero light values.  Rand is used for random numbers.
func New(n int, box Box) (*Population, error) {
	if n <= 0 {
		return nil, InvalidSizeErr
	} else if err := box.Check(); err != nil {
		return nil, err
	}

	p := &Population{
		X:     make([]float64, n),
		Y:     make([]float64, n),
		Light: make([]float64, n),
	}

	xrange := box.Max.X - box.Min.X
	yrange := box.Max.Y - box.Min.Y
	for i := 0; i < n; i++ {
		p.X[i] = Rand.Float64()*xrange + box.Min.X
		p.Y[i] = Rand.Float64()*yrange + box.Min.Y
	}
	return p, nil
}

func (p *Population) Len() int { return len(p.X) }

// At returns the position of fly i.
func (p *Population) At(i int) Point { return Point{p.X[i], p.Y[i]} }

// Snapshot returns an independent deep copy of p.  Mutating either
// population never affects the other.
func (p *Population) Snapshot() *Population {
	dup := &Population{
		X:     make([]float64, len(p.X)),
		Y:     make([]float64, len(p.Y)),
		Light: make([]float64, len(p.Light)),
	}
	dup.CopyFrom(p)
	return dup
}

// CopyFrom overwrites p's state with src's, reusing p's storage.  It panics
// if the populations have different sizes.
func (p *Population) CopyFrom(src *Population) {
	if p.Len() != src.Len() {
		panic("populations are not the same size")
	}
	copy(p.X, src.X)
	copy(p.Y, src.Y)
	copy(p.Light, src.Light)
}

// Best returns the index of the brightest fly.
func (p *Population) Best() int {
	best := 0
	for i, l := range p.Light {
		if l > p.Light[best] {
			best = i
		}
	}
	return best
}

// WriteCoords dumps the population's positions to w, one "x y" pair per
// line with two-decimal fixed-point formatting.
func (p *Population) WriteCoords(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := range p.X {
		if _, err := fmt.Fprintf(bw, "%.2f %.2f\n", p.X[i], p.Y[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the population's positions to the named file via
// WriteCoords.  Unlike the classic implementations of this algorithm, write
// and close failures are reported instead of dropped.
func (p *Population) WriteFile(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := p.WriteCoords(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
