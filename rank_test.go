package firefly

import (
	"math/rand"
	"sort"
	"testing"
)

// rankpop builds a population whose x and y values are functions of the
// light value, so triple association can be checked after permutation.
func rankpop(lights []float64) *Population {
	p := &Population{
		X:     make([]float64, len(lights)),
		Y:     make([]float64, len(lights)),
		Light: make([]float64, len(lights)),
	}
	for i, l := range lights {
		p.X[i] = 2 * l
		p.Y[i] = -l
		p.Light[i] = l
	}
	return p
}

func checkranked(t *testing.T, p *Population, low, high int) {
	t.Helper()
	for i := low; i < high; i++ {
		if p.Light[i] > p.Light[i+1] {
			t.Errorf("light[%v]=%v > light[%v]=%v", i, p.Light[i], i+1, p.Light[i+1])
		}
	}
	for i := range p.Light {
		if p.X[i] != 2*p.Light[i] || p.Y[i] != -p.Light[i] {
			t.Errorf("triple at %v broke apart: x=%v y=%v light=%v", i, p.X[i], p.Y[i], p.Light[i])
		}
	}
}

func TestRank(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	lights := make([]float64, 200)
	for i := range lights {
		lights[i] = rng.Float64() * 100
	}

	p := rankpop(lights)
	p.Rank(0, p.Len()-1)
	checkranked(t, p, 0, p.Len()-1)

	// pure permutation - the multiset of light values is unchanged
	sorted := append([]float64{}, lights...)
	sort.Float64s(sorted)
	for i := range sorted {
		if p.Light[i] != sorted[i] {
			t.Fatalf("light multiset changed at %v: %v != %v", i, p.Light[i], sorted[i])
		}
	}
}

func TestRankSorted(t *testing.T) {
	lights := make([]float64, 100)
	for i := range lights {
		lights[i] = float64(i)
	}

	p := rankpop(lights)
	p.Rank(0, p.Len()-1)
	for i := range lights {
		if p.Light[i] != lights[i] {
			t.Errorf("already-sorted input reordered at %v", i)
		}
	}
}

func TestRankReversed(t *testing.T) {
	lights := make([]float64, 100)
	for i := range lights {
		lights[i] = float64(len(lights) - i)
	}

	p := rankpop(lights)
	p.Rank(0, p.Len()-1)
	checkranked(t, p, 0, p.Len()-1)
}

func TestRankDegenerate(t *testing.T) {
	p := rankpop([]float64{3, 1, 2})

	p.Rank(1, 1) // single element
	p.Rank(2, 1) // empty range
	if p.Light[0] != 3 || p.Light[1] != 1 || p.Light[2] != 2 {
		t.Errorf("degenerate ranges mutated the population: %v", p.Light)
	}
}

func TestRankBoundsClamped(t *testing.T) {
	p := rankpop([]float64{5, 4, 3, 2, 1})
	p.Rank(-10, 1000)
	checkranked(t, p, 0, p.Len()-1)
}

func TestRankSubrange(t *testing.T) {
	p := rankpop([]float64{9, 7, 5, 3, 1, 8})

	p.Rank(1, 4)
	want := []float64{9, 1, 3, 5, 7, 8}
	for i, l := range want {
		if p.Light[i] != l {
			t.Fatalf("subrange sort: light = %v, want %v", p.Light, want)
		}
	}
	checkranked(t, p, 1, 4)
}

func TestRankTies(t *testing.T) {
	lights := make([]float64, 64)
	for i := range lights {
		lights[i] = float64(i % 4)
	}

	p := rankpop(lights)
	p.Rank(0, p.Len()-1)
	checkranked(t, p, 0, p.Len()-1)
}
