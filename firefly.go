// Package firefly implements the firefly algorithm, a population-based
// metaheuristic for continuous optimization over a 2D box.  Dimmer members of
// a population are pulled toward brighter ones with a distance-decayed
// attractiveness plus a small random step, converging the swarm toward
// bright (high objective value) regions.
//
// The ffa subpackage contains the iterator that runs the algorithm; this
// package holds the population representation and the supporting interfaces
// for objectives, evaluation, and random numbers.
package firefly

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	InvalidSizeErr   = errors.New("population size must be greater than zero")
	InvalidIterErr   = errors.New("iteration count must not be negative")
	InvalidBoundsErr = errors.New("domain min must not exceed max on any axis")
	NilObjectiverErr = errors.New("objectiver must not be nil")
)

// Rand supplies uniform random numbers in [0, 1) for all components that
// don't have their own generator set.  Swap it out for reproducible runs:
//
//    firefly.Rand = rand.New(rand.NewSource(seed))
var Rand Rng = rand.New(rand.NewSource(1))

type Rng interface {
	Float64() float64
}

// RandFloat returns a uniform random number in [0, 1) from Rand.
func RandFloat() float64 { return Rand.Float64() }

// Point is a single position in the 2D problem domain.
type Point struct {
	X, Y float64
}

// Box is the axis-aligned feasible region.  All firefly positions are kept
// inside it at the end of every iteration.
type Box struct {
	Min, Max Point
}

// Check returns InvalidBoundsErr if the box is inverted on either axis.  A
// degenerate (zero-width) axis is allowed; random initialization collapses
// onto it.
func (b Box) Check() error {
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y {
		return InvalidBoundsErr
	}
	return nil
}

// Clamp returns the point inside b nearest to (x, y).
func (b Box) Clamp(x, y float64) (float64, float64) {
	if x < b.Min.X {
		x = b.Min.X
	} else if x > b.Max.X {
		x = b.Max.X
	}
	if y < b.Min.Y {
		y = b.Min.Y
	} else if y > b.Max.Y {
		y = b.Max.Y
	}
	return x, y
}

// In reports whether (x, y) lies inside b.
func (b Box) In(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

type Objectiver interface {
	// Objective evaluates the position in v and returns the light intensity
	// there.  The algorithm is framed so that higher values are better
	// (brighter flies attract dimmer ones).  If the evaluation fails,
	// negative infinity should be returned along with an error.
	Objective(v []float64) (float64, error)
}

// Func makes an Objectiver from a plain function.
type Func func([]float64) float64

func (f Func) Objective(v []float64) (float64, error) { return f(v), nil }

// ObjectivePrinter wraps an Objectiver and prints every evaluation along
// with a running count.
type ObjectivePrinter struct {
	Objectiver
	Count int
}

func NewObjectivePrinter(obj Objectiver) *ObjectivePrinter {
	return &ObjectivePrinter{Objectiver: obj}
}

func (op *ObjectivePrinter) Objective(v []float64) (float64, error) {
	val, err := op.Objectiver.Objective(v)

	op.Count++
	fmt.Print(op.Count, " ")
	for _, x := range v {
		fmt.Print(x, " ")
	}
	fmt.Println("    ", val)

	return val, err
}
