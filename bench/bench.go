// Package bench provides benchmark optimization functions from
// http://en.wikipedia.org/wiki/Test_functions_for_optimization for testing
// the firefly algorithm against known optima.
package bench

import (
	"math"

	firefly "github.com/HoshijiroS/csc6810project"
)

var (
	sin  = math.Sin
	cos  = math.Cos
	abs  = math.Abs
	exp  = math.Exp
	sqrt = math.Sqrt
)

var AllFuncs = []Func{
	Sphere{},
	Ackley{},
	CrossTray{},
	Eggholder{},
	HolderTable{},
	Schaffer2{},
}

// Func is a 2D minimization benchmark with known optima.
type Func interface {
	Eval(v []float64) float64
	Bounds() firefly.Box
	// Optima returns the locations of the global minima.
	Optima() []firefly.Point
	// Min returns the function value at the global minima.
	Min() float64
	Name() string
}

// Negative adapts a minimization benchmark to the light-intensity
// convention where brighter is better.
type Negative struct {
	Func
}

func (n Negative) Objective(v []float64) (float64, error) { return -n.Func.Eval(v), nil }

// Benchmark runs s to completion against fn and reports whether the best
// value came within tol of the known optimum (with an absolute floor of
// 0.01 for optima at or near zero).  s.Obj is expected to be Negative{fn}
// or equivalent, so the best value is recovered as -light.
func Benchmark(s *firefly.Solver, fn Func, tol float64) (best firefly.Point, val float64, ok bool, err error) {
	if err := s.Run(); err != nil {
		return firefly.Point{}, math.Inf(1), false, err
	}
	best, light := s.Best()
	val = -light

	optimum := fn.Min()
	thresh := tol * abs(optimum)
	if thresh < 0.01 {
		thresh = 0.01
	}
	return best, val, abs(val-optimum) < thresh, nil
}

// InsideBounds reports whether v lies inside fn's bounded domain.
func InsideBounds(v []float64, fn Func) bool {
	return fn.Bounds().In(v[0], v[1])
}

// Sphere is the first De Jong function: the sum of squares.  Smooth,
// convex, unimodal - the easiest of the set.
type Sphere struct{}

func (fn Sphere) Name() string { return "Sphere" }

func (fn Sphere) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return x*x + y*y
}

func (fn Sphere) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -5.12, Y: -5.12}, Max: firefly.Point{X: 5.12, Y: 5.12}}
}

func (fn Sphere) Optima() []firefly.Point { return []firefly.Point{{X: 0, Y: 0}} }

func (fn Sphere) Min() float64 { return 0 }

type Ackley struct{}

func (fn Ackley) Name() string { return "Ackley" }

func (fn Ackley) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -20*exp(-0.2*sqrt(0.5*(x*x+y*y))) -
		exp(0.5*(cos(2*math.Pi*x)+cos(2*math.Pi*y))) +
		20 + math.E
}

func (fn Ackley) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -5, Y: -5}, Max: firefly.Point{X: 5, Y: 5}}
}

func (fn Ackley) Optima() []firefly.Point { return []firefly.Point{{X: 0, Y: 0}} }

func (fn Ackley) Min() float64 { return 0 }

type CrossTray struct{}

func (fn CrossTray) Name() string { return "CrossTray" }

func (fn CrossTray) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -.0001 * math.Pow(abs(sin(x)*sin(y)*exp(abs(100-sqrt(x*x+y*y)/math.Pi)))+1, 0.1)
}

func (fn CrossTray) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -10, Y: -10}, Max: firefly.Point{X: 10, Y: 10}}
}

func (fn CrossTray) Optima() []firefly.Point {
	return []firefly.Point{
		{X: 1.34941, Y: -1.34941},
		{X: 1.34941, Y: 1.34941},
		{X: -1.34941, Y: 1.34941},
		{X: -1.34941, Y: -1.34941},
	}
}

func (fn CrossTray) Min() float64 { return -2.06261 }

type Eggholder struct{}

func (fn Eggholder) Name() string { return "Eggholder" }

func (fn Eggholder) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -(y+47)*sin(sqrt(abs(y+x/2+47))) - x*sin(sqrt(abs(x-(y+47))))
}

func (fn Eggholder) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -512, Y: -512}, Max: firefly.Point{X: 512, Y: 512}}
}

func (fn Eggholder) Optima() []firefly.Point { return []firefly.Point{{X: 512, Y: 404.2319}} }

func (fn Eggholder) Min() float64 { return -959.6407 }

type HolderTable struct{}

func (fn HolderTable) Name() string { return "HolderTable" }

func (fn HolderTable) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return -abs(sin(x) * cos(y) * exp(abs(1-sqrt(x*x+y*y)/math.Pi)))
}

func (fn HolderTable) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -10, Y: -10}, Max: firefly.Point{X: 10, Y: 10}}
}

func (fn HolderTable) Optima() []firefly.Point {
	return []firefly.Point{
		{X: 8.05502, Y: 9.66459},
		{X: -8.05502, Y: 9.66459},
		{X: 8.05502, Y: -9.66459},
		{X: -8.05502, Y: -9.66459},
	}
}

func (fn HolderTable) Min() float64 { return -19.2085 }

type Schaffer2 struct{}

func (fn Schaffer2) Name() string { return "Schaffer2" }

func (fn Schaffer2) Eval(v []float64) float64 {
	if !InsideBounds(v, fn) {
		return math.Inf(1)
	}

	x := v[0]
	y := v[1]
	return 0.5 + (math.Pow(sin(x*x-y*y), 2)-0.5)/math.Pow(1+.0001*(x*x+y*y), 2)
}

func (fn Schaffer2) Bounds() firefly.Box {
	return firefly.Box{Min: firefly.Point{X: -100, Y: -100}, Max: firefly.Point{X: 100, Y: 100}}
}

func (fn Schaffer2) Optima() []firefly.Point { return []firefly.Point{{X: 0, Y: 0}} }

func (fn Schaffer2) Min() float64 { return 0 }
