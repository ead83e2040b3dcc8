package firefly

import "math"

// Iterator runs a single iteration of an optimizer, returning the best
// position and light value seen so far along with the number of objective
// evaluations n performed during the iteration.
type Iterator interface {
	Iterate(obj Objectiver) (best Point, light float64, n int, err error)
}

// Solver drives an Iterator until one of its termination conditions is
// reached.  Zero-valued limits are ignored.  A typical run looks like:
//
//    s := &firefly.Solver{Iter: it, Obj: obj, MaxIter: 500}
//    for s.Next() {
//    }
//    if err := s.Err(); err != nil ...
//    best, light := s.Best()
type Solver struct {
	Iter Iterator
	Obj  Objectiver
	// MaxIter is the maximum number of iterations to run.
	MaxIter int
	// MaxEval stops the run once this many objective evaluations have been
	// performed.
	MaxEval int
	// MaxNoImprove stops the run after this many successive iterations
	// without improvement of the best light value.
	MaxNoImprove int

	best      Point
	light     float64
	started   bool
	niter     int
	neval     int
	noimprove int
	err       error
}

// Next runs one iteration and reports whether the solver can continue.  It
// returns false once a limit is hit or an iteration fails.
func (s *Solver) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.started {
		s.light = math.Inf(-1)
		s.started = true
	}

	best, light, n, err := s.Iter.Iterate(s.Obj)
	s.niter++
	s.neval += n
	if err != nil {
		s.err = err
		return false
	}

	if light > s.light {
		s.best, s.light = best, light
		s.noimprove = 0
	} else {
		s.noimprove++
	}

	if s.MaxIter > 0 && s.niter >= s.MaxIter {
		return false
	} else if s.MaxEval > 0 && s.neval >= s.MaxEval {
		return false
	} else if s.MaxNoImprove > 0 && s.noimprove >= s.MaxNoImprove {
		return false
	}
	return true
}

// Run calls Next until it returns false and returns the first error
// encountered, if any.
func (s *Solver) Run() error {
	for s.Next() {
	}
	return s.err
}

// Best returns the brightest point seen over all completed iterations.
func (s *Solver) Best() (Point, float64) { return s.best, s.light }

func (s *Solver) Niter() int { return s.niter }

func (s *Solver) Neval() int { return s.neval }

func (s *Solver) Err() error { return s.err }
