// Package pop generates firefly populations subject to linear constraints.
package pop

import (
	"errors"

	"github.com/petar/GoLLRB/llrb"
	"gonum.org/v1/gonum/mat"

	firefly "github.com/HoshijiroS/csc6810project"
)

// InfeasibleErr is returned when maxiter samples produce fewer candidates
// (feasible or not) than the requested population size.
var InfeasibleErr = errors.New("not enough candidates to fill the population")

type item struct {
	x, y   float64
	howbad float64
}

func (p1 item) Less(than llrb.Item) bool {
	p2 := than.(item)
	return p1.howbad < p2.howbad
}

// NewConstr tries to generate a random population of n feasible flies
// satisfying the linear constraints "low <= A*pos <= up" where pos is the
// column vector (x, y).  A is an m by 2 matrix and low and up are m by 1.
// Flies are sampled uniformly inside box and kept if feasible.  The least
// unfavorable infeasible candidates are queued up in case n feasible ones
// cannot be found within maxiter samples; nbad reports how many of those
// were used and iter how many samples were drawn.  firefly.Rand is used for
// random numbers.
func NewConstr(n, maxiter int, box firefly.Box, low, A, up *mat.Dense) (pop *firefly.Population, nbad, iter int, err error) {
	if n <= 0 {
		return nil, 0, 0, firefly.InvalidSizeErr
	} else if err := box.Check(); err != nil {
		return nil, 0, 0, err
	}

	stackA, b, ranges := stackConstr(low, A, up)

	pop = &firefly.Population{
		X:     make([]float64, 0, n),
		Y:     make([]float64, 0, n),
		Light: make([]float64, n),
	}

	violaters := llrb.New()
	for i := 0; i < maxiter; i++ {
		x := box.Min.X + firefly.RandFloat()*(box.Max.X-box.Min.X)
		y := box.Min.Y + firefly.RandFloat()*(box.Max.Y-box.Min.Y)

		// check for constraint violations
		var ax mat.Dense
		ax.Mul(stackA, mat.NewDense(2, 1, []float64{x, y}))
		m, _ := ax.Dims()
		howbad := 0.0
		for k := 0; k < m; k++ {
			if diff := ax.At(k, 0) - b.At(k, 0); diff > 0 {
				howbad += diff / ranges[k]
			}
		}

		if howbad == 0 {
			pop.X = append(pop.X, x)
			pop.Y = append(pop.Y, y)
			if len(pop.X) == n {
				return pop, 0, i + 1, nil
			}
		} else {
			violaters.InsertNoReplace(item{x, y, howbad})
			for violaters.Len() > n-len(pop.X) {
				violaters.DeleteMax()
			}
		}
	}

	nbad = n - len(pop.X)
	for len(pop.X) < n {
		vi := violaters.DeleteMin()
		if vi == nil {
			return nil, nbad, maxiter, InfeasibleErr
		}
		it := vi.(item)
		pop.X = append(pop.X, it.x)
		pop.Y = append(pop.Y, it.y)
	}

	return pop, nbad, maxiter, nil
}

// stackConstr rewrites "low <= A*pos <= up" as "stackA*pos <= b" by
// stacking A over -A.  ranges holds up-low per original constraint row,
// repeated for both halves, for normalizing violation magnitudes.
func stackConstr(low, A, up *mat.Dense) (stackA, b *mat.Dense, ranges []float64) {
	m, ndim := A.Dims()

	stackA = mat.NewDense(2*m, ndim, nil)
	b = mat.NewDense(2*m, 1, nil)
	ranges = make([]float64, 2*m)

	for i := 0; i < m; i++ {
		for j := 0; j < ndim; j++ {
			stackA.Set(i, j, A.At(i, j))
			stackA.Set(m+i, j, -A.At(i, j))
		}
		b.Set(i, 0, up.At(i, 0))
		b.Set(m+i, 0, -low.At(i, 0))

		r := up.At(i, 0) - low.At(i, 0)
		if r == 0 {
			r = 1
		}
		ranges[i] = r
		ranges[m+i] = r
	}
	return stackA, b, ranges
}
