// Package ffa implements the firefly algorithm's iteration loop: each round
// the population is snapshotted, light intensities are refreshed by an
// evaluator, and every fly is pulled toward the flies that were brighter in
// the snapshot.
package ffa

import (
	"math"

	firefly "github.com/HoshijiroS/csc6810project"
)

const (
	// DefaultAlpha is the default randomness step scale.
	DefaultAlpha = 0.2
	// DefaultGamma is the default light absorption coefficient.
	DefaultGamma = 1.0
	// Beta0 is the attractiveness at zero distance.
	Beta0 = 1.0
)

// Mover performs the attraction update.  For every ordered pair (i, j) with
// i != j, if fly i is currently dimmer than fly j was in the snapshot, i is
// pulled toward j's old position with weight beta = Beta0*exp(-Gamma*r²)
// plus an Alpha-scaled random step:
//
//    x[i] = (1-beta)*x[i] + beta*oldx[j] + Alpha*(rand - 0.5)
//
// j ascends in index order and every accepted pull updates i's position
// immediately, so later pairs for the same i see the already-moved
// position.  That accumulation order is part of the algorithm and makes
// runs reproducible under a seeded generator.
type Mover struct {
	Alpha float64
	Gamma float64
	// Rng generates the random steps.  If nil, the package-level
	// firefly.Rand is used.
	Rng firefly.Rng
}

// Move mutates curr's positions in place using old as the read-only
// attraction source, then clamps every fly back into box.  Light values are
// never touched; they are refreshed by the evaluator on the next iteration.
func (mv *Mover) Move(curr, old *firefly.Population, box firefly.Box) {
	rng := mv.Rng
	if rng == nil {
		rng = firefly.Rand
	}

	n := curr.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if curr.Light[i] < old.Light[j] {
				xdist := curr.X[i] - old.X[j]
				ydist := curr.Y[i] - old.Y[j]
				r2 := xdist*xdist + ydist*ydist

				// exp underflows to zero for large gamma*r2 - that just
				// means no pull, not an error.
				beta := Beta0 * math.Exp(-mv.Gamma*r2)

				curr.X[i] = (1-beta)*curr.X[i] + beta*old.X[j] + mv.Alpha*(rng.Float64()-0.5)
				curr.Y[i] = (1-beta)*curr.Y[i] + beta*old.Y[j] + mv.Alpha*(rng.Float64()-0.5)
			}
		}
	}

	// fix boundaries overstepped by the random steps
	for i := 0; i < n; i++ {
		curr.X[i], curr.Y[i] = box.Clamp(curr.X[i], curr.Y[i])
	}
}
