package firefly

import (
	"crypto/sha1"
	"encoding/binary"
	"math"
)

// Evaler computes light intensities for an entire population.  Eval must
// overwrite pop.Light only - positions are never touched - and returns the
// number of objective evaluations performed.
type Evaler interface {
	Eval(obj Objectiver, pop *Population) (n int, err error)
}

type SerialEvaler struct {
	// ContinueOnErr causes evaluation of the remaining flies to proceed
	// after a failed objective call instead of returning immediately.
	ContinueOnErr bool
}

func (ev SerialEvaler) Eval(obj Objectiver, pop *Population) (n int, err error) {
	if obj == nil {
		return 0, NilObjectiverErr
	}

	for i := 0; i < pop.Len(); i++ {
		val, err := obj.Objective([]float64{pop.X[i], pop.Y[i]})
		pop.Light[i] = val
		n++
		if err != nil && !ev.ContinueOnErr {
			return n, err
		}
	}
	return n, nil
}

func hashPos(x, y float64) [sha1.Size]byte {
	var data [16]byte
	binary.BigEndian.PutUint64(data[:8], math.Float64bits(x))
	binary.BigEndian.PutUint64(data[8:], math.Float64bits(y))
	return sha1.Sum(data[:])
}

// CacheEvaler wraps another Evaler and memoizes objective values by
// position.  Useful late in a run when flies cluster onto near-identical
// positions.  Cached entries are only created for successful evaluations.
type CacheEvaler struct {
	ev    Evaler
	cache map[[sha1.Size]byte]float64
}

func NewCacheEvaler(ev Evaler) *CacheEvaler {
	return &CacheEvaler{
		ev:    ev,
		cache: map[[sha1.Size]byte]float64{},
	}
}

// Eval reports n as the number of uncached objective evaluations.
func (ev *CacheEvaler) Eval(obj Objectiver, pop *Population) (n int, err error) {
	co := &cacheObj{obj: obj, cache: ev.cache}
	_, err = ev.ev.Eval(co, pop)
	return co.misses, err
}

type cacheObj struct {
	obj    Objectiver
	cache  map[[sha1.Size]byte]float64
	misses int
}

func (co *cacheObj) Objective(v []float64) (float64, error) {
	h := hashPos(v[0], v[1])
	if val, ok := co.cache[h]; ok {
		return val, nil
	}
	co.misses++
	val, err := co.obj.Objective(v)
	if err == nil {
		co.cache[h] = val
	}
	return val, err
}
