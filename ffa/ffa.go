package ffa

import (
	"database/sql"
	"math"

	firefly "github.com/HoshijiroS/csc6810project"
)

const (
	// TblFlies is the name of the sql database table that contains every
	// fly's position and light value for each iteration.
	TblFlies = "ffaflies"
	// TblBest is the name of the sql database table that contains the
	// brightest fly for each iteration.
	TblBest = "ffabest"
)

type Option func(*Iterator)

// Alpha sets the randomness step scale.
func Alpha(a float64) Option {
	return func(it *Iterator) {
		it.Move.Alpha = a
	}
}

// Gamma sets the light absorption coefficient.
func Gamma(g float64) Option {
	return func(it *Iterator) {
		it.Move.Gamma = g
	}
}

// Rng sets the random number generator used for the movement steps.
func Rng(r firefly.Rng) Option {
	return func(it *Iterator) {
		it.Move.Rng = r
	}
}

// Evaler sets the evaluator used to refresh light intensities.
func Evaler(ev firefly.Evaler) Option {
	return func(it *Iterator) {
		it.ev = ev
	}
}

// DB causes the positions and light values of every fly to be recorded in
// db on each iteration.
func DB(db *sql.DB) Option {
	return func(it *Iterator) {
		it.Db = db
	}
}

// Iterator implements firefly.Iterator, advancing a population one round of
// the firefly algorithm per call.
type Iterator struct {
	// Curr is the live population being optimized.  It remains available
	// between iterations for inspection.
	Curr *firefly.Population
	// Old is the snapshot buffer used as the attraction source.  It starts
	// out as an independent random population, exactly like the classic
	// implementation, and is overwritten from Curr at the top of every
	// iteration.
	Old  *firefly.Population
	Box  firefly.Box
	Move *Mover
	Db   *sql.DB

	ev    firefly.Evaler
	count int
}

// NewIterator creates an iterator that optimizes pop within box.  The
// population and box are validated up front so the iteration loop never has
// to deal with degenerate domains.
func NewIterator(pop *firefly.Population, box firefly.Box, opts ...Option) (*Iterator, error) {
	if pop == nil || pop.Len() == 0 {
		return nil, firefly.InvalidSizeErr
	} else if err := box.Check(); err != nil {
		return nil, err
	}

	old, err := firefly.New(pop.Len(), box)
	if err != nil {
		return nil, err
	}

	it := &Iterator{
		Curr: pop,
		Old:  old,
		Box:  box,
		Move: &Mover{Alpha: DefaultAlpha, Gamma: DefaultGamma},
		ev:   firefly.SerialEvaler{},
	}

	for _, opt := range opts {
		opt(it)
	}
	it.initdb()
	return it, nil
}

// Iterate runs one round: snapshot, evaluate, move.  The returned best is
// the brightest fly at evaluation time (before this round's movement).
func (it *Iterator) Iterate(obj firefly.Objectiver) (best firefly.Point, light float64, n int, err error) {
	it.count++

	// keep a copy of the pre-update state for the move
	it.Old.CopyFrom(it.Curr)

	n, err = it.ev.Eval(obj, it.Curr)
	if err != nil {
		return firefly.Point{}, math.Inf(-1), n, err
	}

	i := it.Curr.Best()
	best, light = it.Curr.At(i), it.Curr.Light[i]

	it.Move.Move(it.Curr, it.Old, it.Box)
	it.updateDb(best, light)

	return best, light, n, nil
}

// Run is the whole-algorithm driver: it creates a random population of n
// flies inside box, runs iters rounds against obj, and returns the
// brightest point found.  With iters == 0 no movement or evaluation occurs
// and the returned light is -Inf.
func Run(n, iters int, box firefly.Box, obj firefly.Objectiver, opts ...Option) (best firefly.Point, light float64, err error) {
	if iters < 0 {
		return firefly.Point{}, math.Inf(-1), firefly.InvalidIterErr
	} else if obj == nil {
		return firefly.Point{}, math.Inf(-1), firefly.NilObjectiverErr
	}

	pop, err := firefly.New(n, box)
	if err != nil {
		return firefly.Point{}, math.Inf(-1), err
	}

	it, err := NewIterator(pop, box, opts...)
	if err != nil {
		return firefly.Point{}, math.Inf(-1), err
	}
	if iters == 0 {
		return firefly.Point{}, math.Inf(-1), nil
	}

	s := &firefly.Solver{Iter: it, Obj: obj, MaxIter: iters}
	if err := s.Run(); err != nil {
		return firefly.Point{}, math.Inf(-1), err
	}
	best, light = s.Best()
	return best, light, nil
}

func (it *Iterator) initdb() {
	if it.Db == nil {
		return
	}

	s := "CREATE TABLE IF NOT EXISTS " + TblFlies +
		" (iter INTEGER, fly INTEGER, light REAL, x REAL, y REAL);"
	_, err := it.Db.Exec(s)
	panicif(err)

	s = "CREATE TABLE IF NOT EXISTS " + TblBest +
		" (iter INTEGER, light REAL, x REAL, y REAL);"
	_, err = it.Db.Exec(s)
	panicif(err)
}

func (it *Iterator) updateDb(best firefly.Point, light float64) {
	if it.Db == nil {
		return
	}

	tx, err := it.Db.Begin()
	panicif(err)
	defer tx.Commit()

	s1 := "INSERT INTO " + TblFlies + " (iter,fly,light,x,y) VALUES (?,?,?,?,?);"
	for i := 0; i < it.Curr.Len(); i++ {
		_, err := tx.Exec(s1, it.count, i, it.Curr.Light[i], it.Curr.X[i], it.Curr.Y[i])
		panicif(err)
	}

	s2 := "INSERT INTO " + TblBest + " (iter,light,x,y) VALUES (?,?,?,?);"
	_, err = tx.Exec(s2, it.count, light, best.X, best.Y)
	panicif(err)
}

func panicif(err error) {
	if err != nil {
		panic(err.Error())
	}
}
