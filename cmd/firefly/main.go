// Command firefly runs the firefly algorithm against a named benchmark
// function, dumping the starting and final populations to text files and
// optionally recording every iteration in a sqlite database.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	flag "github.com/spf13/pflag"

	firefly "github.com/HoshijiroS/csc6810project"
	"github.com/HoshijiroS/csc6810project/bench"
	"github.com/HoshijiroS/csc6810project/ffa"
)

var (
	nflies    = flag.Int("n", 25, "number of fireflies")
	niter     = flag.Int("iters", 500, "number of iterations")
	fnname    = flag.String("fn", "Sphere", "benchmark function to optimize")
	alpha     = flag.Float64("alpha", ffa.DefaultAlpha, "randomness step scale")
	gamma     = flag.Float64("gamma", ffa.DefaultGamma, "light absorption coefficient")
	seed      = flag.Int64("seed", -1, "random seed (negative means wall clock)")
	startfile = flag.String("start", "start.dat", "file for the initial positions")
	endfile   = flag.String("end", "end.dat", "file for the final positions")
	dbname    = flag.String("db", "", "sqlite file to record each iteration in (empty disables)")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	fn := lookup(*fnname)
	if fn == nil {
		log.Fatalf("unknown benchmark function %q", *fnname)
	}

	s := *seed
	if s < 0 {
		s = time.Now().Unix()
	}
	firefly.Rand = rand.New(rand.NewSource(s))

	opts := []ffa.Option{ffa.Alpha(*alpha), ffa.Gamma(*gamma)}
	if *dbname != "" {
		db, err := sql.Open("sqlite3", *dbname)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()
		opts = append(opts, ffa.DB(db))
	}

	box := fn.Bounds()
	pop, err := firefly.New(*nflies, box)
	if err != nil {
		log.Fatal(err)
	}
	it, err := ffa.NewIterator(pop, box, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if err := it.Curr.WriteFile(*startfile); err != nil {
		log.Fatalf("write %v: %v", *startfile, err)
	}

	solv := &firefly.Solver{
		Iter:    it,
		Obj:     bench.Negative{Func: fn},
		MaxIter: *niter,
	}
	if err := solv.Run(); err != nil {
		log.Fatal(err)
	}

	if err := it.Curr.WriteFile(*endfile); err != nil {
		log.Fatalf("write %v: %v", *endfile, err)
	}

	best, light := solv.Best()
	fmt.Printf("%v iters, %v evals\n", solv.Niter(), solv.Neval())
	fmt.Printf("    optimum: %+v at %+v\n", fn.Min(), fn.Optima())
	fmt.Printf("    best: %v at (%v, %v)\n", -light, best.X, best.Y)
}

func lookup(name string) bench.Func {
	for _, fn := range bench.AllFuncs {
		if strings.EqualFold(fn.Name(), name) {
			return fn
		}
	}
	return nil
}
