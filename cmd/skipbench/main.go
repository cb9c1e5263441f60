// Command skipbench loads a batch of random integers into a skip list
// and reports how long the bulk insert took. It exists as a runnable
// demonstration of the library, not as part of its public contract.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	skiplist "github.com/arzuman/skiplist"
)

type intElem int

func (a intElem) CompareTo(b intElem) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func main() {
	count := flag.Int("n", 1_000_000, "number of elements to insert")
	workers := flag.Bool("parallel", true, "insert using ExtendParallel instead of sequential Insert")
	seed := flag.Uint64("seed", 1, "PRNG seed")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	values := make([]intElem, *count)
	r := rand.New(rand.NewPCG(*seed, *seed))
	for i := range values {
		values[i] = intElem(r.Int64())
	}

	list := skiplist.New[intElem]()
	start := time.Now()

	if *workers {
		if err := list.ExtendParallel(context.Background(), values); err != nil {
			log.Error("extend failed", "error", err)
			os.Exit(1)
		}
	} else {
		for _, v := range values {
			list.Insert(v)
		}
	}

	elapsed := time.Since(start)
	log.Info("bulk insert complete",
		"elements", *count,
		"parallel", *workers,
		"elapsed", elapsed,
		"per_element_ns", float64(elapsed.Nanoseconds())/float64(*count),
	)
	fmt.Printf("inserted %d elements in %s\n", *count, elapsed)
}
