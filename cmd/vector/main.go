// Command vector compares vector.Vector against a plain slice.
//
// Usage:
//
//	go run ./cmd/vector -n 1000000
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/randomizedcoder/axcontainers/internal/vector"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of items")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	fmt.Printf("Benchmarking vector vs slice (%s items)\n", humanize.Comma(int64(*n)))
	fmt.Println("─────────────────────────────────────────────────")

	rng := rand.New(rand.NewPCG(*seed, 0)) //nolint:gosec // Benchmark input only
	data := make([]int, *n)
	for i := range data {
		data[i] = rng.IntN(max(1, *n))
	}

	// Push
	start := time.Now()
	v := vector.New[int]()
	for _, x := range data {
		_ = v.Push(x)
	}
	vecPush := time.Since(start)

	start = time.Now()
	var s []int
	for _, x := range data {
		s = append(s, x)
	}
	slicePush := time.Since(start)

	// Sort
	start = time.Now()
	v.Sort()
	vecSort := time.Since(start)

	start = time.Now()
	slices.Sort(s)
	sliceSort := time.Since(start)

	// Search
	start = time.Now()
	found := 0
	for _, x := range data {
		if _, ok := v.BinarySearch(x); ok {
			found++
		}
	}
	vecSearch := time.Since(start)

	start = time.Now()
	for _, x := range data {
		if _, ok := slices.BinarySearch(s, x); ok {
			found++
		}
	}
	sliceSearch := time.Since(start)

	// Pop
	start = time.Now()
	for v.Len() > 0 {
		v.Pop()
	}
	vecPop := time.Since(start)

	start = time.Now()
	for len(s) > 0 {
		s = s[:len(s)-1]
	}
	slicePop := time.Since(start)

	fmt.Printf("\nResults (per item):\n")
	fmt.Printf("  %-8s %12s %12s %8s\n", "", "Vector", "slice", "ratio")
	for _, row := range []struct {
		name       string
		vec, slice time.Duration
	}{
		{"Push", vecPush, slicePush},
		{"Sort", vecSort, sliceSort},
		{"Search", vecSearch, sliceSearch},
		{"Pop", vecPop, slicePop},
	} {
		vp := float64(row.vec.Nanoseconds()) / float64(*n)
		sp := float64(row.slice.Nanoseconds()) / float64(*n)
		fmt.Printf("  %-8s %9.2f ns %9.2f ns %7.2fx\n", row.name, vp, sp, vp/sp)
	}
	fmt.Printf("\nFinal capacity: %s slots (%s)\n",
		humanize.Comma(int64(v.Cap())), humanize.IBytes(uint64(v.Cap())*8))
	fmt.Printf("Searches hit: %s\n", humanize.Comma(int64(found)))
}
