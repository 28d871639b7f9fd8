// Command queue compares FIFO queue implementations.
//
// Usage:
//
//	go run ./cmd/queue -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	eapache "github.com/eapache/queue"

	"github.com/randomizedcoder/axcontainers/internal/queue"
)

type result struct {
	name string
	dur  time.Duration
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of iterations")
	size := flag.Int("size", 1024, "initial queue size")
	depth := flag.Int("depth", 512, "items kept queued so the ring wraps")
	flag.Parse()

	depthN := min(*depth, *size-1)

	fmt.Printf("Benchmarking FIFO queues (%s iterations, size=%d, depth=%d)\n",
		humanize.Comma(int64(*iterations)), *size, depthN)
	fmt.Println("─────────────────────────────────────────────────")

	var results []result

	// Buffered channel
	ch := make(chan int, *size)
	for i := 0; i < depthN; i++ {
		ch <- i
	}
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		ch <- i
		<-ch
	}
	results = append(results, result{"Channel", time.Since(start)})

	// Growable ring buffer
	q := queue.NewSized[int](*size)
	for i := 0; i < depthN; i++ {
		_ = q.Enqueue(i)
	}
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		_ = q.Enqueue(i)
		q.Dequeue()
	}
	results = append(results, result{"queue.Queue", time.Since(start)})

	// eapache/queue (interface{} items)
	eq := eapache.New()
	for i := 0; i < depthN; i++ {
		eq.Add(i)
	}
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		eq.Add(i)
		eq.Remove()
	}
	results = append(results, result{"eapache/queue", time.Since(start)})

	// Growth from a single slot
	start = time.Now()
	grow := queue.NewSized[int](1)
	for i := 0; i < *iterations; i++ {
		_ = grow.Enqueue(i)
	}
	growDur := time.Since(start)

	fmt.Printf("\nResults (enqueue + dequeue per iteration):\n")
	base := float64(results[0].dur.Nanoseconds()) / float64(*iterations)
	for _, r := range results {
		perOp := float64(r.dur.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-14s %v (%.2f ns/op, %.2fx vs channel)\n", r.name+":", r.dur, perOp, base/perOp)
	}

	fmt.Printf("\nThroughput (theoretical max):\n")
	for _, r := range results {
		perOp := float64(r.dur.Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-14s %s ops/sec\n", r.name+":", humanize.SIWithDigits(1e9/perOp, 2, ""))
	}

	fmt.Printf("\nGrowth from 1 slot:\n")
	fmt.Printf("  %s items in %v, final capacity %s (%s)\n",
		humanize.Comma(int64(grow.Len())), growDur,
		humanize.Comma(int64(grow.Cap())), humanize.IBytes(uint64(grow.Cap())*8))
}
