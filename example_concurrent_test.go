package hclust_test

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/hclust"
)

// ExampleLinkage_concurrent demonstrates that Linkage has no shared mutable
// state across calls: running it over several independent buffers
// concurrently from goroutines, coordinated with a sync.WaitGroup, is safe
// as long as each goroutine owns its own buffer. Linkage itself exposes no
// concurrency primitive; parallelism here is entirely at the caller's
// discretion.
func ExampleLinkage_concurrent() {
	buffers := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	results := make([]int, len(buffers))

	var wg sync.WaitGroup
	for i, buf := range buffers {
		wg.Add(1)
		go func(i int, data []float64) {
			defer wg.Done()
			d, err := hclust.Linkage(data, 3, hclust.Average)
			if err != nil {
				panic(err)
			}
			results[i] = d.Len()
		}(i, buf)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += r
	}
	fmt.Println(total)
	// Output: 6
}
