package dendrogram_test

import (
	"testing"

	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNonMonotonic constructs a small dendrogram whose chronological
// dissimilarity sequence is not sorted, the way centroid/median linkage
// can produce.
func buildNonMonotonic(t *testing.T) *dendrogram.Dendrogram[float64] {
	t.Helper()
	r := dendrogram.NewRecorder[float64](5)
	l5 := r.Record(0, 1, 5.0, 2)
	l6 := r.Record(2, 3, 2.0, 2)
	l7 := r.Record(l5, l6, 1.0, 4)
	r.Record(l7, 4, 10.0, 5)

	return r.Finish(false)
}

func TestSortByDissimilarity_PreservesLeaves(t *testing.T) {
	d := buildNonMonotonic(t)
	sorted := d.SortByDissimilarity()

	require.Equal(t, d.Len(), sorted.Len())
	require.Equal(t, d.Observations(), sorted.Observations())

	n := sorted.Observations()
	seenLeaf := make(map[int]int)
	seenNonLeaf := make(map[int]int)
	for i, s := range sorted.Steps() {
		assert.Less(t, s.Cluster1, s.Cluster2, "step %d must have cluster1<cluster2", i)
		for _, in := range [2]int{s.Cluster1, s.Cluster2} {
			if in < n {
				seenLeaf[in]++
			} else {
				seenNonLeaf[in]++
				assert.Less(t, in, n+i, "non-leaf input must have been produced by an earlier step")
			}
		}
	}
	for leaf := 0; leaf < n; leaf++ {
		assert.Equal(t, 1, seenLeaf[leaf], "leaf %d must appear exactly once", leaf)
	}
	for lbl, count := range seenNonLeaf {
		assert.Equal(t, 1, count, "non-leaf label %d must be consumed at most once", lbl)
	}
	assert.Equal(t, n, sorted.Steps()[sorted.Len()-1].Size, "final step size must equal N")
}

func TestSortByDissimilarity_Empty(t *testing.T) {
	d := dendrogram.NewRecorder[float64](1).Finish(false)
	sorted := d.SortByDissimilarity()
	assert.Equal(t, 0, sorted.Len())
	assert.Equal(t, 1, sorted.Observations())
}

func TestSortByDissimilarity_AlreadyMonotonic(t *testing.T) {
	r := dendrogram.NewRecorder[float64](3)
	l := r.Record(0, 1, 1.0, 2)
	r.Record(l, 2, 2.0, 3)
	d := r.Finish(false)

	sorted := d.SortByDissimilarity()
	steps := sorted.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].Cluster1)
	assert.Equal(t, 1, steps[0].Cluster2)
	assert.Equal(t, 2, steps[1].Cluster1)
	assert.Equal(t, 3, steps[1].Cluster2)
}
