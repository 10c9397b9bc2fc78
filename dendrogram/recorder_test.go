package dendrogram_test

import (
	"testing"

	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_LabelsAndCanonicalization(t *testing.T) {
	r := dendrogram.NewRecorder[float64](4)
	lbl1 := r.Record(2, 0, 1.0, 2) // passed out of order on purpose
	assert.Equal(t, 4, lbl1)
	lbl2 := r.Record(1, 3, 2.0, 2)
	assert.Equal(t, 5, lbl2)
	lbl3 := r.Record(lbl1, lbl2, 3.0, 4)
	assert.Equal(t, 6, lbl3)

	d := r.Finish(false)
	require.Equal(t, 3, d.Len())
	require.Equal(t, 4, d.Observations())

	steps := d.Steps()
	assert.Equal(t, 0, steps[0].Cluster1)
	assert.Equal(t, 2, steps[0].Cluster2)
	assert.Equal(t, 1, steps[1].Cluster1)
	assert.Equal(t, 3, steps[1].Cluster2)
	assert.Equal(t, 4, steps[2].Cluster1)
	assert.Equal(t, 5, steps[2].Cluster2)
}

func TestRecorder_PanicsOnTooManyMerges(t *testing.T) {
	r := dendrogram.NewRecorder[float64](2)
	r.Record(0, 1, 1.0, 2)
	assert.Panics(t, func() { r.Record(0, 1, 1.0, 2) })
}

func TestRecorder_PanicsOnSelfMerge(t *testing.T) {
	r := dendrogram.NewRecorder[float64](2)
	assert.Panics(t, func() { r.Record(0, 0, 1.0, 1) })
}

func TestFinish_Unsquares(t *testing.T) {
	r := dendrogram.NewRecorder[float64](2)
	r.Record(0, 1, 9.0, 2)
	d := r.Finish(true)
	assert.InDelta(t, 3.0, d.Steps()[0].Dissimilarity, 1e-12)
}

func TestSteps_ReturnsIndependentCopy(t *testing.T) {
	r := dendrogram.NewRecorder[float64](2)
	r.Record(0, 1, 1.0, 2)
	d := r.Finish(false)
	steps := d.Steps()
	steps[0].Dissimilarity = 99.0
	assert.NotEqual(t, 99.0, d.Steps()[0].Dissimilarity)
}

func TestDegenerate_N0N1(t *testing.T) {
	d0 := dendrogram.NewRecorder[float64](0).Finish(false)
	assert.Equal(t, 0, d0.Len())
	assert.Equal(t, 0, d0.Observations())

	d1 := dendrogram.NewRecorder[float64](1).Finish(false)
	assert.Equal(t, 0, d1.Len())
	assert.Equal(t, 1, d1.Observations())
}
