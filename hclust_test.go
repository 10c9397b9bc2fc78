package hclust_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hclust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

// masspoints is the six-Massachusetts-towns seed scenario.
func masspoints() []float64 {
	return []float64{
		28.798738047815913, 20.776023574084647, 30.846454181742043, 23.852344515986452, 23.67366026778309,
		8.3414966246663, 14.849621987949059, 5.829368809982563, 10.246915371068036,
		14.325455610728019, 3.1237967760688776, 6.205979766034621,
		12.424204118142217, 8.333311197617531,
		5.308336458020405,
	}
}

func TestLinkage_MassachusettsTownsAverage_Double(t *testing.T) {
	data := masspoints()
	d, err := hclust.Linkage(data, 6, hclust.Average)
	require.NoError(t, err)
	require.Equal(t, 5, d.Len())

	wantDeltas := []float64{3.1237967760688776, 5.757158112027513, 8.1392602685723, 12.483148228609206, 25.589444117482433}
	steps := d.Steps()
	for i, want := range wantDeltas {
		assert.True(t, scalar.EqualWithinAbs(want, steps[i].Dissimilarity, 1e-6), "step %d", i)
	}
}

func TestLinkage_MassachusettsTownsAverage_Single(t *testing.T) {
	src := masspoints()
	data32 := make([]float32, len(src))
	for i, v := range src {
		data32[i] = float32(v)
	}
	d, err := hclust.Linkage(data32, 6, hclust.Average)
	require.NoError(t, err)

	wantDeltas := []float64{3.1237967760688776, 5.757158112027513, 8.1392602685723, 12.483148228609206, 25.589444117482433}
	steps := d.Steps()
	require.Len(t, steps, 5)
	for i, want := range wantDeltas {
		assert.True(t, scalar.EqualWithinAbs(want, float64(steps[i].Dissimilarity), 1e-3), "step %d", i)
	}
}

// TestLinkage_AllMethods_UniversalInvariants runs every linkage method over
// the same seed and checks the invariants that must hold regardless of
// method: N-1 steps, size sums to N, cluster1 < cluster2, non-negative
// dissimilarity.
func TestLinkage_AllMethods_UniversalInvariants(t *testing.T) {
	methods := []hclust.Method{
		hclust.Single, hclust.Complete, hclust.Average, hclust.Weighted,
		hclust.Ward, hclust.Centroid, hclust.Median,
	}
	for _, method := range methods {
		data := masspoints()
		d, err := hclust.Linkage(data, 6, method)
		require.NoError(t, err, method)
		require.Equal(t, 5, d.Len(), method)

		for i, s := range d.Steps() {
			assert.Less(t, s.Cluster1, s.Cluster2, "%v step %d", method, i)
			assert.GreaterOrEqual(t, s.Dissimilarity, 0.0, "%v step %d", method, i)
		}
		assert.Equal(t, 6, d.Steps()[4].Size, method)
	}
}

// TestLinkage_MethodEquivalenceAtTwoObservations checks that every method
// agrees exactly when there is only one possible merge.
func TestLinkage_MethodEquivalenceAtTwoObservations(t *testing.T) {
	methods := []hclust.Method{
		hclust.Single, hclust.Complete, hclust.Average, hclust.Weighted,
		hclust.Ward, hclust.Centroid, hclust.Median,
	}
	for _, method := range methods {
		d, err := hclust.Linkage([]float64{7.25}, 2, method)
		require.NoError(t, err, method)
		steps := d.Steps()
		require.Len(t, steps, 1, method)
		assert.Equal(t, 0, steps[0].Cluster1, method)
		assert.Equal(t, 1, steps[0].Cluster2, method)
		assert.Equal(t, 2, steps[0].Size, method)
		assert.InDelta(t, 7.25, steps[0].Dissimilarity, 1e-9, method)
	}
}

func TestLinkage_DegenerateObservationCounts(t *testing.T) {
	for _, method := range []hclust.Method{hclust.Single, hclust.Ward, hclust.Centroid} {
		d0, err := hclust.Linkage([]float64{}, 0, method)
		require.NoError(t, err, method)
		assert.Equal(t, 0, d0.Len(), method)

		d1, err := hclust.Linkage([]float64{}, 1, method)
		require.NoError(t, err, method)
		assert.Equal(t, 0, d1.Len(), method)
	}
}

// TestLinkage_PermutationInvariance checks that relabeling the input
// observations does not change the multiset of merge heights for a
// reducible method. Uses a fixed-seed deterministic permutation for
// reproducibility.
func TestLinkage_PermutationInvariance(t *testing.T) {
	const n = 8
	r := rand.New(rand.NewSource(42))
	base := make([]float64, n*(n-1)/2)
	for i := range base {
		base[i] = r.Float64() * 100
	}

	perm := r.Perm(n)
	permuted := permuteCondensed(base, n, perm)

	dBase, err := hclust.Linkage(append([]float64(nil), base...), n, hclust.Average)
	require.NoError(t, err)
	dPerm, err := hclust.Linkage(permuted, n, hclust.Average)
	require.NoError(t, err)

	heightsBase := heights(dBase.Steps())
	heightsPerm := heights(dPerm.Steps())
	assert.ElementsMatch(t, heightsBase, heightsPerm)
}

func heights(steps []hclust.Step[float64]) []float64 {
	out := make([]float64, len(steps))
	for i, s := range steps {
		out[i] = s.Dissimilarity
	}

	return out
}

// permuteCondensed builds the condensed matrix for the same underlying
// pairwise distances but with observations relabeled by perm (perm[i] is
// the new index of old observation i).
func permuteCondensed(data []float64, n int, perm []int) []float64 {
	idx := func(i, j int) int {
		if i > j {
			i, j = j, i
		}
		return n*i-((i*(i+1))>>1) + (j - i - 1)
	}

	out := make([]float64, len(data))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ni, nj := perm[i], perm[j]
			out[idx(ni, nj)] = data[idx(i, j)]
		}
	}

	return out
}

func TestLinkage_WithChecked_RejectsLengthMismatch(t *testing.T) {
	_, err := hclust.Linkage([]float64{1, 2, 3}, 4, hclust.Average, hclust.WithChecked())
	require.Error(t, err)
}

func TestLinkage_WithForceNNChain_AgreesWithDefault(t *testing.T) {
	data := masspoints()
	dDefault, err := hclust.Linkage(append([]float64(nil), data...), 6, hclust.Single)
	require.NoError(t, err)
	dForced, err := hclust.Linkage(append([]float64(nil), data...), 6, hclust.Single, hclust.WithForceNNChain())
	require.NoError(t, err)

	assert.Equal(t, heights(dDefault.Steps()), heights(dForced.Steps()))
}

func TestLinkage_WithSortedSteps_NonDecreasing(t *testing.T) {
	data := masspoints()
	d, err := hclust.Linkage(data, 6, hclust.Centroid, hclust.WithSortedSteps())
	require.NoError(t, err)

	steps := d.Steps()
	for i := 1; i < len(steps); i++ {
		assert.LessOrEqual(t, steps[i-1].Dissimilarity, steps[i].Dissimilarity+1e-9, "step %d", i)
	}
}

func TestLinkage_NegativeObservationCount(t *testing.T) {
	_, err := hclust.Linkage([]float64{}, -1, hclust.Average)
	require.Error(t, err)
}
