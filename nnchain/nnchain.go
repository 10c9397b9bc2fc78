package nnchain

import (
	"github.com/katalvlaran/hclust/activeset"
	"github.com/katalvlaran/hclust/condensed"
	"github.com/katalvlaran/hclust/dendrogram"
	"github.com/katalvlaran/hclust/linkage"
)

// Run clusters the n observations held in m using the nearest-neighbor-
// chain algorithm under the given method, and returns the completed
// dendrogram. m is mutated in place; the caller must not rely on its
// contents afterward.
//
// Run works for any method, reducible or not, but is only a sound O(N²)
// strategy for reducible methods; the dispatcher is responsible for never
// routing centroid or median here, since the NN-chain's amortized-cost
// argument depends on reducibility.
//
// Complexity: O(N²) time, O(N) auxiliary memory beyond the matrix.
func Run[T condensed.Float](m *condensed.Matrix[T], method linkage.Method) *dendrogram.Dendrogram[T] {
	n := m.N()
	rec := dendrogram.NewRecorder[T](n)
	if n < 2 {
		return rec.Finish(method.SquaredStorage())
	}

	active := activeset.New(n)
	sizes := make([]int, n)
	label := make([]int, n) // label[slot]: externally reported current label
	for i := 0; i < n; i++ {
		sizes[i] = 1
		label[i] = i
	}

	chain := make([]int, 0, n)

	for merges := 0; merges < n-1; merges++ {
		if len(chain) == 0 {
			chain = append(chain, active.First())
		}

		for {
			t := chain[len(chain)-1]
			argmin, minVal := nearestNeighbor(m, active, t)

			if len(chain) >= 2 {
				prev := chain[len(chain)-2]
				if minVal == m.At(t, prev) {
					// Reciprocal nearest neighbors: t and prev agree on
					// each other as nearest live neighbor.
					chain = chain[:len(chain)-2]
					mergeInto(m, active, sizes, label, rec, method, t, prev)
					break
				}
			}

			chain = append(chain, argmin)
		}
	}

	// The chain finds reciprocal pairs out of height order, so the recorded
	// merges are resorted (and relabeled) into non-decreasing dissimilarity.
	return rec.Finish(method.SquaredStorage()).SortByDissimilarity()
}

// nearestNeighbor returns the live x != t minimizing m.At(t, x), breaking
// ties toward the smallest slot for reproducibility.
func nearestNeighbor[T condensed.Float](m *condensed.Matrix[T], active *activeset.Set, t int) (argmin int, minVal T) {
	argmin = -1
	for x := active.First(); x != activeset.None; x = active.Successor(x) {
		if x == t {
			continue
		}
		v := m.At(t, x)
		if argmin == -1 || v < minVal {
			argmin, minVal = x, v
		}
	}
	if argmin == -1 {
		panic("nnchain: no nearest neighbor found among live slots")
	}

	return argmin, minVal
}

// mergeInto merges slots sa and sb (in either order), recording the step
// and updating the condensed matrix in place. The lower-numbered slot
// survives and absorbs the other's row; which of sa/sb is the smaller slot
// is irrelevant to correctness, only to which row keeps being mutated.
func mergeInto[T condensed.Float](
	m *condensed.Matrix[T],
	active *activeset.Set,
	sizes []int,
	label []int,
	rec *dendrogram.Recorder[T],
	method linkage.Method,
	sa, sb int,
) {
	survivor, dying := sa, sb
	if dying < survivor {
		survivor, dying = dying, survivor
	}

	dab := m.At(survivor, dying)
	oldSizeSurvivor, oldSizeDying := sizes[survivor], sizes[dying]
	newSize := oldSizeSurvivor + oldSizeDying

	for x := active.First(); x != activeset.None; x = active.Successor(x) {
		if x == survivor || x == dying {
			continue
		}
		dax := m.At(survivor, x)
		dbx := m.At(dying, x)
		updated := linkage.Update(method, dab, dax, dbx, oldSizeSurvivor, oldSizeDying, sizes[x])
		m.Set(survivor, x, updated)
	}

	newLabel := rec.Record(label[survivor], label[dying], dab, newSize)
	label[survivor] = newLabel
	sizes[survivor] = newSize
	active.Remove(dying)
}
