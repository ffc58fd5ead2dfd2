package ranking

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/orgentropy/matrix"
)

// Result is the outcome of Merge.
type Result struct {
	Ranking       Ranking `json:"ranking" yaml:"ranking"`
	Controversies []Pair  `json:"controversies" yaml:"controversies"`
}

// Merge combines two rankings over the same labels.
//
// The agreed matrix C = A∘B keeps the relations both rankings share. Every
// controversy pair is then made mutual in C, labels mutually related in C are
// joined into one cluster, and clusters are ordered by ascending row sum of C
// (the number of labels ranked no later).
func Merge(a, b Ranking) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, fmt.Errorf("merge: first: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Result{}, fmt.Errorf("merge: second: %w", err)
	}
	labels := a.Labels()
	if !slices.Equal(labels, b.Labels()) {
		return Result{}, fmt.Errorf("merge: %w", ErrLabelMismatch)
	}

	ma, err := RelationMatrix(a, labels)
	if err != nil {
		return Result{}, err
	}
	mb, err := RelationMatrix(b, labels)
	if err != nil {
		return Result{}, err
	}
	cm, err := ControversyMatrix(ma, mb)
	if err != nil {
		return Result{}, err
	}
	pairs, err := ControversyPairs(cm, labels)
	if err != nil {
		return Result{}, err
	}

	agreed, err := matrix.Hadamard(ma, mb)
	if err != nil {
		return Result{}, err
	}
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}
	for _, p := range pairs {
		i, j := index[p[0]], index[p[1]]
		if err = agreed.Set(i, j, 1); err != nil {
			return Result{}, err
		}
		if err = agreed.Set(j, i, 1); err != nil {
			return Result{}, err
		}
	}

	groups, err := mutualGroups(agreed)
	if err != nil {
		return Result{}, err
	}
	sums, err := matrix.RowSums(agreed)
	if err != nil {
		return Result{}, err
	}
	key := func(g []int) float64 {
		lo := sums[g[0]]
		for _, i := range g[1:] {
			lo = min(lo, sums[i])
		}

		return lo
	}
	sort.SliceStable(groups, func(x, y int) bool { return key(groups[x]) < key(groups[y]) })

	merged := make(Ranking, len(groups))
	for k, g := range groups {
		cluster := make([]string, len(g))
		for n, i := range g {
			cluster[n] = labels[i]
		}
		merged[k] = cluster
	}

	return Result{Ranking: merged, Controversies: pairs}, nil
}

// mutualGroups partitions the indices of c into classes of the closure of
// "c[i][j] = c[j][i] = 1". Groups and their members are in index order.
func mutualGroups(c matrix.Matrix) ([][]int, error) {
	n := c.Rows()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}

		return parent[x]
	}

	var vij, vji float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if vij, err = c.At(i, j); err != nil {
				return nil, err
			}
			if vji, err = c.At(j, i); err != nil {
				return nil, err
			}
			if vij != 0 && vji != 0 {
				ri, rj := find(i), find(j)
				if ri != rj {
					parent[max(ri, rj)] = min(ri, rj)
				}
			}
		}
	}

	byRoot := make(map[int]int)
	var groups [][]int
	for i := 0; i < n; i++ {
		r := find(i)
		k, ok := byRoot[r]
		if !ok {
			k = len(groups)
			byRoot[r] = k
			groups = append(groups, nil)
		}
		groups[k] = append(groups[k], i)
	}

	return groups, nil
}
