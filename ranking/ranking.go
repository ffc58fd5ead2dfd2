package ranking

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/orgentropy/matrix"
)

// Sentinel errors.
var (
	ErrMalformed     = errors.New("ranking: malformed ranking")
	ErrDuplicate     = errors.New("ranking: duplicate label")
	ErrLabelMismatch = errors.New("ranking: label sets differ")
)

// Ranking is an ordered list of tied clusters, best first.
type Ranking [][]string

// Parse decodes a JSON ranking such as ["1", ["2","3"], "4"].
func Parse(text string) (Ranking, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	r := make(Ranking, 0, len(raw))
	for i, item := range raw {
		var label string
		if err := json.Unmarshal(item, &label); err == nil {
			r = append(r, []string{label})
			continue
		}
		var cluster []string
		if err := json.Unmarshal(item, &cluster); err != nil {
			return nil, fmt.Errorf("%w: item %d: %s", ErrMalformed, i, item)
		}
		if len(cluster) == 0 {
			return nil, fmt.Errorf("%w: item %d: empty cluster", ErrMalformed, i)
		}
		r = append(r, cluster)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate reports empty rankings, empty labels and repeated labels.
func (r Ranking) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("%w: empty", ErrMalformed)
	}
	seen := make(map[string]bool)
	for _, cluster := range r {
		for _, l := range cluster {
			if l == "" {
				return fmt.Errorf("%w: empty label", ErrMalformed)
			}
			if seen[l] {
				return fmt.Errorf("%w: %q", ErrDuplicate, l)
			}
			seen[l] = true
		}
	}

	return nil
}

// positions maps every label to the index of its cluster.
func (r Ranking) positions() map[string]int {
	pos := make(map[string]int)
	for k, cluster := range r {
		for _, l := range cluster {
			pos[l] = k
		}
	}

	return pos
}

// Labels returns every label of r, sorted.
func (r Ranking) Labels() []string {
	var labels []string
	for _, cluster := range r {
		labels = append(labels, cluster...)
	}
	SortLabels(labels)

	return labels
}

// items returns r with one-element clusters replaced by their label.
func (r Ranking) items() []any {
	items := make([]any, len(r))
	for i, cluster := range r {
		if len(cluster) == 1 {
			items[i] = cluster[0]
			continue
		}
		items[i] = cluster
	}

	return items
}

// MarshalJSON writes one-element clusters as bare labels.
func (r Ranking) MarshalJSON() ([]byte, error) { return json.Marshal(r.items()) }

// MarshalYAML mirrors MarshalJSON.
func (r Ranking) MarshalYAML() (any, error) { return r.items(), nil }

// String returns the JSON form of r.
func (r Ranking) String() string {
	b, err := r.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", [][]string(r))
	}

	return string(b)
}

// SortLabels sorts labels numerically when all of them are integers and
// lexicographically otherwise.
func SortLabels(labels []string) {
	nums := make(map[string]int, len(labels))
	for _, l := range labels {
		n, err := strconv.Atoi(l)
		if err != nil {
			sort.Strings(labels)
			return
		}
		nums[l] = n
	}
	sort.SliceStable(labels, func(i, j int) bool { return nums[labels[i]] < nums[labels[j]] })
}

// RelationMatrix returns the order-relation matrix of r over labels:
// y[i][j] = 1 iff labels[j] is not ranked after labels[i]. The diagonal and
// tied pairs are 1.
func RelationMatrix(r Ranking, labels []string) (*matrix.Dense, error) {
	pos := r.positions()
	if len(pos) != len(labels) {
		return nil, fmt.Errorf("relation matrix: %d labels ranked, %d requested: %w",
			len(pos), len(labels), ErrLabelMismatch)
	}
	m, err := matrix.NewDense(len(labels), len(labels))
	if err != nil {
		return nil, err
	}

	var pi, pj int
	var ok bool
	for i, li := range labels {
		if pi, ok = pos[li]; !ok {
			return nil, fmt.Errorf("relation matrix: %q: %w", li, ErrLabelMismatch)
		}
		for j, lj := range labels {
			if pj = pos[lj]; pj <= pi {
				if err = m.Set(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

// ControversyMatrix returns (A∘B) ∨ (Aᵀ∘Bᵀ). A zero at (i, j) marks a pair
// the two rankings order in opposite directions.
func ControversyMatrix(a, b matrix.Matrix) (*matrix.Dense, error) {
	ab, err := matrix.Hadamard(a, b)
	if err != nil {
		return nil, fmt.Errorf("controversy: %w", err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("controversy: %w", err)
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, fmt.Errorf("controversy: %w", err)
	}
	abt, err := matrix.Hadamard(at, bt)
	if err != nil {
		return nil, fmt.Errorf("controversy: %w", err)
	}

	return matrix.Or(ab, abt)
}

// Pair is a controversial label pair, lower sorted position first.
type Pair [2]string

// ControversyPairs lists the zero entries of the upper triangle of c.
func ControversyPairs(c matrix.Matrix, labels []string) ([]Pair, error) {
	if c == nil {
		return nil, matrix.ErrNilMatrix
	}
	if c.Rows() != len(labels) || c.Cols() != len(labels) {
		return nil, fmt.Errorf("controversy pairs: %dx%d for %d labels: %w",
			c.Rows(), c.Cols(), len(labels), matrix.ErrDimensionMismatch)
	}
	var pairs []Pair
	var v float64
	var err error
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			if v, err = c.At(i, j); err != nil {
				return nil, err
			}
			if v == 0 {
				pairs = append(pairs, Pair{labels[i], labels[j]})
			}
		}
	}

	return pairs, nil
}
