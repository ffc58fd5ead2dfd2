// Package dice measures how much the sum of two dice tells about their
// product.
//
// Two independent throws of a fair die with the given faces define
//
//	A = x + y   (sum)
//	B = x · y   (product)
//
// and Analyze reports the joint entropy H(AB), the marginals H(A) and H(B),
// the conditional entropy H_A(B) of the product given the sum, and the mutual
// information I(A,B) = H(B) - H_A(B). All logarithms are base 2.
package dice

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/orgentropy/entropy"
	"github.com/katalvlaran/orgentropy/matrix"
)

// ErrNoFaces indicates an empty face list.
var ErrNoFaces = errors.New("dice: no faces")

// StandardFaces are the faces of a six-sided die.
var StandardFaces = []int{1, 2, 3, 4, 5, 6}

// Distribution is a discrete distribution over ascending integer outcomes.
type Distribution struct {
	Values []int
	Probs  []float64
}

// Entropy returns the Shannon entropy of the distribution.
func (d Distribution) Entropy() float64 { return entropy.Shannon(d.Probs) }

// P returns the probability of v, 0 when v is not an outcome.
func (d Distribution) P(v int) float64 {
	i := sort.SearchInts(d.Values, v)
	if i < len(d.Values) && d.Values[i] == v {
		return d.Probs[i]
	}

	return 0
}

// index returns the position of v in Values.
func (d Distribution) index(v int) int { return sort.SearchInts(d.Values, v) }

// distribution tallies op over all ordered face pairs.
func distribution(faces []int, op func(x, y int) int) (Distribution, error) {
	if len(faces) == 0 {
		return Distribution{}, ErrNoFaces
	}
	counts := make(map[int]int)
	for _, x := range faces {
		for _, y := range faces {
			counts[op(x, y)]++
		}
	}
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Ints(values)

	total := float64(len(faces) * len(faces))
	probs := make([]float64, len(values))
	for i, v := range values {
		probs[i] = float64(counts[v]) / total
	}

	return Distribution{Values: values, Probs: probs}, nil
}

func sum(x, y int) int  { return x + y }
func prod(x, y int) int { return x * y }

// SumDistribution returns the distribution of x+y.
func SumDistribution(faces []int) (Distribution, error) { return distribution(faces, sum) }

// ProductDistribution returns the distribution of x·y.
func ProductDistribution(faces []int) (Distribution, error) { return distribution(faces, prod) }

// CountMatrix returns how many face pairs produce each (product, sum)
// combination: rows follow the product outcomes, columns the sum outcomes,
// both ascending.
func CountMatrix(faces []int) (*matrix.Dense, error) {
	sums, err := SumDistribution(faces)
	if err != nil {
		return nil, err
	}
	prods, err := ProductDistribution(faces)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(len(prods.Values), len(sums.Values))
	if err != nil {
		return nil, err
	}

	var i, j int
	var v float64
	for _, x := range faces {
		for _, y := range faces {
			i, j = prods.index(prod(x, y)), sums.index(sum(x, y))
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v+1); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// ConditionalMatrix returns P(product | sum): one row per sum outcome, one
// column per product outcome, every row summing to 1.
func ConditionalMatrix(faces []int) (*matrix.Dense, error) {
	counts, err := CountMatrix(faces)
	if err != nil {
		return nil, err
	}
	bySum, err := matrix.Transpose(counts)
	if err != nil {
		return nil, err
	}
	cond, _, err := matrix.NormalizeRowsL1(bySum)

	return cond, err
}

// Report holds the entropies of one Analyze run.
type Report struct {
	Joint       float64 `json:"h_ab" yaml:"h_ab"`   // H(AB)
	Sum         float64 `json:"h_a" yaml:"h_a"`     // H(A)
	Product     float64 `json:"h_b" yaml:"h_b"`     // H(B)
	Conditional float64 `json:"h_a_b" yaml:"h_a_b"` // H_A(B)
	Mutual      float64 `json:"i_ab" yaml:"i_ab"`   // I(A,B)
}

// Values returns H(AB), H(A), H(B), H_A(B), I(A,B) in that order.
func (r Report) Values() []float64 {
	return []float64{r.Joint, r.Sum, r.Product, r.Conditional, r.Mutual}
}

// Analyze computes the Report for faces.
func Analyze(faces []int) (Report, error) {
	sums, err := SumDistribution(faces)
	if err != nil {
		return Report{}, err
	}
	prods, err := ProductDistribution(faces)
	if err != nil {
		return Report{}, err
	}
	cond, err := ConditionalMatrix(faces)
	if err != nil {
		return Report{}, err
	}

	hCond := 0.0
	var row []float64
	for i, p := range sums.Probs {
		if row, err = cond.Row(i); err != nil {
			return Report{}, fmt.Errorf("conditional row %d: %w", i, err)
		}
		hCond += p * entropy.Shannon(row)
	}

	hA, hB := sums.Entropy(), prods.Entropy()

	return Report{
		Joint:       hA + hCond,
		Sum:         hA,
		Product:     hB,
		Conditional: hCond,
		Mutual:      hB - hCond,
	}, nil
}
