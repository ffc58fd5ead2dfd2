// Package concordance measures how far several experts agree when each of
// them orders the same set of objects.
//
// Every expert supplies a strict order (best first). RankMatrix turns the
// orders into ranks over the sorted object keys, and KendallW computes
// Kendall's coefficient of concordance
//
//	W = 12·S / (m²·(n³ − n))
//
// where m is the number of experts, n the number of objects and S the sum of
// squared deviations of the object rank totals from their mean m(n+1)/2.
// W is 1 for unanimous experts and 0 when rank totals are all equal.
package concordance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/orgentropy/matrix"
	"github.com/katalvlaran/orgentropy/ranking"
)

// Sentinel errors.
var (
	ErrNoExperts     = errors.New("concordance: no experts")
	ErrTooFewObjects = errors.New("concordance: fewer than two objects")
	ErrKeyMismatch   = errors.New("concordance: experts rank different objects")
	ErrMalformed     = errors.New("concordance: malformed order")
)

// Order is one expert's ordering of object keys, best first.
type Order []string

// Parse decodes one JSON array per expert. Elements may be strings or
// numbers; numbers keep their literal spelling as key.
func Parse(args ...string) ([]Order, error) {
	if len(args) == 0 {
		return nil, ErrNoExperts
	}
	orders := make([]Order, len(args))
	for i, arg := range args {
		dec := json.NewDecoder(bytes.NewReader([]byte(arg)))
		dec.UseNumber()
		var items []any
		if err := dec.Decode(&items); err != nil {
			return nil, fmt.Errorf("%w: expert %d: %w", ErrMalformed, i+1, err)
		}
		order := make(Order, len(items))
		for j, item := range items {
			switch v := item.(type) {
			case string:
				order[j] = v
			case json.Number:
				order[j] = v.String()
			default:
				return nil, fmt.Errorf("%w: expert %d: item %d is %T", ErrMalformed, i+1, j, item)
			}
		}
		orders[i] = order
	}

	return orders, nil
}

// RankMatrix returns the experts × objects matrix of 1-based ranks together
// with the sorted object keys that label its columns.
func RankMatrix(orders []Order) (*matrix.Dense, []string, error) {
	if len(orders) == 0 {
		return nil, nil, ErrNoExperts
	}
	keys := append([]string(nil), orders[0]...)
	ranking.SortLabels(keys)
	n := len(keys)
	if n < 2 {
		return nil, nil, ErrTooFewObjects
	}

	ranks, err := matrix.NewDense(len(orders), n)
	if err != nil {
		return nil, nil, err
	}
	column := make(map[string]int, n)
	for j, k := range keys {
		column[k] = j
	}
	for i, order := range orders {
		if len(order) != n {
			return nil, nil, fmt.Errorf("expert %d: %d objects, want %d: %w", i+1, len(order), n, ErrKeyMismatch)
		}
		seen := make(map[string]bool, n)
		for pos, k := range order {
			j, ok := column[k]
			if !ok || seen[k] {
				return nil, nil, fmt.Errorf("expert %d: %q: %w", i+1, k, ErrKeyMismatch)
			}
			seen[k] = true
			if err = ranks.Set(i, j, float64(pos+1)); err != nil {
				return nil, nil, err
			}
		}
	}

	return ranks, keys, nil
}

// KendallW computes the coefficient of concordance of an experts × objects
// rank matrix.
func KendallW(ranks matrix.Matrix) (float64, error) {
	if ranks == nil || ranks.Rows() == 0 {
		return 0, ErrNoExperts
	}
	m, n := float64(ranks.Rows()), float64(ranks.Cols())
	if ranks.Cols() < 2 {
		return 0, ErrTooFewObjects
	}

	byObject, err := matrix.Transpose(ranks)
	if err != nil {
		return 0, err
	}
	totals, err := matrix.RowSums(byObject)
	if err != nil {
		return 0, err
	}

	mean := m * (n + 1) / 2
	s := 0.0
	for _, r := range totals {
		s += (r - mean) * (r - mean)
	}

	return 12 * s / (m * m * (n*n*n - n)), nil
}

// Compute parses the expert orders and returns their W.
func Compute(args ...string) (float64, error) {
	orders, err := Parse(args...)
	if err != nil {
		return 0, err
	}
	ranks, _, err := RankMatrix(orders)
	if err != nil {
		return 0, err
	}

	return KendallW(ranks)
}
