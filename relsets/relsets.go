// Package relsets lists, for a tree given as an index adjacency list, which
// nodes take part in each of the five relation kinds.
//
// The input is a JSON array whose i-th element holds the child indices of
// node i; node 0 is the root:
//
//	[[1,2,3],[4,5],[6],[7],[],[],[],[]]
//
// The relation kinds are those of package hierarchy, so the sets are derived
// from a finalized hierarchy.Tree whose labels are the decimal indices.
package relsets

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// ErrMalformed indicates an adjacency list that does not describe a tree
// rooted at node 0.
var ErrMalformed = errors.New("relsets: malformed adjacency list")

// Sets holds ascending node indices per relation kind.
type Sets struct {
	DirectManagement      []int `json:"direct_management" yaml:"direct_management,flow"`
	DirectSubordination   []int `json:"direct_subordination" yaml:"direct_subordination,flow"`
	IndirectManagement    []int `json:"indirect_management" yaml:"indirect_management,flow"`
	IndirectSubordination []int `json:"indirect_subordination" yaml:"indirect_subordination,flow"`
	Subordination         []int `json:"subordination" yaml:"subordination,flow"`
}

// Lists returns the five sets in relation column order.
func (s Sets) Lists() [][]int {
	return [][]int{
		s.DirectManagement,
		s.DirectSubordination,
		s.IndirectManagement,
		s.IndirectSubordination,
		s.Subordination,
	}
}

// Parse decodes the JSON adjacency list.
func Parse(text string) ([][]int, error) {
	var adj [][]int
	if err := json.Unmarshal([]byte(text), &adj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return adj, nil
}

// BuildTree turns adj into a finalized hierarchy.Tree labeled "0".."n-1".
// Children are appended breadth-first from node 0, so every parent exists
// before its children.
func BuildTree(adj [][]int) (*hierarchy.Tree, error) {
	if len(adj) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrMalformed)
	}
	tree, err := hierarchy.NewTree("0")
	if err != nil {
		return nil, err
	}

	queue := []int{0}
	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for _, v := range adj[u] {
			if v < 0 || v >= len(adj) {
				return nil, fmt.Errorf("%w: node %d: child %d out of range", ErrMalformed, u, v)
			}
			if _, err = tree.Append(strconv.Itoa(u), strconv.Itoa(v)); err != nil {
				return nil, fmt.Errorf("%w: node %d: child %d: %w", ErrMalformed, u, v, err)
			}
			queue = append(queue, v)
		}
	}
	if tree.Len() != len(adj) {
		return nil, fmt.Errorf("%w: %d of %d nodes unreachable from 0",
			ErrMalformed, len(adj)-tree.Len(), len(adj))
	}
	if err = tree.Finalize(); err != nil {
		return nil, err
	}

	return tree, nil
}

// Compute returns the relation sets of adj.
func Compute(adj [][]int) (Sets, error) {
	tree, err := BuildTree(adj)
	if err != nil {
		return Sets{}, err
	}

	var s Sets
	var n *hierarchy.Node
	for i := range adj {
		if n, err = tree.Find(strconv.Itoa(i)); err != nil {
			return Sets{}, err
		}
		r := n.Relation
		if r.DirectManagement > 0 {
			s.DirectManagement = append(s.DirectManagement, i)
		}
		if r.DirectSubordination > 0 {
			s.DirectSubordination = append(s.DirectSubordination, i)
		}
		if r.IndirectManagement > 0 {
			s.IndirectManagement = append(s.IndirectManagement, i)
		}
		if r.IndirectSubordination > 0 {
			s.IndirectSubordination = append(s.IndirectSubordination, i)
		}
		if r.Subordination > 0 {
			s.Subordination = append(s.Subordination, i)
		}
	}

	return s, nil
}

// ComputeText is Parse followed by Compute.
func ComputeText(text string) (Sets, error) {
	adj, err := Parse(text)
	if err != nil {
		return Sets{}, err
	}

	return Compute(adj)
}
