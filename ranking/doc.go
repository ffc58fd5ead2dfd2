// Package ranking compares and merges expert rankings with ties.
//
// A Ranking is an ordered list of clusters; labels inside one cluster are
// tied. In JSON a single label stands for a one-element cluster:
//
//	["1", ["2","3"], "4"]
//
// Each ranking induces an order-relation matrix over the sorted label set,
// with y[i][j] = 1 when label j is not ranked after label i. Two rankings
// disagree on a pair (i, j) when neither A∘B nor Aᵀ∘Bᵀ relates them; such
// pairs are controversies. Merge resolves controversies as ties and emits the
// combined ranking.
//
// Errors:
//   - ErrMalformed for input that is not a list of labels and label lists.
//   - ErrDuplicate when a label occurs twice in one ranking.
//   - ErrLabelMismatch when two rankings cover different labels.
package ranking
