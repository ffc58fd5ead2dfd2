// Package entropy computes Shannon entropy over discrete distributions and,
// on top of that, the self and full entropy of an organizational hierarchy.
//
// Self entropy of a node treats its five relation counts as frequencies over
// n-1 possible partners (n = tree size):
//
//	H(node) = -Σ p·log2(p),  p = count/(n-1),  terms with p <= 0 contribute 0
//
// Full entropy is the sum of self entropy over every node. The same value can
// be computed from a flat relation table (rows = nodes, five columns) without
// a tree, see FromTable and FromRelationTableText.
package entropy
