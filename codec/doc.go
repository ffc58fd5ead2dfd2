// Package codec persists hierarchy trees as nested documents and converts
// them to the flat relation table.
//
// Document shape (JSON shown; YAML uses the same keys):
//
//	{
//	  "1": {
//	    "relation": {
//	      "direct_management": 1,
//	      "direct_subordination": 0,
//	      "indirect_management": 6,
//	      "indirect_subordination": 0,
//	      "subordination": 0
//	    },
//	    "children": {
//	      "2": { "relation": {...}, "children": {...} }
//	    }
//	  }
//	}
//
// Decoding goes through yaml.v3 node trees for both formats, which keeps
// children in document order. It is strict: exactly one top-level key, every
// node holds exactly "relation" and "children", every relation holds the five
// non-negative integer fields. Anything else fails with ErrMalformed and the
// path of the offending node.
package codec
