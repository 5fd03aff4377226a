package expr

import (
	"github.com/mitchellh/hashstructure"
)

// StructuralHash hashes e's payload and children, consistent with
// Equal: two structurally-equal expressions hash identically (an
// AggCall's Phase is left out of the hash, as it is left out of
// Equal). It uses hashstructure rather than a hand-rolled traversal
// hash, the way the teacher hashes rows and expressions with the same
// library.
func StructuralHash(e EvalNode) (uint64, error) {
	return hashstructure.Hash(e, nil)
}
