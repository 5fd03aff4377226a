package plan

import "github.com/mitchellh/hashstructure"

// HashCode returns a structural hash of n's payload and children,
// excluding its PID, so two plans built from independent PIDFactory
// instances but otherwise identical hash equal. Two nodes for which
// DeepEquals returns true always produce the same HashCode; the
// converse is not guaranteed (hash collisions are possible).
func HashCode(n LogicalNode) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	h, err := hashstructure.Hash(stripIdentity(n), nil)
	if err != nil {
		return 0, err
	}
	children := n.Children()
	for _, c := range children {
		ch, err := HashCode(c)
		if err != nil {
			return 0, err
		}
		h = h ^ (ch + 0x9e3779b9 + (h << 6) + (h >> 2))
	}
	return h, nil
}
