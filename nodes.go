package cmna

import (
	"fmt"
)

const GROUND = "0"

// NodeTable numbers circuit nodes in first-seen order. Ground is always index 0.
type NodeTable struct {
	names   []string       // index -> name, [0] is ground
	indices map[string]int // name -> index

	maxNodes      int
	maxNameLength int
}

func NewNodeTable(maxNodes, maxNameLength int) *NodeTable {
	return &NodeTable{
		names:         []string{GROUND},
		indices:       map[string]int{GROUND: 0},
		maxNodes:      maxNodes,
		maxNameLength: maxNameLength,
	}
}

// Resolve returns the index of name, assigning the next free one on first sight.
func (t *NodeTable) Resolve(name string) (int, error) {
	if index, ok := t.indices[name]; ok {
		return index, nil
	}

	if t.maxNameLength > 0 && len(name) > t.maxNameLength {
		return 0, fmt.Errorf("%w: node %q longer than %d characters", ErrNameTooLong, name, t.maxNameLength)
	}
	if t.Count() >= t.maxNodes {
		return 0, fmt.Errorf("%w: only %d nodes allowed, node %q", ErrCapacityExceeded, t.maxNodes, name)
	}

	index := len(t.names)
	t.names = append(t.names, name)
	t.indices[name] = index

	return index, nil
}

// ResolveAll resolves names as one unit. Every new name is checked before
// any is registered, so a failure leaves the table unchanged.
func (t *NodeTable) ResolveAll(names []string) ([]int, error) {
	fresh := map[string]bool{}
	for _, name := range names {
		if _, ok := t.indices[name]; ok || fresh[name] {
			continue
		}
		if t.maxNameLength > 0 && len(name) > t.maxNameLength {
			return nil, fmt.Errorf("%w: node %q longer than %d characters", ErrNameTooLong, name, t.maxNameLength)
		}
		if t.Count()+len(fresh) >= t.maxNodes {
			return nil, fmt.Errorf("%w: only %d nodes allowed, node %q", ErrCapacityExceeded, t.maxNodes, name)
		}
		fresh[name] = true
	}

	indices := make([]int, len(names))
	for i, name := range names {
		index, err := t.Resolve(name)
		if err != nil {
			return nil, err
		}
		indices[i] = index
	}
	return indices, nil
}

// Lookup returns the index of an already resolved name.
func (t *NodeTable) Lookup(name string) (int, bool) {
	index, ok := t.indices[name]
	return index, ok
}

func (t *NodeTable) Name(index int) string {
	if index < 0 || index >= len(t.names) {
		return ""
	}
	return t.names[index]
}

// Count returns the number of non-ground nodes.
func (t *NodeTable) Count() int {
	return len(t.names) - 1
}

// Names returns node names in index order, ground first.
func (t *NodeTable) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}
