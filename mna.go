package cmna

import (
	"fmt"
)

// compact modified nodal analysis - ideal op-amps fold into the node numbering
// instead of adding constraint rows and columns

// EquivalenceTable maps a raw node index to its canonical index.
// The output side of every op-amp is merged in the row table,
// the input side in the column table.
type EquivalenceTable []int

func NewEquivalenceTable(size int) EquivalenceTable {
	t := make(EquivalenceTable, size)
	for i := range t {
		t[i] = i
	}
	return t
}

// Merge forces raw nodes a and b onto one canonical index. The higher canonical
// index disappears and every index above it moves down by one, so the table
// stays onto [0, Max()].
func (t EquivalenceTable) Merge(a, b int) error {
	if a < 0 || a >= len(t) || b < 0 || b >= len(t) {
		return fmt.Errorf("%w: %d, %d (table size %d)", ErrNodeOutOfRange, a, b, len(t))
	}

	lo := minOf(t[a], t[b])
	hi := maxOf(t[a], t[b])

	if lo == hi {
		return fmt.Errorf("%w: nodes %d and %d", ErrInvalidShort, a, b)
	}

	for i := range t {
		if t[i] == hi {
			t[i] = lo
		}
		if t[i] > hi {
			t[i]--
		}
	}

	return nil
}

// Lookup returns the canonical index of raw node i. Out of range maps to ground.
func (t EquivalenceTable) Lookup(i int) int {
	if i < 0 || i >= len(t) {
		return 0
	}
	return t[i]
}

// Max returns the highest canonical index, which is the number of active unknowns.
func (t EquivalenceTable) Max() int {
	top := 0
	for _, v := range t {
		top = maxOf(top, v)
	}
	return top
}

// Compact folds every op-amp of elements into rows and cols, in order.
// Returns the number of op-amps folded.
func Compact(elements []Element, rows, cols EquivalenceTable) (int, error) {
	folded := 0
	for _, e := range elements {
		if e.Kind != OpAmp {
			continue
		}

		if err := rows.Merge(e.Nodes[0], e.Nodes[1]); err != nil {
			return folded, fmt.Errorf("op-amp %s outputs: %w", e.Name, err)
		}
		if err := cols.Merge(e.Nodes[2], e.Nodes[3]); err != nil {
			return folded, fmt.Errorf("op-amp %s inputs: %w", e.Name, err)
		}
		folded++
	}
	return folded, nil
}
