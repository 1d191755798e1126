package cmna

import "io"

const (
	MAX_NODES       int     = 50   // Node count limit, ground excluded
	MAX_ELEMENTS    int     = 50   // Element count limit
	MAX_NAME_LENGTH int     = 10   // Node and element name length
	TOLERANCE       float64 = 1e-9 // Absolute pivot threshold

	DEFAULT_PRINTER_WIDTH int = 80
)

// Replace the fixed MAX_NOS, MAX_ELEM, TOLG build constants
type Configuration struct {
	MaxNodes      int     `toml:"max_nodes"`
	MaxElements   int     `toml:"max_elements"`
	MaxNameLength int     `toml:"max_name_length"`
	Tolerance     float64 `toml:"tolerance"` // Absolute, not relative
	PrinterWidth  int     `toml:"printer_width"`
	Annotate      int     `toml:"annotate"` // 0: None, 1: Pivot per step, 2: Full matrix per step

	Output io.Writer `toml:"-"` // Annotation and Print destination. os.Stdout if nil
}

// Dense augmented system. Row and column 0 belong to ground and stay unused,
// column Size+1 is the right hand side.
type Matrix struct {
	Config Configuration

	Size int         // Equation count (neq)
	Data [][]float64 // [0...Size][0...Size+1]

	Factored bool // Solve done, column Size+1 holds the solution

	SingularRow int // Step where the pivot fell below the tolerance

	// Last pivot, for annotation
	PivotRow   int
	PivotValue float64
}

type ElementKind int

const (
	Resistor ElementKind = iota
	CurrentSource
	Transconductance
	OpAmp
)

func (k ElementKind) String() string {
	switch k {
	case Resistor:
		return "resistor"
	case CurrentSource:
		return "current source"
	case Transconductance:
		return "transconductance"
	case OpAmp:
		return "op-amp"
	}
	return "unknown"
}

// Terminals returns the number of nodes an element of this kind connects.
func (k ElementKind) Terminals() int {
	switch k {
	case Transconductance, OpAmp:
		return 4
	}
	return 2
}

// Element is a parsed component with raw (first-seen) node indices.
//
//	Resistor          a b           Value = resistance
//	CurrentSource     a b           Value = current, flows from a to b through the source
//	Transconductance  a b c d       Value = gm, current gm*(V(c)-V(d)) from a to b
//	OpAmp             a b c d       outputs a b, inputs c d, no value
type Element struct {
	Name  string
	Kind  ElementKind
	Nodes [4]int
	Value float64
}
