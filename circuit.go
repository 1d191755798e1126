package cmna

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/edp1096/cmna/netlist"
)

// Circuit collects elements, folds op-amps into the node numbering and owns
// the assembled system.
type Circuit struct {
	Title    string
	Config   Configuration
	Nodes    *NodeTable
	Elements []Element

	Rows EquivalenceTable // Output side, one KCL row per canonical index
	Cols EquivalenceTable // Input side, one voltage column per canonical index

	Matrix    *Matrix
	Assembled *Matrix // Copy of Matrix taken before elimination

	Logger *log.Logger
}

type NodeVoltage struct {
	Name    string
	Index   int // Raw, first-seen index
	Column  int // Canonical index in the solution
	Voltage float64
}

type Result struct {
	Title     string
	Equations int       // neq
	Solution  []float64 // [0...Equations], [0] is ground
	Nodes     []NodeVoltage
}

// Voltage returns the solved voltage of a named node.
func (r *Result) Voltage(name string) (float64, bool) {
	if name == GROUND {
		return 0, true
	}
	for _, n := range r.Nodes {
		if n.Name == name {
			return n.Voltage, true
		}
	}
	return 0, false
}

func New(title string, config *Configuration) *Circuit {
	if config == nil {
		config = DefaultConfiguration()
	}

	return &Circuit{
		Title:  title,
		Config: *config,
		Nodes:  NewNodeTable(config.MaxNodes, config.MaxNameLength),
		Logger: log.Default(),
	}
}

// AddElement resolves node names and appends one element in netlist order.
func (c *Circuit) AddElement(name string, kind ElementKind, nodes []string, value float64) error {
	if len(c.Elements) >= c.Config.MaxElements {
		return fmt.Errorf("%w: only %d elements allowed, element %s", ErrCapacityExceeded, c.Config.MaxElements, name)
	}
	if len(nodes) != kind.Terminals() {
		return fmt.Errorf("%s %s: requires exactly %d nodes, got %d", kind, name, kind.Terminals(), len(nodes))
	}
	if kind == Resistor && value == 0.0 {
		return fmt.Errorf("%w: resistor %s has zero resistance", ErrInvalidValue, name)
	}

	indices, err := c.Nodes.ResolveAll(nodes)
	if err != nil {
		return fmt.Errorf("element %s: %w", name, err)
	}

	e := Element{Name: name, Kind: kind, Value: value}
	copy(e.Nodes[:], indices)

	c.Elements = append(c.Elements, e)
	c.Matrix = nil
	c.Assembled = nil

	return nil
}

// LoadNetlist adds every element of n. Only R, I, G and O lines can be stamped.
func (c *Circuit) LoadNetlist(n *netlist.Netlist) error {
	if c.Title == "" {
		c.Title = n.Title
	}

	for _, elem := range n.Elements {
		var kind ElementKind

		switch elem.Type {
		case 'R':
			kind = Resistor
		case 'I':
			kind = CurrentSource
		case 'G':
			kind = Transconductance
		case 'O':
			kind = OpAmp
		default:
			return fmt.Errorf("%w at line %d: %s", ErrUnsupportedElement, elem.Line, elem.Name)
		}

		if err := c.AddElement(elem.Name, kind, elem.Nodes, elem.Value); err != nil {
			return fmt.Errorf("line %d: %w", elem.Line, err)
		}
	}

	return nil
}

// Assemble folds every op-amp into the equivalence tables and then stamps
// every element into a matrix of the reduced size.
func (c *Circuit) Assemble() error {
	size := c.Nodes.Count() + 1
	c.Rows = NewEquivalenceTable(size)
	c.Cols = NewEquivalenceTable(size)
	c.Matrix = nil
	c.Assembled = nil

	folded, err := Compact(c.Elements, c.Rows, c.Cols)
	if err != nil {
		return err
	}

	for _, e := range c.Elements {
		if e.Kind == OpAmp {
			c.Logger.Debug("op-amp folded", "name", e.Name,
				"outputs", fmt.Sprintf("%d %d", e.Nodes[0], e.Nodes[1]),
				"row", c.Rows.Lookup(e.Nodes[0]),
				"inputs", fmt.Sprintf("%d %d", e.Nodes[2], e.Nodes[3]),
				"column", c.Cols.Lookup(e.Nodes[2]))
		}
	}

	// Each op-amp removes one row and one column, so neq = nodes - op-amps.
	neq := c.Rows.Max()
	if cols := c.Cols.Max(); cols != neq {
		return fmt.Errorf("row and column tables disagree: %d rows, %d columns", neq, cols)
	}

	m, err := Create(neq, &c.Config)
	if err != nil {
		return fmt.Errorf("failed to create matrix: %v", err)
	}

	stamper := NewStamper(m, c.Rows, c.Cols)
	for _, e := range c.Elements {
		stamper.Stamp(e)
	}

	c.Matrix = m
	c.Assembled = m.Clone()

	c.Logger.Debug("assembled", "nodes", c.Nodes.Count(), "elements", len(c.Elements), "op-amps", folded, "equations", neq)

	return nil
}

// Solve assembles the circuit unless a fresh matrix is waiting and solves it.
// A singular system is reported with an error matching ErrSingular.
func (c *Circuit) Solve() (*Result, error) {
	if c.Matrix == nil || c.Matrix.Factored || c.Matrix.SingularRow != 0 {
		if err := c.Assemble(); err != nil {
			return nil, err
		}
	}

	if err := c.Matrix.Solve(); err != nil {
		return nil, err
	}

	solution, err := c.Matrix.Solution()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Title:     c.Title,
		Equations: c.Matrix.Size,
		Solution:  solution,
	}

	for index, name := range c.Nodes.Names() {
		if index == 0 {
			continue
		}
		column := c.Cols.Lookup(index)
		result.Nodes = append(result.Nodes, NodeVoltage{
			Name:    name,
			Index:   index,
			Column:  column,
			Voltage: solution[column],
		})
	}

	return result, nil
}
