// Package netlist reads the netlist line grammar of the compact nodal analysis
// program into element records with symbolic node names.
//
// The first line is the title. Every other line is one of:
//
//	* comment
//	.TRAN <stop> <step> <method> <theta> <points per step>
//	R<name> <node+> <node-> <resistance>
//	I<name> <node+> <node-> <current>
//	V<name> <node+> <node-> <voltage>
//	L<name> <node+> <node-> <inductance>
//	C<name> <node+> <node-> <capacitance>
//	G<name> <nodeI+> <nodeI-> <nodev+> <nodev-> <Gm>
//	E<name> <nodeV+> <nodeV-> <nodev+> <nodev-> <Av>
//	F<name> <nodeI+> <nodeI-> <nodei+> <nodei-> <Ai>
//	H<name> <nodeV+> <nodeV-> <nodei+> <nodei-> <Rm>
//	K<name> <nodea> <nodeb> <nodec> <noded> <n>
//	O<name> <out+> <out-> <in+> <in->
//
// The element type is the first character of the line, case-insensitive.
// Node names are case-sensitive and "0" is ground.
package netlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	// ErrUnknownElement indicates a line whose type character is not part of the grammar.
	ErrUnknownElement = errors.New("netlist: unknown element")
	// ErrSyntax indicates a line with missing or malformed fields.
	ErrSyntax = errors.New("netlist: syntax error")
	// ErrEmpty indicates input without a title line.
	ErrEmpty = errors.New("netlist: empty netlist")
)

type Element struct {
	Type  byte     // Upper case type character (R, I, G, O, ...)
	Name  string   // Element name, type character included
	Nodes []string // Node names
	Value float64  // Element value, zero for op-amps
	Line  int      // Line number in the netlist, 1-based
}

// Transient holds the parameters of a '.' control line. They are recorded
// and reported, no time-domain analysis runs on them.
type Transient struct {
	Stop          float64 // Simulation time
	Step          float64 // Step size
	Method        string
	Theta         float64
	PointsPerStep int // Steps per point in the output table
}

type Netlist struct {
	Title     string
	Elements  []Element
	Transient *Transient
}

// Node and value count per element type
var grammar = map[byte]struct {
	nodes    int
	hasValue bool
}{
	'R': {2, true},
	'I': {2, true},
	'V': {2, true},
	'L': {2, true},
	'C': {2, true},
	'G': {4, true},
	'E': {4, true},
	'F': {4, true},
	'H': {4, true},
	'K': {4, true},
	'O': {4, false},
}

func ParseFile(filename string) (*Netlist, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %v", err)
	}
	defer file.Close()

	return Parse(file)
}

func ParseString(input string) (*Netlist, error) {
	return Parse(strings.NewReader(input))
}

func Parse(r io.Reader) (*Netlist, error) {
	scanner := bufio.NewScanner(r)
	n := &Netlist{}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmpty
	}
	n.Title = strings.TrimSpace(scanner.Text())

	lineNumber := 1
	for scanner.Scan() {
		lineNumber++

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		switch line[0] {
		case '*': // Comment
			continue
		case '.':
			transient, err := parseTransient(line, lineNumber)
			if err != nil {
				return nil, err
			}
			n.Transient = transient
			continue
		}

		element, err := parseElement(line, lineNumber)
		if err != nil {
			return nil, err
		}
		n.Elements = append(n.Elements, *element)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return n, nil
}

func parseElement(line string, lineNumber int) (*Element, error) {
	fields := strings.Fields(line)

	elemType := upper(line[0])
	rule, ok := grammar[elemType]
	if !ok {
		return nil, fmt.Errorf("%w at line %d: %s", ErrUnknownElement, lineNumber, line)
	}

	want := 1 + rule.nodes
	if rule.hasValue {
		want++
	}
	if len(fields) < want {
		return nil, fmt.Errorf("%w at line %d: %s needs %d fields, got %d", ErrSyntax, lineNumber, fields[0], want, len(fields))
	}

	elem := &Element{
		Type:  elemType,
		Name:  string(elemType) + fields[0][1:],
		Nodes: fields[1 : 1+rule.nodes],
		Line:  lineNumber,
	}

	if rule.hasValue {
		value, err := ParseValue(fields[1+rule.nodes])
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %s: %v", ErrSyntax, lineNumber, elem.Name, err)
		}
		elem.Value = value
	}

	return elem, nil
}

// .TRAN <stop> <step> [method] [theta] [points per step]
func parseTransient(line string, lineNumber int) (*Transient, error) {
	var err error

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w at line %d: control line needs stop time and step", ErrSyntax, lineNumber)
	}

	t := &Transient{PointsPerStep: 1}
	if t.Stop, err = ParseValue(fields[1]); err != nil {
		return nil, fmt.Errorf("%w at line %d: invalid stop time: %v", ErrSyntax, lineNumber, err)
	}
	if t.Step, err = ParseValue(fields[2]); err != nil {
		return nil, fmt.Errorf("%w at line %d: invalid step: %v", ErrSyntax, lineNumber, err)
	}
	if len(fields) > 3 {
		t.Method = fields[3]
	}
	if len(fields) > 4 {
		if t.Theta, err = ParseValue(fields[4]); err != nil {
			return nil, fmt.Errorf("%w at line %d: invalid theta: %v", ErrSyntax, lineNumber, err)
		}
	}
	if len(fields) > 5 {
		if t.PointsPerStep, err = strconv.Atoi(fields[5]); err != nil {
			return nil, fmt.Errorf("%w at line %d: invalid points per step: %v", ErrSyntax, lineNumber, err)
		}
	}

	return t, nil
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
