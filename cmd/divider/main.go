package main

import (
	"fmt"
	"log"

	"github.com/edp1096/cmna"
)

// Non-inverting amplifier: a current source drives Rin, the op-amp
// multiplies the input by 1 + R2/R1.
func main() {
	const (
		Iin = 1e-3
		Rin = 1000.0
		R1  = 1000.0
		R2  = 2000.0
	)

	ckt := cmna.New("non-inverting amplifier", nil)

	elements := []struct {
		name  string
		kind  cmna.ElementKind
		nodes []string
		value float64
	}{
		{"I1", cmna.CurrentSource, []string{"0", "in"}, Iin},
		{"Rin", cmna.Resistor, []string{"in", "0"}, Rin},
		{"O1", cmna.OpAmp, []string{"out", "0", "in", "fb"}, 0},
		{"R1", cmna.Resistor, []string{"fb", "0"}, R1},
		{"R2", cmna.Resistor, []string{"out", "fb"}, R2},
	}

	for _, e := range elements {
		if err := ckt.AddElement(e.name, e.kind, e.nodes, e.value); err != nil {
			log.Fatalf("Failed to add %s: %v", e.name, err)
		}
	}

	if err := ckt.Assemble(); err != nil {
		log.Fatalf("Failed to assemble circuit: %v", err)
	}

	ckt.Matrix.Print(true, true, true)

	result, err := ckt.Solve()
	if err != nil {
		log.Fatalf("Failed to solve circuit: %v", err)
	}

	vin, _ := result.Voltage("in")
	vout, _ := result.Voltage("out")

	fmt.Printf("Equations: %d (nodes %d)\n", result.Equations, ckt.Nodes.Count())
	fmt.Printf("Voltage at node in (Vin): %.4f V\n", vin)
	fmt.Printf("Voltage at node out (Vout): %.4f V\n", vout)
	fmt.Printf("Gain (1 + R2 / R1): %.4f\n", vout/vin)
}
