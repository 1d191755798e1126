package cmna

// Stamper writes element contributions into a Matrix. Node arguments are raw
// indices; rows are looked up through Rows, columns through Cols.
type Stamper struct {
	Matrix *Matrix
	Rows   EquivalenceTable
	Cols   EquivalenceTable
}

func NewStamper(m *Matrix, rows, cols EquivalenceTable) *Stamper {
	return &Stamper{Matrix: m, Rows: rows, Cols: cols}
}

// StampTransconductance stamps a current gm*(V(n3)-V(n4)) flowing from n1 to n2.
func (s *Stamper) StampTransconductance(gm float64, n1, n2, n3, n4 int) {
	r1, r2 := s.Rows.Lookup(n1), s.Rows.Lookup(n2)
	c3, c4 := s.Cols.Lookup(n3), s.Cols.Lookup(n4)

	s.Matrix.AddElement(r1, c3, gm)
	s.Matrix.AddElement(r2, c4, gm)
	s.Matrix.AddElement(r1, c4, -gm)
	s.Matrix.AddElement(r2, c3, -gm)
}

func (s *Stamper) StampConductance(g float64, a, b int) {
	s.StampTransconductance(g, a, b, a, b)
}

// StampCurrentSource stamps a current i leaving a and entering b through the source.
func (s *Stamper) StampCurrentSource(i float64, a, b int) {
	s.Matrix.AddRHS(s.Rows.Lookup(a), -i)
	s.Matrix.AddRHS(s.Rows.Lookup(b), i)
}

// Stamp dispatches on the element kind. Op-amps have nothing to stamp,
// they live in the equivalence tables.
func (s *Stamper) Stamp(e Element) {
	n := e.Nodes
	switch e.Kind {
	case Resistor:
		s.StampConductance(1.0/e.Value, n[0], n[1])
	case CurrentSource:
		s.StampCurrentSource(e.Value, n[0], n[1])
	case Transconductance:
		s.StampTransconductance(e.Value, n[0], n[1], n[2], n[3])
	case OpAmp:
	}
}
