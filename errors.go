package cmna

import "errors"

var (
	// ErrCapacityExceeded indicates more nodes or elements than the configuration allows.
	ErrCapacityExceeded = errors.New("cmna: capacity exceeded")
	// ErrInvalidShort indicates an op-amp whose outputs or inputs are already the same node.
	ErrInvalidShort = errors.New("cmna: op-amp inputs or outputs shorted")
	// ErrSingular indicates the network has no unique operating point.
	ErrSingular = errors.New("cmna: singular system")
	// ErrUnsupportedElement indicates a parsed element the engine cannot stamp.
	ErrUnsupportedElement = errors.New("cmna: unsupported element")
	// ErrInvalidValue indicates an element parameter that cannot be stamped.
	ErrInvalidValue = errors.New("cmna: invalid element value")
	// ErrNameTooLong indicates a node name longer than the configured limit.
	ErrNameTooLong = errors.New("cmna: name too long")
	// ErrNodeOutOfRange indicates a raw node index outside an equivalence table.
	ErrNodeOutOfRange = errors.New("cmna: node index out of range")
	// ErrNotAssembled indicates an operation that needs an assembled circuit.
	ErrNotAssembled = errors.New("cmna: circuit not assembled")
)

// IsSingular reports whether err comes from a singular system rather than
// a malformed network description.
func IsSingular(err error) bool {
	return errors.Is(err, ErrSingular)
}
