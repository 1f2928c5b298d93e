package lutz

import (
	"errors"
	"fmt"
)

// Sentinel errors for labeler configuration and queries.
var (
	// ErrConfiguration indicates the grid configuration was rejected.
	ErrConfiguration = errors.New("lutz: invalid configuration")
	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("lutz: invalid option supplied")
	// ErrObjectIndex indicates an out-of-range object index.
	ErrObjectIndex = errors.New("lutz: object index out of range")
	// ErrInvariant indicates the scanner's internal protocol broke.
	ErrInvariant = errors.New("lutz: scan invariant violated")
)

// InvariantError describes where the scan state machine broke.
type InvariantError struct {
	Op     string // operation that detected the violation
	Row    int    // grid row being scanned
	Col    int    // column, width denotes the synthetic trailing column
	Slot   int    // current open-object slot
	Depth  int    // saved-status stack depth
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lutz: invariant violated in %s at row %d col %d (slot %d, depth %d): %s",
		e.Op, e.Row, e.Col, e.Slot, e.Depth, e.Reason)
}

// Is makes errors.Is(err, ErrInvariant) match.
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }
