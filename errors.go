package ordered

import (
	"errors"
	"fmt"

	"github.com/npillmayer/ordered/rbtree"
)

var (
	// ErrNull is flagged for positions which denote no node at all, e.g. the
	// zero Index.
	ErrNull = errors.New("ordered: position denotes no element")
	// ErrEnd is flagged when the end position is used where an element is
	// required.
	ErrEnd = errors.New("ordered: position denotes end")
	// ErrNotAllowed is flagged for operations a storage cannot perform in its
	// current state: after Release, or mutation during iteration.
	ErrNotAllowed = errors.New("ordered: operation not allowed")
	// ErrLowerOutOfBounds is flagged when a position would lie before the
	// first element.
	ErrLowerOutOfBounds = errors.New("ordered: position before start")
	// ErrUpperOutOfBounds is flagged when a position would lie beyond end.
	ErrUpperOutOfBounds = errors.New("ordered: position beyond end")
	// ErrStale is flagged for an index whose element has been erased, or
	// whose tree has been cloned since the index was taken.
	ErrStale = errors.New("ordered: stale index")
	// ErrInvalidRange is flagged for a range whose lower position comes after
	// its upper position.
	ErrInvalidRange = errors.New("ordered: lower position after upper position")
	// ErrInvalidConfig is flagged for an unusable storage configuration.
	ErrInvalidConfig = rbtree.ErrInvalidConfig
)

// Fault is the panic value of checked operations which have been handed
// unusable positions or ranges.
type Fault struct {
	Op  string // operation which failed
	Err error  // one of the error kinds above, possibly wrapped
}

func (f *Fault) Error() string {
	return fmt.Sprintf("ordered: %s: %v", f.Op, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// fail traces err and panics with a *Fault.
func fail(op string, err error) {
	T().Errorf("ordered: fatal fault in %s: %v", op, err)
	panic(&Fault{Op: op, Err: err})
}

// check calls fail for a non-nil error.
func check(op string, err error) {
	if err != nil {
		fail(op, err)
	}
}
