package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordered/order"
)

// DefaultCapacity is the number of nodes a tree reserves when no capacity
// hint is given.
const DefaultCapacity = 4

// Config configures a red-black tree.
type Config[K any] struct {
	// Policy orders keys and decides between unique and multi semantics.
	Policy order.Policy[K]
	// CapacityHint is the number of elements to reserve room for.
	CapacityHint int
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.CapacityHint == 0 {
		cfg.CapacityHint = DefaultCapacity
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Policy == nil {
		return fmt.Errorf("%w: ordering policy is required", ErrInvalidConfig)
	}
	if cfg.CapacityHint < 0 {
		return fmt.Errorf("%w: negative capacity hint %d", ErrInvalidConfig, cfg.CapacityHint)
	}
	return nil
}
