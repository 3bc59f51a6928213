package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("rbtree: invariant violated")
	// ErrBeyondEnd signals a walk past the end sentinel.
	ErrBeyondEnd = errors.New("rbtree: position beyond end")
	// ErrBeforeBegin signals a walk before the first element.
	ErrBeforeBegin = errors.New("rbtree: position before begin")
)
