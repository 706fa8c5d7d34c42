// Package ordering keeps a manually adjustable linear order over a
// collection. Records carry a signed integer order key; inserting at either
// end only needs the current minimum or maximum, never a renumbering. Gaps
// are expected: the key is a sort key, not a rank.
package ordering

import (
	"context"
	"fmt"
	"strings"
)

type Position string

const (
	PositionKeep  Position = ""
	PositionFirst Position = "first"
	PositionLast  Position = "last"
)

// ParsePosition accepts the short forms used by the admin panel (f, l).
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PositionKeep, nil
	case "f", "first", "start":
		return PositionFirst, nil
	case "l", "last", "end":
		return PositionLast, nil
	}
	return PositionKeep, fmt.Errorf("invalid position %q (want f|l)", s)
}

// Bounds reports the smallest and largest order key in a collection.
// ok is false when the collection is empty.
type Bounds interface {
	OrderBounds(ctx context.Context) (min, max int, ok bool, err error)
}

// NextOrder is the order key for a new record. PositionKeep means last.
func NextOrder(ctx context.Context, b Bounds, pos Position) (int, error) {
	lo, hi, ok, err := b.OrderBounds(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	if pos == PositionFirst {
		return lo - 1, nil
	}
	return hi + 1, nil
}

// Reorder is the order key for an existing record moved to pos.
// PositionKeep returns current unchanged.
func Reorder(ctx context.Context, b Bounds, current int, pos Position) (int, error) {
	if pos == PositionKeep {
		return current, nil
	}
	lo, hi, ok, err := b.OrderBounds(ctx)
	if err != nil {
		return current, err
	}
	if !ok {
		return current, nil
	}
	if pos == PositionFirst {
		return lo - 1, nil
	}
	return hi + 1, nil
}
