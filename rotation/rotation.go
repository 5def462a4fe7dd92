// Package rotation implements a whole-stream circular bit rotation. The input
// is treated as one contiguous bit sequence, from the most-significant bit of
// its first byte through the least-significant bit of its last byte; every bit
// moves one position left or right, and the bit that falls off one end wraps
// around to the other.
package rotation

import (
	"fmt"
)

// Direction selects which way the bit sequence is rotated.
type Direction int

const (
	// Left moves every bit toward lower indices; the stream's first bit
	// wraps around to become its last.
	Left Direction = iota

	// Right moves every bit toward higher indices; the stream's last bit
	// wraps around to become its first.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection parses a direction token. Exactly "left" and "right" are
// accepted, case-sensitive.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid direction; expected: \"left\" or \"right\", given: %q", s)
}
