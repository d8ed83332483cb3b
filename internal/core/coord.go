package core

import "fmt"

// Coord is a board coordinate: File and Rank both in [0,8).
// (0,0) is a1, (7,7) is h8.
type Coord struct {
	File int
	Rank int
}

// Index is the position in a 64-square board array.
func (c Coord) Index() int {
	return c.File + 8*c.Rank
}

func (c Coord) OnBoard() bool {
	return c.File >= 0 && c.File < 8 && c.Rank >= 0 && c.Rank < 8
}

// String renders the algebraic form, e.g. "e2".
func (c Coord) String() string {
	return string([]byte{byte(c.File) + 'a', byte(c.Rank) + '1'})
}

// ParseCoord parses an algebraic square such as "e2".
func ParseCoord(s string) (Coord, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Coord{}, fmt.Errorf("invalid square %q", s)
	}
	return Coord{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// PerformedMove is an immutable history record of an applied move.
type PerformedMove struct {
	From Coord
	To   Coord
}

// String renders the source and destination pair, e.g. "e2e4".
func (m PerformedMove) String() string {
	return m.From.String() + m.To.String()
}

// ParseMoveText parses a four-letter move such as "e2e4" into its
// source and destination squares.
func ParseMoveText(s string) (from, to Coord, err error) {
	if len(s) != 4 {
		return Coord{}, Coord{}, fmt.Errorf("invalid move %q: want source and destination squares, e.g. e2e4", s)
	}
	if from, err = ParseCoord(s[:2]); err != nil {
		return Coord{}, Coord{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if to, err = ParseCoord(s[2:]); err != nil {
		return Coord{}, Coord{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return from, to, nil
}
