package engine

import (
	"schaak/internal/core"
)

// MoveKind tags a move with the rule that applies it.
type MoveKind int

const (
	// MoveNormal relocates a piece with no special side effects.
	MoveNormal MoveKind = iota
	// MoveDoublePush is a two-square advance of an unmoved pawn; it flags
	// the pawn as capturable en passant for one ply.
	MoveDoublePush
	// MoveEnPassant captures a pawn that just double-pushed past the mover.
	MoveEnPassant
	// MoveCastle relocates king and rook in one application.
	MoveCastle
	// MovePromotion replaces a pawn reaching the far rank.
	MovePromotion
)

// Move is a playable move: plain, comparable data interpreted by
// Position.MakeMove. Promotion is set for MovePromotion only; Long
// distinguishes queenside from kingside for MoveCastle.
type Move struct {
	Kind      MoveKind
	From      core.Coord
	To        core.Coord
	Promotion core.PieceKind
	Long      bool
}

// MoveTo finds the move with the given destination, the membership test
// an input layer uses to validate a selected target square.
func MoveTo(moves []Move, to core.Coord) (Move, bool) {
	for _, m := range moves {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

// Destinations projects moves onto their target squares.
func Destinations(moves []Move) []core.Coord {
	coords := make([]core.Coord, 0, len(moves))
	for _, m := range moves {
		coords = append(coords, m.To)
	}
	return coords
}
