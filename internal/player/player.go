package player

import (
	"math/rand"

	"schaak/internal/engine"
)

// MoveInfo is the unit exchanged between a worker and its coordinator: a
// single applied move, self-contained enough to replay on any position
// mirror.
type MoveInfo struct {
	Move engine.Move
}

// ChooseRandom picks a uniformly random move for the side to move. Every
// candidate is re-verified on a clone so a side in check only ever plays
// an escaping move. The second return is false when no move exists.
func ChooseRandom(rng *rand.Rand, pos *engine.Position) (engine.Move, bool) {
	var candidates []engine.Move
	for _, sq := range pos.Board {
		if sq.Empty() || sq.Piece.Color != pos.Turn {
			continue
		}
		for _, m := range pos.Moves(sq.Coord, true) {
			test := pos.Clone()
			test.MakeMove(m)
			if test.IsInCheck(pos.Turn) {
				continue
			}
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return engine.Move{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
