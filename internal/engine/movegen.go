package engine

import (
	"fmt"

	"schaak/internal/core"
)

// Moves generates the moves available from an occupied square. With
// filterChecks set, candidates that would leave the mover's own king
// attacked are discarded by simulating each on a cloned position; check
// evaluation itself calls Moves with filterChecks false, which keeps the
// recursion bounded. Castling is attached after the filter and is never
// check-filtered (see DESIGN.md open questions).
//
// Calling this on an empty square is an engine invariant violation.
func (p *Position) Moves(from core.Coord, filterChecks bool) []Move {
	pc := p.Board.PieceAt(from)
	if pc.Kind == core.NoPiece {
		panic(fmt.Sprintf("move generation on empty square %s", from))
	}

	var moves []Move // moves classified during generation (en passant)
	var dests []core.Coord

	if pc.Kind.IsSliding() {
		dests = p.slidingDestinations(from, pc)
	} else {
		switch pc.Kind {
		case core.Pawn:
			dests, moves = p.pawnDestinations(from, pc)
		case core.Knight:
			dests = p.steppingDestinations(from, pc, knightOffsets)
		case core.King:
			dests = p.steppingDestinations(from, pc, kingOffsets)
		}
	}

	if filterChecks {
		kept := dests[:0]
		for _, d := range dests {
			test := p.Clone()
			test.relocate(from, d)
			if !test.IsInCheck(pc.Color) {
				kept = append(kept, d)
			}
		}
		dests = kept

		// En-passant candidates arrive pre-classified; simulate them the
		// same way so a pinned pawn cannot capture into a self-check.
		keptMoves := moves[:0]
		for _, m := range moves {
			test := p.Clone()
			test.relocate(m.From, m.To)
			if !test.IsInCheck(pc.Color) {
				keptMoves = append(keptMoves, m)
			}
		}
		moves = keptMoves
	}

	// Classify the surviving plain destinations.
	for _, d := range dests {
		switch {
		case pc.Kind == core.Pawn && (d.Rank == 0 || d.Rank == 7):
			moves = append(moves, Move{Kind: MovePromotion, From: from, To: d, Promotion: p.NextPromotion})
		case pc.Kind == core.Pawn && !pc.HasMoved && abs(d.Rank-from.Rank) == 2:
			moves = append(moves, Move{Kind: MoveDoublePush, From: from, To: d})
		default:
			moves = append(moves, Move{Kind: MoveNormal, From: from, To: d})
		}
	}

	if pc.Kind == core.King && !pc.HasMoved {
		moves = append(moves, p.castleMoves(from, pc)...)
	}

	return moves
}

// slidingDestinations ray-casts along each of the piece's directions:
// stop before the edge, stop after a capture square, stop before a
// friendly piece.
func (p *Position) slidingDestinations(from core.Coord, pc core.Piece) []core.Coord {
	var offsets []offset
	switch pc.Kind {
	case core.Queen:
		offsets = queenOffsets
	case core.Rook:
		offsets = rookOffsets
	case core.Bishop:
		offsets = bishopOffsets
	}

	var dests []core.Coord
	for _, dir := range offsets {
		next := core.Coord{File: from.File + dir.df, Rank: from.Rank + dir.dr}
		for next.OnBoard() {
			hit := p.Board.PieceAt(next)
			if hit.Kind != core.NoPiece {
				if hit.Color != pc.Color {
					dests = append(dests, next)
				}
				break
			}
			dests = append(dests, next)
			next = core.Coord{File: next.File + dir.df, Rank: next.Rank + dir.dr}
		}
	}
	return dests
}

// steppingDestinations enumerates the fixed offset set, keeping on-board
// squares not occupied by a friendly piece.
func (p *Position) steppingDestinations(from core.Coord, pc core.Piece, offsets []offset) []core.Coord {
	var dests []core.Coord
	for _, o := range offsets {
		to := core.Coord{File: from.File + o.df, Rank: from.Rank + o.dr}
		if !to.OnBoard() {
			continue
		}
		if hit := p.Board.PieceAt(to); hit.Kind != core.NoPiece && hit.Color == pc.Color {
			continue
		}
		dests = append(dests, to)
	}
	return dests
}

// pawnDestinations handles the colour-directed forward advances and the
// diagonal captures. En-passant candidates come back as ready-made moves
// since their effect is known during generation.
func (p *Position) pawnDestinations(from core.Coord, pc core.Piece) ([]core.Coord, []Move) {
	dir := 1
	if pc.Color == core.ColorBlack {
		dir = -1
	}

	var dests []core.Coord
	var moves []Move

	one := core.Coord{File: from.File, Rank: from.Rank + dir}
	if one.OnBoard() && p.Board.PieceAt(one).Kind == core.NoPiece {
		dests = append(dests, one)
		if !pc.HasMoved {
			two := core.Coord{File: from.File, Rank: from.Rank + 2*dir}
			if two.OnBoard() && p.Board.PieceAt(two).Kind == core.NoPiece {
				dests = append(dests, two)
			}
		}
	}

	for _, df := range []int{-1, 1} {
		diag := core.Coord{File: from.File + df, Rank: from.Rank + dir}
		if !diag.OnBoard() {
			continue
		}
		if hit := p.Board.PieceAt(diag); hit.Kind != core.NoPiece && hit.Color != pc.Color {
			dests = append(dests, diag)
		}
		beside := core.Coord{File: from.File + df, Rank: from.Rank}
		if p.Board.PieceAt(beside).EnPassantable {
			moves = append(moves, Move{Kind: MoveEnPassant, From: from, To: diag})
		}
	}

	return dests, moves
}

// castleMoves offers castling when the king and the relevant rook are
// unmoved and the squares strictly between them are empty. Whether the
// king is in check, or passes through an attacked square, is not
// verified here.
func (p *Position) castleMoves(from core.Coord, pc core.Piece) []Move {
	var moves []Move
	rank := from.Rank

	long := p.Board.PieceAt(core.Coord{File: 0, Rank: rank})
	if long.Kind == core.Rook && long.Color == pc.Color && !long.HasMoved &&
		p.emptyFiles(rank, 1, 2, 3) {
		moves = append(moves, Move{
			Kind: MoveCastle,
			From: from,
			To:   core.Coord{File: 2, Rank: rank},
			Long: true,
		})
	}

	short := p.Board.PieceAt(core.Coord{File: 7, Rank: rank})
	if short.Kind == core.Rook && short.Color == pc.Color && !short.HasMoved &&
		p.emptyFiles(rank, 5, 6) {
		moves = append(moves, Move{
			Kind: MoveCastle,
			From: from,
			To:   core.Coord{File: 6, Rank: rank},
		})
	}

	return moves
}

func (p *Position) emptyFiles(rank int, files ...int) bool {
	for _, f := range files {
		if p.Board.PieceAt(core.Coord{File: f, Rank: rank}).Kind != core.NoPiece {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
