package engine

import (
	"fmt"
	"slices"

	"schaak/internal/board"
	"schaak/internal/core"
)

// Position is the full rules state of one game: the board, the side to
// move, the append-only history of performed moves, and the piece kind the
// next pawn promotion will produce.
type Position struct {
	Board         board.Board
	Turn          core.Color
	History       []core.PerformedMove
	NextPromotion core.PieceKind
}

// New returns the standard starting position with White to move.
func New() *Position {
	return &Position{
		Board:         board.New(),
		Turn:          core.ColorWhite,
		NextPromotion: core.Queen,
	}
}

// Clone returns an independent copy. The copy shares nothing with the
// original; moves applied to one never affect the other.
func (p *Position) Clone() *Position {
	cp := *p
	cp.History = slices.Clone(p.History)
	return &cp
}

// KingCoord locates the king of the given colour. A board without that
// king is a corrupted engine state, not a user error.
func (p *Position) KingCoord(col core.Color) core.Coord {
	for _, sq := range p.Board {
		if sq.Piece.Kind == core.King && sq.Piece.Color == col {
			return sq.Coord
		}
	}
	panic(fmt.Sprintf("no %s king on the board", col.Name()))
}

// IsInCheck reports whether the given colour's king square is attacked.
// It re-runs unfiltered move generation for every enemy piece on every
// call; no attack map is maintained.
func (p *Position) IsInCheck(col core.Color) bool {
	kingCoord := p.KingCoord(col)
	for _, sq := range p.Board {
		if sq.Empty() || sq.Piece.Color == col {
			continue
		}
		if _, hit := MoveTo(p.Moves(sq.Coord, false), kingCoord); hit {
			return true
		}
	}
	return false
}

// MakeMove executes the move's effect. Kinds that fully own their
// mutation (promotion, en passant, castling) perform it here; the rest
// record history and fall through to the generic relocation.
func (p *Position) MakeMove(m Move) {
	switch m.Kind {
	case MovePromotion:
		p.History = append(p.History, core.PerformedMove{From: m.From, To: m.To})
		p.promote(m.From, m.To, m.Promotion)
	case MoveEnPassant:
		p.History = append(p.History, core.PerformedMove{From: m.From, To: m.To})
		p.enPassant(m.From, m.To)
	case MoveCastle:
		p.performCastle(m.Long, p.Board.PieceAt(m.From).Color)
	case MoveDoublePush:
		p.History = append(p.History, core.PerformedMove{From: m.From, To: m.To})
		pc := p.Board.PieceAt(m.From)
		pc.EnPassantable = true
		pc.HasMoved = true
		p.Board.SetPiece(m.From, pc)
		p.relocate(m.From, m.To)
	default:
		p.History = append(p.History, core.PerformedMove{From: m.From, To: m.To})
		p.relocate(m.From, m.To)
	}
}

// relocate is the generic move execution: copy the source piece to the
// destination with HasMoved set, clear the source. No history record.
func (p *Position) relocate(from, to core.Coord) {
	pc := p.Board.PieceAt(from)
	pc.HasMoved = true
	p.Board.SetPiece(to, pc)
	p.Board.Clear(from)
}

// performCastle relocates rook and king. Assumes the availability checks
// have been performed. Both relocations are recorded independently.
func (p *Position) performCastle(long bool, col core.Color) {
	rank := 0
	if col == core.ColorBlack {
		rank = 7
	}

	rookFrom := core.Coord{File: 7, Rank: rank}
	rookTo := core.Coord{File: 5, Rank: rank}
	if long {
		rookFrom = core.Coord{File: 0, Rank: rank}
		rookTo = core.Coord{File: 3, Rank: rank}
	}
	kingFrom := p.KingCoord(col)
	kingTo := core.Coord{File: 6, Rank: rank}
	if long {
		kingTo = core.Coord{File: 2, Rank: rank}
	}

	p.History = append(p.History, core.PerformedMove{From: rookFrom, To: rookTo})
	p.relocate(rookFrom, rookTo)
	p.History = append(p.History, core.PerformedMove{From: kingFrom, To: kingTo})
	p.relocate(kingFrom, kingTo)
}

// promote replaces the pawn with the chosen kind at the destination.
func (p *Position) promote(from, to core.Coord, kind core.PieceKind) {
	switch kind {
	case core.Rook, core.Knight, core.Bishop, core.Queen:
	default:
		panic(fmt.Sprintf("invalid promotion kind %d", kind))
	}
	p.Board.SetPiece(to, core.Piece{
		Kind:     kind,
		Color:    p.Board.PieceAt(from).Color,
		HasMoved: true,
	})
	p.Board.Clear(from)
}

// enPassant relocates the capturing pawn and removes the passed-over
// enemy pawn, which sits on the source rank at the destination file.
func (p *Position) enPassant(from, to core.Coord) {
	p.Board.SetPiece(to, p.Board.PieceAt(from))
	p.Board.Clear(core.Coord{File: to.File, Rank: from.Rank})
	p.Board.Clear(from)
}

// AttemptMove plays a move if the destination is in the legal move set of
// the source square. It reports whether the move was carried out; a
// rejected move leaves the position untouched.
func (p *Position) AttemptMove(from, to core.Coord) bool {
	if from == to {
		return false
	}
	src := p.Board.PieceAt(from)
	if src.Kind == core.NoPiece {
		return false
	}
	if tgt := p.Board.PieceAt(to); tgt.Kind != core.NoPiece && tgt.Color == src.Color {
		return false
	}

	m, ok := MoveTo(p.Moves(from, true), to)
	if !ok {
		return false
	}
	p.MakeMove(m)
	return true
}

// EndTurn flips the side to move and clears the en-passant flag on every
// piece of the colour that has just regained the move, closing the
// one-ply capture window.
func (p *Position) EndTurn() {
	p.Turn = p.Turn.Flip()
	for i, sq := range p.Board {
		if !sq.Empty() && sq.Piece.Color == p.Turn {
			p.Board[i].Piece.EnPassantable = false
		}
	}
}

// Outcome reports the game state for the side to move. The game only ends
// when that side is in check and no move anywhere escapes it; a side with
// no moves that is not in check keeps the move (stalemate gap, preserved).
func (p *Position) Outcome() core.State {
	if !p.IsInCheck(p.Turn) {
		return core.StateOngoing
	}
	for _, sq := range p.Board {
		if sq.Empty() || sq.Piece.Color != p.Turn {
			continue
		}
		for _, m := range p.Moves(sq.Coord, true) {
			test := p.Clone()
			test.MakeMove(m)
			if !test.IsInCheck(p.Turn) {
				return core.StateOngoing
			}
		}
	}
	if p.Turn == core.ColorWhite {
		return core.StateBlackWins
	}
	return core.StateWhiteWins
}

// SetNextPromotion selects the piece kind produced by subsequent pawn
// promotions. Pawn and king are never valid promotion targets.
func (p *Position) SetNextPromotion(kind core.PieceKind) error {
	switch kind {
	case core.Rook, core.Knight, core.Bishop, core.Queen:
		p.NextPromotion = kind
		return nil
	default:
		return fmt.Errorf("cannot promote to that piece")
	}
}
