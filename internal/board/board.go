package board

import (
	"fmt"
	"strings"

	"schaak/internal/core"
)

// Square is one board cell: its coordinate and the piece on it, if any.
type Square struct {
	Coord core.Coord
	Piece core.Piece
}

func (s Square) Empty() bool {
	return s.Piece.Kind == core.NoPiece
}

// Board is a 64-square grid indexed as file + 8*rank. It is a plain value
// type: assignment is a full-fidelity clone.
type Board [64]Square

// Empty returns a board with coordinates set and no pieces.
func Empty() Board {
	var b Board
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			b[f+8*r].Coord = core.Coord{File: f, Rank: r}
		}
	}
	return b
}

// New returns a board with the standard starting layout.
func New() Board {
	b := Empty()
	backRank := [8]core.PieceKind{
		core.Rook, core.Knight, core.Bishop, core.Queen,
		core.King, core.Bishop, core.Knight, core.Rook,
	}
	for f := 0; f < 8; f++ {
		b.SetPiece(core.Coord{File: f, Rank: 0}, core.Piece{Kind: backRank[f], Color: core.ColorWhite})
		b.SetPiece(core.Coord{File: f, Rank: 1}, core.Piece{Kind: core.Pawn, Color: core.ColorWhite})
		b.SetPiece(core.Coord{File: f, Rank: 6}, core.Piece{Kind: core.Pawn, Color: core.ColorBlack})
		b.SetPiece(core.Coord{File: f, Rank: 7}, core.Piece{Kind: backRank[f], Color: core.ColorBlack})
	}
	return b
}

func (b *Board) At(c core.Coord) Square {
	return b[c.Index()]
}

func (b *Board) PieceAt(c core.Coord) core.Piece {
	return b[c.Index()].Piece
}

func (b *Board) SetPiece(c core.Coord, p core.Piece) {
	b[c.Index()].Piece = p
}

func (b *Board) Clear(c core.Coord) {
	b[c.Index()].Piece = core.Piece{}
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			sq := b.At(core.Coord{File: f, Rank: r})
			if sq.Empty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%c ", sq.Piece.Letter()))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
