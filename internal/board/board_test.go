package board

import (
	"strings"
	"testing"

	"schaak/internal/core"
)

func TestEmptyBoardCoords(t *testing.T) {
	b := Empty()
	for i, sq := range b {
		if !sq.Empty() {
			t.Errorf("square %d should hold no piece", i)
		}
		if sq.Coord.Index() != i {
			t.Errorf("square %d carries coordinate %s", i, sq.Coord)
		}
	}
}

func TestStartingLayout(t *testing.T) {
	b := New()

	cases := []struct {
		square string
		kind   core.PieceKind
		color  core.Color
	}{
		{"a1", core.Rook, core.ColorWhite},
		{"b1", core.Knight, core.ColorWhite},
		{"c1", core.Bishop, core.ColorWhite},
		{"d1", core.Queen, core.ColorWhite},
		{"e1", core.King, core.ColorWhite},
		{"e2", core.Pawn, core.ColorWhite},
		{"d8", core.Queen, core.ColorBlack},
		{"e8", core.King, core.ColorBlack},
		{"h8", core.Rook, core.ColorBlack},
		{"h7", core.Pawn, core.ColorBlack},
	}
	for _, tc := range cases {
		c, err := core.ParseCoord(tc.square)
		if err != nil {
			t.Fatal(err)
		}
		pc := b.PieceAt(c)
		if pc.Kind != tc.kind || pc.Color != tc.color {
			t.Errorf("%s holds %+v, want kind %v color %v", tc.square, pc, tc.kind, tc.color)
		}
		if pc.HasMoved {
			t.Errorf("%s starts marked as moved", tc.square)
		}
	}

	empties := 0
	for _, sq := range b {
		if sq.Empty() {
			empties++
		}
	}
	if empties != 32 {
		t.Errorf("starting board has %d empty squares, want 32", empties)
	}
}

func TestSetAndClear(t *testing.T) {
	b := Empty()
	c := core.Coord{File: 3, Rank: 3}
	b.SetPiece(c, core.Piece{Kind: core.Queen, Color: core.ColorBlack})
	if b.PieceAt(c).Kind != core.Queen {
		t.Fatal("SetPiece did not place the piece")
	}
	b.Clear(c)
	if !b.At(c).Empty() {
		t.Fatal("Clear did not remove the piece")
	}
}

func TestBoardIsValueType(t *testing.T) {
	a := New()
	b := a
	b.Clear(core.Coord{File: 4, Rank: 1})
	if a.PieceAt(core.Coord{File: 4, Rank: 1}).Kind != core.Pawn {
		t.Fatal("mutating a copy altered the original")
	}
}

func TestToASCII(t *testing.T) {
	b := New()
	out := b.ToASCII()
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("ASCII board has %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[1], "8 r n b q k b n r") {
		t.Errorf("top line should show Black's back rank, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[8], "1 R N B Q K B N R") {
		t.Errorf("bottom line should show White's back rank, got %q", lines[8])
	}
}
