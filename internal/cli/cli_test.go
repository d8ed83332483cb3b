package cli

import (
	"bytes"
	"strings"
	"testing"

	"schaak/internal/board"
	"schaak/internal/core"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input string
		want  CommandType
	}{
		{"", CmdNone},
		{"   ", CmdNone},
		{"new", CmdNew},
		{"moves e2", CmdTargets},
		{"promote q", CmdPromote},
		{"color brown", CmdColor},
		{"history", CmdHistory},
		{"help", CmdHelp},
		{"?", CmdHelp},
		{"quit", CmdQuit},
		{"exit", CmdQuit},
		{"e2e4", CmdMove},
		{"nonsense", CmdMove},
	}
	for _, tc := range cases {
		if got := ParseCommand(tc.input); got.Type != tc.want {
			t.Errorf("ParseCommand(%q).Type = %v, want %v", tc.input, got.Type, tc.want)
		}
	}

	cmd := ParseCommand("moves e2")
	if len(cmd.Args) != 1 || cmd.Args[0] != "e2" {
		t.Errorf("moves command args = %v, want [e2]", cmd.Args)
	}
}

func TestSetTheme(t *testing.T) {
	v := NewView(&bytes.Buffer{})
	for _, theme := range []ColorTheme{ThemeOff, ThemeBrown, ThemeGreen, ThemeGray} {
		if err := v.SetTheme(theme); err != nil {
			t.Errorf("SetTheme(%s): %v", theme, err)
		}
	}
	if err := v.SetTheme("plaid"); err == nil {
		t.Error("unknown theme should be rejected")
	}
}

func TestDisplayBoardPlain(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)
	v.DisplayBoard(board.New(), Highlights{})

	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Error("the off theme must not emit escape sequences")
	}
	lines := strings.Split(out, "\n")
	var rank8 string
	for _, l := range lines {
		if strings.HasPrefix(l, "8 ") {
			rank8 = l
			break
		}
	}
	if !strings.HasPrefix(rank8, "8 r n b q k b n r") {
		t.Errorf("rank 8 renders as %q", rank8)
	}
}

func TestDisplayBoardHighlights(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)

	sel := core.Coord{File: 4, Rank: 1} // e2
	v.DisplayBoard(board.New(), Highlights{
		Selected: &sel,
		Targets:  []core.Coord{{File: 4, Rank: 2}, {File: 4, Rank: 3}},
	})

	out := buf.String()
	if !strings.Contains(out, "[P") {
		t.Error("the selected pawn should be bracketed")
	}
	if !strings.Contains(out, "*") {
		t.Error("empty target squares should be starred")
	}
}

func TestDisplayBoardThemed(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)
	if err := v.SetTheme(ThemeBrown); err != nil {
		t.Fatal(err)
	}
	v.DisplayBoard(board.New(), Highlights{})

	if !strings.Contains(buf.String(), "\033[48;5;") {
		t.Error("a colored theme should emit background escapes")
	}
}

func TestShowPromotion(t *testing.T) {
	var buf bytes.Buffer
	v := NewView(&buf)
	v.ShowPromotion(core.Rook)

	got := strings.TrimSpace(buf.String())
	if got != "promotion:  Q  [R]  B   N" {
		t.Errorf("promotion line renders as %q", got)
	}
}
