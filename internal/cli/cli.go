package cli

import (
	"fmt"
	"io"
	"strings"

	"schaak/internal/board"
	"schaak/internal/core"
	"schaak/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdMove
	CmdTargets
	CmdPromote
	CmdColor
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand maps an input line to a command. Anything unrecognized is
// assumed to be a move in coordinate text.
func ParseCommand(input string) *Command {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "moves":
		return &Command{Type: CmdTargets, Args: args}
	case "promote":
		return &Command{Type: CmdPromote, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}, Raw: input}
	}
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg    string
	darkBg     string
	selectedBg string
	targetBg   string
	passantBg  string
	white      string
	black      string
	reset      string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg:    "\033[48;5;230m", // Beige
		darkBg:     "\033[48;5;94m",  // Brown
		selectedBg: "\033[48;5;218m", // Pink
		targetBg:   "\033[48;5;114m", // Soft green
		passantBg:  "\033[48;5;141m", // Purple
		white:      "\033[97m",
		black:      "\033[30m",
		reset:      "\033[0m",
	},
	ThemeGreen: {
		lightBg:    "\033[48;5;157m", // Light green
		darkBg:     "\033[48;5;22m",  // Dark green
		selectedBg: "\033[48;5;218m",
		targetBg:   "\033[48;5;214m", // Orange stands out on green
		passantBg:  "\033[48;5;141m",
		white:      "\033[97m",
		black:      "\033[30m",
		reset:      "\033[0m",
	},
	ThemeGray: {
		lightBg:    "\033[48;5;251m", // Light gray
		darkBg:     "\033[48;5;240m", // Dark gray
		selectedBg: "\033[48;5;218m",
		targetBg:   "\033[48;5;114m",
		passantBg:  "\033[48;5;141m",
		white:      "\033[97m",
		black:      "\033[30m",
		reset:      "\033[0m",
	},
}

// Highlights marks squares the renderer should set off: the selected
// square and the legal destinations of its piece. En-passant-eligible
// pawns are highlighted from the board itself.
type Highlights struct {
	Selected *core.Coord
	Targets  []core.Coord
}

func (h Highlights) isTarget(c core.Coord) bool {
	for _, t := range h.Targets {
		if t == c {
			return true
		}
	}
	return false
}

type View struct {
	output io.Writer
	theme  ColorTheme
}

func NewView(output io.Writer) *View {
	return &View{
		output: output,
		theme:  ThemeOff,
	}
}

func (v *View) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	v.theme = theme
	return nil
}

func (v *View) ShowMessage(msg string) {
	fmt.Fprintln(v.output, msg)
}

func (v *View) ShowError(err error) {
	v.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard renders the board with rank 8 at the top. Highlight
// precedence, innermost wins: selected square, legal target, en-passant
// pawn, plain square colour.
func (v *View) DisplayBoard(b board.Board, hl Highlights) {
	theme := themes[v.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for r := 7; r >= 0; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := 0; f < 8; f++ {
			c := core.Coord{File: f, Rank: r}
			sq := b.At(c)

			if v.theme == ThemeOff {
				switch {
				case hl.Selected != nil && *hl.Selected == c:
					sb.WriteString(fmt.Sprintf("[%c", sq.Piece.Letter()))
				case hl.isTarget(c) && sq.Empty():
					sb.WriteString("* ")
				case sq.Empty():
					sb.WriteString(". ")
				default:
					sb.WriteString(fmt.Sprintf("%c ", sq.Piece.Letter()))
				}
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 1 {
				bg = theme.lightBg
			}
			switch {
			case hl.Selected != nil && *hl.Selected == c:
				bg = theme.selectedBg
			case hl.isTarget(c):
				bg = theme.targetBg
			case sq.Piece.EnPassantable:
				bg = theme.passantBg
			}

			if sq.Empty() {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if sq.Piece.Color == core.ColorWhite {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, sq.Piece.Letter(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h\n")

	v.ShowMessage(sb.String())
}

// ShowPromotion displays the promotion selector with the active kind
// bracketed, e.g. "promotion: [Q] R B N".
func (v *View) ShowPromotion(current core.PieceKind) {
	kinds := []core.PieceKind{core.Queen, core.Rook, core.Bishop, core.Knight}
	letters := []string{"Q", "R", "B", "N"}

	parts := make([]string, 0, len(kinds))
	for i, k := range kinds {
		if k == current {
			parts = append(parts, "["+letters[i]+"]")
		} else {
			parts = append(parts, " "+letters[i]+" ")
		}
	}
	v.ShowMessage("promotion: " + strings.Join(parts, " "))
}

func (v *View) ShowHelp() {
	help := `Commands:
  new              - Start a new game with player type selection
  <move>           - Make a move (e.g., e2e4, g1f3)
  moves <square>   - Show the legal destinations of a piece (e.g., moves e2)
  promote <q|r|b|n> - Choose the piece pawns promote to (default queen)
  color <theme>    - Set board color theme (off|brown|green|gray)
  history          - Show game move history
  quit/exit        - Exit the program
  help/?           - Show this help message

During any game:
  Press ENTER      - Execute computer move (when it's computer's turn)`

	v.ShowMessage(help)
}

func (v *View) ShowWelcome() {
	v.ShowMessage("Welcome to schaak!")
	v.ShowMessage("Commands: new, <move>, moves <square>, promote <kind>, history, color <theme>, help/?, quit/exit")
	v.ShowMessage("Press ENTER to execute computer moves when it's computer's turn.")
	v.ShowMessage("")
}

func (v *View) ShowGameHistory(g *game.Game) {
	moves := g.Moves()
	if len(moves) == 0 {
		v.ShowMessage("No moves played yet.")
		return
	}
	// Castling records rook and king relocations separately, so entries
	// are listed flat rather than paired into full moves.
	for i, m := range moves {
		v.ShowMessage(fmt.Sprintf("%d. %s", i+1, m))
	}
	v.ShowMessage(fmt.Sprintf("Game state: %s", g.State()))
}

func (v *View) ShowComputerMove(result *game.MoveResult) {
	v.ShowMessage(fmt.Sprintf("Computer (%s): %s", result.Player, result.Move))
}

func (v *View) ShowGameOver(state core.State) {
	v.ShowMessage(fmt.Sprintf("\nGame Over: %s", state))
	v.ShowMessage("Start a new game with 'new'.")
}
