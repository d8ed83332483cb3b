package core

// State is the outcome of a game. Stalemate is deliberately absent: a side
// with no legal moves that is not in check keeps the move (open rules gap,
// see DESIGN.md).
type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
)

func (s State) String() string {
	switch s {
	case StateWhiteWins:
		return "White wins"
	case StateBlackWins:
		return "Black wins"
	default:
		return "Ongoing"
	}
}

type Color byte

const (
	ColorWhite Color = iota + 1
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

func (c Color) Name() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

func (c Color) Flip() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// IsSliding reports whether the piece moves along rays until blocked.
func (k PieceKind) IsSliding() bool {
	switch k {
	case Rook, Bishop, Queen:
		return true
	default:
		return false
	}
}

var kindLetters = map[PieceKind]byte{
	Pawn:   'p',
	Rook:   'r',
	Knight: 'n',
	Bishop: 'b',
	Queen:  'q',
	King:   'k',
}

// KindFromLetter maps a piece letter (either case) to its kind.
func KindFromLetter(c byte) PieceKind {
	if c >= 'A' && c <= 'Z' {
		c = c - 'A' + 'a'
	}
	for k, l := range kindLetters {
		if l == c {
			return k
		}
	}
	return NoPiece
}

// Piece occupies a board square. The zero value means no piece.
// HasMoved only ever goes false to true. EnPassantable is set by a double
// pawn push and survives exactly one ply.
type Piece struct {
	Kind          PieceKind
	Color         Color
	HasMoved      bool
	EnPassantable bool
}

// Letter returns the display letter for the piece: uppercase for White,
// lowercase for Black, 0 for an empty piece.
func (p Piece) Letter() byte {
	l, ok := kindLetters[p.Kind]
	if !ok {
		return 0
	}
	if p.Color == ColorWhite {
		return l - 'a' + 'A'
	}
	return l
}
