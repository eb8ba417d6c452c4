package game

import (
	"fmt"
	"strings"
)

// Size is the number of squares along each side of the board.
const Size = 8

type Team int

const (
	NoTeam Team = iota // Marks an empty square
	Light              // Starts on rows 5-7 and moves toward y == 0
	Dark               // Starts on rows 0-2 and moves toward y == Size-1
)

func (t Team) Opponent() Team {
	switch t {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return NoTeam
	}
}

// forward is the y direction a Man of this team moves in.
func (t Team) forward() int {
	if t == Light {
		return -1
	}
	return 1
}

// farRank is the row on which a Man of this team is promoted.
func (t Team) farRank() int {
	if t == Light {
		return 0
	}
	return Size - 1
}

func (t Team) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "none"
	}
}

type PieceType int

const (
	Man PieceType = iota
	King
)

func (p PieceType) String() string {
	if p == King {
		return "king"
	}
	return "man"
}

// Piece is a value; it does not know which square it stands on. The zero
// value is an empty square.
type Piece struct {
	Team Team
	Type PieceType
}

func (p Piece) IsEmpty() bool {
	return p.Team == NoTeam
}

type Square struct {
	X, Y int
}

// String formats the square in algebraic notation: file a-h from the left,
// rank 1-8 from the bottom (Light's side).
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.X, Size-s.Y)
}

func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("invalid square %q", s)
	}
	x := int(s[0] - 'a')
	rank := int(s[1] - '0')
	sq := Square{X: x, Y: Size - rank}
	if !InBounds(sq) {
		return Square{}, fmt.Errorf("square %q is off the board", s)
	}
	return sq, nil
}

func InBounds(s Square) bool {
	return s.X >= 0 && s.X < Size && s.Y >= 0 && s.Y < Size
}

// Move is a single hop of a piece, either a step to an adjacent diagonal
// square or a jump over an enemy piece.
type Move struct {
	From Square
	To   Square
}

func (m Move) IsStep() bool {
	return abs(m.To.X-m.From.X) == 1 && abs(m.To.Y-m.From.Y) == 1
}

func (m Move) IsJump() bool {
	return abs(m.To.X-m.From.X) == 2 && abs(m.To.Y-m.From.Y) == 2
}

// Captured returns the square jumped over. Only meaningful for jumps.
func (m Move) Captured() Square {
	return Square{X: (m.From.X + m.To.X) / 2, Y: (m.From.Y + m.To.Y) / 2}
}

func (m Move) String() string {
	if m.IsJump() {
		return m.From.String() + "x" + m.To.String()
	}
	return m.From.String() + "-" + m.To.String()
}

// Evaluator scores a board from the given team's perspective.
type Evaluator func(board Board, team Team) int

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
