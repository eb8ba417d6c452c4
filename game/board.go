package game

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrEmptySquare = errors.New("no piece on square")

// directions lists the four diagonals in the fixed order used for move
// generation, forward-for-Dark first.
var directions = [4][2]int{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}

// Board is a fixed grid of pieces indexed [y][x]. It is a value: assigning a
// Board copies it, which is how the searcher branches.
type Board struct {
	squares [Size][Size]Piece
}

// NewBoard returns the standard starting layout with 12 Men per team on the
// dark squares of the three back rows.
func NewBoard() Board {
	var b Board
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if (x+y)%2 == 0 {
				continue
			}
			if y < 3 {
				b.squares[y][x] = Piece{Team: Dark, Type: Man}
			} else if y >= Size-3 {
				b.squares[y][x] = Piece{Team: Light, Type: Man}
			}
		}
	}
	return b
}

// EmptyBoard returns a board with no pieces, for setting up positions.
func EmptyBoard() Board {
	return Board{}
}

// Place puts a piece on a square, replacing whatever was there.
func (b *Board) Place(s Square, p Piece) {
	if !InBounds(s) {
		panic(fmt.Sprintf("cannot place piece off the board at %v", s))
	}
	b.squares[s.Y][s.X] = p
}

func (b *Board) PieceAt(s Square) (Piece, bool) {
	if !InBounds(s) {
		return Piece{}, false
	}
	p := b.squares[s.Y][s.X]
	return p, !p.IsEmpty()
}

func (b *Board) IsOccupied(s Square) bool {
	_, ok := b.PieceAt(s)
	return ok
}

func (b *Board) InBounds(s Square) bool {
	return InBounds(s)
}

// All yields every occupied square with its piece, row by row.
func (b *Board) All() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				p := b.squares[y][x]
				if p.IsEmpty() {
					continue
				}
				if !yield(Square{X: x, Y: y}, p) {
					return
				}
			}
		}
	}
}

// canMove checks everything common to steps and jumps of the given length.
func (b *Board) canMove(from, to Square, dist int) (Piece, bool) {
	piece, ok := b.PieceAt(from)
	if !ok {
		return Piece{}, false
	}
	if !InBounds(to) || b.IsOccupied(to) {
		return Piece{}, false
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) != dist || abs(dy) != dist {
		return Piece{}, false
	}
	if piece.Type == Man && dy != dist*piece.Team.forward() {
		return Piece{}, false
	}
	return piece, true
}

func (b *Board) CanStep(from, to Square) bool {
	_, ok := b.canMove(from, to, 1)
	return ok
}

// CanJump follows the same direction rule as CanStep: a Man only jumps
// forward.
func (b *Board) CanJump(from, to Square) bool {
	piece, ok := b.canMove(from, to, 2)
	if !ok {
		return false
	}
	captured, ok := b.PieceAt(Move{From: from, To: to}.Captured())
	return ok && captured.Team == piece.Team.Opponent()
}

func (b *Board) ValidMovesAt(s Square) ([]Move, error) {
	if !b.IsOccupied(s) {
		return nil, fmt.Errorf("valid moves at %v: %w", s, ErrEmptySquare)
	}

	moves := []Move{}
	for _, d := range directions {
		to := Square{X: s.X + d[0], Y: s.Y + d[1]}
		if b.CanStep(s, to) {
			moves = append(moves, Move{From: s, To: to})
		}
	}
	for _, d := range directions {
		to := Square{X: s.X + 2*d[0], Y: s.Y + 2*d[1]}
		if b.CanJump(s, to) {
			moves = append(moves, Move{From: s, To: to})
		}
	}
	return moves, nil
}

// JumpContinuations returns the jumps available to the piece on s. A human
// player calls it after each hop to decide whether to keep jumping.
func (b *Board) JumpContinuations(s Square) []Move {
	moves, err := b.ValidMovesAt(s)
	if err != nil {
		return nil
	}
	jumps := []Move{}
	for _, m := range moves {
		if m.IsJump() {
			jumps = append(jumps, m)
		}
	}
	return jumps
}

func (b *Board) AllValidMoves(team Team) []Move {
	moves := []Move{}
	for s, p := range b.All() {
		if p.Team != team {
			continue
		}
		pieceMoves, _ := b.ValidMovesAt(s)
		moves = append(moves, pieceMoves...)
	}
	return moves
}

// ApplyMove moves a piece without checking legality. Callers validate first;
// an empty origin square is a programming error.
func (b *Board) ApplyMove(m Move) {
	piece, ok := b.PieceAt(m.From)
	if !ok {
		panic(fmt.Sprintf("cannot apply move %v: %v", m, ErrEmptySquare))
	}
	b.squares[m.From.Y][m.From.X] = Piece{}
	if m.IsJump() {
		c := m.Captured()
		b.squares[c.Y][c.X] = Piece{}
	}
	if m.To.Y == piece.Team.farRank() {
		piece.Type = King
	}
	b.squares[m.To.Y][m.To.X] = piece
}

func (b *Board) PiecesAlive(team Team) int {
	count := 0
	for _, p := range b.All() {
		if p.Team == team {
			count++
		}
	}
	return count
}

// GameOver reports whether either team has run out of pieces.
func (b *Board) GameOver() bool {
	return b.PiecesAlive(Light) == 0 || b.PiecesAlive(Dark) == 0
}

// String dumps the board using O/@ for Light and =/# for Dark men/kings.
func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			p := b.squares[y][x]
			switch {
			case p.IsEmpty():
				sb.WriteByte('.')
			case p.Team == Light && p.Type == Man:
				sb.WriteByte('O')
			case p.Team == Light:
				sb.WriteByte('@')
			case p.Type == Man:
				sb.WriteByte('=')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
