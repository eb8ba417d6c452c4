package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllegalTurn = errors.New("illegal turn")

// Turn is one player's full action for a ply: a single step, or a chain of
// jumps made by the same piece.
type Turn []Move

// Turns returns every legal turn for a team. Each jump chain contributes
// every one of its prefixes, since a player may stop jumping at any hop.
func Turns(board Board, team Team) []Turn {
	turns := []Turn{}
	for s, p := range board.All() {
		if p.Team != team {
			continue
		}
		moves, _ := board.ValidMovesAt(s)
		for _, m := range moves {
			if !m.IsJump() {
				turns = append(turns, Turn{m})
				continue
			}
			turns = appendChains(turns, board, Turn{m})
		}
	}
	return turns
}

// appendChains emits the chain so far, then extends it with every further
// jump of the same piece on a scratch copy of the board.
func appendChains(turns []Turn, board Board, chain Turn) []Turn {
	turns = append(turns, chain)

	last := chain[len(chain)-1]
	board.ApplyMove(last)
	for _, next := range board.JumpContinuations(last.To) {
		extended := make(Turn, len(chain), len(chain)+1)
		copy(extended, chain)
		turns = appendChains(turns, board, append(extended, next))
	}
	return turns
}

// Validate replays the turn hop by hop on a copy of the board and reports
// whether it is a legal turn for the team.
func (t Turn) Validate(board Board, team Team) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no moves", ErrIllegalTurn)
	}
	piece, ok := board.PieceAt(t[0].From)
	if !ok {
		return fmt.Errorf("%w: %v", ErrIllegalTurn, ErrEmptySquare)
	}
	if piece.Team != team {
		return fmt.Errorf("%w: piece on %v belongs to %v", ErrIllegalTurn, t[0].From, piece.Team)
	}
	for i, m := range t {
		if i > 0 {
			if m.From != t[i-1].To {
				return fmt.Errorf("%w: move %v does not continue from %v", ErrIllegalTurn, m, t[i-1].To)
			}
			if !m.IsJump() || !t[i-1].IsJump() {
				return fmt.Errorf("%w: only jumps can be chained", ErrIllegalTurn)
			}
		}
		valid, _ := board.ValidMovesAt(m.From)
		if !containsMove(valid, m) {
			return fmt.Errorf("%w: move %v", ErrIllegalTurn, m)
		}
		board.ApplyMove(m)
	}
	return nil
}

// ApplyTo replays every move of the turn on the board.
func (t Turn) ApplyTo(board *Board) {
	for _, m := range t {
		board.ApplyMove(m)
	}
}

func (t Turn) String() string {
	if len(t) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	sb.WriteString(t[0].From.String())
	for _, m := range t {
		if m.IsJump() {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(m.To.String())
	}
	return sb.String()
}

func containsMove(moves []Move, m Move) bool {
	for _, v := range moves {
		if v == m {
			return true
		}
	}
	return false
}
