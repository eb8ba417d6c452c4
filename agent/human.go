package agent

import (
	"bufio"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns a player that reads moves such as "c3 d4" from in,
// one hop per line. After each jump it offers to continue jumping with the
// same piece; an empty line ends the turn.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindTurn(ctx context.Context, board game.Board, team game.Team) (game.Turn, metrics.SearchMetric, error) {
	if len(game.Turns(board, team)) == 0 {
		return game.Turn{}, metrics.SearchMetric{}, nil
	}

	first, err := a.readFirstMove(ctx, board, team)
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	turn := game.Turn{first}
	board.ApplyMove(first)

	for last := first; last.IsJump(); last = turn[len(turn)-1] {
		jumps := board.JumpContinuations(last.To)
		if len(jumps) == 0 {
			break
		}
		next, ok, err := a.readContinuation(ctx, last.To, jumps)
		if err != nil {
			return nil, metrics.SearchMetric{}, err
		}
		if !ok {
			break
		}
		turn = append(turn, next)
		board.ApplyMove(next)
	}
	return turn, metrics.SearchMetric{}, nil
}

func (a *humanAgent) readFirstMove(ctx context.Context, board game.Board, team game.Team) (game.Move, error) {
	for {
		line, err := a.prompt(ctx, fmt.Sprintf("%v to move (e.g. c3 d4): ", team))
		if err != nil {
			return game.Move{}, err
		}
		move, err := parseMove(line)
		if err != nil {
			fmt.Fprintf(a.out, "%v\n", err)
			continue
		}
		piece, ok := board.PieceAt(move.From)
		if !ok || piece.Team != team {
			fmt.Fprintf(a.out, "no %v piece on %v\n", team, move.From)
			continue
		}
		valid, _ := board.ValidMovesAt(move.From)
		if !utils.Contains(valid, move) {
			fmt.Fprintf(a.out, "%v is not a legal move\n", move)
			continue
		}
		return move, nil
	}
}

// readContinuation asks for another jump from the square. It accepts either
// a full move or just the destination square.
func (a *humanAgent) readContinuation(ctx context.Context, from game.Square, jumps []game.Move) (game.Move, bool, error) {
	options := make([]string, len(jumps))
	for i, j := range jumps {
		options[i] = j.To.String()
	}
	for {
		line, err := a.prompt(ctx, fmt.Sprintf("continue jumping from %v to %s, or enter to stop: ", from, strings.Join(options, "/")))
		if err != nil {
			return game.Move{}, false, err
		}
		if strings.TrimSpace(line) == "" {
			return game.Move{}, false, nil
		}
		move, err := parseMove(line)
		if err != nil {
			to, sqErr := game.ParseSquare(line)
			if sqErr != nil {
				fmt.Fprintf(a.out, "%v\n", err)
				continue
			}
			move = game.Move{From: from, To: to}
		}
		if !utils.Contains(jumps, move) {
			fmt.Fprintf(a.out, "%v is not a legal continuation\n", move)
			continue
		}
		return move, true, nil
	}
}

func (a *humanAgent) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(a.out, text)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read move: %w", err)
		}
		return "", ErrInputClosed
	}
	return a.in.Text(), nil
}

// parseMove reads "c3 d4", "c3-d4" or "c3xe5".
func parseMove(line string) (game.Move, error) {
	fields := strings.Fields(strings.NewReplacer("-", " ", "x", " ").Replace(strings.ToLower(line)))
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected two squares, got %q", line)
	}
	from, err := game.ParseSquare(fields[0])
	if err != nil {
		return game.Move{}, err
	}
	to, err := game.ParseSquare(fields[1])
	if err != nil {
		return game.Move{}, err
	}
	return game.Move{From: from, To: to}, nil
}
