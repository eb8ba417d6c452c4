package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"context"
)

type Agent interface {
	// FindTurn returns the turn to play and performance metrics (if collected)
	// from the search. An empty turn means the team has no legal turn.
	FindTurn(ctx context.Context, board game.Board, team game.Team) (game.Turn, metrics.SearchMetric, error)
}

type minimaxAgent struct {
	minimax *searcher.Minimax
}

// NewMinimaxAgent returns a computer player backed by a minimax searcher.
func NewMinimaxAgent(minimax *searcher.Minimax) Agent {
	return minimaxAgent{minimax: minimax}
}

func (a minimaxAgent) FindTurn(ctx context.Context, board game.Board, team game.Team) (game.Turn, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	turn, metric := a.minimax.ChooseTurn(board, team)
	return turn, metric, nil
}
