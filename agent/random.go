package agent

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a player that picks uniformly among all legal
// turns. The same seed replays the same game against a deterministic
// opponent.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindTurn(ctx context.Context, board game.Board, team game.Team) (game.Turn, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return nil, metrics.SearchMetric{}, err
	}
	turns := game.Turns(board, team)
	if len(turns) == 0 {
		return game.Turn{}, metrics.SearchMetric{}, nil
	}
	turn := turns[a.rng.Intn(len(turns))]
	return turn, metrics.SearchMetric{RootTurns: len(turns)}, nil
}
