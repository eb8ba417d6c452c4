package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"context"
)

type Engine interface {
	// Run plays a game till one side cannot move or a max number of turns is reached
	Run(ctx context.Context) (Result, error)
}

type Result struct {
	Winner      game.Team // NoTeam for a draw
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
	Turns       []game.Turn
}

// Update is reported to observers after every committed turn.
type Update struct {
	Step  int
	Team  game.Team
	Turn  game.Turn
	Board game.Board
}
