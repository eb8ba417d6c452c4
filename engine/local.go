package engine

import (
	"checkers/agent"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *localEngine)

type localEngine struct {
	board    game.Board
	agents   map[game.Team]agent.Agent
	starting game.Team
	maxTurns int
	observer func(Update)
}

func WithStartingTeam(team game.Team) Option {
	return func(e *localEngine) {
		if team == game.Light || team == game.Dark {
			e.starting = team
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *localEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer func(Update)) Option {
	return func(e *localEngine) {
		e.observer = observer
	}
}

// LocalEngine runs a game on its own copy of the board between one agent per
// team.
func LocalEngine(board game.Board, agents map[game.Team]agent.Agent, options ...Option) *localEngine {
	if agents[game.Light] == nil || agents[game.Dark] == nil {
		panic("need an agent for each team")
	}

	e := &localEngine{ // Default values
		board:    board,
		agents:   agents,
		starting: game.Dark,
		maxTurns: meta.MAX_TURNS,
		observer: func(Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *localEngine) Board() game.Board {
	return e.board
}

// Run executes the game loop until a team has no legal turn, a team runs out
// of pieces or the turn limit is reached.
func (e *localEngine) Run(ctx context.Context) (Result, error) {
	log.Info().Msgf("%v is starting", e.starting)

	result := Result{
		GameMetric: metrics.GameMetric{
			StartingTeam: e.starting.String(),
			StartTime:    time.Now(),
		},
	}

	team := e.starting
	step := 1
	for !e.board.GameOver() && step <= e.maxTurns {
		turn, metric, err := e.findTurn(ctx, team)
		if err != nil {
			return result, fmt.Errorf("%v failed to find a turn: %w", team, err)
		}
		if len(turn) == 0 {
			log.Info().Msgf("%v has no legal turn", team)
			result.Winner = team.Opponent()
			break
		}
		if err := turn.Validate(e.board, team); err != nil {
			return result, fmt.Errorf("%v played %v: %w", team, turn, err)
		}

		turn.ApplyTo(&e.board)
		log.Debug().Msgf("turn %d: %v played %v (%d decisions)", step, team, turn, metric.Decisions)

		result.Turns = append(result.Turns, turn)
		result.MoveMetrics = append(result.MoveMetrics, metrics.MoveMetric{
			Step:         step,
			Team:         team.String(),
			Turn:         turn.String(),
			SearchMetric: metric,
		})
		e.observer(Update{Step: step, Team: team, Turn: turn, Board: e.board})

		team = team.Opponent()
		step++
	}

	if e.board.PiecesAlive(game.Light) == 0 {
		result.Winner = game.Dark
	} else if e.board.PiecesAlive(game.Dark) == 0 {
		result.Winner = game.Light
	}

	if result.Winner != game.NoTeam {
		log.Info().Msgf("game over after %d turns, winner: %v", len(result.Turns), result.Winner)
		result.GameMetric.Winner = result.Winner.String()
	} else {
		log.Info().Msgf("stopped after %d turns (no winner)", len(result.Turns))
	}

	result.GameMetric.EndTime = time.Now()
	result.GameMetric.Duration = result.GameMetric.EndTime.Sub(result.GameMetric.StartTime)
	result.GameMetric.TotalTurns = len(result.Turns)
	return result, nil
}

type found struct {
	turn   game.Turn
	metric metrics.SearchMetric
	err    error
}

// findTurn runs the agent off the game loop so a cancelled context ends the
// game without waiting for the search.
func (e *localEngine) findTurn(ctx context.Context, team game.Team) (game.Turn, metrics.SearchMetric, error) {
	ch := make(chan found, 1)
	board := e.board
	go func() {
		turn, metric, err := e.agents[team].FindTurn(ctx, board, team)
		ch <- found{turn: turn, metric: metric, err: err}
	}()

	select {
	case f := <-ch:
		return f.turn, f.metric, f.err
	case <-ctx.Done():
		return nil, metrics.SearchMetric{}, ctx.Err()
	}
}
