package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax picks a full turn (a step or a jump chain) with depth-limited
// minimax and alpha-beta pruning. It holds configuration only; every
// ChooseTurn call builds and discards its own tree.
type Minimax struct {
	depth       int
	prune       bool
	evaluate    game.Evaluator
	withMetrics bool
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluator) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithoutPruning disables alpha-beta cut-offs, leaving plain minimax.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.prune = false
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.withMetrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		prune:    true,
		evaluate: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// search holds the state of a single ChooseTurn call.
type search struct {
	team     game.Team
	evaluate game.Evaluator
	prune    bool
	metrics  metrics.Collector
}

// ChooseTurn returns the best turn for the team, or an empty turn if the team
// has no legal turn (it has lost). The board is copied and not retained.
func (m *Minimax) ChooseTurn(board game.Board, team game.Team) (game.Turn, metrics.SearchMetric) {
	s := &search{
		team:     team,
		evaluate: m.evaluate,
		prune:    m.prune,
		metrics:  metrics.NewDummyCollector(),
	}
	if m.withMetrics {
		s.metrics = metrics.NewCollector()
	}

	s.metrics.Start(m.depth)
	turn, score, rootTurns := s.choose(board, m.depth)
	metric := s.metrics.Complete(rootTurns, score)

	log.Debug().Msgf("%v chose %v with score %d among %d turns", team, turn, score, rootTurns)
	return turn, metric
}

func (s *search) choose(board game.Board, depth int) (game.Turn, int, int) {
	roots := s.expand(s.team, board)
	if len(roots) == 0 {
		return game.Turn{}, game.Loss, 0
	}

	// The root turn is the first ply. Ties go to the last maximal turn.
	best := roots[0]
	bestScore := minScore
	for _, root := range roots {
		score := s.score(root, depth-1, false, minScore, maxScore)
		if score >= bestScore {
			best = root
			bestScore = score
		}
	}
	return best.turn, bestScore, len(roots)
}
