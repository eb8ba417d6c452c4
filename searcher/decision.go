package searcher

import (
	"checkers/game"
)

// decision is a node of the search tree: the team that made a turn, the
// turn itself and the board it produced.
type decision struct {
	team   game.Team
	turn   game.Turn
	board  game.Board
	scored bool
	score  int
}

func newDecision(team game.Team, turn game.Turn, parent game.Board) *decision {
	board := parent // Copy-on-branch
	turn.ApplyTo(&board)
	return &decision{
		team:  team,
		turn:  turn,
		board: board,
	}
}

// expand returns a decision for every turn the team can take on the board.
func (s *search) expand(team game.Team, board game.Board) []*decision {
	turns := game.Turns(board, team)
	decisions := make([]*decision, len(turns))
	for i, turn := range turns {
		decisions[i] = newDecision(team, turn, board)
		s.metrics.AddDecision()
	}
	return decisions
}

// score runs minimax with alpha-beta below d. Every leaf is evaluated from
// the searching team's perspective, so maximizing nodes are the ones where
// the searching team is about to move.
func (s *search) score(d *decision, depth int, maximizing bool, alpha, beta int) int {
	if d.scored {
		return d.score
	}

	var children []*decision
	if depth > 0 {
		children = s.expand(d.team.Opponent(), d.board)
	}
	if len(children) == 0 {
		s.metrics.AddLeaf()
		d.scored, d.score = true, s.evaluate(d.board, s.team)
		return d.score
	}

	var value int
	if maximizing {
		value = minScore
		for _, child := range children {
			value = max(value, s.score(child, depth-1, false, alpha, beta))
			alpha = max(alpha, value)
			if s.prune && alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
	} else {
		value = maxScore
		for _, child := range children {
			value = min(value, s.score(child, depth-1, true, alpha, beta))
			beta = min(beta, value)
			if s.prune && alpha >= beta {
				s.metrics.AddCutoff()
				break
			}
		}
	}

	d.scored, d.score = true, value
	return value
}
