package game

import "math"

// Score sentinels. They are symmetric so negating either one is safe, and no
// material sum on a Size x Size board comes close to them.
const (
	Win  = math.MaxInt
	Loss = -math.MaxInt
)

const (
	ManValue  = 10
	KingValue = 20
)

// EvaluateMaterial scores the board from the team's perspective: a loss if
// the team has no pieces left, a win if the opponent has none, otherwise the
// material difference.
func EvaluateMaterial(board Board, team Team) int {
	own, enemy := 0, 0
	ownAlive, enemyAlive := 0, 0
	for _, p := range board.All() {
		value := ManValue
		if p.Type == King {
			value = KingValue
		}
		if p.Team == team {
			own += value
			ownAlive++
		} else {
			enemy += value
			enemyAlive++
		}
	}

	if ownAlive == 0 {
		return Loss
	}
	if enemyAlive == 0 {
		return Win
	}
	return own - enemy
}
