// meta/meta.go
package meta

// DEFAULT_DEPTH defines the number of plies the minimax searcher explores.
const DEFAULT_DEPTH = 4

// MAX_TURNS defines the number of turns after which a game is declared a draw.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games played per experiment matchup.
const NUM_GAMES = 10

const OUTPUT_DIR = "experiments"
