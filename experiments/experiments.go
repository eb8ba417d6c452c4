package experiments

import (
	"checkers/agent"
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

type Options struct {
	Root     string    // Output directory, one subfolder per experiment run
	Games    int       // Games per matchup
	MaxDepth int       // Deepest minimax agent
	MaxTurns int       // Turns before a game is called a draw
	Progress io.Writer // Progress bar output, nil for stderr
}

func (o Options) withDefaults() Options {
	if o.Root == "" {
		o.Root = meta.OUTPUT_DIR
	}
	if o.Games <= 0 {
		o.Games = meta.NUM_GAMES
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = meta.DEFAULT_DEPTH
	}
	if o.MaxTurns <= 0 {
		o.MaxTurns = meta.MAX_TURNS
	}
	if o.Progress == nil {
		o.Progress = os.Stderr
	}
	return o
}

// RunDepthExperiment pairs every minimax depth from 1 to MaxDepth against a
// random baseline and against the next shallower depth.
func RunDepthExperiment(ctx context.Context, opts Options) (*metrics.Writer, error) {
	opts = opts.withDefaults()

	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: 1}
	configs := []metrics.AgentConfig{baseline}
	for depth := 1; depth <= opts.MaxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Kind: "minimax", Depth: depth})
	}

	matchUps := [][]metrics.AgentConfig{}
	for i, config := range configs[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
		if i > 0 {
			matchUps = append(matchUps, []metrics.AgentConfig{configs[i], config})
		}
	}

	return runExperiment(ctx, "depth", configs, matchUps, opts)
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, opts Options) (*metrics.Writer, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	replays := []metrics.Replay{}

	log.Info().Msgf("starting %s experiment...", name)
	progress := newBar(len(matchUps)*opts.Games, name, opts.Progress)
	defer progress.Close()

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Alternate which agent plays Dark and moves first
			dark, light := matchup[0], matchup[1]
			if i%2 == 1 {
				dark, light = light, dark
			}
			count++

			result, err := runGame(ctx, dark, light, uint64(count), opts.MaxTurns)
			if err != nil {
				return nil, fmt.Errorf("game %d failed: %w", count, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     dark.ID,
				Agent2:     light.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			turns := make([]string, len(result.Turns))
			for ti, turn := range result.Turns {
				turns[ti] = turn.String()
			}
			replays = append(replays, metrics.Replay{
				Game:   count,
				Agent1: dark.ID,
				Agent2: light.ID,
				Winner: result.GameMetric.Winner,
				Turns:  turns,
			})

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, result.GameMetric.Winner)
			progress.Add(1)
		}
	}

	log.Info().Msgf("completed %s experiment", name)
	return writeResults(name, opts.Root, configs, gameRecords, moveRecords, replays)
}

func writeResults(name, root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord, replays []metrics.Replay) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return nil, err
	}
	log.Info().Msg("stored move records")

	if err := writer.WriteReplays(replays); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored replays in %s", writer.Dir())
	return writer, nil
}

// runGame plays a single game between two agents from the starting position.
func runGame(ctx context.Context, dark, light metrics.AgentConfig, salt uint64, maxTurns int) (engine.Result, error) {
	agents := map[game.Team]agent.Agent{
		game.Dark:  createAgent(dark, salt),
		game.Light: createAgent(light, salt),
	}
	e := engine.LocalEngine(game.NewBoard(), agents, engine.WithMaxTurns(maxTurns))
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, salt uint64) agent.Agent {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(config.Seed + salt)
	case "minimax":
		return agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
