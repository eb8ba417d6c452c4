package main

import (
	"checkers/agent"
	"checkers/engine"
	"checkers/experiments"
	"checkers/game"
	"checkers/meta"
	"checkers/render"
	"checkers/searcher"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode   string
	light  string
	dark   string
	depth  int
	seed   uint64
	ascii  bool
	scheme string
	games  int
	out    string
	debug  bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "play", "play a game or run the depth experiment (play|experiment)")
	flag.StringVar(&cfg.light, "light", "human", "light player (human|cpu|random)")
	flag.StringVar(&cfg.dark, "dark", "cpu", "dark player (human|cpu|random)")
	flag.IntVar(&cfg.depth, "depth", meta.DEFAULT_DEPTH, "search depth in plies for cpu players, deepest agent in experiments")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "seed for random players")
	flag.BoolVar(&cfg.ascii, "ascii", false, "draw pieces with ASCII characters")
	flag.StringVar(&cfg.scheme, "scheme", "red-black", "board colour scheme (red-black|white-red|white-black)")
	flag.IntVar(&cfg.games, "games", meta.NUM_GAMES, "games per matchup in experiments")
	flag.StringVar(&cfg.out, "out", meta.OUTPUT_DIR, "experiment output directory")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.mode {
	case "play":
		err = play(ctx, cfg)
	case "experiment":
		err = experiment(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("checkers stopped")
	}
}

func play(ctx context.Context, cfg config) error {
	scheme, err := render.ParseScheme(cfg.scheme)
	if err != nil {
		return err
	}
	opts := render.Options{ASCII: cfg.ascii, Scheme: scheme, Colors: true}

	// One scanner over stdin serves both sides
	human := agent.NewHumanAgent(os.Stdin, os.Stdout)
	agents := map[game.Team]agent.Agent{}
	for team, kind := range map[game.Team]string{game.Light: cfg.light, game.Dark: cfg.dark} {
		a, err := createAgent(kind, cfg, human)
		if err != nil {
			return fmt.Errorf("%v player: %w", team, err)
		}
		agents[team] = a
	}

	board := game.NewBoard()
	fmt.Print(render.Board(board, opts))
	e := engine.LocalEngine(board, agents, engine.WithObserver(func(u engine.Update) {
		fmt.Printf("\n%d. %v played %v\n", u.Step, u.Team, u.Turn)
		fmt.Print(render.Board(u.Board, opts))
		fmt.Println(render.Status(u.Board))
	}))

	result, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if result.Winner == game.NoTeam {
		fmt.Printf("draw after %d turns\n", result.GameMetric.TotalTurns)
	} else {
		fmt.Printf("%v wins after %d turns\n", result.Winner, result.GameMetric.TotalTurns)
	}
	return nil
}

func createAgent(kind string, cfg config, human agent.Agent) (agent.Agent, error) {
	switch kind {
	case "human":
		return human, nil
	case "cpu":
		return agent.NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(cfg.depth), searcher.WithMetrics())), nil
	case "random":
		return agent.NewRandomAgent(cfg.seed), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}

func experiment(ctx context.Context, cfg config) error {
	writer, err := experiments.RunDepthExperiment(ctx, experiments.Options{
		Root:     cfg.out,
		Games:    cfg.games,
		MaxDepth: cfg.depth,
	})
	if err != nil {
		return err
	}
	fmt.Printf("results written to %s\n", writer.Dir())
	return nil
}
