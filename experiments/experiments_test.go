package experiments

import (
	"bytes"
	"checkers/experiments/metrics"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunDepthExperiment(t *testing.T) {
	root := t.TempDir()
	var progress bytes.Buffer

	writer, err := RunDepthExperiment(context.Background(), Options{
		Root:     root,
		Games:    2,
		MaxDepth: 2,
		MaxTurns: 40,
		Progress: &progress,
	})
	require.NoError(t, err)

	t.Run("writes one row per agent config", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(writer.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"0", "random", "0", "1"},
			{"1", "minimax", "1", "0"},
			{"2", "minimax", "2", "0"},
		}, rows)
	})

	t.Run("alternates sides within a matchup", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(writer.Dir(), "game_records.csv"))
		// 3 matchups: random-d1, random-d2, d1-d2
		require.Len(t, rows, 1+3*2)
		require.Equal(t, []string{"0", "1"}, rows[1][1:3])
		require.Equal(t, []string{"1", "0"}, rows[2][1:3])
		require.Equal(t, []string{"1", "2"}, rows[5][1:3])
		require.Equal(t, []string{"2", "1"}, rows[6][1:3])
	})

	t.Run("records every move and replay", func(t *testing.T) {
		rows := readCSV(t, filepath.Join(writer.Dir(), "move_records.csv"))
		require.Greater(t, len(rows), 1)
		require.FileExists(t, filepath.Join(writer.Dir(), "games.json"))
	})

	t.Run("reports progress", func(t *testing.T) {
		require.NotEmpty(t, progress.String())
	})
}

func TestRunDepthExperimentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunDepthExperiment(ctx, Options{Root: t.TempDir(), Games: 1, MaxDepth: 1, Progress: &bytes.Buffer{}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestCreateAgent(t *testing.T) {
	require.NotNil(t, createAgent(metrics.AgentConfig{Kind: "random"}, 1))
	require.NotNil(t, createAgent(metrics.AgentConfig{Kind: "minimax", Depth: 1}, 1))
	require.Panics(t, func() {
		createAgent(metrics.AgentConfig{Kind: "oracle"}, 1)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
