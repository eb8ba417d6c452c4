package metrics

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		c.AddDecision()
		c.AddDecision()
		c.AddLeaf()
		c.AddCutoff()

		m := c.Complete(2, 15)

		require.Equal(t, 3, m.Depth)
		require.Equal(t, 2, m.Decisions)
		require.Equal(t, 1, m.Leaves)
		require.Equal(t, 1, m.Cutoffs)
		require.Equal(t, 2, m.RootTurns)
		require.Equal(t, 15, m.Score)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddLeaf()
		c.Start(1)

		require.Zero(t, c.Complete(0, 0).Leaves)
	})

	t.Run("dummy collector reports nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddDecision()

		require.Equal(t, SearchMetric{}, c.Complete(1, 1))
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("writes agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "minimax", Depth: 4}, {ID: 2, Kind: "random", Seed: 7}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"1", "minimax", "4", "0"},
			{"2", "random", "0", "7"},
		}, rows)
	})

	t.Run("writes game records", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1, Agent1: 1, Agent2: 2,
			GameMetric: GameMetric{StartingTeam: "dark", Winner: "light", StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalTurns: 42},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "2", "dark", "light", "2024-01-01T00:00:00Z", "2024-01-01T00:00:01Z", "1s", "42"}, rows[1])
	})

	t.Run("writes move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game:       1,
			MoveMetric: MoveMetric{Step: 3, Team: "dark", Turn: "c3-d4", SearchMetric: SearchMetric{Depth: 2, RootTurns: 7, Decisions: 56, Leaves: 49, Cutoffs: 0, Score: 0}},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "game", rows[0][0])
		require.Equal(t, []string{"1", "3", "dark", "c3-d4", "2", "0s", "7", "56", "49", "0", "0"}, rows[1])
	})

	t.Run("writes replays as json", func(t *testing.T) {
		err := w.WriteReplays([]Replay{{Game: 1, Agent1: 1, Agent2: 2, Winner: "dark", Turns: []string{"c3-d4", "f6-e5"}}})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(w.Dir(), "games.json"))
		require.NoError(t, err)
		var got []Replay
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, []string{"c3-d4", "f6-e5"}, got[0].Turns)
		require.Equal(t, "dark", got[0].Winner)
	})
}

func TestWriterRunsAreSeparate(t *testing.T) {
	root := t.TempDir()
	w1, err := NewWriter(root, "depth")
	require.NoError(t, err)
	w2, err := NewWriter(root, "depth")
	require.NoError(t, err)

	require.NotEqual(t, w1.RunID, w2.RunID)
	require.NotEqual(t, w1.Dir(), w2.Dir())
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
