package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // Search depth for minimax agents
	Seed  uint64 // Source seed for random agents
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Dark and moves first
	Agent2 int // AgentConfig.ID, plays Light
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Replay lists the turns of one game in notation, enough to replay it.
type Replay struct {
	Game   int      `json:"game"`
	Agent1 int      `json:"agent1"`
	Agent2 int      `json:"agent2"`
	Winner string   `json:"winner"`
	Turns  []string `json:"turns"`
}

type Writer struct {
	RunID   uuid.UUID
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<run id> to hold the results
// of one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	runID := uuid.New()
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	header := []string{"id", "kind", "depth", "seed"}
	if err := w.writeCSV("agent_configs.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingTeam,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
		})
	}
	header := []string{"id", "agent1", "agent2", "starting_team", "winner", "start_time", "end_time", "duration", "total_turns"}
	if err := w.writeCSV("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Team,
			record.Turn,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.RootTurns),
			strconv.Itoa(record.Decisions),
			strconv.Itoa(record.Leaves),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Score),
		})
	}
	header := []string{"game", "step", "team", "turn", "depth", "duration", "root_turns", "decisions", "leaves", "cutoffs", "score"}
	if err := w.writeCSV("move_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) WriteReplays(replays []Replay) error {
	data, err := sonic.ConfigStd.MarshalIndent(replays, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replays: %w", err)
	}
	path := filepath.Join(w.baseDir, "games.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write replays: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}
