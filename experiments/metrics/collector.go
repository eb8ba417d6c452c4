package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	RootTurns int
	Decisions int // Decision nodes created, root included
	Leaves    int // Nodes scored by the evaluator
	Cutoffs   int // Sibling lists abandoned by alpha-beta
	Score     int // Score of the chosen turn
}

type MoveMetric struct {
	Step int
	Team string
	Turn string
	SearchMetric
}

type GameMetric struct {
	StartingTeam string
	Winner       string // "" for a draw
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalTurns   int
}

type Collector interface {
	Start(depth int)
	AddDecision()
	AddLeaf()
	AddCutoff()
	Complete(rootTurns, score int) SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	decisions atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.decisions.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddDecision() {
	m.decisions.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete(rootTurns, score int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		RootTurns: rootTurns,
		Decisions: int(m.decisions.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Score:     score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                            {}
func (m *dummyCollector) AddDecision()                               {}
func (m *dummyCollector) AddLeaf()                                   {}
func (m *dummyCollector) AddCutoff()                                 {}
func (m *dummyCollector) Complete(rootTurns, score int) SearchMetric { return SearchMetric{} }
