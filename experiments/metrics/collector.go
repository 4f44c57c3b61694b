package metrics

import (
	"sync/atomic"
	"time"
)

// TrainMetric summarizes one training epoch: how many SARSA samples were
// run and how the held-out test games went.
type TrainMetric struct {
	StartTime time.Time
	Duration  time.Duration
	Samples   int
	TestGames int
	TestWins  int
}

// GameMetric summarizes a single played game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddSample()
	AddTestGame(won bool)
	Complete() TrainMetric
}

type collector struct {
	startTime time.Time
	samples   atomic.Int64
	testGames atomic.Int64
	testWins  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.samples.Store(0)
	c.testGames.Store(0)
	c.testWins.Store(0)
}

func (c *collector) AddSample() {
	c.samples.Add(1)
}

func (c *collector) AddTestGame(won bool) {
	c.testGames.Add(1)
	if won {
		c.testWins.Add(1)
	}
}

func (c *collector) Complete() TrainMetric {
	return TrainMetric{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Samples:   int(c.samples.Load()),
		TestGames: int(c.testGames.Load()),
		TestWins:  int(c.testWins.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                {}
func (c *dummyCollector) AddSample()            {}
func (c *dummyCollector) AddTestGame(won bool)  {}
func (c *dummyCollector) Complete() TrainMetric { return TrainMetric{} }
