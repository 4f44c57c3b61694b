// Package learner implements a reinforcement-learning uno player: a linear
// value approximation over named features, trained by SARSA(λ) with
// eligibility traces and an epsilon-greedy policy.
package learner

import (
	"math"
	"math/rand/v2"

	"uno/experiments/metrics"
	"uno/game"
	"uno/utils"
)

// Environment is the state/action/reward contract the agent trains against.
// *game.Game satisfies it; tests substitute toy environments.
type Environment interface {
	Reset() error
	GetState() *game.State
	LegalActions() []game.Action
	Play(game.Action) (*game.State, error)
	IsOver() bool
	Winner() game.Player
	GetReward(*game.State) float64
	CurrentPlayer() game.Player
}

// Config holds the agent's hyperparameters.
type Config struct {
	// Epsilon is the chance of a uniformly random action.
	Epsilon float64
	// LearningRate is the initial step size, decayed once per epoch.
	LearningRate float64
	// LearningRateDecay multiplies the learning rate after every epoch.
	LearningRateDecay float64
	// Lambda is the eligibility-trace decay factor.
	Lambda float64
	// SamplesPerEpoch is how many SARSA experiences one epoch runs.
	SamplesPerEpoch int
	// TestGames is how many held-out games score each epoch.
	TestGames int
}

// Agent is a player who learns through reinforcement learning. Its feature
// set is fixed at construction; weights and trace are ordinary owned state,
// carried across calls for the lifetime of the instance.
type Agent struct {
	name         string
	features     []Feature
	config       Config
	weights      map[string]float64
	trace        map[string]float64
	learningRate float64
	history      []TrainingRecord
	historyFile  string
	metrics      metrics.Collector
}

type Option func(*Agent)

// WithCollector records training metrics through the given collector.
func WithCollector(collector metrics.Collector) Option {
	return func(a *Agent) {
		a.metrics = collector
	}
}

// WithHistoryFile persists the training history to path after every epoch.
func WithHistoryFile(path string) Option {
	return func(a *Agent) {
		a.historyFile = path
	}
}

func NewAgent(name string, features []Feature, config Config, options ...Option) *Agent {
	a := &Agent{
		name:         name,
		features:     features,
		config:       config,
		weights:      zeroValues(features),
		trace:        zeroValues(features),
		learningRate: config.LearningRate,
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func zeroValues(features []Feature) map[string]float64 {
	values := make(map[string]float64, len(features))
	for _, f := range features {
		values[f.Name] = 0
	}
	return values
}

func (a *Agent) Name() string {
	return a.name
}

// Quality estimates the value of taking action in state: the sum of each
// feature value times its learned weight.
func (a *Agent) Quality(state *game.State, action game.Action) float64 {
	quality := 0.0
	for _, f := range a.features {
		quality += a.weights[f.Name] * f.Fn(state, action)
	}
	return quality
}

// ChooseAction is epsilon-greedy: with probability Epsilon a uniformly
// random action, otherwise the highest-quality action with ties broken
// uniformly at random.
func (a *Agent) ChooseAction(state *game.State, actions []game.Action) game.Action {
	if rand.Float64() < a.config.Epsilon {
		return actions[rand.IntN(len(actions))]
	}
	best := []game.Action{actions[0]}
	bestQuality := a.Quality(state, actions[0])
	for _, action := range actions[1:] {
		quality := a.Quality(state, action)
		if quality > bestQuality {
			best = best[:0]
			bestQuality = quality
		}
		if quality == bestQuality {
			best = append(best, action)
		}
	}
	return best[rand.IntN(len(best))]
}

func (a *Agent) ActionMessage(action game.Action) string {
	switch action.Kind {
	case game.PassAction:
		return a.name + " passes."
	case game.DrawAction:
		return a.name + " draws a card."
	case game.PlayAction:
		if action.Card.IsWild() {
			return a.name + " plays " + action.Card.Code() + " and sets the color to " + action.Color.String() + "."
		}
		return a.name + " plays " + action.Card.Code() + "."
	}
	return ""
}

// normalizeWeights divides every weight by the sum of their absolute values
// whenever that sum exceeds 1. Only the ratios between weights matter; this
// keeps magnitudes bounded without being a probability normalization.
func (a *Agent) normalizeWeights() {
	sum := 0.0
	for _, w := range a.weights {
		sum += math.Abs(w)
	}
	if sum <= 1 {
		return
	}
	for name := range a.weights {
		a.weights[name] /= sum
	}
}

func (a *Agent) resetTrace() {
	for name := range a.trace {
		a.trace[name] = 0
	}
}

// Weights returns a copy of the current weight vector.
func (a *Agent) Weights() map[string]float64 {
	return utils.CopyMap(a.weights)
}

// History returns the training records accumulated so far. Records are
// immutable once appended.
func (a *Agent) History() []TrainingRecord {
	return a.history
}

// LearningRate returns the current (decayed) learning rate.
func (a *Agent) LearningRate() float64 {
	return a.learningRate
}

// FeatureNames returns the names of the configured features, in order.
func (a *Agent) FeatureNames() []string {
	names := make([]string, len(a.features))
	for i, f := range a.features {
		names[i] = f.Name
	}
	return names
}
