package learner

import (
	"github.com/rs/zerolog/log"

	"uno/utils"
)

// TrainEpoch runs one epoch: SamplesPerEpoch SARSA experiences, then
// TestGames held-out games with frozen weights. The outcome is appended to
// the training history as an immutable record, the learning rate decays,
// and the history is persisted when a history file is configured.
func (a *Agent) TrainEpoch(env Environment) (TrainingRecord, error) {
	epoch := len(a.history)
	a.metrics.Start()

	log.Info().Msgf("training epoch %d with %d samples...", epoch, a.config.SamplesPerEpoch)
	for i := 0; i < a.config.SamplesPerEpoch; i++ {
		err := a.trainSample(env)
		if err != nil {
			return TrainingRecord{}, err
		}
		a.metrics.AddSample()
	}

	log.Info().Msgf("testing epoch %d over %d games...", epoch, a.config.TestGames)
	wins, err := a.Test(env, a.config.TestGames)
	if err != nil {
		return TrainingRecord{}, err
	}
	ratio := float64(wins) / float64(a.config.TestGames)
	log.Info().Msgf("epoch %d win ratio: %.3f", epoch, ratio)

	record := TrainingRecord{
		Weights: utils.CopyMap(a.weights),
		TestResult: TestResult{
			Wins:  wins,
			Games: a.config.TestGames,
		},
		Params: Params{
			SamplesPerEpoch: a.config.SamplesPerEpoch,
			LearningRate:    a.learningRate,
			Epsilon:         a.config.Epsilon,
			Lambda:          a.config.Lambda,
		},
	}
	a.history = append(a.history, record)
	a.learningRate *= a.config.LearningRateDecay

	if a.historyFile != "" {
		err = a.SaveHistory(a.historyFile)
		if err != nil {
			return record, err
		}
	}
	return record, nil
}

// trainSample runs a single SARSA(λ) experience, updating weights.
func (a *Agent) trainSample(env Environment) error {
	err := a.ensureTurn(env)
	if err != nil {
		return err
	}

	state := env.GetState()
	action := a.ChooseAction(state, env.LegalActions())
	predicted := a.Quality(state, action)

	if _, err = env.Play(action); err != nil {
		return err
	}
	// Let the other players reply so the observed outcome includes their
	// turns; the next decision point is the agent's own.
	if err = a.fastForward(env); err != nil {
		return err
	}

	reward := env.GetReward(state)
	target := reward
	if !env.IsOver() {
		nextState := env.GetState()
		nextAction := a.ChooseAction(nextState, env.LegalActions())
		target = reward + a.Quality(nextState, nextAction)
	}
	delta := target - predicted

	for _, f := range a.features {
		a.trace[f.Name] = a.trace[f.Name]*a.config.Lambda + f.Fn(state, action)
		a.weights[f.Name] += a.learningRate * delta * a.trace[f.Name]
	}
	a.normalizeWeights()
	return nil
}

// ensureTurn makes sure the environment is live and waiting on the agent.
// A finished game is reset and the eligibility trace cleared: traces carry
// across turns within one game, never across games.
func (a *Agent) ensureTurn(env Environment) error {
	err := a.fastForward(env)
	if err != nil {
		return err
	}
	if env.IsOver() {
		if err = env.Reset(); err != nil {
			return err
		}
		a.resetTrace()
		return a.fastForward(env)
	}
	return nil
}

// fastForward plays the other players' turns using their own policies until
// it is the agent's turn or the game ends.
func (a *Agent) fastForward(env Environment) error {
	for !env.IsOver() && env.CurrentPlayer() != a {
		player := env.CurrentPlayer()
		action := player.ChooseAction(env.GetState(), env.LegalActions())
		if _, err := env.Play(action); err != nil {
			return err
		}
	}
	return nil
}

// Test plays trials full games with frozen weights and returns how many the
// agent won.
func (a *Agent) Test(env Environment, trials int) (int, error) {
	wins := 0
	for i := 0; i < trials; i++ {
		err := env.Reset()
		if err != nil {
			return wins, err
		}
		for !env.IsOver() {
			player := env.CurrentPlayer()
			action := player.ChooseAction(env.GetState(), env.LegalActions())
			if _, err = env.Play(action); err != nil {
				return wins, err
			}
		}
		won := env.Winner() == a
		a.metrics.AddTestGame(won)
		if won {
			wins++
		}
	}
	return wins, nil
}
