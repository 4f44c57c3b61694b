// Package experiments pits the player kinds against a field of random
// opponents and stores the results for analysis.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"uno/engine"
	"uno/experiments/metrics"
	"uno/game"
	"uno/learner"
	"uno/meta"
	"uno/player"
)

const (
	NumGames  = 30 // Per contestant
	DeckName  = "standard"
	Opponents = 3
)

var baselineConfigs = []metrics.PlayerConfig{
	{ID: 1, Kind: "random"},
	{ID: 2, Kind: "smart"},
	{ID: 3, Kind: "learner", Epsilon: meta.EPSILON, LearningRate: meta.LEARNING_RATE, Lambda: meta.LAMBDA},
}

// RunBaselines plays each contestant kind against three random opponents
// for NumGames games and writes the records.
func RunBaselines() error {
	log.Info().Msg("starting baselines experiment...")

	count := 0
	gameRecords := []metrics.GameRecord{}
	for _, config := range baselineConfigs {
		log.Info().Msgf("starting contestant %q over %d games...", config.Kind, NumGames)

		for i := 0; i < NumGames; i++ {
			metric, err := runGame(config)
			if err != nil {
				return fmt.Errorf("contestant %q game %d: %w", config.Kind, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Contestant: config.ID,
				GameMetric: metric,
			})
			log.Info().Msgf("completed contestant %q game %d of %d, winner: %s", config.Kind, i+1, NumGames, metric.Winner)
		}
	}

	log.Info().Msg("completed baselines experiment")
	return writeResults("baselines", gameRecords, nil)
}

// RunTraining trains a standard learning agent for the given number of
// epochs against random opponents and writes the per-epoch records.
func RunTraining(epochs int) error {
	log.Info().Msgf("starting training experiment over %d epochs...", epochs)

	collector := metrics.NewCollector()
	contestant := learner.NewStandardAgent("Contestant", learner.Config{
		Epsilon:           meta.EPSILON,
		LearningRate:      meta.LEARNING_RATE,
		LearningRateDecay: meta.LEARNING_RATE_DECAY,
		Lambda:            meta.LAMBDA,
		SamplesPerEpoch:   meta.SAMPLES_PER_EPOCH,
		TestGames:         meta.TEST_GAMES,
	}, learner.WithCollector(collector))

	g, err := newGame(contestant)
	if err != nil {
		return err
	}

	config := baselineConfigs[2]
	epochRecords := []metrics.EpochRecord{}
	for epoch := 0; epoch < epochs; epoch++ {
		record, err := contestant.TrainEpoch(g)
		if err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		epochRecords = append(epochRecords, metrics.EpochRecord{
			Contestant:   config.ID,
			Epoch:        epoch,
			WinRatio:     float64(record.TestResult.Wins) / float64(record.TestResult.Games),
			LearningRate: record.Params.LearningRate,
			TrainMetric:  collector.Complete(),
		})
	}

	log.Info().Msg("completed training experiment")
	return writeResults("training", nil, epochRecords)
}

func writeResults(name string, gameRecords []metrics.GameRecord, epochRecords []metrics.EpochRecord) error {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	log.Info().Msgf("storing %s results under run %s", name, writer.RunID())

	if err = writer.WritePlayerConfigs(baselineConfigs); err != nil {
		return fmt.Errorf("failed to store player configs: %w", err)
	}
	if gameRecords != nil {
		if err = writer.WriteGameRecords(gameRecords); err != nil {
			return fmt.Errorf("failed to store game records: %w", err)
		}
	}
	if epochRecords != nil {
		if err = writer.WriteEpochRecords(epochRecords); err != nil {
			return fmt.Errorf("failed to store epoch records: %w", err)
		}
	}
	return nil
}

// runGame executes a single game between a contestant and a field of random
// opponents.
func runGame(config metrics.PlayerConfig) (metrics.GameMetric, error) {
	contestant, err := newContestant(config)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	g, err := newGame(contestant)
	if err != nil {
		return metrics.GameMetric{}, err
	}
	_, metric, err := engine.NewLocal(g, meta.MAX_TURNS).Run()
	return metric, err
}

func newContestant(config metrics.PlayerConfig) (game.Player, error) {
	switch config.Kind {
	case "random":
		return player.NewRandom("Contestant"), nil
	case "smart":
		return player.NewSmart("Contestant"), nil
	case "learner":
		return learner.NewStandardAgent("Contestant", learner.Config{
			Epsilon:           config.Epsilon,
			LearningRate:      config.LearningRate,
			LearningRateDecay: meta.LEARNING_RATE_DECAY,
			Lambda:            config.Lambda,
			SamplesPerEpoch:   meta.SAMPLES_PER_EPOCH,
			TestGames:         meta.TEST_GAMES,
		}), nil
	}
	return nil, fmt.Errorf("unknown contestant kind %q", config.Kind)
}

func newGame(contestant game.Player) (*game.Game, error) {
	players := []game.Player{contestant}
	for i := 1; i <= Opponents; i++ {
		players = append(players, player.NewRandom(fmt.Sprintf("Opponent %d", i)))
	}
	return game.NewGame(players, DeckName, meta.START_CARDS)
}
