package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"uno/experiments"
	"uno/game"
	"uno/learner"
	"uno/meta"
	"uno/player"
)

type config struct {
	mode        string
	deck        string
	epochs      int
	historyFile string
	samples     int
	testGames   int
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	switch cfg.mode {
	case "train":
		err = runTraining(cfg)
	case "baselines":
		err = experiments.RunBaselines()
	case "experiment":
		err = experiments.RunTraining(cfg.epochs)
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func loadConfig() (config, error) {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := config{
		mode:        "train",
		deck:        "standard",
		epochs:      10,
		historyFile: os.Getenv("UNO_TRAINING_FILE"),
		samples:     meta.SAMPLES_PER_EPOCH,
		testGames:   meta.TEST_GAMES,
	}
	if mode := os.Getenv("UNO_MODE"); mode != "" {
		cfg.mode = mode
	}
	if deck := os.Getenv("UNO_DECK"); deck != "" {
		cfg.deck = deck
	}
	var err error
	if cfg.epochs, err = intEnv("UNO_EPOCHS", cfg.epochs); err != nil {
		return cfg, err
	}
	if cfg.samples, err = intEnv("UNO_SAMPLES", cfg.samples); err != nil {
		return cfg, err
	}
	if cfg.testGames, err = intEnv("UNO_TEST_GAMES", cfg.testGames); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// runTraining trains a standard learning agent against three random
// opponents, reporting the win ratio after every epoch.
func runTraining(cfg config) error {
	options := []learner.Option{}
	if cfg.historyFile != "" {
		options = append(options, learner.WithHistoryFile(cfg.historyFile))
	}
	contestant := learner.NewStandardAgent("Contestant", learner.Config{
		Epsilon:           meta.EPSILON,
		LearningRate:      meta.LEARNING_RATE,
		LearningRateDecay: meta.LEARNING_RATE_DECAY,
		Lambda:            meta.LAMBDA,
		SamplesPerEpoch:   cfg.samples,
		TestGames:         cfg.testGames,
	}, options...)

	if cfg.historyFile != "" {
		if _, err := os.Stat(cfg.historyFile); err == nil {
			if err = contestant.LoadHistory(cfg.historyFile); err != nil {
				return err
			}
			log.Info().Msgf("resuming from %d past epochs in %s", len(contestant.History()), cfg.historyFile)
		}
	}

	players := []game.Player{
		contestant,
		player.NewRandom("Opponent 1"),
		player.NewRandom("Opponent 2"),
		player.NewRandom("Opponent 3"),
	}
	g, err := game.NewGame(players, cfg.deck, meta.START_CARDS)
	if err != nil {
		return err
	}

	for epoch := 0; epoch < cfg.epochs; epoch++ {
		record, err := contestant.TrainEpoch(g)
		if err != nil {
			return err
		}
		log.Info().
			Int("epoch", len(contestant.History())-1).
			Float64("win_ratio", float64(record.TestResult.Wins)/float64(record.TestResult.Games)).
			Msg("epoch complete")
	}
	return nil
}
