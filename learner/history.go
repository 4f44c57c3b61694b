package learner

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"uno/utils"
)

// ErrEmptyTrainingData is returned when loading a history with no records.
var ErrEmptyTrainingData = errors.New("training data is empty")

// IncompatibleTrainingDataError reports a loaded history whose weights were
// trained on a different feature set. Proceeding would corrupt the learned
// policy, so the load fails instead.
type IncompatibleTrainingDataError struct {
	Want []string
	Got  []string
}

func (e *IncompatibleTrainingDataError) Error() string {
	return fmt.Sprintf("training data features %v do not match agent features %v", e.Got, e.Want)
}

// TestResult summarizes the held-out test games of one epoch.
type TestResult struct {
	Wins  int `yaml:"wins"`
	Games int `yaml:"games"`
}

// Params is the hyperparameter snapshot stored with each epoch.
type Params struct {
	SamplesPerEpoch int     `yaml:"samples_per_epoch"`
	LearningRate    float64 `yaml:"learning_rate"`
	Epsilon         float64 `yaml:"epsilon"`
	Lambda          float64 `yaml:"lambda"`
}

// TrainingRecord is an immutable snapshot appended once per epoch.
type TrainingRecord struct {
	Weights    map[string]float64 `yaml:"weights"`
	TestResult TestResult         `yaml:"test_results"`
	Params     Params             `yaml:"params"`
}

// SaveHistory writes the full training history to path, replacing whatever
// was there.
func (a *Agent) SaveHistory(path string) error {
	data, err := yaml.Marshal(a.history)
	if err != nil {
		return fmt.Errorf("failed to encode training data: %w", err)
	}
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to save training data: %w", err)
	}
	return nil
}

// LoadHistory replaces the agent's history and weights with the records
// stored at path. The latest record's feature names must exactly match the
// agent's configured feature set.
func (a *Agent) LoadHistory(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read training data: %w", err)
	}
	var records []TrainingRecord
	if err = yaml.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse training data: %w", err)
	}
	if len(records) == 0 {
		return ErrEmptyTrainingData
	}

	latest := records[len(records)-1]
	if err = a.checkCompatible(latest.Weights); err != nil {
		return err
	}

	a.history = records
	a.weights = utils.CopyMap(latest.Weights)
	a.resetTrace()
	return nil
}

func (a *Agent) checkCompatible(weights map[string]float64) error {
	names := a.FeatureNames()
	compatible := len(weights) == len(names)
	if compatible {
		for _, name := range names {
			if _, ok := weights[name]; !ok {
				compatible = false
				break
			}
		}
	}
	if compatible {
		return nil
	}

	got := make([]string, 0, len(weights))
	for name := range weights {
		got = append(got, name)
	}
	sort.Strings(got)
	return &IncompatibleTrainingDataError{Want: names, Got: got}
}
