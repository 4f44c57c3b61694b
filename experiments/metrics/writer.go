package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// PlayerConfig identifies one player configuration within an experiment.
type PlayerConfig struct {
	ID           int
	Kind         string // "random", "smart" or "learner"
	Epsilon      float64
	LearningRate float64
	Lambda       float64
}

// GameRecord ties a played game to the contestant configuration it tested.
type GameRecord struct {
	ID         int
	Contestant int // PlayerConfig.ID
	GameMetric
}

// EpochRecord captures one training epoch's outcome.
type EpochRecord struct {
	Contestant   int // PlayerConfig.ID
	Epoch        int
	WinRatio     float64
	LearningRate float64
	TrainMetric
}

// Writer stores experiment results as CSV files under a per-run directory.
type Writer struct {
	baseDir string
	runID   string
}

// NewWriter creates a writer rooted at experiments/<name>/<run id>.
func NewWriter(name string) (*Writer, error) {
	runID := uuid.NewString()
	baseDir := filepath.Join("experiments", name, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		runID:   runID,
	}, nil
}

// RunID returns the unique identifier of this experiment run.
func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	return w.writeCSV("player_configs.csv",
		[]string{"id", "kind", "epsilon", "learning_rate", "lambda"},
		len(configs), func(i int) []string {
			c := configs[i]
			return []string{
				strconv.Itoa(c.ID),
				c.Kind,
				formatFloat(c.Epsilon),
				formatFloat(c.LearningRate),
				formatFloat(c.Lambda),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "contestant", "winner", "start_time", "end_time", "duration", "total_moves"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.ID),
				strconv.Itoa(r.Contestant),
				r.Winner,
				r.StartTime.Format(time.RFC3339),
				r.EndTime.Format(time.RFC3339),
				r.Duration.String(),
				strconv.Itoa(r.TotalMoves),
			}
		})
}

func (w *Writer) WriteEpochRecords(records []EpochRecord) error {
	return w.writeCSV("epoch_records.csv",
		[]string{"contestant", "epoch", "win_ratio", "learning_rate", "samples", "test_games", "test_wins", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Contestant),
				strconv.Itoa(r.Epoch),
				formatFloat(r.WinRatio),
				formatFloat(r.LearningRate),
				strconv.Itoa(r.Samples),
				strconv.Itoa(r.TestGames),
				strconv.Itoa(r.TestWins),
				r.Duration.String(),
			}
		})
}

func (w *Writer) writeCSV(filename string, header []string, rows int, row func(int) []string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filename, err)
	}
	for i := 0; i < rows; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filename, err)
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
