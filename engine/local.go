// Package engine drives complete games between players, collecting
// per-game metrics along the way.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"uno/experiments/metrics"
	"uno/game"
)

// Local runs a game to completion in-process, strictly turn-sequential:
// exactly one player drives the game at a time.
type Local struct {
	game     *game.Game
	maxTurns int
}

func NewLocal(g *game.Game, maxTurns int) *Local {
	if maxTurns < 1 {
		panic("need a positive turn limit")
	}
	return &Local{game: g, maxTurns: maxTurns}
}

// Run resets the game and plays it out until a winner is found or the turn
// limit is hit. The returned winner is nil only when the limit was hit.
func (e *Local) Run() (game.Player, metrics.GameMetric, error) {
	err := e.game.Reset()
	if err != nil {
		return nil, metrics.GameMetric{}, err
	}

	start := time.Now()
	turns := 0
	for !e.game.IsOver() && turns < e.maxTurns {
		player := e.game.CurrentPlayer()
		action := player.ChooseAction(e.game.GetState(), e.game.LegalActions())
		if _, err = e.game.Play(action); err != nil {
			return nil, metrics.GameMetric{}, fmt.Errorf("turn %d (%s): %w", turns, player.Name(), err)
		}
		turns++
	}

	winner := e.game.Winner()
	name := ""
	if winner != nil {
		name = winner.Name()
		log.Info().Msgf("game over after %d turns, winner: %s", turns, name)
	} else {
		log.Warn().Msgf("game stopped after %d turns with no winner", turns)
	}

	end := time.Now()
	metric := metrics.GameMetric{
		Winner:     name,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: turns,
	}
	return winner, metric, nil
}
