package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"uno/game"
	"uno/player"
)

func TestRun(t *testing.T) {
	for _, numPlayers := range []int{2, 3, 4} {
		t.Run(fmt.Sprintf("%d players", numPlayers), func(t *testing.T) {
			players := make([]game.Player, numPlayers)
			for i := range players {
				players[i] = player.NewRandom(fmt.Sprintf("P%d", i))
			}
			g, err := game.NewGame(players, "standard", 7)
			require.NoError(t, err)

			winner, metric, err := NewLocal(g, 10000).Run()
			require.NoError(t, err)
			require.NotNil(t, winner)
			require.Equal(t, winner.Name(), metric.Winner)
			require.Positive(t, metric.TotalMoves)
			require.Equal(t, metric.EndTime.Sub(metric.StartTime), metric.Duration)
		})
	}

	t.Run("turn limit", func(t *testing.T) {
		players := []game.Player{
			player.NewRandom("P0"),
			player.NewRandom("P1"),
		}
		g, err := game.NewGame(players, "standard", 7)
		require.NoError(t, err)

		winner, metric, err := NewLocal(g, 1).Run()
		require.NoError(t, err)
		require.Nil(t, winner)
		require.Empty(t, metric.Winner)
		require.Equal(t, 1, metric.TotalMoves)
	})
}

func TestNewLocal(t *testing.T) {
	players := []game.Player{
		player.NewRandom("P0"),
		player.NewRandom("P1"),
	}
	g, err := game.NewGame(players, "basic", 7)
	require.NoError(t, err)

	require.Panics(t, func() { NewLocal(g, 0) })
}
