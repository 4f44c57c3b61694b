package learner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uno/game"
)

func TestStandardFeatures(t *testing.T) {
	state := &game.State{
		Hand: []game.Card{
			game.MustParseCard("R5"),
			game.MustParseCard("B5"),
			game.MustParseCard("WW"),
			game.MustParseCard("GS"),
		},
		TopCard:       game.MustParseCard("R2"),
		OpponentHands: []int{6, 3},
	}
	pass := game.Action{Kind: game.PassAction}

	byName := map[string]Feature{}
	for _, f := range StandardFeatures() {
		byName[f.Name] = f
	}

	t.Run("cards_in_hand", func(t *testing.T) {
		require.Equal(t, 4.0, byName["cards_in_hand"].Fn(state, pass))
	})

	t.Run("wild_card_ratio", func(t *testing.T) {
		require.InDelta(t, 0.25, byName["wild_card_ratio"].Fn(state, pass), 1e-9)
	})

	t.Run("special_card_ratio", func(t *testing.T) {
		// WW and GS are special.
		require.InDelta(t, 0.5, byName["special_card_ratio"].Fn(state, pass), 1e-9)
	})

	t.Run("nonwild_colors", func(t *testing.T) {
		// R, B and G; the wild does not count.
		require.Equal(t, 3.0, byName["nonwild_colors"].Fn(state, pass))
	})

	t.Run("next_opponent_delta", func(t *testing.T) {
		require.Equal(t, 2.0, byName["next_opponent_delta"].Fn(state, pass))
	})

	t.Run("playable_card_ratio after a play", func(t *testing.T) {
		// Candidate top is R5; of the rest, B5 matches rank and WW is wild,
		// while GS matches nothing.
		play := game.Action{Kind: game.PlayAction, Card: game.MustParseCard("R5"), Color: game.ColorWild}
		require.InDelta(t, 2.0/3.0, byName["playable_card_ratio"].Fn(state, play), 1e-9)
	})

	t.Run("playable_card_ratio after a wild play", func(t *testing.T) {
		// Resolving WW to blue leaves B5 playable plus nothing else wild.
		play := game.Action{Kind: game.PlayAction, Card: game.MustParseCard("WW"), Color: game.Blue}
		require.InDelta(t, 1.0/3.0, byName["playable_card_ratio"].Fn(state, play), 1e-9)
	})

	t.Run("playable_card_ratio without a play", func(t *testing.T) {
		// Against the current top R2: R5 matches color, WW is wild.
		require.InDelta(t, 0.5, byName["playable_card_ratio"].Fn(state, pass), 1e-9)
	})

	t.Run("empty hand", func(t *testing.T) {
		empty := &game.State{TopCard: game.MustParseCard("R2")}
		for name, f := range byName {
			require.Zero(t, f.Fn(empty, pass), "%s should handle an empty hand", name)
		}
	})
}
