package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testPlayer plays randomly unless given an explicit chooser.
type testPlayer struct {
	name   string
	choose func(state *State, actions []Action) Action
}

func (p *testPlayer) Name() string { return p.name }

func (p *testPlayer) ChooseAction(state *State, actions []Action) Action {
	if p.choose != nil {
		return p.choose(state, actions)
	}
	return actions[rand.Intn(len(actions))]
}

func (p *testPlayer) ActionMessage(action Action) string {
	return fmt.Sprintf("%s: %s", p.name, action)
}

func newTestGame(t *testing.T, players int, deck string) *Game {
	t.Helper()
	seats := make([]Player, players)
	for i := range seats {
		seats[i] = &testPlayer{name: fmt.Sprintf("P%d", i)}
	}
	g, err := NewGame(seats, deck, 7)
	require.NoError(t, err)
	return g
}

// rig replaces the dealt position with an exact one: hands by card code,
// a top card and a draw pile whose last entry is drawn first.
func rig(t *testing.T, g *Game, hands [][]string, top string, drawPile []string) {
	t.Helper()
	g.hands = make([][]Card, len(hands))
	for i, codes := range hands {
		for _, code := range codes {
			g.hands[i] = append(g.hands[i], MustParseCard(code))
		}
	}
	g.playPile = []Card{MustParseCard(top)}
	g.drawPile = nil
	for _, code := range drawPile {
		g.drawPile = append(g.drawPile, MustParseCard(code))
	}
	g.currentPlayerIndex = 0
	g.clockwise = true
	g.drawnCard = nil
}

func cardCount(g *Game) int {
	total := len(g.drawPile) + len(g.playPile)
	for _, hand := range g.hands {
		total += len(hand)
	}
	return total
}

func TestNewGame(t *testing.T) {
	t.Run("dealing", func(t *testing.T) {
		g := newTestGame(t, 4, "standard")

		for _, hand := range g.hands {
			require.Len(t, hand, 7, "Each player should be dealt start_cards")
		}
		require.Len(t, g.playPile, 1, "One card should be flipped onto the play pile")
		require.Equal(t, g.DeckSize(), cardCount(g), "No card should be lost in the deal")
	})

	t.Run("rejecting bad configurations", func(t *testing.T) {
		_, err := NewGame([]Player{&testPlayer{name: "solo"}}, "standard", 7)
		require.Error(t, err, "Should require at least two players")

		_, err = NewGame([]Player{&testPlayer{name: "a"}, &testPlayer{name: "b"}}, "nonesuch", 7)
		require.Error(t, err, "Should reject an unknown deck name")
	})

	t.Run("wild top card is always resolved", func(t *testing.T) {
		g := newTestGame(t, 2, "special")
		for i := 0; i < 50; i++ {
			require.NoError(t, g.Reset())
			require.NotEqual(t, ColorWild, g.TopCard().Color,
				"A wild top card should carry a concrete color after reset")
		}
	})
}

func TestGetState(t *testing.T) {
	t.Run("projection is pure", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")

		first := g.GetState()
		second := g.GetState()
		require.Equal(t, first, second, "Two projections with no intervening play should be equal")
	})

	t.Run("projection never aliases engine containers", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")

		state := g.GetState()
		state.Hand[0] = MustParseCard("R0")
		state.OpponentHands[0] = 99

		require.Equal(t, g.GetState().Hand, g.CurrentHand(),
			"Mutating a projection should not leak into the engine")
		require.Equal(t, 7, g.GetState().OpponentHands[0])
	})

	t.Run("opponent hand sizes start from the next player", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"R1"}, {"G1", "G2"}, {"Y1", "Y2", "Y3"}}, "R5", []string{"B1"})

		require.Equal(t, []int{2, 3}, g.GetState().OpponentHands)
		require.Equal(t, 0, g.GetState().Seat)
	})
}

func TestDrawThenPass(t *testing.T) {
	t.Run("drawn playable card becomes pending", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"B7", "B8"}, {"G1", "G2"}}, "R5", []string{"Y5"})

		actions := g.LegalActions()
		require.Equal(t, []Action{{Kind: DrawAction}}, actions,
			"Draw should be the sole action when nothing is playable")

		state, err := g.Play(Action{Kind: DrawAction})
		require.NoError(t, err)
		require.NotNil(t, state.DrawnCard, "A playable drawn card should be pending")
		require.Equal(t, MustParseCard("Y5"), *state.DrawnCard)
		require.Equal(t, 0, g.currentPlayerIndex, "The turn should not end while the draw is pending")

		actions = g.LegalActions()
		require.Equal(t, []Action{
			{Kind: PassAction},
			{Kind: PlayAction, Card: MustParseCard("Y5"), Color: ColorWild},
		}, actions, "Only pass or playing the drawn card should be legal")

		state, err = g.Play(Action{Kind: PassAction})
		require.NoError(t, err)
		require.Len(t, g.hands[0], 3, "Draw then pass should grow the hand by exactly one")
		require.Equal(t, 1, g.currentPlayerIndex, "The turn should advance exactly once")
		require.Nil(t, state.DrawnCard)
	})

	t.Run("drawn unplayable card ends the turn", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"B7", "B8"}, {"G1", "G2"}}, "R5", []string{"B1"})

		state, err := g.Play(Action{Kind: DrawAction})
		require.NoError(t, err)
		require.Nil(t, state.DrawnCard)
		require.Len(t, g.hands[0], 3)
		require.Equal(t, 1, g.currentPlayerIndex, "The turn should end immediately")
	})

	t.Run("a different hand card cannot replace the pending card", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"B7", "B8"}, {"G1", "G2"}}, "R5", []string{"Y5"})

		_, err := g.Play(Action{Kind: DrawAction})
		require.NoError(t, err)

		_, err = g.Play(Action{Kind: PlayAction, Card: MustParseCard("B7"), Color: ColorWild})
		var illegal *IllegalActionError
		require.ErrorAs(t, err, &illegal)
	})
}

func TestSpecialCards(t *testing.T) {
	t.Run("skip", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"RS", "R1"}, {"G1", "G2"}, {"Y1", "Y2"}}, "R5", []string{"B1", "B2"})

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("RS"), Color: ColorWild})
		require.NoError(t, err)

		require.Equal(t, 2, g.currentPlayerIndex, "Exactly one player should be skipped")
		require.Contains(t, g.Messages(), "P1's turn is skipped!")
		require.Contains(t, g.Messages(), "P0 has only one card left.")
	})

	t.Run("draw two", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"RD", "R1"}, {"G1", "G2"}, {"Y1", "Y2"}}, "R5", []string{"B1", "B2", "B3"})
		before := cardCount(g)

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("RD"), Color: ColorWild})
		require.NoError(t, err)

		require.Len(t, g.hands[1], 4, "The next player should gain exactly two cards")
		require.Equal(t, 2, g.currentPlayerIndex, "The next player should be skipped")
		require.Equal(t, before, cardCount(g))
	})

	t.Run("reverse flips the direction", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"RR", "R1"}, {"R2", "G2"}, {"Y1", "Y2"}}, "R5", []string{"B1"})

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("RR"), Color: ColorWild})
		require.NoError(t, err)

		require.False(t, g.clockwise)
		require.Equal(t, 1, g.currentPlayerIndex)

		// Play continues counterclockwise from here.
		_, err = g.Play(Action{Kind: PlayAction, Card: MustParseCard("R2"), Color: ColorWild})
		require.NoError(t, err)
		require.Equal(t, 0, g.currentPlayerIndex)
	})

	t.Run("reverse acts as a second skip with two players", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"RR", "R1"}, {"G1", "G2"}}, "R5", []string{"B1"})

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("RR"), Color: ColorWild})
		require.NoError(t, err)

		require.False(t, g.clockwise)
		require.Equal(t, 0, g.currentPlayerIndex, "The opponent's turn should be skipped")
	})

	t.Run("wild draw four", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"WX", "R1"}, {"G1", "G2"}, {"Y1", "Y2"}}, "R5",
			[]string{"B1", "B2", "B3", "B4", "B5"})
		before := cardCount(g)

		actions := g.LegalActions()
		var wildPlays []Action
		for _, action := range actions {
			if action.Kind == PlayAction && action.Card == MustParseCard("WX") {
				wildPlays = append(wildPlays, action)
			}
		}
		require.Len(t, wildPlays, 4, "A wild should expand into four color variants")

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("WX"), Color: Blue})
		require.NoError(t, err)

		require.Equal(t, Card{Color: Blue, Rank: WildDrawFour}, g.TopCard(),
			"The played wild should carry the chosen color")
		require.Len(t, g.hands[1], 6, "The next player should gain exactly four cards")
		require.Equal(t, 2, g.currentPlayerIndex, "The next player should be skipped")
		require.Equal(t, before, cardCount(g))
	})

	t.Run("plain wild only sets the color", func(t *testing.T) {
		g := newTestGame(t, 3, "standard")
		rig(t, g, [][]string{{"WW", "R1"}, {"G1", "G2"}, {"Y1", "Y2"}}, "R5", []string{"B1"})

		_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("WW"), Color: Green})
		require.NoError(t, err)

		require.Equal(t, Card{Color: Green, Rank: Wild}, g.TopCard())
		require.Equal(t, 1, g.currentPlayerIndex, "No one should be skipped")
	})
}

func TestDrawCardRecycling(t *testing.T) {
	t.Run("recycling the play pile", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"B7"}, {"G1"}}, "G5", nil)
		g.playPile = []Card{
			MustParseCard("WW").WithColor(Red),
			MustParseCard("R1"),
			MustParseCard("B2"),
			MustParseCard("G5"),
		}

		card, err := g.drawCard()
		require.NoError(t, err)

		require.Equal(t, []Card{MustParseCard("G5")}, g.playPile,
			"Exactly the prior top card should remain played")
		require.Len(t, g.drawPile, 2)
		for _, c := range append(g.drawPile, card) {
			if c.IsWild() {
				require.Equal(t, ColorWild, c.Color, "Recycled wilds should reset to WILD")
			}
		}
	})

	t.Run("exhausted deck", func(t *testing.T) {
		g := newTestGame(t, 2, "standard")
		rig(t, g, [][]string{{"B7"}, {"G1"}}, "G5", nil)

		_, err := g.drawCard()
		require.ErrorIs(t, err, ErrDeckExhausted)
	})
}

func TestIllegalActions(t *testing.T) {
	g := newTestGame(t, 2, "standard")
	rig(t, g, [][]string{{"B7"}, {"G1", "G2"}}, "R5", []string{"B1"})
	before := g.GetState()

	for _, action := range []Action{
		{Kind: PassAction},
		{Kind: PlayAction, Card: MustParseCard("B7"), Color: ColorWild},
		{Kind: PlayAction, Card: MustParseCard("R9"), Color: ColorWild},
	} {
		_, err := g.Play(action)
		var illegal *IllegalActionError
		require.ErrorAs(t, err, &illegal, "Action %s should be rejected", action)
	}
	require.Equal(t, before, g.GetState(), "Rejected actions should not mutate the game")
}

func TestGetReward(t *testing.T) {
	g := newTestGame(t, 2, "standard")
	rig(t, g, [][]string{{"R1"}, {"G1", "G2"}}, "R5", []string{"B1"})

	state := g.GetState()
	require.Zero(t, g.GetReward(state), "An ongoing game has no reward")

	_, err := g.Play(Action{Kind: PlayAction, Card: MustParseCard("R1"), Color: ColorWild})
	require.NoError(t, err)
	require.True(t, g.IsOver())

	require.Equal(t, 1.0, g.GetReward(state),
		"The reward should follow the seat the state was projected for")
	require.Equal(t, -1.0, g.GetReward(&State{Seat: 1}))
	require.Equal(t, g.players[0], g.Winner())
}

func TestCardConservation(t *testing.T) {
	g := newTestGame(t, 4, "standard")
	for round := 0; round < 5; round++ {
		require.NoError(t, g.Reset())
		for steps := 0; !g.IsOver() && steps < 10000; steps++ {
			player := g.CurrentPlayer()
			action := player.ChooseAction(g.GetState(), g.LegalActions())
			_, err := g.Play(action)
			require.NoError(t, err)
			require.Equal(t, g.DeckSize(), cardCount(g),
				"Hands and piles should always hold the whole deck")
		}
	}
}

func TestFullGame(t *testing.T) {
	g := newTestGame(t, 4, "basic")
	for round := 0; round < 20; round++ {
		require.NoError(t, g.Reset())
		for steps := 0; !g.IsOver(); steps++ {
			require.Less(t, steps, 100000, "A random game should terminate")
			player := g.CurrentPlayer()
			action := player.ChooseAction(g.GetState(), g.LegalActions())
			_, err := g.Play(action)
			require.NoError(t, err)
		}
		winner := g.Winner()
		require.NotNil(t, winner)
		require.Empty(t, g.hands[g.winnerIndex()], "The winner's hand should be empty")
		require.Empty(t, g.LegalActions(), "A finished game offers no actions")
	}
}
