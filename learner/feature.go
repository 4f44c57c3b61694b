package learner

import "uno/game"

// Feature is a named function from a (state, action) pair to a value. An
// agent's feature list is registered once at construction and stays fixed
// for the lifetime of its weight vector.
type Feature struct {
	Name string
	Fn   func(state *game.State, action game.Action) float64
}

// StandardFeatures is the feature set of the standard learning agent.
func StandardFeatures() []Feature {
	return []Feature{
		{Name: "cards_in_hand", Fn: cardsInHand},
		{Name: "wild_card_ratio", Fn: wildCardRatio},
		{Name: "special_card_ratio", Fn: specialCardRatio},
		{Name: "playable_card_ratio", Fn: playableCardRatio},
		{Name: "next_opponent_delta", Fn: nextOpponentDelta},
		{Name: "nonwild_colors", Fn: nonwildColors},
	}
}

// NewStandardAgent returns an agent wired with the standard feature set.
func NewStandardAgent(name string, config Config, options ...Option) *Agent {
	return NewAgent(name, StandardFeatures(), config, options...)
}

// cardsInHand counts the cards in the player's hand.
func cardsInHand(state *game.State, action game.Action) float64 {
	return float64(len(state.Hand))
}

// wildCardRatio is the share of the hand that is wild.
func wildCardRatio(state *game.State, action game.Action) float64 {
	if len(state.Hand) == 0 {
		return 0
	}
	wilds := 0
	for _, card := range state.Hand {
		if card.IsWild() {
			wilds++
		}
	}
	return float64(wilds) / float64(len(state.Hand))
}

// specialCardRatio is the share of the hand with special effects.
func specialCardRatio(state *game.State, action game.Action) float64 {
	if len(state.Hand) == 0 {
		return 0
	}
	specials := 0
	for _, card := range state.Hand {
		if card.IsSpecial() {
			specials++
		}
	}
	return float64(specials) / float64(len(state.Hand))
}

// playableCardRatio is the share of the remaining hand that would be
// playable on the top card resulting from the action: the candidate card
// itself for a play, the current top card otherwise.
func playableCardRatio(state *game.State, action game.Action) float64 {
	top := state.TopCard
	if action.Kind == game.PlayAction {
		top = action.Card
		if top.IsWild() {
			top = top.WithColor(action.Color)
		}
	}
	playable, total := 0, 0
	skipped := false
	for _, card := range state.Hand {
		if action.Kind == game.PlayAction && !skipped && card == action.Card {
			skipped = true
			continue
		}
		total++
		if card.IsPlayable(top) {
			playable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(playable) / float64(total)
}

// nextOpponentDelta is how many more cards the next opponent holds than the
// player. Positive values favor the player.
func nextOpponentDelta(state *game.State, action game.Action) float64 {
	if len(state.OpponentHands) == 0 {
		return 0
	}
	return float64(state.OpponentHands[0] - len(state.Hand))
}

// nonwildColors counts how many distinct concrete colors are in the hand.
func nonwildColors(state *game.State, action game.Action) float64 {
	var seen [4]bool
	count := 0
	for _, card := range state.Hand {
		if card.IsWild() {
			continue
		}
		if !seen[card.Color] {
			seen[card.Color] = true
			count++
		}
	}
	return float64(count)
}
