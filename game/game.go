package game

import (
	"fmt"
	"math/rand"

	"uno/utils"
)

// Game models an uno game: the rules state machine. No player can see the
// entire game state, only their own hand plus the sizes of the other hands,
// so the engine keeps all containers to itself and hands out State
// projections.
type Game struct {
	players            []Player
	deckName           string
	startCards         int
	drawPile           []Card
	playPile           []Card
	hands              [][]Card
	currentPlayerIndex int
	clockwise          bool
	drawnCard          *Card
	messages           []string
}

// NewGame creates a game for the given players and deck and deals the first
// round. Valid deck names are the keys of Decks.
func NewGame(players []Player, deckName string, startCards int) (*Game, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("need at least two players, got %d", len(players))
	}
	if _, ok := Decks[deckName]; !ok {
		return nil, fmt.Errorf("unknown deck %q", deckName)
	}
	if startCards < 1 {
		return nil, fmt.Errorf("start cards must be positive, got %d", startCards)
	}
	g := &Game{
		players:    players,
		deckName:   deckName,
		startCards: startCards,
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds every pile and hand from a fresh shuffled deck, deals
// startCards to each player and flips the first card. Nothing survives a
// reset except the message log's first entry.
func (g *Game) Reset() error {
	g.messages = []string{"Welcome to Uno."}
	codes := Decks[g.deckName]
	g.drawPile = make([]Card, 0, len(codes))
	for _, code := range codes {
		card, err := ParseCard(code)
		if err != nil {
			return fmt.Errorf("deck %q: %w", g.deckName, err)
		}
		g.drawPile = append(g.drawPile, card)
	}
	rand.Shuffle(len(g.drawPile), func(i, j int) {
		g.drawPile[i], g.drawPile[j] = g.drawPile[j], g.drawPile[i]
	})

	g.playPile = nil
	g.currentPlayerIndex = 0
	g.clockwise = true
	g.drawnCard = nil

	g.hands = make([][]Card, g.NumPlayers())
	for i := range g.hands {
		hand := make([]Card, 0, g.startCards)
		for j := 0; j < g.startCards; j++ {
			card, err := g.drawCard()
			if err != nil {
				return err
			}
			hand = append(hand, card)
		}
		g.hands[i] = hand
	}

	first, err := g.drawCard()
	if err != nil {
		return err
	}
	if first.IsWild() {
		first = first.WithColor(ConcreteColors[rand.Intn(len(ConcreteColors))])
	}
	g.playPile = append(g.playPile, first)
	return nil
}

// GetState returns the game as seen by the current player. It is a pure
// projection: calling it twice without an intervening Play returns equal
// views.
func (g *Game) GetState() *State {
	hand := make([]Card, len(g.currentHand()))
	copy(hand, g.currentHand())
	var drawn *Card
	if g.drawnCard != nil {
		card := *g.drawnCard
		drawn = &card
	}
	return &State{
		Hand:          hand,
		TopCard:       g.TopCard(),
		OpponentHands: g.OpponentHands(),
		Clockwise:     g.clockwise,
		DrawnCard:     drawn,
		Seat:          g.currentPlayerIndex,
	}
}

// LegalActions returns the exhaustive set of actions the current player may
// take. After drawing a playable card the player may only pass or play that
// exact card; otherwise every playable hand card is legal (wilds expand into
// four color variants) and drawing is the sole action when nothing is.
func (g *Game) LegalActions() []Action {
	if g.IsOver() {
		return nil
	}
	if g.drawnCard != nil {
		actions := []Action{{Kind: PassAction}}
		return append(actions, playActions(*g.drawnCard)...)
	}
	var actions []Action
	top := g.TopCard()
	for _, card := range g.currentHand() {
		if card.IsPlayable(top) {
			actions = append(actions, playActions(card)...)
		}
	}
	if len(actions) == 0 {
		actions = append(actions, Action{Kind: DrawAction})
	}
	return actions
}

// Play applies an action for the current player and returns the projection
// for whoever is current afterwards. The action must come from the most
// recent legal-action list; anything else is rejected with
// IllegalActionError before any state changes.
func (g *Game) Play(action Action) (*State, error) {
	if !g.isLegal(action) {
		return nil, &IllegalActionError{Action: action}
	}
	g.messages = append(g.messages, g.CurrentPlayer().ActionMessage(action))
	g.drawnCard = nil

	switch action.Kind {
	case PassAction:
		g.endOfTurn()
	case DrawAction:
		card, err := g.drawCard()
		if err != nil {
			return nil, err
		}
		g.hands[g.currentPlayerIndex] = append(g.hands[g.currentPlayerIndex], card)
		if card.IsPlayable(g.TopCard()) {
			// The player may immediately play the drawn card; the turn
			// is not over yet.
			g.drawnCard = &card
		} else {
			g.endOfTurn()
		}
	case PlayAction:
		played := action.Card
		if played.IsWild() {
			played = played.WithColor(action.Color)
		}
		g.removeFromHand(action.Card)
		g.playPile = append(g.playPile, played)
		// The turn advances before the effect activates: skip and
		// draw-stacking target whoever is current after advancing.
		g.endOfTurn()
		if err := played.activate(g); err != nil {
			return nil, err
		}
	}
	return g.GetState(), nil
}

func (g *Game) isLegal(action Action) bool {
	for _, legal := range g.LegalActions() {
		if legal == action {
			return true
		}
	}
	return false
}

func (g *Game) removeFromHand(card Card) {
	hand := g.hands[g.currentPlayerIndex]
	i := utils.FindIndex(hand, card)
	if i < 0 {
		panic(fmt.Sprintf("card %s not in current hand", card))
	}
	g.hands[g.currentPlayerIndex] = append(hand[:i], hand[i+1:]...)
}

// drawCard pops the draw pile. When the pile is empty every played card
// except the current top is reshuffled into a new draw pile, with wild
// colors reset to WILD.
func (g *Game) drawCard() (Card, error) {
	if len(g.drawPile) == 0 {
		if len(g.playPile) <= 1 {
			return Card{}, ErrDeckExhausted
		}
		top := g.playPile[len(g.playPile)-1]
		recycled := g.playPile[:len(g.playPile)-1]
		for i, card := range recycled {
			recycled[i] = card.AsWild()
		}
		rand.Shuffle(len(recycled), func(i, j int) {
			recycled[i], recycled[j] = recycled[j], recycled[i]
		})
		g.drawPile = recycled
		g.playPile = []Card{top}
	}
	card := g.drawPile[len(g.drawPile)-1]
	g.drawPile = g.drawPile[:len(g.drawPile)-1]
	return card, nil
}

// endOfTurn advances the current player by one seat in the direction of
// play, emitting a notice when the finishing player is down to one card.
func (g *Game) endOfTurn() {
	if len(g.currentHand()) == 1 {
		g.log("%s has only one card left.", g.CurrentPlayer().Name())
	}
	if !g.IsOver() {
		g.currentPlayerIndex = g.nextPlayerIndex()
	}
}

func (g *Game) nextPlayerIndex() int {
	offset := 1
	if !g.clockwise {
		offset = -1
	}
	n := g.NumPlayers()
	return (g.currentPlayerIndex + offset + n) % n
}

// IsOver reports whether any hand is empty.
func (g *Game) IsOver() bool {
	return g.winnerIndex() >= 0
}

func (g *Game) winnerIndex() int {
	for i, hand := range g.hands {
		if len(hand) == 0 {
			return i
		}
	}
	return -1
}

// Winner returns the player with an empty hand, or nil while the game is
// still going.
func (g *Game) Winner() Player {
	if i := g.winnerIndex(); i >= 0 {
		return g.players[i]
	}
	return nil
}

// GetReward scores the game from the perspective of the seat the state was
// projected for: +1 for a win, -1 for a loss, 0 while the game is ongoing.
// Using the state's pinned seat keeps the reward attached to the player who
// acted even after the turn pointer has moved on.
func (g *Game) GetReward(state *State) float64 {
	if !g.IsOver() {
		return 0
	}
	if g.winnerIndex() == state.Seat {
		return 1
	}
	return -1
}

// NumPlayers counts how many players are in the game.
func (g *Game) NumPlayers() int {
	return len(g.players)
}

// TopCard returns the top card of the play pile.
func (g *Game) TopCard() Card {
	return g.playPile[len(g.playPile)-1]
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() Player {
	return g.players[g.currentPlayerIndex]
}

// NextPlayer returns the player who acts after the current one.
func (g *Game) NextPlayer() Player {
	return g.players[g.nextPlayerIndex()]
}

func (g *Game) currentHand() []Card {
	return g.hands[g.currentPlayerIndex]
}

// CurrentHand returns a copy of the current player's hand.
func (g *Game) CurrentHand() []Card {
	hand := make([]Card, len(g.currentHand()))
	copy(hand, g.currentHand())
	return hand
}

// OpponentHands returns the opponents' hand sizes, ordered starting from
// the next player clockwise from the current one.
func (g *Game) OpponentHands() []int {
	sizes := make([]int, 0, g.NumPlayers()-1)
	for i := 1; i < g.NumPlayers(); i++ {
		index := (g.currentPlayerIndex + i) % g.NumPlayers()
		sizes = append(sizes, len(g.hands[index]))
	}
	return sizes
}

// Opponents returns the other players, ordered starting from the next
// player clockwise from the current one.
func (g *Game) Opponents() []Player {
	opponents := make([]Player, 0, g.NumPlayers()-1)
	for i := 1; i < g.NumPlayers(); i++ {
		index := (g.currentPlayerIndex + i) % g.NumPlayers()
		opponents = append(opponents, g.players[index])
	}
	return opponents
}

// Messages returns the append-only log of human-readable game events.
// Views track how much of it they have consumed via a running offset.
func (g *Game) Messages() []string {
	return g.messages
}

// DeckSize returns the number of cards in this game's deck. At all times
// the draw pile, play pile and hands together hold exactly this many cards.
func (g *Game) DeckSize() int {
	return len(Decks[g.deckName])
}

func (g *Game) log(format string, args ...any) {
	g.messages = append(g.messages, fmt.Sprintf(format, args...))
}
