package game

// State is the game as seen by one player: their own hand, the top card,
// and only the sizes of the other hands. It is an ephemeral projection:
// every field is copied out of the engine, so holding a State never aliases
// engine-owned containers.
type State struct {
	// Hand is a copy of the viewing player's hand.
	Hand []Card
	// TopCard is the top of the play pile. A wild top card always carries a
	// resolved concrete color.
	TopCard Card
	// OpponentHands holds the opponents' hand sizes, ordered starting from
	// the next player in turn order.
	OpponentHands []int
	// Clockwise is the current direction of play.
	Clockwise bool
	// DrawnCard is the card just drawn this sub-turn, if it is immediately
	// playable and the player has not yet acted on it.
	DrawnCard *Card
	// Seat pins the index of the player this state was projected for.
	// Rewards are always evaluated from this seat's perspective, even if
	// the turn pointer has since moved on.
	Seat int
}
