package game

import "fmt"

// ActionKind represents the type of action a player can perform.
type ActionKind int

const (
	PassAction ActionKind = iota
	DrawAction
	PlayAction
)

// Action is one entry of a legal-action list. Card is set for PlayAction
// only. Color carries the chosen color for a wild play and is ColorWild
// for any other play.
type Action struct {
	Kind  ActionKind
	Card  Card
	Color Color
}

func (a Action) String() string {
	switch a.Kind {
	case PassAction:
		return "pass"
	case DrawAction:
		return "draw"
	case PlayAction:
		if a.Card.IsWild() {
			return fmt.Sprintf("play %s as %s", a.Card, a.Color)
		}
		return fmt.Sprintf("play %s", a.Card)
	}
	return "unknown"
}

// playActions expands a hand card into its legal play actions: a wild card
// becomes four color-specific variants.
func playActions(card Card) []Action {
	if !card.IsWild() {
		return []Action{{Kind: PlayAction, Card: card, Color: ColorWild}}
	}
	actions := make([]Action, 0, len(ConcreteColors))
	for _, color := range ConcreteColors {
		actions = append(actions, Action{Kind: PlayAction, Card: card, Color: color})
	}
	return actions
}
