package player

import "uno/game"

// Smart is a heuristic player: it plays the first non-wild card it can,
// saving wilds for when nothing else is playable.
type Smart struct {
	name string
}

func NewSmart(name string) *Smart {
	return &Smart{name: name}
}

func (p *Smart) Name() string {
	return p.name
}

func (p *Smart) ChooseAction(state *game.State, actions []game.Action) game.Action {
	for _, action := range actions {
		if action.Kind == game.PlayAction && !action.Card.IsWild() {
			return action
		}
	}
	return actions[0]
}

func (p *Smart) ActionMessage(action game.Action) string {
	return actionMessage(p.name, action)
}
