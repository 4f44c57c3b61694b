package player

import "uno/game"

// Chooser collects an action choice from an external input source, such as
// a terminal or web view.
type Chooser func(state *game.State, actions []game.Action) game.Action

// Human is a player who delegates every choice to an external input source.
// The engine never blocks on input itself; whatever view embeds the game
// supplies the Chooser.
type Human struct {
	name    string
	chooser Chooser
}

func NewHuman(name string, chooser Chooser) *Human {
	return &Human{name: name, chooser: chooser}
}

func (p *Human) Name() string {
	return p.name
}

func (p *Human) ChooseAction(state *game.State, actions []game.Action) game.Action {
	return p.chooser(state, actions)
}

func (p *Human) ActionMessage(action game.Action) string {
	return actionMessage(p.name, action)
}
