package player

import (
	"golang.org/x/exp/rand"

	"uno/game"
)

// Random is an automated player who plays uniformly random legal moves. It
// is the baseline opponent for training and evaluation.
type Random struct {
	name string
}

func NewRandom(name string) *Random {
	return &Random{name: name}
}

func (p *Random) Name() string {
	return p.name
}

func (p *Random) ChooseAction(state *game.State, actions []game.Action) game.Action {
	return actions[rand.Intn(len(actions))]
}

func (p *Random) ActionMessage(action game.Action) string {
	return actionMessage(p.name, action)
}
