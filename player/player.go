// Package player provides the non-learning player implementations: a
// delegate for external input, a uniform-random baseline and a simple
// heuristic.
package player

import (
	"fmt"

	"uno/game"
)

// actionMessage renders the shared human-readable description of an action.
func actionMessage(name string, action game.Action) string {
	switch action.Kind {
	case game.PassAction:
		return fmt.Sprintf("%s passes.", name)
	case game.DrawAction:
		return fmt.Sprintf("%s draws a card.", name)
	case game.PlayAction:
		if action.Card.IsWild() {
			return fmt.Sprintf("%s plays %s and sets the color to %s.", name, action.Card, action.Color)
		}
		return fmt.Sprintf("%s plays %s.", name, action.Card)
	}
	return ""
}
