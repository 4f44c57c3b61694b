package game

// Player is implemented by every seat at the table: humans delegate to an
// external input source, baselines pick from the legal-action list, and the
// learning agent carries weights across calls. Players only ever see State
// projections; they never hold references into the engine's own containers.
type Player interface {
	Name() string
	// ChooseAction picks one of the given legal actions for the projected
	// state. The returned action must come from the actions slice.
	ChooseAction(state *State, actions []Action) Action
	// ActionMessage renders a human-readable description of an action,
	// appended to the game's event log when the action is played.
	ActionMessage(action Action) string
}
