// internal/input/action.go
package input

// Action is an editor operation requested by the user.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit           // quit, refusing if unsaved changes exist
	ActionForceQuit
	ActionSave

	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	ActionInsertRune // carries the rune
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward

	ActionUndo
	ActionRedo

	ActionYank
	ActionCut
	ActionPaste
)

// ActionEvent is a decoded input event. Selecting is set when a movement
// carried the Shift modifier, meaning the movement extends a selection
// instead of collapsing it.
type ActionEvent struct {
	Action    Action
	Rune      rune
	Selecting bool
}
