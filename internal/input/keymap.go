// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys (arrows, Enter, function keys) to actions.
type Keymap map[tcell.Key]Action

// movementActions are the actions that Shift turns into selection extension.
var movementActions = map[Action]bool{
	ActionMoveUp:       true,
	ActionMoveDown:     true,
	ActionMoveLeft:     true,
	ActionMoveRight:    true,
	ActionMovePageUp:   true,
	ActionMovePageDown: true,
	ActionMoveHome:     true,
	ActionMoveEnd:      true,
}

// InputProcessor translates tcell key events into ActionEvents.
type InputProcessor struct {
	keymap Keymap
}

// NewInputProcessor creates a processor with the default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd

	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward

	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlS] = ActionSave

	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo

	p.keymap[tcell.KeyCtrlC] = ActionYank
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
}

// ProcessEvent decodes a tcell key event.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// tcell encodes Ctrl chords as distinct Key values; drop the redundant
	// modifier bit so the keymap lookup below matches.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{
				Action:    action,
				Selecting: mod == tcell.ModShift && movementActions[action],
			}
		}
	}

	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
