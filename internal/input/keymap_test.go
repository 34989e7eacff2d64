package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{
			name: "arrow key",
			ev:   tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone),
			want: ActionEvent{Action: ActionMoveRight},
		},
		{
			name: "shift-arrow extends selection",
			ev:   tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift),
			want: ActionEvent{Action: ActionMoveRight, Selecting: true},
		},
		{
			name: "shift-end extends selection",
			ev:   tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModShift),
			want: ActionEvent{Action: ActionMoveEnd, Selecting: true},
		},
		{
			name: "plain rune inserts",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
			want: ActionEvent{Action: ActionInsertRune, Rune: 'x'},
		},
		{
			name: "shifted rune still inserts",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift),
			want: ActionEvent{Action: ActionInsertRune, Rune: 'X'},
		},
		{
			name: "ctrl-s saves",
			ev:   tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			want: ActionEvent{Action: ActionSave},
		},
		{
			name: "ctrl-z undoes",
			ev:   tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl),
			want: ActionEvent{Action: ActionUndo},
		},
		{
			name: "enter",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: ActionEvent{Action: ActionInsertNewLine},
		},
		{
			name: "backspace variant",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: ActionEvent{Action: ActionDeleteCharBackward},
		},
		{
			name: "unbound chord",
			ev:   tcell.NewEventKey(tcell.KeyCtrlG, 0, tcell.ModCtrl),
			want: ActionEvent{Action: ActionUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}
