package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  Type
	}{
		{"print", TypePrint},
		{"raw", TypeRaw},
		{"curses", TypeCurses},
		{"json", TypeJSON},
		{"silent", TypeSilent},
		{"PRINT", TypePrint},
		{"Curses", TypeCurses},
		{"SiLeNt", TypeSilent},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseType_UnknownEchoesInput(t *testing.T) {
	_, err := ParseType("fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fancy")
}

// recordingUI counts what the dispatch loop hands over.
type recordingUI struct {
	messages []Message
	finished int
}

func (u *recordingUI) OnMessage(m Message) { u.messages = append(u.messages, m) }
func (u *recordingUI) Finish()             { u.finished++ }

func TestRun_StopTerminatesAndFinalizesOnce(t *testing.T) {
	sender, receiver := NewChannel()
	front := &recordingUI{}

	require.NoError(t, sender.Send(Warning{Message: "a"}))
	require.NoError(t, sender.Send(Warning{Message: "b"}))
	require.NoError(t, sender.Send(Stop{}))
	// Anything after the stop is never dispatched.
	require.NoError(t, sender.Send(Warning{Message: "after"}))

	Run(receiver, front)

	assert.Equal(t, []Message{Warning{Message: "a"}, Warning{Message: "b"}}, front.messages)
	assert.Equal(t, 1, front.finished)

	// The loop closed the channel on its way out.
	require.ErrorIs(t, sender.Send(Warning{Message: "late"}), ErrChannelClosed)
}

func TestRun_ImmediateStop(t *testing.T) {
	sender, receiver := NewChannel()
	front := &recordingUI{}

	require.NoError(t, sender.Send(Stop{}))
	Run(receiver, front)

	assert.Empty(t, front.messages)
	assert.Equal(t, 1, front.finished)
}

func TestRun_ClosedChannelFinalizes(t *testing.T) {
	_, receiver := NewChannel()
	receiver.Close()

	front := &recordingUI{}
	Run(receiver, front)

	assert.Empty(t, front.messages)
	assert.Equal(t, 1, front.finished)
}
