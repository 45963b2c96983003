package jsonui

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franv314/task-maker-go/internal/ui"
)

func TestJSONUI_OneEnvelopePerLine(t *testing.T) {
	var out bytes.Buffer
	u := New(&out)

	u.OnMessage(ui.Compilation{File: "sol.cpp", Status: ui.Pending()})
	u.OnMessage(ui.Warning{Message: "careful"})
	u.Finish()

	scanner := bufio.NewScanner(&out)
	var decoded []ui.Message
	for scanner.Scan() {
		m, err := ui.UnmarshalMessage(scanner.Bytes())
		require.NoError(t, err)
		decoded = append(decoded, m)
	}
	require.Len(t, decoded, 2)
	assert.Equal(t, ui.Compilation{File: "sol.cpp", Status: ui.Pending()}, decoded[0])
	assert.Equal(t, ui.Warning{Message: "careful"}, decoded[1])
}
