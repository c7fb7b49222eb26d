package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyCode(t *testing.T) {
	tests := []struct {
		name string
		want KeyCode
	}{
		{"W", KeyW},
		{"enter", KeyEnter},
		{"ENTER", KeyEnter},
		{"f1", KeyF1},
		{"F12", KeyF12},
		{"7", Key7},
		{"lshift", KeyLeftShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyCode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKeyCode("hyper")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeyCodeString(t *testing.T) {
	assert.Equal(t, "a", KeyA.String())
	assert.Equal(t, "f4", KeyF4.String())
	assert.Equal(t, "key(0xFF)", KeyCode(0xFF).String())
	assert.True(t, KeyF7.IsFunctionKey())
	assert.False(t, KeyEscape.IsFunctionKey())
}
