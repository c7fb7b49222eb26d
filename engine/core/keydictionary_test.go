package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoller struct {
	down map[KeyCode]bool
}

func newFakePoller() *fakePoller {
	return &fakePoller{down: make(map[KeyCode]bool)}
}

func (p *fakePoller) IsKeyDown(key KeyCode) bool {
	return p.down[key]
}

func TestKeyDictionaryFrames(t *testing.T) {
	poller := newFakePoller()
	kd := NewDefaultKeyDictionary(poller, nil)

	tests := []struct {
		frame    int
		pressed  bool
		wantDown bool
		wantKey  bool
		wantHeld bool
	}{
		{1, true, true, true, false},
		{2, true, false, true, true},
		{3, true, false, true, true},
		{4, false, false, false, false},
	}
	for _, tt := range tests {
		poller.down[KeyW] = tt.pressed
		kd.CheckInputs()
		assert.Equal(t, tt.wantDown, kd.GetKeyDown(ActionUp), "GetKeyDown frame %d", tt.frame)
		assert.Equal(t, tt.wantKey, kd.GetKey(ActionUp), "GetKey frame %d", tt.frame)
		assert.Equal(t, tt.wantHeld, kd.GetKeyHeld(ActionUp), "GetKeyHeld frame %d", tt.frame)
	}
}

func TestKeyDictionaryDefaults(t *testing.T) {
	kd := NewDefaultKeyDictionary(newFakePoller(), map[Action]KeyCode{ActionAction: KeySpace})

	want := map[Action]KeyCode{
		ActionUp:     KeyW,
		ActionDown:   KeyS,
		ActionLeft:   KeyA,
		ActionRight:  KeyD,
		ActionAction: KeySpace,
	}
	for a, k := range want {
		b, ok := kd.Binding(a)
		require.True(t, ok, a.String())
		assert.Equal(t, k, b.Key, a.String())
	}
	assert.Equal(t, []Action{ActionUp, ActionDown, ActionLeft, ActionRight, ActionAction}, kd.Actions())
}

func TestKeyDictionaryUnregisteredAction(t *testing.T) {
	poller := newFakePoller()
	kd := NewKeyDictionary(poller)
	poller.down[KeyEscape] = true
	kd.CheckInputs()

	assert.False(t, kd.GetKey(ActionCancel))
	assert.False(t, kd.GetKeyDown(ActionCancel))
	_, ok := kd.State(ActionCancel)
	assert.False(t, ok)
	_, ok = kd.Binding(ActionCancel)
	assert.False(t, ok)
}

func TestKeyDictionaryAddAndRebind(t *testing.T) {
	poller := newFakePoller()
	kd := NewKeyDictionary(poller)

	require.NoError(t, kd.Add(ActionCancel, KeyBackspace))
	assert.ErrorIs(t, kd.Add(ActionCancel, KeyEscape), ErrDuplicate)

	poller.down[KeyBackspace] = true
	kd.CheckInputs()
	kd.CheckInputs()
	s, ok := kd.State(ActionCancel)
	require.True(t, ok)
	assert.Equal(t, KeyStateHeld, s)

	kd.Rebind(ActionCancel, KeyEscape)
	b, _ := kd.Binding(ActionCancel)
	assert.Equal(t, KeyEscape, b.Key)
	assert.Zero(t, b.FramesHeld)

	assert.True(t, kd.Remove(ActionCancel))
	assert.False(t, kd.Remove(ActionCancel))
	assert.Empty(t, kd.Actions())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" Right ")
	require.NoError(t, err)
	assert.Equal(t, ActionRight, a)

	_, err = ParseAction("jump")
	assert.ErrorIs(t, err, ErrNotFound)
}
