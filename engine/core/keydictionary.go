package core

import (
	"fmt"
	"strings"
)

// Action is a logical input the game reacts to, independent of the
// physical key bound to it.
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionAction
	ActionCancel
	ActionMenu
	actionMax
)

var actionNames = [actionMax]string{"up", "down", "left", "right", "action", "cancel", "menu"}

func (a Action) String() string {
	if a < actionMax {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, an := range actionNames {
		if an == n {
			return Action(i), nil
		}
	}
	return actionMax, fmt.Errorf("action %q: %w", name, ErrNotFound)
}

// KeyPoller reports the physical state of a key. The platform window
// implements it.
type KeyPoller interface {
	IsKeyDown(key KeyCode) bool
}

type KeyState uint8

const (
	KeyStateUp KeyState = iota
	KeyStateDown
	KeyStateHeld
)

func (s KeyState) String() string {
	switch s {
	case KeyStateDown:
		return "down"
	case KeyStateHeld:
		return "held"
	default:
		return "up"
	}
}

type KeyBinding struct {
	Key KeyCode
	// FramesHeld counts consecutive frames the key has been down.
	FramesHeld uint32
}

func (kb KeyBinding) State() KeyState {
	switch {
	case kb.FramesHeld == 0:
		return KeyStateUp
	case kb.FramesHeld == 1:
		return KeyStateDown
	default:
		return KeyStateHeld
	}
}

// DefaultBindings are used when no configuration overrides them.
var DefaultBindings = map[Action]KeyCode{
	ActionUp:     KeyW,
	ActionDown:   KeyS,
	ActionLeft:   KeyA,
	ActionRight:  KeyD,
	ActionAction: KeyEnter,
}

// KeyDictionary maps actions to physical keys and tracks for how many frames
// each key has been held. CheckInputs must run once per frame before the
// Get* queries of that frame.
type KeyDictionary struct {
	poller   KeyPoller
	bindings map[Action]*KeyBinding
	order    []Action
}

func NewKeyDictionary(poller KeyPoller) *KeyDictionary {
	return &KeyDictionary{
		poller:   poller,
		bindings: make(map[Action]*KeyBinding),
	}
}

// NewDefaultKeyDictionary registers DefaultBindings, overridden by the
// entries of overrides.
func NewDefaultKeyDictionary(poller KeyPoller, overrides map[Action]KeyCode) *KeyDictionary {
	kd := NewKeyDictionary(poller)
	for a := Action(0); a < actionMax; a++ {
		key, ok := overrides[a]
		if !ok {
			key, ok = DefaultBindings[a]
		}
		if ok {
			kd.bindings[a] = &KeyBinding{Key: key}
			kd.order = append(kd.order, a)
		}
	}
	return kd
}

// Add binds key to action. Binding an action twice is an error, use Rebind.
func (kd *KeyDictionary) Add(action Action, key KeyCode) error {
	if _, ok := kd.bindings[action]; ok {
		return fmt.Errorf("action %s: %w", action, ErrDuplicate)
	}
	kd.bindings[action] = &KeyBinding{Key: key}
	kd.order = append(kd.order, action)
	return nil
}

// Rebind replaces the key of action, registering it if needed, and resets
// its held counter.
func (kd *KeyDictionary) Rebind(action Action, key KeyCode) {
	if b, ok := kd.bindings[action]; ok {
		b.Key = key
		b.FramesHeld = 0
		return
	}
	kd.bindings[action] = &KeyBinding{Key: key}
	kd.order = append(kd.order, action)
}

func (kd *KeyDictionary) Remove(action Action) bool {
	if _, ok := kd.bindings[action]; !ok {
		return false
	}
	delete(kd.bindings, action)
	for i, a := range kd.order {
		if a == action {
			kd.order = append(kd.order[:i], kd.order[i+1:]...)
			break
		}
	}
	return true
}

// Actions returns the registered actions in registration order.
func (kd *KeyDictionary) Actions() []Action {
	out := make([]Action, len(kd.order))
	copy(out, kd.order)
	return out
}

func (kd *KeyDictionary) Binding(action Action) (KeyBinding, bool) {
	b, ok := kd.bindings[action]
	if !ok {
		return KeyBinding{}, false
	}
	return *b, true
}

func (kd *KeyDictionary) State(action Action) (KeyState, bool) {
	b, ok := kd.bindings[action]
	if !ok {
		return KeyStateUp, false
	}
	return b.State(), true
}

// CheckInputs advances the held counter of every binding whose key is down
// and resets the others.
func (kd *KeyDictionary) CheckInputs() {
	if kd.poller == nil {
		return
	}
	for _, a := range kd.order {
		b := kd.bindings[a]
		if kd.poller.IsKeyDown(b.Key) {
			b.FramesHeld++
		} else {
			b.FramesHeld = 0
		}
	}
}

// GetKeyDown is true only on the frame the key went down.
func (kd *KeyDictionary) GetKeyDown(action Action) bool {
	s, _ := kd.State(action)
	return s == KeyStateDown
}

// GetKey is true on every frame the key is down.
func (kd *KeyDictionary) GetKey(action Action) bool {
	s, _ := kd.State(action)
	return s != KeyStateUp
}

// GetKeyHeld is true from the second consecutive frame the key is down.
func (kd *KeyDictionary) GetKeyHeld(action Action) bool {
	s, _ := kd.State(action)
	return s == KeyStateHeld
}
