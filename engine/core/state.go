package core

type GameState uint8

const (
	GameStateActive GameState = iota
	GameStatePaused
	GameStateMenu
)

func (s GameState) String() string {
	switch s {
	case GameStatePaused:
		return "paused"
	case GameStateMenu:
		return "menu"
	default:
		return "active"
	}
}

// StateManager tracks the high level state of the running game.
type StateManager struct {
	current  GameState
	previous GameState
}

func NewStateManager() *StateManager {
	return &StateManager{}
}

func (sm *StateManager) Current() GameState {
	return sm.current
}

func (sm *StateManager) Previous() GameState {
	return sm.previous
}

func (sm *StateManager) Set(state GameState) {
	if state == sm.current {
		return
	}
	LogDebug("game state %s -> %s", sm.current, state)
	sm.previous = sm.current
	sm.current = state
}

// TogglePause switches between active and paused. Other states are left
// untouched. Returns true if the state changed.
func (sm *StateManager) TogglePause() bool {
	switch sm.current {
	case GameStateActive:
		sm.Set(GameStatePaused)
	case GameStatePaused:
		sm.Set(GameStateActive)
	default:
		return false
	}
	return true
}
