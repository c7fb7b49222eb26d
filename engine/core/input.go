package core

// Mouse state structure
type MouseState struct {
	X, Y             float64
	ScrollX, ScrollY float64
	Buttons          [ButtonMaxButtons]bool
}

// Keyboard state structure
type KeyboardState struct {
	Keys [KeysMaxKeys]bool
}

// InputState holds the current and previous frame state for keyboard and
// mouse. The platform layer feeds it through the Process* methods and every
// change is queued on the event system.
type InputState struct {
	keyboardCurrent  KeyboardState
	keyboardPrevious KeyboardState
	mouseCurrent     MouseState
	mousePrevious    MouseState

	events *EventSystem
}

func NewInputState(events *EventSystem) *InputState {
	return &InputState{events: events}
}

// Update copies current states to previous states. Call once per frame
// before polling the platform for new events.
func (is *InputState) Update() {
	is.keyboardPrevious = is.keyboardCurrent
	is.mousePrevious = is.mouseCurrent
	is.mouseCurrent.ScrollX = 0
	is.mouseCurrent.ScrollY = 0
}

// keyboard input
func (is *InputState) IsKeyDown(key KeyCode) bool {
	if key >= KeysMaxKeys {
		return false
	}
	return is.keyboardCurrent.Keys[key]
}

func (is *InputState) IsKeyUp(key KeyCode) bool {
	return !is.IsKeyDown(key)
}

func (is *InputState) WasKeyDown(key KeyCode) bool {
	if key >= KeysMaxKeys {
		return false
	}
	return is.keyboardPrevious.Keys[key]
}

func (is *InputState) WasKeyUp(key KeyCode) bool {
	return !is.WasKeyDown(key)
}

func (is *InputState) ProcessKey(key KeyCode, pressed bool) {
	if key >= KeysMaxKeys || is.keyboardCurrent.Keys[key] == pressed {
		return
	}
	is.keyboardCurrent.Keys[key] = pressed

	code := EventCodeKeyReleased
	if pressed {
		code = EventCodeKeyPressed
	}
	is.queue(Event{Code: code, Key: key})
}

// mouse input
func (is *InputState) IsButtonDown(button Button) bool {
	if button >= ButtonMaxButtons {
		return false
	}
	return is.mouseCurrent.Buttons[button]
}

func (is *InputState) WasButtonDown(button Button) bool {
	if button >= ButtonMaxButtons {
		return false
	}
	return is.mousePrevious.Buttons[button]
}

func (is *InputState) MousePosition() (float64, float64) {
	return is.mouseCurrent.X, is.mouseCurrent.Y
}

func (is *InputState) PreviousMousePosition() (float64, float64) {
	return is.mousePrevious.X, is.mousePrevious.Y
}

// MouseDelta is the cursor movement since the previous frame.
func (is *InputState) MouseDelta() (float64, float64) {
	return is.mouseCurrent.X - is.mousePrevious.X, is.mouseCurrent.Y - is.mousePrevious.Y
}

// ScrollDelta is the wheel movement accumulated during the current frame.
func (is *InputState) ScrollDelta() (float64, float64) {
	return is.mouseCurrent.ScrollX, is.mouseCurrent.ScrollY
}

func (is *InputState) ProcessButton(button Button, pressed bool) {
	if button >= ButtonMaxButtons || is.mouseCurrent.Buttons[button] == pressed {
		return
	}
	is.mouseCurrent.Buttons[button] = pressed

	code := EventCodeButtonReleased
	if pressed {
		code = EventCodeButtonPressed
	}
	is.queue(Event{Code: code, Button: button, X: is.mouseCurrent.X, Y: is.mouseCurrent.Y})
}

func (is *InputState) ProcessMouseMove(x, y float64) {
	if is.mouseCurrent.X == x && is.mouseCurrent.Y == y {
		return
	}
	is.mouseCurrent.X = x
	is.mouseCurrent.Y = y
	is.queue(Event{Code: EventCodeMouseMoved, X: x, Y: y})
}

func (is *InputState) ProcessMouseWheel(xOffset, yOffset float64) {
	is.mouseCurrent.ScrollX += xOffset
	is.mouseCurrent.ScrollY += yOffset
	is.queue(Event{Code: EventCodeMouseWheel, X: xOffset, Y: yOffset})
}

// ProcessResize forwards a framebuffer size change to the event system.
func (is *InputState) ProcessResize(width, height uint32) {
	is.queue(Event{Code: EventCodeResized, Width: width, Height: height})
}

func (is *InputState) queue(e Event) {
	if is.events == nil {
		return
	}
	// a full queue is already reported by the event system
	_ = is.events.Queue(e)
}
