package core

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/kestrel/engine/containers"
)

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EventCodeApplicationQuit EventCode = 0x01
	// Keyboard key pressed. Uses Event.Key.
	EventCodeKeyPressed EventCode = 0x02
	// Keyboard key released. Uses Event.Key.
	EventCodeKeyReleased EventCode = 0x03
	// Mouse button pressed. Uses Event.Button.
	EventCodeButtonPressed EventCode = 0x04
	// Mouse button released. Uses Event.Button.
	EventCodeButtonReleased EventCode = 0x05
	// Mouse moved. Uses Event.X and Event.Y.
	EventCodeMouseMoved EventCode = 0x06
	// Mouse wheel. Uses Event.X and Event.Y as scroll offsets.
	EventCodeMouseWheel EventCode = 0x07
	// Framebuffer resized. Uses Event.Width and Event.Height.
	EventCodeResized EventCode = 0x08

	MaxSystemEventCode EventCode = 0xFF
)

const DefaultEventQueueSize = 256

type Event struct {
	Code   EventCode
	Sender interface{}

	Key    KeyCode
	Button Button
	X, Y   float64

	Width, Height uint32
}

// Should return true if handled.
type OnEvent func(e Event) bool

type registeredEvent struct {
	listener interface{}
	callback OnEvent
}

// EventSystem delivers events either immediately through Fire or deferred
// through Queue and Dispatch. Listeners for a code are invoked in
// registration order until one of them reports the event as handled.
type EventSystem struct {
	registered map[EventCode][]*registeredEvent
	queue      *containers.RingQueue[Event]
}

func NewEventSystem(queueSize int) *EventSystem {
	if queueSize <= 0 {
		queueSize = DefaultEventQueueSize
	}
	return &EventSystem{
		registered: make(map[EventCode][]*registeredEvent),
		queue:      containers.NewRingQueue[Event](queueSize),
	}
}

// Register listens for events sent with the provided code. A listener can only
// be registered once per code; listener must be comparable.
func (es *EventSystem) Register(code EventCode, listener interface{}, onEvent OnEvent) error {
	if onEvent == nil {
		return fmt.Errorf("event code %d: nil callback: %w", code, ErrOutOfRange)
	}
	for _, e := range es.registered[code] {
		if e.listener == listener {
			return fmt.Errorf("listener for event code %d: %w", code, ErrDuplicate)
		}
	}
	es.registered[code] = append(es.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return nil
}

// Unregister builds a new listener slice so a Fire in progress keeps
// iterating over the listeners it started with.
func (es *EventSystem) Unregister(code EventCode, listener interface{}) error {
	events := es.registered[code]
	for i, e := range events {
		if e.listener == listener {
			remaining := make([]*registeredEvent, 0, len(events)-1)
			remaining = append(remaining, events[:i]...)
			es.registered[code] = append(remaining, events[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("listener for event code %d: %w", code, ErrNotFound)
}

// Fire sends an event to the listeners of its code right away.
// Returns true if one of them handled it.
func (es *EventSystem) Fire(e Event) bool {
	for _, r := range es.registered[e.Code] {
		if r.callback(e) {
			return true
		}
	}
	return false
}

// Queue defers an event until the next Dispatch.
func (es *EventSystem) Queue(e Event) error {
	if err := es.queue.Enqueue(e); err != nil {
		if errors.Is(err, containers.ErrFull) {
			LogWarn("event queue full, dropping event code %d", e.Code)
		}
		return err
	}
	return nil
}

// Dispatch fires every queued event in arrival order and leaves the queue
// empty. Returns the number of events that were handled by a listener.
func (es *EventSystem) Dispatch() int {
	handled := 0
	for !es.queue.IsEmpty() {
		e, err := es.queue.Dequeue()
		if err != nil {
			break
		}
		if es.Fire(e) {
			handled++
		}
	}
	return handled
}

func (es *EventSystem) Pending() int {
	return es.queue.Len()
}

// Clear drops every queued event without firing it.
func (es *EventSystem) Clear() {
	es.queue.Clear()
}

// Shutdown removes every listener and queued event.
func (es *EventSystem) Shutdown() {
	es.registered = make(map[EventCode][]*registeredEvent)
	es.queue.Clear()
}
