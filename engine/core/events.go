package core

import "sync"

type EventContext struct {
	Data struct {
		U64 [2]uint64
		F64 [2]float64
		F32 [4]float32
		C   [4]string
	}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// A configuration was applied and the eye projections were rebuilt.
	/* Context usage:
	 * string generation = data.Data.C[0];
	 * string path = data.Data.C[1]; (empty when not loaded from a file)
	 * f32 near = data.Data.F32[0];
	 * f32 far = data.Data.F32[1];
	 */
	EVENT_CODE_PROJECTION_CHANGED SystemEventCode = 0x01

	// Reloading a configuration file failed; the previous state is kept.
	/* Context usage:
	 * string path = data.Data.C[0];
	 * string error = data.Data.C[1];
	 */
	EVENT_CODE_RELOAD_FAILED SystemEventCode = 0x02

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

type eventCodeEntry struct {
	events []*registeredEvent
}

// State structure.
type eventSystemState struct {
	mutex sync.RWMutex
	// Lookup table for event codes.
	registered [MAX_MESSAGE_CODES]eventCodeEntry
}

/**
 * Event system internal state.
 */
var eventState = &eventSystemState{}

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

// EventShutdown drops every registration.
func EventShutdown() {
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	for i := 0; i < MAX_MESSAGE_CODES; i++ {
		eventState.registered[i].events = nil
	}
}

func validCode(code SystemEventCode) bool {
	return code >= 0 && code < MAX_MESSAGE_CODES
}

/**
 * Register to listen for when events are sent with the provided code. A listener can
 * only be registered once per code; registering it again returns false.
 * @param code The event code to listen for.
 * @param listener A pointer to a listener instance. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if !validCode(code) || onEvent == nil {
		return false
	}
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	for _, e := range eventState.registered[code].events {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code].events = append(eventState.registered[code].events, &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code.
 * @param code The event code to stop listening for.
 * @param listener The listener instance passed to EventRegister.
 * @returns true if the event is successfully unregistered; otherwise false.
 */
func EventUnregister(code SystemEventCode, listener interface{}) bool {
	if !validCode(code) {
		return false
	}
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	events := eventState.registered[code].events
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code].events = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code, in registration order. If an event
 * handler returns true, the event is considered handled and is not passed on to any
 * more listeners. Callbacks run on the caller's goroutine and may register or
 * unregister listeners.
 * @param code The event code to fire.
 * @param sender A pointer to the sender. Can be nil.
 * @param data The event data.
 * @returns true if handled, otherwise false.
 */
func EventFire(code SystemEventCode, sender interface{}, data EventContext) bool {
	if !validCode(code) {
		return false
	}
	eventState.mutex.RLock()
	events := eventState.registered[code].events
	eventState.mutex.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, data) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
