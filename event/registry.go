package event

import "strings"

var typeToName = map[EventType]string{
	EventTick:           "Tick",
	EventFrameTick:      "EventFrameTick",
	EventSpawnTick:      "EventSpawnTick",
	EventGesturePoint:   "EventGesturePoint",
	EventViewportResize: "EventViewportResize",
	EventGameReset:      "EventGameReset",
}

// String returns the registered name of the event type
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// Lookup resolves a registered event name; "Tick" matches case-insensitively
func Lookup(name string) (EventType, bool) {
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	for et, n := range typeToName {
		if n == name {
			return et, true
		}
	}
	return 0, false
}
