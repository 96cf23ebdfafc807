package workflow

import (
	"fmt"

	"github.com/wl0182/Restaurant-Ordering-System/internal/entity"
)

// State of a table as seen by the floor staff.
type State string

const (
	StateIdle            State = "IDLE"
	StateActive          State = "ACTIVE"
	StateCheckoutPending State = "CHECKOUT_PENDING"
	StateEnded           State = "ENDED"
)

type Event string

const (
	EventStart      Event = "start"
	EventResume     Event = "resume"
	EventOrder      Event = "order"
	EventRequestEnd Event = "request_end"
	EventEnd        Event = "end"
	EventRelease    Event = "release"
)

var transitions = map[State]map[Event]State{
	StateIdle: {
		EventStart: StateActive,
	},
	StateActive: {
		EventResume:     StateActive,
		EventOrder:      StateActive,
		EventRequestEnd: StateCheckoutPending,
	},
	StateCheckoutPending: {
		EventEnd: StateEnded,
	},
	StateEnded: {
		EventRelease: StateIdle,
	},
}

// Transition returns the state reached from "from" on e, or entity.ErrInvalidTransition.
func Transition(from State, e Event) (State, error) {
	to, ok := transitions[from][e]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", entity.ErrInvalidTransition, e, from)
	}

	return to, nil
}
