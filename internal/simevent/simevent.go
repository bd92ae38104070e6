package simevent

import (
	"github.com/sondresk/liftsim/internal/simconsts"
)

type SimEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

// A passenger appeared at a floor and pressed the call button.
type ArrivalEvent struct {
	ID          string
	Origin      int
	Destination int
}

func (e ArrivalEvent) Wrap() SimEvent {
	return SimEvent{Value: e}
}

type BoardedEvent struct {
	ID    string
	Floor int
}

type AlightedEvent struct {
	ID    string
	Floor int
}

// The car opened its doors and exchanged passengers at a floor.
type StopServedEvent struct {
	Floor         int
	BoardedCount  int
	AlightedCount int
}

type DirectionChangedEvent struct {
	From simconsts.Dirn
	To   simconsts.Dirn
}

// The car parked with no pending stops.
type IdleEvent struct {
	Floor int
}

type TickEvent struct {
	Tick uint64
}

func (e *SimEvent) EventType() string {
	switch e.Value.(type) {
	case ArrivalEvent:
		return "ArrivalEvent"
	case BoardedEvent:
		return "BoardedEvent"
	case AlightedEvent:
		return "AlightedEvent"
	case StopServedEvent:
		return "StopServedEvent"
	case DirectionChangedEvent:
		return "DirectionChangedEvent"
	case IdleEvent:
		return "IdleEvent"
	case TickEvent:
		return "TickEvent"
	default:
		return "UnknownEvent"
	}
}
