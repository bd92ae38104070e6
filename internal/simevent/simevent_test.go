package simevent

import "testing"

func TestSimEvent(t *testing.T) {
	simEventArray := []SimEvent{
		{Value: ArrivalEvent{}},
		{Value: BoardedEvent{}},
		{Value: AlightedEvent{}},
		{Value: StopServedEvent{}},
		{Value: DirectionChangedEvent{}},
		{Value: IdleEvent{}},
		{Value: TickEvent{}},
		{Value: struct{}{}},
	}

	simEventStringArray := []string{
		"ArrivalEvent",
		"BoardedEvent",
		"AlightedEvent",
		"StopServedEvent",
		"DirectionChangedEvent",
		"IdleEvent",
		"TickEvent",
		"UnknownEvent",
	}

	for index, simEvent := range simEventArray {
		if simEvent.EventType() != simEventStringArray[index] {
			t.Errorf("SimEvent.EventType() returned %v, expected %v", simEvent.EventType(), simEventStringArray[index])
		}
	}
}
