package lobby

import (
	"errors"
	"fmt"

	"github.com/sondresk/liftsim/internal/callreg"
	"github.com/sondresk/liftsim/internal/passenger"
)

var (
	ErrSameFloor  = errors.New("origin and destination are the same floor")
	ErrFloorRange = errors.New("floor outside the building")
)

// Lobby holds the passengers waiting at each floor, in arrival order.
// The head of a queue is the first passenger to board when the car stops.
type Lobby struct {
	maxFloor int
	queues   [][]*passenger.Passenger
}

func NewLobby(maxFloor int) *Lobby {
	if maxFloor < 1 {
		panic(fmt.Sprintf("lobby needs at least two floors, got maxFloor %d", maxFloor))
	}
	return &Lobby{
		maxFloor: maxFloor,
		queues:   make([][]*passenger.Passenger, maxFloor+1),
	}
}

func (l *Lobby) MaxFloor() int {
	return l.maxFloor
}

// Register validates an arrival, creates a Waiting passenger, enqueues it at
// the origin floor and presses the call button. Nothing is mutated when the
// request is invalid.
func (l *Lobby) Register(reg *callreg.Registry, origin int, destination int) (*passenger.Passenger, error) {
	if origin < 0 || origin > l.maxFloor {
		return nil, fmt.Errorf("invalid request: origin %d: %w", origin, ErrFloorRange)
	}
	if destination < 0 || destination > l.maxFloor {
		return nil, fmt.Errorf("invalid request: destination %d: %w", destination, ErrFloorRange)
	}
	if origin == destination {
		return nil, fmt.Errorf("invalid request: floor %d: %w", origin, ErrSameFloor)
	}

	p := passenger.New(origin, destination)
	l.queues[origin] = append(l.queues[origin], p)
	reg.AddCall(origin)
	return p, nil
}

func (l *Lobby) WaitingCount(floor int) int {
	return len(l.queues[floor])
}

// WaitingCounts returns the per-floor queue lengths, indexed by floor.
func (l *Lobby) WaitingCounts() []int {
	counts := make([]int, l.maxFloor+1)
	for f := range l.queues {
		counts[f] = len(l.queues[f])
	}
	return counts
}

func (l *Lobby) TotalWaiting() int {
	total := 0
	for f := range l.queues {
		total += len(l.queues[f])
	}
	return total
}

// Dequeue removes and returns the longest-waiting passenger at the floor,
// or nil when the floor is empty.
func (l *Lobby) Dequeue(floor int) *passenger.Passenger {
	if len(l.queues[floor]) == 0 {
		return nil
	}
	p := l.queues[floor][0]
	l.queues[floor] = l.queues[floor][1:]
	return p
}
