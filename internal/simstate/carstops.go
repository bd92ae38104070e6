package simstate

import (
	"github.com/sondresk/liftsim/internal/callreg"
	"github.com/sondresk/liftsim/internal/lobby"
	"github.com/sondresk/liftsim/internal/simconsts"
)

// Pending stops are never stored: they are the union of the active call
// floors and the destinations of boarded passengers.

func (c *Car) destinationsAbove() bool {
	for _, p := range c.boarded {
		if p.Destination > c.Floor {
			return true
		}
	}
	return false
}

func (c *Car) destinationsBelow() bool {
	for _, p := range c.boarded {
		if p.Destination < c.Floor {
			return true
		}
	}
	return false
}

func (c *Car) destinationsHere() bool {
	for _, p := range c.boarded {
		if p.Destination == c.Floor {
			return true
		}
	}
	return false
}

func (c *Car) stopsAbove(reg *callreg.Registry) bool {
	return c.destinationsAbove() || reg.AnyAbove(c.Floor)
}

func (c *Car) stopsBelow(reg *callreg.Registry) bool {
	return c.destinationsBelow() || reg.AnyBelow(c.Floor)
}

// PendingStops returns the derived stop set in ascending floor order.
func (c *Car) PendingStops(reg *callreg.Registry) []int {
	pending := make([]bool, c.maxFloor+1)
	for _, f := range reg.ActiveCalls() {
		pending[f] = true
	}
	for _, p := range c.boarded {
		pending[p.Destination] = true
	}
	floors := []int{}
	for f, on := range pending {
		if on {
			floors = append(floors, f)
		}
	}
	return floors
}

// serviceable reports whether stopping at the current floor achieves
// anything this tick: an exit, a boarding, or clearing a stale call. A full
// car passing a called floor is not serviceable — the call stays active and
// the car returns once capacity has been freed.
func (c *Car) serviceable(reg *callreg.Registry, lb *lobby.Lobby) bool {
	if c.destinationsHere() {
		return true
	}
	if !reg.Has(c.Floor) {
		return false
	}
	if lb.WaitingCount(c.Floor) == 0 {
		return true
	}
	return len(c.boarded) < c.capacity
}

// chooseDirection keeps the current direction while pending stops lie ahead
// and reverses only when none remain, the LOOK variant of SCAN.
func (c *Car) chooseDirection(reg *callreg.Registry) (simconsts.Dirn, simconsts.Behaviour) {
	switch c.Dirn {
	case simconsts.Up:
		switch {
		case c.stopsAbove(reg):
			return simconsts.Up, simconsts.Moving
		case c.stopsBelow(reg):
			return simconsts.Down, simconsts.Moving
		}
	case simconsts.Down:
		switch {
		case c.stopsBelow(reg):
			return simconsts.Down, simconsts.Moving
		case c.stopsAbove(reg):
			return simconsts.Up, simconsts.Moving
		}
	case simconsts.Stop:
		switch {
		case c.stopsAbove(reg):
			return simconsts.Up, simconsts.Moving
		case c.stopsBelow(reg):
			return simconsts.Down, simconsts.Moving
		}
	}
	return simconsts.Stop, simconsts.Idle
}
