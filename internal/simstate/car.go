package simstate

import (
	"fmt"

	"github.com/sondresk/liftsim/internal/callreg"
	"github.com/sondresk/liftsim/internal/lobby"
	"github.com/sondresk/liftsim/internal/logger"
	"github.com/sondresk/liftsim/internal/passenger"
	"github.com/sondresk/liftsim/internal/simconsts"
)

var Log = logger.GetLogger()

// Car is the single elevator car: current floor, travel direction, door
// state and the set of boarded passengers. It moves one floor per Step and
// serves stops with a SCAN discipline — it keeps its direction as long as a
// pending stop lies ahead, then reverses.
type Car struct {
	Floor     int
	Dirn      simconsts.Dirn
	Door      simconsts.DoorState
	Behaviour simconsts.Behaviour

	maxFloor   int
	capacity   int
	dwellTicks int
	dwellLeft  int
	boarded    []*passenger.Passenger
}

// StepOutcome reports what a single Step did, for event emission and tests.
type StepOutcome struct {
	PrevFloor int
	PrevDirn  simconsts.Dirn
	Served    bool
	Moved     bool
	Boarded   []*passenger.Passenger
	Alighted  []*passenger.Passenger
}

func NewCar(maxFloor int, capacity int, homeFloor int, dwellTicks int) *Car {
	if maxFloor < 1 || capacity < 1 || dwellTicks < 1 {
		panic(fmt.Sprintf("bad car parameters: maxFloor %d, capacity %d, dwellTicks %d",
			maxFloor, capacity, dwellTicks))
	}
	if homeFloor < 0 || homeFloor > maxFloor {
		panic(fmt.Sprintf("home floor %d outside [0, %d]", homeFloor, maxFloor))
	}
	return &Car{
		Floor:      homeFloor,
		Dirn:       simconsts.Stop,
		Door:       simconsts.Closed,
		Behaviour:  simconsts.Idle,
		maxFloor:   maxFloor,
		capacity:   capacity,
		dwellTicks: dwellTicks,
	}
}

func (c *Car) Capacity() int {
	return c.capacity
}

func (c *Car) BoardedCount() int {
	return len(c.boarded)
}

// BoardedPassengers returns the boarded set in boarding order. The slice is
// a copy; the passengers themselves are shared references.
func (c *Car) BoardedPassengers() []*passenger.Passenger {
	out := make([]*passenger.Passenger, len(c.boarded))
	copy(out, c.boarded)
	return out
}

// Board moves a waiting passenger into the car. The caller is responsible
// for checking free capacity; every other precondition failure means the
// model is corrupted and panics.
func (c *Car) Board(p *passenger.Passenger) {
	if c.Door != simconsts.Open {
		panic(fmt.Sprintf("boarding %s with doors %s", p.ID, c.Door.String()))
	}
	if p.Origin != c.Floor {
		panic(fmt.Sprintf("boarding %s at floor %d, origin is %d", p.ID, c.Floor, p.Origin))
	}
	if len(c.boarded) >= c.capacity {
		panic(fmt.Sprintf("boarding %s beyond capacity %d", p.ID, c.capacity))
	}
	p.MarkBoarded()
	c.boarded = append(c.boarded, p)
}

// Exit moves a boarded passenger out of the car at its destination floor.
func (c *Car) Exit(p *passenger.Passenger) {
	if c.Door != simconsts.Open {
		panic(fmt.Sprintf("exit of %s with doors %s", p.ID, c.Door.String()))
	}
	if p.Destination != c.Floor {
		panic(fmt.Sprintf("exit of %s at floor %d, destination is %d", p.ID, c.Floor, p.Destination))
	}
	for i, boarded := range c.boarded {
		if boarded == p {
			c.boarded = append(c.boarded[:i], c.boarded[i+1:]...)
			p.MarkArrived()
			return
		}
	}
	panic(fmt.Sprintf("exit of %s which is not in the car", p.ID))
}

// Step advances the car by one simulation tick: hold or close the doors,
// serve the current floor when a stop is serviceable there, otherwise move
// one floor towards the nearest pending stop, or park.
func (c *Car) Step(reg *callreg.Registry, lb *lobby.Lobby) StepOutcome {
	out := StepOutcome{PrevFloor: c.Floor, PrevDirn: c.Dirn}

	if c.Behaviour == simconsts.DoorOpen {
		c.dwellLeft--
		if c.dwellLeft > 0 {
			return out
		}
		c.Door = simconsts.Closed
		c.Behaviour = simconsts.Idle
	}

	if c.serviceable(reg, lb) {
		c.serve(reg, lb, &out)
		return out
	}

	c.Dirn, c.Behaviour = c.chooseDirection(reg)
	switch c.Behaviour {
	case simconsts.Moving:
		c.move(&out)
	case simconsts.Idle:
		c.Dirn = simconsts.Stop
	}
	return out
}

// serve runs the full stop protocol at the current floor: doors open, all
// exits for passengers destined here, then boarding in arrival order up to
// capacity. The call is cleared only when nobody is left waiting at the
// floor, so skipped passengers trigger a revisit.
func (c *Car) serve(reg *callreg.Registry, lb *lobby.Lobby, out *StepOutcome) {
	c.Door = simconsts.Open
	c.Behaviour = simconsts.DoorOpen
	c.dwellLeft = c.dwellTicks
	out.Served = true

	for _, p := range c.BoardedPassengers() {
		if p.Destination == c.Floor {
			c.Exit(p)
			out.Alighted = append(out.Alighted, p)
			Log.Debug().Msgf("Passenger %s left the car at floor %d", p.ID, c.Floor)
		}
	}

	for len(c.boarded) < c.capacity && lb.WaitingCount(c.Floor) > 0 {
		p := lb.Dequeue(c.Floor)
		c.Board(p)
		out.Boarded = append(out.Boarded, p)
		Log.Debug().Msgf("Passenger %s entered the car at floor %d, destination %d", p.ID, c.Floor, p.Destination)
	}

	if lb.WaitingCount(c.Floor) == 0 {
		reg.ClearCall(c.Floor)
	} else {
		Log.Debug().Msgf("Car full at floor %d, %d passengers skipped, call kept active",
			c.Floor, lb.WaitingCount(c.Floor))
	}
}

func (c *Car) move(out *StepOutcome) {
	next := c.Floor + int(c.Dirn)
	if next < 0 || next > c.maxFloor {
		panic(fmt.Sprintf("car moved to floor %d outside [0, %d]", next, c.maxFloor))
	}
	c.Floor = next
	out.Moved = true
	Log.Debug().Msgf("Car moving %s, now at floor %d", c.Dirn.String(), c.Floor)
}
