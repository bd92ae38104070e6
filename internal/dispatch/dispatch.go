package dispatch

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sondresk/liftsim/internal/callreg"
	"github.com/sondresk/liftsim/internal/lobby"
	"github.com/sondresk/liftsim/internal/logger"
	"github.com/sondresk/liftsim/internal/passenger"
	"github.com/sondresk/liftsim/internal/simcfg"
	"github.com/sondresk/liftsim/internal/simconsts"
	"github.com/sondresk/liftsim/internal/simevent"
	"github.com/sondresk/liftsim/internal/simstate"
	"github.com/sondresk/liftsim/internal/snapshot"
)

var Log = logger.GetLogger()

const EVENT_CHANNEL_SIZE = 64

// Observer receives the snapshot published at the end of each tick. Every
// observer gets its own deep copy, never the live structures.
type Observer interface {
	OnTick(snap *snapshot.Snapshot)
}

// Dispatcher drives the simulation: it owns the only random source,
// generates passenger arrivals, advances the car one step per tick and
// publishes the resulting state. All mutation happens inside Step, on the
// caller's goroutine.
type Dispatcher struct {
	cfg   simcfg.Config
	rng   *rand.Rand
	car   *simstate.Car
	reg   *callreg.Registry
	lobby *lobby.Lobby

	tick    uint64
	created int
	arrived int

	observers []Observer
	events    chan simevent.SimEvent

	mu     sync.RWMutex
	latest *snapshot.Snapshot
}

func New(cfg simcfg.Config) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		Log.Debug().Msgf("No seed configured, seeding from the clock: %d", seed)
	}

	return &Dispatcher{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		car:    simstate.NewCar(cfg.MaxFloor, cfg.Capacity, cfg.HomeFloor, cfg.DoorOpenTicks),
		reg:    callreg.NewRegistry(cfg.MaxFloor),
		lobby:  lobby.NewLobby(cfg.MaxFloor),
		events: make(chan simevent.SimEvent, EVENT_CHANNEL_SIZE),
	}, nil
}

func (d *Dispatcher) Subscribe(o Observer) {
	d.observers = append(d.observers, o)
}

// Events exposes the event stream. Events are dropped when nobody drains
// the channel; the snapshot is the authoritative state.
func (d *Dispatcher) Events() <-chan simevent.SimEvent {
	return d.events
}

func (d *Dispatcher) Tick() uint64 {
	return d.tick
}

func (d *Dispatcher) CreatedCount() int {
	return d.created
}

func (d *Dispatcher) ArrivedCount() int {
	return d.arrived
}

// Inject registers one passenger arrival, the registerArrival operation.
// Invalid requests are rejected without touching any state.
func (d *Dispatcher) Inject(origin int, destination int) (*passenger.Passenger, error) {
	p, err := d.lobby.Register(d.reg, origin, destination)
	if err != nil {
		Log.Warn().Msgf("Rejected arrival (%d -> %d): %v", origin, destination, err)
		return nil, err
	}
	d.created++
	d.emit(simevent.SimEvent{Value: simevent.ArrivalEvent{
		ID:          p.ID,
		Origin:      p.Origin,
		Destination: p.Destination,
	}})
	Log.Debug().Msgf("Passenger %s arrived at floor %d, wants floor %d", p.ID, p.Origin, p.Destination)
	return p, nil
}

// Step runs one simulation tick: arrivals, one car step, publication.
func (d *Dispatcher) Step() *snapshot.Snapshot {
	d.tick++
	d.spawnArrivals()

	out := d.car.Step(d.reg, d.lobby)
	d.arrived += len(out.Alighted)
	d.emitOutcome(out)

	snap := d.capture()
	d.mu.Lock()
	d.latest = snap
	d.mu.Unlock()

	for _, o := range d.observers {
		o.OnTick(snap.Clone())
	}
	return snap
}

// Run advances the simulation on a wall clock ticker until the context is
// cancelled or maxTicks is reached (0 means unbounded).
func (d *Dispatcher) Run(ctx context.Context, tickPeriod time.Duration, maxTicks uint64) {
	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			Log.Warn().Msgf("Dispatcher has been signaled to stop")
			return
		case <-ticker.C:
			d.Step()
			if maxTicks > 0 && d.tick >= maxTicks {
				Log.Info().Msgf("Reached the configured tick bound %d", maxTicks)
				return
			}
		}
	}
}

// Latest returns a deep copy of the most recently published snapshot, nil
// before the first tick. Safe to call from other goroutines.
func (d *Dispatcher) Latest() *snapshot.Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.latest == nil {
		return nil
	}
	return d.latest.Clone()
}

func (d *Dispatcher) spawnArrivals() {
	count := int(d.cfg.ArrivalRate)
	if d.rng.Float64() < d.cfg.ArrivalRate-float64(count) {
		count++
	}
	for i := 0; i < count; i++ {
		origin := d.rng.Intn(d.cfg.MaxFloor + 1)
		destination := origin
		for destination == origin {
			destination = d.rng.Intn(d.cfg.MaxFloor + 1)
		}
		d.Inject(origin, destination)
	}
}

func (d *Dispatcher) emitOutcome(out simstate.StepOutcome) {
	for _, p := range out.Alighted {
		d.emit(simevent.SimEvent{Value: simevent.AlightedEvent{ID: p.ID, Floor: d.car.Floor}})
	}
	for _, p := range out.Boarded {
		d.emit(simevent.SimEvent{Value: simevent.BoardedEvent{ID: p.ID, Floor: d.car.Floor}})
	}
	if out.Served {
		d.emit(simevent.SimEvent{Value: simevent.StopServedEvent{
			Floor:         d.car.Floor,
			BoardedCount:  len(out.Boarded),
			AlightedCount: len(out.Alighted),
		}})
	}
	if d.car.Dirn != out.PrevDirn {
		d.emit(simevent.SimEvent{Value: simevent.DirectionChangedEvent{From: out.PrevDirn, To: d.car.Dirn}})
		if d.car.Behaviour == simconsts.Idle {
			d.emit(simevent.SimEvent{Value: simevent.IdleEvent{Floor: d.car.Floor}})
		}
	}
	d.emit(simevent.SimEvent{Value: simevent.TickEvent{Tick: d.tick}})
}

func (d *Dispatcher) emit(event simevent.SimEvent) {
	select {
	case d.events <- event:
	default:
		Log.Debug().Msgf("Event channel full, dropping %s", event.EventType())
	}
}

func (d *Dispatcher) capture() *snapshot.Snapshot {
	boarded := []snapshot.PassengerInfo{}
	for _, p := range d.car.BoardedPassengers() {
		boarded = append(boarded, snapshot.PassengerInfo{
			ID:          p.ID,
			Origin:      p.Origin,
			Destination: p.Destination,
		})
	}

	return &snapshot.Snapshot{
		Tick:        d.tick,
		MaxFloor:    d.cfg.MaxFloor,
		Floor:       d.car.Floor,
		Dirn:        d.car.Dirn,
		Door:        d.car.Door,
		Behaviour:   d.car.Behaviour,
		Capacity:    d.car.Capacity(),
		Boarded:     boarded,
		ActiveCalls: d.reg.ActiveCalls(),
		Waiting:     d.lobby.WaitingCounts(),
		Arrived:     d.arrived,
	}
}
