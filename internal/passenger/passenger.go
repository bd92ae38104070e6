package passenger

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/sondresk/liftsim/internal/simconsts"
)

// Passenger is a single rider: a fixed origin/destination pair plus the
// lifecycle phase Waiting -> Boarded -> Arrived. Arrived is terminal.
type Passenger struct {
	ID          string
	Origin      int
	Destination int
	Phase       simconsts.PassengerPhase
}

func New(origin int, destination int) *Passenger {
	return &Passenger{
		ID:          uuid.NewString(),
		Origin:      origin,
		Destination: destination,
		Phase:       simconsts.Waiting,
	}
}

// MarkBoarded transitions Waiting -> Boarded. Any other transition is a
// corrupted model and panics.
func (p *Passenger) MarkBoarded() {
	if p.Phase != simconsts.Waiting {
		panic(fmt.Sprintf("passenger %s boarded while %s", p.ID, p.Phase.String()))
	}
	p.Phase = simconsts.Boarded
}

// MarkArrived transitions Boarded -> Arrived.
func (p *Passenger) MarkArrived() {
	if p.Phase != simconsts.Boarded {
		panic(fmt.Sprintf("passenger %s arrived while %s", p.ID, p.Phase.String()))
	}
	p.Phase = simconsts.Arrived
}

func (p *Passenger) String() string {
	return fmt.Sprintf("%s (%d->%d, %s)", shortID(p.ID), p.Origin, p.Destination, p.Phase.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
