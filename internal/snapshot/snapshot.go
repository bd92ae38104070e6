package snapshot

import (
	"encoding/json"

	"github.com/tiendc/go-deepcopy"

	"github.com/sondresk/liftsim/internal/logger"
	"github.com/sondresk/liftsim/internal/simconsts"
)

var Log = logger.GetLogger()

type PassengerInfo struct {
	ID          string `json:"id"`
	Origin      int    `json:"origin"`
	Destination int    `json:"destination"`
}

// Snapshot is the read-only view of the simulation published after each
// tick. Observers only ever see snapshots, never the live structures.
type Snapshot struct {
	Tick        uint64              `json:"tick"`
	MaxFloor    int                 `json:"max_floor"`
	Floor       int                 `json:"floor"`
	Dirn        simconsts.Dirn      `json:"direction"`
	Door        simconsts.DoorState `json:"door"`
	Behaviour   simconsts.Behaviour `json:"behaviour"`
	Capacity    int                 `json:"capacity"`
	Boarded     []PassengerInfo     `json:"boarded"`
	ActiveCalls []int               `json:"active_calls"`
	Waiting     []int               `json:"waiting"`
	Arrived     int                 `json:"arrived"`
}

func (s *Snapshot) String() string {
	jsonData, err := json.Marshal(s)
	if err != nil {
		Log.Error().Msg("Error Serialising Snapshot Object to JSON")
		return ""
	}
	return string(jsonData)
}

// Clone returns an independent deep copy, so a snapshot handed to one
// observer can never alias the slices handed to another.
func (s *Snapshot) Clone() *Snapshot {
	out := new(Snapshot)
	if err := deepcopy.Copy(out, s); err != nil {
		panic("Failed to deepcopy snapshot")
	}
	return out
}
