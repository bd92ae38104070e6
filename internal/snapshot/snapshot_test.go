package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/sondresk/liftsim/internal/simconsts"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Tick:        7,
		MaxFloor:    5,
		Floor:       2,
		Dirn:        simconsts.Up,
		Door:        simconsts.Open,
		Behaviour:   simconsts.DoorOpen,
		Capacity:    3,
		Boarded:     []PassengerInfo{{ID: "p1", Origin: 2, Destination: 4}},
		ActiveCalls: []int{0, 5},
		Waiting:     []int{1, 0, 0, 0, 0, 2},
		Arrived:     4,
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := testSnapshot()
	clone := original.Clone()

	clone.Boarded[0].Destination = 0
	clone.ActiveCalls[0] = 3
	clone.Waiting[5] = 9

	if original.Boarded[0].Destination != 4 {
		t.Errorf("Clone shares the Boarded slice with the original")
	}
	if original.ActiveCalls[0] != 0 {
		t.Errorf("Clone shares the ActiveCalls slice with the original")
	}
	if original.Waiting[5] != 2 {
		t.Errorf("Clone shares the Waiting slice with the original")
	}
}

func TestStringRoundTrip(t *testing.T) {
	original := testSnapshot()

	var decoded Snapshot
	if err := json.Unmarshal([]byte(original.String()), &decoded); err != nil {
		t.Fatalf("String() produced invalid JSON: %v", err)
	}
	if decoded.Tick != original.Tick || decoded.Floor != original.Floor {
		t.Errorf("Decoded snapshot = tick %d floor %d, expected tick %d floor %d",
			decoded.Tick, decoded.Floor, original.Tick, original.Floor)
	}
	if len(decoded.Boarded) != 1 || decoded.Boarded[0].ID != "p1" {
		t.Errorf("Decoded boarded list = %v, expected the single passenger p1", decoded.Boarded)
	}
}
