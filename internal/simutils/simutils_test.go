package simutils

import (
	"testing"

	"github.com/sondresk/liftsim/internal/simcfg"
)

func TestGetGitHash(t *testing.T) {
	if GetGitHash() == "" {
		t.Errorf("GetGitHash() = \"\", expected the embedded hash")
	}
}

func TestApplyTo(t *testing.T) {
	c := simcfg.Default()
	opts := Options{
		MaxFloor:      -1,
		Capacity:      2,
		ArrivalRate:   -1,
		Seed:          99,
		HomeFloor:     -1,
		DoorOpenTicks: 4,
	}

	opts.ApplyTo(&c)

	if c.MaxFloor != simcfg.Default().MaxFloor {
		t.Errorf("MaxFloor = %d, expected the untouched default", c.MaxFloor)
	}
	if c.Capacity != 2 {
		t.Errorf("Capacity = %d, expected the override 2", c.Capacity)
	}
	if c.ArrivalRate != simcfg.Default().ArrivalRate {
		t.Errorf("ArrivalRate = %v, expected the untouched default", c.ArrivalRate)
	}
	if c.Seed != 99 {
		t.Errorf("Seed = %d, expected the override 99", c.Seed)
	}
	if c.DoorOpenTicks != 4 {
		t.Errorf("DoorOpenTicks = %d, expected the override 4", c.DoorOpenTicks)
	}
}
