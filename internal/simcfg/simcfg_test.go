package simcfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, expected nil", err)
	}
}

func TestLoadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "liftsim.yaml")
	content := "MaxFloor: 5\nCapacity: 1\nArrivalRate: 0\nSeed: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Could not write test config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) = %v, expected nil error", path, err)
	}
	if c.MaxFloor != 5 || c.Capacity != 1 || c.ArrivalRate != 0 || c.Seed != 42 {
		t.Errorf("Load() = %+v, expected MaxFloor 5, Capacity 1, ArrivalRate 0, Seed 42", c)
	}
	if c.DoorOpenTicks != Default().DoorOpenTicks {
		t.Errorf("DoorOpenTicks = %d, expected the default %d to survive a partial file",
			c.DoorOpenTicks, Default().DoorOpenTicks)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("Load() on a missing file = nil error, expected an error")
	}

	c, err := Load("")
	if err != nil {
		t.Errorf("Load(\"\") = %v, expected nil error and defaults", err)
	}
	if c != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", c)
	}
}

func TestApplyEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "LIFTSIM_MAX_FLOOR=7\nLIFTSIM_ARRIVAL_RATE=1.5\nLIFTSIM_LOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Could not write test env file: %v", err)
	}

	c := Default()
	c.ApplyEnv(path)
	if c.MaxFloor != 7 {
		t.Errorf("MaxFloor = %d after env override, expected 7", c.MaxFloor)
	}
	if c.ArrivalRate != 1.5 {
		t.Errorf("ArrivalRate = %v after env override, expected 1.5", c.ArrivalRate)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q after env override, expected debug", c.LogLevel)
	}
	if c.Capacity != Default().Capacity {
		t.Errorf("Capacity = %d, expected untouched default %d", c.Capacity, Default().Capacity)
	}
}

func TestProcessEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LIFTSIM_CAPACITY=2\n"), 0o644); err != nil {
		t.Fatalf("Could not write test env file: %v", err)
	}
	t.Setenv("LIFTSIM_CAPACITY", "3")

	c := Default()
	c.ApplyEnv(path)
	if c.Capacity != 3 {
		t.Errorf("Capacity = %d, expected the process environment value 3 to win", c.Capacity)
	}
}

func TestValidateRejects(t *testing.T) {
	badConfigArray := []Config{
		{MaxFloor: 0, Capacity: 1, DoorOpenTicks: 1},
		{MaxFloor: 5, Capacity: 0, DoorOpenTicks: 1},
		{MaxFloor: 5, Capacity: 1, ArrivalRate: -0.1, DoorOpenTicks: 1},
		{MaxFloor: 5, Capacity: 1, HomeFloor: 6, DoorOpenTicks: 1},
		{MaxFloor: 5, Capacity: 1, DoorOpenTicks: 0},
	}

	for index, bad := range badConfigArray {
		if err := bad.Validate(); err == nil {
			t.Errorf("Validate() on bad config %d = nil, expected an error", index)
		}
	}
}
