package callreg

import "fmt"

// Registry is the deduplicated set of floors with an outstanding call.
// Several passengers waiting at one floor produce a single active call;
// the call stays active until the floor has been fully served.
type Registry struct {
	active []bool
}

func NewRegistry(maxFloor int) *Registry {
	if maxFloor < 1 {
		panic(fmt.Sprintf("call registry needs at least two floors, got maxFloor %d", maxFloor))
	}
	return &Registry{active: make([]bool, maxFloor+1)}
}

func (r *Registry) MaxFloor() int {
	return len(r.active) - 1
}

func (r *Registry) checkFloor(floor int) {
	if floor < 0 || floor >= len(r.active) {
		panic(fmt.Sprintf("call floor %d outside [0, %d]", floor, r.MaxFloor()))
	}
}

// AddCall is idempotent: adding an already active floor changes nothing.
func (r *Registry) AddCall(floor int) {
	r.checkFloor(floor)
	r.active[floor] = true
}

func (r *Registry) ClearCall(floor int) {
	r.checkFloor(floor)
	r.active[floor] = false
}

func (r *Registry) Has(floor int) bool {
	r.checkFloor(floor)
	return r.active[floor]
}

func (r *Registry) AnyAbove(floor int) bool {
	for f := floor + 1; f < len(r.active); f++ {
		if r.active[f] {
			return true
		}
	}
	return false
}

func (r *Registry) AnyBelow(floor int) bool {
	for f := 0; f < floor && f < len(r.active); f++ {
		if r.active[f] {
			return true
		}
	}
	return false
}

func (r *Registry) Empty() bool {
	for _, on := range r.active {
		if on {
			return false
		}
	}
	return true
}

// ActiveCalls returns the call floors in ascending order. The slice is a
// snapshot; mutating it does not touch the registry.
func (r *Registry) ActiveCalls() []int {
	floors := []int{}
	for f, on := range r.active {
		if on {
			floors = append(floors, f)
		}
	}
	return floors
}
