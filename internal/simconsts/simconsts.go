package simconsts

type Dirn int

const (
	Down Dirn = -1
	Stop Dirn = 0
	Up   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Stop:
		return "Stop"
	default:
		return "Undefined"
	}
}

type DoorState int

const (
	Closed DoorState = iota
	Open
)

func (ds DoorState) String() string {
	switch ds {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	default:
		return "Undefined"
	}
}

type Behaviour int

const (
	Idle Behaviour = iota // 0
	DoorOpen
	Moving
)

func (b Behaviour) String() string {
	switch b {
	case Idle:
		return "Idle"
	case DoorOpen:
		return "DoorOpen"
	case Moving:
		return "Moving"
	default:
		return "Undefined"
	}
}

type PassengerPhase int

const (
	Waiting PassengerPhase = iota
	Boarded
	Arrived
)

func (pp PassengerPhase) String() string {
	switch pp {
	case Waiting:
		return "Waiting"
	case Boarded:
		return "Boarded"
	case Arrived:
		return "Arrived"
	default:
		return "Undefined"
	}
}
