package simutils

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xyproto/randomstring"

	"github.com/sondresk/liftsim/internal/simcfg"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

const IDENTIFIER_DEFAULT_LEN = 10

func GetGitHash() string {
	return gitHash
}

// Options holds everything the command line controls: where configuration
// comes from, config overrides, and how the run is driven.
type Options struct {
	Identifier string
	ConfigPath string
	EnvPath    string

	MaxFloor      int
	Capacity      int
	ArrivalRate   float64
	Seed          int64
	HomeFloor     int
	DoorOpenTicks int

	Ticks      uint64
	TickPeriod time.Duration
	Manual     bool
	Broadcast  string
	Listen     string
}

// ProcessCmdArgs parses the command line, handling -help and -version
// itself. Numeric overrides default to -1, meaning "leave the config
// value alone".
func ProcessCmdArgs() Options {
	help := flag.Bool("help", false, "Show Help Window")
	version := flag.Bool("version", false, "Show Version")
	identifier := flag.String("id", "", "Set the identifier of the run. Defaults to random string")
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", ".env", "Path to a .env file with LIFTSIM_* overrides")

	maxFloor := flag.Int("maxfloor", -1, "Override the top floor index")
	capacity := flag.Int("capacity", -1, "Override the car capacity")
	arrivalRate := flag.Float64("rate", -1, "Override the passenger arrival rate per tick")
	seed := flag.Int64("seed", 0, "Override the random seed. 0 seeds from the clock")
	homeFloor := flag.Int("home", -1, "Override the home floor")
	doorOpenTicks := flag.Int("dwell", -1, "Override the door-open dwell in ticks")

	ticks := flag.Uint64("ticks", 0, "Stop after this many ticks. 0 runs until interrupted")
	tickPeriod := flag.Duration("tick", 500*time.Millisecond, "Wall clock duration of one tick")
	manual := flag.Bool("manual", false, "Advance one tick per keypress instead of on a timer")
	broadcast := flag.String("broadcast", "", "UDP address to broadcast snapshots to, empty disables")
	listen := flag.String("listen", "", "UDP address to listen on for snapshots (liftwatch)")

	flag.Parse()

	if *version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./liftsim [OPTIONS]")
		fmt.Println("Single-car elevator simulation")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *identifier == "" {
		*identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
	}

	return Options{
		Identifier:    *identifier,
		ConfigPath:    *configPath,
		EnvPath:       *envPath,
		MaxFloor:      *maxFloor,
		Capacity:      *capacity,
		ArrivalRate:   *arrivalRate,
		Seed:          *seed,
		HomeFloor:     *homeFloor,
		DoorOpenTicks: *doorOpenTicks,
		Ticks:         *ticks,
		TickPeriod:    *tickPeriod,
		Manual:        *manual,
		Broadcast:     *broadcast,
		Listen:        *listen,
	}
}

// ApplyTo lays the flag overrides on top of a loaded config.
func (o Options) ApplyTo(c *simcfg.Config) {
	if o.MaxFloor >= 0 {
		c.MaxFloor = o.MaxFloor
	}
	if o.Capacity >= 0 {
		c.Capacity = o.Capacity
	}
	if o.ArrivalRate >= 0 {
		c.ArrivalRate = o.ArrivalRate
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.HomeFloor >= 0 {
		c.HomeFloor = o.HomeFloor
	}
	if o.DoorOpenTicks >= 0 {
		c.DoorOpenTicks = o.DoorOpenTicks
	}
}
