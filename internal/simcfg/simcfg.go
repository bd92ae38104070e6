package simcfg

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"

	"github.com/sondresk/liftsim/internal/logger"
)

var Log = logger.GetLogger()

// Config carries every tunable of the simulation. Precedence, lowest to
// highest: defaults, YAML file, environment (.env file merged with the
// process environment), command line flags applied by the caller.
type Config struct {
	MaxFloor      int     `yaml:"MaxFloor"`
	Capacity      int     `yaml:"Capacity"`
	ArrivalRate   float64 `yaml:"ArrivalRate"`
	Seed          int64   `yaml:"Seed"`
	HomeFloor     int     `yaml:"HomeFloor"`
	DoorOpenTicks int     `yaml:"DoorOpenTicks"`
	LogLevel      string  `yaml:"LogLevel"`
}

func Default() Config {
	return Config{
		MaxFloor:      9,
		Capacity:      5,
		ArrivalRate:   0.4,
		Seed:          0, // 0 means seed from the clock
		HomeFloor:     0,
		DoorOpenTicks: 1,
		LogLevel:      "info",
	}
}

// Load reads the YAML file at path over the defaults. An empty path just
// returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("error opening config file %s: %w", path, err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return c, nil
}

// ApplyEnv overrides fields from LIFTSIM_* keys, taken from the given .env
// file merged with the process environment. A missing .env file is fine.
func (c *Config) ApplyEnv(envPath string) {
	env := map[string]string{}
	if envPath != "" {
		fileEnv, err := godotenv.Read(envPath)
		if err == nil {
			env = fileEnv
		} else if !os.IsNotExist(err) {
			Log.Warn().Msgf("Could not read env file %s: %v", envPath, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := env[key]
		return value, ok
	}

	if value, ok := lookup("LIFTSIM_MAX_FLOOR"); ok {
		c.MaxFloor = parseInt(value, c.MaxFloor, "LIFTSIM_MAX_FLOOR")
	}
	if value, ok := lookup("LIFTSIM_CAPACITY"); ok {
		c.Capacity = parseInt(value, c.Capacity, "LIFTSIM_CAPACITY")
	}
	if value, ok := lookup("LIFTSIM_ARRIVAL_RATE"); ok {
		c.ArrivalRate = parseFloat(value, c.ArrivalRate, "LIFTSIM_ARRIVAL_RATE")
	}
	if value, ok := lookup("LIFTSIM_SEED"); ok {
		c.Seed = int64(parseInt(value, int(c.Seed), "LIFTSIM_SEED"))
	}
	if value, ok := lookup("LIFTSIM_HOME_FLOOR"); ok {
		c.HomeFloor = parseInt(value, c.HomeFloor, "LIFTSIM_HOME_FLOOR")
	}
	if value, ok := lookup("LIFTSIM_DOOR_OPEN_TICKS"); ok {
		c.DoorOpenTicks = parseInt(value, c.DoorOpenTicks, "LIFTSIM_DOOR_OPEN_TICKS")
	}
	if value, ok := lookup("LIFTSIM_LOG_LEVEL"); ok {
		c.LogLevel = value
	}
}

func (c *Config) Validate() error {
	if c.MaxFloor < 1 {
		return fmt.Errorf("MaxFloor must be at least 1, got %d", c.MaxFloor)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("Capacity must be at least 1, got %d", c.Capacity)
	}
	if c.ArrivalRate < 0 {
		return fmt.Errorf("ArrivalRate must not be negative, got %v", c.ArrivalRate)
	}
	if c.HomeFloor < 0 || c.HomeFloor > c.MaxFloor {
		return fmt.Errorf("HomeFloor %d outside [0, %d]", c.HomeFloor, c.MaxFloor)
	}
	if c.DoorOpenTicks < 1 {
		return fmt.Errorf("DoorOpenTicks must be at least 1, got %d", c.DoorOpenTicks)
	}
	return nil
}

func parseInt(value string, fallback int, key string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		Log.Warn().Msgf("Ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}

func parseFloat(value string, fallback float64, key string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		Log.Warn().Msgf("Ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}
