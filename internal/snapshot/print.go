package snapshot

import (
	"fmt"

	"github.com/rs/zerolog"
)

// PrintTo logs the building as an ASCII panel, top floor first: car
// position with its load, active calls and the number of waiting
// passengers per floor.
func (s *Snapshot) PrintTo(log *zerolog.Logger) {
	log.Info().Msgf("  +---------------------------+")
	log.Info().Msgf("  | tick=%-6d dirn=%-8s|", s.Tick, s.Dirn.String())
	log.Info().Msgf("  | door=%-7s behav=%-8s|", s.Door.String(), s.Behaviour.String())
	log.Info().Msgf("  +---------------------------+")

	for f := s.MaxFloor; f >= 0; f-- {
		cell := "|   |"
		if f == s.Floor {
			cell = fmt.Sprintf("|%2d/%d|", len(s.Boarded), s.Capacity)
		}
		call := " "
		if containsFloor(s.ActiveCalls, f) {
			call = "#"
		}
		waiting := 0
		if f < len(s.Waiting) {
			waiting = s.Waiting[f]
		}
		marker := ""
		if f == s.Floor {
			marker = " <-- car"
		}
		log.Info().Msgf("  | %2d %s %s %2dp%s", f, cell, call, waiting, marker)
	}
	log.Info().Msgf("  +---------------------------+")
	log.Info().Msgf("  | arrived=%-4d waiting=%-4d |", s.Arrived, sum(s.Waiting))
	log.Info().Msgf("  +---------------------------+")
}

func containsFloor(floors []int, floor int) bool {
	for _, f := range floors {
		if f == floor {
			return true
		}
	}
	return false
}

func sum(counts []int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}
