// Package simnet publishes the per-tick snapshot over UDP as JSON so an
// external rendering collaborator in another process can draw the building.
// It only ever reads published snapshots, never the live simulation state.
package simnet

import (
	"github.com/sondresk/liftsim/internal/logger"
)

var Log = logger.GetLogger()

const BUFFER_LENGTH = 8192 //for receiving and transmitting

type SnapshotFeed struct {
	Broadcast *SnapshotBroadcast
	Listen    *SnapshotListen
}

func NewSnapshotFeed(address string) *SnapshotFeed {
	return &SnapshotFeed{
		Broadcast: NewSnapshotBroadcast(address),
		Listen:    NewSnapshotListen(address),
	}
}
