package simnet

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sondresk/liftsim/internal/snapshot"
)

// SnapshotSource hands out the snapshot to publish next, nil when nothing
// has been published yet. Dispatcher.Latest satisfies it.
type SnapshotSource func() *snapshot.Snapshot

type SnapshotBroadcast struct {
	broadcasting bool          //internal variable
	startStopCh  chan int      //internal variable
	conn         *net.UDPConn  //internal variable
	period       time.Duration //internal variable
	address      string        //internal variable
}

func NewSnapshotBroadcast(address string) *SnapshotBroadcast {
	return &SnapshotBroadcast{
		broadcasting: false,
		startStopCh:  make(chan int),
		address:      address,
	}
}

func (sb *SnapshotBroadcast) Start(period time.Duration, source SnapshotSource) error {
	if sb.broadcasting {
		return errors.New("snapshotBroadcast is already broadcasting")
	}
	if source == nil {
		return errors.New("snapshot source is nil")
	}
	sb.period = period

	udpAddress, err := net.ResolveUDPAddr("udp", sb.address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	sb.conn, err = net.DialUDP("udp", nil, udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}
	sb.conn.SetWriteBuffer(BUFFER_LENGTH)

	go func() {
		timeTicker := time.NewTicker(sb.period)
		defer timeTicker.Stop()
		defer sb.conn.Close()
		sb.broadcasting = true

		for {
			select {
			case <-timeTicker.C:
				snap := source()
				if snap == nil {
					continue
				}
				jsonData := snap.String()
				if jsonData == "" {
					continue
				}
				if _, err := sb.conn.Write([]byte(jsonData)); err != nil {
					Log.Error().Msgf("Error writing to UDP Socket: %v", err)
					continue
				}
				Log.Debug().Msgf("Sent snapshot for tick %d", snap.Tick)

			case val := <-sb.startStopCh:
				if val == 0 {
					Log.Info().Msgf("Stopping snapshot broadcast task...")
					return
				}
			}
		}
	}()

	Log.Info().Msgf("Started to broadcast snapshots to %s", sb.address)

	return nil
}

func (sb *SnapshotBroadcast) Stop() error {
	if !sb.broadcasting {
		return errors.New("cannot stop broadcasting if SnapshotBroadcast is not broadcasting")
	}

	sb.startStopCh <- 0
	sb.broadcasting = false

	return nil
}
