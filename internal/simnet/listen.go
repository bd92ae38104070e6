package simnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/sondresk/liftsim/internal/snapshot"
)

type SnapshotListen struct {
	Snapshots chan snapshot.Snapshot //snapshots received from a running simulation

	listening   bool         //internal variable
	startStopCh chan int     //internal variable
	conn        *net.UDPConn //internal variable
	address     string       //internal variable
}

func NewSnapshotListen(address string) *SnapshotListen {
	return &SnapshotListen{
		Snapshots:   make(chan snapshot.Snapshot),
		listening:   false,
		startStopCh: make(chan int),
		conn:        nil,
		address:     address,
	}
}

func (sl *SnapshotListen) Start() error {
	udpAddress, err := net.ResolveUDPAddr("udp", sl.address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	sl.conn, err = net.ListenUDP("udp", udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}
	listenBuffer := make([]byte, BUFFER_LENGTH)
	sl.listening = true

	go func() {
		for {
			n, _, err := sl.conn.ReadFromUDP(listenBuffer)
			if err != nil {
				Log.Error().Msgf("Error reading UDP message: %v", err)
				continue
			}
			var snap snapshot.Snapshot
			err = json.Unmarshal(listenBuffer[:n], &snap)
			if err != nil {
				Log.Error().Msgf("Error deserialising JSON: %v", err)
			} else {
				sl.Snapshots <- snap
			}
		}
	}()

	go func() {
		defer sl.conn.Close()
		for val := range sl.startStopCh {
			if val == 0 {
				Log.Info().Msgf("Stopping snapshot listening task...")
				return
			}
		}
	}()

	return nil
}

func (sl *SnapshotListen) Stop() error {
	if !sl.listening {
		return errors.New("cannot stop listening if SnapshotListen is not listening")
	}

	sl.startStopCh <- 0
	sl.listening = false

	return nil
}
