package room

import (
	"dragonante-server/pkg/playable/dragonante"
)

type seatState struct {
	Name        string `json:"name"`
	Seat        int    `json:"seat"`
	Hoard       int    `json:"hoard"`
	Debt        int    `json:"debt,omitempty"`
	IsConnected bool   `json:"isConnected"`
}

func newSeatState(p *dragonante.Player, connected bool) *seatState {
	return &seatState{
		Name:        p.Name,
		Seat:        p.Seat(),
		Hoard:       p.Hoard(),
		Debt:        p.Debt(),
		IsConnected: connected,
	}
}
