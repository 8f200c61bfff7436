package mux

import (
	"net/http"

	"dragonante-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss
}

// NewMux returns a new HTTP mux
// The pit boss must already be on shift
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/table").Handler(this.getTable())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
