package playable

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogMessage is the format a game uses for its public log
// If Players is empty, it's a general statement about the game
type LogMessage struct {
	UUID    string    `json:"uuid"`
	Players []string  `json:"players"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

func (l *LogMessage) String() string {
	return l.Message
}

// Response is what is written to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data,omitempty"`
	Context string      `json:"context,omitempty"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// ErrorResponse wraps an error for the client
func ErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

// MessageResponse wraps a game message for the client
func MessageResponse(msg string) *Response {
	return &Response{
		Key:   "message",
		Value: msg,
	}
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	// Action is one of "join" or "input"
	Action string `json:"action"`
	// Subject is the player name for a join, otherwise the raw input token
	Subject string `json:"subject"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(player string, format string, a ...interface{}) *LogMessage {
	var players []string
	if player != "" {
		players = []string{player}
	}

	return &LogMessage{
		UUID:    uuid.New().String(),
		Players: players,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
