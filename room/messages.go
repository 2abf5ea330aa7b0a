package room

import (
	"github.com/Satisfaction108/Burrs-io-sub000/game"
	"github.com/Satisfaction108/Burrs-io-sub000/protocol"
)

type Conn interface {
	Send([]byte) error
	Close() error
}

// Connect registers a transport connection. It receives broadcasts from now
// on but has no spike until it joins.
type Connect struct {
	ID    string
	Conn  Conn
	Codec protocol.Codec
}

// Join spawns the connection's spike.
type Join struct {
	PlayerID string
	Username string
}

// Input: latest input for a player
type Input struct {
	PlayerID string
	Input    game.Input
}

type SpeedBoost struct {
	PlayerID string
}

// Respawn replaces the connection's spike with a fresh one. A blank username
// keeps the previous name.
type Respawn struct {
	PlayerID string
	Username string
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}
