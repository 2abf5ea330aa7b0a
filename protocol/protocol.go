package protocol

import (
	"encoding/json"
)

// Client -> server
const (
	MsgJoin       = "join"
	MsgInput      = "input"
	MsgSpeedBoost = "speedBoost"
	MsgRespawn    = "respawn"
)

// Server -> client
const (
	MsgInit                = "init"
	MsgPlayerJoined        = "playerJoined"
	MsgPlayerLeft          = "playerLeft"
	MsgFoodCollected       = "foodCollected"
	MsgPremiumOrbCollected = "premiumOrbCollected"
	MsgPlayerCollision     = "playerCollision"
	MsgPlayerDied          = "playerDied"
	MsgSpeedBoostUsed      = "speedBoostUsed"
	MsgSpeedBoostError     = "speedBoostError"
	MsgPlayerBoosted       = "playerBoosted"
	MsgGameState           = "gameState"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
