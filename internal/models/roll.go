package models

import (
	"time"
)

// Channel scopes used by consumers that are not Discord channels
const (
	ChannelWeb = "web"
	ChannelCLI = "cli"
)

// Roll represents a single die roll and its primality check
type Roll struct {
	// ID is the unique identifier for the roll
	ID string

	// Value is the face that came up
	Value int

	// IsPrime records whether Value is prime
	IsPrime bool

	// ChannelID is where the roll was made (a Discord channel, "web" or "cli")
	ChannelID string

	// PlayerID is the ID of the player who made the roll
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Timestamp is when the roll was made
	Timestamp time.Time
}
