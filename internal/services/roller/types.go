package roller

import (
	"log/slog"

	"github.com/KirkDiggler/primedice/internal/common/clock"
	"github.com/KirkDiggler/primedice/internal/common/uuid"
	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/models"
	rollRepo "github.com/KirkDiggler/primedice/internal/repositories/roll"
)

// DefaultHistoryLimit is used when GetHistoryInput.Limit is not positive
const DefaultHistoryLimit = 10

// Config holds configuration for the roller service
type Config struct {
	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// RollRepo is optional, without it rolls are not recorded
	RollRepo rollRepo.Repository

	// Optional
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// RollAndCheckInput contains parameters for a roll
type RollAndCheckInput struct {
	// ChannelID is where the roll was made, a Discord channel or models.ChannelWeb / ChannelCLI
	ChannelID string

	// PlayerID identifies who rolled
	PlayerID string

	// PlayerName is the display name of who rolled
	PlayerName string
}

// RollAndCheckOutput contains the recorded roll
type RollAndCheckOutput struct {
	Roll *models.Roll

	// Recorded is false when no repository is configured
	Recorded bool
}

// CheckPrimeInput contains the number to check as text
type CheckPrimeInput struct {
	Text string
}

// CheckPrimeOutput contains the parsed number and the decision
type CheckPrimeOutput struct {
	N       int64
	IsPrime bool
}

// GetHistoryInput contains parameters for listing rolls
type GetHistoryInput struct {
	ChannelID string
	Limit     int
}

// GetHistoryOutput contains rolls, newest first
type GetHistoryOutput struct {
	Rolls []*models.Roll
}

// GetStatsInput contains parameters for channel stats
type GetStatsInput struct {
	ChannelID string
}

// GetStatsOutput contains channel stats
type GetStatsOutput struct {
	Stats *models.Stats
}

// ResetHistoryInput contains the channel to clear
type ResetHistoryInput struct {
	ChannelID string
}

// ResetHistoryOutput contains the result of clearing a channel
type ResetHistoryOutput struct {
	Success bool
}
