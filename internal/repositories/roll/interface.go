package roll

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/primedice/internal/repositories/roll Repository

import (
	"context"

	"github.com/KirkDiggler/primedice/internal/models"
)

// Repository defines the interface for roll history persistence
type Repository interface {
	// SaveRoll persists a roll and counts it towards its channel's stats
	SaveRoll(ctx context.Context, input *SaveRollInput) error

	// GetRoll retrieves a roll by ID
	GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error)

	// ListRolls retrieves the most recent rolls in a channel, newest first
	ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error)

	// GetStats retrieves face counts for a channel
	GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error)

	// ClearChannel removes a channel's history and stats
	ClearChannel(ctx context.Context, input *ClearChannelInput) error
}
