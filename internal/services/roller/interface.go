package roller

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/primedice/internal/services/roller Service

// Service defines the interface for rolling and checking dice
type Service interface {
	// RollAndCheck rolls a die, checks whether the face is prime and records the roll
	RollAndCheck(ctx context.Context, input *RollAndCheckInput) (*RollAndCheckOutput, error)

	// CheckPrime checks whether a number given as text is prime
	CheckPrime(ctx context.Context, input *CheckPrimeInput) (*CheckPrimeOutput, error)

	// GetHistory returns the most recent rolls in a channel
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// GetStats returns face counts for a channel
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// ResetHistory clears a channel's rolls and stats
	ResetHistory(ctx context.Context, input *ResetHistoryInput) (*ResetHistoryOutput, error)
}
