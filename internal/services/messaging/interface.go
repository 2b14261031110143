package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/primedice/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns a message describing a roll and whether it came up prime
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetPrimeCheckMessage returns a message for a standalone primality check
	GetPrimeCheckMessage(ctx context.Context, input *GetPrimeCheckMessageInput) (*GetPrimeCheckMessageOutput, error)

	// GetStatsMessage returns a summary of a channel's rolls
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
