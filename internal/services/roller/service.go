package roller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/primedice/internal/common/clock"
	"github.com/KirkDiggler/primedice/internal/common/uuid"
	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/metrics"
	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/primality"
	rollRepo "github.com/KirkDiggler/primedice/internal/repositories/roll"
)

// service implements the Service interface
type service struct {
	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	rollRepo      rollRepo.Repository
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

// New creates a new roller service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		rollRepo:      cfg.RollRepo,
		metrics:       cfg.Metrics,
		logger:        logger,
	}, nil
}

// RollAndCheck rolls a die, checks whether the face is prime and records the roll
func (s *service) RollAndCheck(ctx context.Context, input *RollAndCheckInput) (*RollAndCheckOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	value := s.diceRoller.Roll()
	isPrime := primality.IsPrime(int64(value))

	s.metrics.RecordRoll(value)
	s.metrics.RecordPrimeCheck(isPrime)

	roll := &models.Roll{
		ID:         s.uuidGenerator.NewUUID(),
		Value:      value,
		IsPrime:    isPrime,
		ChannelID:  input.ChannelID,
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Timestamp:  s.clock.Now(),
	}

	s.logger.InfoContext(ctx, "dice rolled",
		"roll_id", roll.ID,
		"channel_id", roll.ChannelID,
		"player_id", roll.PlayerID,
		"value", roll.Value,
		"is_prime", roll.IsPrime,
	)

	if s.rollRepo == nil {
		return &RollAndCheckOutput{Roll: roll}, nil
	}

	err := s.rollRepo.SaveRoll(ctx, &rollRepo.SaveRollInput{
		Roll: roll,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	return &RollAndCheckOutput{
		Roll:     roll,
		Recorded: true,
	}, nil
}

// CheckPrime checks whether a number given as text is prime
func (s *service) CheckPrime(ctx context.Context, input *CheckPrimeInput) (*CheckPrimeOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	n, err := primality.Parse(input.Text)
	if err != nil {
		return nil, err
	}

	isPrime := primality.IsPrime(n)
	s.metrics.RecordPrimeCheck(isPrime)

	return &CheckPrimeOutput{
		N:       n,
		IsPrime: isPrime,
	}, nil
}

// GetHistory returns the most recent rolls in a channel
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.rollRepo == nil {
		return nil, ErrNoHistory
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	output, err := s.rollRepo.ListRolls(ctx, &rollRepo.ListRollsInput{
		ChannelID: input.ChannelID,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list rolls: %w", err)
	}

	return &GetHistoryOutput{
		Rolls: output.Rolls,
	}, nil
}

// GetStats returns face counts for a channel
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.rollRepo == nil {
		return nil, ErrNoHistory
	}

	stats, err := s.rollRepo.GetStats(ctx, &rollRepo.GetStatsInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &GetStatsOutput{
		Stats: stats,
	}, nil
}

// ResetHistory clears a channel's rolls and stats
func (s *service) ResetHistory(ctx context.Context, input *ResetHistoryInput) (*ResetHistoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.rollRepo == nil {
		return nil, ErrNoHistory
	}

	err := s.rollRepo.ClearChannel(ctx, &rollRepo.ClearChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset history: %w", err)
	}

	s.logger.InfoContext(ctx, "history reset", "channel_id", input.ChannelID)

	return &ResetHistoryOutput{
		Success: true,
	}, nil
}
