package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/primedice/internal/common/clock"
	"github.com/KirkDiggler/primedice/internal/common/uuid"
	"github.com/KirkDiggler/primedice/internal/config"
	"github.com/KirkDiggler/primedice/internal/dice"
	"github.com/KirkDiggler/primedice/internal/logging"
	"github.com/KirkDiggler/primedice/internal/metrics"
	rollRepo "github.com/KirkDiggler/primedice/internal/repositories/roll"
	"github.com/KirkDiggler/primedice/internal/services/messaging"
	"github.com/KirkDiggler/primedice/internal/services/roller"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// app holds the dependencies shared by every subcommand
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	diceRoller  *dice.Rand
	redisClient *redis.Client

	rollerService    roller.Service
	messagingService messaging.Service
}

// newApp loads configuration, applies flag overrides and wires the services. Roll history is
// enabled when Redis answers, otherwise the services run without it.
func newApp(cmd *cobra.Command) (*app, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if cmd.Flags().Changed("seed") {
		cfg.DiceSeed, _ = cmd.Flags().GetInt64("seed")
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.Redis.Addr = ""
	}

	a := &app{
		cfg:        cfg,
		logger:     logging.New(logging.ParseLevel(cfg.LogLevel)),
		metrics:    metrics.New(),
		diceRoller: dice.New(&dice.Config{Seed: cfg.DiceSeed}),
	}

	rollerCfg := &roller.Config{
		DiceRoller:    a.diceRoller,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Metrics:       a.metrics,
		Logger:        a.logger,
	}

	if repo := a.connectHistory(cmd.Context()); repo != nil {
		rollerCfg.RollRepo = repo
	}

	a.rollerService, err = roller.New(rollerCfg)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create roller service: %w", err)
	}

	// Message variants draw from their own source, the seeded die only rolls
	a.messagingService, err = messaging.NewService(&messaging.ServiceConfig{
		DiceRoller: dice.New(&dice.Config{}),
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return a, nil
}

// connectHistory returns nil when history is disabled or Redis is unreachable
func (a *app) connectHistory(ctx context.Context) rollRepo.Repository {
	if a.cfg.Redis.Addr == "" {
		return nil
	}

	a.redisClient = redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := a.redisClient.Ping(ctx).Err()
	var repo rollRepo.Repository
	if err == nil {
		repo, err = rollRepo.NewRedis(&rollRepo.Config{
			RedisClient: a.redisClient,
			MaxHistory:  a.cfg.HistorySize,
		})
	}
	if err != nil {
		a.logger.Warn("roll history disabled", "addr", a.cfg.Redis.Addr, "error", err)
		_ = a.redisClient.Close()
		a.redisClient = nil
		return nil
	}

	a.logger.Debug("roll history enabled", "addr", a.cfg.Redis.Addr)
	return repo
}

// Close releases the Redis connection
func (a *app) Close() {
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis client", "error", err)
		}
	}
}
