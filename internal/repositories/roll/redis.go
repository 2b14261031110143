package roll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/primedice/internal/models"
	"github.com/KirkDiggler/primedice/internal/primality"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	rollKeyPrefix         = "roll:"
	channelRollsKeyPrefix = "channel_rolls:"
	channelFacesKeyPrefix = "channel_faces:"

	// DefaultMaxHistory is how many roll IDs a channel list keeps
	DefaultMaxHistory = 100

	// DefaultRollTTL is how long an individual roll record lives
	DefaultRollTTL = 7 * 24 * time.Hour
)

// ErrRollNotFound is returned when a roll is not found
var ErrRollNotFound = errors.New("roll not found")

// Config holds configuration for the Redis roll repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// MaxHistory caps the per-channel history list, defaults to DefaultMaxHistory
	MaxHistory int

	// RollTTL is the expiry of roll records, defaults to DefaultRollTTL
	RollTTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client     *redis.Client
	maxHistory int
	rollTTL    time.Duration
}

// NewRedis creates a new Redis-backed roll repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	maxHistory := cfg.MaxHistory
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}

	rollTTL := cfg.RollTTL
	if rollTTL <= 0 {
		rollTTL = DefaultRollTTL
	}

	return &redisRepository{
		client:     cfg.RedisClient,
		maxHistory: maxHistory,
		rollTTL:    rollTTL,
	}, nil
}

func rollKey(rollID string) string {
	return fmt.Sprintf("%s%s", rollKeyPrefix, rollID)
}

func channelRollsKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelRollsKeyPrefix, channelID)
}

func channelFacesKey(channelID string) string {
	return fmt.Sprintf("%s%s", channelFacesKeyPrefix, channelID)
}

// SaveRoll persists a roll to Redis
func (r *redisRepository) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	roll := input.Roll
	if roll.ID == "" {
		return errors.New("roll ID cannot be empty")
	}

	if roll.ChannelID == "" {
		return errors.New("channel ID cannot be empty")
	}

	rollJSON, err := json.Marshal(roll)
	if err != nil {
		return fmt.Errorf("failed to marshal roll: %w", err)
	}

	listKey := channelRollsKey(roll.ChannelID)

	// Rolls pushed past the history cap by this one, their records go with them
	evicted, err := r.client.LRange(ctx, listKey, int64(r.maxHistory-1), -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get evicted roll IDs: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, rollKey(roll.ID), rollJSON, r.rollTTL)

	// Newest first, trimmed to the history cap
	pipe.LPush(ctx, listKey, roll.ID)
	pipe.LTrim(ctx, listKey, 0, int64(r.maxHistory-1))
	for _, rollID := range evicted {
		pipe.Del(ctx, rollKey(rollID))
	}

	pipe.HIncrBy(ctx, channelFacesKey(roll.ChannelID), strconv.Itoa(roll.Value), 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save roll: %w", err)
	}

	return nil
}

// GetRoll retrieves a roll by ID from Redis
func (r *redisRepository) GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error) {
	if input == nil || input.RollID == "" {
		return nil, errors.New("input and roll ID cannot be empty")
	}

	rollJSON, err := r.client.Get(ctx, rollKey(input.RollID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRollNotFound
		}
		return nil, fmt.Errorf("failed to get roll: %w", err)
	}

	var roll models.Roll
	if err := json.Unmarshal([]byte(rollJSON), &roll); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roll: %w", err)
	}

	return &roll, nil
}

// ListRolls retrieves the most recent rolls in a channel. A Limit of zero or less returns the
// whole retained history.
func (r *redisRepository) ListRolls(ctx context.Context, input *ListRollsInput) (*ListRollsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	rollIDs, err := r.client.LRange(ctx, channelRollsKey(input.ChannelID), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roll IDs for channel: %w", err)
	}

	if len(rollIDs) == 0 {
		return &ListRollsOutput{
			Rolls: []*models.Roll{},
		}, nil
	}

	// Fetch every roll in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(rollIDs))
	for i, rollID := range rollIDs {
		commands[i] = pipe.Get(ctx, rollKey(rollID))
	}

	// redis.Nil for expired rolls is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get rolls: %w", err)
	}

	rolls := make([]*models.Roll, 0, len(rollIDs))
	for i, cmd := range commands {
		rollJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Roll expired but its ID is still listed
				continue
			}
			return nil, fmt.Errorf("failed to get roll %s: %w", rollIDs[i], err)
		}

		var roll models.Roll
		if err := json.Unmarshal([]byte(rollJSON), &roll); err != nil {
			return nil, fmt.Errorf("failed to unmarshal roll %s: %w", rollIDs[i], err)
		}

		rolls = append(rolls, &roll)
	}

	return &ListRollsOutput{
		Rolls: rolls,
	}, nil
}

// GetStats retrieves face counts for a channel from Redis
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	counts, err := r.client.HGetAll(ctx, channelFacesKey(input.ChannelID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	stats := &models.Stats{
		ChannelID: input.ChannelID,
		Faces:     make(map[int]int64, len(counts)),
	}

	for field, value := range counts {
		face, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid face %q in stats: %w", field, err)
		}

		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count for face %d: %w", face, err)
		}

		stats.Faces[face] = count
		stats.Total += count
		if primality.IsPrime(int64(face)) {
			stats.Primes += count
		}
	}

	return stats, nil
}

// ClearChannel removes a channel's history and stats from Redis
func (r *redisRepository) ClearChannel(ctx context.Context, input *ClearChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	listKey := channelRollsKey(input.ChannelID)
	rollIDs, err := r.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get roll IDs for channel: %w", err)
	}

	keys := make([]string, 0, len(rollIDs)+2)
	for _, rollID := range rollIDs {
		keys = append(keys, rollKey(rollID))
	}
	keys = append(keys, listKey, channelFacesKey(input.ChannelID))

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear channel: %w", err)
	}

	return nil
}
