package snapshot

import (
	"context"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/legends-of-revenue/internal/redis"
)

const (
	snapshotKeyPrefix    = "snapshot:"
	leaderboardKeyPrefix = "leaderboard:"
)

func snapshotKey(id string) string {
	return snapshotKeyPrefix + id
}

func leaderboardKey(m Metric) string {
	return leaderboardKeyPrefix + string(m)
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis snapshot repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed snapshot repository. The snapshot and
// its leaderboard scores are written in one transaction.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	c := input.Character
	savedAt := r.clock.Now()
	data, err := encode(c, savedAt)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, snapshotKey(c.ID), data, 0)
	for _, m := range Metrics {
		pipe.ZAdd(ctx, leaderboardKey(m), redis.Z{
			Score:  float64(MetricValue(c, m)),
			Member: c.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot for %s", c.ID)
	}

	slog.DebugContext(ctx, "snapshot saved",
		"character_id", c.ID,
		"bytes", len(data))

	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *redisRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, snapshotKey(input.CharacterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to load snapshot for %s", input.CharacterID)
	}

	env, err := decode([]byte(result))
	if err != nil {
		return nil, err
	}

	return &LoadOutput{Character: env.Character, SavedAt: env.SavedAt}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, snapshotKey(input.CharacterID))
	for _, m := range Metrics {
		pipe.ZRem(ctx, leaderboardKey(m), input.CharacterID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear %s", input.CharacterID)
	}

	return &ClearOutput{}, nil
}

func (r *redisRepository) ListLeaderboard(
	ctx context.Context,
	input *ListLeaderboardInput,
) (*ListLeaderboardOutput, error) {
	metric, limit, err := normalizeLeaderboard(input)
	if err != nil {
		return nil, err
	}

	indexKey := leaderboardKey(metric)
	ids, err := r.leaderboardMembers(ctx, indexKey, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read leaderboard %s", metric)
	}
	if len(ids) == 0 {
		return &ListLeaderboardOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = snapshotKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read leaderboard snapshots")
	}

	entries := make([]*LeaderboardEntry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "leaderboard member has no snapshot, cleaning up",
				"character_id", ids[i],
				"index_key", indexKey)
			r.client.ZRem(ctx, indexKey, ids[i])
			continue
		}

		env, err := decode([]byte(raw))
		if err != nil {
			slog.ErrorContext(ctx, "skipping unreadable snapshot",
				"character_id", ids[i],
				"error", err.Error())
			continue
		}
		entries = append(entries, entryFor(env.Character))
	}

	return &ListLeaderboardOutput{Entries: rank(entries, metric, limit)}, nil
}

// leaderboardMembers returns the top limit members plus every member tied
// with the last one. Redis orders equal scores by member descending, so the
// whole tied band is read and rank settles the order.
func (r *redisRepository) leaderboardMembers(ctx context.Context, indexKey string, limit int) ([]string, error) {
	top, err := r.client.ZRevRangeWithScores(ctx, indexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(top) < limit {
		return zMembers(top), nil
	}

	boundary := top[len(top)-1].Score
	score := strconv.FormatFloat(boundary, 'f', -1, 64)
	tied, err := r.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{Min: score, Max: score}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(top)+len(tied))
	for _, z := range top {
		if z.Score > boundary {
			ids = append(ids, z.Member.(string))
		}
	}
	return append(ids, tied...), nil
}

func zMembers(zs []redis.Z) []string {
	ids := make([]string, len(zs))
	for i, z := range zs {
		ids[i] = z.Member.(string)
	}
	return ids
}

var _ Repository = (*redisRepository)(nil)
