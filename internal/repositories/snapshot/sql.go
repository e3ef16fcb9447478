package snapshot

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/legends-of-revenue/internal/database"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
)

const charactersTable = "characters"

var upsertColumns = []string{
	"name", "snapshot", "level", "gold", "score", "highest_score",
	"kills", "games_played", "won_prize", "updated_at",
}

var metricColumns = map[Metric]string{
	MetricGold:  "gold",
	MetricLevel: "level",
	MetricScore: "score",
	MetricGames: "games_played",
	MetricKills: "kills",
}

func schema(d database.Dialect) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id VARCHAR(64) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	snapshot %s NOT NULL,
	level INTEGER NOT NULL,
	gold INTEGER NOT NULL,
	score INTEGER NOT NULL,
	highest_score INTEGER NOT NULL,
	kills INTEGER NOT NULL,
	games_played INTEGER NOT NULL,
	won_prize INTEGER NOT NULL,
	updated_at VARCHAR(64) NOT NULL
)`, charactersTable, d.TextType())
}

// SQLConfig contains configuration for the SQL snapshot repository
type SQLConfig struct {
	DB    *database.DB
	Clock clock.Clock
}

// Validate validates the SQLConfig
func (cfg *SQLConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqlRepository struct {
	db    *database.DB
	clock clock.Clock
}

var _ Repository = (*sqlRepository)(nil)

// NewSQL creates a SQL-backed repository on any supported dialect and
// creates the characters table when missing
func NewSQL(ctx context.Context, cfg *SQLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	if _, err := cfg.DB.ExecContext(ctx, schema(cfg.DB.Dialect)); err != nil {
		return nil, errors.Wrap(err, "failed to create characters table")
	}

	return &sqlRepository{db: cfg.DB, clock: c}, nil
}

func (r *sqlRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
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

	wonPrize := 0
	if c.Record.WonPrize {
		wonPrize = 1
	}

	cols := append([]string{"id"}, upsertColumns...)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", charactersTable, strings.Join(cols, ", "), placeholders) +
		r.db.Dialect.UpsertClause("id", upsertColumns)

	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		string(data),
		c.Stats.Level,
		c.Stats.Gold,
		Score(c),
		c.Record.HighestScore,
		c.EnemiesKilled,
		c.Record.TotalGamesPlayed,
		wonPrize,
		savedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot for %s", c.ID)
	}

	slog.DebugContext(ctx, "snapshot saved",
		"character_id", c.ID,
		"driver", r.db.Dialect.DriverName())

	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *sqlRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT snapshot FROM "+charactersTable+" WHERE id = ?", input.CharacterID).Scan(&raw)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("character %s not found", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to load snapshot for %s", input.CharacterID)
	}

	env, err := decode([]byte(raw))
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Character: env.Character, SavedAt: env.SavedAt}, nil
}

func (r *sqlRepository) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM "+charactersTable+" WHERE id = ?", input.CharacterID); err != nil {
		return nil, errors.Wrapf(err, "failed to clear %s", input.CharacterID)
	}
	return &ClearOutput{}, nil
}

func (r *sqlRepository) ListLeaderboard(
	ctx context.Context,
	input *ListLeaderboardInput,
) (*ListLeaderboardOutput, error) {
	metric, limit, err := normalizeLeaderboard(input)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT id, name, level, gold, score, games_played, kills, won_prize FROM %s ORDER BY %s DESC, id ASC LIMIT ?",
		charactersTable, metricColumns[metric])

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read leaderboard %s", metric)
	}
	defer func() { _ = rows.Close() }()

	var entries []*LeaderboardEntry
	for rows.Next() {
		var (
			e        LeaderboardEntry
			wonPrize int
		)
		if err := rows.Scan(&e.CharacterID, &e.Name, &e.Level, &e.Gold, &e.Score,
			&e.GamesPlayed, &e.Kills, &wonPrize); err != nil {
			return nil, errors.Wrap(err, "failed to scan leaderboard row")
		}
		e.WonPrize = wonPrize != 0
		e.Rank = len(entries) + 1
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate leaderboard")
	}

	return &ListLeaderboardOutput{Entries: entries}, nil
}
