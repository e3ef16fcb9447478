// Package snapshot persists whole-character snapshots and serves the
// leaderboard from the same store
package snapshot

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotmock github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot Repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Repository defines the interface for character snapshot persistence
type Repository interface {
	// Save writes the full character, replacing any previous snapshot
	// Returns errors.InvalidArgument for a nil character or empty ID
	// Returns errors.Internal or errors.Unavailable for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load reads the latest snapshot of a character
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no snapshot exists
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Clear removes the snapshot and every leaderboard entry of a character
	// Clearing a missing character is not an error
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)

	// ListLeaderboard ranks characters by one metric, highest first
	// Returns errors.InvalidArgument for an unknown metric
	ListLeaderboard(ctx context.Context, input *ListLeaderboardInput) (*ListLeaderboardOutput, error)
}

// CurrentVersion is written into every envelope
const CurrentVersion = "1.0.0"

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Metric is a leaderboard sort key
type Metric string

// Leaderboard metrics
const (
	MetricGold  Metric = "gold"
	MetricLevel Metric = "level"
	MetricScore Metric = "score"
	MetricGames Metric = "games"
	MetricKills Metric = "kills"
)

// Metrics lists every metric
var Metrics = []Metric{MetricGold, MetricLevel, MetricScore, MetricGames, MetricKills}

// Valid reports whether m is a known metric
func (m Metric) Valid() bool {
	for _, known := range Metrics {
		if m == known {
			return true
		}
	}
	return false
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	SavedAt time.Time
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	CharacterID string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	Character *entities.Character
	SavedAt   time.Time
}

// ClearInput defines the input for clearing a character
type ClearInput struct {
	CharacterID string
}

// ClearOutput defines the output for clearing a character
type ClearOutput struct{}

// ListLeaderboardInput defines the input for listing the leaderboard
type ListLeaderboardInput struct {
	SortBy Metric
	// Limit defaults to DefaultLeaderboardLimit and is capped at
	// MaxLeaderboardLimit
	Limit int
}

// ListLeaderboardOutput defines the output for listing the leaderboard
type ListLeaderboardOutput struct {
	Entries []*LeaderboardEntry
}

// LeaderboardEntry is one ranked character
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	CharacterID string `json:"character_id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Gold        int    `json:"gold"`
	Score       int    `json:"score"`
	GamesPlayed int    `json:"games_played"`
	Kills       int    `json:"kills"`
	WonPrize    bool   `json:"won_prize"`
}

// Envelope is the stored document
type Envelope struct {
	Version   string              `json:"version"`
	SavedAt   time.Time           `json:"saved_at"`
	Character *entities.Character `json:"character"`
}

func encode(character *entities.Character, savedAt time.Time) ([]byte, error) {
	data, err := json.Marshal(&Envelope{
		Version:   CurrentVersion,
		SavedAt:   savedAt,
		Character: character,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}
	return data, nil
}

func decode(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}
	if env.Character == nil {
		return nil, errors.Internal("snapshot has no character")
	}
	if env.Version != CurrentVersion {
		slog.Warn("Loading snapshot with unexpected version",
			"character_id", env.Character.ID,
			"version", env.Version)
	}
	return &env, nil
}

func validateCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character cannot be nil")
	}
	if c.ID == "" {
		return errors.InvalidArgument("character ID cannot be empty")
	}
	return nil
}

func validateID(id string) error {
	if id == "" {
		return errors.InvalidArgument("character ID cannot be empty")
	}
	return nil
}

// Score is the leaderboard score: the best of the recorded high score and
// the running total
func Score(c *entities.Character) int {
	return max(c.Record.HighestScore, c.QuestionHistory.TotalPoints)
}

// MetricValue reads one leaderboard metric from a character
func MetricValue(c *entities.Character, m Metric) int {
	switch m {
	case MetricGold:
		return c.Stats.Gold
	case MetricLevel:
		return c.Stats.Level
	case MetricScore:
		return Score(c)
	case MetricGames:
		return c.Record.TotalGamesPlayed
	case MetricKills:
		return c.EnemiesKilled
	}
	return 0
}

func entryFor(c *entities.Character) *LeaderboardEntry {
	return &LeaderboardEntry{
		CharacterID: c.ID,
		Name:        c.Name,
		Level:       c.Stats.Level,
		Gold:        c.Stats.Gold,
		Score:       Score(c),
		GamesPlayed: c.Record.TotalGamesPlayed,
		Kills:       c.EnemiesKilled,
		WonPrize:    c.Record.WonPrize,
	}
}

func normalizeLeaderboard(input *ListLeaderboardInput) (Metric, int, error) {
	if input == nil {
		return "", 0, errors.InvalidArgument("input cannot be nil")
	}

	metric := input.SortBy
	if metric == "" {
		metric = MetricScore
	}
	if !metric.Valid() {
		return "", 0, errors.InvalidArgumentf("unknown leaderboard metric %q", metric)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	return metric, min(limit, MaxLeaderboardLimit), nil
}

// rank sorts entries by metric descending, ties broken by id, and assigns
// 1-based ranks
func rank(entries []*LeaderboardEntry, metric Metric, limit int) []*LeaderboardEntry {
	value := func(e *LeaderboardEntry) int {
		switch metric {
		case MetricGold:
			return e.Gold
		case MetricLevel:
			return e.Level
		case MetricScore:
			return e.Score
		case MetricGames:
			return e.GamesPlayed
		case MetricKills:
			return e.Kills
		}
		return 0
	}

	sort.SliceStable(entries, func(i, j int) bool {
		vi, vj := value(entries[i]), value(entries[j])
		if vi != vj {
			return vi > vj
		}
		return entries[i].CharacterID < entries[j].CharacterID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	for i, e := range entries {
		e.Rank = i + 1
	}
	return entries
}
