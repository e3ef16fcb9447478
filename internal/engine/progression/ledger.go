// Package progression owns a character's level, xp, hp and gold and the
// rules that move them.
package progression

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Level-up growth
const (
	XPGrowthFactor  = 1.5
	MaxHPPerLevel   = 10
	AttackPerLevel  = 2
	DefensePerLevel = 1
	DeathXPPenalty  = 0.1
)

// Ledger mutates the progression numbers of one character. Every
// operation publishes a stats event on the session bus.
type Ledger interface {
	// GainXP adds xp and applies every level-up it pays for. Returns the
	// number of levels gained.
	GainXP(ctx context.Context, amount int) int
	TakeDamage(ctx context.Context, amount int)
	// Heal restores hp up to max and returns the amount restored
	Heal(ctx context.Context, amount int) int
	// HandleDeath applies the xp penalty, restores hp and sends the
	// character home. Returns the xp lost.
	HandleDeath(ctx context.Context) int
	AddGold(ctx context.Context, amount int)
	// SpendGold fails without mutation when gold is short
	SpendGold(ctx context.Context, amount int) bool
	IncrementKills(ctx context.Context)
	// RecordEnemyDefeated adds the enemy type to the codex; false if known
	RecordEnemyDefeated(ctx context.Context, enemyID string) bool
	Stats() entities.CharacterStats
	IsDead() bool
}

// Config configures a ledger
type Config struct {
	Character *entities.Character
	EventBus  events.EventBus
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}

	return vb.Build()
}

type ledger struct {
	character *entities.Character
	bus       events.EventBus
}

// New creates a ledger over cfg.Character
func New(cfg *Config) (Ledger, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &ledger{
		character: cfg.Character,
		bus:       cfg.EventBus,
	}, nil
}

// XPLoss is the xp penalty for dying: floor(xpToNext * 0.1 * level)
func XPLoss(stats entities.CharacterStats) int {
	return int(math.Floor(float64(stats.XPToNext) * DeathXPPenalty * float64(stats.Level)))
}

func (l *ledger) GainXP(ctx context.Context, amount int) int {
	if amount < 0 {
		slog.Warn("Ignoring negative xp grant", "character_id", l.character.ID, "amount", amount)
		return 0
	}

	stats := &l.character.Stats
	if stats.Level >= entities.MaxLevel {
		stats.XP = stats.XPToNext
		l.publish(ctx, engine.EventStatsChanged)
		return 0
	}

	stats.XP += amount
	gained := 0
	for stats.XP >= stats.XPToNext && stats.Level < entities.MaxLevel {
		prev := stats.XPToNext
		stats.Level++
		stats.XP -= prev
		stats.XPToNext = int(math.Floor(float64(prev) * XPGrowthFactor))
		stats.MaxHP += MaxHPPerLevel
		stats.Attack += AttackPerLevel
		stats.Defense += DefensePerLevel
		stats.HP = stats.MaxHP
		gained++
	}

	if stats.Level >= entities.MaxLevel {
		stats.XP = stats.XPToNext
	}

	if gained > 0 {
		slog.Info("Character leveled up",
			"character_id", l.character.ID,
			"level", stats.Level,
			"levels_gained", gained)
		l.publish(ctx, engine.EventLevelUp)
	}
	l.publish(ctx, engine.EventStatsChanged)

	return gained
}

func (l *ledger) TakeDamage(ctx context.Context, amount int) {
	if amount < 0 {
		amount = 0
	}
	stats := &l.character.Stats
	stats.HP = max(0, stats.HP-amount)
	l.publish(ctx, engine.EventStatsChanged)
}

func (l *ledger) Heal(ctx context.Context, amount int) int {
	if amount < 0 {
		amount = 0
	}
	stats := &l.character.Stats
	before := stats.HP
	stats.HP = min(stats.MaxHP, stats.HP+amount)
	l.publish(ctx, engine.EventStatsChanged)
	return stats.HP - before
}

func (l *ledger) HandleDeath(ctx context.Context) int {
	stats := &l.character.Stats
	loss := XPLoss(*stats)
	stats.XP = max(0, stats.XP-loss)
	stats.HP = stats.MaxHP
	l.character.Location = entities.HomeLocation

	slog.Info("Character died",
		"character_id", l.character.ID,
		"xp_lost", loss)

	l.publish(ctx, engine.EventDeath)
	l.publish(ctx, engine.EventLocationChanged)
	l.publish(ctx, engine.EventStatsChanged)
	return loss
}

func (l *ledger) AddGold(ctx context.Context, amount int) {
	if amount < 0 {
		slog.Warn("Ignoring negative gold grant", "character_id", l.character.ID, "amount", amount)
		return
	}
	l.character.Stats.Gold += amount
	l.publish(ctx, engine.EventStatsChanged)
}

func (l *ledger) SpendGold(ctx context.Context, amount int) bool {
	if amount < 0 || l.character.Stats.Gold < amount {
		return false
	}
	l.character.Stats.Gold -= amount
	l.publish(ctx, engine.EventStatsChanged)
	return true
}

func (l *ledger) IncrementKills(ctx context.Context) {
	l.character.EnemiesKilled++
	l.publish(ctx, engine.EventEnemyDefeated)
}

func (l *ledger) RecordEnemyDefeated(_ context.Context, enemyID string) bool {
	if enemyID == "" || l.character.HasDefeated(enemyID) {
		return false
	}
	l.character.DefeatedEnemyTypes = append(l.character.DefeatedEnemyTypes, enemyID)
	return true
}

func (l *ledger) Stats() entities.CharacterStats {
	return l.character.Stats
}

func (l *ledger) IsDead() bool {
	return l.character.Stats.HP <= 0
}

func (l *ledger) publish(ctx context.Context, eventType string) {
	engine.Publish(ctx, l.bus, eventType, l.character, nil)
}
