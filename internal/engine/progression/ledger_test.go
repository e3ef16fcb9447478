package progression_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type LedgerTestSuite struct {
	suite.Suite
	ctx       context.Context
	character *entities.Character
	bus       events.EventBus
	published []string
	ledger    progression.Ledger
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.character = testutils.NewTestCharacter("char_1")
	s.bus = engine.NewBus()
	s.published = nil

	record := func(_ context.Context, e events.Event) error {
		s.published = append(s.published, e.Type())
		return nil
	}
	for _, eventType := range []string{
		engine.EventStatsChanged, engine.EventLevelUp, engine.EventDeath, engine.EventEnemyDefeated,
	} {
		s.bus.SubscribeFunc(eventType, 0, record)
	}

	ledger, err := progression.New(&progression.Config{
		Character: s.character,
		EventBus:  s.bus,
	})
	s.Require().NoError(err)
	s.ledger = ledger
}

func (s *LedgerTestSuite) TestNewRequiresCharacter() {
	_, err := progression.New(&progression.Config{})
	s.Error(err)

	_, err = progression.New(nil)
	s.Error(err)
}

func (s *LedgerTestSuite) TestGainXPWithoutLevelUp() {
	gained := s.ledger.GainXP(s.ctx, 40)

	s.Equal(0, gained)
	s.Equal(40, s.character.Stats.XP)
	s.Equal(1, s.character.Stats.Level)
	s.Equal([]string{engine.EventStatsChanged}, s.published)
}

func (s *LedgerTestSuite) TestGainXPChainsLevelUps() {
	s.character.Stats.HP = 12

	gained := s.ledger.GainXP(s.ctx, 400)

	s.Equal(2, gained)
	stats := s.character.Stats
	s.Equal(3, stats.Level)
	s.Equal(150, stats.XP)
	s.Equal(225, stats.XPToNext)
	s.Equal(320, stats.MaxHP)
	s.Equal(stats.MaxHP, stats.HP)
	s.Equal(9, stats.Attack)
	s.Equal(5, stats.Defense)
	s.Contains(s.published, engine.EventLevelUp)
}

func (s *LedgerTestSuite) TestGainXPReachingMaxLevelClampsXP() {
	s.character.Stats.Level = 9
	s.character.Stats.XPToNext = 1000
	s.character.Stats.XP = 900

	gained := s.ledger.GainXP(s.ctx, 5000)

	s.Equal(1, gained)
	s.Equal(entities.MaxLevel, s.character.Stats.Level)
	s.Equal(1500, s.character.Stats.XPToNext)
	s.Equal(s.character.Stats.XPToNext, s.character.Stats.XP)
}

func (s *LedgerTestSuite) TestGainXPAtMaxLevelChangesNothingElse() {
	s.character.Stats = entities.CharacterStats{
		Level: 10, XP: 3000, XPToNext: 3844, HP: 100, MaxHP: 390, Attack: 23, Defense: 12, Gold: 7,
	}
	before := s.character.Stats

	gained := s.ledger.GainXP(s.ctx, 100000)

	s.Equal(0, gained)
	after := s.character.Stats
	s.Equal(before.Level, after.Level)
	s.Equal(before.Attack, after.Attack)
	s.Equal(before.Defense, after.Defense)
	s.Equal(before.MaxHP, after.MaxHP)
	s.Equal(before.HP, after.HP)
	s.Equal(after.XPToNext, after.XP)
}

func (s *LedgerTestSuite) TestGainXPIgnoresNegative() {
	s.Equal(0, s.ledger.GainXP(s.ctx, -10))
	s.Equal(0, s.character.Stats.XP)
	s.Empty(s.published)
}

func (s *LedgerTestSuite) TestTakeDamageFloorsAtZero() {
	s.ledger.TakeDamage(s.ctx, 120)
	s.Equal(180, s.character.Stats.HP)

	s.ledger.TakeDamage(s.ctx, 1000)
	s.Equal(0, s.character.Stats.HP)
	s.True(s.ledger.IsDead())
}

func (s *LedgerTestSuite) TestHealCapsAtMax() {
	s.character.Stats.HP = 280

	healed := s.ledger.Heal(s.ctx, 50)

	s.Equal(20, healed)
	s.Equal(300, s.character.Stats.HP)
}

func (s *LedgerTestSuite) TestHPInvariantHolds() {
	ops := []func(){
		func() { s.ledger.TakeDamage(s.ctx, 75) },
		func() { s.ledger.Heal(s.ctx, 500) },
		func() { s.ledger.GainXP(s.ctx, 250) },
		func() { s.ledger.TakeDamage(s.ctx, 9999) },
		func() { s.ledger.HandleDeath(s.ctx) },
		func() { s.ledger.TakeDamage(s.ctx, -5) },
		func() { s.ledger.Heal(s.ctx, -5) },
	}

	for _, op := range ops {
		op()
		stats := s.character.Stats
		s.GreaterOrEqual(stats.HP, 0)
		s.LessOrEqual(stats.HP, stats.MaxHP)
		s.LessOrEqual(stats.Level, entities.MaxLevel)
	}
}

func (s *LedgerTestSuite) TestHandleDeath() {
	s.character.Stats.Level = 3
	s.character.Stats.XPToNext = 225
	s.character.Stats.XP = 50
	s.character.Stats.HP = 0
	s.character.Location = "pirate-cove"

	s.Equal(67, progression.XPLoss(s.character.Stats))

	lost := s.ledger.HandleDeath(s.ctx)

	s.Equal(67, lost)
	s.Equal(0, s.character.Stats.XP)
	s.Equal(s.character.Stats.MaxHP, s.character.Stats.HP)
	s.Equal(entities.HomeLocation, s.character.Location)
	s.Contains(s.published, engine.EventDeath)
}

func (s *LedgerTestSuite) TestGold() {
	s.ledger.AddGold(s.ctx, 25)
	s.Equal(75, s.character.Stats.Gold)

	s.False(s.ledger.SpendGold(s.ctx, 100))
	s.Equal(75, s.character.Stats.Gold)

	s.True(s.ledger.SpendGold(s.ctx, 75))
	s.Equal(0, s.character.Stats.Gold)
}

func (s *LedgerTestSuite) TestKillsAndCodex() {
	s.ledger.IncrementKills(s.ctx)
	s.ledger.IncrementKills(s.ctx)
	s.Equal(2, s.character.EnemiesKilled)

	s.True(s.ledger.RecordEnemyDefeated(s.ctx, "smuggler"))
	s.False(s.ledger.RecordEnemyDefeated(s.ctx, "smuggler"))
	s.Equal([]string{"smuggler"}, s.character.DefeatedEnemyTypes)
	s.Contains(s.published, engine.EventEnemyDefeated)
}
