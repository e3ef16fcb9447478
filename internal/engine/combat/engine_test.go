package combat_test

import (
	"context"
	"math"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/combat"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/quiz"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/idgen"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type testCatalog struct {
	*content.Catalog
	extra map[string]*entities.EnemyTemplate
}

func (c *testCatalog) Enemy(id string) (*entities.EnemyTemplate, bool) {
	if t, ok := c.extra[id]; ok {
		return t, true
	}
	return c.Catalog.Enemy(id)
}

func fixedTemplate(id string, hp, attack, defense int, abilities ...entities.EnemyAbility) *entities.EnemyTemplate {
	return &entities.EnemyTemplate{
		ID:   id,
		Name: "Test " + id,
		StatRanges: entities.StatRanges{
			HP:      entities.StatRange{Min: hp, Max: hp},
			Attack:  entities.StatRange{Min: attack, Max: attack},
			Defense: entities.StatRange{Min: defense, Max: defense},
		},
		Rewards:   entities.Rewards{XP: 40, Gold: 20},
		Abilities: abilities,
	}
}

type harness struct {
	character *entities.Character
	ledger    progression.Ledger
	inventory inventory.Manager
	quiz      quiz.Selector
	engine    combat.Engine
}

type EngineTestSuite struct {
	suite.Suite
	ctx     context.Context
	content *content.Catalog
	catalog *testCatalog
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupSuite() {
	s.content = testutils.LoadCatalog(s.T())
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()

	dummy := fixedTemplate("dummy", 50, 8, 2)
	dummy.Rewards.Items = []entities.LootEntry{
		{ID: "health-potion"},
		{ID: "plate-armor", Chance: testutils.Float(0.5)},
	}

	s.catalog = &testCatalog{
		Catalog: s.content,
		extra: map[string]*entities.EnemyTemplate{
			"dummy": dummy,
			"golem": fixedTemplate("golem", 200, 30, 0),
			"brute": fixedTemplate("brute", 500, 1000, 0),
			"warden": fixedTemplate("warden", 100, 10, 0,
				entities.EnemyAbility{
					ID:      "rage",
					Name:    "Rage",
					Trigger: entities.TriggerHPBelow50,
					Effect:  entities.AbilityEffect{Type: entities.AbilityDamageBoost, Value: 5},
				},
				entities.EnemyAbility{
					ID:      "mend",
					Name:    "Mend",
					Trigger: entities.TriggerHPBelow30,
					Effect:  entities.AbilityEffect{Type: entities.AbilityHeal, Value: 40},
				},
			),
		},
	}
}

func (s *EngineTestSuite) newHarness(roller dice.Roller, configure func(*combat.Config)) *harness {
	character := testutils.NewTestCharacter("char_1")
	bus := engine.NewBus()

	ledger, err := progression.New(&progression.Config{Character: character, EventBus: bus})
	s.Require().NoError(err)

	inv, err := inventory.New(&inventory.Config{
		Character: character,
		Catalog:   s.catalog,
		Ledger:    ledger,
		EventBus:  bus,
	})
	s.Require().NoError(err)

	selector, err := quiz.New(&quiz.Config{
		Character: character,
		Bank:      s.content,
		Roller:    roller,
		EventBus:  bus,
	})
	s.Require().NoError(err)

	cfg := &combat.Config{
		Character:   character,
		Catalog:     s.catalog,
		Ledger:      ledger,
		Inventory:   inv,
		Quiz:        selector,
		Roller:      roller,
		EventBus:    bus,
		IDGenerator: idgen.NewSequential("enc"),
	}
	if configure != nil {
		configure(cfg)
	}

	eng, err := combat.New(cfg)
	s.Require().NoError(err)

	return &harness{
		character: character,
		ledger:    ledger,
		inventory: inv,
		quiz:      selector,
		engine:    eng,
	}
}

func (s *EngineTestSuite) answerIndex(q *combat.PresentedQuestion, correct bool) int {
	s.Require().NotNil(q)
	source, ok := s.content.Question(q.ID)
	s.Require().True(ok)

	want := source.Answers[source.CorrectIndex()].Text
	for i, text := range q.Answers {
		if (text == want) == correct {
			return i
		}
	}
	s.FailNow("no matching answer")
	return -1
}

func (s *EngineTestSuite) TestNewValidation() {
	_, err := combat.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = combat.New(&combat.Config{})
	s.Error(err)
	s.Contains(err.Error(), "Ledger")
}

func (s *EngineTestSuite) TestStart() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)

	enc, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	s.Equal("enc_1", enc.ID)
	s.Equal(combat.PhaseSelectAttack, enc.Phase)
	s.Equal(entities.EnemyStats{HP: 50, MaxHP: 50, Attack: 8, Defense: 2}, enc.Enemy.Stats)
	s.InDelta(1.05, enc.RewardMultiplier, 1e-9)
	s.Equal([]string{"You encountered a Test dummy!"}, enc.Log)
	s.NotNil(h.engine.Active())

	s.Run("rejects a second encounter", func() {
		_, err := h.engine.Start(s.ctx, "golem")
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("unknown enemy", func() {
		other := s.newHarness(nil, nil)
		_, err := other.engine.Start(s.ctx, "tax-collector")
		s.True(errors.IsNotFound(err))
	})
}

func (s *EngineTestSuite) TestStartFiresCombatStartAbilities() {
	h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, nil)

	enc, err := h.engine.Start(s.ctx, "shell-company-golem")
	s.Require().NoError(err)
	s.Equal(2, enc.EnemyBuffs.DefenseBoost)
	s.Equal([]string{"layered-ownership"}, enc.FiredAbilities)

	res, err := h.engine.BasicAttack(s.ctx)
	s.Require().NoError(err)
	s.Equal(18, res.DamageDealt)
}

func (s *EngineTestSuite) TestActionsWithoutEncounter() {
	h := s.newHarness(nil, nil)

	_, err := h.engine.BasicAttack(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
	_, err = h.engine.SubmitAnswer(s.ctx, 0)
	s.True(errors.IsFailedPrecondition(err))
	_, err = h.engine.Flee(s.ctx)
	s.True(errors.IsFailedPrecondition(err))
	s.Nil(h.engine.Abort(s.ctx))
	s.Nil(h.engine.Active())
}

// Basic attacks ignore enemy defense and hand the turn to the enemy
func (s *EngineTestSuite) TestBasicAttackDamageRange() {
	for i := 0; i < 25; i++ {
		h := s.newHarness(nil, nil)
		_, err := h.engine.Start(s.ctx, "dummy")
		s.Require().NoError(err)

		res, err := h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)

		hp := res.Encounter.Enemy.Stats.HP
		s.GreaterOrEqual(hp, 30)
		s.LessOrEqual(hp, 40)
		s.Equal(50-hp, res.DamageDealt)

		// enemy attack 8 against defense 3 with +-10% variance
		s.GreaterOrEqual(res.DamageTaken, 4)
		s.LessOrEqual(res.DamageTaken, 5)
		s.Equal(entities.StartingHP-res.DamageTaken, h.character.Stats.HP)
		s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
		s.Equal(1, res.Encounter.Turn)
	}
}

func (s *EngineTestSuite) TestRollFailureKeepsTurn() {
	h := s.newHarness(testutils.NewScriptedRoller(), nil)
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	_, err = h.engine.BasicAttack(s.ctx)
	s.Error(err)
	_, err = h.engine.Flee(s.ctx)
	s.Error(err)

	enc := h.engine.Active()
	s.Require().NotNil(enc)
	s.Equal(0, enc.Turn)
	s.Equal(combat.PhaseSelectAttack, enc.Phase)
	s.Equal(50, enc.Enemy.Stats.HP)
}

// A wrong answer deals nothing but the enemy still attacks
func (s *EngineTestSuite) TestSpecialAttackWrongAnswer() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)
	s.Equal(combat.PhaseAnswerQuestion, res.Encounter.Phase)
	s.Require().NotNil(res.Question)
	s.Equal("gst_basics", res.Question.Category)
	s.Len(res.Question.Answers, 4)

	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, false))
	s.Require().NoError(err)

	s.Equal(0, res.DamageDealt)
	s.Equal(50, res.Encounter.Enemy.Stats.HP)
	s.Equal(4, res.DamageTaken)
	s.Equal(entities.StartingHP-4, h.character.Stats.HP)
	s.False(res.Answer.Correct)
	s.Equal(-2, res.Answer.PointsDelta)
	s.Equal(combat.Tally{Asked: 1, Wrong: 1}, res.Encounter.Tally)
	s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
}

func (s *EngineTestSuite) TestSpecialAttackCorrectAnswer() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)

	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
	s.Require().NoError(err)

	// (attack 5 + damage 50) * 0.9
	s.Equal(49, res.DamageDealt)
	s.False(res.Critical)
	s.Equal(1, res.Encounter.Enemy.Stats.HP)
	s.True(res.Answer.Correct)
	s.Equal(10, h.character.QuestionHistory.TotalPoints)
	s.True(h.character.QuestionHistory.HasAnswered(res.Answer.QuestionID))
}

func (s *EngineTestSuite) TestSpecialAttackCrit() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	h.inventory.AddItem(s.ctx, "auditors-rapier", 1)
	s.Require().True(h.inventory.EquipItem(s.ctx, "auditors-rapier", entities.SlotWeapon))

	_, err := h.engine.Start(s.ctx, "golem")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)
	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
	s.Require().NoError(err)

	// (5 + 8 + 50) * 0.9 * 2
	s.True(res.Critical)
	s.Equal(113, res.DamageDealt)
}

func (s *EngineTestSuite) TestSpecialAttackDebuffConsumedByNextAttack() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	_, err := h.engine.Start(s.ctx, "golem")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "asset_seizure")
	s.Require().NoError(err)
	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
	s.Require().NoError(err)

	// 30 attack - 15 debuff - 3 defense = 12, * 0.9
	s.Equal(10, res.DamageTaken)
	s.Equal(0, res.Encounter.EnemyDebuff)

	res, err = h.engine.BasicAttack(s.ctx)
	s.Require().NoError(err)
	s.Equal(24, res.DamageTaken)
}

func (s *EngineTestSuite) TestSpecialAttackExhaustedCategory() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	for _, q := range s.content.QuestionsIn("gst_basics") {
		h.character.QuestionHistory.MarkAnswered(q.ID)
	}
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	_, err = h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.True(errors.IsFailedPrecondition(err))

	for _, attack := range h.engine.Attacks() {
		if attack.ID == "audit_strike" {
			s.False(attack.Available)
		}
	}

	_, err = h.engine.SpecialAttack(s.ctx, "tax_evasion")
	s.True(errors.IsNotFound(err))
}

func (s *EngineTestSuite) TestAttacks() {
	h := s.newHarness(nil, nil)

	attacks := h.engine.Attacks()
	s.Require().Len(attacks, 1+len(s.content.SpecialAttacks()))
	s.Equal(combat.BasicAttackID, attacks[0].ID)
	for _, a := range attacks {
		s.True(a.Available, a.ID)
	}
}

func (s *EngineTestSuite) TestSubmitAnswerValidation() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	_, err = h.engine.SubmitAnswer(s.ctx, 0)
	s.True(errors.IsFailedPrecondition(err), "no question pending")

	_, err = h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)

	_, err = h.engine.SubmitAnswer(s.ctx, 4)
	s.True(errors.IsInvalidArgument(err))

	_, err = h.engine.BasicAttack(s.ctx)
	s.True(errors.IsFailedPrecondition(err), "must answer first")
}

func (s *EngineTestSuite) TestCheckpointRunsBeforeDamage() {
	var calls int
	var h *harness
	h = s.newHarness(&testutils.FixedRoller{Value: 1}, func(cfg *combat.Config) {
		cfg.Checkpoint = func(_ context.Context) error {
			calls++
			active := h.engine.Active()
			s.Equal(50, active.Enemy.Stats.HP)
			s.Equal(10, h.character.QuestionHistory.TotalPoints)
			return nil
		}
	})
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)
	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
	s.Require().NoError(err)

	s.Equal(1, calls)
	s.Empty(res.Warnings)
	s.Equal(1, res.Encounter.Enemy.Stats.HP)
}

func (s *EngineTestSuite) TestCheckpointFailureIsWarning() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, func(cfg *combat.Config) {
		cfg.Checkpoint = func(_ context.Context) error {
			return errors.Unavailable("redis down")
		}
	})
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	res, err := h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)
	res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
	s.Require().NoError(err)

	s.Equal([]string{"checkpoint save failed: redis down"}, res.Warnings)
	s.Equal(49, res.DamageDealt)
}

// Thresholds do not re-fire after the enemy heals back above them
func (s *EngineTestSuite) TestThresholdAbilityFiresOnce() {
	h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, nil)
	_, err := h.engine.Start(s.ctx, "warden")
	s.Require().NoError(err)

	expected := []struct {
		hp    int
		boost int
		fired []string
	}{
		{hp: 80, boost: 0},
		{hp: 60, boost: 0},
		{hp: 40, boost: 5, fired: []string{"rage"}},
		{hp: 60, boost: 5, fired: []string{"rage", "mend"}},
		{hp: 40, boost: 5, fired: []string{"rage", "mend"}},
		{hp: 20, boost: 5, fired: []string{"rage", "mend"}},
	}

	for i, want := range expected {
		res, err := h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err, "attack %d", i+1)
		s.Equal(want.hp, res.Encounter.Enemy.Stats.HP, "attack %d", i+1)
		s.Equal(want.boost, res.Encounter.EnemyBuffs.DamageBoost, "attack %d", i+1)
		s.Equal(want.fired, res.Encounter.FiredAbilities, "attack %d", i+1)
	}
}

func (s *EngineTestSuite) TestVictory() {
	h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, nil)
	enc, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	var res *combat.TurnResult
	for i := 0; i < 3; i++ {
		res, err = h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)
	}

	s.Require().NotNil(res.Outcome)
	outcome := res.Outcome
	s.Equal(combat.PhaseVictory, outcome.Result)
	s.Equal(combat.PhaseVictory, res.Encounter.Phase)
	s.Equal("dummy", outcome.EnemyID)
	s.Equal(int(math.Floor(40*enc.RewardMultiplier)), outcome.XPGained)
	s.Equal(int(math.Floor(20*enc.RewardMultiplier)), outcome.GoldGained)
	s.Equal(3, outcome.Turns)

	// two enemy turns of floor(5 * 1.1) before the killing blow
	s.Equal(10, outcome.HPRestored)
	s.Equal(h.character.Stats.MaxHP, h.character.Stats.HP)

	s.Equal([]combat.LootDrop{{ItemID: "health-potion", Name: "Health Potion", Rarity: entities.RarityCommon}}, outcome.Loot)
	s.Equal(entities.StarterItemAmount+1, h.inventory.Quantity("health-potion"))
	s.Equal(0, h.inventory.Quantity("plate-armor"))

	s.Equal(1, h.character.EnemiesKilled)
	s.True(h.character.HasDefeated("dummy"))
	s.Equal(outcome.XPGained, h.character.Stats.XP)
	s.Equal(entities.StartingGold+outcome.GoldGained, h.character.Stats.Gold)
	s.Nil(h.engine.Active())
}

func (s *EngineTestSuite) TestVictoryAtMaxLevelGrantsNoXP() {
	h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, nil)
	h.character.Stats.Level = entities.MaxLevel
	h.character.Stats.XP = h.character.Stats.XPToNext

	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	var res *combat.TurnResult
	for res == nil || res.Outcome == nil {
		res, err = h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)
	}

	s.Equal(0, res.Outcome.XPGained)
	s.Positive(res.Outcome.GoldGained)
	s.Contains(res.Log, "You are at MAX LEVEL (10)! No more XP can be gained.")
}

func (s *EngineTestSuite) TestBossVictory() {
	h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, func(cfg *combat.Config) {
		cfg.FinalBossID = "dummy"
	})
	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	var res *combat.TurnResult
	for res == nil || res.Outcome == nil {
		res, err = h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)
	}

	s.Equal(combat.PhaseBossVictory, res.Outcome.Result)
	s.Equal(0, res.Outcome.XPGained)
	s.Equal(0, res.Outcome.GoldGained)
	s.Empty(res.Outcome.Loot)
	s.True(h.character.Record.WonPrize)
	s.Equal(1, h.character.EnemiesKilled)
	s.Equal(entities.StartingGold, h.character.Stats.Gold)
	s.Equal(0, h.character.Stats.XP)
	s.Equal(h.character.Stats.MaxHP, h.character.Stats.HP)
}

func (s *EngineTestSuite) TestDefeat() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	h.character.Location = "city-gates"

	_, err := h.engine.Start(s.ctx, "brute")
	s.Require().NoError(err)

	res, err := h.engine.BasicAttack(s.ctx)
	s.Require().NoError(err)

	s.Require().NotNil(res.Outcome)
	s.Equal(combat.PhaseDefeat, res.Outcome.Result)
	s.Equal(progression.XPLoss(h.character.Stats), res.Outcome.XPLost)
	s.Equal(0, h.character.Stats.XP)
	s.Equal(h.character.Stats.MaxHP, h.character.Stats.HP)
	s.Equal(entities.HomeLocation, h.character.Location)
	s.Equal(0, h.character.EnemiesKilled)
	s.Nil(h.engine.Active())
}

func (s *EngineTestSuite) TestFlee() {
	s.Run("success", func() {
		h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
		_, err := h.engine.Start(s.ctx, "golem")
		s.Require().NoError(err)

		res, err := h.engine.Flee(s.ctx)
		s.Require().NoError(err)
		s.Equal(combat.PhaseFled, res.Outcome.Result)
		s.Equal(0, res.DamageTaken)
		s.Nil(h.engine.Active())
	})

	s.Run("failure gives the enemy a free attack", func() {
		h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, func(cfg *combat.Config) {
			cfg.ManualDefense = true
		})
		_, err := h.engine.Start(s.ctx, "golem")
		s.Require().NoError(err)

		res, err := h.engine.Flee(s.ctx)
		s.Require().NoError(err)
		s.Nil(res.Outcome)
		s.Nil(res.Question, "free attack skips the defense question")
		s.Equal(29, res.DamageTaken)
		s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
		s.Contains(res.Log, "Failed to flee!")
	})

	s.Run("failure can defeat", func() {
		h := s.newHarness(&testutils.FixedRoller{Value: testutils.MaxRoll}, nil)
		_, err := h.engine.Start(s.ctx, "brute")
		s.Require().NoError(err)

		res, err := h.engine.Flee(s.ctx)
		s.Require().NoError(err)
		s.Equal(combat.PhaseDefeat, res.Outcome.Result)
	})
}

func (s *EngineTestSuite) TestManualDefense() {
	newFight := func() *harness {
		h := s.newHarness(&testutils.FixedRoller{Value: 1}, func(cfg *combat.Config) {
			cfg.ManualDefense = true
		})
		_, err := h.engine.Start(s.ctx, "golem")
		s.Require().NoError(err)
		return h
	}

	s.Run("correct answer dodges", func() {
		h := newFight()

		res, err := h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)
		s.Equal(combat.PhaseDefendQuestion, res.Encounter.Phase)
		s.Require().NotNil(res.Question)
		s.True(res.Question.Defense)
		s.Equal(0, res.DamageTaken)

		res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, true))
		s.Require().NoError(err)
		s.True(res.Dodged)
		s.Equal(0, res.DamageTaken)
		s.Equal(entities.StartingHP, h.character.Stats.HP)
		s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
		s.Equal(1, h.character.QuestionHistory.CorrectAnswers)
	})

	s.Run("wrong answer takes full damage", func() {
		h := newFight()

		res, err := h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)

		res, err = h.engine.SubmitAnswer(s.ctx, s.answerIndex(res.Question, false))
		s.Require().NoError(err)
		s.False(res.Dodged)
		s.Equal(24, res.DamageTaken)
		s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
	})

	s.Run("no questions left means the attack lands", func() {
		h := newFight()
		for _, category := range s.content.Categories() {
			for _, q := range s.content.QuestionsIn(category) {
				h.character.QuestionHistory.MarkAnswered(q.ID)
			}
		}

		res, err := h.engine.BasicAttack(s.ctx)
		s.Require().NoError(err)
		s.Equal(24, res.DamageTaken)
		s.Equal(combat.PhaseSelectAttack, res.Encounter.Phase)
	})
}

func (s *EngineTestSuite) TestUseItemIsFreeAction() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	h.inventory.AddItem(s.ctx, "tax-bomb", 2)
	h.inventory.AddItem(s.ctx, "focus-tonic", 1)

	_, err := h.engine.Start(s.ctx, "dummy")
	s.Require().NoError(err)

	res, err := h.engine.UseItem(s.ctx, "focus-tonic")
	s.Require().NoError(err)
	s.Equal(3, res.Encounter.DefenseBuff)
	s.Equal(0, res.DamageTaken)

	res, err = h.engine.UseItem(s.ctx, "tax-bomb")
	s.Require().NoError(err)
	s.Equal(10, res.Encounter.Enemy.Stats.HP)
	s.Nil(res.Outcome)

	res, err = h.engine.UseItem(s.ctx, "tax-bomb")
	s.Require().NoError(err)
	s.Require().NotNil(res.Outcome)
	s.Equal(combat.PhaseVictory, res.Outcome.Result)
	s.Equal(0, h.inventory.Quantity("tax-bomb"))

	s.Run("unusable item", func() {
		_, err := h.engine.Start(s.ctx, "dummy")
		s.Require().NoError(err)
		_, err = h.engine.UseItem(s.ctx, "tax-bomb")
		s.True(errors.IsFailedPrecondition(err))
	})
}

func (s *EngineTestSuite) TestBuffReducesEnemyDamage() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	h.inventory.AddItem(s.ctx, "focus-tonic", 1)

	_, err := h.engine.Start(s.ctx, "golem")
	s.Require().NoError(err)
	_, err = h.engine.UseItem(s.ctx, "focus-tonic")
	s.Require().NoError(err)

	res, err := h.engine.BasicAttack(s.ctx)
	s.Require().NoError(err)
	// 30 - (3 + 3) = 24, * 0.9
	s.Equal(21, res.DamageTaken)
}

func (s *EngineTestSuite) TestAbortKeepsAppliedEffects() {
	h := s.newHarness(&testutils.FixedRoller{Value: 1}, nil)
	_, err := h.engine.Start(s.ctx, "golem")
	s.Require().NoError(err)

	_, err = h.engine.BasicAttack(s.ctx)
	s.Require().NoError(err)
	hpAfterHit := h.character.Stats.HP

	_, err = h.engine.SpecialAttack(s.ctx, "audit_strike")
	s.Require().NoError(err)

	outcome := h.engine.Abort(s.ctx)
	s.Require().NotNil(outcome)
	s.True(outcome.Aborted)
	s.Equal(combat.PhaseFled, outcome.Result)
	s.Equal(combat.Tally{Asked: 1}, outcome.Tally)
	s.Equal(hpAfterHit, h.character.Stats.HP)
	s.Nil(h.engine.Active())
	s.Empty(h.character.QuestionHistory.AnsweredQuestionIDs)
}
