// Package combat resolves quiz-gated turn-based fights between a character
// and one spawned enemy.
package combat

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/enemystats"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/quiz"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/idgen"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/rng"
)

// Catalog resolves the static content a fight needs
type Catalog interface {
	Enemy(id string) (*entities.EnemyTemplate, bool)
	SpecialAttacks() []*entities.SpecialAttack
	SpecialAttack(id string) (*entities.SpecialAttack, bool)
	Item(id string) (*entities.ItemDefinition, bool)
}

// Checkpoint persists the character synchronously. It runs after every
// scored answer and before any damage is applied.
type Checkpoint func(ctx context.Context) error

// Engine runs at most one encounter at a time for one character. It is not
// safe for concurrent use.
type Engine interface {
	// Start spawns the enemy and opens an encounter
	Start(ctx context.Context, enemyID string) (*Encounter, error)
	// Active returns a copy of the current encounter, nil when idle
	Active() *Encounter
	// Attacks lists the basic attack and every special attack
	Attacks() []Attack
	BasicAttack(ctx context.Context) (*TurnResult, error)
	// SpecialAttack poses a question from the attack's category
	SpecialAttack(ctx context.Context, attackID string) (*TurnResult, error)
	// SubmitAnswer answers the pending attack or defense question
	SubmitAnswer(ctx context.Context, index int) (*TurnResult, error)
	Flee(ctx context.Context) (*TurnResult, error)
	// UseItem applies a consumable against the current enemy as a free action
	UseItem(ctx context.Context, itemID string) (*TurnResult, error)
	// Abort drops the encounter without resolving it. Returns nil when idle.
	Abort(ctx context.Context) *Outcome
}

// Config configures an engine
type Config struct {
	Character     *entities.Character
	Catalog       Catalog
	Ledger        progression.Ledger
	Inventory     inventory.Manager
	Quiz          quiz.Selector
	Roller        dice.Roller
	EventBus      events.EventBus
	IDGenerator   idgen.Generator
	Checkpoint    Checkpoint
	ManualDefense bool
	FinalBossID   string
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Ledger == nil {
		vb.RequiredField("Ledger")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.Quiz == nil {
		vb.RequiredField("Quiz")
	}

	return vb.Build()
}

type combatEngine struct {
	character     *entities.Character
	catalog       Catalog
	ledger        progression.Ledger
	inventory     inventory.Manager
	quiz          quiz.Selector
	roller        dice.Roller
	rng           *rng.Source
	bus           events.EventBus
	idGen         idgen.Generator
	checkpoint    Checkpoint
	manualDefense bool
	finalBossID   string

	active *Encounter
}

// New creates a combat engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("enc")
	}
	finalBoss := cfg.FinalBossID
	if finalBoss == "" {
		finalBoss = DefaultFinalBoss
	}

	return &combatEngine{
		character:     cfg.Character,
		catalog:       cfg.Catalog,
		ledger:        cfg.Ledger,
		inventory:     cfg.Inventory,
		quiz:          cfg.Quiz,
		roller:        cfg.Roller,
		rng:           rng.New(cfg.Roller),
		bus:           cfg.EventBus,
		idGen:         idGen,
		checkpoint:    cfg.Checkpoint,
		manualDefense: cfg.ManualDefense,
		finalBossID:   finalBoss,
	}, nil
}

func (e *combatEngine) Start(ctx context.Context, enemyID string) (*Encounter, error) {
	if e.active != nil {
		return nil, errors.FailedPrecondition("an encounter is already active").
			WithMeta("encounter_id", e.active.ID)
	}

	template, ok := e.catalog.Enemy(enemyID)
	if !ok {
		return nil, errors.NotFoundf("enemy %s not found", enemyID)
	}

	stats, multiplier, err := enemystats.Generate(e.roller, template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn %s", enemyID)
	}

	id := e.idGen.Generate()
	enc := &Encounter{
		ID: id,
		Enemy: entities.EnemyInstance{
			ID:          id,
			TemplateID:  template.ID,
			Name:        template.Name,
			Description: template.Description,
			Stats:       *stats,
			StatRanges:  template.StatRanges,
			Rewards:     template.Rewards,
			Abilities:   template.Abilities,
		},
		RewardMultiplier: multiplier,
		Phase:            PhaseSelectAttack,
	}
	enc.logf("You encountered a %s!", template.Name)
	enc.fireCombatStart()

	e.active = enc

	slog.Info("Encounter started",
		"character_id", e.character.ID,
		"encounter_id", id,
		"enemy_id", template.ID,
		"enemy_hp", stats.HP,
		"reward_multiplier", multiplier)

	engine.Publish(ctx, e.bus, engine.EventEncounterStarted, e.character, &enc.Enemy)
	return enc.snapshot(), nil
}

func (e *combatEngine) Active() *Encounter {
	if e.active == nil {
		return nil
	}
	return e.active.snapshot()
}

func (e *combatEngine) Attacks() []Attack {
	attacks := []Attack{{
		ID:          BasicAttackID,
		Name:        basicAttackName,
		Description: basicAttackDetail,
		Damage:      BasicAttackMin,
		Available:   true,
	}}

	for _, sa := range e.catalog.SpecialAttacks() {
		attacks = append(attacks, Attack{
			ID:          sa.ID,
			Name:        sa.Name,
			Description: sa.Description,
			Damage:      sa.Damage,
			Category:    sa.Category,
			Difficulty:  sa.Difficulty,
			Effect:      entities.SpecOf(sa.Effect),
			Available:   e.quiz.Available(sa.Category),
		})
	}
	return attacks
}

func (e *combatEngine) require(phases ...Phase) (*Encounter, error) {
	if e.active == nil {
		return nil, errors.FailedPrecondition("no active encounter")
	}
	for _, p := range phases {
		if e.active.Phase == p {
			return e.active, nil
		}
	}
	return nil, errors.FailedPreconditionf("action not allowed in phase %s", e.active.Phase)
}

func (e *combatEngine) BasicAttack(ctx context.Context) (*TurnResult, error) {
	enc, err := e.require(PhaseSelectAttack)
	if err != nil {
		return nil, err
	}

	res, mark := e.begin(enc)

	damage, err := e.rng.Between(BasicAttackMin, BasicAttackMax)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll basic attack")
	}
	enc.Turn++

	res.DamageDealt = enc.hitEnemy(damage)
	enc.logf("You deal %d damage to %s!", res.DamageDealt, enc.Enemy.Name)

	if err := e.afterPlayerAction(ctx, enc, res); err != nil {
		return nil, err
	}
	return e.finish(enc, res, mark), nil
}

func (e *combatEngine) SpecialAttack(ctx context.Context, attackID string) (*TurnResult, error) {
	enc, err := e.require(PhaseSelectAttack)
	if err != nil {
		return nil, err
	}

	attack, ok := e.catalog.SpecialAttack(attackID)
	if !ok {
		return nil, errors.NotFoundf("special attack %s not found", attackID)
	}

	q, ok, err := e.quiz.SelectQuestion(attack.Category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to select question")
	}
	if !ok {
		return nil, errors.FailedPreconditionf("no questions left in category %s", attack.Category).
			WithMeta("attack_id", attackID)
	}

	res, mark := e.begin(enc)
	if err := e.pose(enc, q, attack); err != nil {
		return nil, err
	}
	enc.Phase = PhaseAnswerQuestion
	enc.logf("You prepare %s! Answer correctly to strike.", attack.Name)

	slog.Debug("Special attack question posed",
		"encounter_id", enc.ID,
		"attack_id", attack.ID,
		"question_id", q.ID)

	return e.finish(enc, res, mark), nil
}

func (e *combatEngine) pose(enc *Encounter, q *entities.Question, attack *entities.SpecialAttack) error {
	answers, err := e.quiz.Shuffle(q)
	if err != nil {
		return err
	}
	enc.pending = &pendingQuestion{
		question: q,
		answers:  answers,
		attack:   attack,
		defense:  attack == nil,
	}
	enc.Tally.Asked++
	return nil
}

func (e *combatEngine) SubmitAnswer(ctx context.Context, index int) (*TurnResult, error) {
	enc, err := e.require(PhaseAnswerQuestion, PhaseDefendQuestion)
	if err != nil {
		return nil, err
	}

	pending := enc.pending
	if pending == nil {
		return nil, errors.Internal("question phase without a pending question")
	}
	if index < 0 || index >= len(pending.answers) {
		return nil, errors.InvalidArgumentf("answer index %d out of range", index).
			WithMeta("answers", len(pending.answers))
	}

	res, mark := e.begin(enc)
	correct := pending.answers[index].Correct

	answer := e.quiz.SubmitAnswer(ctx, pending.question, correct)
	res.Answer = &answer
	if correct {
		enc.Tally.Correct++
	} else {
		enc.Tally.Wrong++
	}
	enc.pending = nil

	e.runCheckpoint(ctx, res)

	if pending.defense {
		if correct {
			res.Dodged = true
			enc.EnemyDebuff = 0
			enc.Phase = PhaseSelectAttack
			enc.logf("Correct! You dodge the attack from %s.", enc.Enemy.Name)
		} else {
			enc.logf("Wrong! You fail to defend.")
			if err := e.enemyHit(ctx, enc, res); err != nil {
				return nil, err
			}
		}
		return e.finish(enc, res, mark), nil
	}

	enc.Turn++
	if correct {
		if err := e.resolveSpecial(ctx, enc, pending.attack, res); err != nil {
			return nil, err
		}
	} else {
		enc.logf("Wrong answer! Your %s fizzles.", pending.attack.Name)
	}

	if err := e.afterPlayerAction(ctx, enc, res); err != nil {
		return nil, err
	}
	return e.finish(enc, res, mark), nil
}

func (e *combatEngine) resolveSpecial(ctx context.Context, enc *Encounter, attack *entities.SpecialAttack, res *TurnResult) error {
	bonuses := e.inventory.Bonuses()

	variance, err := e.rng.Float(VarianceLow, VarianceHigh)
	if err != nil {
		return errors.Wrap(err, "failed to roll variance")
	}
	raw := float64(bonuses.TotalAttack+attack.Damage) * variance

	crit, err := e.rng.Chance(bonuses.CritChance)
	if err != nil {
		return errors.Wrap(err, "failed to roll crit")
	}
	if crit {
		raw *= CritMultiplier
		res.Critical = true
	}

	switch effect := attack.Effect.(type) {
	case entities.HealEffect:
		healed := e.ledger.Heal(ctx, effect.Value)
		enc.logf("%s restores %d HP!", attack.Name, healed)
	case entities.DebuffEffect:
		enc.DebuffEnemy(ctx, effect.Value)
	case entities.BuffEffect:
		enc.BuffDefense(ctx, effect.Value)
	case entities.DamageEffect:
		raw += float64(effect.Value)
	}

	res.DamageDealt = enc.hitEnemy(int(math.Floor(raw)))
	if res.Critical {
		enc.logf("CRITICAL HIT! You deal %d damage to %s!", res.DamageDealt, enc.Enemy.Name)
	} else {
		enc.logf("You deal %d damage to %s!", res.DamageDealt, enc.Enemy.Name)
	}
	return nil
}

func (e *combatEngine) Flee(ctx context.Context) (*TurnResult, error) {
	enc, err := e.require(PhaseSelectAttack)
	if err != nil {
		return nil, err
	}

	res, mark := e.begin(enc)

	escaped, err := e.rng.Chance(FleeChance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll flee")
	}
	enc.Turn++

	if escaped {
		enc.logf("You successfully fled!")
		e.end(ctx, enc, res, &Outcome{Result: PhaseFled})
		return e.finish(enc, res, mark), nil
	}

	enc.logf("Failed to flee!")
	if err := e.enemyHit(ctx, enc, res); err != nil {
		return nil, err
	}
	return e.finish(enc, res, mark), nil
}

func (e *combatEngine) UseItem(ctx context.Context, itemID string) (*TurnResult, error) {
	enc, err := e.require(PhaseSelectAttack)
	if err != nil {
		return nil, err
	}

	res, mark := e.begin(enc)

	applied, ok := e.inventory.UseItem(ctx, itemID, enc)
	if !ok {
		return nil, errors.FailedPreconditionf("item %s cannot be used now", itemID)
	}

	name := itemID
	if item, found := e.catalog.Item(itemID); found {
		name = item.Name
		if _, heal := item.Effect.(entities.HealEffect); heal {
			enc.logf("Used %s! Restored %d HP.", name, applied)
		}
	}

	slog.Debug("Item used in combat",
		"encounter_id", enc.ID,
		"item_id", itemID,
		"amount", applied)

	if enc.enemyDead() {
		e.victory(ctx, enc, res)
	}
	return e.finish(enc, res, mark), nil
}

func (e *combatEngine) Abort(ctx context.Context) *Outcome {
	enc := e.active
	if enc == nil {
		return nil
	}

	enc.pending = nil
	enc.logf("You left the battle.")
	outcome := &Outcome{Result: PhaseFled, Aborted: true}
	e.end(ctx, enc, &TurnResult{}, outcome)
	return outcome
}

// afterPlayerAction resolves victory or hands the turn to the enemy
func (e *combatEngine) afterPlayerAction(ctx context.Context, enc *Encounter, res *TurnResult) error {
	if enc.enemyDead() {
		e.victory(ctx, enc, res)
		return nil
	}
	return e.enemyTurn(ctx, enc, res)
}

func (e *combatEngine) enemyTurn(ctx context.Context, enc *Encounter, res *TurnResult) error {
	if e.manualDefense {
		q, ok, err := e.quiz.SelectAnyQuestion()
		if err != nil {
			return errors.Wrap(err, "failed to select defense question")
		}
		if ok {
			if err := e.pose(enc, q, nil); err != nil {
				return err
			}
			enc.Phase = PhaseDefendQuestion
			enc.logf("%s attacks! Answer correctly to defend.", enc.Enemy.Name)
			return nil
		}
		slog.Debug("No defense question left, attack lands directly", "encounter_id", enc.ID)
	}

	return e.enemyHit(ctx, enc, res)
}

// enemyHit resolves one enemy attack against the player and consumes the
// pending debuff
func (e *combatEngine) enemyHit(ctx context.Context, enc *Encounter, res *TurnResult) error {
	defense := e.inventory.Bonuses().TotalDefense + enc.DefenseBuff
	base := max(1, enc.Enemy.Stats.Attack+enc.EnemyBuffs.DamageBoost-enc.EnemyDebuff-defense)

	variance, err := e.rng.Float(VarianceLow, VarianceHigh)
	if err != nil {
		return errors.Wrap(err, "failed to roll enemy variance")
	}
	damage := max(1, int(math.Floor(float64(base)*variance)))

	enc.EnemyDebuff = 0
	e.ledger.TakeDamage(ctx, damage)
	res.DamageTaken += damage
	enc.logf("%s deals %d damage to you!", enc.Enemy.Name, damage)

	if e.ledger.IsDead() {
		e.defeat(ctx, enc, res)
		return nil
	}

	enc.Phase = PhaseSelectAttack
	return nil
}

func (e *combatEngine) victory(ctx context.Context, enc *Encounter, res *TurnResult) {
	enc.logf("%s defeated!", enc.Enemy.Name)

	e.ledger.IncrementKills(ctx)
	e.ledger.RecordEnemyDefeated(ctx, enc.Enemy.TemplateID)

	if enc.Enemy.TemplateID == e.finalBossID {
		outcome := &Outcome{Result: PhaseBossVictory}
		outcome.HPRestored = e.ledger.Heal(ctx, e.ledger.Stats().MaxHP)
		e.character.Record.WonPrize = true
		enc.logf("The hoard of %s is broken. The realm's revenue is restored!", enc.Enemy.Name)

		slog.Info("Final boss defeated",
			"character_id", e.character.ID,
			"encounter_id", enc.ID)

		e.end(ctx, enc, res, outcome)
		return
	}

	outcome := &Outcome{Result: PhaseVictory}
	stats := e.ledger.Stats()

	if stats.Level < entities.MaxLevel {
		outcome.XPGained = int(math.Floor(float64(enc.Enemy.Rewards.XP) * enc.RewardMultiplier))
	}
	outcome.GoldGained = int(math.Floor(float64(enc.Enemy.Rewards.Gold) * enc.RewardMultiplier))

	if outcome.XPGained > 0 {
		outcome.LevelsGained = e.ledger.GainXP(ctx, outcome.XPGained)
		enc.logf("You gained %d XP and %d gold!", outcome.XPGained, outcome.GoldGained)
	} else {
		enc.logf("You are at MAX LEVEL (%d)! No more XP can be gained.", entities.MaxLevel)
		enc.logf("You gained %d gold!", outcome.GoldGained)
	}
	e.ledger.AddGold(ctx, outcome.GoldGained)

	outcome.HPRestored = e.ledger.Heal(ctx, e.ledger.Stats().MaxHP)
	if outcome.HPRestored > 0 {
		enc.logf("Victory bonus: you recovered %d HP!", outcome.HPRestored)
	}

	for _, entry := range enc.Enemy.Rewards.Items {
		dropped, err := e.rng.Chance(entry.DropChance())
		if err != nil {
			slog.Warn("Failed to roll loot", "encounter_id", enc.ID, "item_id", entry.ID, "error", err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("loot roll for %s failed", entry.ID))
			continue
		}
		if !dropped {
			continue
		}

		e.inventory.AddItem(ctx, entry.ID, 1)
		drop := LootDrop{ItemID: entry.ID, Name: entry.ID}
		if item, ok := e.catalog.Item(entry.ID); ok {
			drop.Name = item.Name
			drop.Rarity = item.Rarity
		}
		outcome.Loot = append(outcome.Loot, drop)
		enc.logf("%s", lootLine(drop))
	}

	e.end(ctx, enc, res, outcome)
}

func lootLine(drop LootDrop) string {
	switch drop.Rarity {
	case entities.RarityLegendary:
		return fmt.Sprintf("LEGENDARY! You received %s!", drop.Name)
	case entities.RarityEpic:
		return fmt.Sprintf("EPIC! You received %s!", drop.Name)
	case entities.RarityRare:
		return fmt.Sprintf("RARE! You received %s!", drop.Name)
	}
	return fmt.Sprintf("You received %s!", drop.Name)
}

func (e *combatEngine) defeat(ctx context.Context, enc *Encounter, res *TurnResult) {
	enc.logf("You have been defeated!")

	preview := progression.XPLoss(e.ledger.Stats())
	lost := e.ledger.HandleDeath(ctx)
	if lost != preview {
		slog.Warn("Death xp loss differs from preview",
			"character_id", e.character.ID,
			"preview", preview,
			"applied", lost)
	}
	enc.logf("You lost %d XP and were returned to the Guild Hall.", lost)

	e.end(ctx, enc, res, &Outcome{Result: PhaseDefeat, XPLost: lost})
}

// end moves the encounter to its terminal phase and clears it
func (e *combatEngine) end(ctx context.Context, enc *Encounter, res *TurnResult, outcome *Outcome) {
	enc.Phase = outcome.Result
	outcome.EnemyID = enc.Enemy.TemplateID
	outcome.EnemyName = enc.Enemy.Name
	outcome.Turns = enc.Turn
	outcome.Tally = enc.Tally
	res.Outcome = outcome

	e.active = nil

	slog.Info("Encounter ended",
		"character_id", e.character.ID,
		"encounter_id", enc.ID,
		"result", outcome.Result,
		"aborted", outcome.Aborted,
		"turns", enc.Turn)

	engine.Publish(ctx, e.bus, engine.EventEncounterEnded, e.character, &enc.Enemy)
}

func (e *combatEngine) runCheckpoint(ctx context.Context, res *TurnResult) {
	if e.checkpoint == nil {
		return
	}
	if err := e.checkpoint(ctx); err != nil {
		slog.Warn("Checkpoint save failed",
			"character_id", e.character.ID,
			"error", err)
		res.Warnings = append(res.Warnings, fmt.Sprintf("checkpoint save failed: %s", errors.GetMessage(err)))
	}
}

func (e *combatEngine) begin(enc *Encounter) (*TurnResult, int) {
	return &TurnResult{}, len(enc.Log)
}

func (e *combatEngine) finish(enc *Encounter, res *TurnResult, mark int) *TurnResult {
	res.Log = append([]string(nil), enc.Log[mark:]...)
	res.Encounter = enc.snapshot()
	if enc.pending != nil {
		res.Question = enc.pending.present()
	}
	return res
}
