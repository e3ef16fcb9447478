// Package game implements the game orchestrator: one session per character,
// owning that character's engines and persisting after every change
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/legends-of-revenue/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/achievements"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/combat"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/inventory"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/market"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/progression"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/quiz"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/world"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/idgen"
	"github.com/KirkDiggler/legends-of-revenue/internal/repositories/snapshot"
)

// MinNameLength is the shortest accepted character name
const MinNameLength = 3

// Service defines the interface for game operations
type Service interface {
	// Character lifecycle
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	// LoadCharacter replaces any open session with the stored character
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ResetCharacter(ctx context.Context, input *ResetCharacterInput) (*ResetCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	// EndSession records the finished game and closes the session
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Combat
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
	ListAttacks(ctx context.Context, input *ListAttacksInput) (*ListAttacksOutput, error)
	BasicAttack(ctx context.Context, input *BasicAttackInput) (*BasicAttackOutput, error)
	SpecialAttack(ctx context.Context, input *SpecialAttackInput) (*SpecialAttackOutput, error)
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)

	// Items and market
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)
	ListMarket(ctx context.Context, input *ListMarketInput) (*ListMarketOutput, error)
	BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error)
	SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error)

	// World
	GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error)
	MoveTo(ctx context.Context, input *MoveToInput) (*MoveToOutput, error)
	TakeStep(ctx context.Context, input *TakeStepInput) (*TakeStepOutput, error)

	// Achievements and rankings
	DismissAchievement(ctx context.Context, input *DismissAchievementInput) (*DismissAchievementOutput, error)
	ListLeaderboard(ctx context.Context, input *ListLeaderboardInput) (*ListLeaderboardOutput, error)
	GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error)
}

// Catalog is the static content every session engine reads
type Catalog interface {
	combat.Catalog
	quiz.Bank
	world.TileCatalog
	market.Catalog
	Enemies() []*entities.EnemyTemplate
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Repository    snapshot.Repository
	Catalog       Catalog
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Roller        dice.Roller
	ManualDefense bool
	FinalBossID   string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	repo          snapshot.Repository
	catalog       Catalog
	idGen         idgen.Generator
	clock         clock.Clock
	roller        dice.Roller
	manualDefense bool
	finalBossID   string

	mu       sync.RWMutex
	sessions map[string]*session
}

// session owns one character and the engines built over it. Its mutex
// serializes every operation on that character.
type session struct {
	mu sync.Mutex

	// closed is set once the session is ended, replaced or deleted. A
	// caller that was waiting on mu must not touch it afterwards.
	closed  bool
	deleted bool

	character    *entities.Character
	bus          events.EventBus
	ledger       progression.Ledger
	inventory    inventory.Manager
	quiz         quiz.Selector
	combat       combat.Engine
	achievements achievements.Evaluator
	world        world.World
	market       market.Market
}

var _ Service = (*orchestrator)(nil)

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("char")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &orchestrator{
		repo:          cfg.Repository,
		catalog:       cfg.Catalog,
		idGen:         idGen,
		clock:         c,
		roller:        roller,
		manualDefense: cfg.ManualDefense,
		finalBossID:   cfg.FinalBossID,
		sessions:      make(map[string]*session),
	}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateMinLength("name", name, MinNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	character := entities.NewCharacter(o.idGen.Generate(), name, o.clock.Now())
	sess, err := o.newSession(ctx, character)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	o.mu.Lock()
	o.sessions[character.ID] = sess
	o.mu.Unlock()

	slog.Info("Character created",
		"character_id", character.ID,
		"name", name)

	warnings := o.persist(ctx, sess)
	return &CreateCharacterOutput{Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	sess, err := o.load(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	previous := o.sessions[input.CharacterID]
	o.sessions[input.CharacterID] = sess
	o.mu.Unlock()

	if previous != nil {
		o.closeSession(ctx, previous)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &LoadCharacterOutput{Character: o.state(sess)}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &GetCharacterOutput{Character: o.state(sess)}, nil
}

func (o *orchestrator) ResetCharacter(ctx context.Context, input *ResetCharacterInput) (*ResetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.combat.Abort(ctx)

	// The engines hold the character pointer, so the fresh state is copied
	// into it rather than swapped.
	old := sess.character
	fresh := entities.NewCharacter(old.ID, old.Name, old.CreatedAt)
	fresh.Record = old.Record
	*sess.character = *fresh
	sess.achievements.Reset()

	slog.Info("Character reset", "character_id", old.ID)

	warnings := o.persist(ctx, sess)
	return &ResetCharacterOutput{Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	// The session stays registered and locked until the store is cleared,
	// so concurrent callers wait and then see it deleted.
	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		sess = nil
	} else {
		defer sess.mu.Unlock()
		sess.close(ctx)
	}

	_, clearErr := o.repo.Clear(ctx, &snapshot.ClearInput{CharacterID: input.CharacterID})

	if sess != nil {
		sess.deleted = clearErr == nil
		o.mu.Lock()
		if o.sessions[input.CharacterID] == sess {
			delete(o.sessions, input.CharacterID)
		}
		o.mu.Unlock()
	}

	if clearErr != nil {
		return nil, errors.Wrapf(clearErr, "failed to delete character %s", input.CharacterID)
	}

	slog.Info("Character deleted", "character_id", input.CharacterID)

	return &DeleteCharacterOutput{}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	o.mu.Lock()
	if o.sessions[input.CharacterID] == sess {
		delete(o.sessions, input.CharacterID)
	}
	o.mu.Unlock()

	sess.combat.Abort(ctx)

	c := sess.character
	now := o.clock.Now()
	c.Record.TotalGamesPlayed++
	c.Record.HighestScore = max(c.Record.HighestScore, c.QuestionHistory.TotalPoints)
	c.Record.LastPlayed = &now

	warnings := o.persist(ctx, sess)
	sess.close(ctx)

	slog.Info("Session ended",
		"character_id", c.ID,
		"games_played", c.Record.TotalGamesPlayed,
		"highest_score", c.Record.HighestScore)

	return &EndSessionOutput{Record: c.Record, Warnings: warnings}, nil
}

func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	enc, err := sess.combat.Start(ctx, input.EnemyID)
	if err != nil {
		return nil, err
	}

	return &StartEncounterOutput{Encounter: enc}, nil
}

func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &GetEncounterOutput{Encounter: sess.combat.Active()}, nil
}

func (o *orchestrator) ListAttacks(ctx context.Context, input *ListAttacksInput) (*ListAttacksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &ListAttacksOutput{Attacks: sess.combat.Attacks()}, nil
}

func (o *orchestrator) BasicAttack(ctx context.Context, input *BasicAttackInput) (*BasicAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	turn, err := sess.combat.BasicAttack(ctx)
	if err != nil {
		return nil, err
	}

	warnings := joinWarnings(turn.Warnings, o.persist(ctx, sess))
	return &BasicAttackOutput{Turn: turn, Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) SpecialAttack(ctx context.Context, input *SpecialAttackInput) (*SpecialAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument("attack ID is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	// Posing a question changes nothing persisted
	turn, err := sess.combat.SpecialAttack(ctx, input.AttackID)
	if err != nil {
		return nil, err
	}

	return &SpecialAttackOutput{Turn: turn}, nil
}

func (o *orchestrator) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	// The engine checkpoints the score before any damage; this save covers
	// what the turn changed afterwards.
	turn, err := sess.combat.SubmitAnswer(ctx, input.AnswerIndex)
	if err != nil {
		return nil, err
	}

	warnings := joinWarnings(turn.Warnings, o.persist(ctx, sess))
	return &SubmitAnswerOutput{Turn: turn, Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	turn, err := sess.combat.Flee(ctx)
	if err != nil {
		return nil, err
	}

	warnings := joinWarnings(turn.Warnings, o.persist(ctx, sess))
	return &FleeOutput{Turn: turn, Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	out := &UseItemOutput{}
	if sess.combat.Active() != nil {
		turn, err := sess.combat.UseItem(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		out.Used = true
		out.Turn = turn
		out.Warnings = joinWarnings(turn.Warnings)
	} else {
		out.Amount, out.Used = sess.inventory.UseItem(ctx, input.ItemID, nil)
	}

	if out.Used {
		out.Warnings = joinWarnings(out.Warnings, o.persist(ctx, sess))
	}
	out.Character = o.state(sess)

	return out, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := requireIdle(sess); err != nil {
		return nil, err
	}

	out := &EquipItemOutput{Equipped: sess.inventory.EquipItem(ctx, input.ItemID, input.Slot)}
	if out.Equipped {
		out.Warnings = o.persist(ctx, sess)
	}
	out.Character = o.state(sess)

	return out, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := requireIdle(sess); err != nil {
		return nil, err
	}

	sess.inventory.UnequipItem(ctx, input.Slot)
	warnings := o.persist(ctx, sess)

	return &UnequipItemOutput{Character: o.state(sess), Warnings: warnings}, nil
}

func (o *orchestrator) ListMarket(ctx context.Context, input *ListMarketInput) (*ListMarketOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &ListMarketOutput{
		Listings: sess.market.List(),
		Gold:     sess.character.Stats.Gold,
	}, nil
}

func (o *orchestrator) BuyItem(ctx context.Context, input *BuyItemInput) (*BuyItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := requireIdle(sess); err != nil {
		return nil, err
	}

	trade, err := sess.market.Buy(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	out := &BuyItemOutput{Trade: trade}
	if trade.OK {
		out.Warnings = o.persist(ctx, sess)
	}
	return out, nil
}

func (o *orchestrator) SellItem(ctx context.Context, input *SellItemInput) (*SellItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := requireIdle(sess); err != nil {
		return nil, err
	}

	trade, err := sess.market.Sell(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}

	out := &SellItemOutput{Trade: trade}
	if trade.OK {
		out.Warnings = o.persist(ctx, sess)
	}
	return out, nil
}

func (o *orchestrator) GetMap(ctx context.Context, input *GetMapInput) (*GetMapOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &GetMapOutput{Tiles: sess.world.Map()}, nil
}

func (o *orchestrator) MoveTo(ctx context.Context, input *MoveToInput) (*MoveToOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TileID == "" {
		return nil, errors.InvalidArgument("tile ID is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	tile, err := sess.world.MoveTo(ctx, input.TileID)
	if err != nil {
		return nil, err
	}

	// Leaving abandons the fight; effects already applied stay
	out := &MoveToOutput{Tile: tile, Aborted: sess.combat.Abort(ctx)}
	out.Warnings = o.persist(ctx, sess)

	return out, nil
}

func (o *orchestrator) TakeStep(ctx context.Context, input *TakeStepInput) (*TakeStepOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	if err := requireIdle(sess); err != nil {
		return nil, err
	}

	step, err := sess.world.TakeStep(ctx)
	if err != nil {
		return nil, err
	}

	out := &TakeStepOutput{Step: step}
	if step.EnemyID != "" {
		enc, err := sess.combat.Start(ctx, step.EnemyID)
		if err != nil {
			return nil, err
		}
		out.Encounter = enc
	}
	out.Warnings = o.persist(ctx, sess)

	return out, nil
}

func (o *orchestrator) DismissAchievement(ctx context.Context, input *DismissAchievementInput) (*DismissAchievementOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	sess.achievements.Dismiss()

	return &DismissAchievementOutput{}, nil
}

func (o *orchestrator) ListLeaderboard(ctx context.Context, input *ListLeaderboardInput) (*ListLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := o.repo.ListLeaderboard(ctx, &snapshot.ListLeaderboardInput{
		SortBy: input.SortBy,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListLeaderboardOutput{Entries: result.Entries}, nil
}

func (o *orchestrator) GetStatistics(ctx context.Context, input *GetStatisticsInput) (*GetStatisticsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.acquire(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	c := sess.character
	h := c.QuestionHistory
	stats := &Statistics{
		QuestionsAnswered: h.CorrectAnswers + h.WrongAnswers,
		CorrectAnswers:    h.CorrectAnswers,
		WrongAnswers:      h.WrongAnswers,
		TotalPoints:       h.TotalPoints,
		Score:             snapshot.Score(c),
		EnemiesKilled:     c.EnemiesKilled,
		EnemiesDiscovered: len(c.DefeatedEnemyTypes),
		EnemiesTotal:      len(o.catalog.Enemies()),
		LocationsVisited:  len(c.LocationsVisited),
		LocationsTotal:    len(o.catalog.Tiles()),
		AchievementsTotal: len(c.Achievements),
		Record:            c.Record,
	}
	if stats.QuestionsAnswered > 0 {
		stats.Accuracy = float64(h.CorrectAnswers) / float64(stats.QuestionsAnswered)
	}
	for _, progress := range c.World.LocationProgress {
		if progress >= entities.ExploredSteps {
			stats.LocationsExplored++
		}
	}
	for _, a := range c.Achievements {
		if a.Unlocked {
			stats.AchievementsUnlocked++
		}
	}

	return &GetStatisticsOutput{Statistics: stats}, nil
}

// session returns the open session for id, loading it from the store on
// first use
func (o *orchestrator) session(ctx context.Context, id string) (*session, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	o.mu.RLock()
	sess, ok := o.sessions[id]
	o.mu.RUnlock()
	if ok {
		return sess, nil
	}

	loaded, err := o.load(ctx, id)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	// Another caller may have opened it while we were loading
	if existing, ok := o.sessions[id]; ok {
		loaded.achievements.Close()
		return existing, nil
	}
	o.sessions[id] = loaded

	return loaded, nil
}

// acquire returns the open session for id with its mutex held. A session
// that closed while the caller waited is looked up again, unless its
// character was deleted.
func (o *orchestrator) acquire(ctx context.Context, id string) (*session, error) {
	for {
		sess, err := o.session(ctx, id)
		if err != nil {
			return nil, err
		}

		sess.mu.Lock()
		if !sess.closed {
			return sess, nil
		}
		deleted := sess.deleted
		sess.mu.Unlock()

		if deleted {
			return nil, errors.NotFoundf("character %s not found", id)
		}
	}
}

func (o *orchestrator) load(ctx context.Context, id string) (*session, error) {
	result, err := o.repo.Load(ctx, &snapshot.LoadInput{CharacterID: id})
	if err != nil {
		return nil, err
	}

	slog.Info("Character loaded",
		"character_id", id,
		"saved_at", result.SavedAt)

	return o.newSession(ctx, result.Character)
}

// newSession wires every engine over character on a fresh event bus
func (o *orchestrator) newSession(ctx context.Context, character *entities.Character) (*session, error) {
	sess := &session{
		character: character,
		bus:       engine.NewBus(),
	}

	var err error
	sess.ledger, err = progression.New(&progression.Config{
		Character: character,
		EventBus:  sess.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ledger")
	}

	sess.inventory, err = inventory.New(&inventory.Config{
		Character: character,
		Catalog:   o.catalog,
		Ledger:    sess.ledger,
		EventBus:  sess.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory")
	}

	sess.quiz, err = quiz.New(&quiz.Config{
		Character: character,
		Bank:      o.catalog,
		Roller:    o.roller,
		EventBus:  sess.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quiz selector")
	}

	sess.combat, err = combat.New(&combat.Config{
		Character:     character,
		Catalog:       o.catalog,
		Ledger:        sess.ledger,
		Inventory:     sess.inventory,
		Quiz:          sess.quiz,
		Roller:        o.roller,
		EventBus:      sess.bus,
		Checkpoint:    func(ctx context.Context) error { return o.save(ctx, sess) },
		ManualDefense: o.manualDefense,
		FinalBossID:   o.finalBossID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat engine")
	}

	sess.world, err = world.New(&world.Config{
		Character: character,
		Catalog:   o.catalog,
		Roller:    o.roller,
		EventBus:  sess.bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create world")
	}

	sess.market, err = market.New(&market.Config{
		Catalog:   o.catalog,
		Ledger:    sess.ledger,
		Inventory: sess.inventory,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create market")
	}

	sess.achievements, err = achievements.New(&achievements.Config{
		Character: character,
		EventBus:  sess.bus,
		Clock:     o.clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create achievement evaluator")
	}

	// Snapshots from older builds may predate some achievements
	sess.achievements.Evaluate(ctx)

	return sess, nil
}

func (o *orchestrator) closeSession(ctx context.Context, sess *session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.close(ctx)
}

// close aborts any encounter and detaches the session. The caller holds mu.
func (s *session) close(ctx context.Context) {
	s.closed = true
	s.combat.Abort(ctx)
	s.achievements.Close()
}

func (o *orchestrator) save(ctx context.Context, sess *session) error {
	sess.character.UpdatedAt = o.clock.Now()
	_, err := o.repo.Save(ctx, &snapshot.SaveInput{Character: sess.character})
	return err
}

// persist saves the session and turns a failure into a warning. State is
// never rolled back.
func (o *orchestrator) persist(ctx context.Context, sess *session) []string {
	if err := o.save(ctx, sess); err != nil {
		slog.Warn("Failed to save character",
			"character_id", sess.character.ID,
			"error", err)
		return []string{"save failed: " + errors.GetMessage(err)}
	}
	return nil
}

func (o *orchestrator) state(sess *session) *CharacterState {
	st := &CharacterState{
		Character: sess.character.Clone(),
		Bonuses:   sess.inventory.Bonuses(),
		InCombat:  sess.combat.Active() != nil,
	}
	if recent, ok := sess.achievements.RecentUnlock(); ok {
		st.RecentUnlock = recent
	}
	return st
}

func requireIdle(sess *session) error {
	if sess.combat.Active() != nil {
		return errors.FailedPrecondition("not allowed during an encounter")
	}
	return nil
}

func joinWarnings(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
