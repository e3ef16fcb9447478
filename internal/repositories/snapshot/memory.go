package snapshot

import (
	"context"
	"sync"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/clock"
)

// MemoryConfig contains configuration for the in-memory repository
type MemoryConfig struct {
	Clock clock.Clock
}

type memoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	clock     clock.Clock
}

var _ Repository = (*memoryRepository)(nil)

// NewMemory creates an in-process repository. Snapshots are stored encoded
// so callers never share state with the store.
func NewMemory(cfg *MemoryConfig) Repository {
	var c clock.Clock
	if cfg != nil {
		c = cfg.Clock
	}
	if c == nil {
		c = clock.New()
	}

	return &memoryRepository{
		snapshots: make(map[string][]byte),
		clock:     c,
	}
}

func (r *memoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	savedAt := r.clock.Now()
	data, err := encode(input.Character, savedAt)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[input.Character.ID] = data

	return &SaveOutput{SavedAt: savedAt}, nil
}

func (r *memoryRepository) Load(_ context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	r.mu.RLock()
	data, ok := r.snapshots[input.CharacterID]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundf("character %s not found", input.CharacterID)
	}

	env, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Character: env.Character, SavedAt: env.SavedAt}, nil
}

func (r *memoryRepository) Clear(_ context.Context, input *ClearInput) (*ClearOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, input.CharacterID)

	return &ClearOutput{}, nil
}

func (r *memoryRepository) ListLeaderboard(
	_ context.Context,
	input *ListLeaderboardInput,
) (*ListLeaderboardOutput, error) {
	metric, limit, err := normalizeLeaderboard(input)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*LeaderboardEntry, 0, len(r.snapshots))
	for _, data := range r.snapshots {
		env, err := decode(data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entryFor(env.Character))
	}

	return &ListLeaderboardOutput{Entries: rank(entries, metric, limit)}, nil
}
