package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
)

// FixedTime is the instant used by fixtures
var FixedTime = time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

// TestCharacterName is the default character name for fixtures
const TestCharacterName = "Aisha Rasheed"

// NewTestCharacter returns a fresh level 1 character
func NewTestCharacter(id string) *entities.Character {
	return entities.NewCharacter(id, TestCharacterName, FixedTime)
}

// LoadCatalog loads the embedded content or fails the test
func LoadCatalog(t *testing.T) *content.Catalog {
	catalog, err := content.Load()
	require.NoError(t, err, "failed to load embedded content")
	return catalog
}

// Float returns a pointer to f, for loot chances
func Float(f float64) *float64 {
	return &f
}
