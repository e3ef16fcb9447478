package entities

import "time"

// Achievement ids
const (
	AchievementFirstBlood         = "first-blood"
	AchievementTaxRebel           = "tax-rebel"
	AchievementRevenueMaster      = "revenue-master"
	AchievementWealthyEvader      = "wealthy-evader"
	AchievementTaxSlayer          = "tax-slayer"
	AchievementLegendaryCollector = "legendary-collector"
	AchievementExplorer           = "explorer"
	AchievementFullyEquipped      = "fully-equipped"
)

// AchievementDefinition describes an achievement for display
type AchievementDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AchievementDefinitions lists every achievement in display order
var AchievementDefinitions = []AchievementDefinition{
	{ID: AchievementFirstBlood, Name: "First Apprehension", Description: "Apprehend your first tax evader"},
	{ID: AchievementTaxRebel, Name: "MIRA Agent", Description: "Reach Level 5"},
	{ID: AchievementRevenueMaster, Name: "Revenue Master", Description: "Reach Level 10 (MAX)"},
	{ID: AchievementWealthyEvader, Name: "Asset Recovery Specialist", Description: "Recover 1000 gold in evaded taxes"},
	{ID: AchievementTaxSlayer, Name: "Tax Enforcer", Description: "Apprehend 50 tax evaders"},
	{ID: AchievementLegendaryCollector, Name: "Legendary Collector", Description: "Obtain a Legendary item"},
	{ID: AchievementExplorer, Name: "Field Agent", Description: "Visit 10 different locations"},
	{ID: AchievementFullyEquipped, Name: "Fully Equipped", Description: "Equip weapon and armor"},
}

// AchievementState is the per-character unlock flag
type AchievementState struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// NewAchievementStates returns every achievement locked
func NewAchievementStates() []AchievementState {
	states := make([]AchievementState, 0, len(AchievementDefinitions))
	for _, def := range AchievementDefinitions {
		states = append(states, AchievementState{ID: def.ID})
	}
	return states
}

// FindAchievementDefinition looks up display data by id
func FindAchievementDefinition(id string) (AchievementDefinition, bool) {
	for _, def := range AchievementDefinitions {
		if def.ID == id {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}
