package entities

// TileType classifies map tiles
type TileType string

// Tile types
const (
	TileHub        TileType = "hub"
	TileTown       TileType = "town"
	TileDungeon    TileType = "dungeon"
	TileWilderness TileType = "wilderness"
)

// EncounterEntry is one weighted row of a tile's encounter table
type EncounterEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}

// MapTile is a static map location
type MapTile struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Type           TileType         `json:"type"`
	Description    string           `json:"description"`
	Neighbors      []string         `json:"neighbors"`
	EncounterRate  float64          `json:"encounter_rate"`
	EncounterTable []EncounterEntry `json:"encounter_table"`
}
