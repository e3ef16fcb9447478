// Package srd imports SRD weapons and armor from the dnd5e-api as market items
package srd

//go:generate mockgen -destination=mock/mock_importer.go -package=srdmock github.com/KirkDiggler/legends-of-revenue/internal/clients/srd Importer

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apientities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// IDPrefix marks every imported item id
const IDPrefix = "srd-"

// FinesseCritChance is granted to weapons with the finesse property
const FinesseCritChance = 0.1

// DefaultCategories are the SRD equipment categories imported when none are
// configured
var DefaultCategories = []string{
	"simple-weapons",
	"martial-weapons",
	"light-armor",
	"medium-armor",
	"heavy-armor",
}

var dicePattern = regexp.MustCompile(`^(\d+)d(\d+)`)

// Source is the slice of the dnd5e-api client the importer reads from
type Source interface {
	GetEquipmentCategory(key string) (*apientities.EquipmentCategory, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Importer converts SRD equipment into item definitions
type Importer interface {
	// Import fetches every configured category. Items that cannot be
	// converted are reported in Skipped rather than failing the import.
	Import(ctx context.Context) (*ImportOutput, error)
}

// ImportOutput defines the output of an import
type ImportOutput struct {
	Items   []*entities.ItemDefinition
	Skipped []string
}

// Config contains configuration options for the importer
type Config struct {
	// Source overrides the dnd5e-api client, mainly for tests
	Source Source
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Categories to import (optional, defaults to DefaultCategories)
	Categories []string
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories
	}
	return nil
}

type importer struct {
	source     Source
	categories []string
}

var _ Importer = (*importer)(nil)

// New creates an importer backed by the cached dnd5e-api client
func New(cfg *Config) (Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	source := cfg.Source
	if source == nil {
		baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
			Client:  &http.Client{Timeout: cfg.HTTPTimeout},
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create D&D 5e API client")
		}
		source = dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)
	}

	return &importer{
		source:     source,
		categories: cfg.Categories,
	}, nil
}

func (i *importer) Import(ctx context.Context) (*ImportOutput, error) {
	out := &ImportOutput{}
	seen := make(map[string]bool)

	for _, category := range i.categories {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "import cancelled")
		}

		equipmentCategory, err := i.source.GetEquipmentCategory(category)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get equipment category %s", category)
		}

		refs := make([]*apientities.ReferenceItem, 0, len(equipmentCategory.Equipment))
		for _, ref := range equipmentCategory.Equipment {
			if ref == nil || seen[ref.Key] {
				continue
			}
			seen[ref.Key] = true
			refs = append(refs, ref)
		}

		loaded, err := i.loadDetails(refs)
		if err != nil {
			return nil, err
		}

		for idx, equipment := range loaded {
			item, ok := ConvertEquipment(equipment)
			if !ok {
				out.Skipped = append(out.Skipped, refs[idx].Key)
				continue
			}
			out.Items = append(out.Items, item)
		}

		slog.Info("Imported SRD equipment category",
			"category", category,
			"count", len(loaded))
	}

	return out, nil
}

// loadDetails fetches equipment details concurrently, keeping ref order
func (i *importer) loadDetails(refs []*apientities.ReferenceItem) ([]dnd5e.EquipmentInterface, error) {
	equipment := make([]dnd5e.EquipmentInterface, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for idx, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()

			item, err := i.source.GetEquipment(key)
			if err != nil {
				slog.Error("Failed to get equipment details", "equipment", key, "error", err)
				errChan <- errors.Wrapf(err, "failed to get equipment %s", key)
				return
			}
			equipment[idx] = item
		}(idx, ref.Key)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return equipment, nil
}

// ConvertEquipment maps one SRD weapon or armor onto an item definition.
// Anything else, and weapons without damage dice, are rejected.
func ConvertEquipment(equipment dnd5e.EquipmentInterface) (*entities.ItemDefinition, bool) {
	switch eq := equipment.(type) {
	case *apientities.Weapon:
		if eq == nil || eq.Damage == nil {
			return nil, false
		}
		attack, ok := diceAttack(eq.Damage.DamageDice)
		if !ok {
			return nil, false
		}

		stats := &entities.ItemStats{Attack: attack}
		for _, prop := range eq.Properties {
			if prop != nil && (prop.Key == "finesse" || strings.EqualFold(prop.Name, "finesse")) {
				stats.CritChance = FinesseCritChance
			}
		}

		return &entities.ItemDefinition{
			ID:          IDPrefix + eq.Key,
			Name:        eq.Name,
			Category:    entities.CategoryWeapon,
			Rarity:      rarityFor(eq.Cost),
			Stats:       stats,
			Shop:        true,
			Description: weaponDescription(eq),
		}, true

	case *apientities.Armor:
		if eq == nil || eq.ArmorClass == nil {
			return nil, false
		}

		return &entities.ItemDefinition{
			ID:          IDPrefix + eq.Key,
			Name:        eq.Name,
			Category:    entities.CategoryArmor,
			Rarity:      rarityFor(eq.Cost),
			Stats:       &entities.ItemStats{Defense: max(1, eq.ArmorClass.Base-10)},
			Shop:        true,
			Description: fmt.Sprintf("%s armor, base AC %d", eq.ArmorCategory, eq.ArmorClass.Base),
		}, true
	}

	return nil, false
}

// diceAttack is half the maximum roll of an XdY expression
func diceAttack(expr string) (int, bool) {
	m := dicePattern.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return 0, false
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	size, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return count * size / 2, true
}

// goldValue converts an SRD cost to gold pieces
func goldValue(cost *apientities.Cost) float64 {
	if cost == nil {
		return 0
	}
	q := float64(cost.Quantity)
	switch strings.ToLower(cost.Unit) {
	case "cp":
		return q / 100
	case "sp":
		return q / 10
	case "ep":
		return q / 2
	case "pp":
		return q * 10
	default:
		return q
	}
}

func rarityFor(cost *apientities.Cost) entities.Rarity {
	gp := goldValue(cost)
	switch {
	case gp < 10:
		return entities.RarityCommon
	case gp < 50:
		return entities.RarityUncommon
	case gp < 500:
		return entities.RarityRare
	default:
		return entities.RarityEpic
	}
}

func weaponDescription(w *apientities.Weapon) string {
	desc := fmt.Sprintf("%s %s weapon, %s", w.WeaponCategory, w.WeaponRange, w.Damage.DamageDice)
	if w.Damage.DamageType != nil && w.Damage.DamageType.Name != "" {
		desc += " " + strings.ToLower(w.Damage.DamageType.Name)
	}
	return desc
}
