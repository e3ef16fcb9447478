package world_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/world"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type WorldTestSuite struct {
	suite.Suite
	ctx       context.Context
	catalog   *content.Catalog
	character *entities.Character
}

func TestWorldTestSuite(t *testing.T) {
	suite.Run(t, new(WorldTestSuite))
}

func (s *WorldTestSuite) SetupSuite() {
	s.catalog = testutils.LoadCatalog(s.T())
}

func (s *WorldTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.character = testutils.NewTestCharacter("char_1")
}

func (s *WorldTestSuite) newWorld(roller dice.Roller) world.World {
	w, err := world.New(&world.Config{
		Character: s.character,
		Catalog:   s.catalog,
		Roller:    roller,
	})
	s.Require().NoError(err)
	return w
}

func (s *WorldTestSuite) TestMoveTo() {
	w := s.newWorld(nil)

	tile, err := w.MoveTo(s.ctx, "city-gates")
	s.Require().NoError(err)
	s.Equal("city-gates", tile.ID)
	s.Equal("city-gates", s.character.Location)
	s.True(s.character.HasVisited("city-gates"))

	_, err = w.MoveTo(s.ctx, "guild-hall")
	s.Require().NoError(err)
	_, err = w.MoveTo(s.ctx, "city-gates")
	s.Require().NoError(err)
	s.Len(s.character.LocationsVisited, 2)
}

func (s *WorldTestSuite) TestMoveToErrors() {
	w := s.newWorld(nil)

	_, err := w.MoveTo(s.ctx, "atlantis")
	s.True(errors.IsNotFound(err))

	_, err = w.MoveTo(s.ctx, "dragons-vault")
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(entities.HomeLocation, s.character.Location)
}

func (s *WorldTestSuite) TestTakeStepUnlocksNeighborsWhenExplored() {
	w := s.newWorld(&testutils.FixedRoller{Value: testutils.MaxRoll})
	_, err := w.MoveTo(s.ctx, "city-gates")
	s.Require().NoError(err)

	for i := 1; i < entities.ExploredSteps; i++ {
		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Equal(i, res.Progress)
		s.False(res.Explored)
		s.Empty(res.Unlocked)
	}
	s.False(s.character.World.IsUnlocked("old-market-road"))

	res, err := w.TakeStep(s.ctx)
	s.Require().NoError(err)
	s.True(res.Explored)
	s.Equal([]string{"old-market-road"}, res.Unlocked)
	s.True(s.character.World.IsUnlocked("old-market-road"))

	res, err = w.TakeStep(s.ctx)
	s.Require().NoError(err)
	s.Equal(entities.ExploredSteps, res.Progress)
	s.Empty(res.Unlocked)
}

func (s *WorldTestSuite) TestTakeStepEncounters() {
	s.Run("safe hub never rolls", func() {
		s.SetupTest()
		roller := testutils.NewScriptedRoller()
		w := s.newWorld(roller)

		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Empty(res.EnemyID)
		s.Empty(roller.Sizes)
	})

	s.Run("min roll hits and picks the first entry", func() {
		s.SetupTest()
		w := s.newWorld(&testutils.FixedRoller{Value: 1})
		_, err := w.MoveTo(s.ctx, "merchants-row")
		s.Require().NoError(err)

		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Equal("shady-shopkeeper", res.EnemyID)
	})

	s.Run("weighted pick", func() {
		s.SetupTest()
		// chance roll 1 hits, weight roll 9 of 10 lands in smuggler
		roller := testutils.NewScriptedRoller(1, 9)
		w := s.newWorld(roller)
		_, err := w.MoveTo(s.ctx, "merchants-row")
		s.Require().NoError(err)

		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Equal("smuggler", res.EnemyID)
		s.Equal([]int{1_000_000, 10}, roller.Sizes)
	})

	s.Run("max roll misses", func() {
		s.SetupTest()
		w := s.newWorld(&testutils.FixedRoller{Value: testutils.MaxRoll})
		_, err := w.MoveTo(s.ctx, "merchants-row")
		s.Require().NoError(err)

		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Empty(res.EnemyID)
	})

	s.Run("vault always spawns the dragon", func() {
		s.SetupTest()
		s.character.World.Unlock("dragons-vault")
		w := s.newWorld(&testutils.FixedRoller{Value: testutils.MaxRoll})
		_, err := w.MoveTo(s.ctx, "dragons-vault")
		s.Require().NoError(err)

		res, err := w.TakeStep(s.ctx)
		s.Require().NoError(err)
		s.Equal("arim", res.EnemyID)
	})
}

func (s *WorldTestSuite) TestMap() {
	w := s.newWorld(nil)

	views := w.Map()
	s.Len(views, len(s.catalog.Tiles()))

	for _, v := range views {
		switch v.Tile.ID {
		case entities.HomeLocation:
			s.True(v.Current)
			s.True(v.Visited)
			s.True(v.Unlocked)
		case "dragons-vault":
			s.False(v.Unlocked)
		}
	}
}

func (s *WorldTestSuite) TestCurrentUnknownLocation() {
	s.character.Location = "nowhere"
	w := s.newWorld(nil)

	_, err := w.Current()
	s.True(errors.IsNotFound(err))

	_, err = w.TakeStep(s.ctx)
	s.True(errors.IsNotFound(err))
}
