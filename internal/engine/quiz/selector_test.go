package quiz_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/legends-of-revenue/internal/content"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/engine/quiz"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/testutils"
)

type SelectorTestSuite struct {
	suite.Suite
	ctx       context.Context
	catalog   *content.Catalog
	character *entities.Character
	roller    *testutils.FixedRoller
	bus       events.EventBus
	selector  quiz.Selector
}

func TestSelectorTestSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) SetupSuite() {
	s.catalog = testutils.LoadCatalog(s.T())
}

func (s *SelectorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.character = testutils.NewTestCharacter("char_1")
	s.roller = &testutils.FixedRoller{Value: 1}
	s.bus = engine.NewBus()

	sel, err := quiz.New(&quiz.Config{
		Character: s.character,
		Bank:      s.catalog,
		Roller:    s.roller,
		EventBus:  s.bus,
	})
	s.Require().NoError(err)
	s.selector = sel
}

func (s *SelectorTestSuite) TestNewValidation() {
	_, err := quiz.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = quiz.New(&quiz.Config{Bank: s.catalog})
	s.Error(err)
	s.Contains(err.Error(), "Character")
}

func (s *SelectorTestSuite) TestSelectQuestionSkipsAnswered() {
	s.character.QuestionHistory.MarkAnswered("gst-basics-1")
	s.character.QuestionHistory.MarkAnswered("gst-basics-2")

	q, ok, err := s.selector.SelectQuestion("gst_basics")
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal("gst-basics-3", q.ID)
}

func (s *SelectorTestSuite) TestSelectQuestionExhausted() {
	for _, q := range s.catalog.QuestionsIn("mira_services") {
		s.character.QuestionHistory.MarkAnswered(q.ID)
	}

	s.False(s.selector.Available("mira_services"))

	q, ok, err := s.selector.SelectQuestion("mira_services")
	s.NoError(err)
	s.False(ok)
	s.Nil(q)
}

func (s *SelectorTestSuite) TestSelectQuestionUnknownCategory() {
	_, ok, err := s.selector.SelectQuestion("customs")
	s.NoError(err)
	s.False(ok)
}

func (s *SelectorTestSuite) TestSelectAnyQuestionSkipsExhaustedCategories() {
	// the first sorted category is exhausted so index 0 lands on the next
	categories := s.catalog.Categories()
	s.Require().NotEmpty(categories)
	for _, q := range s.catalog.QuestionsIn(categories[0]) {
		s.character.QuestionHistory.MarkAnswered(q.ID)
	}

	q, ok, err := s.selector.SelectAnyQuestion()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(categories[1], q.Category)
}

func (s *SelectorTestSuite) TestSelectAnyQuestionAllExhausted() {
	for _, category := range s.catalog.Categories() {
		for _, q := range s.catalog.QuestionsIn(category) {
			s.character.QuestionHistory.MarkAnswered(q.ID)
		}
	}

	_, ok, err := s.selector.SelectAnyQuestion()
	s.NoError(err)
	s.False(ok)
}

func (s *SelectorTestSuite) TestShuffleKeepsAnswers() {
	q, ok := s.catalog.Question("gst-basics-1")
	s.Require().True(ok)

	shuffled, err := s.selector.Shuffle(q)
	s.Require().NoError(err)
	s.ElementsMatch(q.Answers, shuffled)

	// the min roller swaps every element with index 0, rotating the list
	s.Equal(q.Answers[1], shuffled[0])
	s.Equal(q.Answers[0], shuffled[len(shuffled)-1])
	s.True(q.Answers[0].Correct, "catalog order must be untouched")
}

func (s *SelectorTestSuite) TestSubmitCorrectAnswer() {
	q, _ := s.catalog.Question("gst-basics-5")

	result := s.selector.SubmitAnswer(s.ctx, q, true)

	s.True(result.Correct)
	s.False(result.Duplicate)
	s.Equal(20, result.PointsDelta)
	s.Equal(20, result.TotalPoints)

	h := s.selector.History()
	s.Equal(1, h.CorrectAnswers)
	s.True(h.HasAnswered("gst-basics-5"))
}

func (s *SelectorTestSuite) TestSubmitWrongAnswerGoesNegative() {
	q, _ := s.catalog.Question("compliance-5")

	result := s.selector.SubmitAnswer(s.ctx, q, false)

	s.False(result.Correct)
	s.Equal(-6, result.PointsDelta)
	s.Equal(-6, result.TotalPoints)

	h := s.selector.History()
	s.Equal(1, h.WrongAnswers)
	s.False(h.HasAnswered("compliance-5"))
	s.True(s.selector.Available("compliance"))
}

func (s *SelectorTestSuite) TestSubmitDuplicateCorrectAnswer() {
	q, _ := s.catalog.Question("filing-1")

	first := s.selector.SubmitAnswer(s.ctx, q, true)
	second := s.selector.SubmitAnswer(s.ctx, q, true)

	s.Equal(15, first.PointsDelta)
	s.True(second.Duplicate)
	s.Equal(0, second.PointsDelta)
	s.Equal(15, second.TotalPoints)
	s.Equal(1, s.selector.History().CorrectAnswers)
	s.Len(s.selector.History().AnsweredQuestionIDs, 1)
}

func (s *SelectorTestSuite) TestSubmitPublishesEvent() {
	var seen int
	s.bus.SubscribeFunc(engine.EventQuestionAnswered, 0, func(_ context.Context, _ events.Event) error {
		seen++
		return nil
	})

	q, _ := s.catalog.Question("input-tax-4")
	s.selector.SubmitAnswer(s.ctx, q, true)
	s.selector.SubmitAnswer(s.ctx, q, false)

	s.Equal(2, seen)
}
