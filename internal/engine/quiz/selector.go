// Package quiz selects unanswered questions for a character and keeps
// the character's quiz ledger.
package quiz

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/legends-of-revenue/internal/engine"
	"github.com/KirkDiggler/legends-of-revenue/internal/entities"
	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
	"github.com/KirkDiggler/legends-of-revenue/internal/pkg/rng"
)

// WrongAnswerPenalty is the share of a question's points lost on a miss
const WrongAnswerPenalty = 0.25

// Bank is the static question catalog grouped by category
type Bank interface {
	Categories() []string
	QuestionsIn(category string) []*entities.Question
}

// AnswerResult is the outcome of scoring one answer
type AnswerResult struct {
	QuestionID  string `json:"question_id"`
	Correct     bool   `json:"correct"`
	PointsDelta int    `json:"points_delta"`
	// Duplicate is set when a correct answer repeats an already credited
	// question; nothing was scored
	Duplicate   bool   `json:"duplicate"`
	TotalPoints int    `json:"total_points"`
}

// Selector serves questions to one character
type Selector interface {
	// Available reports whether the category has an unanswered question
	Available(category string) bool
	// SelectQuestion picks uniformly among the unanswered questions of a
	// category; false means the category is exhausted
	SelectQuestion(category string) (*entities.Question, bool, error)
	// SelectAnyQuestion picks a random category that still has questions,
	// then a question from it
	SelectAnyQuestion() (*entities.Question, bool, error)
	// Shuffle returns the answers in a fresh random order
	Shuffle(q *entities.Question) ([]entities.Answer, error)
	SubmitAnswer(ctx context.Context, q *entities.Question, correct bool) AnswerResult
	History() entities.QuestionHistory
}

// Config configures a selector
type Config struct {
	Character *entities.Character
	Bank      Bank
	Roller    dice.Roller
	EventBus  events.EventBus
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.Bank == nil {
		vb.RequiredField("Bank")
	}

	return vb.Build()
}

type selector struct {
	character *entities.Character
	bank      Bank
	rng       *rng.Source
	bus       events.EventBus
}

// New creates a selector over cfg.Character's question history
func New(cfg *Config) (Selector, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &selector{
		character: cfg.Character,
		bank:      cfg.Bank,
		rng:       rng.New(cfg.Roller),
		bus:       cfg.EventBus,
	}, nil
}

func (s *selector) history() *entities.QuestionHistory {
	return &s.character.QuestionHistory
}

func (s *selector) unanswered(category string) []*entities.Question {
	var out []*entities.Question
	for _, q := range s.bank.QuestionsIn(category) {
		if !s.history().HasAnswered(q.ID) {
			out = append(out, q)
		}
	}
	return out
}

func (s *selector) Available(category string) bool {
	return len(s.unanswered(category)) > 0
}

func (s *selector) SelectQuestion(category string) (*entities.Question, bool, error) {
	candidates := s.unanswered(category)
	if len(candidates) == 0 {
		return nil, false, nil
	}

	idx, err := s.rng.Index(len(candidates))
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to pick question")
	}

	picked := candidates[idx]
	if s.history().HasAnswered(picked.ID) {
		slog.Warn("Question history desync, refusing to serve answered question",
			"character_id", s.character.ID,
			"question_id", picked.ID)
		return nil, false, nil
	}

	return picked, true, nil
}

func (s *selector) SelectAnyQuestion() (*entities.Question, bool, error) {
	var open []string
	for _, category := range s.bank.Categories() {
		if s.Available(category) {
			open = append(open, category)
		}
	}
	if len(open) == 0 {
		return nil, false, nil
	}

	idx, err := s.rng.Index(len(open))
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to pick category")
	}

	return s.SelectQuestion(open[idx])
}

func (s *selector) Shuffle(q *entities.Question) ([]entities.Answer, error) {
	answers := append([]entities.Answer(nil), q.Answers...)
	err := s.rng.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to shuffle answers")
	}
	return answers, nil
}

func (s *selector) SubmitAnswer(ctx context.Context, q *entities.Question, correct bool) AnswerResult {
	h := s.history()
	result := AnswerResult{QuestionID: q.ID, Correct: correct}

	if correct {
		if !h.MarkAnswered(q.ID) {
			slog.Warn("Ignoring duplicate credit for answered question",
				"character_id", s.character.ID,
				"question_id", q.ID)
			result.Duplicate = true
			result.TotalPoints = h.TotalPoints
			return result
		}
		h.CorrectAnswers++
		result.PointsDelta = q.Points
	} else {
		h.WrongAnswers++
		result.PointsDelta = -int(math.Floor(float64(q.Points) * WrongAnswerPenalty))
	}

	h.TotalPoints += result.PointsDelta
	result.TotalPoints = h.TotalPoints

	engine.Publish(ctx, s.bus, engine.EventQuestionAnswered, s.character, nil)
	return result
}

func (s *selector) History() entities.QuestionHistory {
	return *s.history()
}
