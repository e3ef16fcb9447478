package entities

import (
	"encoding/json"

	"github.com/KirkDiggler/legends-of-revenue/internal/errors"
)

// Answer is one option of a question
type Answer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a static quiz bank entry
type Question struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Text        string   `json:"question"`
	Answers     []Answer `json:"answers"`
	Explanation string   `json:"explanation,omitempty"`
	Points      int      `json:"points"`
	BonusTime   int      `json:"bonus_time,omitempty"`
}

// CorrectIndex returns the index of the first correct answer or -1
func (q *Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.Correct {
			return i
		}
	}
	return -1
}

// Difficulty is the flavour tier of a special attack
type Difficulty string

// Difficulties
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SpecialAttack is a quiz-gated attack bound to one question category
type SpecialAttack struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Damage      int        `json:"damage"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Effect      Effect     `json:"-"`
}

type specialAttackJSON struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Damage      int         `json:"damage"`
	Category    string      `json:"category"`
	Difficulty  Difficulty  `json:"difficulty"`
	Effect      *EffectSpec `json:"effect,omitempty"`
}

// MarshalJSON writes the effect as {type, value}
func (a SpecialAttack) MarshalJSON() ([]byte, error) {
	return json.Marshal(specialAttackJSON{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Damage:      a.Damage,
		Category:    a.Category,
		Difficulty:  a.Difficulty,
		Effect:      SpecOf(a.Effect),
	})
}

// UnmarshalJSON parses the effect into its variant
func (a *SpecialAttack) UnmarshalJSON(data []byte) error {
	var raw specialAttackJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	effect, err := raw.Effect.toEffect()
	if err != nil {
		return errors.Wrapf(err, "special attack %s", raw.ID)
	}

	*a = SpecialAttack{
		ID:          raw.ID,
		Name:        raw.Name,
		Description: raw.Description,
		Damage:      raw.Damage,
		Category:    raw.Category,
		Difficulty:  raw.Difficulty,
		Effect:      effect,
	}
	return nil
}

// QuestionHistory is the persisted quiz ledger of one character.
// AnsweredQuestionIDs has set semantics and only grows.
type QuestionHistory struct {
	AnsweredQuestionIDs []string `json:"answered_question_ids"`
	TotalPoints         int      `json:"total_points"`
	CorrectAnswers      int      `json:"correct_answers"`
	WrongAnswers        int      `json:"wrong_answers"`
}

// HasAnswered reports whether id was credited before
func (h *QuestionHistory) HasAnswered(id string) bool {
	for _, answered := range h.AnsweredQuestionIDs {
		if answered == id {
			return true
		}
	}
	return false
}

// MarkAnswered adds id to the set and reports whether it was new
func (h *QuestionHistory) MarkAnswered(id string) bool {
	if h.HasAnswered(id) {
		return false
	}
	h.AnsweredQuestionIDs = append(h.AnsweredQuestionIDs, id)
	return true
}
