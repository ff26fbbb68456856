package model

import (
	"time"

	"github.com/lshigami/selfcheck/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnswerOption is one selectable answer of a question, stored inline as JSON.
type AnswerOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Score int    `json:"score"`
}

type Question struct {
	ID          uint                             `gorm:"primarykey" json:"id"`
	TestID      uint                             `json:"test_id" gorm:"not null;index"`
	Prompt      string                           `json:"prompt" gorm:"type:text;not null"`
	Type        scoring.QuestionType             `json:"type" gorm:"type:varchar(32);not null"`
	OrderInTest int                              `json:"order_in_test" gorm:"not null"`
	Options     datatypes.JSONSlice[AnswerOption] `json:"options,omitempty"`
	CreatedAt   time.Time                        `json:"created_at"`
	UpdatedAt   time.Time                        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt                   `gorm:"index" json:"-"`
}

func (q Question) ToScoring() scoring.Question {
	opts := make([]scoring.Option, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, scoring.Option{Label: o.Label, Value: o.Value, Score: o.Score})
	}
	return scoring.Question{
		ID:      q.ID,
		Type:    q.Type,
		Order:   q.OrderInTest,
		Prompt:  q.Prompt,
		Options: opts,
	}
}

// Catalog converts a test's questions for the scorer.
func Catalog(questions []Question) []scoring.Question {
	out := make([]scoring.Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ToScoring())
	}
	return out
}
