package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrImmutableRecord = errors.New("completed assessments cannot be modified")

// Answer is one scored answer of a TestResult. It is written together with
// its parent and never changed afterwards.
type Answer struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TestResultID uuid.UUID `json:"test_result_id" gorm:"type:uuid;not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Question     *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Value        string    `json:"value" gorm:"type:text;not null"`
	Score        int       `json:"score" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Answer) BeforeUpdate(tx *gorm.DB) error {
	return ErrImmutableRecord
}
