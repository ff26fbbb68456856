package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NarrativeSource string

const (
	NarrativeAI       NarrativeSource = "ai"
	NarrativeFallback NarrativeSource = "fallback"
)

// TestResult is a completed assessment. UserID is nil for anonymous
// submissions. Rows are append-only: a correction is a new result.
type TestResult struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	TestID          uint            `json:"test_id" gorm:"not null;index"`
	Test            *Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	UserID          *uuid.UUID      `json:"user_id,omitempty" gorm:"type:uuid;index"`
	User            *User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL;"`
	TotalScore      int             `json:"total_score" gorm:"not null"`
	MaxScore        int             `json:"max_score" gorm:"not null"`
	Category        string          `json:"category" gorm:"not null"`
	Interpretation  string          `json:"interpretation" gorm:"type:text"`
	Recommendations string          `json:"recommendations" gorm:"type:text"`
	NarrativeSource NarrativeSource `json:"narrative_source" gorm:"type:varchar(16);not null"`
	Answers         []Answer        `json:"answers,omitempty" gorm:"foreignKey:TestResultID;constraint:OnDelete:CASCADE;"`
	CompletedAt     time.Time       `json:"completed_at" gorm:"not null;index"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (r *TestResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *TestResult) BeforeUpdate(tx *gorm.DB) error {
	return ErrImmutableRecord
}
