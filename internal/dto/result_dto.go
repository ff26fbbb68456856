package dto

import (
	"time"

	"github.com/google/uuid"
)

// SubmitResultResponseDTO is returned once a submission has been recorded.
type SubmitResultResponseDTO struct {
	ResultID        uuid.UUID `json:"result_id"`
	TestID          uint      `json:"test_id"`
	TotalScore      int       `json:"total_score"`
	MaxScore        int       `json:"max_score"`
	Percentage      float64   `json:"percentage"`
	Category        string    `json:"category"`
	Interpretation  string    `json:"interpretation"`
	Recommendations string    `json:"recommendations"`
	NarrativeSource string    `json:"narrative_source"`
	CompletedAt     time.Time `json:"completed_at"`
}

// ResultAnswerDTO is one persisted answer of a result.
type ResultAnswerDTO struct {
	QuestionID     uint   `json:"question_id"`
	QuestionPrompt string `json:"question_prompt,omitempty"`
	OrderInTest    int    `json:"order_in_test"`
	Value          string `json:"value"`
	Score          int    `json:"score"`
}

// TestResultDetailDTO is the full persisted result.
type TestResultDetailDTO struct {
	ID              uuid.UUID         `json:"id"`
	TestID          uint              `json:"test_id"`
	TestTitle       string            `json:"test_title,omitempty"`
	UserID          *uuid.UUID        `json:"user_id,omitempty"`
	TotalScore      int               `json:"total_score"`
	MaxScore        int               `json:"max_score"`
	Percentage      float64           `json:"percentage"`
	Category        string            `json:"category"`
	Interpretation  string            `json:"interpretation"`
	Recommendations string            `json:"recommendations"`
	NarrativeSource string            `json:"narrative_source"`
	CompletedAt     time.Time         `json:"completed_at"`
	Answers         []ResultAnswerDTO `json:"answers"`
}

// TestResultSummaryDTO is for listing a user's results.
type TestResultSummaryDTO struct {
	ID          uuid.UUID `json:"id"`
	TestID      uint      `json:"test_id"`
	TestTitle   string    `json:"test_title,omitempty"`
	TotalScore  int       `json:"total_score"`
	MaxScore    int       `json:"max_score"`
	Percentage  float64   `json:"percentage"`
	Category    string    `json:"category"`
	CompletedAt time.Time `json:"completed_at"`
}
