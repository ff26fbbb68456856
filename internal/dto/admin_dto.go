package dto

import "github.com/lshigami/selfcheck/internal/scoring"

type AnswerOptionDTO struct {
	Label string `json:"label" binding:"required"`
	Value string `json:"value" binding:"required"`
	Score int    `json:"score" binding:"min=0"`
}

// QuestionCreateDTO is used within TestCreateDTO and for adding a question to an existing test.
type QuestionCreateDTO struct {
	Prompt      string               `json:"prompt" binding:"required"`
	Type        scoring.QuestionType `json:"type" binding:"required,question_type"`
	OrderInTest int                  `json:"order_in_test" binding:"required,min=1"`
	Options     []AnswerOptionDTO    `json:"options" binding:"omitempty,dive"`
}

type ScoreBandDTO struct {
	MinScore       int    `json:"min_score" binding:"min=0"`
	MaxScore       int    `json:"max_score" binding:"min=0"`
	Label          string `json:"label" binding:"required"`
	Interpretation string `json:"interpretation"`
	Recommendation string `json:"recommendation"`
	SortOrder      int    `json:"sort_order"`
}

// TestCreateDTO is for admin to create a new test with its questions and score bands.
type TestCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	Category         string              `json:"category" binding:"required,test_category"`
	Instructions     string              `json:"instructions"`
	TimeLimitMinutes *int                `json:"time_limit_minutes" binding:"omitempty,min=1"`
	IsActive         *bool               `json:"is_active"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
	ScoreBands       []ScoreBandDTO      `json:"score_bands" binding:"required,min=1,dive"`
}

// TestUpdateDTO replaces test metadata. ScoreBands, when present, replace the whole table.
type TestUpdateDTO struct {
	Title            string         `json:"title" binding:"required"`
	Category         string         `json:"category" binding:"required,test_category"`
	Instructions     string         `json:"instructions"`
	TimeLimitMinutes *int           `json:"time_limit_minutes" binding:"omitempty,min=1"`
	IsActive         *bool          `json:"is_active"`
	ScoreBands       []ScoreBandDTO `json:"score_bands" binding:"omitempty,dive"`
}

type SetActiveDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
