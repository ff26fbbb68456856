package dto

import "time"

// OptionResponseDTO is what a test-taker sees of an option; scores stay server-side.
type OptionResponseDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// QuestionResponseDTO is used for displaying question details to users.
type QuestionResponseDTO struct {
	ID          uint                `json:"id"`
	TestID      uint                `json:"test_id"`
	Prompt      string              `json:"prompt"`
	Type        string              `json:"type"`
	OrderInTest int                 `json:"order_in_test"`
	Options     []OptionResponseDTO `json:"options,omitempty"`
}

// TestResponseDTO is used for displaying full test details to users.
type TestResponseDTO struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	Slug             string                `json:"slug"`
	Category         string                `json:"category"`
	Instructions     string                `json:"instructions,omitempty"`
	TimeLimitMinutes *int                  `json:"time_limit_minutes,omitempty"`
	Questions        []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Category         string    `json:"category"`
	TimeLimitMinutes *int      `json:"time_limit_minutes,omitempty"`
	IsActive         bool      `json:"is_active"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdminQuestionDTO includes option scores.
type AdminQuestionDTO struct {
	ID          uint              `json:"id"`
	TestID      uint              `json:"test_id"`
	Prompt      string            `json:"prompt"`
	Type        string            `json:"type"`
	OrderInTest int               `json:"order_in_test"`
	Options     []AnswerOptionDTO `json:"options,omitempty"`
}

type AdminScoreBandDTO struct {
	ID uint `json:"id"`
	ScoreBandDTO
}

// AdminTestResponseDTO is the authoring view of a test.
type AdminTestResponseDTO struct {
	ID               uint                `json:"id"`
	Title            string              `json:"title"`
	Slug             string              `json:"slug"`
	Category         string              `json:"category"`
	Instructions     string              `json:"instructions,omitempty"`
	TimeLimitMinutes *int                `json:"time_limit_minutes,omitempty"`
	IsActive         bool                `json:"is_active"`
	MaxScore         int                 `json:"max_score"`
	Questions        []AdminQuestionDTO  `json:"questions"`
	ScoreBands       []AdminScoreBandDTO `json:"score_bands"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}
