package dto

// SubmittedAnswerDTO is one answer in a submission. Score is optional and,
// when sent, must match the catalog's score for Value.
type SubmittedAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Value      string `json:"value" binding:"required"`
	Score      *int   `json:"score" binding:"omitempty,min=0"`
}

// SubmitResultRequest is the body of POST /tests/{test_ref}/results.
type SubmitResultRequest struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"omitempty,dive"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
