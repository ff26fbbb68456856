package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/scoring"
)

// toTestResponseDTO is the test-taker view: option scores are dropped.
func toTestResponseDTO(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, err
	}
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		item := dto.QuestionResponseDTO{
			ID:          q.ID,
			TestID:      q.TestID,
			Prompt:      q.Prompt,
			Type:        string(q.Type),
			OrderInTest: q.OrderInTest,
		}
		for _, o := range q.Options {
			item.Options = append(item.Options, dto.OptionResponseDTO{Label: o.Label, Value: o.Value})
		}
		resp.Questions = append(resp.Questions, item)
	}
	return &resp, nil
}

func toAdminQuestionDTO(q model.Question) dto.AdminQuestionDTO {
	item := dto.AdminQuestionDTO{
		ID:          q.ID,
		TestID:      q.TestID,
		Prompt:      q.Prompt,
		Type:        string(q.Type),
		OrderInTest: q.OrderInTest,
	}
	for _, o := range q.Options {
		item.Options = append(item.Options, dto.AnswerOptionDTO{Label: o.Label, Value: o.Value, Score: o.Score})
	}
	return item
}

func toAdminTestResponseDTO(test *model.Test) (*dto.AdminTestResponseDTO, error) {
	var resp dto.AdminTestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, err
	}
	resp.MaxScore = scoring.MaxPossible(model.Catalog(test.Questions))
	resp.Questions = make([]dto.AdminQuestionDTO, 0, len(test.Questions))
	for _, q := range test.Questions {
		resp.Questions = append(resp.Questions, toAdminQuestionDTO(q))
	}
	resp.ScoreBands = make([]dto.AdminScoreBandDTO, 0, len(test.ScoreBands))
	for _, b := range test.ScoreBands {
		var band dto.AdminScoreBandDTO
		band.ID = b.ID
		if err := copier.Copy(&band.ScoreBandDTO, &b); err != nil {
			return nil, err
		}
		resp.ScoreBands = append(resp.ScoreBands, band)
	}
	return &resp, nil
}

func toTestSummaryDTO(row model.Test, questionCount int) (dto.TestSummaryDTO, error) {
	var item dto.TestSummaryDTO
	if err := copier.Copy(&item, &row); err != nil {
		return dto.TestSummaryDTO{}, err
	}
	item.QuestionCount = questionCount
	return item, nil
}

func toModelQuestion(req dto.QuestionCreateDTO) model.Question {
	q := model.Question{
		Prompt:      req.Prompt,
		Type:        req.Type,
		OrderInTest: req.OrderInTest,
	}
	for _, o := range req.Options {
		q.Options = append(q.Options, model.AnswerOption{Label: o.Label, Value: o.Value, Score: o.Score})
	}
	return q
}

func toModelBands(req []dto.ScoreBandDTO) ([]model.ScoreBand, error) {
	bands := make([]model.ScoreBand, 0, len(req))
	for _, b := range req {
		var band model.ScoreBand
		if err := copier.Copy(&band, &b); err != nil {
			return nil, err
		}
		bands = append(bands, band)
	}
	return bands, nil
}
