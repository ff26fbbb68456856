package service

import (
	"context"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
)

// QuestionService edits the questions of an existing test. Every change is
// checked against the test's score bands so that each reachable total still
// classifies.
type QuestionService interface {
	GetQuestionsForTest(ctx context.Context, testID uint) ([]dto.AdminQuestionDTO, error)
	AddQuestion(ctx context.Context, testID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error)
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	repo     repository.QuestionRepository
	testRepo repository.TestRepository
}

func NewQuestionService(repo repository.QuestionRepository, testRepo repository.TestRepository) QuestionService {
	return &questionService{repo: repo, testRepo: testRepo}
}

func (s *questionService) GetQuestionsForTest(ctx context.Context, testID uint) ([]dto.AdminQuestionDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, err
	}
	questions, err := s.repo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminQuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, toAdminQuestionDTO(q))
	}
	return out, nil
}

func (s *questionService) AddQuestion(ctx context.Context, testID uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error) {
	if problems := validateQuestion(req); len(problems) > 0 {
		return nil, apperror.Validation("Invalid question").WithDetails(problems...)
	}

	test, err := s.testRepo.FindByIDWithCatalog(ctx, testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Invalid TestID provided for question creation")
		return nil, err
	}

	question := toModelQuestion(req)
	question.TestID = testID
	if err := checkCatalogChange(test, question); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, err
	}
	resp := toAdminQuestionDTO(question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionCreateDTO) (*dto.AdminQuestionDTO, error) {
	if problems := validateQuestion(req); len(problems) > 0 {
		return nil, apperror.Validation("Invalid question").WithDetails(problems...)
	}

	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	test, err := s.testRepo.FindByIDWithCatalog(ctx, question.TestID)
	if err != nil {
		return nil, err
	}

	updated := toModelQuestion(req)
	updated.ID = question.ID
	updated.TestID = question.TestID
	updated.CreatedAt = question.CreatedAt
	if err := checkCatalogChange(test, updated); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("UpdateQuestion: repository error")
		return nil, err
	}
	resp := toAdminQuestionDTO(updated)
	return &resp, nil
}

// DeleteQuestion can only lower the maximum score, so the bands stay valid.
// Stored answers keep referencing the soft-deleted row.
func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("questionID", id).Msg("DeleteQuestion: question deleted")
	return nil
}

// checkCatalogChange applies changed (new when ID is zero) to the test's
// catalog and verifies order uniqueness and band coverage.
func checkCatalogChange(test *model.Test, changed model.Question) error {
	questions := make([]model.Question, 0, len(test.Questions)+1)
	for _, q := range test.Questions {
		if changed.ID != 0 && q.ID == changed.ID {
			continue
		}
		if q.OrderInTest == changed.OrderInTest {
			return apperror.Validation("order_in_test %d is already used in this test", changed.OrderInTest)
		}
		questions = append(questions, q)
	}
	questions = append(questions, changed)

	maxScore := scoring.MaxPossible(model.Catalog(questions))
	if err := scoring.ValidateBands(model.Bands(test.ScoreBands), maxScore); err != nil {
		return apperror.Validation("Score bands of this test do not cover the new maximum score %d; update the bands first", maxScore)
	}
	return nil
}
