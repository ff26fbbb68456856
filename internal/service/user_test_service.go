package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserTestService interface {
	GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testRef string) (*dto.TestResponseDTO, error)
}

type userTestService struct {
	testRepo repository.TestRepository
}

func NewUserTestService(testRepo repository.TestRepository) UserTestService {
	return &userTestService{testRepo: testRepo}
}

func (s *userTestService) GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithQuestionCount(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with question count from repository")
		return nil, err
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		item, err := toTestSummaryDTO(twc.Test, twc.QuestionCount)
		if err != nil {
			log.Error().Err(err).Msg("Failed to copy Test model to TestSummaryDTO")
			return nil, apperror.Storage(err, "error preparing test list")
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *userTestService) GetTestDetails(ctx context.Context, testRef string) (*dto.TestResponseDTO, error) {
	test, err := resolveActiveTest(ctx, s.testRepo, testRef)
	if err != nil {
		log.Warn().Err(err).Str("testRef", testRef).Msg("Failed to get test details from repository")
		return nil, err
	}

	resp, err := toTestResponseDTO(test)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, apperror.Storage(err, "error preparing test details response")
	}
	return resp, nil
}

// resolveActiveTest loads a test with its catalog by numeric id or slug.
// Inactive tests are reported as not found.
func resolveActiveTest(ctx context.Context, repo repository.TestRepository, ref string) (*model.Test, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, apperror.NotFound("test not found")
	}

	var (
		test *model.Test
		err  error
	)
	if id, convErr := strconv.ParseUint(ref, 10, 64); convErr == nil {
		test, err = repo.FindByIDWithCatalog(ctx, uint(id))
	} else {
		test, err = repo.FindBySlugWithCatalog(ctx, strings.ToLower(ref))
	}
	if err != nil {
		return nil, err
	}
	if !test.IsActive {
		return nil, apperror.NotFound("test not found")
	}
	return test, nil
}
