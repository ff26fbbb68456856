package service

import (
	"context"
	"fmt"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/helper"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
)

type AdminTestService interface {
	ListTests(ctx context.Context) ([]dto.TestSummaryDTO, error)
	GetTest(ctx context.Context, id uint) (*dto.AdminTestResponseDTO, error)
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error)
	UpdateTest(ctx context.Context, id uint, req dto.TestUpdateDTO) (*dto.AdminTestResponseDTO, error)
	SetActive(ctx context.Context, id uint, active bool) error
	DeleteTest(ctx context.Context, id uint) error
}

type adminTestService struct {
	testRepo repository.TestRepository
}

func NewAdminTestService(testRepo repository.TestRepository) AdminTestService {
	return &adminTestService{testRepo: testRepo}
}

func (s *adminTestService) ListTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	rows, err := s.testRepo.FindAllWithQuestionCount(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("ListTests: repository error")
		return nil, err
	}
	out := make([]dto.TestSummaryDTO, 0, len(rows))
	for _, row := range rows {
		item, err := toTestSummaryDTO(row.Test, row.QuestionCount)
		if err != nil {
			log.Error().Err(err).Msg("ListTests: failed to copy test to summary DTO")
			return nil, apperror.Storage(err, "error preparing test list")
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *adminTestService) GetTest(ctx context.Context, id uint) (*dto.AdminTestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithCatalog(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(test)
}

func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.AdminTestResponseDTO, error) {
	var details []string
	orderMap := make(map[int]bool)
	questions := make([]model.Question, 0, len(req.Questions))
	for i, qDto := range req.Questions {
		if orderMap[qDto.OrderInTest] {
			details = append(details, fmt.Sprintf("duplicate order_in_test %d", qDto.OrderInTest))
		}
		orderMap[qDto.OrderInTest] = true
		for _, problem := range validateQuestion(qDto) {
			details = append(details, fmt.Sprintf("questions[%d]: %s", i, problem))
		}
		questions = append(questions, toModelQuestion(qDto))
	}
	if len(details) > 0 {
		return nil, apperror.Validation("Test contains invalid questions").WithDetails(details...)
	}

	bands, err := toModelBands(req.ScoreBands)
	if err != nil {
		log.Error().Err(err).Msg("CreateTest: failed to copy score bands")
		return nil, apperror.Storage(err, "error preparing score bands")
	}
	maxScore := scoring.MaxPossible(model.Catalog(questions))
	if err := scoring.ValidateBands(model.Bands(bands), maxScore); err != nil {
		return nil, err
	}

	slug, err := helper.EnsureUniqueSlug(ctx, helper.Slugify(req.Title, helper.DefaultSlugMaxLen), helper.DefaultSlugMaxLen, s.testRepo.SlugExists)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: could not allocate slug")
		return nil, err
	}

	test := model.Test{
		Title:            req.Title,
		Slug:             slug,
		Category:         model.TestCategory(req.Category),
		Instructions:     req.Instructions,
		TimeLimitMinutes: req.TimeLimitMinutes,
		IsActive:         req.IsActive == nil || *req.IsActive,
		Questions:        questions,
		ScoreBands:       bands,
	}
	if err := s.testRepo.Create(ctx, &test); err != nil {
		log.Error().Err(err).Msg("Failed to create test in database")
		return nil, err
	}
	log.Info().Uint("testID", test.ID).Str("slug", test.Slug).Int("maxScore", maxScore).Msg("CreateTest: test created")
	return s.GetTest(ctx, test.ID)
}

// UpdateTest changes metadata and optionally replaces the band table. The
// new bands are checked against the current questions.
func (s *adminTestService) UpdateTest(ctx context.Context, id uint, req dto.TestUpdateDTO) (*dto.AdminTestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithCatalog(ctx, id)
	if err != nil {
		return nil, err
	}

	var bands []model.ScoreBand
	if req.ScoreBands != nil {
		bands, err = toModelBands(req.ScoreBands)
		if err != nil {
			log.Error().Err(err).Uint("testID", id).Msg("UpdateTest: failed to copy score bands")
			return nil, apperror.Storage(err, "error preparing score bands")
		}
		maxScore := scoring.MaxPossible(model.Catalog(test.Questions))
		if err := scoring.ValidateBands(model.Bands(bands), maxScore); err != nil {
			return nil, err
		}
	}

	test.Title = req.Title
	test.Category = model.TestCategory(req.Category)
	test.Instructions = req.Instructions
	test.TimeLimitMinutes = req.TimeLimitMinutes
	if req.IsActive != nil {
		test.IsActive = *req.IsActive
	}

	if err := s.testRepo.UpdateWithBands(ctx, test, bands); err != nil {
		log.Error().Err(err).Uint("testID", id).Msg("UpdateTest: repository error")
		return nil, err
	}
	return s.GetTest(ctx, id)
}

func (s *adminTestService) SetActive(ctx context.Context, id uint, active bool) error {
	if err := s.testRepo.SetActive(ctx, id, active); err != nil {
		return err
	}
	log.Info().Uint("testID", id).Bool("active", active).Msg("SetActive: test visibility changed")
	return nil
}

// DeleteTest soft-deletes; results keep pointing at the row.
func (s *adminTestService) DeleteTest(ctx context.Context, id uint) error {
	if err := s.testRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Uint("testID", id).Msg("DeleteTest: test deleted")
	return nil
}

func (s *adminTestService) respond(test *model.Test) (*dto.AdminTestResponseDTO, error) {
	resp, err := toAdminTestResponseDTO(test)
	if err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to AdminTestResponseDTO")
		return nil, apperror.Storage(err, "error preparing response data")
	}
	return resp, nil
}

// validateQuestion checks what binding tags cannot express.
func validateQuestion(q dto.QuestionCreateDTO) []string {
	var problems []string
	if q.Type == scoring.Text {
		if len(q.Options) > 0 {
			problems = append(problems, "TEXT questions take no options")
		}
		return problems
	}

	switch {
	case q.Type == scoring.YesNo && len(q.Options) != 2:
		problems = append(problems, "YES_NO questions need exactly two options")
	case len(q.Options) < 2:
		problems = append(problems, fmt.Sprintf("%s questions need at least two options", q.Type))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if seen[o.Value] {
			problems = append(problems, fmt.Sprintf("option value %q is repeated", o.Value))
		}
		seen[o.Value] = true
	}
	return problems
}
