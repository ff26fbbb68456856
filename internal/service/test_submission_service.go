package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const genericRecommendation = "Thank you for completing this assessment. If anything in your answers worries you, consider talking it through with a qualified health professional."

// Viewer is whoever asks to read a result.
type Viewer struct {
	Owner scoring.Owner
	Role  model.Role
}

// TestSubmissionService runs the submit, score, classify, persist, narrate pipeline.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, testRef string, owner scoring.Owner, req dto.SubmitResultRequest) (*dto.SubmitResultResponseDTO, error)
	GetResult(ctx context.Context, resultID uuid.UUID, viewer Viewer) (*dto.TestResultDetailDTO, error)
	GetUserResults(ctx context.Context, userID uuid.UUID, testID *uint) ([]dto.TestResultSummaryDTO, error)
}

type testSubmissionService struct {
	testRepo       repository.TestRepository
	resultRepo     repository.TestResultRepository
	narrative      NarrativeService
	scoreConverter ScoreConverterService
	allowEmpty     bool
	db             *gorm.DB // transaction boundary for result writes
	now            func() time.Time
}

func NewTestSubmissionService(
	testRepo repository.TestRepository,
	resultRepo repository.TestResultRepository,
	narrative NarrativeService,
	scoreConverter ScoreConverterService,
	cfg *config.Config,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:       testRepo,
		resultRepo:     resultRepo,
		narrative:      narrative,
		scoreConverter: scoreConverter,
		allowEmpty:     cfg.Scoring.AllowEmptySubmission,
		db:             db,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// SubmitTest scores a submission against the test's catalog, classifies it,
// asks for a narrative and writes the result with its answers in one transaction.
// Nothing is written when any step before the write fails.
func (s *testSubmissionService) SubmitTest(ctx context.Context, testRef string, owner scoring.Owner, req dto.SubmitResultRequest) (*dto.SubmitResultResponseDTO, error) {
	test, err := resolveActiveTest(ctx, s.testRepo, testRef)
	if err != nil {
		log.Warn().Err(err).Str("testRef", testRef).Msg("SubmitTest: test lookup failed")
		return nil, err
	}
	if len(test.Questions) == 0 {
		log.Error().Uint("testID", test.ID).Msg("SubmitTest: test has no questions")
		return nil, apperror.Configuration("test %d has no questions", test.ID)
	}
	if len(req.Answers) == 0 && !s.allowEmpty {
		return nil, apperror.Validation("Submission must contain at least one answer")
	}

	submitted := make([]scoring.SubmittedAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		submitted = append(submitted, scoring.SubmittedAnswer{QuestionID: a.QuestionID, Value: a.Value, Score: a.Score})
	}

	scored, err := scoring.Score(model.Catalog(test.Questions), submitted)
	if err != nil {
		log.Info().Err(err).Uint("testID", test.ID).Msg("SubmitTest: submission rejected")
		return nil, err
	}

	band, err := scoring.Classify(model.Bands(test.ScoreBands), scored.Total)
	if err != nil {
		log.Error().Err(err).Uint("testID", test.ID).Int("score", scored.Total).Msg("SubmitTest: score bands do not cover score")
		return nil, err
	}

	recommendations, source := s.narrate(ctx, test, scored, band)

	result := model.TestResult{
		TestID:          test.ID,
		UserID:          owner.Nullable(),
		TotalScore:      scored.Total,
		MaxScore:        scored.MaxPossible,
		Category:        band.Label,
		Interpretation:  band.Interpretation,
		Recommendations: recommendations,
		NarrativeSource: source,
		CompletedAt:     s.now(),
	}
	for _, a := range scored.Answers {
		result.Answers = append(result.Answers, model.Answer{QuestionID: a.QuestionID, Value: a.Value, Score: a.Score})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.resultRepo.WithTx(tx).Create(ctx, &result)
	})
	if err != nil {
		if apperror.KindOf(err) == "" {
			err = apperror.Storage(err, "could not save test result")
		}
		log.Error().Err(err).Uint("testID", test.ID).Msg("SubmitTest: failed to persist result")
		return nil, err
	}

	pct, err := s.scoreConverter.Percentage(result.TotalScore, result.MaxScore)
	if err != nil {
		log.Warn().Err(err).Str("resultID", result.ID.String()).Msg("SubmitTest: percentage conversion failed")
	}

	var resp dto.SubmitResultResponseDTO
	if err := copier.Copy(&resp, &result); err != nil {
		log.Error().Err(err).Msg("SubmitTest: failed to copy result to response DTO")
	}
	resp.ResultID = result.ID
	resp.Percentage = pct

	log.Info().
		Str("resultID", result.ID.String()).
		Uint("testID", test.ID).
		Int("totalScore", result.TotalScore).
		Str("category", result.Category).
		Str("narrativeSource", string(source)).
		Bool("anonymous", owner.IsAnonymous()).
		Msg("SubmitTest: result recorded")
	return &resp, nil
}

// narrate never fails: generator errors fall back to the band's static text.
func (s *testSubmissionService) narrate(ctx context.Context, test *model.Test, scored scoring.Scored, band scoring.Band) (string, model.NarrativeSource) {
	text, err := s.narrative.Generate(ctx, NarrativeInput{
		TestTitle:    test.Title,
		TestCategory: string(test.Category),
		Score:        scored.Total,
		MaxScore:     scored.MaxPossible,
		Band:         band,
		Answers:      scored.Answers,
	})
	if err != nil {
		if !errors.Is(err, ErrNarrativeUnavailable) {
			log.Warn().Err(err).Uint("testID", test.ID).Msg("SubmitTest: narrative generation failed, using band recommendation")
		}
		return fallbackNarrative(band), model.NarrativeFallback
	}
	return text, model.NarrativeAI
}

func fallbackNarrative(band scoring.Band) string {
	if text := strings.TrimSpace(band.Recommendation); text != "" {
		return text
	}
	return genericRecommendation
}

// GetResult returns a stored result. Owned results are only shown to their
// owner and to roles that review results; everyone else gets NotFound.
func (s *testSubmissionService) GetResult(ctx context.Context, resultID uuid.UUID, viewer Viewer) (*dto.TestResultDetailDTO, error) {
	result, err := s.resultRepo.FindByIDWithDetails(ctx, resultID)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindNotFound {
			log.Error().Err(err).Str("resultID", resultID.String()).Msg("GetResult: repository error")
		}
		return nil, err
	}

	if !canView(result, viewer) {
		log.Warn().Str("resultID", resultID.String()).Msg("GetResult: viewer is not allowed to read result")
		return nil, apperror.NotFound("test result not found")
	}

	var resp dto.TestResultDetailDTO
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Msg("GetResult: failed to copy result to DTO")
		return nil, apperror.Storage(err, "error preparing result")
	}
	if result.Test != nil {
		resp.TestTitle = result.Test.Title
	}
	resp.Percentage, _ = s.scoreConverter.Percentage(result.TotalScore, result.MaxScore)
	resp.Answers = make([]dto.ResultAnswerDTO, 0, len(result.Answers))
	for _, a := range result.Answers {
		item := dto.ResultAnswerDTO{QuestionID: a.QuestionID, Value: a.Value, Score: a.Score}
		if a.Question != nil {
			item.QuestionPrompt = a.Question.Prompt
			item.OrderInTest = a.Question.OrderInTest
		}
		resp.Answers = append(resp.Answers, item)
	}
	return &resp, nil
}

func canView(result *model.TestResult, viewer Viewer) bool {
	owner := scoring.OwnerFromNullable(result.UserID)
	if owner.IsAnonymous() {
		return true
	}
	if viewer.Role.CanReadAllResults() {
		return true
	}
	ownerID, _ := owner.UserID()
	viewerID, ok := viewer.Owner.UserID()
	return ok && viewerID == ownerID
}

func (s *testSubmissionService) GetUserResults(ctx context.Context, userID uuid.UUID, testID *uint) ([]dto.TestResultSummaryDTO, error) {
	results, err := s.resultRepo.FindAllByUser(ctx, userID, testID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID.String()).Msg("GetUserResults: repository error")
		return nil, err
	}

	summaries := make([]dto.TestResultSummaryDTO, 0, len(results))
	for _, r := range results {
		var item dto.TestResultSummaryDTO
		if err := copier.Copy(&item, &r); err != nil {
			log.Error().Err(err).Str("resultID", r.ID.String()).Msg("GetUserResults: failed to copy result to DTO")
			return nil, apperror.Storage(err, "error preparing results")
		}
		if r.Test != nil {
			item.TestTitle = r.Test.Title
		}
		item.Percentage, _ = s.scoreConverter.Percentage(r.TotalScore, r.MaxScore)
		summaries = append(summaries, item)
	}
	return summaries, nil
}
