package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/config"
	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dbtest"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubNarrative struct {
	text  string
	err   error
	calls int
	last  NarrativeInput
}

func (s *stubNarrative) Generate(ctx context.Context, in NarrativeInput) (string, error) {
	s.calls++
	s.last = in
	return s.text, s.err
}

func newSubmissionService(db *gorm.DB, narrative NarrativeService, allowEmpty bool) TestSubmissionService {
	cfg := &config.Config{}
	cfg.Scoring.AllowEmptySubmission = allowEmpty
	return NewTestSubmissionService(
		repository.NewTestRepository(db),
		repository.NewTestResultRepository(db),
		narrative,
		NewScoreConverterService(),
		cfg,
		db,
	)
}

func answerAll(test *model.Test, value string) dto.SubmitResultRequest {
	var req dto.SubmitResultRequest
	for _, q := range test.Questions {
		req.Answers = append(req.Answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, Value: value})
	}
	return req
}

func TestSubmitTest_PHQ9AllTwos(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	narrative := &stubNarrative{text: "You are doing the right thing by checking in."}
	svc := newSubmissionService(db, narrative, false)

	resp, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "2"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ResultID)
	assert.Equal(t, test.ID, resp.TestID)
	assert.Equal(t, 18, resp.TotalScore)
	assert.Equal(t, 27, resp.MaxScore)
	assert.Equal(t, 66.7, resp.Percentage)
	assert.Equal(t, "ModeratelySevere", resp.Category)
	assert.Equal(t, "Moderately severe symptoms.", resp.Interpretation)
	assert.Equal(t, "You are doing the right thing by checking in.", resp.Recommendations)
	assert.Equal(t, string(model.NarrativeAI), resp.NarrativeSource)
	assert.False(t, resp.CompletedAt.IsZero())

	assert.Equal(t, 1, narrative.calls)
	assert.Equal(t, "ModeratelySevere", narrative.last.Band.Label)
	assert.Len(t, narrative.last.Answers, 9)

	var stored model.TestResult
	require.NoError(t, db.Preload("Answers").First(&stored, "id = ?", resp.ResultID).Error)
	assert.Nil(t, stored.UserID)
	assert.Equal(t, 18, stored.TotalScore)
	assert.Len(t, stored.Answers, 9)
	sum := 0
	for _, a := range stored.Answers {
		sum += a.Score
	}
	assert.Equal(t, stored.TotalScore, sum)
}

func TestSubmitTest_ByNumericIDAndOwner(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)
	userID := uuid.New()

	resp, err := svc.SubmitTest(context.Background(), "1", scoring.OwnedBy(userID), answerAll(test, "0"))
	require.NoError(t, err)
	assert.Equal(t, "Minimal", resp.Category)

	var stored model.TestResult
	require.NoError(t, db.First(&stored, "id = ?", resp.ResultID).Error)
	require.NotNil(t, stored.UserID)
	assert.Equal(t, userID, *stored.UserID)
}

func TestSubmitTest_SameAnswersTwiceGiveDistinctResults(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)

	first, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "1"))
	require.NoError(t, err)
	second, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "1"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ResultID, second.ResultID)
	assert.Equal(t, first.TotalScore, second.TotalScore)
	assert.Equal(t, first.Category, second.Category)
	assert.Equal(t, int64(2), dbtest.Count(t, db, &model.TestResult{}))
	assert.Equal(t, int64(18), dbtest.Count(t, db, &model.Answer{}))
}

func TestSubmitTest_UnknownOrInactiveTestWritesNothing(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	narrative := &stubNarrative{text: "ok"}
	svc := newSubmissionService(db, narrative, false)

	for _, ref := range []string{"999", "no-such-test"} {
		_, err := svc.SubmitTest(context.Background(), ref, scoring.Anonymous(), answerAll(test, "1"))
		require.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err), ref)
	}

	require.NoError(t, db.Model(&model.Test{}).Where("id = ?", test.ID).Update("is_active", false).Error)
	_, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "1"))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	assert.Zero(t, narrative.calls)
	assert.Zero(t, dbtest.Count(t, db, &model.TestResult{}))
	assert.Zero(t, dbtest.Count(t, db, &model.Answer{}))
}

func TestSubmitTest_InvalidAnswersWriteNothing(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)

	req := answerAll(test, "2")
	req.Answers[3].Value = "9"

	_, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	wrongScore := 3
	req = answerAll(test, "1")
	req.Answers[0].Score = &wrongScore
	_, err = svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), req)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	assert.Zero(t, dbtest.Count(t, db, &model.TestResult{}))
}

func TestSubmitTest_EmptySubmission(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.CreatePHQ9(t, db)

	_, err := newSubmissionService(db, &stubNarrative{text: "ok"}, false).
		SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), dto.SubmitResultRequest{})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	resp, err := newSubmissionService(db, &stubNarrative{text: "ok"}, true).
		SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), dto.SubmitResultRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalScore)
	assert.Equal(t, "Minimal", resp.Category)
}

func TestSubmitTest_NarrativeFailureFallsBack(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)

	for _, narrativeErr := range []error{errors.New("gemini: 503"), ErrNarrativeUnavailable, context.DeadlineExceeded} {
		svc := newSubmissionService(db, &stubNarrative{err: narrativeErr}, false)
		resp, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "3"))
		require.NoError(t, err)
		assert.Equal(t, "Severe", resp.Category)
		assert.Equal(t, "Seek professional support promptly.", resp.Recommendations)
		assert.Equal(t, string(model.NarrativeFallback), resp.NarrativeSource)
	}
}

func TestSubmitTest_StorageFailureRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_answers", func(tx *gorm.DB) {
		if tx.Statement.Table == "answers" {
			tx.AddError(errors.New("disk full"))
		}
	}))
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)

	_, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), answerAll(test, "2"))
	require.Error(t, err)
	assert.Equal(t, apperror.KindStorage, apperror.KindOf(err))

	assert.Zero(t, dbtest.Count(t, db, &model.TestResult{}))
	assert.Zero(t, dbtest.Count(t, db, &model.Answer{}))
}

func TestSubmitTest_BandGapIsConfigurationError(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	require.NoError(t, db.Where("test_id = ? AND label = ?", test.ID, "Mild").Delete(&model.ScoreBand{}).Error)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)

	req := dto.SubmitResultRequest{}
	for _, q := range test.Questions[:6] {
		req.Answers = append(req.Answers, dto.SubmittedAnswerDTO{QuestionID: q.ID, Value: "1"})
	}
	_, err := svc.SubmitTest(context.Background(), "phq-9", scoring.Anonymous(), req)
	require.Error(t, err)
	assert.Equal(t, apperror.KindConfiguration, apperror.KindOf(err))
	assert.Zero(t, dbtest.Count(t, db, &model.TestResult{}))
}

func TestGetResult_Access(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)
	ctx := context.Background()

	ownerID := uuid.New()
	owned, err := svc.SubmitTest(ctx, "phq-9", scoring.OwnedBy(ownerID), answerAll(test, "2"))
	require.NoError(t, err)
	anon, err := svc.SubmitTest(ctx, "phq-9", scoring.Anonymous(), answerAll(test, "1"))
	require.NoError(t, err)

	got, err := svc.GetResult(ctx, owned.ResultID, Viewer{Owner: scoring.OwnedBy(ownerID), Role: model.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, 18, got.TotalScore)
	assert.Equal(t, test.Title, got.TestTitle)
	require.Len(t, got.Answers, 9)
	assert.Equal(t, "PHQ item 1", got.Answers[0].QuestionPrompt)
	assert.Equal(t, 1, got.Answers[0].OrderInTest)

	_, err = svc.GetResult(ctx, owned.ResultID, Viewer{Owner: scoring.Anonymous()})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = svc.GetResult(ctx, owned.ResultID, Viewer{Owner: scoring.OwnedBy(uuid.New()), Role: model.RoleUser})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = svc.GetResult(ctx, owned.ResultID, Viewer{Owner: scoring.OwnedBy(uuid.New()), Role: model.RoleProfessional})
	assert.NoError(t, err)

	_, err = svc.GetResult(ctx, anon.ResultID, Viewer{Owner: scoring.Anonymous()})
	assert.NoError(t, err)

	_, err = svc.GetResult(ctx, uuid.New(), Viewer{Role: model.RoleAdmin})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestGetUserResults(t *testing.T) {
	db := dbtest.Open(t)
	test := dbtest.CreatePHQ9(t, db)
	svc := newSubmissionService(db, &stubNarrative{text: "ok"}, false)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.SubmitTest(ctx, "phq-9", scoring.OwnedBy(userID), answerAll(test, "0"))
	require.NoError(t, err)
	_, err = svc.SubmitTest(ctx, "phq-9", scoring.OwnedBy(userID), answerAll(test, "3"))
	require.NoError(t, err)
	_, err = svc.SubmitTest(ctx, "phq-9", scoring.OwnedBy(uuid.New()), answerAll(test, "3"))
	require.NoError(t, err)

	results, err := svc.GetUserResults(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, test.Title, results[0].TestTitle)

	otherTest := uint(999)
	results, err = svc.GetUserResults(ctx, userID, &otherTest)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFallbackNarrative(t *testing.T) {
	assert.Equal(t, "Rest more.", fallbackNarrative(scoring.Band{Recommendation: " Rest more. "}))
	assert.Equal(t, genericRecommendation, fallbackNarrative(scoring.Band{}))
}
