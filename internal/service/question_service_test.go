package service

import (
	"context"
	"testing"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dbtest"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_BandCoverageIsKept(t *testing.T) {
	db := dbtest.Open(t)
	testRepo := repository.NewTestRepository(db)
	admin := NewAdminTestService(testRepo)
	svc := NewQuestionService(repository.NewQuestionRepository(db), testRepo)
	ctx := context.Background()

	created, err := admin.CreateTest(ctx, burnoutRequest())
	require.NoError(t, err)

	// bands end at 2, a third yes/no item would allow 3
	_, err = svc.AddQuestion(ctx, created.ID, yesNoQuestion(4))
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = admin.UpdateTest(ctx, created.ID, dto.TestUpdateDTO{
		Title:    created.Title,
		Category: created.Category,
		ScoreBands: []dto.ScoreBandDTO{
			{MinScore: 0, MaxScore: 1, Label: "Low", SortOrder: 1},
			{MinScore: 2, MaxScore: 3, Label: "High", SortOrder: 2},
		},
	})
	require.NoError(t, err)

	added, err := svc.AddQuestion(ctx, created.ID, yesNoQuestion(4))
	require.NoError(t, err)
	assert.Equal(t, created.ID, added.TestID)

	questions, err := svc.GetQuestionsForTest(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, questions, 4)
}

func TestQuestionService_UpdateAndDelete(t *testing.T) {
	db := dbtest.Open(t)
	testRepo := repository.NewTestRepository(db)
	admin := NewAdminTestService(testRepo)
	svc := NewQuestionService(repository.NewQuestionRepository(db), testRepo)
	ctx := context.Background()

	created, err := admin.CreateTest(ctx, burnoutRequest())
	require.NoError(t, err)
	first := created.Questions[0]

	req := yesNoQuestion(1)
	req.Prompt = "Do you feel exhausted after work?"
	updated, err := svc.UpdateQuestion(ctx, first.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Do you feel exhausted after work?", updated.Prompt)

	_, err = svc.UpdateQuestion(ctx, first.ID, yesNoQuestion(2))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err), "order 2 is taken")

	_, err = svc.AddQuestion(ctx, 4242, yesNoQuestion(1))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	require.NoError(t, svc.DeleteQuestion(ctx, first.ID))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(svc.DeleteQuestion(ctx, first.ID)))

	questions, err := svc.GetQuestionsForTest(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}
