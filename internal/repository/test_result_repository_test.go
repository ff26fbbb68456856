package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dbtest"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResult(test *model.Test, userID *uuid.UUID, completed time.Time) *model.TestResult {
	result := &model.TestResult{
		TestID:          test.ID,
		UserID:          userID,
		TotalScore:      3,
		MaxScore:        27,
		Category:        "Minimal",
		NarrativeSource: model.NarrativeFallback,
		CompletedAt:     completed,
	}
	for _, q := range test.Questions[:3] {
		result.Answers = append(result.Answers, model.Answer{QuestionID: q.ID, Value: "1", Score: 1})
	}
	return result
}

func TestTestResultRepository_CreateAndFind(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewTestResultRepository(db)
	ctx := context.Background()
	test := dbtest.CreatePHQ9(t, db)

	result := newResult(test, nil, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, result))
	assert.NotEqual(t, uuid.Nil, result.ID)

	got, err := repo.FindByIDWithDetails(ctx, result.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Test)
	assert.Equal(t, "phq-9", got.Test.Slug)
	require.Len(t, got.Answers, 3)
	for i, a := range got.Answers {
		require.NotNil(t, a.Question)
		assert.Equal(t, test.Questions[i].ID, a.QuestionID)
	}

	_, err = repo.FindByIDWithDetails(ctx, uuid.New())
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestTestResultRepository_RowsAreImmutable(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewTestResultRepository(db)
	test := dbtest.CreatePHQ9(t, db)

	result := newResult(test, nil, time.Now().UTC())
	require.NoError(t, repo.Create(context.Background(), result))

	result.TotalScore = 27
	err := db.Save(result).Error
	require.ErrorIs(t, err, model.ErrImmutableRecord)

	got, err := repo.FindByIDWithDetails(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalScore)
}

func TestTestResultRepository_FindAllByUser(t *testing.T) {
	db := dbtest.Open(t)
	repo := NewTestResultRepository(db)
	ctx := context.Background()
	test := dbtest.CreatePHQ9(t, db)

	user := model.User{Email: "someone@example.com", Role: model.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	other := uuid.New()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	older := newResult(test, &user.ID, base)
	newer := newResult(test, &user.ID, base.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, newResult(test, nil, base)))

	got, err := repo.FindAllByUser(ctx, user.ID, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)

	missing := test.ID + 100
	got, err = repo.FindAllByUser(ctx, user.ID, &missing)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.FindAllByUser(ctx, other, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
