package catalog

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dbtest"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const miniCatalog = `
users:
  - email: Admin@Example.com
    name: Admin
    role: ADMIN
    password_env: TEST_ADMIN_PASSWORD
tests:
  - title: Sleep Check
    category: SLEEP
    default_options:
      - { label: "No", value: "no", score: 0 }
      - { label: "Yes", value: "yes", score: 1 }
    questions:
      - { type: YES_NO, prompt: Do you wake up during the night? }
      - { type: YES_NO, prompt: Do you feel rested in the morning?, options: [{ label: "Yes", value: "yes", score: 0 }, { label: "No", value: "no", score: 1 }] }
      - { type: TEXT, prompt: Anything else? }
    bands:
      - { min: 0, max: 0, label: Fine }
      - { min: 1, max: 2, label: Disturbed, recommendation: Keep a sleep diary. }
`

func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), "..", "..")
}

func TestLoad_ShippedCatalog(t *testing.T) {
	file, err := LoadFile(filepath.Join(repoRoot(t), "catalog", "tests.yaml"))
	require.NoError(t, err)
	require.Len(t, file.Tests, 2)

	phq9 := file.Tests[0].Model()
	assert.Equal(t, "phq-9", file.Tests[0].Slug)
	assert.Len(t, phq9.Questions, 9)
	assert.Equal(t, 27, scoring.MaxPossible(model.Catalog(phq9.Questions)))

	band, err := scoring.Classify(model.Bands(phq9.ScoreBands), 18)
	require.NoError(t, err)
	assert.Equal(t, "ModeratelySevere", band.Label)

	gad7 := file.Tests[1].Model()
	assert.Equal(t, 21, scoring.MaxPossible(model.Catalog(gad7.Questions)))
}

func TestLoad_Model(t *testing.T) {
	file, err := Load(strings.NewReader(miniCatalog))
	require.NoError(t, err)
	m := file.Tests[0].Model()

	require.Len(t, m.Questions, 3)
	assert.Equal(t, 1, m.Questions[0].OrderInTest)
	assert.Equal(t, "no", m.Questions[0].Options[0].Value)
	assert.Equal(t, 1, m.Questions[1].Options[1].Score)
	assert.Empty(t, m.Questions[2].Options)
	assert.Equal(t, 2, m.ScoreBands[1].SortOrder)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":      strings.Replace(miniCatalog, "category: SLEEP", "category: SLEEP\n    colour: blue", 1),
		"unknown category": strings.Replace(miniCatalog, "category: SLEEP", "category: DREAMS", 1),
		"unknown type":     strings.Replace(miniCatalog, "type: TEXT", "type: ESSAY", 1),
		"unknown role":     strings.Replace(miniCatalog, "role: ADMIN", "role: ROOT", 1),
		"band gap":         strings.Replace(miniCatalog, "min: 1, max: 2", "min: 2, max: 2", 1),
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestSeeder_ApplyIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	tests := repository.NewTestRepository(db)
	users := repository.NewUserRepository(db)
	seeder := NewSeeder(tests, users)
	seeder.getenv = func(key string) string {
		if key == "TEST_ADMIN_PASSWORD" {
			return "s3cret"
		}
		return ""
	}
	ctx := context.Background()

	file, err := Load(strings.NewReader(miniCatalog))
	require.NoError(t, err)

	report, err := seeder.Apply(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, Report{TestsCreated: 1, UsersCreated: 1}, report)

	stored, err := tests.FindBySlugWithCatalog(ctx, "sleep-check")
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 3)

	admin, err := users.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
	require.NotNil(t, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte("s3cret")))

	file.Tests[0].Bands[1].Recommendation = "See a sleep specialist."
	report, err = seeder.Apply(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, Report{TestsUpdated: 1, UsersSkipped: 1}, report)

	stored, err = tests.FindBySlugWithCatalog(ctx, "sleep-check")
	require.NoError(t, err)
	assert.Len(t, stored.Questions, 3)
	require.Len(t, stored.ScoreBands, 2)
	assert.Equal(t, "See a sleep specialist.", stored.ScoreBands[1].Recommendation)
	assert.Equal(t, int64(1), dbtest.Count(t, db, &model.Test{}))
}

const shortPHQ = `
tests:
  - title: PHQ-9 Short
    slug: phq-9
    category: DEPRESSION
    default_options:
      - { label: Not at all, value: "0", score: 0 }
      - { label: Nearly every day, value: "3", score: 3 }
    questions:
      - { type: LIKERT_SCALE, prompt: Item one }
      - { type: LIKERT_SCALE, prompt: Item two }
      - { type: LIKERT_SCALE, prompt: Item three }
    bands:
      - { min: 0, max: 9, label: Any }
`

func TestSeeder_RefusesBandsThatMissStoredQuestions(t *testing.T) {
	db := dbtest.Open(t)
	tests := repository.NewTestRepository(db)
	stored := dbtest.CreatePHQ9(t, db)
	seeder := NewSeeder(tests, repository.NewUserRepository(db))
	ctx := context.Background()

	file, err := Load(strings.NewReader(shortPHQ))
	require.NoError(t, err)

	_, err = seeder.Apply(ctx, file)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	got, err := tests.FindByIDWithCatalog(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "PHQ-9 Depression Screening", got.Title)
	require.Len(t, got.ScoreBands, 5)
	band, err := scoring.Classify(model.Bands(got.ScoreBands), 18)
	require.NoError(t, err)
	assert.Equal(t, "ModeratelySevere", band.Label)
}

func TestSeeder_SkipsUserWithoutPassword(t *testing.T) {
	db := dbtest.Open(t)
	seeder := NewSeeder(repository.NewTestRepository(db), repository.NewUserRepository(db))
	seeder.getenv = func(string) string { return "" }

	file, err := Load(strings.NewReader(miniCatalog))
	require.NoError(t, err)
	report, err := seeder.Apply(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 0, report.UsersCreated)
	assert.Equal(t, 1, report.UsersSkipped)
	assert.Zero(t, dbtest.Count(t, db, &model.User{}))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
