package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/helper"
	"github.com/lshigami/selfcheck/internal/model"
	"github.com/lshigami/selfcheck/internal/repository"
	"github.com/lshigami/selfcheck/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Report counts what Apply changed.
type Report struct {
	TestsCreated int
	TestsUpdated int
	UsersCreated int
	UsersSkipped int
}

type Seeder struct {
	tests  repository.TestRepository
	users  repository.UserRepository
	getenv func(string) string
}

func NewSeeder(tests repository.TestRepository, users repository.UserRepository) *Seeder {
	return &Seeder{tests: tests, users: users, getenv: os.Getenv}
}

// Apply upserts tests by slug and creates missing users. Existing tests get
// their metadata and bands refreshed; their questions are left alone because
// stored answers reference them.
func (s *Seeder) Apply(ctx context.Context, file *File) (Report, error) {
	var report Report
	for _, t := range file.Tests {
		created, err := s.upsertTest(ctx, t)
		if err != nil {
			return report, err
		}
		if created {
			report.TestsCreated++
		} else {
			report.TestsUpdated++
		}
	}
	for _, u := range file.Users {
		created, err := s.ensureUser(ctx, u)
		if err != nil {
			return report, err
		}
		if created {
			report.UsersCreated++
		} else {
			report.UsersSkipped++
		}
	}
	return report, nil
}

func (s *Seeder) upsertTest(ctx context.Context, t Test) (bool, error) {
	slug := t.Slug
	if slug == "" {
		slug = helper.Slugify(t.Title, helper.DefaultSlugMaxLen)
	}
	m := t.Model()
	m.Slug = slug

	existing, err := s.tests.FindBySlugWithCatalog(ctx, slug)
	switch {
	case err == nil:
		// Stored questions are kept, so the new bands must cover their max.
		maxScore := scoring.MaxPossible(model.Catalog(existing.Questions))
		if err := scoring.ValidateBands(model.Bands(m.ScoreBands), maxScore); err != nil {
			log.Error().Err(err).Str("slug", slug).Int("maxScore", maxScore).Msg("Seed: catalog bands do not fit stored questions")
			return false, fmt.Errorf("test %q: %w", slug, err)
		}
		existing.Title = m.Title
		existing.Category = m.Category
		existing.Instructions = m.Instructions
		existing.TimeLimitMinutes = m.TimeLimitMinutes
		if err := s.tests.UpdateWithBands(ctx, existing, m.ScoreBands); err != nil {
			return false, err
		}
		if len(existing.Questions) != len(m.Questions) {
			log.Warn().Str("slug", slug).Int("stored", len(existing.Questions)).Int("catalog", len(m.Questions)).
				Msg("Seed: question count differs from catalog; questions are not reseeded")
		}
		log.Info().Str("slug", slug).Msg("Seed: test updated")
		return false, nil
	case apperror.KindOf(err) == apperror.KindNotFound:
		if err := s.tests.Create(ctx, &m); err != nil {
			return false, err
		}
		log.Info().Str("slug", slug).Uint("testID", m.ID).Msg("Seed: test created")
		return true, nil
	default:
		return false, err
	}
}

func (s *Seeder) ensureUser(ctx context.Context, u User) (bool, error) {
	_, err := s.users.FindByEmail(ctx, u.Email)
	if err == nil {
		return false, nil
	}
	if apperror.KindOf(err) != apperror.KindNotFound {
		return false, err
	}

	password := s.getenv(u.PasswordEnv)
	if password == "" {
		log.Warn().Str("email", u.Email).Str("env", u.PasswordEnv).Msg("Seed: password variable is empty, user not created")
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	hashed := string(hash)
	user := model.User{Email: u.Email, Name: u.Name, Role: model.Role(u.Role), PasswordHash: &hashed}
	if err := s.users.Create(ctx, &user); err != nil {
		return false, err
	}
	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Seed: user created")
	return true, nil
}
