package repository

import (
	"context"

	"github.com/lshigami/selfcheck/internal/model"
	"gorm.io/gorm"
)

// TestWithQuestionCount is a listing row.
type TestWithQuestionCount struct {
	model.Test
	QuestionCount int
}

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	UpdateWithBands(ctx context.Context, test *model.Test, bands []model.ScoreBand) error
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithCatalog(ctx context.Context, id uint) (*model.Test, error)
	FindBySlugWithCatalog(ctx context.Context, slug string) (*model.Test, error)
	FindAllWithQuestionCount(ctx context.Context, activeOnly bool) ([]TestWithQuestionCount, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// Create inserts the test with its Questions and ScoreBands. is_active has a
// column default, so an inactive test gets the flag cleared in the same
// transaction and is never visible as active.
func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	active := test.IsActive
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		if active {
			return nil
		}
		return tx.Model(test).Update("is_active", false).Error
	})
	return translate(err, "test")
}

// UpdateWithBands saves test metadata and, when bands is non-nil, replaces the
// whole band table. The slug is kept so published links stay valid.
func (r *testRepository) UpdateWithBands(ctx context.Context, test *model.Test, bands []model.ScoreBand) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(test).Select("Title", "Category", "Instructions", "TimeLimitMinutes", "IsActive").
			Updates(test).Error; err != nil {
			return err
		}
		if bands == nil {
			return nil
		}
		if err := tx.Where("test_id = ?", test.ID).Delete(&model.ScoreBand{}).Error; err != nil {
			return err
		}
		for i := range bands {
			bands[i].ID = 0
			bands[i].TestID = test.ID
		}
		if len(bands) > 0 {
			if err := tx.Create(&bands).Error; err != nil {
				return err
			}
		}
		test.ScoreBands = bands
		return nil
	})
	return translate(err, "test")
}

func (r *testRepository) SetActive(ctx context.Context, id uint, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return translate(res.Error, "test")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "test")
	}
	return nil
}

func (r *testRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Test{}, id)
	if res.Error != nil {
		return translate(res.Error, "test")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "test")
	}
	return nil
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, translate(err, "test")
	}
	return &test, nil
}

func (r *testRepository) withCatalog(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC, questions.id ASC")
		}).
		Preload("ScoreBands", func(db *gorm.DB) *gorm.DB {
			return db.Order("score_bands.sort_order ASC, score_bands.min_score ASC")
		})
}

func (r *testRepository) FindByIDWithCatalog(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.withCatalog(ctx).First(&test, id).Error; err != nil {
		return nil, translate(err, "test")
	}
	return &test, nil
}

func (r *testRepository) FindBySlugWithCatalog(ctx context.Context, slug string) (*model.Test, error) {
	var test model.Test
	if err := r.withCatalog(ctx).Where("slug = ?", slug).First(&test).Error; err != nil {
		return nil, translate(err, "test")
	}
	return &test, nil
}

func (r *testRepository) FindAllWithQuestionCount(ctx context.Context, activeOnly bool) ([]TestWithQuestionCount, error) {
	var results []TestWithQuestionCount
	query := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM questions WHERE questions.test_id = tests.id AND questions.deleted_at IS NULL) AS question_count").
		Where("tests.deleted_at IS NULL")
	if activeOnly {
		query = query.Where("tests.is_active = ?", true)
	}
	if err := query.Order("tests.created_at DESC").Scan(&results).Error; err != nil {
		return nil, translate(err, "test")
	}
	return results, nil
}

// SlugExists checks soft-deleted rows too, since the unique index covers them.
func (r *testRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&model.Test{}).
		Where("LOWER(slug) = LOWER(?)", slug).Count(&count).Error
	if err != nil {
		return false, translate(err, "test")
	}
	return count > 0, nil
}
