package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/selfcheck/internal/model"
	"gorm.io/gorm"
)

// TestResultRepository is append-only: results are created and read, never updated.
type TestResultRepository interface {
	// WithTx binds the repository to an open transaction.
	WithTx(tx *gorm.DB) TestResultRepository
	Create(ctx context.Context, result *model.TestResult) error
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.TestResult, error)
	FindAllByUser(ctx context.Context, userID uuid.UUID, testID *uint) ([]model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) WithTx(tx *gorm.DB) TestResultRepository {
	return &testResultRepository{db: tx}
}

// Create inserts the result and its Answers. Referenced Test and User rows
// are never written through this path.
func (r *testResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	err := r.db.WithContext(ctx).Omit("Test", "User").Create(result).Error
	return translate(err, "test result")
}

func (r *testResultRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*model.TestResult, error) {
	var result model.TestResult
	err := r.db.WithContext(ctx).
		Preload("Test", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id ASC") }).
		Preload("Answers.Question", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("id = ?", id).
		First(&result).Error
	if err != nil {
		return nil, translate(err, "test result")
	}
	return &result, nil
}

func (r *testResultRepository) FindAllByUser(ctx context.Context, userID uuid.UUID, testID *uint) ([]model.TestResult, error) {
	var results []model.TestResult
	query := r.db.WithContext(ctx).
		Preload("Test", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ?", userID)
	if testID != nil {
		query = query.Where("test_id = ?", *testID)
	}
	if err := query.Order("completed_at DESC").Find(&results).Error; err != nil {
		return nil, translate(err, "test result")
	}
	return results, nil
}
