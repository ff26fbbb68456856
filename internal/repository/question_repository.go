package repository

import (
	"context"

	"github.com/lshigami/selfcheck/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByTestID(ctx context.Context, testID uint) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Create(question).Error, "question")
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, translate(err, "question")
	}
	return &question, nil
}

func (r *questionRepository) FindByTestID(ctx context.Context, testID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).
		Order("order_in_test ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, translate(err, "question")
	}
	return questions, nil
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return translate(r.db.WithContext(ctx).Save(question).Error, "question")
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if res.Error != nil {
		return translate(res.Error, "question")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "question")
	}
	return nil
}
