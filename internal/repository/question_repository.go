package repository

import (
	"context"

	"github.com/lshigami/cbtengine/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *model.QuestionBankItem) error
	FindByID(ctx context.Context, id string) (*model.QuestionBankItem, error)
	// FindByIDs returns the subset of ids that exist; unknown ids are silently dropped.
	FindByIDs(ctx context.Context, ids []string) ([]model.QuestionBankItem, error)
	FindAll(ctx context.Context, subject string, difficulty model.Difficulty) ([]model.QuestionBankItem, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.QuestionBankItem) error {
	return translate(r.db.WithContext(ctx).Create(question).Error)
}

func (r *questionRepository) FindByID(ctx context.Context, id string) (*model.QuestionBankItem, error) {
	var question model.QuestionBankItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, translate(err)
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []string) ([]model.QuestionBankItem, error) {
	var questions []model.QuestionBankItem
	if len(ids) == 0 {
		return questions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindAll(ctx context.Context, subject string, difficulty model.Difficulty) ([]model.QuestionBankItem, error) {
	var questions []model.QuestionBankItem
	query := r.db.WithContext(ctx)
	if subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if err := query.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
