package repository

import (
	"errors"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"

	"gorm.io/gorm"
)

type DefaultCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{db: db}
}

func (r *DefaultCommentRepository) FindByID(id int64) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindManyByTopic returns one cursor window of a topic's comments.
func (r *DefaultCommentRepository) FindManyByTopic(kind entity.TopicKind, topicID int64, q pagination.PageQuery) ([]*entity.Comment, error) {
	var comments []*entity.Comment
	query, err := applyCursorWindow(
		r.db.Where("topic_kind = ? AND topic_id = ?", kind, topicID), q)
	if err != nil {
		return nil, err
	}

	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return orderAscending(comments, q), nil
}

func (r *DefaultCommentRepository) Save(comment *entity.Comment) error {
	return r.db.Save(comment).Error
}

func (r *DefaultCommentRepository) Delete(comment *entity.Comment) error {
	return r.db.Delete(comment).Error
}
