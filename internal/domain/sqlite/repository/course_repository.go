package repository

import (
	"errors"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"

	"gorm.io/gorm"
)

type DefaultCourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *DefaultCourseRepository {
	return &DefaultCourseRepository{db: db}
}

func (r *DefaultCourseRepository) FindByID(id int64) (*entity.Course, error) {
	var course entity.Course
	err := r.db.Where("deleted_at IS NULL").First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *DefaultCourseRepository) FindMany(q pagination.PageQuery) ([]*entity.Course, error) {
	var courses []*entity.Course
	query, err := applyCursorWindow(r.db.Where("deleted_at IS NULL"), q)
	if err != nil {
		return nil, err
	}

	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return orderAscending(courses, q), nil
}

func (r *DefaultCourseRepository) Save(course *entity.Course) error {
	return r.db.Save(course).Error
}
