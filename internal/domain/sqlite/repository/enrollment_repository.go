package repository

import (
	"errors"

	"skillhub/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultEnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *DefaultEnrollmentRepository {
	return &DefaultEnrollmentRepository{db: db}
}

func (r *DefaultEnrollmentRepository) FindByUserAndCourse(userID, courseID int64) (*entity.Enrollment, error) {
	var enrollment entity.Enrollment
	err := r.db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *DefaultEnrollmentRepository) Save(enrollment *entity.Enrollment) error {
	return r.db.Save(enrollment).Error
}

func (r *DefaultEnrollmentRepository) Delete(enrollment *entity.Enrollment) error {
	return r.db.Delete(enrollment).Error
}
