package repository

import (
	"errors"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"

	"gorm.io/gorm"
)

type DefaultApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *DefaultApplicationRepository {
	return &DefaultApplicationRepository{db: db}
}

func (r *DefaultApplicationRepository) FindByID(id int64) (*entity.Application, error) {
	var application entity.Application
	err := r.db.First(&application, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &application, nil
}

// FindByApplicantAndProject looks an application up by its composite
// natural key. At most one row exists per pair; the unique index on
// (applicant_id, project_id) backs that invariant in storage.
func (r *DefaultApplicationRepository) FindByApplicantAndProject(applicantID, projectID int64) (*entity.Application, error) {
	var application entity.Application
	err := r.db.
		Where("applicant_id = ? AND project_id = ?", applicantID, projectID).
		First(&application).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &application, nil
}

// FindManyByProject returns one cursor window of a project's applications.
func (r *DefaultApplicationRepository) FindManyByProject(projectID int64, q pagination.PageQuery) ([]*entity.Application, error) {
	var applications []*entity.Application
	query, err := applyCursorWindow(r.db.Where("project_id = ?", projectID), q)
	if err != nil {
		return nil, err
	}

	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return orderAscending(applications, q), nil
}

func (r *DefaultApplicationRepository) Save(application *entity.Application) error {
	return r.db.Save(application).Error
}

func (r *DefaultApplicationRepository) Delete(application *entity.Application) error {
	return r.db.Delete(application).Error
}
