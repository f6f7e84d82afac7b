package repository

import (
	"errors"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"

	"gorm.io/gorm"
)

type DefaultProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *DefaultProjectRepository {
	return &DefaultProjectRepository{db: db}
}

// FindByID returns the active project with the given ID, or nil if it is
// absent or soft-deleted.
func (r *DefaultProjectRepository) FindByID(id int64) (*entity.Project, error) {
	var project entity.Project
	err := r.db.Where("deleted_at IS NULL").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindMany returns one cursor window of active projects ordered by ID.
func (r *DefaultProjectRepository) FindMany(q pagination.PageQuery) ([]*entity.Project, error) {
	var projects []*entity.Project
	query, err := applyCursorWindow(r.db.Where("deleted_at IS NULL"), q)
	if err != nil {
		return nil, err
	}

	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return orderAscending(projects, q), nil
}

func (r *DefaultProjectRepository) Save(project *entity.Project) error {
	return r.db.Save(project).Error
}
