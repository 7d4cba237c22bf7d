package repository

import (
	"context"
	"errors"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// ProjectUpdateParams enumerates the updatable fields. A nil field is left
// untouched by Update.
type ProjectUpdateParams struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (p ProjectUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.Title != nil {
		fields["title"] = *p.Title
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.StartDate != nil {
		fields["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		fields["end_date"] = *p.EndDate
	}
	return fields
}

func (pr *ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (uint, error) {
	pr.logger.Debugf("Create project with data: %+v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return 0, err
	}

	return project.ID, nil
}

func (pr ProjectRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// GetById returns nil without error when no row matches.
func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (pr *ProjectRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params ProjectUpdateParams) (int64, error) {
	pr.logger.Debugf("Update project %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (pr *ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	pr.logger.Debugf("Delete project by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	return res.RowsAffected, res.Error
}
