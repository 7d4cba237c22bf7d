package repository

import (
	"context"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

type ProjectImageRepository struct {
	*baseRepository
}

// ImageInput is one image in a bulk insert.
type ImageInput struct {
	ImageURL    string  `json:"image_url" binding:"required"`
	Description *string `json:"description"`
}

// ProjectImageRow is an image joined with its project title.
type ProjectImageRow struct {
	ID           uint       `json:"id"`
	ProjectID    uint       `json:"project_id"`
	ImageURL     string     `json:"image_url"`
	Description  *string    `json:"description"`
	CreatedAt    *time.Time `json:"created_at"`
	ProjectTitle string     `json:"project_title"`
}

type ProjectImageUpdateParams struct {
	ProjectID   *uint   `json:"project_id"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

func (p ProjectImageUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.ProjectID != nil {
		fields["project_id"] = *p.ProjectID
	}
	if p.ImageURL != nil {
		fields["image_url"] = *p.ImageURL
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	return fields
}

// AddToProject bulk-inserts one or more images for a project and returns the
// number of inserted rows.
func (ir *ProjectImageRepository) AddToProject(ctx context.Context, tx *gorm.DB, projectID uint, images []ImageInput) (int64, error) {
	ir.logger.Debugf("Add %d image(s) to project %d \n", len(images), projectID)

	rows := make([]model.ProjectImage, 0, len(images))
	for _, img := range images {
		rows = append(rows, model.ProjectImage{
			ProjectID:   projectID,
			ImageURL:    img.ImageURL,
			Description: img.Description,
		})
	}

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.ProjectImage{}).Create(&rows)
	return res.RowsAffected, res.Error
}

// GetAll lists images joined to their project title, optionally for one
// project. projectID 0 means no filter.
func (ir ProjectImageRepository) GetAll(ctx context.Context, tx *gorm.DB, projectID uint) ([]ProjectImageRow, error) {
	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.ProjectImage{}).
		Select("project_images.id, project_images.project_id, project_images.image_url, project_images.description, project_images.created_at, projects.title AS project_title").
		Joins("JOIN projects ON project_images.project_id = projects.id")
	if projectID != 0 {
		query = query.Where("project_images.project_id = ?", projectID)
	}

	var rows []ProjectImageRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (ir *ProjectImageRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params ProjectImageUpdateParams) (int64, error) {
	ir.logger.Debugf("Update project image %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.ProjectImage{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (ir *ProjectImageRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	ir.logger.Debugf("Delete project image by id: %d \n", id)

	db := ir.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectImage{})
	return res.RowsAffected, res.Error
}
