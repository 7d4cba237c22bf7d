package repository

import (
	"context"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

type ProjectPersonRepository struct {
	*baseRepository
}

// ProjectPersonRow is a link joined with the project title and person name.
type ProjectPersonRow struct {
	ID            uint       `json:"id"`
	ProjectID     uint       `json:"project_id"`
	PersonID      uint       `json:"person_id"`
	RoleInProject *string    `json:"role_in_project"`
	CreatedAt     *time.Time `json:"created_at"`
	ProjectTitle  string     `json:"project_title"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
}

// ProjectPersonFilter narrows GetAll; zero values mean no filter.
type ProjectPersonFilter struct {
	ProjectID uint
	PersonID  uint
}

type ProjectPersonUpdateParams struct {
	ProjectID     *uint   `json:"project_id"`
	PersonID      *uint   `json:"person_id"`
	RoleInProject *string `json:"role_in_project"`
}

func (p ProjectPersonUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.ProjectID != nil {
		fields["project_id"] = *p.ProjectID
	}
	if p.PersonID != nil {
		fields["person_id"] = *p.PersonID
	}
	if p.RoleInProject != nil {
		fields["role_in_project"] = *p.RoleInProject
	}
	return fields
}

// Create links a person to a project. Duplicate links are permitted.
func (lr *ProjectPersonRepository) Create(ctx context.Context, tx *gorm.DB, link *model.ProjectPerson) (uint, error) {
	lr.logger.Debugf("Link person %d to project %d \n", link.PersonID, link.ProjectID)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProjectPerson{}).Create(link).Error; err != nil {
		return 0, err
	}

	return link.ID, nil
}

func (lr ProjectPersonRepository) GetAll(ctx context.Context, tx *gorm.DB, filter ProjectPersonFilter) ([]ProjectPersonRow, error) {
	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.ProjectPerson{}).
		Select("project_people.id, project_people.project_id, project_people.person_id, project_people.role_in_project, project_people.created_at, projects.title AS project_title, people.first_name, people.last_name").
		Joins("JOIN projects ON project_people.project_id = projects.id").
		Joins("JOIN people ON project_people.person_id = people.id")
	if filter.ProjectID != 0 {
		query = query.Where("project_people.project_id = ?", filter.ProjectID)
	}
	if filter.PersonID != 0 {
		query = query.Where("project_people.person_id = ?", filter.PersonID)
	}

	var rows []ProjectPersonRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (lr *ProjectPersonRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params ProjectPersonUpdateParams) (int64, error) {
	lr.logger.Debugf("Update project-person link %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.ProjectPerson{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (lr *ProjectPersonRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	lr.logger.Debugf("Delete project-person link by id: %d \n", id)

	db := lr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectPerson{})
	return res.RowsAffected, res.Error
}
