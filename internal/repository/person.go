package repository

import (
	"context"
	"errors"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

// ErrPersonFieldsRequired is raised by the person repository itself; unlike
// the other entities its required-field check lives here, not in the endpoint.
var ErrPersonFieldsRequired = errors.New("first_name, last_name, and type are required")

type PersonRepository struct {
	*baseRepository
}

type PersonUpdateParams struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Type      *string `json:"type"`
	Bio       *string `json:"bio"`
	PhotoURL  *string `json:"photo_url"`
	IsActive  *bool   `json:"is_active"`
}

func (p PersonUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Bio != nil {
		fields["bio"] = *p.Bio
	}
	if p.PhotoURL != nil {
		fields["photo_url"] = *p.PhotoURL
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	return fields
}

func (pr *PersonRepository) Create(ctx context.Context, tx *gorm.DB, person *model.Person) (uint, error) {
	pr.logger.Debugf("Create person with data: %+v \n", person)

	if person.FirstName == "" || person.LastName == "" || person.Type == "" {
		return 0, ErrPersonFieldsRequired
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Person{}).Create(person).Error; err != nil {
		return 0, err
	}

	return person.ID, nil
}

func (pr PersonRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Person, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var people []model.Person
	if err := db.WithContext(ctx).Model(&model.Person{}).Find(&people).Error; err != nil {
		return nil, err
	}

	return people, nil
}

func (pr PersonRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Person, error) {
	pr.logger.Debugf("Get person by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var person model.Person
	if err := db.WithContext(ctx).Model(&model.Person{}).Where("id = ?", id).First(&person).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &person, nil
}

func (pr *PersonRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params PersonUpdateParams) (int64, error) {
	pr.logger.Debugf("Update person %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Person{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (pr *PersonRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	pr.logger.Debugf("Delete person by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Person{})
	return res.RowsAffected, res.Error
}
