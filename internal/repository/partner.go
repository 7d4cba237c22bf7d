package repository

import (
	"context"
	"errors"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

type PartnerRepository struct {
	*baseRepository
}

type PartnerUpdateParams struct {
	Name       *string `json:"name"`
	LogoURL    *string `json:"logo_url"`
	WebsiteURL *string `json:"website_url"`
}

func (p PartnerUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.LogoURL != nil {
		fields["logo_url"] = *p.LogoURL
	}
	if p.WebsiteURL != nil {
		fields["website_url"] = *p.WebsiteURL
	}
	return fields
}

func (pr *PartnerRepository) Create(ctx context.Context, tx *gorm.DB, partner *model.Partner) (uint, error) {
	pr.logger.Debugf("Create partner with data: %+v \n", partner)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Partner{}).Create(partner).Error; err != nil {
		return 0, err
	}

	return partner.ID, nil
}

// GetAll returns partners newest first.
func (pr PartnerRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.Partner, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var partners []model.Partner
	if err := db.WithContext(ctx).Model(&model.Partner{}).Order("created_at DESC").Find(&partners).Error; err != nil {
		return nil, err
	}

	return partners, nil
}

func (pr PartnerRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.Partner, error) {
	pr.logger.Debugf("Get partner by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var partner model.Partner
	if err := db.WithContext(ctx).Model(&model.Partner{}).Where("id = ?", id).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &partner, nil
}

func (pr *PartnerRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params PartnerUpdateParams) (int64, error) {
	pr.logger.Debugf("Update partner %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Partner{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (pr *PartnerRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	pr.logger.Debugf("Delete partner by id: %d \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Partner{})
	return res.RowsAffected, res.Error
}
