package repository

import (
	"context"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"gorm.io/gorm"
)

type DonationRepository struct {
	*baseRepository
}

// DonationRow is a donation joined with its project title for display.
type DonationRow struct {
	ID           uint       `json:"id"`
	ProjectID    uint       `json:"project_id"`
	DonorName    *string    `json:"donor_name"`
	Amount       float64    `json:"amount"`
	DonationDate *time.Time `json:"donation_date"`
	CreatedAt    *time.Time `json:"created_at"`
	ProjectTitle string     `json:"project_title"`
}

// AmountRangeBucket is one row of the group-by-amount aggregate.
type AmountRangeBucket struct {
	AmountRange    string  `json:"amount_range"`
	TotalDonations int64   `json:"total_donations"`
	TotalAmount    float64 `json:"total_amount"`
}

// ProjectTotal is one row of the total-per-project aggregate.
type ProjectTotal struct {
	ProjectID    uint    `json:"project_id"`
	ProjectTitle string  `json:"project_title"`
	TotalDonated float64 `json:"total_donated"`
}

type DonationUpdateParams struct {
	ProjectID *uint    `json:"project_id"`
	DonorName *string  `json:"donor_name"`
	Amount    *float64 `json:"amount"`
}

func (p DonationUpdateParams) fields() map[string]any {
	fields := map[string]any{}
	if p.ProjectID != nil {
		fields["project_id"] = *p.ProjectID
	}
	if p.DonorName != nil {
		fields["donor_name"] = *p.DonorName
	}
	if p.Amount != nil {
		fields["amount"] = *p.Amount
	}
	return fields
}

// Create inserts the donation as-is. The referenced project is not verified
// to exist, matching the legacy write path.
func (dr *DonationRepository) Create(ctx context.Context, tx *gorm.DB, donation *model.Donation) (uint, error) {
	dr.logger.Debugf("Create donation with data: %+v \n", donation)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Donation{}).Create(donation).Error; err != nil {
		return 0, err
	}

	return donation.ID, nil
}

// GetAll lists donations joined to their project title, optionally narrowed
// to one project. projectID 0 means no filter.
func (dr DonationRepository) GetAll(ctx context.Context, tx *gorm.DB, projectID uint) ([]DonationRow, error) {
	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Donation{}).
		Select("donations.id, donations.project_id, donations.donor_name, donations.amount, donations.donation_date, donations.created_at, projects.title AS project_title").
		Joins("JOIN projects ON donations.project_id = projects.id")
	if projectID != 0 {
		query = query.Where("donations.project_id = ?", projectID)
	}

	var rows []DonationRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (dr *DonationRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params DonationUpdateParams) (int64, error) {
	dr.logger.Debugf("Update donation %d with params: %+v \n", id, params)

	fields := params.fields()
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.Donation{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (dr *DonationRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	dr.logger.Debugf("Delete donation by id: %d \n", id)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Donation{})
	return res.RowsAffected, res.Error
}

// GroupByAmountRange buckets all donations into fixed amount ranges and
// returns count and sum per bucket. The ORDER BY sorts the label strings, so
// the order is "0-50", "101-500", "500+", "51-100". That lexical order is what
// the chart on the dashboard was built against; keep it.
func (dr DonationRepository) GroupByAmountRange(ctx context.Context, tx *gorm.DB) ([]AmountRangeBucket, error) {
	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var buckets []AmountRangeBucket
	err := db.WithContext(ctx).Raw(`
		SELECT
			CASE
				WHEN amount BETWEEN 0 AND 50 THEN '0-50'
				WHEN amount BETWEEN 51 AND 100 THEN '51-100'
				WHEN amount BETWEEN 101 AND 500 THEN '101-500'
				WHEN amount > 500 THEN '500+'
			END AS amount_range,
			COUNT(*) AS total_donations,
			SUM(amount) AS total_amount
		FROM donations
		GROUP BY amount_range
		ORDER BY amount_range`).Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	return buckets, nil
}

// TotalPerProject sums donation amounts per project, joined to the title.
func (dr DonationRepository) TotalPerProject(ctx context.Context, tx *gorm.DB) ([]ProjectTotal, error) {
	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var totals []ProjectTotal
	err := db.WithContext(ctx).Raw(`
		SELECT d.project_id, p.title AS project_title, SUM(d.amount) AS total_donated
		FROM donations d
		JOIN projects p ON d.project_id = p.id
		GROUP BY d.project_id, p.title`).Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}
