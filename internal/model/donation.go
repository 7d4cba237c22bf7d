package model

import "time"

// Donation references a project by id. The write path does not verify the
// project exists before insert; join-based reads simply return no row for an
// orphaned donation.
type Donation struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID    uint       `gorm:"not null;index" json:"project_id"`
	DonorName    *string    `gorm:"type:varchar(255)" json:"donor_name"`
	Amount       float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	DonationDate *time.Time `gorm:"autoCreateTime" json:"donation_date"`
	CreatedAt    *time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (d Donation) TableName() string {
	return "donations"
}
