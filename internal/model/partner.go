package model

type Partner struct {
	BaseModel
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	LogoURL    string  `gorm:"type:text;not null" json:"logo_url"`
	WebsiteURL *string `gorm:"type:text" json:"website_url"`
}

func (p Partner) TableName() string {
	return "partners"
}
