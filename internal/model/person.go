package model

type Person struct {
	BaseModel
	FirstName string  `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(255);not null" json:"last_name"`
	Type      string  `gorm:"type:varchar(32);not null" json:"type"`
	Bio       *string `gorm:"type:text" json:"bio"`
	PhotoURL  *string `gorm:"type:text" json:"photo_url"`
	IsActive  *bool   `gorm:"default:true" json:"is_active"`
}

func (p Person) TableName() string {
	return "people"
}
