package model

type Project struct {
	BaseModel
	Title       string  `gorm:"type:varchar(255);not null" json:"title" form:"title" binding:"required"`
	Description *string `gorm:"type:text" json:"description" form:"description"`
	StartDate   *string `gorm:"type:date" json:"start_date" form:"start_date"`
	EndDate     *string `gorm:"type:date" json:"end_date" form:"end_date"`
}

func (p Project) TableName() string {
	return "projects"
}
