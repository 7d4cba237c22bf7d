package model

import "time"

// ProjectImage stores a photo URL for a project. Description conventionally
// carries "before"/"after" tags used by the photo gallery.
type ProjectImage struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	ImageURL    string     `gorm:"type:text;not null" json:"image_url"`
	Description *string    `gorm:"type:text" json:"description"`
	CreatedAt   *time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (pi ProjectImage) TableName() string {
	return "project_images"
}
