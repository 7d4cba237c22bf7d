package model

import "time"

// BaseModel is embedded by entities that track both creation and update
// times. Primary keys are plain auto-incrementing integers.
type BaseModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt *time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
