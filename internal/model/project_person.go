package model

import "time"

// ProjectPerson links a person to a project. There is no uniqueness
// constraint: duplicate (project_id, person_id, role) rows are allowed, as in
// the legacy schema. Whether that is intentional was never settled upstream.
type ProjectPerson struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID     uint       `gorm:"not null;index" json:"project_id"`
	PersonID      uint       `gorm:"not null;index" json:"person_id"`
	RoleInProject *string    `gorm:"type:varchar(64)" json:"role_in_project"`
	CreatedAt     *time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (pp ProjectPerson) TableName() string {
	return "project_people"
}
