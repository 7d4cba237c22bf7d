package model

// User is an admin account. PasswordHash never leaves the server: it is
// excluded from JSON and the repository read paths select around it.
type User struct {
	BaseModel
	FirstName    string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string `gorm:"type:varchar(255);not null" json:"last_name"`
	Email        string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Username     string `gorm:"type:varchar(255);not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(32);default:admin" json:"role"`
	IsActive     *bool  `gorm:"default:true" json:"is_active"`
}

func (u User) TableName() string {
	return "users"
}
