package repository

import (
	"context"
	"errors"

	"github.com/InnovativeSphere/jewel-dashboard/internal/auth"
	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/model"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"gorm.io/gorm"
)

// Login failures. Endpoints surface both as 400 with the message, not 401;
// the dashboard frontend distinguishes them from an expired session that way.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// Read paths never select the password hash.
const userColumns = "id, first_name, last_name, email, username, role, is_active, created_at, updated_at"

type UserRepository struct {
	*baseRepository
}

// LoginResult carries the signed token and the user with the hash stripped.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type UserUpdateParams struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

func (p UserUpdateParams) fields() (map[string]any, error) {
	fields := map[string]any{}
	if p.FirstName != nil {
		fields["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		fields["last_name"] = *p.LastName
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Username != nil {
		fields["username"] = *p.Username
	}
	if p.Password != nil {
		hash, err := util.HashPassword(*p.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if p.Role != nil {
		fields["role"] = *p.Role
	}
	if p.IsActive != nil {
		fields["is_active"] = *p.IsActive
	}
	return fields, nil
}

// Create hashes the password and inserts the user. Role defaults to admin and
// the account starts active.
func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser model.User, password string) (uint, error) {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	hash, err := util.HashPassword(password)
	if err != nil {
		return 0, err
	}
	newUser.PasswordHash = hash

	if newUser.Role == "" {
		newUser.Role = constant.RoleAdmin
	}
	if newUser.IsActive == nil {
		active := true
		newUser.IsActive = &active
	}

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(&newUser).Error; err != nil {
		return 0, err
	}

	return newUser.ID, nil
}

func (ur UserRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var users []model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Select(userColumns).Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, id uint) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %d \n", id)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Select(userColumns).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (ur *UserRepository) Update(ctx context.Context, tx *gorm.DB, id uint, params UserUpdateParams) (int64, error) {
	ur.logger.Debugf("Update user %d \n", id)

	fields, err := params.fields()
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, ErrNothingToUpdate
	}

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (ur *UserRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	ur.logger.Debugf("Delete user by id: %d \n", id)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	res := db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	return res.RowsAffected, res.Error
}

// Login exchanges email+password for a signed token. ErrUserNotFound and
// ErrInvalidPassword are domain failures, not auth failures.
func (ur UserRepository) Login(ctx context.Context, tx *gorm.DB, email, password string) (*LoginResult, error) {
	ur.logger.Debugf("Login attempt for email: %s \n", email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !util.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidPassword
	}

	token, err := ur.jwtService.GenerateToken(auth.JWTPayload{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return &LoginResult{Token: token, User: user}, nil
}
