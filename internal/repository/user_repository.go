package repository

import (
	"errors"
	"strings"

	"movie_tracker/model"

	"gorm.io/gorm"
)

type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserById(userId int64) (*model.User, error)
	GetUserByIdentifier(identifier string) (*model.User, error)
	IsUsernameTaken(username string) (bool, error)
	IsEmailTaken(email string) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetUserById(userId int64) (*model.User, error) {
	var user model.User
	err := r.db.
		Model(&model.User{}).
		Where("id = ?", userId).
		Take(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByIdentifier matches either the username or the email, case-insensitively.
func (r *UserRepository) GetUserByIdentifier(identifier string) (*model.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	var user model.User
	err := r.db.
		Model(&model.User{}).
		Where("LOWER(username) = ? OR LOWER(email) = ?", identifier, identifier).
		Take(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

//------------------------------------------
//------------------------------------------

func (r *UserRepository) IsUsernameTaken(username string) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.User{}).
		Where("LOWER(username) = ?", strings.ToLower(username)).
		Count(&count).
		Error
	return count > 0, err
}

func (r *UserRepository) IsEmailTaken(email string) (bool, error) {
	var count int64
	err := r.db.
		Model(&model.User{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).
		Error
	return count > 0, err
}
