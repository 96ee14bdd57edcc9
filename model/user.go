package model

import "time"

type User struct {
	Id           int64     `gorm:"column:id;autoIncrement;primaryKey;" json:"id"`
	Username     string    `gorm:"column:username;type:text;not null;uniqueIndex:User_username_key;" json:"username"`
	Email        string    `gorm:"column:email;type:text;not null;uniqueIndex:User_email_key;" json:"email"`
	PasswordHash string    `gorm:"column:passwordHash;type:text;not null;" json:"-"`
	Role         string    `gorm:"column:role;type:text;not null;default:'user';" json:"-"`
	CreatedAt    time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP;" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;not null;" json:"-"`
}

func (User) TableName() string {
	return "User"
}

//------------------------------------------
//------------------------------------------

type DefaultRoleName string

const (
	DefaultUserRole  DefaultRoleName = "user"
	DefaultAdminRole DefaultRoleName = "admin"
)

//------------------------------------------
//------------------------------------------

type RegisterReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginReq struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserRes struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthRes struct {
	User  UserRes `json:"user"`
	Token string  `json:"token"`
}
