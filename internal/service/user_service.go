package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"movie_tracker/configs"
	"movie_tracker/db"
	"movie_tracker/internal/repository"
	"movie_tracker/model"
	"movie_tracker/util"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	Register(ctx context.Context, req *model.RegisterReq) (*model.AuthRes, error)
	Login(ctx context.Context, req *model.LoginReq) (*model.AuthRes, error)
	Logout(ctx context.Context, claims *util.MyJwtClaims) error
	ValidateUser(ctx context.Context, userId int64) error
}

type UserService struct {
	userRepo repository.IUserRepository
	cache    ICacheService
	timeout  time.Duration
	hashCost int
}

const (
	minUsernameLength = 3
	minPasswordLength = 8
)

func NewUserService(userRepo repository.IUserRepository, cache ICacheService) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
		timeout:  time.Duration(2) * time.Second,
		hashCost: bcrypt.DefaultCost,
	}
}

//------------------------------------------
//------------------------------------------

func (u *UserService) Register(ctx context.Context, req *model.RegisterReq) (*model.AuthRes, error) {
	if configs.GetDbConfigs().DisableRegistration {
		return nil, ErrRegistrationDisabled
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fields := validateRegister(username, email, req.Password); fields != nil {
		return nil, &ValidationError{Err: ErrInvalidRegistration, Fields: fields}
	}

	taken, err := u.userRepo.IsUsernameTaken(username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = u.userRepo.IsEmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(model.DefaultUserRole),
	}
	if err = u.userRepo.CreateUser(user); err != nil {
		if db.IsUniqueViolation(err) {
			// registered concurrently, report the field that collided
			if emailTaken, _ := u.userRepo.IsEmailTaken(email); emailTaken {
				return nil, ErrEmailTaken
			}
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return u.authResult(user)
}

func (u *UserService) Login(ctx context.Context, req *model.LoginReq) (*model.AuthRes, error) {
	if strings.TrimSpace(req.Identifier) == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByIdentifier(req.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return u.authResult(user)
}

// Logout revokes the token until it would have expired anyway.
func (u *UserService) Logout(ctx context.Context, claims *util.MyJwtClaims) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	return u.cache.BlacklistJwt(ctx, claims.ID, claims.TimeToExpire())
}

func (u *UserService) ValidateUser(ctx context.Context, userId int64) error {
	user, err := u.userRepo.GetUserById(userId)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

//------------------------------------------
//------------------------------------------

func (u *UserService) authResult(user *model.User) (*model.AuthRes, error) {
	token, err := util.CreateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &model.AuthRes{
		User: model.UserRes{
			Id:       user.Id,
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token.AccessToken,
	}, nil
}

func validateRegister(username string, email string, password string) map[string]string {
	fields := map[string]string{}
	if utf8.RuneCountInString(username) < minUsernameLength {
		fields["username"] = "must be at least 3 characters"
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
