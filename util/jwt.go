package util

import (
	"errors"
	"fmt"
	"time"

	"movie_tracker/configs"
	"movie_tracker/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type MyJwtClaims struct {
	UserId   int64  `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type TokenDetail struct {
	AccessToken string
	TokenId     string
	ExpiresAt   int64
}

var ErrMissingSecret = errors.New("access token secret is not configured")

func CreateAccessToken(user *model.User) (*TokenDetail, error) {
	secret := configs.GetConfigs().AccessTokenSecret
	if secret == "" {
		return nil, ErrMissingSecret
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(configs.GetConfigs().AccessTokenExpireHour) * time.Hour)
	claims := MyJwtClaims{
		UserId:   user.Id,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(user.Id),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &TokenDetail{
		AccessToken: signed,
		TokenId:     claims.ID,
		ExpiresAt:   expiresAt.UnixMilli(),
	}, nil
}

func VerifyToken(tokenString string) (*jwt.Token, *MyJwtClaims, error) {
	claims := MyJwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signature method")
		}
		return []byte(configs.GetConfigs().AccessTokenSecret), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, nil, err
	}

	return token, &claims, nil
}

// TimeToExpire is how long the token stays valid, zero when already expired.
func (c *MyJwtClaims) TimeToExpire() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	remaining := time.Until(c.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
