package util

import (
	"testing"
	"time"

	"movie_tracker/configs"
	"movie_tracker/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSecret(t *testing.T, secret string) {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", secret)
	configs.LoadEnvVariables()
}

func TestCreateAndVerifyToken(t *testing.T) {
	loadSecret(t, "test-secret")
	user := &model.User{Id: 7, Username: "tyler", Role: string(model.DefaultUserRole)}

	detail, err := CreateAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, detail.TokenId)
	assert.Greater(t, detail.ExpiresAt, time.Now().UnixMilli())

	token, claims, err := VerifyToken(detail.AccessToken)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, int64(7), claims.UserId)
	assert.Equal(t, "tyler", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, detail.TokenId, claims.ID)
	assert.Greater(t, claims.TimeToExpire(), time.Duration(0))

	other, err := CreateAccessToken(user)
	require.NoError(t, err)
	assert.NotEqual(t, detail.TokenId, other.TokenId)
}

func TestVerifyTokenRejects(t *testing.T) {
	loadSecret(t, "test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, MyJwtClaims{
			UserId: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)
		_, _, err = VerifyToken(signed)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, MyJwtClaims{
			UserId: 1,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			},
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, _, err = VerifyToken(signed)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, MyJwtClaims{UserId: 1})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, _, err = VerifyToken(signed)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := VerifyToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestCreateAccessTokenNeedsSecret(t *testing.T) {
	loadSecret(t, "")
	_, err := CreateAccessToken(&model.User{Id: 1})
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestTimeToExpire(t *testing.T) {
	var claims MyJwtClaims
	assert.Equal(t, time.Duration(0), claims.TimeToExpire())
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	assert.Equal(t, time.Duration(0), claims.TimeToExpire())
}
