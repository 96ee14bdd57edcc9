package middleware

import (
	"fmt"
	"regexp"
	"strings"

	"movie_tracker/internal/service"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
	"movie_tracker/pkg/response"
	"movie_tracker/util"

	"github.com/gofiber/fiber/v2"
)

// NewAuthMiddleware verifies the bearer access token and rejects revoked ones.
func NewAuthMiddleware(cache service.ICacheService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Get("Authorization", "")
		strArr := strings.Split(accessToken, " ")
		if len(strArr) == 2 && strings.EqualFold(strArr[0], "bearer") {
			accessToken = strArr[1]
		} else if len(strArr) != 1 || len(accessToken) < 30 {
			return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
		}

		token, claims, err := util.VerifyToken(accessToken)
		if err != nil {
			return response.ResponseError(c, "Unauthorized, Invalid accessToken", fiber.StatusUnauthorized)
		}
		if token == nil || claims == nil {
			return response.ResponseError(c, "Unauthorized, Invalid accessToken metaData", fiber.StatusUnauthorized)
		}

		// unknown revocation state rejects the request
		blacklisted, err := cache.IsJwtBlacklisted(c.UserContext(), claims.ID)
		if err != nil {
			errorMessage := fmt.Sprintf("Error on checking jwt blacklist: %v", err)
			errorHandler.SaveError(errorMessage, err)
			return response.ResponseError(c, response.ServerError, fiber.StatusServiceUnavailable)
		}
		if blacklisted {
			return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
		}

		c.Locals("accessToken", accessToken)
		c.Locals("jwtUserData", claims)
		return c.Next()
	}
}

// AdminMiddleware must run after the auth middleware.
func AdminMiddleware(c *fiber.Ctx) error {
	claims, ok := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if !ok || strings.ToLower(claims.Role) != string(model.DefaultAdminRole) {
		return response.ResponseError(c, response.AdminOnly, fiber.StatusForbidden)
	}
	return c.Next()
}

var (
	LocalhostRegex = regexp.MustCompile(`(?i)^(https?://)?localhost(:\d{4})?$`)
)
