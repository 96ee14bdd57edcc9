package handler

import (
	"errors"
	"fmt"

	"movie_tracker/internal/service"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
	"movie_tracker/pkg/response"
	"movie_tracker/util"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Register(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
	Validate(c *fiber.Ctx) error
	Logout(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type ValidateRes struct {
	IsValid bool `json:"isValid"`
}

//------------------------------------------
//------------------------------------------

// Register godoc
//
//	@Summary		Register
//	@Description	Create an account and return an access token.
//	@Tags			Auth
//	@Param			user		body		model.RegisterReq	true	"register data"
//	@Success		201			{object}	model.AuthRes
//	@Failure		400,403		{object}	response.ResponseErrorModel
//	@Failure		409			{object}	response.ResponseErrorModel
//	@Router			/api/auth/register [post]
func (m *UserHandler) Register(c *fiber.Ctx) error {
	var req model.RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.userService.Register(c.UserContext(), &req)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusCreated, res)
}

// Login godoc
//
//	@Summary		Login
//	@Description	Login with username or email.
//	@Tags			Auth
//	@Param			user		body		model.LoginReq	true	"login data"
//	@Success		200			{object}	model.AuthRes
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Router			/api/auth/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	res, err := m.userService.Login(c.UserContext(), &req)
	if err != nil {
		return userErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

// Validate godoc
//
//	@Summary		Validate Token
//	@Description	Check the access token still belongs to an existing user.
//	@Tags			Auth
//	@Success		200			{object}	ValidateRes
//	@Failure		401,404		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/auth/validate [get]
func (m *UserHandler) Validate(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if err := m.userService.ValidateUser(c.UserContext(), jwtUserData.UserId); err != nil {
		return userErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, ValidateRes{IsValid: true})
}

// Logout godoc
//
//	@Summary		Logout
//	@Description	Revoke the access token.
//	@Tags			Auth
//	@Success		200		{object}	response.ResponseOKModel
//	@Failure		401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/auth/logout [post]
func (m *UserHandler) Logout(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	if err := m.userService.Logout(c.UserContext(), jwtUserData); err != nil {
		return userErrorResponse(c, err)
	}

	return response.ResponseOK(c, "")
}

//------------------------------------------
//------------------------------------------

func userErrorResponse(c *fiber.Ctx, err error) error {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return response.ResponseValidation(c, response.InvalidUserData, validation.Fields)
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.ResponseError(c, response.InvalidCredentials, fiber.StatusUnauthorized)
	case errors.Is(err, service.ErrUsernameTaken):
		return response.ResponseError(c, response.UsernameAlreadyExist, fiber.StatusConflict)
	case errors.Is(err, service.ErrEmailTaken):
		return response.ResponseError(c, response.EmailAlreadyExist, fiber.StatusConflict)
	case errors.Is(err, service.ErrRegistrationDisabled):
		return response.ResponseError(c, response.RegistrationDisabled, fiber.StatusForbidden)
	case errors.Is(err, service.ErrUserNotFound):
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	default:
		errorMessage := fmt.Sprintf("Error on %v %v: %v", c.Method(), c.Route().Path, err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
