package handler

import (
	"errors"

	"movie_tracker/internal/service"
	"movie_tracker/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IAdminHandler interface {
	FetchDbConfigs(c *fiber.Ctx) error
}

type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

//------------------------------------------
//------------------------------------------

// FetchDbConfigs godoc
//
//	@Summary		Fetch Configs
//	@Description	Reload dynamic configs from mongodb.
//	@Tags			Admin
//	@Success		200			{object}	response.ResponseOKModel
//	@Failure		400,401,403	{object}	response.ResponseErrorModel
//	@Failure		503			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/v1/admin/fetch_configs [get]
func (m *AdminHandler) FetchDbConfigs(c *fiber.Ctx) error {
	err := m.adminService.FetchDbConfigs(c.UserContext())
	if err != nil {
		if errors.Is(err, service.ErrConfigsUnavailable) {
			return response.ResponseError(c, err.Error(), fiber.StatusServiceUnavailable)
		}
		return response.ResponseError(c, err.Error(), fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, "")
}
