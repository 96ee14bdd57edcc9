package handler

import (
	"errors"
	"fmt"
	"strconv"

	"movie_tracker/internal/service"
	"movie_tracker/model"
	errorHandler "movie_tracker/pkg/error"
	"movie_tracker/pkg/response"
	"movie_tracker/util"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	ToggleAction(c *fiber.Ctx) error
	GetMovieList(c *fiber.Ctx) error
	GetMovieStatus(c *fiber.Ctx) error
	GetMovieCounts(c *fiber.Ctx) error
	RateMovie(c *fiber.Ctx) error
}

type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// ToggleAction godoc
//
//	@Summary		Toggle Action
//	@Description	Flip watchlist, like, dislike or watched for the movie. The catalog entry is stored on first sight.
//	@Tags			Movies
//	@Param			action		path		string				true	"watchlist | like | dislike | watched"
//	@Param			movie		body		model.MoviePayload	true	"tmdb movie object"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Failure		409			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/movies/:action [post]
func (m *MovieHandler) ToggleAction(c *fiber.Ctx) error {
	action, ok := model.ParseAction(c.Params("action", ""))
	if !ok {
		return response.ResponseError(c, response.ActionNotFound, fiber.StatusNotFound)
	}

	var payload model.MoviePayload
	if err := c.BodyParser(&payload); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := m.movieService.ApplyAction(c.UserContext(), jwtUserData.UserId, action, &payload)
	if err != nil {
		return movieErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

// GetMovieList godoc
//
//	@Summary		Movie List
//	@Description	Movies of the user in the list, most recently changed first.
//	@Tags			Movies
//	@Param			list		path		string	true	"watchlist | liked | disliked | watched"
//	@Success		200			{object}	model.MoviesListRes
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/movies/:list [get]
func (m *MovieHandler) GetMovieList(c *fiber.Ctx) error {
	list, ok := model.ParseListKind(c.Params("list", ""))
	if !ok {
		return response.ResponseError(c, response.ListNotFound, fiber.StatusNotFound)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := m.movieService.GetMovieList(c.UserContext(), jwtUserData.UserId, list)
	if err != nil {
		return movieErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

// GetMovieStatus godoc
//
//	@Summary		Movie Status
//	@Description	Flags of the user for the movie, all false when the user never touched it.
//	@Tags			Movies
//	@Param			tmdbId		path		int		true	"tmdb id"
//	@Success		200			{object}	model.MovieStatusRes
//	@Failure		400,401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/movies/:tmdbId/status [get]
func (m *MovieHandler) GetMovieStatus(c *fiber.Ctx) error {
	tmdbId, ok := parseTmdbId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := m.movieService.GetMovieStatus(c.UserContext(), jwtUserData.UserId, tmdbId)
	if err != nil {
		return movieErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

// GetMovieCounts godoc
//
//	@Summary		Movie Counts
//	@Description	Number of liked, disliked, watched, watchlisted and rated movies of the user.
//	@Tags			Movies
//	@Success		200		{object}	model.MovieCountsRes
//	@Failure		401		{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/movies/counts [get]
func (m *MovieHandler) GetMovieCounts(c *fiber.Ctx) error {
	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := m.movieService.GetMovieCounts(c.UserContext(), jwtUserData.UserId)
	if err != nil {
		return movieErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

// RateMovie godoc
//
//	@Summary		Rate Movie
//	@Description	Set the user rating (1-10) of a known movie, null clears it.
//	@Tags			Movies
//	@Param			tmdbId		path		int					true	"tmdb id"
//	@Param			rating		body		model.RatingReq		true	"rating"
//	@Success		200			{object}	model.RatingRes
//	@Failure		400,401,404	{object}	response.ResponseErrorModel
//	@Failure		409			{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/movies/:tmdbId/rating [put]
func (m *MovieHandler) RateMovie(c *fiber.Ctx) error {
	tmdbId, ok := parseTmdbId(c)
	if !ok {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	var req model.RatingReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	jwtUserData := c.Locals("jwtUserData").(*util.MyJwtClaims)
	res, err := m.movieService.RateMovie(c.UserContext(), jwtUserData.UserId, tmdbId, req.Rating)
	if err != nil {
		return movieErrorResponse(c, err)
	}

	return response.ResponseData(c, fiber.StatusOK, res)
}

//------------------------------------------
//------------------------------------------

func parseTmdbId(c *fiber.Ctx) (int64, bool) {
	tmdbId, err := strconv.ParseInt(c.Params("tmdbId", ""), 10, 64)
	if err != nil || tmdbId <= 0 {
		return 0, false
	}
	return tmdbId, true
}

func movieErrorResponse(c *fiber.Ctx, err error) error {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		return response.ResponseValidation(c, response.InvalidMovieData, validation.Fields)
	case errors.Is(err, service.ErrInvalidAction):
		return response.ResponseError(c, response.ActionNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrInvalidRating):
		return response.ResponseError(c, response.InvalidRating, fiber.StatusBadRequest)
	case errors.Is(err, service.ErrMovieNotFound):
		return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrUserNotFound):
		return response.ResponseError(c, response.UserNotFound, fiber.StatusNotFound)
	case errors.Is(err, service.ErrConflict):
		return response.ResponseError(c, response.ConcurrentUpdate, fiber.StatusConflict)
	case errors.Is(err, service.ErrStoreUnavailable):
		return response.ResponseError(c, response.DatabaseUnavailable, fiber.StatusServiceUnavailable)
	default:
		errorMessage := fmt.Sprintf("Error on %v %v: %v", c.Method(), c.Route().Path, err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
}
