package handler

import (
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ISavedHandler interface {
	CreateSavedMovie(c *fiber.Ctx) error
	ListSavedMovies(c *fiber.Ctx) error
	GetSavedByMovie(c *fiber.Ctx) error
	UpdateSavedMovie(c *fiber.Ctx) error
	DeleteSavedMovie(c *fiber.Ctx) error
}

type SavedHandler struct {
	savedService service.ISavedService
}

func NewSavedHandler(savedService service.ISavedService) *SavedHandler {
	return &SavedHandler{
		savedService: savedService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateSavedMovie godoc
//
//	@Summary		Save Movie
//	@Description	save a movie for a user with optional personal metadata.
//	@Tags			Saved-Movies
//	@Param			body	body		model.CreateSavedMovieReq	true	"saved movie"
//	@Success		201		{object}	model.SavedMovie
//	@Failure		400,500	{object}	response.ResponseErrorModel
//	@Router			/v1/saved [post]
func (m *SavedHandler) CreateSavedMovie(c *fiber.Ctx) error {
	var req model.CreateSavedMovieReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	saved, err := m.savedService.CreateSavedMovie(&req)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, saved)
}

// ListSavedMovies godoc
//
//	@Summary		List Saved Movies
//	@Description	all saved movies of a user, newest first.
//	@Tags			Saved-Movies
//	@Param			userId	query		int	true	"numeric userId"
//	@Success		200		{object}	[]model.SavedMovie
//	@Failure		500		{object}	response.ResponseErrorModel
//	@Router			/v1/saved [get]
func (m *SavedHandler) ListSavedMovies(c *fiber.Ctx) error {
	userId := int64(c.QueryInt("userId", 0))

	result, err := m.savedService.ListSavedMovies(userId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// GetSavedByMovie godoc
//
//	@Summary		Get Saved Movie
//	@Description	the saved record of a movie for a user, data is null when not saved.
//	@Tags			Saved-Movies
//	@Param			movieId	path		int	true	"movieId"
//	@Param			userId	query		int	true	"numeric userId"
//	@Success		200		{object}	model.SavedMovie
//	@Failure		400,500	{object}	response.ResponseErrorModel
//	@Router			/v1/saved/movie/:movieId [get]
func (m *SavedHandler) GetSavedByMovie(c *fiber.Ctx) error {
	movieIdInt, _ := c.ParamsInt("movieId", 0)
	movieId := int64(movieIdInt)
	if movieId <= 0 {
		return response.ResponseError(c, "Invalid movieId", fiber.StatusBadRequest)
	}
	userId := int64(c.QueryInt("userId", 0))

	result, err := m.savedService.GetSavedByMovie(movieId, userId)
	if err != nil {
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// UpdateSavedMovie godoc
//
//	@Summary		Update Saved Movie
//	@Description	partial update, only fields present in the body are changed.
//	@Tags			Saved-Movies
//	@Param			id		path		string					true	"record id"
//	@Param			body	body		model.SavedMovieFields	true	"fields to update"
//	@Success		200		{object}	model.SavedMovie
//	@Failure		400,404,500	{object}	response.ResponseErrorModel
//	@Router			/v1/saved/:id [patch]
func (m *SavedHandler) UpdateSavedMovie(c *fiber.Ctx) error {
	recordId := c.Params("id", "")
	if recordId == "" || recordId == ":id" {
		return response.ResponseError(c, "Invalid record id", fiber.StatusBadRequest)
	}

	var fields model.SavedMovieFields
	if err := c.BodyParser(&fields); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	result, err := m.savedService.UpdateSavedMovie(recordId, &fields)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, response.SavedNotFound, code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, result)
}

// DeleteSavedMovie godoc
//
//	@Summary		Delete Saved Movie
//	@Description	remove a saved movie by record id.
//	@Tags			Saved-Movies
//	@Param			id	path		string	true	"record id"
//	@Success		200	{object}	response.ResponseModel
//	@Failure		400,404,500	{object}	response.ResponseErrorModel
//	@Router			/v1/saved/:id [delete]
func (m *SavedHandler) DeleteSavedMovie(c *fiber.Ctx) error {
	recordId := c.Params("id", "")
	if recordId == "" || recordId == ":id" {
		return response.ResponseError(c, "Invalid record id", fiber.StatusBadRequest)
	}

	err := m.savedService.DeleteSavedMovie(recordId)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, response.SavedNotFound, code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOK(c)
}
