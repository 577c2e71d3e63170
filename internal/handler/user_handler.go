package handler

import (
	"movie_discovery/internal/service"
	"movie_discovery/model"
	"movie_discovery/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IUserHandler interface {
	Signup(c *fiber.Ctx) error
	Login(c *fiber.Ctx) error
}

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

//------------------------------------------
//------------------------------------------

// Signup godoc
//
//	@Summary		Signup
//	@Description	create a user record with a salted password hash.
//	@Tags			User
//	@Param			body	body		model.SignupReq	true	"credentials"
//	@Success		201		{object}	model.AppUser
//	@Failure		400,403,409,500	{object}	response.ResponseErrorModel
//	@Router			/v1/user/signup [post]
func (m *UserHandler) Signup(c *fiber.Ctx) error {
	var req model.SignupReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, err := m.userService.Signup(&req)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseCreated(c, user)
}

// Login godoc
//
//	@Summary		Login
//	@Description	verify credentials and refresh lastLogin.
//	@Tags			User
//	@Param			body	body		model.LoginReq	true	"credentials"
//	@Success		200		{object}	model.AppUser
//	@Failure		400,401,500	{object}	response.ResponseErrorModel
//	@Router			/v1/user/login [post]
func (m *UserHandler) Login(c *fiber.Ctx) error {
	var req model.LoginReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	user, err := m.userService.Login(&req)
	if err != nil {
		if code := model.GetErrorCode(err); code != 0 {
			return response.ResponseError(c, err.Error(), code)
		}
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}
	return response.ResponseOKWithData(c, user)
}
