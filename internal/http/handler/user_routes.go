package handler

import (
	"net/http"

	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils"
	"skillhub/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetUser(actor *entity.User, userID int64) (result.Either[*contract.UserResponse], error)
	UpdateUser(actor *entity.User, targetID int64, req *contract.UpdateUserRequest) (result.Either[*contract.UserResponse], error)
	CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse
	Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse)
	ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse
	ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService UserService
	Validate    *validator.Validate
}

func NewUserDefault(userService UserService, validate *validator.Validate) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService, Validate: validate}
}

func (h *DefaultUserRoute) GetUser(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := h.resolveUserID(c, user)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.UserService.GetUser(user, id)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultUserRoute) UpdateUser(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := h.resolveUserID(c, user)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.UserService.UpdateUser(user, id, &req)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	if apierr := h.UserService.CreateUser(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *DefaultUserRoute) CreateLogin(c echo.Context) error {
	var req contract.UserLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	resp, apierr := h.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DefaultUserRoute) ConfirmSignup(c echo.Context) error {
	var req contract.ConfirmSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	if apierr := h.UserService.ConfirmSignup(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

func (h *DefaultUserRoute) ResendConfirmation(c echo.Context) error {
	var req contract.ResendConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	if apierr := h.UserService.ResendConfirmation(&req); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusOK)
}

// resolveUserID resolves ':id', honoring the '@me' alias for the
// authenticated actor.
func (h *DefaultUserRoute) resolveUserID(c echo.Context, actor *entity.User) (int64, apierror.ErrorResponse) {
	if c.Param("id") == "@me" {
		return actor.ID, nil
	}
	return parseIDParam(c, "id")
}
