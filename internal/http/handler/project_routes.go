package handler

import (
	"net/http"

	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils"
	"skillhub/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProjectService interface {
	GetProjects(q pagination.PageQuery) (pagination.Page[*contract.ProjectResponse], error)
	GetProject(id int64) (result.Either[*contract.ProjectResponse], error)
	CreateProject(actor *entity.User, req *contract.CreateProjectRequest) (result.Either[*contract.ProjectResponse], error)
	UpdateProject(actor *entity.User, projectID int64, req *contract.UpdateProjectRequest) (result.Either[*contract.ProjectResponse], error)
	DeleteProject(actor *entity.User, projectID int64) (result.Either[result.Unit], error)
}

type DefaultProjectRoute struct {
	ProjectService ProjectService
	Validate       *validator.Validate
}

func NewProjectDefault(projectService ProjectService, validate *validator.Validate) *DefaultProjectRoute {
	return &DefaultProjectRoute{ProjectService: projectService, Validate: validate}
}

func (h *DefaultProjectRoute) GetProjects(c echo.Context) error {
	q, qerr := parsePageQuery(c)
	if qerr != nil {
		return c.JSON(qerr.Code(), qerr)
	}

	page, err := h.ProjectService.GetProjects(q)
	return respondEither(c, http.StatusOK, result.Right(page), err)
}

func (h *DefaultProjectRoute) GetProject(c echo.Context) error {
	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ProjectService.GetProject(id)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultProjectRoute) CreateProject(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.ProjectService.CreateProject(user, &req)
	return respondEither(c, http.StatusCreated, e, err)
}

func (h *DefaultProjectRoute) UpdateProject(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.ProjectService.UpdateProject(user, id, &req)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultProjectRoute) DeleteProject(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ProjectService.DeleteProject(user, id)
	return respondNoContent(c, e, err)
}
