package handler

import (
	"net/http"

	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/pagination"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils"

	"github.com/labstack/echo/v4"
)

type ApplicationService interface {
	Apply(actor *entity.User, projectID int64) (result.Either[*contract.ApplicationResponse], error)
	Quit(actor *entity.User, projectID int64) (result.Either[result.Unit], error)
	Accept(actor *entity.User, applicationID int64) (result.Either[*contract.ApplicationResponse], error)
	Reject(actor *entity.User, applicationID int64) (result.Either[*contract.ApplicationResponse], error)
	GetProjectApplications(actor *entity.User, projectID int64, q pagination.PageQuery) (result.Either[pagination.Page[*contract.ApplicationResponse]], error)
}

type DefaultApplicationRoute struct {
	ApplicationService ApplicationService
}

func NewApplicationDefault(applicationService ApplicationService) *DefaultApplicationRoute {
	return &DefaultApplicationRoute{ApplicationService: applicationService}
}

func (h *DefaultApplicationRoute) Apply(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projectID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ApplicationService.Apply(user, projectID)
	return respondEither(c, http.StatusCreated, e, err)
}

func (h *DefaultApplicationRoute) Quit(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projectID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ApplicationService.Quit(user, projectID)
	return respondNoContent(c, e, err)
}

func (h *DefaultApplicationRoute) Accept(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	applicationID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ApplicationService.Accept(user, applicationID)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultApplicationRoute) Reject(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	applicationID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.ApplicationService.Reject(user, applicationID)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultApplicationRoute) GetProjectApplications(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	projectID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	q, qerr := parsePageQuery(c)
	if qerr != nil {
		return c.JSON(qerr.Code(), qerr)
	}

	e, err := h.ApplicationService.GetProjectApplications(user, projectID, q)
	return respondEither(c, http.StatusOK, e, err)
}
