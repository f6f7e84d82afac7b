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

type CourseService interface {
	GetCourses(q pagination.PageQuery) (pagination.Page[*contract.CourseResponse], error)
	GetCourse(id int64) (result.Either[*contract.CourseResponse], error)
	CreateCourse(actor *entity.User, req *contract.CreateCourseRequest) (result.Either[*contract.CourseResponse], error)
	UpdateCourse(actor *entity.User, courseID int64, req *contract.UpdateCourseRequest) (result.Either[*contract.CourseResponse], error)
	DeleteCourse(actor *entity.User, courseID int64) (result.Either[result.Unit], error)
}

type EnrollmentService interface {
	Enroll(actor *entity.User, courseID int64) (result.Either[*contract.EnrollmentResponse], error)
	Withdraw(actor *entity.User, courseID int64) (result.Either[result.Unit], error)
}

type DefaultCourseRoute struct {
	CourseService     CourseService
	EnrollmentService EnrollmentService
	Validate          *validator.Validate
}

func NewCourseDefault(courseService CourseService, enrollmentService EnrollmentService, validate *validator.Validate) *DefaultCourseRoute {
	return &DefaultCourseRoute{
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		Validate:          validate,
	}
}

func (h *DefaultCourseRoute) GetCourses(c echo.Context) error {
	q, qerr := parsePageQuery(c)
	if qerr != nil {
		return c.JSON(qerr.Code(), qerr)
	}

	page, err := h.CourseService.GetCourses(q)
	return respondEither(c, http.StatusOK, result.Right(page), err)
}

func (h *DefaultCourseRoute) GetCourse(c echo.Context) error {
	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.CourseService.GetCourse(id)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultCourseRoute) CreateCourse(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	var req contract.CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.CourseService.CreateCourse(user, &req)
	return respondEither(c, http.StatusCreated, e, err)
}

func (h *DefaultCourseRoute) UpdateCourse(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateCourseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.CourseService.UpdateCourse(user, id, &req)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultCourseRoute) DeleteCourse(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.CourseService.DeleteCourse(user, id)
	return respondNoContent(c, e, err)
}

func (h *DefaultCourseRoute) Enroll(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	courseID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.EnrollmentService.Enroll(user, courseID)
	return respondEither(c, http.StatusCreated, e, err)
}

func (h *DefaultCourseRoute) Withdraw(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	courseID, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.EnrollmentService.Withdraw(user, courseID)
	return respondNoContent(c, e, err)
}
