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

type CommentService interface {
	GetTopicComments(kind entity.TopicKind, topicID int64, q pagination.PageQuery) (result.Either[pagination.Page[*contract.CommentResponse]], error)
	CreateComment(actor *entity.User, kind entity.TopicKind, topicID int64, req *contract.CreateCommentRequest) (result.Either[*contract.CommentResponse], error)
	UpdateComment(actor *entity.User, commentID int64, req *contract.UpdateCommentRequest) (result.Either[*contract.CommentResponse], error)
	DeleteComment(actor *entity.User, commentID int64) (result.Either[result.Unit], error)
}

type DefaultCommentRoute struct {
	CommentService CommentService
	Validate       *validator.Validate
}

func NewCommentDefault(commentService CommentService, validate *validator.Validate) *DefaultCommentRoute {
	return &DefaultCommentRoute{CommentService: commentService, Validate: validate}
}

func (h *DefaultCommentRoute) GetTopicComments(c echo.Context) error {
	kind, topicID, perr := parseTopicParams(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	q, qerr := parsePageQuery(c)
	if qerr != nil {
		return c.JSON(qerr.Code(), qerr)
	}

	e, err := h.CommentService.GetTopicComments(kind, topicID, q)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultCommentRoute) CreateComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	kind, topicID, perr := parseTopicParams(c)
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.CommentService.CreateComment(user, kind, topicID, &req)
	return respondEither(c, http.StatusCreated, e, err)
}

func (h *DefaultCommentRoute) UpdateComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	var req contract.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	utils.Sanitize(&req)
	if valerr := h.Validate.Struct(&req); valerr != nil {
		verr := apierror.FromValidationError(valerr)
		return c.JSON(verr.Code(), verr)
	}

	e, err := h.CommentService.UpdateComment(user, id, &req)
	return respondEither(c, http.StatusOK, e, err)
}

func (h *DefaultCommentRoute) DeleteComment(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, perr := parseIDParam(c, "id")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	e, err := h.CommentService.DeleteComment(user, id)
	return respondNoContent(c, e, err)
}

func parseTopicParams(c echo.Context) (entity.TopicKind, int64, apierror.ErrorResponse) {
	kind := c.Param("kind")
	if !entity.ValidTopicKind(kind) {
		return "", 0, apierror.InvalidTopicKindError
	}

	topicID, perr := parseIDParam(c, "id")
	if perr != nil {
		return "", 0, perr
	}
	return entity.TopicKind(kind), topicID, nil
}
