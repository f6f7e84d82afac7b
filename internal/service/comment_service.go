package service

import (
	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/domain/pagination"
	"skillhub/internal/domain/policy"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils"
	"skillhub/internal/utils/uid"
)

type CommentRepository interface {
	FindByID(id int64) (*entity.Comment, error)
	FindManyByTopic(kind entity.TopicKind, topicID int64, q pagination.PageQuery) ([]*entity.Comment, error)
	Save(comment *entity.Comment) error
	Delete(comment *entity.Comment) error
}

// CommentService manages comments attached to a topic, which is either a
// project or a course.
type CommentService struct {
	CommentRepo CommentRepository
	ProjectRepo ProjectRepository
	CourseRepo  CourseRepository
	Policy      *policy.CommentPolicy
}

func NewCommentService(
	commentRepo CommentRepository,
	projectRepo ProjectRepository,
	courseRepo CourseRepository,
	commentPolicy *policy.CommentPolicy,
) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		ProjectRepo: projectRepo,
		CourseRepo:  courseRepo,
		Policy:      commentPolicy,
	}
}

func (s *CommentService) GetTopicComments(kind entity.TopicKind, topicID int64, q pagination.PageQuery) (result.Either[pagination.Page[*contract.CommentResponse]], error) {
	found, err := s.topicExists(kind, topicID)
	if err != nil {
		return result.Either[pagination.Page[*contract.CommentResponse]]{}, err
	}

	if !found {
		return result.Left[pagination.Page[*contract.CommentResponse]](fault.NotFound("topic not found")), nil
	}

	q = q.Normalized()
	comments, err := s.CommentRepo.FindManyByTopic(kind, topicID, q)
	if err != nil {
		return result.Either[pagination.Page[*contract.CommentResponse]]{}, err
	}

	resp := make([]*contract.CommentResponse, len(comments))
	var last int64
	for i, comment := range comments {
		resp[i] = toCommentResponse(comment)
		last = comment.ID
	}
	page := pagination.NewPage(resp, last, len(comments) == q.Limit)
	return result.Right(page), nil
}

func (s *CommentService) CreateComment(actor *entity.User, kind entity.TopicKind, topicID int64, req *contract.CreateCommentRequest) (result.Either[*contract.CommentResponse], error) {
	found, err := s.topicExists(kind, topicID)
	if err != nil {
		return result.Either[*contract.CommentResponse]{}, err
	}

	if !found {
		return result.Left[*contract.CommentResponse](fault.NotFound("topic not found")), nil
	}

	now := utils.NowUTC()
	comment := &entity.Comment{
		ID:        uid.Generate(),
		TopicKind: kind,
		TopicID:   topicID,
		AuthorID:  actor.ID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.CommentRepo.Save(comment); err != nil {
		return result.Either[*contract.CommentResponse]{}, err
	}
	return result.Right(toCommentResponse(comment)), nil
}

func (s *CommentService) UpdateComment(actor *entity.User, commentID int64, req *contract.UpdateCommentRequest) (result.Either[*contract.CommentResponse], error) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		return result.Either[*contract.CommentResponse]{}, err
	}

	if comment == nil {
		return result.Left[*contract.CommentResponse](fault.NotFound("comment not found")), nil
	}

	if perr := s.Policy.CanModify(actor, comment); perr != nil {
		return result.Left[*contract.CommentResponse](perr), nil
	}

	next := comment.Patched(req.Content, utils.NowUTC())
	if err := s.CommentRepo.Save(next); err != nil {
		return result.Either[*contract.CommentResponse]{}, err
	}
	return result.Right(toCommentResponse(next)), nil
}

func (s *CommentService) DeleteComment(actor *entity.User, commentID int64) (result.Either[result.Unit], error) {
	comment, err := s.CommentRepo.FindByID(commentID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if comment == nil {
		return result.Left[result.Unit](fault.NotFound("comment not found")), nil
	}

	if perr := s.Policy.CanModify(actor, comment); perr != nil {
		return result.Left[result.Unit](perr), nil
	}

	if err := s.CommentRepo.Delete(comment); err != nil {
		return result.Either[result.Unit]{}, err
	}
	return result.Ok(), nil
}

func (s *CommentService) topicExists(kind entity.TopicKind, topicID int64) (bool, error) {
	switch kind {
	case entity.TopicProject:
		project, err := s.ProjectRepo.FindByID(topicID)
		return project != nil, err
	case entity.TopicCourse:
		course, err := s.CourseRepo.FindByID(topicID)
		return course != nil, err
	default:
		return false, nil
	}
}

func toCommentResponse(comment *entity.Comment) *contract.CommentResponse {
	return &contract.CommentResponse{
		ID:        comment.ID,
		TopicKind: string(comment.TopicKind),
		TopicID:   comment.TopicID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: utils.FormatEpoch(comment.CreatedAt),
		UpdatedAt: utils.FormatEpoch(comment.UpdatedAt),
	}
}
