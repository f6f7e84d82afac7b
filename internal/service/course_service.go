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

type CourseRepository interface {
	FindByID(id int64) (*entity.Course, error)
	FindMany(q pagination.PageQuery) ([]*entity.Course, error)
	Save(course *entity.Course) error
}

// CourseService mirrors ProjectService for the course resource.
type CourseService struct {
	CourseRepo CourseRepository
	Policy     *policy.CoursePolicy
}

func NewCourseService(courseRepo CourseRepository, coursePolicy *policy.CoursePolicy) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		Policy:     coursePolicy,
	}
}

func (s *CourseService) GetCourses(q pagination.PageQuery) (pagination.Page[*contract.CourseResponse], error) {
	q = q.Normalized()
	courses, err := s.CourseRepo.FindMany(q)
	if err != nil {
		return pagination.Page[*contract.CourseResponse]{}, err
	}

	resp := make([]*contract.CourseResponse, len(courses))
	var last int64
	for i, course := range courses {
		resp[i] = toCourseResponse(course)
		last = course.ID
	}
	return pagination.NewPage(resp, last, len(courses) == q.Limit), nil
}

func (s *CourseService) GetCourse(id int64) (result.Either[*contract.CourseResponse], error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		return result.Either[*contract.CourseResponse]{}, err
	}

	if course == nil {
		return result.Left[*contract.CourseResponse](fault.NotFound("course not found")), nil
	}
	return result.Right(toCourseResponse(course)), nil
}

func (s *CourseService) CreateCourse(actor *entity.User, req *contract.CreateCourseRequest) (result.Either[*contract.CourseResponse], error) {
	if perr := s.Policy.CanCreate(actor); perr != nil {
		return result.Left[*contract.CourseResponse](perr), nil
	}

	now := utils.NowUTC()
	course := &entity.Course{
		ID:          uid.Generate(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.CourseRepo.Save(course); err != nil {
		return result.Either[*contract.CourseResponse]{}, err
	}
	return result.Right(toCourseResponse(course)), nil
}

func (s *CourseService) UpdateCourse(actor *entity.User, courseID int64, req *contract.UpdateCourseRequest) (result.Either[*contract.CourseResponse], error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return result.Either[*contract.CourseResponse]{}, err
	}

	if course == nil {
		return result.Left[*contract.CourseResponse](fault.NotFound("course not found")), nil
	}

	if perr := s.Policy.CanModify(actor, course); perr != nil {
		return result.Left[*contract.CourseResponse](perr), nil
	}

	next := course.Patched(req.Name, req.Description, utils.NowUTC())
	if err := s.CourseRepo.Save(next); err != nil {
		return result.Either[*contract.CourseResponse]{}, err
	}
	return result.Right(toCourseResponse(next)), nil
}

func (s *CourseService) DeleteCourse(actor *entity.User, courseID int64) (result.Either[result.Unit], error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if course == nil {
		return result.Left[result.Unit](fault.NotFound("course not found")), nil
	}

	if perr := s.Policy.CanModify(actor, course); perr != nil {
		return result.Left[result.Unit](perr), nil
	}

	deleted := course.Deleted(utils.NowUTC())
	if err := s.CourseRepo.Save(deleted); err != nil {
		return result.Either[result.Unit]{}, err
	}
	return result.Ok(), nil
}

func toCourseResponse(course *entity.Course) *contract.CourseResponse {
	return &contract.CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Description: course.Description,
		OwnerID:     course.OwnerID,
		CreatedAt:   utils.FormatEpoch(course.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(course.UpdatedAt),
	}
}
