package service

import (
	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/domain/result"
	"skillhub/internal/utils"
	"skillhub/internal/utils/uid"
)

type EnrollmentRepository interface {
	FindByUserAndCourse(userID, courseID int64) (*entity.Enrollment, error)
	Save(enrollment *entity.Enrollment) error
	Delete(enrollment *entity.Enrollment) error
}

// EnrollmentService manages course membership. Any registered user may
// enroll; at most one enrollment exists per (user, course) pair.
type EnrollmentService struct {
	EnrollmentRepo EnrollmentRepository
	CourseRepo     CourseRepository
}

func NewEnrollmentService(enrollmentRepo EnrollmentRepository, courseRepo CourseRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
	}
}

func (s *EnrollmentService) Enroll(actor *entity.User, courseID int64) (result.Either[*contract.EnrollmentResponse], error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return result.Either[*contract.EnrollmentResponse]{}, err
	}

	if course == nil {
		return result.Left[*contract.EnrollmentResponse](fault.NotFound("course not found")), nil
	}

	existing, err := s.EnrollmentRepo.FindByUserAndCourse(actor.ID, courseID)
	if err != nil {
		return result.Either[*contract.EnrollmentResponse]{}, err
	}

	if existing != nil {
		return result.Left[*contract.EnrollmentResponse](fault.Conflict("you are already enrolled in this course")), nil
	}

	enrollment := &entity.Enrollment{
		ID:        uid.Generate(),
		UserID:    actor.ID,
		CourseID:  courseID,
		CreatedAt: utils.NowUTC(),
	}

	if err := s.EnrollmentRepo.Save(enrollment); err != nil {
		return result.Either[*contract.EnrollmentResponse]{}, err
	}
	return result.Right(toEnrollmentResponse(enrollment)), nil
}

func (s *EnrollmentService) Withdraw(actor *entity.User, courseID int64) (result.Either[result.Unit], error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if course == nil {
		return result.Left[result.Unit](fault.NotFound("course not found")), nil
	}

	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(actor.ID, courseID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if enrollment == nil {
		return result.Left[result.Unit](fault.NotFound("enrollment not found")), nil
	}

	if err := s.EnrollmentRepo.Delete(enrollment); err != nil {
		return result.Either[result.Unit]{}, err
	}
	return result.Ok(), nil
}

func toEnrollmentResponse(enrollment *entity.Enrollment) *contract.EnrollmentResponse {
	return &contract.EnrollmentResponse{
		ID:        enrollment.ID,
		UserID:    enrollment.UserID,
		CourseID:  enrollment.CourseID,
		CreatedAt: utils.FormatEpoch(enrollment.CreatedAt),
	}
}
