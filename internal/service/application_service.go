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

type ApplicationRepository interface {
	FindByID(id int64) (*entity.Application, error)
	FindByApplicantAndProject(applicantID, projectID int64) (*entity.Application, error)
	FindManyByProject(projectID int64, q pagination.PageQuery) ([]*entity.Application, error)
	Save(application *entity.Application) error
	Delete(application *entity.Application) error
}

// ApplicationService owns the project application lifecycle:
// apply → wait_listed → accepted | rejected, with quit removing the
// application regardless of status.
type ApplicationService struct {
	ApplicationRepo ApplicationRepository
	ProjectRepo     ProjectRepository
	Policy          *policy.ApplicationPolicy
}

func NewApplicationService(
	applicationRepo ApplicationRepository,
	projectRepo ProjectRepository,
	applicationPolicy *policy.ApplicationPolicy,
) *ApplicationService {
	return &ApplicationService{
		ApplicationRepo: applicationRepo,
		ProjectRepo:     projectRepo,
		Policy:          applicationPolicy,
	}
}

// Apply creates a wait_listed application for (actor, project).
//
// Guard order matters and is part of the contract: absent project →
// NotFound, role denial → Forbidden, own project → SelfReference,
// existing application → Conflict.
//
// Concurrent duplicate applies are not guarded here; the unique index on
// (applicant_id, project_id) resolves that race in storage.
func (s *ApplicationService) Apply(actor *entity.User, projectID int64) (result.Either[*contract.ApplicationResponse], error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}

	if project == nil {
		return result.Left[*contract.ApplicationResponse](fault.NotFound("project not found")), nil
	}

	if perr := s.Policy.CanApply(actor, project); perr != nil {
		return result.Left[*contract.ApplicationResponse](perr), nil
	}

	existing, err := s.ApplicationRepo.FindByApplicantAndProject(actor.ID, projectID)
	if err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}

	if existing != nil {
		return result.Left[*contract.ApplicationResponse](fault.Conflict("you have already applied to this project")), nil
	}

	now := utils.NowUTC()
	application := &entity.Application{
		ID:          uid.Generate(),
		Status:      entity.StatusWaitListed,
		ApplicantID: actor.ID,
		ProjectID:   projectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ApplicationRepo.Save(application); err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}
	return result.Right(toApplicationResponse(application)), nil
}

// Quit removes the actor's application for the project regardless of its
// status. No role check: holding the application is authorization enough.
func (s *ApplicationService) Quit(actor *entity.User, projectID int64) (result.Either[result.Unit], error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if project == nil {
		return result.Left[result.Unit](fault.NotFound("project not found")), nil
	}

	application, err := s.ApplicationRepo.FindByApplicantAndProject(actor.ID, projectID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if application == nil {
		return result.Left[result.Unit](fault.NotFound("application not found")), nil
	}

	if err := s.ApplicationRepo.Delete(application); err != nil {
		return result.Either[result.Unit]{}, err
	}
	return result.Ok(), nil
}

// Accept transitions a wait_listed application to accepted.
func (s *ApplicationService) Accept(actor *entity.User, applicationID int64) (result.Either[*contract.ApplicationResponse], error) {
	return s.decide(actor, applicationID, entity.StatusAccepted)
}

// Reject transitions a wait_listed application to rejected.
func (s *ApplicationService) Reject(actor *entity.User, applicationID int64) (result.Either[*contract.ApplicationResponse], error) {
	return s.decide(actor, applicationID, entity.StatusRejected)
}

// GetProjectApplications lists a project's applications for its
// owner or an admin.
func (s *ApplicationService) GetProjectApplications(actor *entity.User, projectID int64, q pagination.PageQuery) (result.Either[pagination.Page[*contract.ApplicationResponse]], error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return result.Either[pagination.Page[*contract.ApplicationResponse]]{}, err
	}

	if project == nil {
		return result.Left[pagination.Page[*contract.ApplicationResponse]](fault.NotFound("project not found")), nil
	}

	if perr := s.Policy.CanReview(actor, project); perr != nil {
		return result.Left[pagination.Page[*contract.ApplicationResponse]](perr), nil
	}

	q = q.Normalized()
	applications, err := s.ApplicationRepo.FindManyByProject(projectID, q)
	if err != nil {
		return result.Either[pagination.Page[*contract.ApplicationResponse]]{}, err
	}

	resp := make([]*contract.ApplicationResponse, len(applications))
	var last int64
	for i, application := range applications {
		resp[i] = toApplicationResponse(application)
		last = application.ID
	}
	page := pagination.NewPage(resp, last, len(applications) == q.Limit)
	return result.Right(page), nil
}

func (s *ApplicationService) decide(actor *entity.User, applicationID int64, status entity.ApplicationStatus) (result.Either[*contract.ApplicationResponse], error) {
	application, err := s.ApplicationRepo.FindByID(applicationID)
	if err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}

	if application == nil {
		return result.Left[*contract.ApplicationResponse](fault.NotFound("application not found")), nil
	}

	project, err := s.ProjectRepo.FindByID(application.ProjectID)
	if err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}

	if project == nil {
		// Project soft-deleted underneath its applications
		return result.Left[*contract.ApplicationResponse](fault.NotFound("project not found")), nil
	}

	if perr := s.Policy.CanReview(actor, project); perr != nil {
		return result.Left[*contract.ApplicationResponse](perr), nil
	}

	if application.Status.Decided() {
		return result.Left[*contract.ApplicationResponse](fault.Conflict("application has already been decided")), nil
	}

	next := application.WithStatus(status, utils.NowUTC())
	if err := s.ApplicationRepo.Save(next); err != nil {
		return result.Either[*contract.ApplicationResponse]{}, err
	}
	return result.Right(toApplicationResponse(next)), nil
}

func toApplicationResponse(application *entity.Application) *contract.ApplicationResponse {
	return &contract.ApplicationResponse{
		ID:          application.ID,
		Status:      string(application.Status),
		ApplicantID: application.ApplicantID,
		ProjectID:   application.ProjectID,
		CreatedAt:   utils.FormatEpoch(application.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(application.UpdatedAt),
	}
}
