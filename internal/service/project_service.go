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

type ProjectRepository interface {
	FindByID(id int64) (*entity.Project, error)
	FindMany(q pagination.PageQuery) ([]*entity.Project, error)
	Save(project *entity.Project) error
}

type ProjectService struct {
	ProjectRepo ProjectRepository
	Policy      *policy.ProjectPolicy
}

func NewProjectService(projectRepo ProjectRepository, projectPolicy *policy.ProjectPolicy) *ProjectService {
	return &ProjectService{
		ProjectRepo: projectRepo,
		Policy:      projectPolicy,
	}
}

// GetProjects is a pure read: it wraps the page unconditionally, there is
// no domain failure path besides infrastructure errors.
func (s *ProjectService) GetProjects(q pagination.PageQuery) (pagination.Page[*contract.ProjectResponse], error) {
	q = q.Normalized()
	projects, err := s.ProjectRepo.FindMany(q)
	if err != nil {
		return pagination.Page[*contract.ProjectResponse]{}, err
	}

	resp := make([]*contract.ProjectResponse, len(projects))
	var last int64
	for i, project := range projects {
		resp[i] = toProjectResponse(project)
		last = project.ID
	}
	return pagination.NewPage(resp, last, len(projects) == q.Limit), nil
}

func (s *ProjectService) GetProject(id int64) (result.Either[*contract.ProjectResponse], error) {
	project, err := s.ProjectRepo.FindByID(id)
	if err != nil {
		return result.Either[*contract.ProjectResponse]{}, err
	}

	if project == nil {
		return result.Left[*contract.ProjectResponse](fault.NotFound("project not found")), nil
	}
	return result.Right(toProjectResponse(project)), nil
}

func (s *ProjectService) CreateProject(actor *entity.User, req *contract.CreateProjectRequest) (result.Either[*contract.ProjectResponse], error) {
	if perr := s.Policy.CanCreate(actor); perr != nil {
		return result.Left[*contract.ProjectResponse](perr), nil
	}

	now := utils.NowUTC()
	project := &entity.Project{
		ID:          uid.Generate(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.ProjectRepo.Save(project); err != nil {
		return result.Either[*contract.ProjectResponse]{}, err
	}
	return result.Right(toProjectResponse(project)), nil
}

// UpdateProject merges only the provided optional fields into a new
// snapshot; identifier and owner are never touched.
func (s *ProjectService) UpdateProject(actor *entity.User, projectID int64, req *contract.UpdateProjectRequest) (result.Either[*contract.ProjectResponse], error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return result.Either[*contract.ProjectResponse]{}, err
	}

	if project == nil {
		return result.Left[*contract.ProjectResponse](fault.NotFound("project not found")), nil
	}

	if perr := s.Policy.CanModify(actor, project); perr != nil {
		return result.Left[*contract.ProjectResponse](perr), nil
	}

	next := project.Patched(req.Name, req.Description, utils.NowUTC())
	if err := s.ProjectRepo.Save(next); err != nil {
		return result.Either[*contract.ProjectResponse]{}, err
	}
	return result.Right(toProjectResponse(next)), nil
}

// DeleteProject soft-deletes: the row keeps existing with a deletion
// timestamp and disappears from all active scopes.
func (s *ProjectService) DeleteProject(actor *entity.User, projectID int64) (result.Either[result.Unit], error) {
	project, err := s.ProjectRepo.FindByID(projectID)
	if err != nil {
		return result.Either[result.Unit]{}, err
	}

	if project == nil {
		return result.Left[result.Unit](fault.NotFound("project not found")), nil
	}

	if perr := s.Policy.CanModify(actor, project); perr != nil {
		return result.Left[result.Unit](perr), nil
	}

	deleted := project.Deleted(utils.NowUTC())
	if err := s.ProjectRepo.Save(deleted); err != nil {
		return result.Either[result.Unit]{}, err
	}
	return result.Ok(), nil
}

func toProjectResponse(project *entity.Project) *contract.ProjectResponse {
	return &contract.ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		OwnerID:     project.OwnerID,
		CreatedAt:   utils.FormatEpoch(project.CreatedAt),
		UpdatedAt:   utils.FormatEpoch(project.UpdatedAt),
	}
}
