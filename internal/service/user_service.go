package service

import (
	"skillhub/internal/contract"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/fault"
	"skillhub/internal/domain/policy"
	"skillhub/internal/domain/result"
	cognitoclient "skillhub/internal/infrastructure/aws/cognito"
	"skillhub/internal/utils"
	"skillhub/internal/utils/apierror"
	"skillhub/internal/utils/uid"

	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	ExistsActiveByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

// UserService covers both worlds: profile CRUD follows the Either
// protocol like every other resource, while the signup/login/confirm
// flows talk to the IdP and keep returning apierror values directly —
// IdP failures are not part of the domain taxonomy.
type UserService struct {
	UserRepo UserRepository
	Cognito  cognitoclient.CognitoInterface
	Policy   *policy.UserPolicy
}

func NewUserService(userRepo UserRepository, cogClient cognitoclient.CognitoInterface, userPolicy *policy.UserPolicy) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Cognito:  cogClient,
		Policy:   userPolicy,
	}
}

func (s *UserService) GetUser(actor *entity.User, userID int64) (result.Either[*contract.UserResponse], error) {
	user, err := s.UserRepo.FindActiveByID(userID)
	if err != nil {
		return result.Either[*contract.UserResponse]{}, err
	}

	if user == nil {
		return result.Left[*contract.UserResponse](fault.NotFound("user not found")), nil
	}
	return result.Right(toUserResponse(user, actor)), nil
}

func (s *UserService) UpdateUser(actor *entity.User, targetID int64, req *contract.UpdateUserRequest) (result.Either[*contract.UserResponse], error) {
	target, err := s.UserRepo.FindActiveByID(targetID)
	if err != nil {
		return result.Either[*contract.UserResponse]{}, err
	}

	if target == nil {
		return result.Left[*contract.UserResponse](fault.NotFound("user not found")), nil
	}

	if perr := s.Policy.CanUpdateProfile(actor, target); perr != nil {
		return result.Left[*contract.UserResponse](perr), nil
	}

	var roles *entity.Role
	if req.Roles != nil {
		newRoles := entity.Role(*req.Roles)
		if perr := s.Policy.CanUpdateRoles(actor, target, newRoles); perr != nil {
			return result.Left[*contract.UserResponse](perr), nil
		}
		roles = &newRoles
	}

	if req.Suspended != nil {
		if perr := s.Policy.CanSuspend(actor, target); perr != nil {
			return result.Left[*contract.UserResponse](perr), nil
		}
	}

	next := target.Patched(req.Username, roles, req.Suspended, utils.NowUTC())
	if err := s.UserRepo.Save(next); err != nil {
		return result.Either[*contract.UserResponse]{}, err
	}
	return result.Right(toUserResponse(next, actor)), nil
}

// CreateUser creates a new user on Cognito (as well as in our database),
// and sends a verification code to the user's email address.
func (s *UserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	found, err := s.UserRepo.ExistsActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.UserAlreadyExistsError
	}

	cogUser := &cognitoclient.User{Email: req.Email, Password: req.Password}
	sub, apierr, revert := handleUserSignup(s.Cognito, cogUser)
	if apierr != nil {
		return apierr
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:            uid.Generate(),
		SubUUID:       sub,
		Username:      req.Username,
		Email:         req.Email,
		EmailVerified: false,
		Roles:         entity.RoleUser,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.UserRepo.Save(user); err != nil {
		revert()
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *UserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	user, err := s.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.Suspended {
		return nil, apierror.NewForbiddenError("Missing access")
	}

	credentials := &cognitoclient.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	}

	auth, err := s.Cognito.SignIn(credentials)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}
	return &contract.UserLoginResponse{AccessToken: auth.AccessToken, IDToken: auth.IDToken}, nil
}

func (s *UserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	user, err := s.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	confirms := &cognitoclient.UserConfirmation{
		Email: req.Email,
		Code:  req.Code,
	}

	if err := s.Cognito.ConfirmAccount(confirms); err != nil {
		return utils.MapCognitoError(err)
	}

	next := user.Patched(nil, nil, nil, utils.NowUTC())
	next.EmailVerified = true
	if err := s.UserRepo.Save(next); err != nil {
		log.Errorf("failed to update user (%d) verified status: %v", user.ID, err)
	}
	return nil
}

func (s *UserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	user, err := s.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to find user (%s) by email: %v", req.Email, err)
		return apierror.InternalServerError
	}

	if user == nil {
		return apierror.IDPUserNotFoundError
	}

	if user.EmailVerified {
		return apierror.UserAlreadyConfirmedError
	}

	if err := s.Cognito.ResendConfirmation(req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func handleUserSignup(cogClient cognitoclient.CognitoInterface, req *cognitoclient.User) (string, apierror.ErrorResponse, func()) {
	revert := func() {
		_ = cogClient.AdminDeleteUser(req.Email)
	}

	sub, err := cogClient.SignUp(req)
	if err != nil {
		return "", utils.MapCognitoError(err), revert
	}
	return sub, nil, revert
}

func toUserResponse(user, requester *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Roles:     int64(user.Roles),
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}

	if requester.Roles.Has(entity.RoleAdmin) {
		resp.Suspended = &user.Suspended
	}
	return resp
}
