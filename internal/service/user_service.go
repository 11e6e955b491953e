package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"vetcrm/internal/contract"
	"vetcrm/internal/domain/entity"
	cognitoclient "vetcrm/internal/infrastructure/aws/cognito"
	"vetcrm/internal/utils"
	"vetcrm/internal/utils/apierror"
)

type UserRepository interface {
	FindAllActive() ([]*entity.User, error)
	FindActiveBySub(sub string) (*entity.User, error)
	FindActiveByID(id int64) (*entity.User, error)
	FindActiveByEmail(email string) (*entity.User, error)
	ExistsActiveByEmail(email string) (bool, error)
	Save(user *entity.User) error
	SoftDelete(user *entity.User) error
}

type DefaultUserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
	Cognito  cognitoclient.CognitoInterface
}

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	cogClient cognitoclient.CognitoInterface,
) *DefaultUserService {
	return &DefaultUserService{
		UserRepo: userRepo,
		Validate: validate,
		Cognito:  cogClient,
	}
}

func (u *DefaultUserService) GetUsers(actor *entity.User) ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAllActive()
	if err != nil {
		log.Errorf("failed to list users: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user, actor)
	}
	return resp, nil
}

func (u *DefaultUserService) GetUser(actor *entity.User, rawID string) (*contract.UserResponse, apierror.ErrorResponse) {
	user, apierr := u.fetchUser(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	if user == nil {
		return nil, apierror.NotFoundError
	}
	return toUserResponse(user, actor), nil
}

func (u *DefaultUserService) UpdateUser(actor *entity.User, rawID string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	target, apierr := u.fetchUser(actor, rawID)
	if apierr != nil {
		return nil, apierr
	}

	if target == nil {
		return nil, apierror.NotFoundError
	}

	if apierr = u.applyUserPatch(actor, target, req); apierr != nil {
		return nil, apierr
	}

	target.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(target); err != nil {
		log.Errorf("actor %s failed to update user %d: %v", actor.SubUUID, target.ID, err)
		return nil, apierror.InternalServerError
	}
	return toUserResponse(target, actor), nil
}

func (u *DefaultUserService) DeleteUser(actor *entity.User, rawID string) apierror.ErrorResponse {
	if !actor.Permissions.HasEffective(entity.PermissionDeleteUsers) {
		return apierror.UserMissingPermsError
	}

	target, apierr := u.fetchUser(actor, rawID)
	if apierr != nil {
		return apierr
	}

	if target == nil {
		return apierror.NotFoundError
	}

	// Admins are immune to deletion, including by themselves.
	if target.Permissions.Has(entity.PermissionAdministrator) {
		return apierror.NewForbiddenError("Administrators cannot be deleted")
	}

	if err := u.UserRepo.SoftDelete(target); err != nil {
		log.Errorf("failed to delete user %d: %v", target.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *DefaultUserService) CheckEmail(req *contract.UserStatusRequest) (*contract.EmailStatus, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user (%s) exists: %v", req.Email, err)
		return nil, apierror.InternalServerError
	}

	var status contract.EmailStatus
	switch {
	case user == nil:
		status = contract.EmailStatusAvailable
	case !user.EmailVerified:
		status = contract.EmailStatusVerifying
	default:
		status = contract.EmailStatusExists
	}
	return &status, nil
}

// CreateUser registers the user on the identity provider and mirrors it in
// our database. The provider sends the verification code by email.
func (u *DefaultUserService) CreateUser(req *contract.CreateUserRequest) apierror.ErrorResponse {
	utils.Sanitize(req)
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	found, err := u.UserRepo.ExistsActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check if user already exists: %v", err)
		return apierror.InternalServerError
	}

	if found {
		return apierror.UserAlreadyExistsError
	}

	cogUser := &cognitoclient.User{Email: req.Email, Password: req.Password}
	sub, apierr, revert := handleUserSignup(u.Cognito, cogUser)
	if apierr != nil {
		return apierr
	}

	now := utils.NowUTC()
	user := &entity.User{
		SubUUID:       sub,
		UnidadeID:     req.UnidadeID,
		Username:      req.Username,
		Email:         req.Email,
		EmailVerified: false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = u.UserRepo.Save(user); err != nil {
		// Keep the IDP and the database in sync: without the local row the
		// account would be able to log in but belong to no unidade.
		revert()
		log.Errorf("failed to create user: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (u *DefaultUserService) Login(req *contract.UserLoginRequest) (*contract.UserLoginResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user from database: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil {
		return nil, apierror.IDPUserNotFoundError
	}

	if user.Suspended {
		return nil, apierror.MissingAccessError
	}

	credentials := &cognitoclient.UserLogin{
		Email:    req.Email,
		Password: req.Password,
	}

	auth, apierr := handleUserSignin(u.Cognito, credentials)
	if apierr != nil {
		return nil, apierr
	}
	return &contract.UserLoginResponse{AccessToken: auth.AccessToken, IDToken: auth.IDToken}, nil
}

// Logout invalidates every session of the token's owner, on all devices.
func (u *DefaultUserService) Logout(accessToken string) apierror.ErrorResponse {
	if err := u.Cognito.GlobalSignOut(context.Background(), accessToken); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

func (u *DefaultUserService) ConfirmSignup(req *contract.ConfirmSignupRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
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

	if err = u.Cognito.ConfirmAccount(context.Background(), confirms); err != nil {
		return utils.MapCognitoError(err)
	}

	user.EmailVerified = true
	user.UpdatedAt = utils.NowUTC()
	if err = u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user (%d) verified status: %v", user.ID, err)
	}
	return nil
}

func (u *DefaultUserService) ResendConfirmation(req *contract.ResendConfirmRequest) apierror.ErrorResponse {
	if err := u.Validate.Struct(req); err != nil {
		return apierror.FromValidationError(err)
	}

	user, err := u.UserRepo.FindActiveByEmail(req.Email)
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

	if err = u.Cognito.ResendConfirmation(context.Background(), req.Email); err != nil {
		return utils.MapCognitoError(err)
	}
	return nil
}

// applyUserPatch mutates the target in place, enforcing who may change what.
func (u *DefaultUserService) applyUserPatch(actor, target *entity.User, req *contract.UpdateUserRequest) apierror.ErrorResponse {
	self := actor.ID == target.ID
	admin := target.Permissions.Has(entity.PermissionAdministrator)
	if admin && !self {
		return apierror.NewForbiddenError("Administrators cannot be modified")
	}

	if req.Username != nil {
		if !self && !actor.Permissions.HasEffective(entity.PermissionManageUsers) {
			return apierror.UserMissingPermsError
		}
		target.Username = *req.Username
	}

	if req.Perms != nil {
		if !actor.Permissions.HasEffective(entity.PermissionManagePerms) {
			return apierror.UserMissingPermsError
		}
		target.Permissions = entity.Permission(*req.Perms)
	}

	if req.Suspended != nil {
		if self || !actor.Permissions.HasEffective(entity.PermissionManageUsers) {
			return apierror.UserMissingPermsError
		}
		target.Suspended = *req.Suspended
	}
	return nil
}

// fetchUser resolves "@me" to the requester, anything else as a numeric ID.
func (u *DefaultUserService) fetchUser(requester *entity.User, rawID string) (*entity.User, apierror.ErrorResponse) {
	if rawID == "@me" {
		return requester, nil
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, apierror.NewInvalidParamTypeError("id", "int64")
	}

	user, err := u.UserRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to find user (%s) by id: %v", rawID, err)
		return nil, apierror.InternalServerError
	}
	return user, nil
}

func handleUserSignup(cogClient cognitoclient.CognitoInterface, req *cognitoclient.User) (string, apierror.ErrorResponse, func()) {
	revert := func() {
		_ = cogClient.AdminDeleteUser(context.Background(), req.Email)
	}

	sub, err := cogClient.SignUp(context.Background(), req)
	if err != nil {
		return "", utils.MapCognitoError(err), revert
	}
	return sub, nil, revert
}

func handleUserSignin(cogClient cognitoclient.CognitoInterface, req *cognitoclient.UserLogin) (*cognitoclient.AuthCreate, apierror.ErrorResponse) {
	auth, err := cogClient.SignIn(context.Background(), req)
	if err != nil {
		return nil, utils.MapCognitoError(err)
	}
	return auth, nil
}

func toUserResponse(user, requester *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		UnidadeID: user.UnidadeID,
		Perms:     int64(user.Permissions),
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
		UpdatedAt: utils.FormatEpoch(user.UpdatedAt),
	}

	if requester.Permissions.HasEffective(entity.PermissionManageUsers) {
		resp.IsVerified = &user.EmailVerified
		resp.Suspended = &user.Suspended
	}
	return resp
}
