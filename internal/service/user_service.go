package service

import (
	"fmt"
	"movie_discovery/configs"
	"movie_discovery/internal/repository"
	"movie_discovery/model"
	errorHandler "movie_discovery/pkg/error"
	"movie_discovery/util"
	"strings"
	"time"

	"github.com/badoux/checkmail"
)

type IUserService interface {
	Signup(req *model.SignupReq) (*model.AppUser, error)
	Login(req *model.LoginReq) (*model.AppUser, error)
}

type UserService struct {
	userRepo repository.IUserRepository
}

func NewUserService(userRepo repository.IUserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (m *UserService) Signup(req *model.SignupReq) (*model.AppUser, error) {
	username := truncate(strings.TrimSpace(req.Username), model.UsernameMaxLength)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" || email == "" || req.Password == "" {
		return nil, model.ErrEmptyCredentials
	}
	if len(req.Password) < model.PasswordMinLength {
		return nil, model.ErrShortPassword
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, model.ErrInvalidEmail
	}
	if configs.GetDbConfigs().SignupDisabled {
		return nil, model.ErrSignupDisabled
	}

	existing, err := m.userRepo.GetUserByEmail(email)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on checking email existence: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailAlreadyExist
	}

	passwordHash, err := util.HashPassword(req.Password)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on hashing password: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.AppUser{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	recordId, err := m.userRepo.CreateUser(user)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on creating user: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	user.RecordId = recordId
	user.UserId = util.UserIdFromRecordId(recordId)
	return user, nil
}

func (m *UserService) Login(req *model.LoginReq) (*model.AppUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, model.ErrEmptyCredentials
	}

	user, err := m.userRepo.GetUserByEmail(email)
	if err != nil {
		errorMessage := fmt.Sprintf("Error on finding user by email: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return nil, err
	}
	// unknown email and wrong password answer the same
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}
	if !util.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	err = m.userRepo.UpdateLoginTime(user.RecordId, now)
	if err != nil {
		// best-effort, login still succeeds
		errorMessage := fmt.Sprintf("Error on updating login time: %v", err)
		errorHandler.SaveError(errorMessage, err)
	} else {
		user.UpdatedAt = now
		user.LastLogin = &now
	}

	user.UserId = util.UserIdFromRecordId(user.RecordId)
	return user, nil
}
