package service

import (
	"go.uber.org/zap"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/repository"
	"github.com/eventhub/eventhub-backend/pkg/bcrypt"
)

type UserService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

func (s *UserService) GetProfile(userID uint) (*models.ProfileResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return s.profile(user)
}

// UpdateProfile applies a partial update: empty fields keep their stored
// value.
func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" && req.Email != user.Email {
		exists, err := s.users.EmailExists(req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflict("Email already in use")
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashedPassword, err := bcrypt.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", zap.Uint("user_id", user.ID))

	return s.profile(user)
}

func (s *UserService) profile(user *models.User) (*models.ProfileResponse, error) {
	createdEvents, err := s.users.CreatedEventIDs(user.ID)
	if err != nil {
		return nil, err
	}
	if createdEvents == nil {
		createdEvents = []uint{}
	}
	return &models.ProfileResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		CreatedEvents: createdEvents,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}, nil
}
