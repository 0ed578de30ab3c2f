package service

import (
	"go.uber.org/zap"

	"github.com/eventhub/eventhub-backend/internal/apperr"
	"github.com/eventhub/eventhub-backend/internal/models"
	"github.com/eventhub/eventhub-backend/internal/repository"
	"github.com/eventhub/eventhub-backend/pkg/bcrypt"
	"github.com/eventhub/eventhub-backend/pkg/email"
	jwtPkg "github.com/eventhub/eventhub-backend/pkg/jwt"
)

type AuthService struct {
	users        repository.UserRepository
	emailService *email.EmailService
	logger       *zap.Logger
}

func NewAuthService(users repository.UserRepository, emailService *email.EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:        users,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.users.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("User already exists")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		go s.emailService.SendWelcomeEmail(user.Email, user.Name)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))

	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller, so accounts cannot be enumerated.
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Authentication("Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, apperr.Authentication("Invalid credentials")
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Token: token,
	}, nil
}
