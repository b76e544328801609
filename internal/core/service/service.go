package service

import (
	"context"
	"errors"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/blossomkart/blossomkart/internal/core/utils"
	"go.uber.org/zap"
)

// Policy carries the order-engine knobs that are configurable rather than
// fixed business rules.
type Policy struct {
	// EnforceCapacity makes slot capacity a hard precondition of order
	// admission instead of an advisory query.
	EnforceCapacity bool
	// SpentExcludesCancelled drops cancelled orders from the totalSpent
	// aggregate.
	SpentExcludesCancelled bool
}

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	events       port.EventPublisher
	logger       *zap.Logger
	policy       Policy
	now          func() time.Time
}

func NewService(repo port.Repository, tokenService port.TokenService,
	events port.EventPublisher, logger *zap.Logger, policy Policy) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		events:       events,
		logger:       logger,
		policy:       policy,
		now:          time.Now,
	}, nil
}

// WithClock replaces the wall clock. Date validation depends on "today", so
// tests pin it.
func (s *Service) WithClock(now func() time.Time) {
	s.now = now
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, string, error) {
	exUser, err := s.repo.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, "", domain.ErrInternal
	}
	if exUser != nil {
		return nil, "", domain.ErrConflictingData
	}

	exUser, err = s.repo.GetUserByUsername(ctx, user.Username)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, "", domain.ErrInternal
	}
	if exUser != nil {
		return nil, "", domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, "", domain.ErrConflictingData
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, "", domain.ErrInternal
	}

	token, err := s.tokenService.CreateToken(newUser)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return nil, "", domain.ErrTokenCreation
	}

	return newUser, token, nil
}

func (s *Service) LoginUser(ctx context.Context, email string, password string) (*domain.User, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return nil, "", domain.ErrTokenCreation
	}

	return user, token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uint64) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Get profile", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint64, update port.ProfileUpdate) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("Get user for update", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Email != "" {
		user.Email = update.Email
	}

	updated, err := s.repo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Update user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return updated, nil
}
