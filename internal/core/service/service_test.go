package service_test

import (
	"context"
	"testing"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port/mock"
	"github.com/blossomkart/blossomkart/internal/core/service"
	"github.com/blossomkart/blossomkart/internal/core/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userRegisterTest struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Name:     "Test",
		Username: "test",
		Email:    "test@example.com",
		Password: hashedPass,
		Role:     domain.RoleUser,
	}

	tests := []userRegisterTest{
		{
			name: "Register good",
			user: domain.User{Name: user.Name, Username: user.Username, Email: user.Email, Password: hashedPass},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().GetUserByUsername(gomock.Any(), user.Username).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register email taken",
			user: domain.User{Name: user.Name, Username: user.Username, Email: user.Email, Password: hashedPass},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
		{
			name: "Register username taken",
			user: domain.User{Name: user.Name, Username: user.Username, Email: "other@example.com", Password: hashedPass},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "other@example.com").Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().GetUserByUsername(gomock.Any(), user.Username).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			ts.EXPECT().CreateToken(gomock.Any()).Return("token", nil).AnyTimes()
			test.mock(repo)

			s, err := service.NewService(repo, ts, nil, logger, service.Policy{})
			assert.NoError(t, err)

			result, token, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userLoginTest struct {
		name     string
		email    string
		password string
		mock     prepareMocks
		expError error
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Username: "test",
		Email:    "test@example.com",
		Password: hashedPass,
	}

	tests := []userLoginTest{
		{
			name:     "Login good",
			email:    user.Email,
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			email:    user.Email,
			password: "hacker",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			email:    "nobody@example.com",
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			ts.EXPECT().CreateToken(gomock.Any()).Return("token", nil).AnyTimes()
			test.mock(repo)

			s, err := service.NewService(repo, ts, nil, logger, service.Policy{})
			assert.NoError(t, err)

			_, token, err := s.LoginUser(context.Background(), test.email, test.password)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.NotEmpty(t, token)
			}
		})
	}
}
