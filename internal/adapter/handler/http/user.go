package http

import (
	"net/http"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/blossomkart/blossomkart/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func newUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	req := registerRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if req.Username == "" {
		uh.handleError(ctx, domain.NewValidationError("username", "is required"))
		return
	}
	if req.Email == "" {
		uh.handleError(ctx, domain.NewValidationError("email", "is required"))
		return
	}
	if len(req.Password) < 6 {
		uh.handleError(ctx, domain.NewValidationError("password", "must be at least 6 characters"))
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		uh.handleError(ctx, domain.ErrInternal)
		return
	}

	user := &domain.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}

	newUser, token, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, gin.H{
		"token": token,
		"user":  newUserResponse(newUser),
	}, http.StatusCreated)
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		uh.handleError(ctx, domain.NewValidationError("email", "email and password are required"))
		return
	}

	user, token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{
		"token": token,
		"user":  newUserResponse(user),
	})
}

func (uh *UserHandler) GetProfile(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	user, err := uh.service.GetProfile(ctx, userID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{"user": newUserResponse(user)})
}

type profileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (uh *UserHandler) UpdateProfile(ctx *gin.Context) {
	req := profileUpdateRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	userID := getAuthPayload(ctx).UserID

	user, err := uh.service.UpdateProfile(ctx, userID, port.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{"user": newUserResponse(user)})
}
