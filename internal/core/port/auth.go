package port

import "github.com/blossomkart/blossomkart/internal/core/domain"

type TokenPayload struct {
	UserID   uint64
	Username string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
