package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        uint64
	Name      string
	Username  string
	Email     string
	Password  string
	Role      UserRole
	CreatedAt time.Time
}
