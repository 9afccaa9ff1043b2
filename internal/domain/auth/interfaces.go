package auth

import "context"

// UserRepository — only the methods the auth service uses
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, role *Role) ([]User, error)
	Update(ctx context.Context, u *User) error
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
