package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, branch string) ([]User, error)
	ListBranches(ctx context.Context) ([]string, error)
}
