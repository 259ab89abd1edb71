package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/restofront/apiserver/internal/auth"
	"github.com/restofront/apiserver/internal/events"
	"github.com/restofront/apiserver/internal/store"
	"github.com/restofront/apiserver/types"
)

// ErrInvalidRole is returned when a role update names a value outside the
// closed enumeration. The target record is left unchanged.
var ErrInvalidRole = errors.New("invalid role")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdateRole(ctx context.Context, id int, role types.Role) (types.User, error)
	List(ctx context.Context) ([]types.User, error)
	Delete(ctx context.Context, id int) error
}

// RegisterInput is the structured input for creating an account.
// Role is the raw external string; empty means the default role.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo      UserRepository
	publisher *events.Publisher
}

func NewUserService(repo UserRepository, publisher *events.Publisher) *UserService {
	return &UserService{repo: repo, publisher: publisher}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// Register creates a new account. The email must be unused; the password
// is hashed before it ever reaches the store; the role defaults to client
// unless a valid role is supplied.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (types.User, error) {
	role := types.DefaultRole
	if input.Role != "" {
		parsed, err := types.ParseRole(input.Role)
		if err != nil {
			return types.User{}, ErrInvalidRole
		}
		role = parsed
	}

	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return types.User{}, store.ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return types.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, types.User{
		Name:         input.Name,
		Email:        input.Email,
		Role:         role,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		return types.User{}, err
	}

	s.publisher.UserRegistered(ctx, user)
	return user, nil
}

// UpdateRole parses and applies a role change. An unknown role string is
// rejected before the store is touched; an unknown id surfaces as
// store.ErrNotFound.
func (s *UserService) UpdateRole(ctx context.Context, id int, role string) (types.User, error) {
	parsed, err := types.ParseRole(role)
	if err != nil {
		return types.User{}, ErrInvalidRole
	}

	user, err := s.repo.UpdateRole(ctx, id, parsed)
	if err != nil {
		return types.User{}, err
	}

	s.publisher.UserRoleChanged(ctx, user)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
