package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/repository"
)

type userStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
}

type tokenIssuer interface {
	CreateAccessToken(sub, role, email string) (string, error)
}

type AuthSvc struct {
	users  userStore
	tokens tokenIssuer
}

func NewAuthSvc(users userStore, tokens tokenIssuer) *AuthSvc {
	return &AuthSvc{users: users, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

func (s *AuthSvc) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}
	role := domain.Role(in.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleCustomer && role != domain.RoleBusiness {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, in.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        in.Phone,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

// Login never says which half of the credential was wrong.
func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.ByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.CreateAccessToken(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
