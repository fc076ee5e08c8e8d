package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Padmajasharma/Bookshow/internal/models"
	"github.com/Padmajasharma/Bookshow/internal/repository"
	"github.com/Padmajasharma/Bookshow/pkg/monitoring"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for every failed login; it never reveals
// whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// dummyHash keeps a bcrypt comparison on the failure path when the email is
// unknown, so both failure modes cost the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService interface {
	RegisterBuyer(ctx context.Context, buyer *models.Buyer, password string) error
	RegisterAdmin(ctx context.Context, admin *models.Admin, password string) error
	Login(ctx context.Context, realm models.Role, email, password string) (*models.Identity, error)
}

type authService struct {
	buyerRepo repository.BuyerRepository
	adminRepo repository.AdminRepository
}

func NewAuthService(buyerRepo repository.BuyerRepository, adminRepo repository.AdminRepository) AuthService {
	return &authService{buyerRepo: buyerRepo, adminRepo: adminRepo}
}

func (s *authService) RegisterBuyer(ctx context.Context, buyer *models.Buyer, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	buyer.Password = string(hash)
	if err := s.buyerRepo.Create(ctx, buyer); err != nil {
		return fmt.Errorf("create buyer: %w", err)
	}
	return nil
}

func (s *authService) RegisterAdmin(ctx context.Context, admin *models.Admin, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	admin.Password = string(hash)
	// Username/email uniqueness is enforced by the database; violations
	// propagate to the caller untouched.
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, realm models.Role, email, password string) (*models.Identity, error) {
	var (
		id     uint
		stored string
	)

	switch realm {
	case models.RoleBuyer:
		buyer, err := s.buyerRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, s.fail(realm, password)
		}
		id, stored = buyer.ID, buyer.Password
	case models.RoleAdmin:
		admin, err := s.adminRepo.FindByEmail(ctx, email)
		if err != nil {
			return nil, s.fail(realm, password)
		}
		id, stored = admin.ID, admin.Password
	default:
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		monitoring.LoginAttempts.WithLabelValues(string(realm), "failure").Inc()
		return nil, ErrInvalidCredentials
	}

	monitoring.LoginAttempts.WithLabelValues(string(realm), "success").Inc()
	return &models.Identity{Role: realm, ID: id}, nil
}

func (s *authService) fail(realm models.Role, password string) error {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	monitoring.LoginAttempts.WithLabelValues(string(realm), "failure").Inc()
	return ErrInvalidCredentials
}
