package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/google/uuid"
)

// authService checks admin credentials and issues JWT session tokens.
type authService struct {
	BaseService
	cfg       *config.Config
	adminRepo portsrepo.AdminRepositoryFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, adminRepo portsrepo.AdminRepositoryFacade) portssvc.AuthSvc {
	return &authService{BaseService: newBaseService("auth"), cfg: cfg, adminRepo: adminRepo}
}

func (s *authService) Login(ctx context.Context, name, password string) (string, time.Time, *domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.RecordLogin(false)
			return "", time.Time{}, nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return "", time.Time{}, nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		metrics.RecordLogin(false)
		s.LogInfo(ctx, "Rejected admin login", slog.String("admin_id", admin.AdminID))
		return "", time.Time{}, nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(admin.AdminID, admin.Name, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign admin token", slog.String("admin_id", admin.AdminID))
		return "", time.Time{}, nil, fmt.Errorf("failed to sign token: %w", err)
	}

	metrics.RecordLogin(true)
	s.LogInfo(ctx, "Admin logged in", slog.String("admin_id", admin.AdminID))
	return token, expiresAt, admin, nil
}

func (s *authService) GetAdmin(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin %s: %w", adminID, err)
	}
	return admin, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, password string) error {
	if name == "" || password == "" {
		s.LogDebug(ctx, "No bootstrap admin configured")
		return nil
	}

	_, err := s.adminRepo.FindAdminByName(ctx, name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Name:         name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.SystemActor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.SystemActor,
		},
	}
	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap admin created", slog.String("admin_id", admin.AdminID), slog.String("name", name))
	return nil
}
