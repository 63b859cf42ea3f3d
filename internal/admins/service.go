package admins

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/auth"
	"github.com/sohublabs/smartstore-backend/pkg/config"
	"github.com/sohublabs/smartstore-backend/pkg/db"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
	"github.com/sohublabs/smartstore-backend/pkg/security"
)

const generatedPasswordLength = 16

// LoginResult carries the minted bearer token alongside the account.
type LoginResult struct {
	Token string
	Admin *models.Admin
}

// CreateInput seeds a back-office account. An empty password requests a
// generated one.
type CreateInput struct {
	Email    string
	Name     string
	Password string
}

// Service runs back-office authentication and account seeding.
type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Create(ctx context.Context, input CreateInput) (*models.Admin, string, error)
}

type service struct {
	repo        AdminRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
	logg        *logger.Logger
	now         func() time.Time
}

// NewService builds the admin service.
func NewService(repo AdminRepository, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:        repo,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
		logg:        logg,
		now:         time.Now,
	}, nil
}

// Login verifies the password and mints a bearer token. Unknown accounts,
// disabled accounts and bad passwords all collapse into the same
// unauthorized error.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email and password required")
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading admin")
	}
	if !admin.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	ok, err := security.VerifyPassword(password, admin.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.now().UTC()
	token, err := auth.MintAdminToken(s.jwtCfg, now, auth.AdminTokenPayload{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.Name,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token")
	}

	if err := s.repo.TouchLastLogin(ctx, admin.ID, now); err != nil {
		ctx = s.logg.WithAdminID(ctx, admin.ID.String())
		s.logg.Error(ctx, "admin.touch_last_login_failed", err)
	}

	return &LoginResult{Token: token, Admin: admin}, nil
}

// Create seeds an account. The returned string is the plaintext password when
// one was generated, empty otherwise.
func (s *service) Create(ctx context.Context, input CreateInput) (*models.Admin, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "email required")
	}

	password := input.Password
	generated := ""
	if password == "" {
		temp, err := security.GenerateTempPassword(generatedPasswordLength)
		if err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generating password")
		}
		password = temp
		generated = temp
	}

	hash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hashing password")
	}

	admin, err := s.repo.Create(ctx, &models.Admin{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, "", pkgerrors.New(pkgerrors.CodeConflict, "admin email already exists")
		}
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating admin")
	}
	return admin, generated, nil
}
