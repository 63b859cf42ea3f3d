package admins

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/auth"
	"github.com/sohublabs/smartstore-backend/pkg/config"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	pkgerrors "github.com/sohublabs/smartstore-backend/pkg/errors"
	"github.com/sohublabs/smartstore-backend/pkg/logger"
	"github.com/sohublabs/smartstore-backend/pkg/security"
)

type stubAdminRepo struct {
	admin      *models.Admin
	findErr    error
	created    *models.Admin
	createErr  error
	touched    int
	touchedErr error
}

func (s *stubAdminRepo) WithTx(*gorm.DB) AdminRepository { return s }

func (s *stubAdminRepo) FindByEmail(context.Context, string) (*models.Admin, error) {
	return s.admin, s.findErr
}

func (s *stubAdminRepo) Create(_ context.Context, a *models.Admin) (*models.Admin, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	a.ID = uuid.New()
	s.created = a
	return a, nil
}

func (s *stubAdminRepo) TouchLastLogin(context.Context, uuid.UUID, time.Time) error {
	s.touched++
	return s.touchedErr
}

func testPasswordCfg() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "smartstore", ExpirationMinutes: 30}
}

func activeAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordCfg())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.Admin{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		Name:         "Ops Admin",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func newTestAdmins(t *testing.T, repo AdminRepository) Service {
	t.Helper()
	svc, err := NewService(repo, testJWTCfg(), testPasswordCfg(), logger.New(logger.Options{ServiceName: "test"}))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLoginSuccess(t *testing.T) {
	repo := &stubAdminRepo{admin: activeAdmin(t, "correct horse")}
	svc := newTestAdmins(t, repo)

	result, err := svc.Login(context.Background(), "Ops@Example.com", "correct horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := auth.ParseAdminToken(testJWTCfg(), result.Token)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.AdminID != repo.admin.ID {
		t.Fatalf("token bound to wrong admin: %s", claims.AdminID)
	}
	if repo.touched != 1 {
		t.Fatalf("expected last login touch, got %d", repo.touched)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &stubAdminRepo{admin: activeAdmin(t, "correct horse")}
	svc := newTestAdmins(t, repo)

	_, err := svc.Login(context.Background(), "ops@example.com", "wrong")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestLoginUnknownAndDisabledCollapse(t *testing.T) {
	svc := newTestAdmins(t, &stubAdminRepo{findErr: gorm.ErrRecordNotFound})
	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "pw")

	disabled := activeAdmin(t, "pw")
	disabled.IsActive = false
	svc = newTestAdmins(t, &stubAdminRepo{admin: disabled})
	_, disabledErr := svc.Login(context.Background(), "ops@example.com", "pw")

	for _, err := range []error{unknownErr, disabledErr} {
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if typed.Message() != "invalid credentials" {
			t.Fatalf("account state must not leak, got %q", typed.Message())
		}
	}
}

func TestLoginSurvivesTouchFailure(t *testing.T) {
	repo := &stubAdminRepo{admin: activeAdmin(t, "pw"), touchedErr: gorm.ErrInvalidDB}
	svc := newTestAdmins(t, repo)

	if _, err := svc.Login(context.Background(), "ops@example.com", "pw"); err != nil {
		t.Fatalf("touch failure must not fail login: %v", err)
	}
}

func TestCreateGeneratesPassword(t *testing.T) {
	repo := &stubAdminRepo{}
	svc := newTestAdmins(t, repo)

	admin, generated, err := svc.Create(context.Background(), CreateInput{
		Email: "New.Admin@Example.com",
		Name:  "New Admin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if admin.Email != "new.admin@example.com" {
		t.Fatalf("email not normalized: %q", admin.Email)
	}
	if len(generated) != generatedPasswordLength {
		t.Fatalf("expected generated password of length %d, got %q", generatedPasswordLength, generated)
	}

	ok, err := security.VerifyPassword(generated, admin.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("generated password must verify against stored hash: ok=%v err=%v", ok, err)
	}
}

func TestCreateKeepsProvidedPassword(t *testing.T) {
	svc := newTestAdmins(t, &stubAdminRepo{})

	admin, generated, err := svc.Create(context.Background(), CreateInput{
		Email:    "ops@example.com",
		Password: "chosen password",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if generated != "" {
		t.Fatalf("no password should be generated, got %q", generated)
	}
	if ok, _ := security.VerifyPassword("chosen password", admin.PasswordHash); !ok {
		t.Fatal("provided password must verify")
	}
}
