package migrate_test

import (
	"testing"

	"github.com/sohublabs/smartstore-backend/pkg/migrate"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("ValidateDir: %v", err)
	}
}

func TestValidateDirRejectsEmptyDir(t *testing.T) {
	if err := migrate.ValidateDir(""); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
