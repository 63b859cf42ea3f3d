package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/db/models"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS cart_lines (
  line_id TEXT PRIMARY KEY,
  session_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  unit_price_units INTEGER NOT NULL,
  quantity INTEGER NOT NULL,
  total_price_units INTEGER NOT NULL,
  image TEXT,
  metadata TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedLine(session, lineID string, total int, at time.Time) models.CartLine {
	return models.CartLine{
		LineID:          lineID,
		SessionID:       session,
		ProductID:       uuid.New(),
		Name:            "PDLC Film (4' x 5' - Qty: 1)",
		Category:        "pdlc_film",
		UnitPriceUnits:  500,
		Quantity:        1,
		TotalPriceUnits: total,
		CreatedAt:       at,
	}
}

func TestRepositoryListBySessionOrdersByCreation(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.CreateLines(ctx, []models.CartLine{
		seedLine("sess-1", "line-b", 9500, base.Add(time.Second)),
		seedLine("sess-1", "line-a", 19500, base),
		seedLine("sess-2", "line-c", 3700, base),
	}))

	lines, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "line-a", lines[0].LineID)
	assert.Equal(t, "line-b", lines[1].LineID)
}

func TestRepositoryDeleteLine(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.CreateLines(ctx, []models.CartLine{seedLine("sess-1", "line-a", 19500, now)}))

	require.NoError(t, repo.DeleteLine(ctx, "sess-1", "line-a"))

	err := repo.DeleteLine(ctx, "sess-1", "line-a")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	lines, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRepositoryClearSession(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.CreateLines(ctx, []models.CartLine{
		seedLine("sess-1", "line-a", 19500, now),
		seedLine("sess-1", "line-b", 9500, now),
		seedLine("sess-2", "line-c", 3700, now),
	}))

	require.NoError(t, repo.ClearSession(ctx, "sess-1"))

	cleared, err := repo.ListBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, cleared)

	kept, err := repo.ListBySession(ctx, "sess-2")
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
