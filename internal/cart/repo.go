package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/sohublabs/smartstore-backend/pkg/db/models"
)

// LineRepository defines the persistence surface required by the cart service.
type LineRepository interface {
	WithTx(tx *gorm.DB) LineRepository
	CreateLines(ctx context.Context, lines []models.CartLine) error
	ListBySession(ctx context.Context, sessionID string) ([]models.CartLine, error)
	DeleteLine(ctx context.Context, sessionID, lineID string) error
	ClearSession(ctx context.Context, sessionID string) error
}

// Repository persists cart lines.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) LineRepository {
	return &Repository{db: tx}
}

// CreateLines inserts all lines in one statement.
func (r *Repository) CreateLines(ctx context.Context, lines []models.CartLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// ListBySession returns the session's lines oldest-first.
func (r *Repository) ListBySession(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// DeleteLine removes one line scoped to the session. Returns
// gorm.ErrRecordNotFound when nothing matched.
func (r *Repository) DeleteLine(ctx context.Context, sessionID, lineID string) error {
	res := r.db.WithContext(ctx).
		Where("session_id = ? AND line_id = ?", sessionID, lineID).
		Delete(&models.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClearSession drops every line for the session.
func (r *Repository) ClearSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&models.CartLine{}).Error
}
