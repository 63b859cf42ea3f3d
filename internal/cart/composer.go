package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/internal/pricing"
	"github.com/sohublabs/smartstore-backend/pkg/db/models"
	"github.com/sohublabs/smartstore-backend/pkg/types"
)

// ComposeLines turns priced drafts into persistable cart lines. Line ids are
// synthetic: product id + option fingerprint + timestamp + position, so the
// same configuration added twice stays two distinct lines.
func ComposeLines(productID uuid.UUID, sessionID string, drafts []pricing.LineDraft, now time.Time) []models.CartLine {
	ms := now.UnixMilli()
	lines := make([]models.CartLine, 0, len(drafts))
	for i, d := range drafts {
		lines = append(lines, models.CartLine{
			LineID:          fmt.Sprintf("%s_%s_%d_%d", productID, d.Fingerprint, ms, i),
			SessionID:       sessionID,
			ProductID:       productID,
			Name:            d.Name,
			Category:        d.Category,
			UnitPriceUnits:  d.UnitUnits,
			Quantity:        d.Quantity,
			TotalPriceUnits: d.TotalUnits,
			Image:           d.Image,
			Metadata:        types.Metadata(d.Metadata),
			CreatedAt:       now,
		})
	}
	return lines
}
