package cart

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sohublabs/smartstore-backend/internal/pricing"
)

func TestComposeLinesAssignsSyntheticIDs(t *testing.T) {
	productID := uuid.New()
	now := time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)
	drafts := []pricing.LineDraft{
		{Name: "PDLC Film (4' x 5' - Qty: 1)", Category: "pdlc_film", UnitUnits: 500, Quantity: 1, TotalUnits: 19500, Fingerprint: "4x5_qty1_0"},
		{Name: "Installation and setup", Category: "Installation Service", Quantity: 1, Fingerprint: "installation"},
	}

	lines := ComposeLines(productID, "sess-1", drafts, now)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	wantID := fmt.Sprintf("%s_4x5_qty1_0_%d_0", productID, now.UnixMilli())
	if lines[0].LineID != wantID {
		t.Fatalf("expected id %q, got %q", wantID, lines[0].LineID)
	}
	if !strings.HasSuffix(lines[1].LineID, "_1") {
		t.Fatalf("expected position suffix on second line, got %q", lines[1].LineID)
	}
	if lines[0].SessionID != "sess-1" || lines[0].ProductID != productID {
		t.Fatalf("line missing session or product binding: %+v", lines[0])
	}
	if lines[0].TotalPriceUnits != 19500 {
		t.Fatalf("expected total carried over, got %d", lines[0].TotalPriceUnits)
	}
}

func TestComposeLinesDistinctAcrossAdds(t *testing.T) {
	productID := uuid.New()
	draft := []pricing.LineDraft{{Name: "Switch", Category: "smart_switch", Quantity: 1, Fingerprint: "White"}}

	first := ComposeLines(productID, "sess-1", draft, time.UnixMilli(1000))
	second := ComposeLines(productID, "sess-1", draft, time.UnixMilli(2000))

	if first[0].LineID == second[0].LineID {
		t.Fatalf("same configuration at different times must get distinct ids, got %q", first[0].LineID)
	}
}

func TestComposeLinesEmpty(t *testing.T) {
	if got := ComposeLines(uuid.New(), "sess-1", nil, time.Now()); len(got) != 0 {
		t.Fatalf("expected no lines, got %d", len(got))
	}
}
