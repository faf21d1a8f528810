package cart

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"neonburro-api/internal/domain"
)

func TestDecodeCartRoundTrip(t *testing.T) {
	original := &domain.Cart{
		ID: "c1",
		Lines: []domain.CartLine{
			{Key: domain.LineKey("trail-tee", "M", ""), ProductID: "trail-tee", Name: "Trail Tee", PriceCents: 8500, Quantity: 2, Size: "M", Design: "neon-peaks"},
			{Key: domain.LineKey("gift-card", "", "tier-50"), ProductID: "gift-card", Name: "Neon Burro Gift Card", PriceCents: 5000, Quantity: 1, Tier: "tier-50"},
		},
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := decodeCart("c1", data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(original, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", original, got)
	}
}

func TestDecodeCartCorruptPayload(t *testing.T) {
	if _, err := decodeCart("c1", []byte("{not json")); err == nil {
		t.Fatalf("expected decode error for corrupt payload")
	}
}

func TestDecodeCartDropsInvalidLines(t *testing.T) {
	data := []byte(`{"id":"c1","lines":[
		{"productId":"trail-tee","priceCents":8500,"quantity":0,"size":"M"},
		{"productId":"","priceCents":100,"quantity":1},
		{"productId":"camp-mug","priceCents":2800,"quantity":1}
	]}`)

	cart, err := decodeCart("c1", data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 surviving line, got %d", len(cart.Lines))
	}
	line := cart.Lines[0]
	if line.ProductID != "camp-mug" {
		t.Fatalf("wrong line survived: %+v", line)
	}
	if line.Key != domain.LineKey("camp-mug", "", "") {
		t.Fatalf("expected key backfilled, got %q", line.Key)
	}
}
