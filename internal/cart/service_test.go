package cart

import (
	"context"
	"errors"
	"testing"

	"neonburro-api/internal/catalog"
	"neonburro-api/internal/domain"
)

type memoryRepo struct {
	carts   map[string]*domain.Cart
	getErr  error
	saveErr error
	saves   int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{carts: make(map[string]*domain.Cart)}
}

func (m *memoryRepo) Get(_ context.Context, cartID string) (*domain.Cart, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if c, ok := m.carts[cartID]; ok {
		cp := *c
		cp.Lines = append([]domain.CartLine(nil), c.Lines...)
		return &cp, nil
	}
	return &domain.Cart{ID: cartID}, nil
}

func (m *memoryRepo) Save(_ context.Context, cart *domain.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := *cart
	cp.Lines = append([]domain.CartLine(nil), cart.Lines...)
	m.carts[cart.ID] = &cp
	return nil
}

func (m *memoryRepo) Delete(_ context.Context, cartID string) error {
	delete(m.carts, cartID)
	return nil
}

func newTestService(t *testing.T) (*Service, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	return New(repo, catalog.Default()), repo
}

func TestAddToCartMergesSameIdentity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Quantity: 1, Size: "M"}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	cart, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Quantity: 1, Size: "M"})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(cart.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Lines[0].Quantity)
	}
	if got := cart.TotalCents(); got != 17000 {
		t.Fatalf("expected total 17000, got %d", got)
	}
}

func TestAddToCartDistinctSizesStayDistinct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Size: "M"}); err != nil {
		t.Fatalf("add M: %v", err)
	}
	cart, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Size: "L"})
	if err != nil {
		t.Fatalf("add L: %v", err)
	}
	if len(cart.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(cart.Lines))
	}
}

func TestAddToCartDesignDoesNotSplitLines(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Size: "M", Design: "sunset-burro"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Size: "M", Design: "neon-peaks"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cart.Lines) != 1 {
		t.Fatalf("expected design variants to merge into 1 line, got %d", len(cart.Lines))
	}
	if cart.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart.Lines[0].Quantity)
	}
}

func TestAddToCartTierPricing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cart, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "gift-card", Tier: "tier-100"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.Lines[0].PriceCents != 10000 {
		t.Fatalf("expected tier price 10000, got %d", cart.Lines[0].PriceCents)
	}

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "gift-card", Tier: "tier-9000"}); err == nil {
		t.Fatalf("expected error for unknown tier")
	}
}

func TestAddToCartCoercesQuantity(t *testing.T) {
	svc, _ := newTestService(t)

	cart, err := svc.AddToCart(context.Background(), "c1", AddInput{ProductID: "camp-mug", Quantity: -3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if cart.Lines[0].Quantity != 1 {
		t.Fatalf("expected quantity coerced to 1, got %d", cart.Lines[0].Quantity)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddToCart(context.Background(), "c1", AddInput{ProductID: "no-such-thing"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveFromCartRemovesAllBaseIDVariants(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, size := range []string{"M", "L"} {
		if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "trail-tee", Size: size}); err != nil {
			t.Fatalf("add %s: %v", size, err)
		}
	}
	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "camp-mug"}); err != nil {
		t.Fatalf("add mug: %v", err)
	}

	cart, err := svc.RemoveFromCart(ctx, "c1", "trail-tee")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Lines) != 1 || cart.Lines[0].ProductID != "camp-mug" {
		t.Fatalf("expected only camp-mug to survive, got %+v", cart.Lines)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "camp-mug", Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, qty := range []int{0, -4} {
		if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "camp-mug"}); err != nil {
			t.Fatalf("re-add: %v", err)
		}
		cart, err := svc.UpdateQuantity(ctx, "c1", "camp-mug", "", "", qty)
		if err != nil {
			t.Fatalf("update qty=%d: %v", qty, err)
		}
		if len(cart.Lines) != 0 {
			t.Fatalf("qty=%d: expected line removed, got %+v", qty, cart.Lines)
		}
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "sticker-sheet"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	cart, err := svc.UpdateQuantity(ctx, "c1", "sticker-sheet", "", "", 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cart.Lines[0].Quantity)
	}
	if got := cart.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}

	if _, err := svc.UpdateQuantity(ctx, "c1", "sticker-sheet", "XL", "", 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown line, got %v", err)
	}
}

func TestEveryMutationWritesThrough(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "camp-mug"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, "c1", "camp-mug", "", "", 3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.RemoveFromCart(ctx, "c1", "camp-mug"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if repo.saves != 3 {
		t.Fatalf("expected 3 write-throughs, got %d", repo.saves)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "c1", AddInput{ProductID: "camp-mug"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Clear(ctx, "c1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, err := svc.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", cart.Lines)
	}
}
