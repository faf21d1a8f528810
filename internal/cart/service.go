package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"neonburro-api/internal/domain"
	cartrepo "neonburro-api/internal/repository/cart"
)

// Service is the single source of truth for cart contents. Every mutation
// writes the whole cart back through the repository, so a reload always sees
// the last completed operation.
type Service struct {
	repo    cartrepo.Repository
	catalog productCatalog
}

type productCatalog interface {
	Get(id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, catalog productCatalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

type AddInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Design    string `json:"design,omitempty"`
	Tier      string `json:"tier,omitempty"`
}

func (s *Service) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return s.repo.Get(ctx, cartID)
}

// AddToCart appends a line or, when a line with the same identity key
// already exists, increments its quantity. Quantities below one are coerced
// to one. Design selection is recorded on the line but does not participate
// in the identity key, so adds differing only by design merge.
func (s *Service) AddToCart(ctx context.Context, cartID string, in AddInput) (*domain.Cart, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, errors.New("productId required")
	}
	product, err := s.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("product %q: %w", productID, err)
		}
		return nil, err
	}

	price := product.PriceCents
	if in.Tier != "" {
		tier := product.TierByID(in.Tier)
		if tier == nil {
			return nil, fmt.Errorf("product %q has no tier %q", productID, in.Tier)
		}
		price = tier.PriceCents
	}
	if in.Size != "" && !product.HasSize(in.Size) {
		return nil, fmt.Errorf("product %q has no size %q", productID, in.Size)
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	key := domain.LineKey(productID, in.Size, in.Tier)
	merged := false
	for i := range cart.Lines {
		if cart.Lines[i].Key == key {
			cart.Lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		cart.Lines = append(cart.Lines, domain.CartLine{
			Key:        key,
			ProductID:  productID,
			Name:       product.Name,
			PriceCents: price,
			Quantity:   qty,
			Size:       in.Size,
			Design:     in.Design,
			Tier:       in.Tier,
		})
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveFromCart deletes every line whose base product id matches, not just
// one variant: removing "trail-tee" drops the M and the L line both. This
// mirrors the storefront's long-standing behavior and is relied on by the UI.
func (s *Service) RemoveFromCart(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := cart.Lines[:0]
	for _, l := range cart.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	cart.Lines = kept

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the quantity of the line identified by
// (productID, size, tier). A quantity of zero or less removes the line; a
// cart never persists a line with quantity below one.
func (s *Service) UpdateQuantity(ctx context.Context, cartID, productID, size, tier string, qty int) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}

	key := domain.LineKey(productID, size, tier)
	found := false
	kept := cart.Lines[:0]
	for _, l := range cart.Lines {
		if l.Key == key {
			found = true
			if qty <= 0 {
				continue
			}
			l.Quantity = qty
		}
		kept = append(kept, l)
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	cart.Lines = kept

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart. Called on explicit "clear cart" and after a
// successful order.
func (s *Service) Clear(ctx context.Context, cartID string) error {
	return s.repo.Delete(ctx, cartID)
}
