package catalog

import (
	"fmt"

	"neonburro-api/internal/domain"
)

// Registry is the build-time product catalog: the digital, wearable and
// craft sub-catalogs merged behind one lookup.
type Registry struct {
	products []domain.Product
	byID     map[string]int
}

// New merges the given sub-catalogs. Product ids must be unique across all
// of them.
func New(subCatalogs ...[]domain.Product) (*Registry, error) {
	r := &Registry{byID: make(map[string]int)}
	for _, sub := range subCatalogs {
		for _, p := range sub {
			if p.ID == "" {
				return nil, fmt.Errorf("product %q has empty id", p.Name)
			}
			if _, dup := r.byID[p.ID]; dup {
				return nil, fmt.Errorf("duplicate product id %q", p.ID)
			}
			r.byID[p.ID] = len(r.products)
			r.products = append(r.products, p)
		}
	}
	return r, nil
}

// Default builds the registry from the storefront's static product data.
// It panics on a malformed catalog, which can only happen at build time.
func Default() *Registry {
	r, err := New(digital, wearables, crafts)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the product with the given id or domain.ErrNotFound.
func (r *Registry) Get(id string) (*domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.products[idx]
	return &p, nil
}

// List returns all products in catalog order.
func (r *Registry) List() []domain.Product {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out
}

// ByCategory returns all products in the given category, in catalog order.
func (r *Registry) ByCategory(cat domain.ProductCategory) []domain.Product {
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}
