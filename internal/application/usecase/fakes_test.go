package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fake de categorías replica la semántica de la FK
// ON DELETE SET NULL: al eliminar una categoría los productos que la
// referencian quedan sin categoría, pero persisten.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(id string, qty decimal.Decimal, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentQuantity = qty
	p.UpdatedAt = updatedAt
	return nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.LowStock && !stock.IsLowStock(p) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{LowStock: true, Limit: len(r.products)})
}

func (r *fakeProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

// clearCategory replica ON DELETE SET NULL.
func (r *fakeProductRepo) clearCategory(categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			p.CategoryID = ""
		}
	}
}

type fakeCategoryRepo struct {
	mu          sync.Mutex
	categories  map[string]*entity.Category
	productRepo *fakeProductRepo
}

func newFakeCategoryRepo(productRepo *fakeProductRepo) *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category), productRepo: productRepo}
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	r.mu.Lock()
	delete(r.categories, id)
	r.mu.Unlock()
	if r.productRepo != nil {
		r.productRepo.clearCategory(id)
	}
	return nil
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListRecent(limit int) ([]*entity.StockMovementDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockMovementDetail, 0, len(r.movements))
	for _, m := range r.movements {
		out = append(out, &entity.StockMovementDetail{StockMovement: *m})
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return r.ListAllByProduct(productID)
}

func (r *fakeMovementRepo) ListAllByProduct(productID string) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	mu   sync.Mutex
	mov  *fakeMovementRepo
	prod *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ProductRepository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.mov, r.prod)
}
