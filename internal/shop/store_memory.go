package shop

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore keeps products and orders in process memory. One mutex guards
// both collections: order operations adjust product stock, so every
// operation must be a single atomic step under the same lock. All
// validation happens before the first mutation, so a failed operation
// leaves the store untouched.
type MemStore struct {
	mu sync.Mutex

	products map[int64]Product
	skuToID  map[string]int64
	orders   map[int64]Order

	nextProductID int64
	nextOrderID   int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		products:      make(map[int64]Product),
		skuToID:       make(map[string]int64),
		orders:        make(map[int64]Order),
		nextProductID: 1,
		nextOrderID:   1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) CreateProduct(ctx context.Context, sku, name string, price float64, stock int) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.skuToID[sku]; taken {
		return Product{}, ErrSKUExists
	}
	if price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if stock < 0 {
		return Product{}, ErrInvalidStock
	}

	p := Product{
		ID:    s.nextProductID,
		SKU:   sku,
		Name:  name,
		Price: price,
		Stock: stock,
	}
	s.nextProductID++
	s.products[p.ID] = p
	s.skuToID[p.SKU] = p.ID
	return p, nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id int64) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *MemStore) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}

	if patch.SKU != nil && *patch.SKU != p.SKU {
		if _, taken := s.skuToID[*patch.SKU]; taken {
			return Product{}, ErrSKUExists
		}
	}
	if patch.Price != nil && *patch.Price <= 0 {
		return Product{}, ErrInvalidPrice
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return Product{}, ErrInvalidStock
	}

	if patch.SKU != nil && *patch.SKU != p.SKU {
		delete(s.skuToID, p.SKU)
		s.skuToID[*patch.SKU] = id
		p.SKU = *patch.SKU
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}

	s.products[id] = p
	return p, nil
}

// DeleteProduct removes the product and its SKU index entry. Orders
// referencing the product are left in place with a dangling product id;
// order operations tolerate that (see DeleteOrder, UpdateOrder).
func (s *MemStore) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return ErrProductNotFound
	}
	delete(s.products, id)
	delete(s.skuToID, p.SKU)
	return nil
}

func (s *MemStore) CreateOrder(ctx context.Context, productID int64, quantity int) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return Order{}, ErrProductNotFound
	}
	if quantity <= 0 {
		return Order{}, ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return Order{}, ErrInsufficientStock
	}

	p.Stock -= quantity
	s.products[productID] = p

	o := Order{
		ID:        s.nextOrderID,
		ProductID: productID,
		Quantity:  quantity,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	s.nextOrderID++
	s.orders[o.ID] = o
	return o, nil
}

func (s *MemStore) GetOrder(ctx context.Context, id int64) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (s *MemStore) UpdateOrder(ctx context.Context, id int64, patch OrderPatch) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}

	if patch.Status != nil && !patch.Status.Valid() {
		return Order{}, ErrInvalidStatus
	}

	if patch.Quantity != nil {
		q := *patch.Quantity
		if q <= 0 {
			return Order{}, ErrInvalidQuantity
		}

		p, ok := s.products[o.ProductID]
		if !ok {
			return Order{}, ErrProductNotFound
		}

		// delta > 0 grows the order and must fit the remaining stock;
		// delta <= 0 returns stock to the product.
		delta := q - o.Quantity
		if delta > 0 && p.Stock < delta {
			return Order{}, ErrInsufficientStock
		}
		p.Stock -= delta
		s.products[o.ProductID] = p
		o.Quantity = q
	}

	if patch.Status != nil {
		// No transition table: any status may replace any other.
		o.Status = *patch.Status
	}

	s.orders[id] = o
	return o, nil
}

func (s *MemStore) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	if o.Status != StatusPending {
		return ErrOrderNotPending
	}

	// Restore the reserved stock unless the product was deleted after the
	// order was placed.
	if p, ok := s.products[o.ProductID]; ok {
		p.Stock += o.Quantity
		s.products[o.ProductID] = p
	}

	delete(s.orders, id)
	return nil
}
