package shop

import (
	"context"
	"errors"
	"time"
)

// Status labels an order's lifecycle. Only PENDING carries behavior: it is
// the sole state in which an order may be deleted.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusShipped  Status = "SHIPPED"
	StatusCanceled Status = "CANCELED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCanceled:
		return true
	}
	return false
}

type Product struct {
	ID    int64   `json:"id"`
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type Order struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductPatch carries a partial product update; nil fields are left as-is.
type ProductPatch struct {
	SKU   *string
	Name  *string
	Price *float64
	Stock *int
}

// OrderPatch carries a partial order update; nil fields are left as-is.
type OrderPatch struct {
	Quantity *int
	Status   *Status
}

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrSKUExists         = errors.New("sku already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotPending   = errors.New("only PENDING orders can be deleted")
	ErrInvalidPrice      = errors.New("price must be > 0")
	ErrInvalidStock      = errors.New("stock must be >= 0")
	ErrInvalidQuantity   = errors.New("quantity must be > 0")
	ErrInvalidStatus     = errors.New("unknown order status")
)

type Store interface {
	Ping(ctx context.Context) error

	CreateProduct(ctx context.Context, sku, name string, price float64, stock int) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, productID int64, quantity int) (Order, error)
	GetOrder(ctx context.Context, id int64) (Order, error)
	UpdateOrder(ctx context.Context, id int64, patch OrderPatch) (Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
