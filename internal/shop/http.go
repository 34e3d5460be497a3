package shop

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"InMemShop/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/products", func(pr chi.Router) {
		pr.Post("/", s.createProduct)
		pr.Get("/", s.listProducts)
		pr.Get("/{id}", s.getProduct)
		pr.Put("/{id}", s.updateProduct)
		pr.Delete("/{id}", s.deleteProduct)
	})

	r.Route("/orders", func(or chi.Router) {
		or.Post("/", s.createOrder)
		or.Get("/{id}", s.getOrder)
		or.Put("/{id}", s.updateOrder)
		or.Delete("/{id}", s.deleteOrder)
	})

	return r
}

type createProductReq struct {
	SKU   string  `json:"sku" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}

type updateProductReq struct {
	SKU   *string  `json:"sku" validate:"omitempty,min=1"`
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

type createOrderReq struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type updateOrderReq struct {
	Quantity *int    `json:"quantity"`
	Status   *Status `json:"status" validate:"omitempty,oneof=PENDING PAID SHIPPED CANCELED"`
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	p, err := s.Store.CreateProduct(r.Context(), req.SKU, req.Name, req.Price, req.Stock)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	p, err := s.Store.GetProduct(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req updateProductReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	p, err := s.Store.UpdateProduct(r.Context(), id, ProductPatch{
		SKU:   req.SKU,
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	if err := s.Store.DeleteProduct(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	o, err := s.Store.CreateOrder(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	o, err := s.Store.GetOrder(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var req updateOrderReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	o, err := s.Store.UpdateOrder(r.Context(), id, OrderPatch{
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, o)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}

	if err := s.Store.DeleteOrder(r.Context(), id); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrOrderNotFound):
		kit.WriteError(w, r, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, ErrSKUExists),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrOrderNotPending):
		kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidStock),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrInvalidStatus):
		kit.WriteError(w, r, http.StatusBadRequest, err.Error(), nil)
	default:
		if s.Log != nil {
			s.Log.Error("store operation failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}
