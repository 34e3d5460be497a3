// Package calc exposes stateless arithmetic endpoints.
package calc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"InMemShop/pkg/kit"
)

type Server struct {
	Log *zap.Logger
}

// Operands are pointers so that an explicit zero survives the required
// check.
type operandsReq struct {
	A *int64 `json:"a" validate:"required"`
	B *int64 `json:"b" validate:"required"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/calc", func(cr chi.Router) {
		cr.Post("/add", s.handleAdd)
		cr.Post("/subtract", s.handleSubtract)
		cr.Post("/multiply", s.handleMultiply)
		cr.Post("/divide", s.handleDivide)
	})

	return r
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]int64{"sum": *req.A + *req.B})
}

func (s *Server) handleSubtract(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]int64{"difference": *req.A - *req.B})
}

func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]int64{"product": *req.A * *req.B})
}

func (s *Server) handleDivide(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decode(w, r)
	if !ok {
		return
	}
	if *req.B == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "division by zero is not allowed", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]float64{"quotient": float64(*req.A) / float64(*req.B)})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request) (operandsReq, bool) {
	var req operandsReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return operandsReq{}, false
	}
	return req, true
}
