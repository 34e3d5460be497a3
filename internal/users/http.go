package users

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"InMemShop/pkg/kit"
)

type Server struct {
	Log   *zap.Logger
	Store *MemStore
}

type registerReq struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := kit.DecodeValid(w, r, &req); err != nil {
		kit.WriteDecodeError(w, r, err)
		return
	}

	id := "u_" + uuid.NewString()

	u, err := s.Store.Create(req.Username, req.Email, req.Password, id)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
			return
		}
		if s.Log != nil {
			s.Log.Error("create user failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, u)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Store.List())
}
