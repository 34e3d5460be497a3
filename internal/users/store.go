package users

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var ErrUsernameExists = errors.New("username already exists")

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Hash     []byte `json:"-"`
}

type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
}

func NewMemStore() *MemStore {
	return &MemStore{byUsername: make(map[string]User)}
}

func (s *MemStore) Create(username, email, password, id string) (User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return User{}, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{ID: id, Username: username, Email: email, Hash: hash}
	s.byUsername[username] = u
	return u, nil
}

func (s *MemStore) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0, len(s.byUsername))
	for _, u := range s.byUsername {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
