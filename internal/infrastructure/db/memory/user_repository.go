// Package memory provides the in-process repositories backing both
// collections. Each repository owns an ordered slice (listing order), an
// id-indexed map (lookups), and a monotonic id counter that is never rewound
// by deletion. Slice and map are kept in lockstep under one lock.
package memory

import (
	"context"
	"sync"

	"github.com/spendbook/expenses-api/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  []*domain.User
	byID   map[int64]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		byID:   make(map[int64]*domain.User),
	}
}

// Create assigns the next id and appends the user.
func (r *UserRepository) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++

	stored := *u
	r.users = append(r.users, &stored)
	r.byID[stored.ID] = &stored
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// List returns all users in insertion order. Callers receive clones and can
// never mutate the stored records.
func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *UserRepository) Update(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[u.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	*stored = *u
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			break
		}
	}
	return nil
}

func (r *UserRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}
