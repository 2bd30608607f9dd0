package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/user"
)

// UserRepository is an in-memory implementation of user.Repository.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*user.User
	byEmail map[string]string // lowercase email -> user id
}

// NewUserRepository creates an empty user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]string),
	}
}

// Create implements user.Repository.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; exists {
		return shared.WrapError("user", "Create", shared.ErrAlreadyExists,
			fmt.Sprintf("user %s already exists", u.ID), nil)
	}
	key := strings.ToLower(u.Email)
	if key != "" {
		if _, exists := r.byEmail[key]; exists {
			return shared.WrapError("user", "Create", shared.ErrAlreadyExists,
				fmt.Sprintf("email %s already registered", u.Email), nil)
		}
		r.byEmail[key] = u.ID
	}
	r.byID[u.ID] = copyUser(u)
	return nil
}

// GetByID implements user.Repository.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return copyUser(u), nil
}

// GetByEmail implements user.Repository.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return copyUser(r.byID[id]), nil
}

// Update implements user.Repository.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[u.ID]
	if !ok {
		return shared.ErrUserNotFound
	}
	if !strings.EqualFold(current.Email, u.Email) {
		delete(r.byEmail, strings.ToLower(current.Email))
		if u.Email != "" {
			r.byEmail[strings.ToLower(u.Email)] = u.ID
		}
	}
	r.byID[u.ID] = copyUser(u)
	return nil
}

// GetAll implements user.Repository.
func (r *UserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*user.User, 0, len(r.byID))
	for _, u := range r.byID {
		results = append(results, copyUser(u))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

// GetByRole implements user.Repository.
func (r *UserRepository) GetByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*user.User
	for _, u := range r.byID {
		if u.Role == role {
			results = append(results, copyUser(u))
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func copyUser(u *user.User) *user.User {
	c := *u
	return &c
}
