// Package memory provides in-memory repository implementations.
// All marketplace state lives in process memory for the lifetime of the
// server and is discarded on shutdown - there is deliberately no durable
// storage behind these repositories.
//
// Repositories are safe for concurrent use and hand out defensive copies,
// so callers can never mutate stored state except through Update.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// TutorRepository is an in-memory implementation of tutor.Repository.
type TutorRepository struct {
	mu     sync.RWMutex
	byID   map[string]*tutor.Tutor
	order  []string // insertion order, preserved for stable default ranking
	nextID int      // next sequential application number for "T-###" ids
}

// NewTutorRepository creates an empty tutor repository.
func NewTutorRepository() *TutorRepository {
	return &TutorRepository{
		byID:   make(map[string]*tutor.Tutor),
		nextID: 1,
	}
}

// Create implements tutor.Repository.
func (r *TutorRepository) Create(ctx context.Context, t *tutor.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; exists {
		return shared.WrapError("tutor", "Create", shared.ErrAlreadyExists,
			fmt.Sprintf("tutor %s already exists", t.ID), nil)
	}

	r.byID[t.ID] = copyTutor(t)
	r.order = append(r.order, t.ID)
	r.bumpNextID(t.ID)
	return nil
}

// GetByID implements tutor.Repository.
func (r *TutorRepository) GetByID(ctx context.Context, id string) (*tutor.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrTutorNotFound
	}
	return copyTutor(t), nil
}

// Update implements tutor.Repository.
func (r *TutorRepository) Update(ctx context.Context, t *tutor.Tutor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[t.ID]; !ok {
		return shared.ErrTutorNotFound
	}
	r.byID[t.ID] = copyTutor(t)
	return nil
}

// GetAll implements tutor.Repository.
func (r *TutorRepository) GetAll(ctx context.Context) ([]*tutor.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*tutor.Tutor, 0, len(r.order))
	for _, id := range r.order {
		results = append(results, copyTutor(r.byID[id]))
	}
	return results, nil
}

// GetByStatus implements tutor.Repository.
func (r *TutorRepository) GetByStatus(ctx context.Context, status tutor.Status) ([]*tutor.Tutor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*tutor.Tutor
	for _, id := range r.order {
		if t := r.byID[id]; t.Status == status {
			results = append(results, copyTutor(t))
		}
	}
	return results, nil
}

// NextApplicationID implements tutor.Repository.
func (r *TutorRepository) NextApplicationID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("T-%03d", r.nextID)
	r.nextID++
	return id, nil
}

// bumpNextID keeps the sequential counter ahead of any "T-###" id that was
// created externally (seed data, upgraded accounts). Must be called with the
// mutex held.
func (r *TutorRepository) bumpNextID(id string) {
	var n int
	if _, err := fmt.Sscanf(id, "T-%03d", &n); err == nil && n >= r.nextID {
		r.nextID = n + 1
	}
}

// copyTutor returns a defensive copy with its own slices.
func copyTutor(t *tutor.Tutor) *tutor.Tutor {
	c := *t
	c.Subjects = append([]string(nil), t.Subjects...)
	c.Levels = append([]string(nil), t.Levels...)
	c.Reviews = append([]tutor.Review(nil), t.Reviews...)
	return &c
}
