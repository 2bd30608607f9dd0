package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// RequestRepository is an in-memory implementation of request.Repository.
type RequestRepository struct {
	mu   sync.RWMutex
	byID map[string]*request.StudentRequest
}

// NewRequestRepository creates an empty request repository.
func NewRequestRepository() *RequestRepository {
	return &RequestRepository{
		byID: make(map[string]*request.StudentRequest),
	}
}

// Create implements request.Repository.
func (r *RequestRepository) Create(ctx context.Context, req *request.StudentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[req.ID]; exists {
		return shared.WrapError("request", "Create", shared.ErrAlreadyExists,
			fmt.Sprintf("request %s already exists", req.ID), nil)
	}
	r.byID[req.ID] = copyRequest(req)
	return nil
}

// GetByID implements request.Repository.
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*request.StudentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrRequestNotFound
	}
	return copyRequest(req), nil
}

// Update implements request.Repository.
func (r *RequestRepository) Update(ctx context.Context, req *request.StudentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[req.ID]; !ok {
		return shared.ErrRequestNotFound
	}
	r.byID[req.ID] = copyRequest(req)
	return nil
}

// GetAll implements request.Repository.
func (r *RequestRepository) GetAll(ctx context.Context) ([]*request.StudentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*request.StudentRequest, 0, len(r.byID))
	for _, req := range r.byID {
		results = append(results, copyRequest(req))
	}
	sortRequestsNewestFirst(results)
	return results, nil
}

// GetByStudent implements request.Repository.
func (r *RequestRepository) GetByStudent(ctx context.Context, studentID string) ([]*request.StudentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*request.StudentRequest
	for _, req := range r.byID {
		if req.StudentID == studentID {
			results = append(results, copyRequest(req))
		}
	}
	sortRequestsNewestFirst(results)
	return results, nil
}

func sortRequestsNewestFirst(reqs []*request.StudentRequest) {
	sort.Slice(reqs, func(i, j int) bool {
		if !reqs[i].PostedAt.Equal(reqs[j].PostedAt) {
			return reqs[i].PostedAt.After(reqs[j].PostedAt)
		}
		return reqs[i].ID < reqs[j].ID
	})
}

func copyRequest(req *request.StudentRequest) *request.StudentRequest {
	c := *req
	return &c
}
