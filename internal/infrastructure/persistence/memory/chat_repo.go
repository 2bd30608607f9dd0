package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/findateacher/tutorhub/internal/domain/chat"
	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ChatRepository is an in-memory implementation of chat.Repository.
// The byPair index enforces the core invariant: at most one session per
// unordered pair of participants.
type ChatRepository struct {
	mu     sync.RWMutex
	byID   map[string]*chat.Session
	byPair map[string]string // pair key -> session id
}

// NewChatRepository creates an empty chat repository.
func NewChatRepository() *ChatRepository {
	return &ChatRepository{
		byID:   make(map[string]*chat.Session),
		byPair: make(map[string]string),
	}
}

// Create implements chat.Repository.
func (r *ChatRepository) Create(ctx context.Context, s *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return shared.WrapError("chat", "Create", shared.ErrAlreadyExists,
			fmt.Sprintf("session %s already exists", s.ID), nil)
	}
	if _, exists := r.byPair[s.PairKey()]; exists {
		return shared.WrapError("chat", "Create", shared.ErrAlreadyExists,
			"session for this participant pair already exists", nil)
	}

	r.byID[s.ID] = copySession(s)
	r.byPair[s.PairKey()] = s.ID
	return nil
}

// GetByID implements chat.Repository.
func (r *ChatRepository) GetByID(ctx context.Context, id string) (*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	return copySession(s), nil
}

// FindByParticipants implements chat.Repository.
func (r *ChatRepository) FindByParticipants(ctx context.Context, a, b string) (*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[chat.PairKey(a, b)]
	if !ok {
		return nil, shared.ErrSessionNotFound
	}
	return copySession(r.byID[id]), nil
}

// Update implements chat.Repository.
func (r *ChatRepository) Update(ctx context.Context, s *chat.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return shared.ErrSessionNotFound
	}
	r.byID[s.ID] = copySession(s)
	return nil
}

// GetAll implements chat.Repository.
func (r *ChatRepository) GetAll(ctx context.Context) ([]*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*chat.Session, 0, len(r.byID))
	for _, s := range r.byID {
		results = append(results, copySession(s))
	}
	sortSessionsRecentFirst(results)
	return results, nil
}

// GetForUser implements chat.Repository.
func (r *ChatRepository) GetForUser(ctx context.Context, userID string) ([]*chat.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*chat.Session
	for _, s := range r.byID {
		if s.HasParticipant(userID) {
			results = append(results, copySession(s))
		}
	}
	sortSessionsRecentFirst(results)
	return results, nil
}

func sortSessionsRecentFirst(sessions []*chat.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].UpdatedAt.Equal(sessions[j].UpdatedAt) {
			return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})
}

func copySession(s *chat.Session) *chat.Session {
	c := *s
	c.Messages = append([]chat.Message(nil), s.Messages...)
	return &c
}
