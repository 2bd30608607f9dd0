package query

import (
	"context"
	"time"

	"github.com/findateacher/tutorhub/internal/domain/request"
	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST REQUESTS QUERY
// Доска заявок: администратор видит все, студент - только свои.
// ══════════════════════════════════════════════════════════════════════════════

// ListRequestsQuery содержит параметры выборки заявок.
type ListRequestsQuery struct {
	// StudentID - если задан, выборка ограничивается заявками студента.
	StudentID string

	// Status - если задан, фильтр по статусу (pending/matched/closed).
	Status string
}

// Validate проверяет корректность параметров.
func (q *ListRequestsQuery) Validate() error {
	if q.Status != "" && !request.Status(q.Status).IsValid() {
		return shared.NewDomainError("query", "ListRequests", shared.ErrValidation,
			"status must be pending, matched or closed")
	}
	return nil
}

// RequestDTO - заявка студента.
type RequestDTO struct {
	ID              string    `json:"id"`
	StudentID       string    `json:"studentId"`
	StudentName     string    `json:"studentName"`
	Avatar          string    `json:"avatar,omitempty"`
	Subject         string    `json:"subject"`
	Level           string    `json:"level"`
	Mode            string    `json:"mode"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Budget          float64   `json:"budget"`
	PostedAt        time.Time `json:"postedAt"`
	Status          string    `json:"status"`
	AssignedTutorID string    `json:"assignedTutorId,omitempty"`
}

// ListRequestsResult содержит заявки, новые сверху.
type ListRequestsResult struct {
	Requests []RequestDTO `json:"requests"`
	Total    int          `json:"total"`
}

// ListRequestsHandler обрабатывает выборку заявок.
type ListRequestsHandler struct {
	requestRepo request.Repository
}

// NewListRequestsHandler создаёт новый обработчик.
func NewListRequestsHandler(requestRepo request.Repository) *ListRequestsHandler {
	return &ListRequestsHandler{requestRepo: requestRepo}
}

// Handle выполняет выборку.
func (h *ListRequestsHandler) Handle(ctx context.Context, query ListRequestsQuery) (*ListRequestsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		requests []*request.StudentRequest
		err      error
	)
	if query.StudentID != "" {
		requests, err = h.requestRepo.GetByStudent(ctx, query.StudentID)
	} else {
		requests, err = h.requestRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, shared.WrapError("query", "ListRequests", shared.ErrNotFound,
			"failed to load requests", err)
	}

	dtos := make([]RequestDTO, 0, len(requests))
	for _, r := range requests {
		if query.Status != "" && string(r.Status) != query.Status {
			continue
		}
		dtos = append(dtos, newRequestDTO(r))
	}

	return &ListRequestsResult{Requests: dtos, Total: len(dtos)}, nil
}

// newRequestDTO строит DTO из доменной сущности.
func newRequestDTO(r *request.StudentRequest) RequestDTO {
	return RequestDTO{
		ID:              r.ID,
		StudentID:       r.StudentID,
		StudentName:     r.StudentName,
		Avatar:          r.Avatar,
		Subject:         r.Subject,
		Level:           r.Level,
		Mode:            string(r.Mode),
		Location:        r.Location,
		Description:     r.Description,
		Budget:          r.Budget,
		PostedAt:        r.PostedAt,
		Status:          string(r.Status),
		AssignedTutorID: r.AssignedTutorID,
	}
}
