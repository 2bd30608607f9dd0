package query

import (
	"context"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET TUTOR QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetTutorQuery запрашивает профиль одного репетитора.
type GetTutorQuery struct {
	// TutorID - идентификатор репетитора.
	TutorID string

	// IncludeUnapproved - показывать ли профили вне публичной витрины
	// (админ-панель и личный кабинет репетитора).
	IncludeUnapproved bool
}

// Validate проверяет корректность параметров.
func (q *GetTutorQuery) Validate() error {
	if q.TutorID == "" {
		return shared.NewDomainError("query", "GetTutor", shared.ErrValidation,
			"tutor_id is required")
	}
	return nil
}

// GetTutorHandler обрабатывает запрос профиля.
type GetTutorHandler struct {
	tutorRepo tutor.Repository
}

// NewGetTutorHandler создаёт новый обработчик.
func NewGetTutorHandler(tutorRepo tutor.Repository) *GetTutorHandler {
	return &GetTutorHandler{tutorRepo: tutorRepo}
}

// Handle возвращает профиль репетитора.
func (h *GetTutorHandler) Handle(ctx context.Context, query GetTutorQuery) (*TutorDTO, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	t, err := h.tutorRepo.GetByID(ctx, query.TutorID)
	if err != nil {
		return nil, err
	}

	if !t.IsPubliclyVisible() && !query.IncludeUnapproved {
		return nil, shared.ErrTutorNotFound
	}

	dto := newTutorDTO(t)
	return &dto, nil
}
