// Package request содержит доменную модель заявки студента на подбор репетитора.
package request

import (
	"errors"
	"strings"
	"time"

	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Status определяет статус заявки студента.
type Status string

const (
	// StatusPending - заявка ожидает подбора репетитора администратором.
	StatusPending Status = "pending"
	// StatusMatched - администратор назначил репетитора.
	StatusMatched Status = "matched"
	// StatusClosed - зарезервированный терминальный статус. Ни одна операция
	// пока не переводит заявку в closed; статус объявлен для совместимости
	// с хранимыми данными.
	StatusClosed Status = "closed"
)

// IsValid проверяет, что статус корректен.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusMatched, StatusClosed:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT REQUEST
// ══════════════════════════════════════════════════════════════════════════════

// StudentRequest - заявка студента: "ищу репетитора по предмету X".
// Заявки никогда не удаляются, только меняют статус.
type StudentRequest struct {
	// ID - уникальный идентификатор заявки.
	ID string

	// StudentID / StudentName - автор заявки.
	StudentID   string
	StudentName string

	// Avatar - аватар студента для доски заявок.
	Avatar string

	// Subject / Level / Mode - что нужно студенту.
	Subject string
	Level   string
	Mode    tutor.ClassMode

	// Location - желаемая локация занятий.
	Location string

	// Description - свободное описание запроса.
	Description string

	// Budget - бюджет студента за час.
	Budget float64

	// PostedAt - когда заявка опубликована.
	PostedAt time.Time

	// Status - текущий статус жизненного цикла.
	Status Status

	// AssignedTutorID - назначенный репетитор (пусто, пока заявка pending).
	AssignedTutorID string
}

// NewRequestParams - параметры создания заявки.
type NewRequestParams struct {
	ID          string
	StudentID   string
	StudentName string
	Avatar      string
	Subject     string
	Level       string
	Mode        tutor.ClassMode
	Location    string
	Description string
	Budget      float64
}

// NewStudentRequest создаёт новую заявку в статусе pending.
func NewStudentRequest(params NewRequestParams) (*StudentRequest, error) {
	if params.ID == "" {
		return nil, errors.New("request id is required")
	}
	if params.StudentID == "" {
		return nil, errors.New("student id is required")
	}
	if strings.TrimSpace(params.Subject) == "" {
		return nil, errors.New("subject is required")
	}
	if params.Mode != "" && !params.Mode.IsValid() {
		return nil, errors.New("invalid class mode")
	}
	if params.Budget < 0 {
		return nil, errors.New("budget cannot be negative")
	}

	return &StudentRequest{
		ID:          params.ID,
		StudentID:   params.StudentID,
		StudentName: params.StudentName,
		Avatar:      params.Avatar,
		Subject:     strings.TrimSpace(params.Subject),
		Level:       params.Level,
		Mode:        params.Mode,
		Location:    params.Location,
		Description: params.Description,
		Budget:      params.Budget,
		PostedAt:    time.Now().UTC(),
		Status:      StatusPending,
	}, nil
}

// Assign назначает репетитора на заявку.
// Переход pending → matched односторонний; повторное назначение уже
// сматченной заявки административно разрешено и просто перезаписывает
// AssignedTutorID без смены статуса.
func (r *StudentRequest) Assign(tutorID string) error {
	if tutorID == "" {
		return errors.New("tutor id is required")
	}

	r.Status = StatusMatched
	r.AssignedTutorID = tutorID
	return nil
}

// IsPending возвращает true, если заявка ждёт подбора.
func (r *StudentRequest) IsPending() bool {
	return r.Status == StatusPending
}
