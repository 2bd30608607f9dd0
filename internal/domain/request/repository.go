package request

import "context"

// Repository определяет операции над хранилищем заявок студентов.
// Реализации находятся в infrastructure/persistence.
type Repository interface {
	// Create создаёт новую заявку.
	// Возвращает shared.ErrAlreadyExists, если ID занят.
	Create(ctx context.Context, r *StudentRequest) error

	// GetByID возвращает заявку по ID.
	// Возвращает shared.ErrNotFound, если заявка не найдена.
	GetByID(ctx context.Context, id string) (*StudentRequest, error)

	// Update обновляет заявку.
	// Возвращает shared.ErrNotFound, если заявка не найдена.
	Update(ctx context.Context, r *StudentRequest) error

	// GetAll возвращает все заявки, новые первыми.
	GetAll(ctx context.Context) ([]*StudentRequest, error)

	// GetByStudent возвращает заявки конкретного студента, новые первыми.
	GetByStudent(ctx context.Context, studentID string) ([]*StudentRequest, error)
}
