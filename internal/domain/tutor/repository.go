package tutor

import "context"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// Контракт хранилища профилей репетиторов.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над хранилищем репетиторов.
type Repository interface {
	// Create создаёт новый профиль.
	// Возвращает shared.ErrAlreadyExists, если ID занят.
	Create(ctx context.Context, t *Tutor) error

	// GetByID возвращает профиль по ID.
	// Возвращает shared.ErrNotFound, если профиль не найден.
	GetByID(ctx context.Context, id string) (*Tutor, error)

	// Update обновляет профиль.
	// Возвращает shared.ErrNotFound, если профиль не найден.
	Update(ctx context.Context, t *Tutor) error

	// GetAll возвращает все профили в порядке добавления.
	GetAll(ctx context.Context) ([]*Tutor, error)

	// GetByStatus возвращает профили с указанным статусом модерации.
	GetByStatus(ctx context.Context, status Status) ([]*Tutor, error)

	// NextApplicationID выдаёт следующий последовательный ID заявки
	// в формате "T-###".
	NextApplicationID(ctx context.Context) (string, error)
}
