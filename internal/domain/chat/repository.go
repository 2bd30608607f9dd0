package chat

import "context"

// Repository определяет операции над хранилищем чат-сессий.
// Реализации находятся в infrastructure/persistence.
type Repository interface {
	// Create создаёт новую сессию.
	// Возвращает shared.ErrAlreadyExists, если сессия для этой пары
	// участников уже существует.
	Create(ctx context.Context, s *Session) error

	// GetByID возвращает сессию по ID.
	// Возвращает shared.ErrNotFound, если сессия не найдена.
	GetByID(ctx context.Context, id string) (*Session, error)

	// FindByParticipants ищет сессию по неупорядоченной паре участников.
	// Возвращает shared.ErrNotFound, если сессии для пары нет.
	FindByParticipants(ctx context.Context, a, b string) (*Session, error)

	// Update обновляет сессию.
	// Возвращает shared.ErrNotFound, если сессия не найдена.
	Update(ctx context.Context, s *Session) error

	// GetAll возвращает все сессии, последние обновлённые первыми.
	GetAll(ctx context.Context) ([]*Session, error)

	// GetForUser возвращает сессии с участием пользователя,
	// последние обновлённые первыми.
	GetForUser(ctx context.Context, userID string) ([]*Session, error)
}
