package user

import "context"

// Repository определяет операции над хранилищем пользователей.
// Реализации находятся в infrastructure/persistence.
type Repository interface {
	// Create создаёт нового пользователя.
	// Возвращает shared.ErrAlreadyExists, если ID занят.
	Create(ctx context.Context, u *User) error

	// GetByID возвращает пользователя по ID.
	// Возвращает shared.ErrNotFound, если пользователь не найден.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail возвращает пользователя по email (без учёта регистра).
	// Возвращает shared.ErrNotFound, если пользователь не найден.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update обновляет пользователя.
	// Возвращает shared.ErrNotFound, если пользователь не найден.
	Update(ctx context.Context, u *User) error

	// GetAll возвращает всех пользователей в порядке добавления.
	GetAll(ctx context.Context) ([]*User, error)

	// GetByRole возвращает пользователей с указанной ролью.
	GetByRole(ctx context.Context, role Role) ([]*User, error)
}
