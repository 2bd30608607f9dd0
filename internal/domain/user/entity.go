// Package user содержит доменную модель пользователя маркетплейса:
// студенты, репетиторы и администратор.
package user

import (
	"errors"
	"strings"
	"time"
)

// AdminID - зарезервированный идентификатор системного администратора.
// От его имени отправляются системные сообщения в чатах.
const AdminID = "admin-system-user"

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Role определяет роль пользователя.
type Role string

const (
	// RoleStudent - студент, ищущий репетитора.
	RoleStudent Role = "student"
	// RoleTutor - репетитор.
	RoleTutor Role = "tutor"
	// RoleAdmin - администратор платформы.
	RoleAdmin Role = "admin"
)

// IsValid проверяет, что роль корректна.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Status определяет статус аккаунта.
type Status string

const (
	// StatusActive - аккаунт активен.
	StatusActive Status = "active"
	// StatusPending - аккаунт ожидает подтверждения.
	StatusPending Status = "pending"
	// StatusSuspended - аккаунт заблокирован администратором.
	StatusSuspended Status = "suspended"
)

// IsValid проверяет, что статус корректен.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusPending, StatusSuspended:
		return true
	default:
		return false
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: USER
// ══════════════════════════════════════════════════════════════════════════════

// User - учётная запись пользователя маркетплейса.
type User struct {
	// ID - уникальный идентификатор ("S-001" для студентов).
	ID string

	// Name - отображаемое имя.
	Name string

	// Email - адрес электронной почты.
	Email string

	// Avatar - URL аватара.
	Avatar string

	// Role - роль на платформе.
	Role Role

	// Status - статус аккаунта.
	Status Status

	// Дополнительные данные профиля (опциональные).
	Phone      string
	Address    string
	Gender     string
	SchoolName string
	Grade      string

	// JoinedAt - когда пользователь зарегистрировался.
	JoinedAt time.Time
}

// NewUser создаёт нового пользователя.
func NewUser(id, name, email string, role Role) (*User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("user name is required")
	}
	if !role.IsValid() {
		return nil, errors.New("invalid user role")
	}

	return &User{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Role:     role,
		Status:   StatusActive,
		JoinedAt: time.Now().UTC(),
	}, nil
}

// IsAdmin возвращает true для администратора.
// Администратор видит все чат-сессии без ограничений.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Activate активирует аккаунт.
func (u *User) Activate() {
	u.Status = StatusActive
}

// Suspend блокирует аккаунт.
func (u *User) Suspend() {
	u.Status = StatusSuspended
}
