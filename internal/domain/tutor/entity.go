// Package tutor содержит доменную модель репетитора маркетплейса FindATeacher.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package tutor

import (
	"errors"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Rating представляет рейтинг репетитора по шкале 0..5.
type Rating float64

// IsValid проверяет, что рейтинг в допустимом диапазоне.
func (r Rating) IsValid() bool {
	return r >= 0 && r <= 5
}

// HourlyRate представляет почасовую ставку (неотрицательная).
type HourlyRate float64

// IsValid проверяет корректность ставки.
func (h HourlyRate) IsValid() bool {
	return h >= 0
}

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Status определяет статус модерации профиля репетитора.
type Status string

const (
	// StatusPending - профиль ожидает проверки администратором.
	StatusPending Status = "pending"
	// StatusApproved - профиль одобрен и виден в публичном поиске.
	StatusApproved Status = "approved"
	// StatusRejected - профиль отклонён администратором.
	StatusRejected Status = "rejected"
)

// IsValid проверяет, что статус корректен.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsPubliclyVisible возвращает true, если профиль попадает в публичный поиск.
// Жёсткое правило: только одобренные профили видны студентам.
func (s Status) IsPubliclyVisible() bool {
	return s == StatusApproved
}

// ClassMode определяет формат занятий репетитора.
type ClassMode string

const (
	// ClassModeOnline - только онлайн-занятия.
	ClassModeOnline ClassMode = "online"
	// ClassModeOffline - только очные занятия.
	ClassModeOffline ClassMode = "offline"
	// ClassModeBoth - оба формата.
	ClassModeBoth ClassMode = "both"
)

// IsValid проверяет, что формат корректен.
func (m ClassMode) IsValid() bool {
	switch m {
	case ClassModeOnline, ClassModeOffline, ClassModeBoth:
		return true
	default:
		return false
	}
}

// Supports возвращает true, если репетитор с данным форматом удовлетворяет
// запрошенному фильтру. Семантика фильтра:
//   - online  → подходят online и both
//   - offline → подходят offline и both
//   - both    → подходит только both
func (m ClassMode) Supports(requested ClassMode) bool {
	switch requested {
	case ClassModeOnline:
		return m == ClassModeOnline || m == ClassModeBoth
	case ClassModeOffline:
		return m == ClassModeOffline || m == ClassModeBoth
	case ClassModeBoth:
		return m == ClassModeBoth
	default:
		return true
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// SUPPORTING TYPES
// ══════════════════════════════════════════════════════════════════════════════

// Review - отзыв студента о репетиторе.
type Review struct {
	ID          string
	StudentName string
	Rating      int
	Comment     string
	Date        string
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: TUTOR
// ══════════════════════════════════════════════════════════════════════════════

// Tutor - центральная сущность маркетплейса: профиль репетитора.
type Tutor struct {
	// ID - уникальный идентификатор (формат "T-001" для заявок с сайта,
	// либо ID пользователя при апгрейде студенческого аккаунта).
	ID string

	// Name - отображаемое имя.
	Name string

	// Avatar - URL аватара.
	Avatar string

	// Subjects - предметы, которые преподаёт репетитор.
	Subjects []string

	// Levels - уровни/классы, с которыми работает репетитор.
	Levels []string

	// Bio - описание профиля (участвует в текстовом поиске).
	Bio string

	// City - город репетитора.
	City string

	// ClassMode - формат занятий.
	ClassMode ClassMode

	// HourlyRate - почасовая ставка.
	HourlyRate float64

	// ExperienceYears - стаж преподавания в годах.
	ExperienceYears int

	// Rating - средний рейтинг 0..5.
	Rating float64

	// ReviewCount - количество отзывов.
	ReviewCount int

	// Reviews - список отзывов (для страницы профиля).
	Reviews []Review

	// Status - статус модерации.
	Status Status

	// IsVerified - подтверждён ли профиль администратором.
	IsVerified bool

	// Availability - свободный текст о доступности ("Weekdays 4PM-9PM").
	Availability string

	// Контактные данные (опциональные, видны только администратору).
	Email          string
	Phone          string
	Address        string
	Qualifications string

	// CreatedAt / UpdatedAt - таймстемпы жизненного цикла.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTutorParams - параметры создания профиля репетитора.
type NewTutorParams struct {
	ID              string
	Name            string
	Avatar          string
	Subjects        []string
	Levels          []string
	Bio             string
	City            string
	ClassMode       ClassMode
	HourlyRate      float64
	ExperienceYears int
	Availability    string
	Email           string
	Phone           string
	Address         string
	Qualifications  string
}

// NewTutor создаёт новый профиль репетитора.
// Профиль всегда создаётся в статусе pending - до одобрения администратором
// он не виден в публичном поиске.
func NewTutor(params NewTutorParams) (*Tutor, error) {
	if params.ID == "" {
		return nil, errors.New("tutor id is required")
	}
	if strings.TrimSpace(params.Name) == "" {
		return nil, errors.New("tutor name is required")
	}
	if params.ClassMode != "" && !params.ClassMode.IsValid() {
		return nil, errors.New("invalid class mode")
	}
	if params.HourlyRate < 0 {
		return nil, errors.New("hourly rate cannot be negative")
	}
	if params.ExperienceYears < 0 {
		return nil, errors.New("experience years cannot be negative")
	}

	mode := params.ClassMode
	if mode == "" {
		mode = ClassModeOnline
	}

	now := time.Now().UTC()

	return &Tutor{
		ID:              params.ID,
		Name:            strings.TrimSpace(params.Name),
		Avatar:          params.Avatar,
		Subjects:        params.Subjects,
		Levels:          params.Levels,
		Bio:             params.Bio,
		City:            params.City,
		ClassMode:       mode,
		HourlyRate:      params.HourlyRate,
		ExperienceYears: params.ExperienceYears,
		Availability:    params.Availability,
		Email:           params.Email,
		Phone:           params.Phone,
		Address:         params.Address,
		Qualifications:  params.Qualifications,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// LIFECYCLE
// Жизненный цикл профиля: pending → approved/rejected.
// Любое редактирование профиля возвращает его в pending -
// правка отменяет ранее выданное доверие.
// ══════════════════════════════════════════════════════════════════════════════

// Approve одобряет профиль. Повторная модерация разрешена из любого статуса.
func (t *Tutor) Approve() {
	t.Status = StatusApproved
	t.IsVerified = true
	t.UpdatedAt = time.Now().UTC()
}

// Reject отклоняет профиль.
func (t *Tutor) Reject() {
	t.Status = StatusRejected
	t.IsVerified = false
	t.UpdatedAt = time.Now().UTC()
}

// ProfileEdit - редактируемые репетитором поля профиля.
type ProfileEdit struct {
	Name            string
	Avatar          string
	Subjects        []string
	Levels          []string
	Bio             string
	City            string
	ClassMode       ClassMode
	HourlyRate      float64
	ExperienceYears int
	Availability    string
	Phone           string
	Address         string
	Qualifications  string
}

// ApplyProfileEdit применяет правки и сбрасывает профиль в pending.
func (t *Tutor) ApplyProfileEdit(edit ProfileEdit) error {
	if strings.TrimSpace(edit.Name) == "" {
		return errors.New("tutor name is required")
	}
	if edit.ClassMode != "" && !edit.ClassMode.IsValid() {
		return errors.New("invalid class mode")
	}
	if edit.HourlyRate < 0 {
		return errors.New("hourly rate cannot be negative")
	}
	if edit.ExperienceYears < 0 {
		return errors.New("experience years cannot be negative")
	}

	t.Name = strings.TrimSpace(edit.Name)
	if edit.Avatar != "" {
		t.Avatar = edit.Avatar
	}
	t.Subjects = edit.Subjects
	t.Levels = edit.Levels
	t.Bio = edit.Bio
	t.City = edit.City
	if edit.ClassMode != "" {
		t.ClassMode = edit.ClassMode
	}
	t.HourlyRate = edit.HourlyRate
	t.ExperienceYears = edit.ExperienceYears
	t.Availability = edit.Availability
	t.Phone = edit.Phone
	t.Address = edit.Address
	t.Qualifications = edit.Qualifications

	// Правка отменяет доверие: профиль снова уходит на модерацию.
	t.Status = StatusPending
	t.IsVerified = false
	t.UpdatedAt = time.Now().UTC()

	return nil
}

// IsPubliclyVisible возвращает true, если профиль виден в публичном поиске.
func (t *Tutor) IsPubliclyVisible() bool {
	return t.Status.IsPubliclyVisible()
}

// TeachesSubject проверяет, преподаёт ли репетитор предмет (точное совпадение).
func (t *Tutor) TeachesSubject(subject string) bool {
	for _, s := range t.Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// TeachesLevel проверяет, работает ли репетитор с уровнем (точное совпадение).
func (t *Tutor) TeachesLevel(level string) bool {
	for _, l := range t.Levels {
		if l == level {
			return true
		}
	}
	return false
}
