// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"time"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// SEARCH TUTORS QUERY
// Это КЛЮЧЕВОЙ запрос проекта: витрина репетиторов.
// Конвейер: ворота модерации → фильтры → ранжирование по текстовому
// запросу (или порядок AI-подбора) → значки на карточках.
// ══════════════════════════════════════════════════════════════════════════════

// SearchTutorsQuery содержит параметры поиска репетиторов. Числовые
// фильтры приходят сырыми строками: нечисловой ввод означает
// отсутствие ограничения, а не ноль и не ошибку.
type SearchTutorsQuery struct {
	// Query - свободный текстовый запрос (имя, предмет, город, био).
	Query string

	// ─────────────────────────────────────────────────────────────────────────
	// Структурные фильтры
	// ─────────────────────────────────────────────────────────────────────────

	// Subject - точное совпадение предмета.
	Subject string

	// Level - точное совпадение уровня.
	Level string

	// City - подстрока города без учёта регистра.
	City string

	// Mode - требуемый формат занятий: online, offline, both или пусто.
	Mode string

	// MinRating - минимальный рейтинг, сырая строка.
	MinRating string

	// PriceMin / PriceMax - границы почасовой ставки включительно, сырые строки.
	PriceMin string
	PriceMax string

	// MinExperience - минимальный стаж в годах, сырая строка.
	MinExperience string

	// ─────────────────────────────────────────────────────────────────────────
	// AI-подбор
	// ─────────────────────────────────────────────────────────────────────────

	// SmartMatchActive - включает режим AI-подбора: порядок и состав
	// результата диктуются SmartMatchIDs, обычные фильтры не применяются.
	SmartMatchActive bool

	// SmartMatchIDs - ID, рекомендованные AI-адаптером, в его порядке.
	// Неизвестные ID молча пропускаются.
	SmartMatchIDs []string
}

// Validate проверяет корректность параметров.
func (q *SearchTutorsQuery) Validate() error {
	if q.Mode != "" && !tutor.ClassMode(q.Mode).IsValid() {
		return shared.NewDomainError("query", "SearchTutors", shared.ErrValidation,
			"mode must be online, offline or both")
	}
	return nil
}

// criteria переводит сырые строковые фильтры в доменные критерии.
func (q *SearchTutorsQuery) criteria() tutor.FilterCriteria {
	c := tutor.FilterCriteria{
		Subject:       q.Subject,
		Level:         q.Level,
		CityContains:  q.City,
		Mode:          tutor.ClassMode(q.Mode),
		PriceMin:      tutor.ParsePrice(q.PriceMin),
		PriceMax:      tutor.ParsePrice(q.PriceMax),
		MinExperience: tutor.ParseExperience(q.MinExperience),
	}
	if r := tutor.ParsePrice(q.MinRating); r != nil {
		c.MinRating = *r
	}
	return c
}

// TutorDTO - представление репетитора для внешнего мира.
type TutorDTO struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Avatar          string      `json:"avatar,omitempty"`
	Subjects        []string    `json:"subjects"`
	Levels          []string    `json:"levels"`
	Bio             string      `json:"bio"`
	City            string      `json:"city"`
	ClassMode       string      `json:"classMode"`
	HourlyRate      float64     `json:"hourlyRate"`
	Rating          float64     `json:"rating"`
	ReviewCount     int         `json:"reviews"`
	ExperienceYears int         `json:"experienceYears"`
	IsVerified      bool        `json:"isVerified"`
	Availability    string      `json:"availability,omitempty"`
	Status          string      `json:"status"`
	Email           string      `json:"email,omitempty"`
	Phone           string      `json:"phone,omitempty"`
	Address         string      `json:"address,omitempty"`
	Qualifications  string      `json:"qualifications,omitempty"`
	ReviewsList     []ReviewDTO `json:"reviewsList"`
	Badge           string      `json:"badge,omitempty"`
}

// ReviewDTO - отзыв студента на карточке репетитора.
type ReviewDTO struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	Date        string `json:"date"`
}

// SearchTutorsResult содержит результат поиска.
type SearchTutorsResult struct {
	// Tutors - найденные репетиторы в порядке показа.
	Tutors []TutorDTO `json:"tutors"`

	// Total - количество найденных.
	Total int `json:"total"`

	// SmartMatchActive - был ли применён режим AI-подбора.
	SmartMatchActive bool `json:"smartMatchActive"`

	// GeneratedAt - время генерации результата.
	GeneratedAt time.Time `json:"generatedAt"`
}

// SearchTutorsHandler обрабатывает запросы поиска репетиторов.
type SearchTutorsHandler struct {
	tutorRepo tutor.Repository
}

// NewSearchTutorsHandler создаёт новый обработчик.
func NewSearchTutorsHandler(tutorRepo tutor.Repository) *SearchTutorsHandler {
	return &SearchTutorsHandler{tutorRepo: tutorRepo}
}

// Handle выполняет поиск.
func (h *SearchTutorsHandler) Handle(ctx context.Context, query SearchTutorsQuery) (*SearchTutorsResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.tutorRepo.GetAll(ctx)
	if err != nil {
		return nil, shared.WrapError("query", "SearchTutors", shared.ErrNotFound,
			"failed to load tutors", err)
	}

	var visible []*tutor.Tutor
	if query.SmartMatchActive {
		// Режим AI-подбора: ворота модерации остаются, обычные фильтры
		// и текстовое ранжирование не применяются.
		approved := tutor.Filter(all, tutor.FilterCriteria{})
		visible = tutor.ReorderByIDs(approved, query.SmartMatchIDs)
	} else {
		filtered := tutor.Filter(all, query.criteria())
		visible = tutor.Rank(filtered, query.Query)
	}

	badgeCtx := tutor.BadgeContext{
		SmartMatchActive: query.SmartMatchActive,
		Query:            tutor.NormalizeQuery(query.Query),
	}

	dtos := make([]TutorDTO, 0, len(visible))
	for _, t := range visible {
		dto := newTutorDTO(t)
		if label, ok := tutor.BadgeFor(t, badgeCtx); ok {
			dto.Badge = string(label)
		}
		dtos = append(dtos, dto)
	}

	return &SearchTutorsResult{
		Tutors:           dtos,
		Total:            len(dtos),
		SmartMatchActive: query.SmartMatchActive,
		GeneratedAt:      time.Now().UTC(),
	}, nil
}

// newTutorDTO строит DTO из доменной сущности.
func newTutorDTO(t *tutor.Tutor) TutorDTO {
	reviews := make([]ReviewDTO, 0, len(t.Reviews))
	for _, r := range t.Reviews {
		reviews = append(reviews, ReviewDTO{
			ID:          r.ID,
			StudentName: r.StudentName,
			Rating:      r.Rating,
			Comment:     r.Comment,
			Date:        r.Date,
		})
	}

	return TutorDTO{
		ID:              t.ID,
		Name:            t.Name,
		Avatar:          t.Avatar,
		Subjects:        t.Subjects,
		Levels:          t.Levels,
		Bio:             t.Bio,
		City:            t.City,
		ClassMode:       string(t.ClassMode),
		HourlyRate:      t.HourlyRate,
		Rating:          t.Rating,
		ReviewCount:     t.ReviewCount,
		ExperienceYears: t.ExperienceYears,
		IsVerified:      t.IsVerified,
		Availability:    t.Availability,
		Status:          string(t.Status),
		Email:           t.Email,
		Phone:           t.Phone,
		Address:         t.Address,
		Qualifications:  t.Qualifications,
		ReviewsList:     reviews,
	}
}
