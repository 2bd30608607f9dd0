package tutor

import "strings"

// ══════════════════════════════════════════════════════════════════════════════
// BADGES
//
// Бейдж на карточке репетитора - производная величина, нигде не хранится.
// Правила выбора выражены явным упорядоченным списком (предикат, метка):
// выигрывает первый сработавший предикат, максимум один бейдж на карточку.
// ══════════════════════════════════════════════════════════════════════════════

// BadgeLabel - метка бейджа на карточке репетитора.
type BadgeLabel string

const (
	BadgeAIRecommended BadgeLabel = "AI Recommended"
	BadgeNameMatch     BadgeLabel = "Name Match"
	BadgeSubjectMatch  BadgeLabel = "Subject Match"
	BadgeLocationMatch BadgeLabel = "Location Match"
	BadgeBioMatch      BadgeLabel = "Bio Match"
	BadgeTopRated      BadgeLabel = "Top Rated"
	BadgeHighlyPopular BadgeLabel = "Highly Popular"
	BadgeNewTutor      BadgeLabel = "New Tutor"
)

// BadgeContext - контекст показа карточки: активен ли умный подбор
// и какой текстовый запрос ввёл пользователь.
type BadgeContext struct {
	SmartMatchActive bool
	Query            string
}

// badgeRule - одно правило выбора бейджа.
type badgeRule struct {
	label   BadgeLabel
	applies func(t *Tutor, q string, ctx BadgeContext) bool
}

// badgeRules - правила в порядке приоритета.
var badgeRules = []badgeRule{
	{BadgeAIRecommended, func(t *Tutor, q string, ctx BadgeContext) bool {
		return ctx.SmartMatchActive
	}},
	{BadgeNameMatch, func(t *Tutor, q string, ctx BadgeContext) bool {
		return q != "" && strings.Contains(strings.ToLower(t.Name), q)
	}},
	{BadgeSubjectMatch, func(t *Tutor, q string, ctx BadgeContext) bool {
		if q == "" {
			return false
		}
		for _, s := range t.Subjects {
			if strings.Contains(strings.ToLower(s), q) {
				return true
			}
		}
		return false
	}},
	{BadgeLocationMatch, func(t *Tutor, q string, ctx BadgeContext) bool {
		return q != "" && strings.Contains(strings.ToLower(t.City), q)
	}},
	{BadgeBioMatch, func(t *Tutor, q string, ctx BadgeContext) bool {
		return q != "" && strings.Contains(strings.ToLower(t.Bio), q)
	}},
	{BadgeTopRated, func(t *Tutor, q string, ctx BadgeContext) bool {
		return t.Rating >= 4.9 && t.ReviewCount > 10
	}},
	{BadgeHighlyPopular, func(t *Tutor, q string, ctx BadgeContext) bool {
		return t.ReviewCount > 50
	}},
	{BadgeNewTutor, func(t *Tutor, q string, ctx BadgeContext) bool {
		return t.ReviewCount < 5 && t.Status == StatusApproved
	}},
}

// BadgeFor возвращает бейдж для карточки репетитора и признак его наличия.
func BadgeFor(t *Tutor, ctx BadgeContext) (BadgeLabel, bool) {
	q := NormalizeQuery(ctx.Query)
	for _, rule := range badgeRules {
		if rule.applies(t, q, ctx) {
			return rule.label, true
		}
	}
	return "", false
}
