package tutor

import (
	"sort"
	"strconv"
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// SEARCH ENGINE
//
// Поиск репетиторов работает в два слоя:
//  1. Фильтрация по жёстким критериям (предмет, уровень, город, формат,
//     рейтинг, цена, стаж) - критерии объединяются через AND.
//  2. Ранжирование: при наличии текстового запроса - по релевантности,
//     иначе - по рейтингу и количеству отзывов.
//
// Непроходное правило, применяемое ДО всех остальных фильтров:
// в публичный поиск попадают только одобренные (approved) профили.
// ══════════════════════════════════════════════════════════════════════════════

// FilterCriteria - критерии фильтрации. Каждое поле опционально;
// нулевое значение (или nil) означает отсутствие ограничения.
type FilterCriteria struct {
	// Subject - предмет, точное совпадение с одним из tutor.Subjects.
	Subject string

	// Level - уровень, точное совпадение с одним из tutor.Levels.
	Level string

	// CityContains - подстрока города (без учёта регистра).
	CityContains string

	// Mode - требуемый формат занятий (см. ClassMode.Supports).
	Mode ClassMode

	// MinRating - минимальный рейтинг (0 = без ограничения).
	MinRating float64

	// PriceMin / PriceMax - границы почасовой ставки включительно.
	// nil = граница не задана.
	PriceMin *float64
	PriceMax *float64

	// MinExperience - минимальный стаж в годах. nil = без ограничения.
	MinExperience *int
}

// ParsePrice нормализует строковый ввод цены: нечисловое значение
// трактуется как отсутствие ограничения, а не как ноль и не как ошибка.
func ParsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// ParseExperience нормализует строковый ввод стажа по тем же правилам.
func ParseExperience(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// Matches проверяет, удовлетворяет ли репетитор всем заданным критериям.
// Статус модерации здесь НЕ проверяется - за это отвечает Filter.
func (c FilterCriteria) Matches(t *Tutor) bool {
	if c.Subject != "" && !t.TeachesSubject(c.Subject) {
		return false
	}
	if c.Level != "" && !t.TeachesLevel(c.Level) {
		return false
	}
	if c.CityContains != "" &&
		!strings.Contains(strings.ToLower(t.City), strings.ToLower(c.CityContains)) {
		return false
	}
	if c.Mode != "" && !t.ClassMode.Supports(c.Mode) {
		return false
	}
	if t.Rating < c.MinRating {
		return false
	}
	if c.PriceMin != nil && t.HourlyRate < *c.PriceMin {
		return false
	}
	if c.PriceMax != nil && t.HourlyRate > *c.PriceMax {
		return false
	}
	if c.MinExperience != nil && t.ExperienceYears < *c.MinExperience {
		return false
	}
	return true
}

// Filter возвращает репетиторов, проходящих непроходное правило одобрения
// и все заданные критерии. Порядок входного списка сохраняется.
func Filter(tutors []*Tutor, criteria FilterCriteria) []*Tutor {
	results := make([]*Tutor, 0, len(tutors))
	for _, t := range tutors {
		if !t.IsPubliclyVisible() {
			continue
		}
		if criteria.Matches(t) {
			results = append(results, t)
		}
	}
	return results
}

// ══════════════════════════════════════════════════════════════════════════════
// RANKING
// ══════════════════════════════════════════════════════════════════════════════

// Веса релевантности текстового поиска.
const (
	scoreNameExact      = 50
	scoreNamePrefix     = 30
	scoreNameContains   = 20
	scoreSubjectExact   = 40
	scoreSubjectContain = 25
	scoreCityContains   = 10
	scoreBioContains    = 5
)

// Score вычисляет релевантность репетитора запросу q (уже в нижнем регистре,
// без крайних пробелов). Оценка аддитивна по четырём независимым категориям;
// внутри имени и внутри предметов совпадения взаимоисключающие - побеждает
// первое по приоритету.
func Score(t *Tutor, q string) int {
	if q == "" {
		return 0
	}

	score := 0
	name := strings.ToLower(t.Name)

	switch {
	case name == q:
		score += scoreNameExact
	case strings.HasPrefix(name, q):
		score += scoreNamePrefix
	case strings.Contains(name, q):
		score += scoreNameContains
	}

	subjectExact := false
	subjectContains := false
	for _, s := range t.Subjects {
		lower := strings.ToLower(s)
		if lower == q {
			subjectExact = true
			break
		}
		if strings.Contains(lower, q) {
			subjectContains = true
		}
	}
	switch {
	case subjectExact:
		score += scoreSubjectExact
	case subjectContains:
		score += scoreSubjectContain
	}

	if strings.Contains(strings.ToLower(t.City), q) {
		score += scoreCityContains
	}
	if strings.Contains(strings.ToLower(t.Bio), q) {
		score += scoreBioContains
	}

	return score
}

// matchesQuery проверяет, встречается ли запрос хотя бы в одном из полей:
// имя, описание, предметы, город. Репетиторы без единого совпадения
// выпадают из результатов текстового поиска.
func matchesQuery(t *Tutor, q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Bio), q) {
		return true
	}
	for _, s := range t.Subjects {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(t.City), q)
}

// NormalizeQuery приводит пользовательский запрос к канонической форме.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Rank упорядочивает кандидатов.
//
// Без запроса: (rating desc, reviewCount desc), стабильная сортировка -
// равные пары сохраняют исходный относительный порядок.
//
// С запросом: сначала отбрасываются репетиторы без текстового совпадения,
// затем сортировка по (score desc, rating desc, reviewCount desc), стабильно.
func Rank(candidates []*Tutor, query string) []*Tutor {
	q := NormalizeQuery(query)

	if q == "" {
		results := make([]*Tutor, len(candidates))
		copy(results, candidates)
		sort.SliceStable(results, func(i, j int) bool {
			if results[i].Rating != results[j].Rating {
				return results[i].Rating > results[j].Rating
			}
			return results[i].ReviewCount > results[j].ReviewCount
		})
		return results
	}

	results := make([]*Tutor, 0, len(candidates))
	for _, t := range candidates {
		if matchesQuery(t, q) {
			results = append(results, t)
		}
	}

	scores := make(map[string]int, len(results))
	for _, t := range results {
		scores[t.ID] = Score(t, q)
	}

	sort.SliceStable(results, func(i, j int) bool {
		si, sj := scores[results[i].ID], scores[results[j].ID]
		if si != sj {
			return si > sj
		}
		if results[i].Rating != results[j].Rating {
			return results[i].Rating > results[j].Rating
		}
		return results[i].ReviewCount > results[j].ReviewCount
	})

	return results
}

// ReorderByIDs возвращает кандидатов строго в порядке заданного списка ID
// (режим внешнего "умного подбора"). Отсутствующие среди кандидатов ID
// молча пропускаются - это не ошибка.
func ReorderByIDs(candidates []*Tutor, ids []string) []*Tutor {
	byID := make(map[string]*Tutor, len(candidates))
	for _, t := range candidates {
		byID[t.ID] = t
	}

	results := make([]*Tutor, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			results = append(results, t)
		}
	}
	return results
}
