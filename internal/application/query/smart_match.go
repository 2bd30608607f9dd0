package query

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
)

// ══════════════════════════════════════════════════════════════════════════════
// SMART MATCH QUERY
// AI-подбор репетиторов по свободному запросу студента. Любой сбой
// адаптера превращается в пустую рекомендацию с пояснением - UI никогда
// не видит ошибку внешнего сервиса.
// ══════════════════════════════════════════════════════════════════════════════

// FallbackReasoning показывается, когда AI-подбор недоступен.
const FallbackReasoning = "We couldn't process your smart match request at this time. " +
	"Please try browsing the list or check if the API Key is configured."

// ErrSmartMatchInFlight возвращается при попытке запустить второй
// AI-подбор, пока не завершился первый.
var ErrSmartMatchInFlight = errors.New("smart match request already in progress")

// Matcher - порт AI-адаптера подбора.
type Matcher interface {
	SmartMatch(ctx context.Context, query string, candidates []*tutor.Tutor) (ids []string, reasoning string, err error)
}

// SmartMatchQuery содержит свободный запрос студента.
type SmartMatchQuery struct {
	// Query - описание потребности своими словами.
	Query string
}

// Validate проверяет корректность параметров.
func (q *SmartMatchQuery) Validate() error {
	if tutor.NormalizeQuery(q.Query) == "" {
		return shared.NewDomainError("query", "SmartMatch", shared.ErrValidation,
			"query must not be empty")
	}
	return nil
}

// SmartMatchResult содержит рекомендацию AI-подбора.
type SmartMatchResult struct {
	// RecommendedTutorIDs - до трёх ID в порядке предпочтения модели.
	// Пустой список означает, что подбор не удался или ничего не нашёл.
	RecommendedTutorIDs []string `json:"recommendedTutorIds"`

	// Reasoning - короткое пояснение выбора.
	Reasoning string `json:"reasoning"`
}

// SmartMatchHandler обрабатывает запросы AI-подбора.
type SmartMatchHandler struct {
	tutorRepo tutor.Repository
	matcher   Matcher
	timeout   time.Duration
	logger    *zap.Logger

	// inFlight сериализует вызовы адаптера: допускается не более
	// одного одновременно.
	inFlight chan struct{}
}

// NewSmartMatchHandler создаёт новый обработчик.
func NewSmartMatchHandler(tutorRepo tutor.Repository, matcher Matcher, timeout time.Duration, logger *zap.Logger) *SmartMatchHandler {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SmartMatchHandler{
		tutorRepo: tutorRepo,
		matcher:   matcher,
		timeout:   timeout,
		logger:    logger,
		inFlight:  make(chan struct{}, 1),
	}
}

// Handle выполняет AI-подбор.
func (h *SmartMatchHandler) Handle(ctx context.Context, query SmartMatchQuery) (*SmartMatchResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	select {
	case h.inFlight <- struct{}{}:
		defer func() { <-h.inFlight }()
	default:
		return nil, ErrSmartMatchInFlight
	}

	candidates, err := h.approvedCandidates(ctx)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	ids, reasoning, err := h.matcher.SmartMatch(callCtx, query.Query, candidates)
	if err != nil {
		h.logger.Warn("smart match adapter failed, falling back",
			zap.String("query", query.Query),
			zap.Error(err),
		)
		return &SmartMatchResult{
			RecommendedTutorIDs: []string{},
			Reasoning:           FallbackReasoning,
		}, nil
	}

	if ids == nil {
		ids = []string{}
	}
	return &SmartMatchResult{
		RecommendedTutorIDs: ids,
		Reasoning:           reasoning,
	}, nil
}

// approvedCandidates возвращает публично видимых репетиторов -
// кандидатов для подбора.
func (h *SmartMatchHandler) approvedCandidates(ctx context.Context) ([]*tutor.Tutor, error) {
	all, err := h.tutorRepo.GetAll(ctx)
	if err != nil {
		return nil, shared.WrapError("query", "SmartMatch", shared.ErrNotFound,
			"failed to load tutors", err)
	}
	return tutor.Filter(all, tutor.FilterCriteria{}), nil
}
