// Package eventhandler содержит обработчики доменных событий.
// Обработчики - "реактивная" часть системы: они реагируют на изменения
// и запускают побочные эффекты вроде уведомлений участников.
package eventhandler

import (
	"context"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ON REQUEST MATCHED HANDLER
// Обрабатывает назначение репетитора на заявку: обе стороны пары должны
// узнать о матче. Сейчас уведомление - структурированная запись в лог;
// канал доставки (email, push) подключается здесь же, не трогая команды.
// ══════════════════════════════════════════════════════════════════════════════

// OnRequestMatchedHandler уведомляет студента и репетитора о матче.
type OnRequestMatchedHandler struct {
	logger *zap.Logger
}

// NewOnRequestMatchedHandler создаёт новый обработчик.
func NewOnRequestMatchedHandler(logger *zap.Logger) *OnRequestMatchedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OnRequestMatchedHandler{logger: logger}
}

// Handle реализует shared.EventHandler.
func (h *OnRequestMatchedHandler) Handle(ctx context.Context, event shared.Event) error {
	matched, ok := event.(shared.RequestMatchedEvent)
	if !ok {
		return nil
	}

	h.logger.Info("notifying matched pair",
		zap.String("request_id", matched.AggregateID()),
		zap.String("student_id", matched.StudentID),
		zap.String("tutor_id", matched.TutorID),
		zap.String("session_id", matched.SessionID),
		zap.Bool("session_created", matched.SessionCreated),
	)
	return nil
}
