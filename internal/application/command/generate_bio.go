package command

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/findateacher/tutorhub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERATE BIO COMMAND
// Генерирует текст биографии репетитора через AI-модель. При любом сбое
// возвращает запасной текст, а не ошибку: форма заявки не должна ломаться
// из-за недоступности внешнего сервиса.
// ══════════════════════════════════════════════════════════════════════════════

// FallbackBio возвращается, когда генерация недоступна.
const FallbackBio = "Passionate tutor dedicated to student success. (AI generation unavailable)"

// BioWriter - порт к генератору биографий.
type BioWriter interface {
	GenerateBio(ctx context.Context, experience, subjects, style string) (string, error)
}

// GenerateBioCommand содержит исходные данные для биографии.
type GenerateBioCommand struct {
	Experience string
	Subjects   string
	Style      string
}

// Validate проверяет корректность команды.
func (c *GenerateBioCommand) Validate() error {
	if strings.TrimSpace(c.Experience) == "" && strings.TrimSpace(c.Subjects) == "" {
		return shared.NewDomainError("command", "GenerateBio", shared.ErrValidation,
			"experience or subjects must be provided")
	}
	return nil
}

// GenerateBioResult содержит сгенерированный текст.
type GenerateBioResult struct {
	Bio       string `json:"bio"`
	Generated bool   `json:"generated"`
}

// GenerateBioHandler обрабатывает генерацию биографий.
type GenerateBioHandler struct {
	writer BioWriter
	logger *zap.Logger
}

// NewGenerateBioHandler создаёт новый обработчик.
func NewGenerateBioHandler(writer BioWriter, logger *zap.Logger) *GenerateBioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GenerateBioHandler{writer: writer, logger: logger}
}

// Handle генерирует биографию. Ошибка адаптера превращается в запасной текст.
func (h *GenerateBioHandler) Handle(ctx context.Context, cmd GenerateBioCommand) (*GenerateBioResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if h.writer == nil {
		return &GenerateBioResult{Bio: FallbackBio, Generated: false}, nil
	}

	bio, err := h.writer.GenerateBio(ctx, cmd.Experience, cmd.Subjects, cmd.Style)
	if err != nil {
		h.logger.Warn("bio generation failed, using fallback", zap.Error(err))
		return &GenerateBioResult{Bio: FallbackBio, Generated: false}, nil
	}

	bio = strings.TrimSpace(bio)
	if bio == "" {
		return &GenerateBioResult{Bio: FallbackBio, Generated: false}, nil
	}
	return &GenerateBioResult{Bio: bio, Generated: true}, nil
}
