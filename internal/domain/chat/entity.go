// Package chat содержит доменную модель чат-сессий между участниками
// маркетплейса. Ключевой инвариант: на неупорядоченную пару участников
// существует не более одной сессии.
package chat

import (
	"errors"
	"strings"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// MESSAGE
// ══════════════════════════════════════════════════════════════════════════════

// Message - сообщение в чат-сессии. Список сообщений append-only;
// порядок гарантируется порядком добавления, а не сравнением таймстемпов.
type Message struct {
	// ID - уникальный идентификатор сообщения.
	ID string

	// SenderID - автор сообщения. Обязан быть участником сессии.
	SenderID string

	// Text - текст сообщения.
	Text string

	// Timestamp - когда сообщение добавлено.
	Timestamp time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// SESSION
// ══════════════════════════════════════════════════════════════════════════════

// Session - канал общения ровно двух участников.
// Создаётся лениво при первом контакте и никогда не удаляется.
type Session struct {
	// ID - уникальный идентификатор сессии.
	ID string

	// ParticipantIDs - ровно два ID участников. Семантика пары
	// неупорядоченная: {a,b} и {b,a} - одна и та же пара.
	ParticipantIDs [2]string

	// Messages - сообщения сессии, append-only.
	Messages []Message

	// LastMessagePreview - текст последнего сообщения для списка чатов.
	LastMessagePreview string

	// CreatedAt / UpdatedAt - таймстемпы жизненного цикла.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PairKey возвращает канонический ключ неупорядоченной пары участников.
// PairKey(a, b) == PairKey(b, a) для любых a, b.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

// NewSession создаёт новую сессию для пары участников.
func NewSession(id, participantA, participantB string) (*Session, error) {
	if id == "" {
		return nil, errors.New("session id is required")
	}
	if participantA == "" || participantB == "" {
		return nil, errors.New("both participant ids are required")
	}
	if participantA == participantB {
		return nil, errors.New("participants must be distinct")
	}

	now := time.Now().UTC()
	return &Session{
		ID:             id,
		ParticipantIDs: [2]string{participantA, participantB},
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// PairKey возвращает ключ пары участников сессии.
func (s *Session) PairKey() string {
	return PairKey(s.ParticipantIDs[0], s.ParticipantIDs[1])
}

// HasParticipant проверяет, входит ли пользователь в пару участников.
func (s *Session) HasParticipant(userID string) bool {
	return s.ParticipantIDs[0] == userID || s.ParticipantIDs[1] == userID
}

// OtherParticipant возвращает собеседника пользователя.
func (s *Session) OtherParticipant(userID string) (string, bool) {
	switch userID {
	case s.ParticipantIDs[0]:
		return s.ParticipantIDs[1], true
	case s.ParticipantIDs[1]:
		return s.ParticipantIDs[0], true
	default:
		return "", false
	}
}

// ErrSenderNotParticipant - отправитель не входит в пару участников сессии.
var ErrSenderNotParticipant = errors.New("sender is not a session participant")

// Append добавляет сообщение в сессию, обновляет превью и UpdatedAt.
// Отправитель обязан быть участником сессии.
func (s *Session) Append(msg Message) error {
	if !s.HasParticipant(msg.SenderID) {
		return ErrSenderNotParticipant
	}
	if strings.TrimSpace(msg.Text) == "" {
		return errors.New("message text is required")
	}

	s.Messages = append(s.Messages, msg)
	s.LastMessagePreview = msg.Text
	s.UpdatedAt = msg.Timestamp
	return nil
}

// AppendSystem добавляет системное сообщение от зарезервированного
// идентификатора (например, уведомление о подборе). Проверка участия
// для системных сообщений не выполняется.
func (s *Session) AppendSystem(msg Message) {
	s.Messages = append(s.Messages, msg)
	s.LastMessagePreview = msg.Text
	s.UpdatedAt = msg.Timestamp
}

// VisibleTo фильтрует сессии по правилу видимости: администратор видит все
// сессии (режим мониторинга), остальные - только свои. Чистая функция,
// пересчитывается при каждом чтении.
func VisibleTo(sessions []*Session, userID string, isAdmin bool) []*Session {
	if isAdmin {
		return sessions
	}

	visible := make([]*Session, 0, len(sessions))
	for _, s := range sessions {
		if s.HasParticipant(userID) {
			visible = append(visible, s)
		}
	}
	return visible
}
