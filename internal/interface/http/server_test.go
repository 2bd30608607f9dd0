package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findateacher/tutorhub/internal/application/command"
	"github.com/findateacher/tutorhub/internal/application/query"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/internal/infrastructure/persistence/memory"
)

type stubMatcher struct {
	ids       []string
	reasoning string
	err       error
}

func (m *stubMatcher) SmartMatch(ctx context.Context, q string, candidates []*tutor.Tutor) ([]string, string, error) {
	return m.ids, m.reasoning, m.err
}

func newTestServer(t *testing.T, matcher query.Matcher) *Server {
	t.Helper()
	ctx := context.Background()

	tutors := memory.NewTutorRepository()
	users := memory.NewUserRepository()
	requests := memory.NewRequestRepository()
	chats := memory.NewChatRepository()
	require.NoError(t, memory.Seed(ctx, tutors, users, requests))

	cfg := DefaultConfig()
	cfg.RateLimitPerMinute = 0

	return NewServer(cfg, Dependencies{
		SearchTutors:       query.NewSearchTutorsHandler(tutors),
		GetTutor:           query.NewGetTutorHandler(tutors),
		SmartMatch:         query.NewSmartMatchHandler(tutors, matcher, time.Second, nil),
		ListRequests:       query.NewListRequestsHandler(requests),
		ListSessions:       query.NewListSessionsHandler(chats, users),
		ApplyAsTutor:       command.NewApplyAsTutorHandler(tutors, nil, nil),
		UpdateTutorProfile: command.NewUpdateTutorProfileHandler(tutors, nil, nil),
		ModerateTutor:      command.NewModerateTutorHandler(tutors, nil, nil),
		ModerateStudent:    command.NewModerateStudentHandler(users, nil, nil),
		SubmitRequest:      command.NewSubmitRequestHandler(requests, users, nil),
		AssignTutor:        command.NewAssignTutorHandler(requests, tutors, chats, nil, nil),
		StartDirectChat:    command.NewStartDirectChatHandler(chats),
		SendMessage:        command.NewSendMessageHandler(chats, nil, nil),
		GenerateBio:        command.NewGenerateBioHandler(nil, nil),
	})
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestServer_HealthEndpoints(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	for _, path := range []string{"/health", "/healthz", "/ready", "/live", "/"} {
		rec, env := doRequest(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.True(t, env.Success, path)
	}
}

func TestServer_SearchTutorsReturnsApprovedOnly(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, env := doRequest(t, s, http.MethodGet, "/api/v1/tutors", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result query.SearchTutorsResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 6, result.Total)
}

func TestServer_SearchTutorsRejectsBadMode(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, env := doRequest(t, s, http.MethodGet, "/api/v1/tutors?mode=hybrid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "validation_error", env.Error.Code)
}

func TestServer_GetTutorHidesPendingProfiles(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, _ := doRequest(t, s, http.MethodGet, "/api/v1/tutors/T-007", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, s, http.MethodGet, "/api/v1/tutors/T-007?include_unapproved=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_ApplyAsTutorValidatesPayload(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, env := doRequest(t, s, http.MethodPost, "/api/v1/tutors", map[string]interface{}{
		"name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", env.Error.Code)

	rec, env = doRequest(t, s, http.MethodPost, "/api/v1/tutors", map[string]interface{}{
		"name":     "New Tutor",
		"subjects": []string{"Math"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var result command.ApplyAsTutorResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "T-009", result.TutorID)
	assert.Equal(t, "pending", result.Status)
}

func TestServer_AssignTutorFlow(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, _ := doRequest(t, s, http.MethodPost, "/api/v1/requests/req1/assign", map[string]string{
		"tutorId": "T-404",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env := doRequest(t, s, http.MethodPost, "/api/v1/requests/req1/assign", map[string]string{
		"tutorId": "T-001",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result command.AssignTutorResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.SessionCreated)

	// The pair now shows up in both participants' session lists.
	rec, env = doRequest(t, s, http.MethodGet, "/api/v1/sessions?user_id=S-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions query.ListSessionsResult
	require.NoError(t, json.Unmarshal(env.Data, &sessions))
	assert.Equal(t, 1, sessions.Total)
}

func TestServer_ChatEndpoints(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, env := doRequest(t, s, http.MethodPost, "/api/v1/sessions", map[string]string{
		"initiatorId": "S-001",
		"peerId":      "T-001",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var opened command.StartDirectChatResult
	require.NoError(t, json.Unmarshal(env.Data, &opened))

	rec, _ = doRequest(t, s, http.MethodPost, "/api/v1/sessions/"+opened.SessionID+"/messages", map[string]string{
		"senderId": "S-002",
		"text":     "hello",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = doRequest(t, s, http.MethodPost, "/api/v1/sessions/"+opened.SessionID+"/messages", map[string]string{
		"senderId": "S-001",
		"text":     "hello",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestServer_SelfChatIsRejected(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, _ := doRequest(t, s, http.MethodPost, "/api/v1/sessions", map[string]string{
		"initiatorId": "S-001",
		"peerId":      "S-001",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_SmartMatchReordersTutors(t *testing.T) {
	s := newTestServer(t, &stubMatcher{
		ids:       []string{"T-006", "T-001"},
		reasoning: "Both specialize in your subject.",
	})

	rec, env := doRequest(t, s, http.MethodPost, "/api/v1/tutors/smart-match", map[string]string{
		"query": "I need help with english grammar",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result smartMatchResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Tutors, 2)
	assert.Equal(t, "T-006", result.Tutors[0].ID)
	assert.Equal(t, "T-001", result.Tutors[1].ID)
	assert.Equal(t, "Both specialize in your subject.", result.Reasoning)
	assert.True(t, result.SmartMatchActive)
}

func TestServer_SmartMatchCanBeDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableSmartMatch = false
	cfg.RateLimitPerMinute = 0

	enabled := newTestServer(t, &stubMatcher{})
	disabled := NewServer(cfg, enabled.deps)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tutors/smart-match",
		bytes.NewBufferString(`{"query":"anything at all"}`))
	rec := httptest.NewRecorder()
	disabled.Handler().ServeHTTP(rec, req)

	// The path still matches GET /api/v1/tutors/{id}, so the mux answers
	// with 405 rather than 404.
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_ModerateStudent(t *testing.T) {
	s := newTestServer(t, &stubMatcher{})

	rec, env := doRequest(t, s, http.MethodPost, "/api/v1/students/S-001/moderate", map[string]string{
		"action": "suspend",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result command.ModerateStudentResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "suspended", result.Status)
}
