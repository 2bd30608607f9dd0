package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findateacher/tutorhub/internal/domain/shared"
	"github.com/findateacher/tutorhub/internal/domain/tutor"
	"github.com/findateacher/tutorhub/pkg/circuitbreaker"
	"github.com/findateacher/tutorhub/pkg/retry"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	cfg.RetryConfig = retry.Config{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
	cfg.BreakerConfig = circuitbreaker.Config{
		Name:             "gemini-test",
		FailureThreshold: 10,
		SuccessThreshold: 1,
		Timeout:          time.Second,
	}
	return cfg
}

func modelJSON(t *testing.T, payload any) string {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	response := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(raw)}}}},
		},
	}
	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	return string(encoded)
}

func TestSmartMatch_ParsesModelResponse(t *testing.T) {
	var gotPath string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(modelJSON(t, smartMatchResponse{
			RecommendedTutorIDs: []string{"T-004", "T-001"},
			Reasoning:           "Both cover advanced mathematics online.",
		})))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	candidates := []*tutor.Tutor{
		{ID: "T-001", Name: "Sarah Jenkins", Subjects: []string{"Mathematics"}},
		{ID: "T-004", Name: "Michael Ross", Subjects: []string{"Computer Science"}},
	}

	ids, reasoning, err := client.SmartMatch(context.Background(), "advanced math online", candidates)
	require.NoError(t, err)
	assert.Equal(t, []string{"T-004", "T-001"}, ids)
	assert.Equal(t, "Both cover advanced mathematics online.", reasoning)

	assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", gotPath)
	require.NotNil(t, gotBody.GenerationConfig)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMIMEType)
	require.Len(t, gotBody.Contents, 1)
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "advanced math online")
	assert.Contains(t, gotBody.Contents[0].Parts[0].Text, "T-004")
}

func TestSmartMatch_ServerErrorIsExternalServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":500,"message":"internal"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, _, err := client.SmartMatch(context.Background(), "math", nil)
	assert.ErrorIs(t, err, shared.ErrExternalService)
}

func TestSmartMatch_BadRequestIsNotRetried(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":{"code":400,"message":"invalid argument"}}`, http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, _, err := client.SmartMatch(context.Background(), "math", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestSmartMatch_RetriesTransientFailures(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(modelJSON(t, smartMatchResponse{
			RecommendedTutorIDs: []string{"T-001"},
			Reasoning:           "ok",
		})))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	ids, _, err := client.SmartMatch(context.Background(), "math", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"T-001"}, ids)
}

func TestSmartMatch_MissingAPIKeyFailsFast(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:0")
	cfg.APIKey = ""
	client := NewClient(cfg)

	_, _, err := client.SmartMatch(context.Background(), "math", nil)
	assert.ErrorIs(t, err, shared.ErrExternalService)
}

func TestGenerateBio_ReturnsTrimmedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "  Experienced maths tutor with a passion for problem solving.\n"},
				}}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	bio, err := client.GenerateBio(context.Background(), "5 years", "Mathematics", "patient")
	require.NoError(t, err)
	assert.Equal(t, "Experienced maths tutor with a passion for problem solving.", bio)
}

func TestGenerateBio_EmptyResponseIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))
	_, err := client.GenerateBio(context.Background(), "5 years", "Mathematics", "patient")
	assert.ErrorIs(t, err, shared.ErrExternalService)
}
