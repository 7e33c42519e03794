package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPlanner(t *testing.T, handler http.HandlerFunc) *MistralPlanner {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	p := NewMistralPlanner("test-key", "mistral-tiny")
	p.endpoint = srv.URL
	return p
}

func TestMistralPlanner_Generate(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody chatRequest
	p := newTestPlanner(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"the plan"}}]}`))
	})

	out, err := p.Generate(context.Background(), "Metformin", []string{"sleep", "appetite"})
	require.NoError(t, err)
	require.Equal(t, "the plan", out)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "mistral-tiny", gotBody.Model)
	require.Len(t, gotBody.Messages, 1)
	// The prompt is deterministic: medication name plus comma-joined focus areas.
	require.Contains(t, gotBody.Messages[0].Content, "Metformin")
	require.Contains(t, gotBody.Messages[0].Content, "sleep, appetite")
}

func TestMistralPlanner_MissingAPIKey(t *testing.T) {
	t.Parallel()

	p := NewMistralPlanner("", "mistral-tiny")
	_, err := p.Generate(context.Background(), "Metformin", nil)
	require.EqualError(t, err, "MISTRAL_API_KEY not set")
}

func TestMistralPlanner_MalformedResponse(t *testing.T) {
	t.Parallel()

	p := newTestPlanner(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := p.Generate(context.Background(), "Metformin", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse Mistral API response")
}

func TestMistralPlanner_EmptyChoices(t *testing.T) {
	t.Parallel()

	p := newTestPlanner(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	out, err := p.Generate(context.Background(), "Metformin", nil)
	require.NoError(t, err)
	require.Equal(t, "Failed to generate plan", out)
}
