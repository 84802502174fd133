package genai_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/solutionam/partstore/internal/adapter/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) genai.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return genai.NewClient(srv.URL, time.Second)
}

func TestGenerateSolutions(t *testing.T) {

	t.Run("DecodesSolutions", func(t *testing.T) {
		var gotBody map[string]any
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/generate", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"solutions": []string{"use LED lamps", "check the fuse"},
			})
		})

		solutions, err := cl.GenerateSolutions(
			t.Context(), "my headlights are too dim")
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"use LED lamps", "check the fuse"}, solutions)
		assert.Equal(t, "my headlights are too dim", gotBody["prompt"])
	})

	t.Run("RequestValidationFailsClosed", func(t *testing.T) {
		called := false
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := cl.GenerateSolutions(t.Context(), "short")
		require.Error(t, err)
		assert.False(t, called)
	})

	t.Run("ResponseValidationFailsClosed", func(t *testing.T) {
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"unexpected": true}`))
		})

		_, err := cl.GenerateSolutions(t.Context(), "a long enough prompt")
		require.Error(t, err)
	})

	t.Run("Non200IsFailure", func(t *testing.T) {
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := cl.GenerateSolutions(t.Context(), "a long enough prompt")
		require.Error(t, err)
		assert.ErrorIs(t, err, genai.ErrUnexpectedStatus)
	})
}

func TestSummarizeSolutions(t *testing.T) {
	cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/summarize", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"summaries": []string{"one sentence"},
		})
	})

	summaries, err := cl.SummarizeSolutions(t.Context(), []string{"solution"})
	require.NoError(t, err)
	assert.Equal(t, []string{"one sentence"}, summaries)
}

func TestImproveSolution(t *testing.T) {

	t.Run("SendsAllThreeFields", func(t *testing.T) {
		var gotBody map[string]any
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/improve", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(map[string]any{
				"improvedSolution": "better solution",
			})
		})

		improved, err := cl.ImproveSolution(
			t.Context(), "prompt", "solution", "feedback")
		require.NoError(t, err)
		assert.Equal(t, "better solution", improved)
		assert.Equal(t, "prompt", gotBody["prompt"])
		assert.Equal(t, "solution", gotBody["generatedSolution"])
		assert.Equal(t, "feedback", gotBody["feedback"])
	})

	t.Run("EmptyFieldRejectedBeforeCall", func(t *testing.T) {
		called := false
		cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		_, err := cl.ImproveSolution(t.Context(), "prompt", "", "feedback")
		require.Error(t, err)
		assert.False(t, called)
	})
}

func TestChat(t *testing.T) {
	cl := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": "We are in Yerevan.",
		})
	})

	answer, err := cl.Chat(t.Context(), "where are you located?")
	require.NoError(t, err)
	assert.Equal(t, "We are in Yerevan.", answer)
}
