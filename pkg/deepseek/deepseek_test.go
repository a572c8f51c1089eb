package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-tracker/pkg/deepseek"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := deepseek.New(deepseek.Config{})
	assert.ErrorIs(t, err, deepseek.ErrMissingAPIKey)
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[len(req.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream down"))
			return
		}

		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hi there"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 2, "total_tokens": 7}
		}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL + "/"})
	require.NoError(t, err)
	assert.Equal(t, deepseek.DefaultModel, client.Model())

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hello"}},
		})
		require.NoError(t, err)
		require.Len(t, resp.Choices, 1)
		assert.Equal(t, "hi there", resp.Choices[0].Message.Content)
		assert.Equal(t, deepseek.DefaultModel, resp.Model)
		assert.Equal(t, 7, resp.Usage.TotalTokens)
	})

	t.Run("server error keeps raw body", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "cause_500"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "upstream down")
	})

	t.Run("api error message", func(t *testing.T) {
		bad, err := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})
		require.NoError(t, err)
		_, err = bad.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "hello"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad key")
	})
}
