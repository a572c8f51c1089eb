package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"study-tracker/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err != gemini.ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model %s, got %s", gemini.DefaultModel, client.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/models/test-model:generateContent" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		captured = nil
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := captured["contents"].([]any)
		first := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)
		if first["text"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "mocked response string"}], "role": "model"}}
			],
			"usageMetadata": {"promptTokenCount": 11, "candidatesTokenCount": 4, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			Temperature: 0.2,
			MaxTokens:   128,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 15 || resp.Usage.InputTokens != 11 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
		if _, ok := captured["system_instruction"]; !ok {
			t.Errorf("system instruction not sent")
		}
		gen := captured["generationConfig"].(map[string]any)
		if gen["maxOutputTokens"].(float64) != 128 {
			t.Errorf("unexpected generation config: %v", gen)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})
}
