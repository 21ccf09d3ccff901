package openai

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/echonote/backend/services/voice/consts"
)

func TestTranscribe(t *testing.T) {
	var gotAuth, gotModel, gotFilename, gotFileType string
	var gotAudio []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Fatalf("content type = %q (%v)", mediaType, err)
		}
		reader, err := r.MultipartReader()
		if err != nil {
			t.Fatalf("MultipartReader: %v", err)
		}
		for {
			part, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("NextPart: %v", err)
			}
			switch part.FormName() {
			case "file":
				gotFilename = part.FileName()
				gotFileType = part.Header.Get("Content-Type")
				gotAudio, _ = io.ReadAll(part)
			case "model":
				data, _ := io.ReadAll(part)
				gotModel = string(data)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "buy milk"})
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	text, err := c.Transcribe(context.Background(), "sk-test", []byte("webm-bytes"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if text != "buy milk" {
		t.Errorf("text = %q", text)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotModel != consts.WhisperModel {
		t.Errorf("model = %q, want %q", gotModel, consts.WhisperModel)
	}
	if gotFilename != consts.AudioFileName {
		t.Errorf("filename = %q, want %q", gotFilename, consts.AudioFileName)
	}
	if gotFileType != consts.AudioMimeType {
		t.Errorf("file content type = %q, want %q", gotFileType, consts.AudioMimeType)
	}
	if string(gotAudio) != "webm-bytes" {
		t.Errorf("audio = %q", gotAudio)
	}
}

func TestEmbed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var payload struct {
			Model string `json:"model"`
			Input string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Model != consts.EmbeddingModel {
			t.Errorf("model = %q", payload.Model)
		}
		if payload.Input != "buy milk" {
			t.Errorf("input = %q", payload.Input)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3]}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	vec, err := c.Embed(context.Background(), "sk-test", "buy milk")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vec) != 3 || vec[1] != 0.2 {
		t.Errorf("embedding = %v", vec)
	}
}

func TestEmbedEmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	if _, err := c.Embed(context.Background(), "sk-test", "x"); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var payload struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
			Temperature    float64           `json:"temperature"`
			ResponseFormat map[string]string `json:"response_format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if payload.Model != consts.AnalysisModel {
			t.Errorf("model = %q", payload.Model)
		}
		if len(payload.Messages) != 2 || payload.Messages[0].Role != "system" || payload.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", payload.Messages)
		}
		if payload.Temperature != 0.3 {
			t.Errorf("temperature = %v", payload.Temperature)
		}
		if payload.ResponseFormat["type"] != "json_object" {
			t.Errorf("response_format = %v", payload.ResponseFormat)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"ideas\":[]}"}}]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	content, err := c.Complete(context.Background(), "sk-test", "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if content != `{"ideas":[]}` {
		t.Errorf("content = %q", content)
	}
}

func TestUpstreamErrorIncludesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL))
	_, err := c.Transcribe(context.Background(), "sk-bad", []byte("audio"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error missing status: %v", err)
	}
	if !strings.Contains(err.Error(), "Incorrect API key") {
		t.Errorf("error missing upstream body: %v", err)
	}
}
