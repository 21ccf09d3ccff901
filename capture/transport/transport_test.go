package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/echonote/backend/pkg/base64chunk"
)

func bigBlob() []byte {
	return bytes.Repeat([]byte("a"), MinBlobBytes)
}

func TestTranscribeAndAnalyze(t *testing.T) {
	var gotAuth, gotContentType string
	var gotAudio string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/voice-to-text" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")

		var req struct {
			Audio string `json:"audio"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		gotAudio = req.Audio

		_, _ = w.Write([]byte(`{"text":"buy milk","ideas":[{"content":"buy milk","idea_type":"main","sequence":1}],"multiple_ideas":false}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	result, err := c.TranscribeAndAnalyze(context.Background(), bigBlob())
	if err != nil {
		t.Fatalf("TranscribeAndAnalyze: %v", err)
	}

	if result.Text != "buy milk" || len(result.Ideas) != 1 {
		t.Errorf("result = %+v", result)
	}
	if gotAuth != "Bearer jwt-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if !strings.Contains(gotContentType, "application/json") {
		t.Errorf("content type = %q", gotContentType)
	}

	decoded, err := base64chunk.Decode(gotAudio)
	if err != nil {
		t.Fatalf("audio not valid base64: %v", err)
	}
	if !bytes.Equal(decoded, bigBlob()) {
		t.Error("audio does not round-trip")
	}
}

func TestSmallBlobNeverHitsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	_, err := c.TranscribeAndAnalyze(context.Background(), []byte("tiny"))
	if !errors.Is(err, ErrBlobTooSmall) {
		t.Fatalf("err = %v, want ErrBlobTooSmall", err)
	}
	if requests != 0 {
		t.Errorf("server saw %d requests", requests)
	}
}

func TestTimeoutIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token", WithTimeout(20*time.Millisecond))
	_, err := c.TranscribeAndAnalyze(context.Background(), bigBlob())
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestNon2xxCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"openai api key not found, configure it in settings"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	_, err := c.TranscribeAndAnalyze(context.Background(), bigBlob())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 500") || !strings.Contains(err.Error(), "api key not found") {
		t.Errorf("err = %v", err)
	}
}

func TestConnectionErrorIsNotTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, "jwt-token")
	_, err := c.TranscribeAndAnalyze(context.Background(), bigBlob())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrTimeout) {
		t.Errorf("connection refused mapped to ErrTimeout: %v", err)
	}
}

func TestSaveIdeasAndLink(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/ideas":
			var req struct {
				RecordingID string `json:"recording_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.RecordingID != "rec-1" {
				t.Errorf("recording_id = %q", req.RecordingID)
			}
			_, _ = w.Write([]byte(`{"ideas":[{"id":"idea-1","content":"buy milk"}]}`))
		default:
			_, _ = w.Write([]byte(`{"status":"linked"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")

	saved, err := c.SaveIdeas(context.Background(), "rec-1", nil)
	if err != nil {
		t.Fatalf("SaveIdeas: %v", err)
	}
	if len(saved) != 1 || saved[0].ID != "idea-1" {
		t.Errorf("saved = %+v", saved)
	}

	if err := c.LinkIdea(context.Background(), "idea-1", "master content"); err != nil {
		t.Fatalf("LinkIdea: %v", err)
	}
	if len(paths) != 2 || paths[1] != "/ideas/idea-1/link" {
		t.Errorf("paths = %v", paths)
	}
}

func TestListIdeas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/ideas" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"ideas":[{"content":"one"},{"content":"two"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	ideas, err := c.ListIdeas(context.Background())
	if err != nil {
		t.Fatalf("ListIdeas: %v", err)
	}
	if len(ideas) != 2 {
		t.Errorf("ideas = %+v", ideas)
	}
}
