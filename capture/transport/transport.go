package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/echonote/backend/pkg/base64chunk"
	"github.com/echonote/backend/services/voice/entity"
)

// MinBlobBytes is the smallest audio blob worth sending. Anything under
// it is a click or silence and is rejected before any network traffic.
const MinBlobBytes = 1000

// requestTimeout bounds one transcription round trip.
const requestTimeout = 60 * time.Second

var (
	ErrBlobTooSmall = errors.New("recording too short, speak for at least a second")
	ErrTimeout      = errors.New("processing timed out, try a shorter recording")
)

// Client submits finished recordings to the backend for transcription
// and analysis.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the round-trip deadline, used by tests.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		timeout:    requestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type voiceRequest struct {
	Audio string `json:"audio"`
}

// TranscribeAndAnalyze ships the blob to the voice-to-text endpoint and
// returns the transcript with its extracted ideas.
func (c *Client) TranscribeAndAnalyze(ctx context.Context, blob []byte) (*entity.AnalysisResult, error) {
	if len(blob) < MinBlobBytes {
		return nil, ErrBlobTooSmall
	}

	payload, err := json.Marshal(voiceRequest{Audio: base64chunk.Encode(blob)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := c.post(ctx, "/voice-to-text", payload)
	if err != nil {
		return nil, err
	}

	result := &entity.AnalysisResult{}
	if err := json.Unmarshal(raw, result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result, nil
}

type saveIdeasRequest struct {
	RecordingID string         `json:"recording_id"`
	Ideas       []*entity.Idea `json:"ideas"`
}

// SaveIdeas persists an analyzed batch under one recording id.
func (c *Client) SaveIdeas(ctx context.Context, recordingID string, ideas []*entity.Idea) ([]*entity.Idea, error) {
	payload, err := json.Marshal(saveIdeasRequest{RecordingID: recordingID, Ideas: ideas})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	raw, err := c.post(ctx, "/ideas", payload)
	if err != nil {
		return nil, err
	}

	var result struct {
		Ideas []*entity.Idea `json:"ideas"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Ideas, nil
}

// LinkIdea records an accepted clarification link.
func (c *Client) LinkIdea(ctx context.Context, ideaID, masterContent string) error {
	payload, err := json.Marshal(map[string]string{"master_content": masterContent})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.post(ctx, "/ideas/"+ideaID+"/link", payload)
	return err
}

// ListIdeas fetches the stored idea feed.
func (c *Client) ListIdeas(ctx context.Context) ([]*entity.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ideas", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("list ideas failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result struct {
		Ideas []*entity.Idea `json:"ideas"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Ideas, nil
}

func (c *Client) post(ctx context.Context, path string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return raw, nil
}
