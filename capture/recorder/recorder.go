package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/echonote/backend/pkg/logger"
)

var (
	ErrMicrophoneDenied = errors.New("microphone access denied")
	ErrNotRecording     = errors.New("recorder is not recording")
	ErrAlreadyRecording = errors.New("recorder is already recording")
)

// State is the capture lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRecording
	StateReady
)

func (s State) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

// Device produces an encoded audio stream from the microphone. Release
// must stop the underlying capture and unblock any pending stream reads.
type Device interface {
	Start(ctx context.Context) (io.ReadCloser, error)
	Release() error
}

const readChunkSize = 32 * 1024

// Recorder drains a Device stream into ordered chunks and assembles them
// into a single blob on stop.
type Recorder struct {
	device Device

	mu     sync.Mutex
	state  State
	chunks [][]byte

	stream  io.ReadCloser
	done    chan struct{}
	readErr error
}

func New(device Device) *Recorder {
	return &Recorder{
		device: device,
		state:  StateIdle,
	}
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start begins a capture. A device that cannot start leaves the recorder
// idle with no partial buffer.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StateRecording {
		return ErrAlreadyRecording
	}

	stream, err := r.device.Start(ctx)
	if err != nil {
		r.state = StateIdle
		r.chunks = nil
		return fmt.Errorf("%w: %v", ErrMicrophoneDenied, err)
	}

	r.state = StateRecording
	r.chunks = nil
	r.stream = stream
	r.readErr = nil
	r.done = make(chan struct{})

	go r.drain(ctx, stream, r.done)
	logger.Debug(ctx, "recording started")

	return nil
}

// drain appends stream chunks in arrival order until the stream ends.
func (r *Recorder) drain(ctx context.Context, stream io.Reader, done chan struct{}) {
	defer close(done)

	for {
		buf := make([]byte, readChunkSize)
		n, err := stream.Read(buf)
		if n > 0 {
			r.mu.Lock()
			r.chunks = append(r.chunks, buf[:n])
			r.mu.Unlock()
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) {
				r.mu.Lock()
				r.readErr = err
				r.mu.Unlock()
				logger.Warn(ctx, "audio stream read failed", "error", err)
			}
			return
		}
	}
}

// Stop ends the capture, releases the device and returns the recorded
// chunks merged in arrival order.
func (r *Recorder) Stop() ([]byte, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}
	done := r.done
	r.mu.Unlock()

	releaseErr := r.device.Release()
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()

	r.stream.Close()
	r.stream = nil
	r.state = StateReady

	if r.readErr != nil {
		blobErr := r.readErr
		r.chunks = nil
		r.state = StateIdle
		return nil, fmt.Errorf("recording failed: %w", blobErr)
	}
	if releaseErr != nil {
		r.chunks = nil
		r.state = StateIdle
		return nil, fmt.Errorf("failed to release device: %w", releaseErr)
	}

	var blob bytes.Buffer
	for _, chunk := range r.chunks {
		blob.Write(chunk)
	}
	r.chunks = nil

	return blob.Bytes(), nil
}

// Cancel discards any captured audio and releases the device.
func (r *Recorder) Cancel() error {
	r.mu.Lock()
	if r.state != StateRecording {
		r.chunks = nil
		r.state = StateIdle
		r.mu.Unlock()
		return nil
	}
	done := r.done
	r.mu.Unlock()

	err := r.device.Release()
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()

	r.stream.Close()
	r.stream = nil
	r.chunks = nil
	r.readErr = nil
	r.state = StateIdle

	if err != nil {
		return fmt.Errorf("failed to release device: %w", err)
	}
	return nil
}

// Close releases the device unconditionally, for teardown paths.
func (r *Recorder) Close() error {
	return r.Cancel()
}
