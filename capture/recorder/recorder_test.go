package recorder

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
)

// fakeDevice feeds predefined chunks through a pipe and tracks releases.
type fakeDevice struct {
	startErr error
	chunks   [][]byte

	writer   *io.PipeWriter
	written  chan struct{}
	released int
}

func (d *fakeDevice) Start(_ context.Context) (io.ReadCloser, error) {
	if d.startErr != nil {
		return nil, d.startErr
	}
	pr, pw := io.Pipe()
	d.writer = pw
	d.written = make(chan struct{})
	chunks := d.chunks
	go func() {
		defer close(d.written)
		for _, chunk := range chunks {
			if _, err := pw.Write(chunk); err != nil {
				return
			}
		}
	}()
	return pr, nil
}

// Release waits for all chunks to be consumed before ending the stream,
// mimicking a device that flushes its buffer on stop.
func (d *fakeDevice) Release() error {
	d.released++
	if d.writer != nil {
		<-d.written
		d.writer.Close()
	}
	return nil
}

func TestStopMergesChunksInOrder(t *testing.T) {
	chunks := [][]byte{[]byte("one-"), []byte("two-"), []byte("three")}
	device := &fakeDevice{chunks: chunks}
	r := New(device)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if r.State() != StateRecording {
		t.Fatalf("state = %v", r.State())
	}

	blob, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !bytes.Equal(blob, []byte("one-two-three")) {
		t.Errorf("blob = %q", blob)
	}
	if r.State() != StateReady {
		t.Errorf("state = %v, want ready", r.State())
	}
	if device.released != 1 {
		t.Errorf("device released %d times", device.released)
	}
}

func TestStartDeniedLeavesIdle(t *testing.T) {
	device := &fakeDevice{startErr: fmt.Errorf("permission denied")}
	r := New(device)

	err := r.Start(context.Background())
	if !errors.Is(err, ErrMicrophoneDenied) {
		t.Fatalf("err = %v, want ErrMicrophoneDenied", err)
	}
	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.State())
	}

	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("Stop after denied start: %v", err)
	}
}

func TestCancelDiscardsAndReleases(t *testing.T) {
	device := &fakeDevice{chunks: [][]byte{[]byte("audio")}}
	r := New(device)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if r.State() != StateIdle {
		t.Errorf("state = %v, want idle", r.State())
	}
	if device.released != 1 {
		t.Errorf("device released %d times", device.released)
	}
	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("Stop after cancel: %v", err)
	}
}

func TestCancelWhenIdleIsNoop(t *testing.T) {
	device := &fakeDevice{}
	r := New(device)

	if err := r.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if device.released != 0 {
		t.Errorf("idle cancel released the device")
	}
}

func TestDoubleStartRejected(t *testing.T) {
	device := &fakeDevice{}
	r := New(device)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := r.Start(context.Background()); !errors.Is(err, ErrAlreadyRecording) {
		t.Fatalf("second Start: %v", err)
	}
	if err := r.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
}

func TestRestartAfterStop(t *testing.T) {
	device := &fakeDevice{chunks: [][]byte{[]byte("first")}}
	r := New(device)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	device.chunks = [][]byte{[]byte("second")}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("restart: %v", err)
	}
	blob, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !bytes.Equal(blob, []byte("second")) {
		t.Errorf("blob = %q, stale chunks retained", blob)
	}
}
