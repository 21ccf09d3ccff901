package recorder

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"sync"
)

// FFmpegDevice captures the default microphone by shelling out to ffmpeg
// and streaming opus-in-webm from its stdout pipe.
type FFmpegDevice struct {
	mu  sync.Mutex
	cmd *exec.Cmd
}

func NewFFmpegDevice() *FFmpegDevice {
	return &FFmpegDevice{}
}

// CheckFFmpeg reports whether an ffmpeg binary is available.
func (d *FFmpegDevice) CheckFFmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in PATH")
	}
	return nil
}

func inputArgs() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"-f", "avfoundation", "-i", ":default"}
	default:
		return []string{"-f", "pulse", "-i", "default"}
	}
}

func (d *FFmpegDevice) Start(ctx context.Context) (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cmd != nil {
		return nil, fmt.Errorf("device already started")
	}

	args := append(inputArgs(),
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libopus",
		"-f", "webm",
		"pipe:1",
	)
	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open ffmpeg pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	d.cmd = cmd
	return stdout, nil
}

// Release stops the capture process. ffmpeg finalizes the webm container
// on SIGINT, so the stream ends cleanly before the pipe closes.
func (d *FFmpegDevice) Release() error {
	d.mu.Lock()
	cmd := d.cmd
	d.cmd = nil
	d.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return nil
	}

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		cmd.Process.Kill()
	}
	cmd.Wait()

	return nil
}
