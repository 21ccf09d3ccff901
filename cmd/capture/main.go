package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/echonote/backend/capture/feedback"
	"github.com/echonote/backend/capture/recorder"
	"github.com/echonote/backend/capture/session"
	"github.com/echonote/backend/capture/transport"
	config "github.com/echonote/backend/config/capture"
	"github.com/echonote/backend/pkg/logger"
	"github.com/echonote/backend/services/voice/entity"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelWarn,
		Output:     os.Stderr,
		AddSource:  false,
		JSONFormat: false,
	})

	cfg := config.MustLoad()
	if cfg.Token == "" {
		fmt.Fprintln(os.Stderr, "ECHONOTE_TOKEN is not set; log in first and export the token")
		os.Exit(1)
	}

	ctx := logger.WithContext(context.Background(), log)
	rootCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	device := recorder.NewFFmpegDevice()
	if err := device.CheckFFmpeg(); err != nil {
		return err
	}
	rec := recorder.New(device)
	defer rec.Close()

	client := transport.New(cfg.BaseURL, cfg.Token)
	cues := feedback.New(newPlayer(cfg))
	sess := session.New(rec, client, cues)

	fmt.Println("echonote capture: r=record, s=stop, c=cancel, l=list, q=quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "r":
			if err := sess.StartCapture(ctx); err != nil {
				fmt.Println("cannot record:", err)
				continue
			}
			fmt.Println("recording... (s to stop, c to cancel)")
		case "s":
			finishCapture(ctx, sess, scanner)
		case "c":
			if err := sess.CancelCapture(); err != nil {
				fmt.Println("cancel failed:", err)
				continue
			}
			fmt.Println("recording discarded")
		case "l":
			printIdeas(ctx, client)
		case "q":
			return nil
		case "":
		default:
			fmt.Println("unknown command")
		}
	}
}

func finishCapture(ctx context.Context, sess *session.Session, scanner *bufio.Scanner) {
	fmt.Println("analyzing...")
	outcome, err := sess.FinishCapture(ctx)
	if err != nil {
		fmt.Println("capture failed:", err)
		return
	}

	fmt.Printf("transcript: %s\n", outcome.Result.Text)

	if outcome.Queue == nil {
		printSaved(outcome.Saved)
		return
	}

	total := outcome.Queue.Len()
	for {
		item, pos, ok := outcome.Queue.Presenting()
		if !ok {
			break
		}

		question := item.Question
		if question == "" {
			question = fmt.Sprintf("Link %q to %q?", item.Idea.Content, item.Idea.PotentialMasterIdea)
		}
		fmt.Printf("[%d/%d] %s (y/n): ", pos+1, total, question)

		accepted := false
		if scanner.Scan() {
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			accepted = answer == "y" || answer == "yes"
		}
		if err := outcome.Queue.Answer(accepted); err != nil {
			fmt.Println("clarification failed:", err)
			return
		}
	}

	printSaved(outcome.Result.Ideas)
}

func printSaved(ideas []*entity.Idea) {
	fmt.Printf("saved %d idea(s):\n", len(ideas))
	for _, idea := range ideas {
		fmt.Printf("  %d. [%s] %s\n", idea.Sequence, idea.IdeaType, idea.Content)
	}
}

func printIdeas(ctx context.Context, client *transport.Client) {
	ideas, err := client.ListIdeas(ctx)
	if err != nil {
		fmt.Println("list failed:", err)
		return
	}
	if len(ideas) == 0 {
		fmt.Println("no ideas yet")
		return
	}
	for _, idea := range ideas {
		marker := " "
		if idea.MasterIdeaID != nil {
			marker = "↳"
		}
		fmt.Printf("%s [%s] %s\n", marker, idea.IdeaType, idea.Content)
	}
}

// newPlayer builds the tone player, piping PCM frames to the configured
// sink command. Silent mode swallows all cues.
func newPlayer(cfg *config.Config) feedback.TonePlayer {
	if cfg.Silent {
		return silentPlayer{}
	}

	return feedback.NewPCMPlayer(func() (io.Writer, error) {
		parts := strings.Fields(cfg.AudioSink)
		if len(parts) == 0 {
			return nil, fmt.Errorf("audio sink command is empty")
		}

		cmd := exec.Command(parts[0], parts[1:]...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			return nil, err
		}
		return stdin, nil
	})
}

type silentPlayer struct{}

func (silentPlayer) Play(feedback.Tone) error { return nil }
