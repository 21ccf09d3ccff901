package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	config "github.com/echonote/backend/config/web"
	"github.com/echonote/backend/gateways/web"
	"github.com/echonote/backend/gateways/web/clients/openai"
	"github.com/echonote/backend/pkg/logger"
	ssoPostgres "github.com/echonote/backend/services/sso/storage/postgres"
	ssoEnt "github.com/echonote/backend/services/sso/storage/postgres/ent"
	ssoUsecase "github.com/echonote/backend/services/sso/usecase"
	voicePostgres "github.com/echonote/backend/services/voice/storage/postgres"
	voiceEnt "github.com/echonote/backend/services/voice/storage/postgres/ent"
	voiceUsecase "github.com/echonote/backend/services/voice/usecase"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})

	cfg := config.MustLoad()

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Name,
		cfg.Database.Password,
		cfg.Database.SSLMode,
	)

	voiceClient, err := voiceEnt.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open voice database: %w", err)
	}
	defer voiceClient.Close()

	if err := voiceClient.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to create voice schema: %w", err)
	}

	ssoClient, err := ssoEnt.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sso database: %w", err)
	}
	defer ssoClient.Close()

	if err := ssoClient.Schema.Create(ctx); err != nil {
		return fmt.Errorf("failed to create sso schema: %w", err)
	}

	ai := openai.New(openai.WithBaseURL(cfg.OpenAI.BaseURL))

	voiceStg := voicePostgres.New(voiceClient)
	voiceUsc := voiceUsecase.New(voiceStg, ai)

	ssoStg := ssoPostgres.New(ssoClient)
	ssoUsc := ssoUsecase.New(cfg.JWTSecret, ssoStg)

	srv, err := web.New(cfg, log, voiceUsc, ssoUsc)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	return srv.Start(ctx)
}
