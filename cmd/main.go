package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"tone-converter-service/internal/config"
	"tone-converter-service/internal/handler"
	"tone-converter-service/internal/logger"
	"tone-converter-service/internal/routes"
	"tone-converter-service/internal/services"
	"tone-converter-service/internal/utils"
	"tone-converter-service/web"
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "tone-converter",
		Usage:  "rewrite workplace messages for a superior, a colleague or a customer",
		Flags:  config.Flags(),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.FromCLI(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	prompts, err := utils.LoadPrompts(cfg.PromptDir)
	if err != nil {
		return fmt.Errorf("prompts: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, err := services.NewCompleter(ctx, cfg.Completer())
	if err != nil {
		return fmt.Errorf("completion client: %w", err)
	}

	fields := logrus.Fields{"provider": completer.Name()}
	if completer.Available() {
		log.WithFields(fields).Info("completion client ready")
	} else {
		log.WithFields(fields).Warn("no API key configured; /api/convert will answer 503")
	}

	convertService := services.NewConvertService(completer, prompts, cfg.ProviderTimeout, log)
	convertHandler := handler.NewConvertHandler(convertService, log)

	app := routes.NewApp(log)
	routes.Setup(app, convertHandler, routes.Options{
		MaxTextLength: cfg.MaxTextLength,
		RateLimit:     cfg.RateLimit,
		Static:        web.FileSystem(cfg.StaticDir),
		Log:           log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
