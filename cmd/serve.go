package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mindcare-edu/mindcare/internal/chatbot"
	"github.com/mindcare-edu/mindcare/internal/content"
	"github.com/mindcare-edu/mindcare/internal/metrics"
	"github.com/mindcare-edu/mindcare/internal/mood"
	"github.com/mindcare-edu/mindcare/internal/server"
	"github.com/mindcare-edu/mindcare/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MindCare web site",
	Long: `Starts the MindCare HTTP server: informational pages, the chatbot (HTML form
and websocket), the mood tracker, JSON APIs under /api, /healthz and /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "override server.port from the config")
	serveCmd.Flags().Bool("ephemeral", false, "keep mood history in memory only")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collector := metrics.NewCollector()

	tracker, store, err := openTracker(ctx, cfg, ephemeral, logger, mood.WithObserver(collector))
	if err != nil {
		return err
	}
	defer store.Close()

	catalog, err := content.Load(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}
	catalog.Site.Name = cfg.SiteName

	engine := chatbot.NewEngine(chatbot.WithReplyObserver(collector))
	conv := chatbot.NewConversation(engine, cfg.Chat.ReplyDelay())

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowAll:       cfg.Server.AllowAll,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, logger, collector)

	r := srv.Router()
	mood.RegisterRoutes(r, tracker)
	chatbot.RegisterRoutes(r, engine, conv, chatbot.Config{ReplyDelay: cfg.Chat.ReplyDelay()}, logger)
	pages, err := site.NewHandler(catalog, tracker, conv, logger)
	if err != nil {
		return fmt.Errorf("building pages: %w", err)
	}
	site.RegisterRoutes(r, pages)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("mindcare starting",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", string(cfg.Storage.Backend)),
		zap.Bool("ephemeral", ephemeral),
		zap.Int("mood_entries", tracker.Len()),
		zap.Int("pages", len(catalog.Pages)),
	)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
