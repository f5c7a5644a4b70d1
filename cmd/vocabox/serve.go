package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"vocabox/internal/api"
	"vocabox/internal/handler"
	"vocabox/internal/scheduler"
	"vocabox/internal/service"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot, the JSON API and the daily reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Bool("no-bot", false, "Serve the JSON API only")
}

func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cmd, true)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger
	logger.Info("Starting Vocabox")

	noBot, _ := cmd.Flags().GetBool("no-bot")

	var reminders scheduler.ReminderSender
	if !noBot {
		if err := a.cfg.ValidateBot(); err != nil {
			return err
		}

		bot, err := tele.NewBot(tele.Settings{
			Token:  a.cfg.BotToken,
			Poller: &tele.LongPoller{Timeout: 10 * time.Second},
			OnError: func(err error, c tele.Context) {
				logger.Error("Bot handler failed", zap.Error(err))
			},
		})
		if err != nil {
			return err
		}

		h := handler.NewHandler(bot, a.auth, a.review, a.stats, a.assignments, a.clock, logger)
		h.RegisterHandlers()
		logger.Info("Telegram bot initialized")

		reminders = service.NewReminderService(a.userRepo, a.progressRepo, handler.NewBotNotifier(bot), a.clock, logger)

		go bot.Start()
		defer bot.Stop()
	}

	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}
	jobs := scheduler.New(scheduler.Options{
		Location:   loc,
		ReminderAt: a.cfg.ReminderAt,
		SessionTTL: a.cfg.SessionTTL,
	}, reminders, a.sessions, logger)
	if err := jobs.Start(); err != nil {
		return err
	}
	defer jobs.Stop()

	server := api.NewServer(&api.Options{
		Address:     a.cfg.HTTPAddr,
		Review:      a.review,
		Stats:       a.stats,
		Assignments: a.assignments,
		Users:       a.auth,
		Logger:      logger,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received, stopping")
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP API stopped", zap.Error(err))
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Warn("Failed to stop HTTP API", zap.Error(err))
	}

	logger.Info("Vocabox stopped gracefully")
	return nil
}
