package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cronadapter "github.com/le0623/slack-app-demo/internal/adapter/cron"
	httpadapter "github.com/le0623/slack-app-demo/internal/adapter/http"
	"github.com/le0623/slack-app-demo/internal/adapter/http/handlers"
	httpmiddleware "github.com/le0623/slack-app-demo/internal/adapter/http/middleware"
	"github.com/le0623/slack-app-demo/internal/adapter/memstore"
	"github.com/le0623/slack-app-demo/internal/adapter/slackbot"
	"github.com/le0623/slack-app-demo/internal/app/service"
	"github.com/le0623/slack-app-demo/internal/config"
	"github.com/le0623/slack-app-demo/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := memstore.New()

	client := slackbot.NewClient(cfg.SlackBotToken, cfg.SlackAppToken)
	messenger := slackbot.NewMessenger(client)
	automation := service.NewAutomationService(store, messenger)
	bot := slackbot.NewBot(client, automation)

	reports := service.NewReportService(store, messenger, cfg.DefaultChannel)
	scheduler := cronadapter.NewScheduler()
	if err := reports.RegisterJobs(scheduler, cfg.ReportHour, cfg.ReportMinute); err != nil {
		logger.Fatal("failed to register scheduled jobs", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	healthHandler := handlers.NewHealthHandler(bot, scheduler.Running)
	automationHandler := handlers.NewAutomationHandler(store, scheduler.JobCount)
	httpadapter.RegisterRoutes(r, healthHandler, automationHandler)

	go func() {
		addr := ":" + cfg.AppPort
		logger.Info("starting ops server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("could not start ops server", zap.Error(err))
		}
	}()

	logger.Info("starting slack bot",
		zap.String("default_channel", cfg.DefaultChannel),
		zap.Int("report_hour", cfg.ReportHour))
	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("slack bot stopped", zap.Error(err))
	}
}
