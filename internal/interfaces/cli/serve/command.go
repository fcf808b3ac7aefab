// Package serve wires the full bot: storage, use cases, transport, scheduler.
package serve

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	analyticsuc "unibot/internal/application/analytics/usecases"
	docuc "unibot/internal/application/document/usecases"
	faquc "unibot/internal/application/faq/usecases"
	feedbackuc "unibot/internal/application/feedback/usecases"
	notifuc "unibot/internal/application/notification/usecases"
	scheduc "unibot/internal/application/schedule/usecases"
	ticketuc "unibot/internal/application/ticket/usecases"
	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/domain/ticket"
	"unibot/internal/infrastructure/cache"
	"unibot/internal/infrastructure/config"
	"unibot/internal/infrastructure/database"
	"unibot/internal/infrastructure/migration"
	"unibot/internal/infrastructure/ratelimit"
	"unibot/internal/infrastructure/repository"
	"unibot/internal/infrastructure/scheduler"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/interfaces/bot"
	httpserver "unibot/internal/interfaces/http"
	"unibot/internal/shared/biztime"
	"unibot/internal/shared/db"
	"unibot/internal/shared/goroutine"
	"unibot/internal/shared/logger"
	"unibot/internal/shared/markdown"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the bot",
		Long:  `Start the support bot: Telegram transport (polling or webhook), HTTP health endpoint, and the broadcast scheduler.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment override for server mode")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Biztime.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	botService := telegram.NewBotService(cfg.Telegram)
	wizardStore := cache.NewWizardStateStore(redisClient, 30*time.Minute)
	offsetStore := cache.NewPollingOffsetStore(redisClient)

	// Repositories.
	gdb := database.Get()
	userRepo := repository.NewUserRepository(gdb)
	ticketRepo := repository.NewTicketRepository(gdb)
	messageRepo := repository.NewTicketMessageRepository(gdb)
	categoryRepo := repository.NewFAQCategoryRepository(gdb)
	itemRepo := repository.NewFAQItemRepository(gdb)
	ratingRepo := repository.NewFAQRatingRepository(gdb)
	favoriteRepo := repository.NewFavoriteRepository(gdb)
	documentRepo := repository.NewDocumentRepository(gdb)
	scheduleRepo := repository.NewScheduleRepository(gdb)
	feedbackRepo := repository.NewFeedbackRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)
	requestLogRepo := repository.NewRequestLogRepository(gdb)

	txManager := db.NewTransactionManager(gdb)
	renderer := markdown.NewService()
	numberGen := ticket.NewRandomNumberGenerator()
	ticketAlerts := notifuc.NewTicketAlertService(userRepo, botService, log)

	dispatchNotification := notifuc.NewDispatchNotificationUseCase(
		notificationRepo, userRepo, botService,
		telegram.IsPermanentDeliveryError,
		telegram.RetryAfterDelay,
		time.Duration(cfg.Broadcast.SendDelayMs)*time.Millisecond,
		log,
	)

	usecases := bot.UseCases{
		RegisterUser:        useruc.NewRegisterUserUseCase(userRepo, cfg.Telegram.AdminIDs, log),
		GetProfile:          useruc.NewGetProfileUseCase(userRepo, log),
		UpdateProfile:       useruc.NewUpdateProfileUseCase(userRepo, log),
		ToggleNotifications: useruc.NewToggleNotificationsUseCase(userRepo, log),
		CompleteOnboarding:  useruc.NewCompleteOnboardingUseCase(userRepo, log),
		GetUserStats:        useruc.NewGetUserStatsUseCase(userRepo, log),
		ChangeRole:          useruc.NewChangeRoleUseCase(userRepo, log),
		SetUserActive:       useruc.NewSetUserActiveUseCase(userRepo, log),

		SearchFAQ:         faquc.NewSearchFAQUseCase(itemRepo, cfg.Search, log),
		ListFAQCategories: faquc.NewListCategoriesUseCase(categoryRepo, log),
		ListFAQItems:      faquc.NewListItemsUseCase(categoryRepo, itemRepo, log),
		ListPopularFAQ:    faquc.NewListPopularUseCase(itemRepo, log),
		GetFAQItem:        faquc.NewGetItemUseCase(itemRepo, favoriteRepo, renderer, log),
		RateFAQItem:       faquc.NewRateItemUseCase(itemRepo, ratingRepo, txManager, log),
		AddFavorite:       faquc.NewAddFavoriteUseCase(itemRepo, favoriteRepo, log),
		RemoveFavorite:    faquc.NewRemoveFavoriteUseCase(favoriteRepo, log),
		ListFavorites:     faquc.NewListFavoritesUseCase(favoriteRepo, log),
		CreateFAQCategory: faquc.NewCreateCategoryUseCase(categoryRepo, log),
		CreateFAQItem:     faquc.NewCreateItemUseCase(categoryRepo, itemRepo, log),

		SearchDocuments:   docuc.NewSearchDocumentsUseCase(documentRepo, cfg.Search, log),
		ListDocuments:     docuc.NewListDocumentsUseCase(documentRepo, log),
		ListDocCategories: docuc.NewListCategoriesUseCase(documentRepo, log),
		GetDocument:       docuc.NewGetDocumentUseCase(documentRepo, log),
		AddDocument:       docuc.NewAddDocumentUseCase(documentRepo, log),
		RemoveDocument:    docuc.NewRemoveDocumentUseCase(documentRepo, log),

		ListEvents:   scheduc.NewListEventsUseCase(scheduleRepo, log),
		ListUpcoming: scheduc.NewListUpcomingUseCase(scheduleRepo, log),

		CreateTicket:   ticketuc.NewCreateTicketUseCase(ticketRepo, messageRepo, numberGen, txManager, ticketAlerts, log),
		AddMessage:     ticketuc.NewAddMessageUseCase(ticketRepo, messageRepo, txManager, ticketAlerts, log),
		ChangeStatus:   ticketuc.NewChangeStatusUseCase(ticketRepo, messageRepo, txManager, log),
		AssignTicket:   ticketuc.NewAssignTicketUseCase(ticketRepo, userRepo, txManager, log),
		ReopenTicket:   ticketuc.NewReopenTicketUseCase(ticketRepo, messageRepo, txManager, log),
		GetTicket:      ticketuc.NewGetTicketUseCase(ticketRepo, messageRepo, log),
		ListTickets:    ticketuc.NewListTicketsUseCase(ticketRepo, log),
		GetTicketStats: ticketuc.NewGetTicketStatsUseCase(ticketRepo, log),

		SubmitFeedback:          feedbackuc.NewSubmitFeedbackUseCase(feedbackRepo, log),
		ProcessFeedback:         feedbackuc.NewProcessFeedbackUseCase(feedbackRepo, log),
		ListUnprocessedFeedback: feedbackuc.NewListUnprocessedUseCase(feedbackRepo, log),
		GetFeedbackStats:        feedbackuc.NewGetFeedbackStatsUseCase(feedbackRepo, log),

		LogRequest:          analyticsuc.NewLogRequestUseCase(requestLogRepo, log),
		GetRequestStats:     analyticsuc.NewGetRequestStatsUseCase(requestLogRepo, log),
		GetDashboardSummary: analyticsuc.NewGetDashboardSummaryUseCase(requestLogRepo, userRepo, log),

		CreateNotification:   notifuc.NewCreateNotificationUseCase(notificationRepo, log),
		DispatchNotification: dispatchNotification,
	}

	limiter := ratelimit.NewRedisLimiter(redisClient, ratelimit.Config{
		PerMinute: cfg.RateLimit.PerMinute,
		PerHour:   cfg.RateLimit.PerHour,
	})
	router := bot.NewRouter(botService, usecases, wizardStore, limiter, log)

	// Broadcast scheduler.
	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	sendPending := notifuc.NewSendPendingJob(notificationRepo, dispatchNotification, log)
	interval := time.Duration(cfg.Broadcast.IntervalSeconds) * time.Second
	if err := schedulerManager.RegisterBroadcastJob(sendPending, interval); err != nil {
		return fmt.Errorf("failed to register broadcast job: %w", err)
	}
	schedulerManager.Start()
	defer func() {
		if err := schedulerManager.Stop(); err != nil {
			log.Errorw("failed to stop scheduler", "error", err)
		}
	}()

	if err := botService.SetMyCommands(telegram.GetDefaultUserCommands()); err != nil {
		log.Warnw("failed to set bot commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// HTTP server: health check always, webhook endpoint in webhook mode.
	server := httpserver.NewServer(cfg.Server, cfg.Telegram.WebhookSecret, router, log)
	goroutine.SafeGo(log, "http-server", func() {
		if err := server.Start(); err != nil {
			log.Errorw("http server failed", "error", err)
			stop()
		}
	})

	if cfg.Telegram.WebhookURL != "" {
		if err := botService.SetWebhook(cfg.Telegram.WebhookURL); err != nil {
			return fmt.Errorf("failed to set webhook: %w", err)
		}
		log.Infow("running in webhook mode", "url", cfg.Telegram.WebhookURL)
		<-ctx.Done()
	} else {
		if err := botService.DeleteWebhook(); err != nil {
			log.Warnw("failed to delete webhook", "error", err)
		}
		log.Infow("running in polling mode", "timeout", cfg.Telegram.PollTimeout)
		runPolling(ctx, botService, offsetStore, router, cfg.Telegram.PollTimeout, log)
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("failed to shut down http server", "error", err)
	}

	return nil
}

// runPolling long-polls getUpdates until the context is cancelled. The
// offset survives restarts in redis so processed updates are not replayed.
func runPolling(
	ctx context.Context,
	botService *telegram.BotService,
	offsetStore *cache.PollingOffsetStore,
	router *bot.Router,
	timeout int,
	log logger.Interface,
) {
	offset, err := offsetStore.GetOffset(ctx)
	if err != nil {
		log.Warnw("failed to load polling offset", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := botService.GetUpdatesWithContext(ctx, offset, timeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Errorw("failed to fetch updates", "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		for _, update := range updates {
			u := update
			goroutine.SafeGo(log, "update", func() {
				handleCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				router.HandleUpdate(handleCtx, u)
			})
			offset = u.UpdateID + 1
		}

		if len(updates) > 0 {
			if err := offsetStore.SaveOffset(ctx, offset); err != nil {
				log.Warnw("failed to save polling offset", "error", err)
			}
		}
	}
}
