// Package bot routes inbound Telegram updates to application use cases.
package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	analyticsuc "unibot/internal/application/analytics/usecases"
	docuc "unibot/internal/application/document/usecases"
	faquc "unibot/internal/application/faq/usecases"
	feedbackuc "unibot/internal/application/feedback/usecases"
	notifuc "unibot/internal/application/notification/usecases"
	scheduc "unibot/internal/application/schedule/usecases"
	ticketuc "unibot/internal/application/ticket/usecases"
	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/domain/analytics"
	"unibot/internal/domain/user"
	"unibot/internal/infrastructure/cache"
	"unibot/internal/infrastructure/ratelimit"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/errors"
	"unibot/internal/shared/logger"
)

// BotAPI is the slice of the Telegram client the router needs.
type BotAPI interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithInlineKeyboard(chatID int64, text string, keyboard any) error
	SendDocument(chatID int64, fileID string, caption string) error
	AnswerCallbackQuery(callbackQueryID string, text string, showAlert bool) error
	SetMyCommandsForChat(chatID int64, commands []telegram.BotCommand) error
}

// WizardStore keeps per-user multi-step conversation state.
type WizardStore interface {
	Get(ctx context.Context, telegramID int64) (*cache.WizardState, error)
	Set(ctx context.Context, telegramID int64, state *cache.WizardState) error
	Clear(ctx context.Context, telegramID int64) error
}

// UseCases bundles every executor the router dispatches to.
type UseCases struct {
	RegisterUser        useruc.RegisterUserExecutor
	GetProfile          useruc.GetProfileExecutor
	UpdateProfile       useruc.UpdateProfileExecutor
	ToggleNotifications useruc.ToggleNotificationsExecutor
	CompleteOnboarding  useruc.CompleteOnboardingExecutor
	GetUserStats        useruc.GetUserStatsExecutor
	ChangeRole          useruc.ChangeRoleExecutor
	SetUserActive       useruc.SetUserActiveExecutor

	SearchFAQ         faquc.SearchFAQExecutor
	ListFAQCategories faquc.ListCategoriesExecutor
	ListFAQItems      faquc.ListItemsExecutor
	ListPopularFAQ    faquc.ListPopularExecutor
	GetFAQItem        faquc.GetItemExecutor
	RateFAQItem       faquc.RateItemExecutor
	AddFavorite       faquc.AddFavoriteExecutor
	RemoveFavorite    faquc.RemoveFavoriteExecutor
	ListFavorites     faquc.ListFavoritesExecutor
	CreateFAQCategory faquc.CreateCategoryExecutor
	CreateFAQItem     faquc.CreateItemExecutor

	SearchDocuments   docuc.SearchDocumentsExecutor
	ListDocuments     docuc.ListDocumentsExecutor
	ListDocCategories docuc.ListCategoriesExecutor
	GetDocument       docuc.GetDocumentExecutor
	AddDocument       docuc.AddDocumentExecutor
	RemoveDocument    docuc.RemoveDocumentExecutor

	ListEvents   scheduc.ListEventsExecutor
	ListUpcoming scheduc.ListUpcomingExecutor

	CreateTicket   ticketuc.CreateTicketExecutor
	AddMessage     ticketuc.AddMessageExecutor
	ChangeStatus   ticketuc.ChangeStatusExecutor
	AssignTicket   ticketuc.AssignTicketExecutor
	ReopenTicket   ticketuc.ReopenTicketExecutor
	GetTicket      ticketuc.GetTicketExecutor
	ListTickets    ticketuc.ListTicketsExecutor
	GetTicketStats ticketuc.GetTicketStatsExecutor

	SubmitFeedback          feedbackuc.SubmitFeedbackExecutor
	ProcessFeedback         feedbackuc.ProcessFeedbackExecutor
	ListUnprocessedFeedback feedbackuc.ListUnprocessedExecutor
	GetFeedbackStats        feedbackuc.GetFeedbackStatsExecutor

	LogRequest          analyticsuc.LogRequestExecutor
	GetRequestStats     analyticsuc.GetRequestStatsExecutor
	GetDashboardSummary analyticsuc.GetDashboardSummaryExecutor

	CreateNotification   notifuc.CreateNotificationExecutor
	DispatchNotification notifuc.DispatchNotificationExecutor
}

// Router dispatches one update at a time: commands, callback queries, wizard
// replies, and free text (which falls through to FAQ auto search).
type Router struct {
	api      BotAPI
	usecases UseCases
	wizards  WizardStore
	limiter  ratelimit.Limiter
	logger   logger.Interface

	warnedMu sync.Mutex
	warned   map[int64]time.Time
}

// NewRouter builds a router. A nil limiter disables inbound throttling.
func NewRouter(api BotAPI, usecases UseCases, wizards WizardStore, limiter ratelimit.Limiter, log logger.Interface) *Router {
	return &Router{
		api:      api,
		usecases: usecases,
		wizards:  wizards,
		limiter:  limiter,
		logger:   log.Named("bot"),
		warned:   make(map[int64]time.Time),
	}
}

// session is the resolved caller of one update.
type session struct {
	TelegramID  int64
	ChatID      int64
	UserID      uint
	Role        user.Role
	IsOnboarded bool
}

// HandleUpdate processes a single inbound update. Errors are reported to the
// user and logged; the method itself never fails so one bad update cannot
// take down the polling loop.
func (r *Router) HandleUpdate(ctx context.Context, update telegram.Update) {
	switch {
	case update.CallbackQuery != nil:
		r.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		r.handleMessage(ctx, update.Message)
	}
}

func (r *Router) handleMessage(ctx context.Context, msg *telegram.Message) {
	if msg.From == nil || msg.Chat == nil || msg.From.IsBot {
		return
	}
	if !r.throttle(ctx, msg.From.ID, msg.Chat.ID) {
		return
	}

	sess, err := r.resolve(ctx, msg.From, msg.Chat.ID)
	if err != nil {
		r.logger.Errorw("failed to resolve user", "error", err, "telegram_id", msg.From.ID)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if strings.HasPrefix(text, "/") {
		r.handleCommand(ctx, sess, text)
		return
	}

	// An active wizard consumes plain text before auto search does.
	state, err := r.wizards.Get(ctx, sess.TelegramID)
	if err != nil {
		r.logger.Warnw("failed to load wizard state", "error", err, "telegram_id", sess.TelegramID)
	}
	if state != nil {
		r.continueWizard(ctx, sess, state, text, msg.Document)
		return
	}

	if text == "" {
		return
	}
	r.handleAutoSearch(ctx, sess, text)
}

// throttle checks the per-chat rate limit before any work is done. The first
// violation in a minute gets a warning message, the rest are dropped
// silently. Limiter failures let the update through.
func (r *Router) throttle(ctx context.Context, telegramID, chatID int64) bool {
	if r.limiter == nil {
		return true
	}

	allowed, err := r.limiter.Allow(ctx, fmt.Sprintf("chat:%d", telegramID))
	if err != nil {
		r.logger.Warnw("rate limiter unavailable", "error", err, "telegram_id", telegramID)
		return true
	}
	if allowed {
		return true
	}

	r.warnedMu.Lock()
	last, seen := r.warned[telegramID]
	now := time.Now()
	if !seen || now.Sub(last) >= time.Minute {
		r.warned[telegramID] = now
		seen = false
	}
	r.warnedMu.Unlock()

	if !seen {
		r.send(chatID, "Слишком много запросов, подождите немного.")
	}
	return false
}

func (r *Router) resolve(ctx context.Context, from *telegram.User, chatID int64) (*session, error) {
	result, err := r.usecases.RegisterUser.Execute(ctx, useruc.RegisterUserCommand{
		TelegramID: from.ID,
		Username:   from.Username,
		FirstName:  from.FirstName,
		LastName:   from.LastName,
	})
	if err != nil {
		return nil, err
	}

	return &session{
		TelegramID:  from.ID,
		ChatID:      chatID,
		UserID:      result.UserID,
		Role:        user.Role(result.Role),
		IsOnboarded: result.IsOnboarded,
	}, nil
}

// track records the interaction for analytics. Failures are swallowed inside
// the use case.
func (r *Router) track(ctx context.Context, sess *session, reqType analytics.RequestType, text, category string, respType analytics.ResponseType, started time.Time) {
	_ = r.usecases.LogRequest.Execute(ctx, analyticsuc.LogRequestCommand{
		UserID:         sess.UserID,
		RequestType:    reqType,
		Text:           text,
		Category:       category,
		ResponseType:   respType,
		ResponseTimeMs: time.Since(started).Milliseconds(),
	})
}

func (r *Router) send(chatID int64, text string) {
	if err := r.api.SendMessage(chatID, text); err != nil {
		r.logger.Warnw("failed to send message", "error", err, "chat_id", chatID)
	}
}

func (r *Router) sendWithKeyboard(chatID int64, text string, keyboard any) {
	if err := r.api.SendMessageWithInlineKeyboard(chatID, text, keyboard); err != nil {
		r.logger.Warnw("failed to send message", "error", err, "chat_id", chatID)
	}
}

// replyError turns an application error into a user-facing message.
func (r *Router) replyError(chatID int64, err error) {
	switch {
	case errors.IsValidationError(err):
		r.send(chatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err)))
	case errors.IsNotFoundError(err):
		r.send(chatID, "Ничего не найдено.")
	case errors.IsForbiddenError(err):
		r.send(chatID, "Недостаточно прав для этого действия.")
	case errors.IsConflictError(err):
		r.send(chatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err)))
	default:
		r.send(chatID, "Что-то пошло не так, попробуйте позже.")
	}
}

func appErrorMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
