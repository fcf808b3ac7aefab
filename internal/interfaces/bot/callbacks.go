package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	faquc "unibot/internal/application/faq/usecases"
	feedbackuc "unibot/internal/application/feedback/usecases"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/errors"
)

// handleCallback routes inline keyboard presses. Callback data is a colon
// separated path: "faq:item:12", "ticket:status:5:resolved".
func (r *Router) handleCallback(ctx context.Context, cb *telegram.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return
	}
	if !r.throttle(ctx, cb.From.ID, cb.Message.Chat.ID) {
		if err := r.api.AnswerCallbackQuery(cb.ID, "Слишком много запросов", false); err != nil {
			r.logger.Warnw("failed to answer callback query", "error", err)
		}
		return
	}

	sess, err := r.resolve(ctx, cb.From, cb.Message.Chat.ID)
	if err != nil {
		r.logger.Errorw("failed to resolve user", "error", err, "telegram_id", cb.From.ID)
		return
	}

	ack := ""
	parts := strings.Split(cb.Data, ":")
	switch parts[0] {
	case "faq":
		ack = r.dispatchFAQCallback(ctx, sess, parts[1:])
	case "doc":
		switch {
		case len(parts) == 3 && parts[1] == "get":
			if id, ok := parseID(parts[2]); ok {
				r.handleDocumentGet(ctx, sess, id)
			}
		case len(parts) >= 3 && parts[1] == "cat":
			// Category names may contain colons.
			r.handleDocumentCategory(ctx, sess, strings.Join(parts[2:], ":"))
		}
	case "ticket":
		ack = r.dispatchTicketCallback(ctx, sess, parts[1:])
	case "fb":
		if len(parts) != 3 {
			break
		}
		switch parts[1] {
		case "rate":
			r.handleFeedbackRating(ctx, sess, parts[2])
			ack = "Спасибо!"
		case "done":
			if id, ok := parseID(parts[2]); ok {
				if err := r.usecases.ProcessFeedback.Execute(ctx, feedbackuc.ProcessFeedbackCommand{
					FeedbackID: id,
					ActorRole:  sess.Role,
				}); err != nil {
					ack = "Не получилось отметить"
				} else {
					ack = "Отмечено как разобранное"
				}
			}
		}
	case "adm":
		r.dispatchAdminCallback(ctx, sess, parts[1:])
	}

	if err := r.api.AnswerCallbackQuery(cb.ID, ack, false); err != nil {
		r.logger.Warnw("failed to answer callback query", "error", err)
	}
}

func (r *Router) dispatchFAQCallback(ctx context.Context, sess *session, parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	switch parts[0] {
	case "pop":
		r.handlePopularFAQ(ctx, sess)
	case "cat":
		if len(parts) != 2 {
			return ""
		}
		if id, ok := parseID(parts[1]); ok {
			r.handleFAQItems(ctx, sess, id)
		}
	case "item":
		if len(parts) != 2 {
			return ""
		}
		if id, ok := parseID(parts[1]); ok {
			r.handleFAQItem(ctx, sess, id)
		}
	case "rate":
		if len(parts) != 3 {
			return ""
		}
		id, ok := parseID(parts[1])
		if !ok {
			return ""
		}
		result, err := r.usecases.RateFAQItem.Execute(ctx, faquc.RateItemCommand{
			ItemID:  id,
			UserID:  sess.UserID,
			Helpful: parts[2] == "up",
		})
		if err != nil {
			return "Не получилось сохранить оценку"
		}
		if !result.Changed {
			return "Вы уже голосовали"
		}
		return fmt.Sprintf("👍 %d · 👎 %d", result.HelpfulCount, result.NotHelpfulCount)
	case "fav":
		if len(parts) != 3 {
			return ""
		}
		id, ok := parseID(parts[2])
		if !ok {
			return ""
		}
		cmd := faquc.FavoriteCommand{UserID: sess.UserID, ItemID: id}
		if parts[1] == "add" {
			if err := r.usecases.AddFavorite.Execute(ctx, cmd); err != nil {
				if errors.IsConflictError(err) {
					return "Уже в избранном"
				}
				return "Не получилось добавить"
			}
			return "⭐ Добавлено в избранное"
		}
		if err := r.usecases.RemoveFavorite.Execute(ctx, cmd); err != nil {
			return "Не получилось убрать"
		}
		return "Убрано из избранного"
	}
	return ""
}

func (r *Router) dispatchTicketCallback(ctx context.Context, sess *session, parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	switch parts[0] {
	case "new":
		r.startTicketWizard(ctx, sess)
	case "view":
		if len(parts) == 2 {
			if id, ok := parseID(parts[1]); ok {
				r.handleTicketView(ctx, sess, id)
			}
		}
	case "reply":
		if len(parts) == 2 {
			if id, ok := parseID(parts[1]); ok {
				r.startTicketReplyWizard(ctx, sess, id)
			}
		}
	case "take":
		if len(parts) == 2 {
			if id, ok := parseID(parts[1]); ok {
				r.handleTicketTake(ctx, sess, id)
			}
		}
	case "reopen":
		if len(parts) == 2 {
			if id, ok := parseID(parts[1]); ok {
				r.handleTicketReopen(ctx, sess, id)
			}
		}
	case "status":
		if len(parts) == 3 {
			if id, ok := parseID(parts[1]); ok {
				r.handleTicketStatus(ctx, sess, id, parts[2])
			}
		}
	}
	return ""
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
