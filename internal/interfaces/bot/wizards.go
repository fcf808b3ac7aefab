package bot

import (
	"context"
	"strconv"
	"strings"

	feedbackuc "unibot/internal/application/feedback/usecases"
	ticketuc "unibot/internal/application/ticket/usecases"
	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/infrastructure/cache"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/errors"
)

const (
	flowOnboarding  = "onboarding"
	flowTicket      = "ticket"
	flowTicketReply = "ticket_reply"
	flowFeedback    = "feedback"
	flowBroadcast   = "broadcast"
	flowFAQCategory = "faq_category"
	flowFAQItem     = "faq_item"
	flowDocument    = "document"
)

func (r *Router) startWizard(ctx context.Context, sess *session, flow, step string, data map[string]string) {
	state := &cache.WizardState{Flow: flow, Step: step, Data: data}
	if err := r.wizards.Set(ctx, sess.TelegramID, state); err != nil {
		r.logger.Errorw("failed to start wizard", "error", err, "flow", flow)
		r.send(sess.ChatID, "Что-то пошло не так, попробуйте позже.")
	}
}

func (r *Router) advanceWizard(ctx context.Context, sess *session, state *cache.WizardState, step string) {
	state.Step = step
	if err := r.wizards.Set(ctx, sess.TelegramID, state); err != nil {
		r.logger.Errorw("failed to advance wizard", "error", err, "flow", state.Flow)
	}
}

func (r *Router) finishWizard(ctx context.Context, sess *session) {
	if err := r.wizards.Clear(ctx, sess.TelegramID); err != nil {
		r.logger.Warnw("failed to clear wizard state", "error", err, "telegram_id", sess.TelegramID)
	}
}

// continueWizard feeds one reply into the active flow. Only the document
// flow cares about an attached file; the rest consume text.
func (r *Router) continueWizard(ctx context.Context, sess *session, state *cache.WizardState, text string, attachment *telegram.Document) {
	switch state.Flow {
	case flowOnboarding:
		r.continueOnboarding(ctx, sess, state, text)
	case flowTicket:
		r.continueTicket(ctx, sess, state, text)
	case flowTicketReply:
		r.continueTicketReply(ctx, sess, state, text)
	case flowFeedback:
		r.continueFeedback(ctx, sess, text)
	case flowBroadcast:
		r.continueBroadcast(ctx, sess, state, text)
	case flowFAQCategory:
		r.continueCategoryWizard(ctx, sess, state, text)
	case flowFAQItem:
		r.continueFAQItemWizard(ctx, sess, state, text)
	case flowDocument:
		r.continueDocumentWizard(ctx, sess, state, text, attachment)
	default:
		r.finishWizard(ctx, sess)
	}
}

// --- onboarding ---

func (r *Router) startOnboardingWizard(ctx context.Context, sess *session) {
	r.startWizard(ctx, sess, flowOnboarding, "full_name", nil)
	r.send(sess.ChatID, "Давайте познакомимся. Как вас зовут? (Фамилия Имя)\nПропустить анкету: /cancel")
}

func (r *Router) continueOnboarding(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	switch state.Step {
	case "full_name":
		state.Set("full_name", text)
		r.advanceWizard(ctx, sess, state, "group")
		r.send(sess.ChatID, "Из какой вы группы? Например: <code>ИБ20-01</code>")
	case "group":
		state.Set("group", text)
		r.advanceWizard(ctx, sess, state, "course")
		r.send(sess.ChatID, "На каком вы курсе? (1-6)")
	case "course":
		course, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			r.send(sess.ChatID, "Курс — это число от 1 до 6. Попробуйте ещё раз.")
			return
		}

		fullName := state.Value("full_name")
		group := state.Value("group")
		_, err = r.usecases.UpdateProfile.Execute(ctx, useruc.UpdateProfileCommand{
			UserID:    sess.UserID,
			FullName:  &fullName,
			GroupName: &group,
			Course:    &course,
		})
		if err != nil {
			if errors.IsValidationError(err) {
				r.send(sess.ChatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err))+"\nНачните заново: /start")
			} else {
				r.replyError(sess.ChatID, err)
			}
			r.finishWizard(ctx, sess)
			return
		}

		if err := r.usecases.CompleteOnboarding.Execute(ctx, useruc.CompleteOnboardingCommand{UserID: sess.UserID}); err != nil {
			r.logger.Warnw("failed to complete onboarding", "error", err, "user_id", sess.UserID)
		}
		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Готово! ✅ Теперь расписание и рассылки будут для вашей группы.\nЧто дальше: /help")
	}
}

// --- ticket creation ---

func (r *Router) startTicketWizard(ctx context.Context, sess *session) {
	r.startWizard(ctx, sess, flowTicket, "subject", nil)
	r.send(sess.ChatID, "📨 Новое обращение.\nКоротко опишите тему (например: «Не работает пропуск»).\nОтмена: /cancel")
}

func (r *Router) continueTicket(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	switch state.Step {
	case "subject":
		state.Set("subject", text)
		r.advanceWizard(ctx, sess, state, "description")
		r.send(sess.ChatID, "Теперь опишите проблему подробнее: что случилось, когда, что уже пробовали.")
	case "description":
		result, err := r.usecases.CreateTicket.Execute(ctx, ticketuc.CreateTicketCommand{
			OwnerID:     sess.UserID,
			Subject:     state.Value("subject"),
			Description: text,
		})
		if err != nil {
			if errors.IsValidationError(err) {
				r.send(sess.ChatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err))+"\nПопробуйте сформулировать подробнее.")
				return
			}
			r.replyError(sess.ChatID, err)
			r.finishWizard(ctx, sess)
			return
		}

		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Обращение <b>"+result.Number+"</b> создано. Поддержка ответит здесь же.\nСвои обращения: /tickets")
	}
}

// --- ticket reply ---

func (r *Router) startTicketReplyWizard(ctx context.Context, sess *session, ticketID uint) {
	r.startWizard(ctx, sess, flowTicketReply, "body", map[string]string{
		"ticket_id": strconv.FormatUint(uint64(ticketID), 10),
	})
	r.send(sess.ChatID, "Напишите сообщение, я добавлю его в обращение.\nОтмена: /cancel")
}

func (r *Router) continueTicketReply(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	ticketID, ok := parseID(state.Value("ticket_id"))
	if !ok {
		r.finishWizard(ctx, sess)
		return
	}

	_, err := r.usecases.AddMessage.Execute(ctx, ticketuc.AddMessageCommand{
		TicketID:   ticketID,
		AuthorID:   sess.UserID,
		AuthorRole: sess.Role,
		Body:       text,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		r.finishWizard(ctx, sess)
		return
	}

	r.finishWizard(ctx, sess)
	r.send(sess.ChatID, "Сообщение добавлено. ✉️")
}

// --- feedback ---

func (r *Router) startFeedbackWizard(ctx context.Context, sess *session) {
	keyboard := telegram.NewInlineKeyboard(telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("1", "fb:rate:1"),
		telegram.NewInlineKeyboardButton("2", "fb:rate:2"),
		telegram.NewInlineKeyboardButton("3", "fb:rate:3"),
		telegram.NewInlineKeyboardButton("4", "fb:rate:4"),
		telegram.NewInlineKeyboardButton("5", "fb:rate:5"),
	))

	r.startWizard(ctx, sess, flowFeedback, "text", nil)
	r.sendWithKeyboard(sess.ChatID,
		"Оцените бота от 1 до 5 — или напишите текстом, что стоит улучшить.",
		keyboard)
}

func (r *Router) continueFeedback(ctx context.Context, sess *session, text string) {
	_, err := r.usecases.SubmitFeedback.Execute(ctx, feedbackuc.SubmitFeedbackCommand{
		UserID: sess.UserID,
		Type:   "suggestion",
		Text:   text,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	r.finishWizard(ctx, sess)
	r.send(sess.ChatID, "Спасибо! Передал команде. 🙌")
}

func (r *Router) handleFeedbackRating(ctx context.Context, sess *session, raw string) {
	rating, err := strconv.Atoi(raw)
	if err != nil {
		return
	}

	_, err = r.usecases.SubmitFeedback.Execute(ctx, feedbackuc.SubmitFeedbackCommand{
		UserID: sess.UserID,
		Type:   "rating",
		Rating: rating,
	})
	if err != nil {
		r.logger.Warnw("failed to submit rating", "error", err, "user_id", sess.UserID)
		return
	}

	r.finishWizard(ctx, sess)
	r.send(sess.ChatID, "Спасибо за оценку! ⭐")
}
