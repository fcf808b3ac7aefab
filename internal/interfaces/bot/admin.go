package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	analyticsuc "unibot/internal/application/analytics/usecases"
	feedbackuc "unibot/internal/application/feedback/usecases"
	notifuc "unibot/internal/application/notification/usecases"
	"unibot/internal/infrastructure/cache"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/biztime"
)

func (r *Router) handleAdminDashboard(ctx context.Context, sess *session) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	var b strings.Builder
	b.WriteString("<b>Сводка</b>\n")

	if summary, err := r.usecases.GetDashboardSummary.Execute(ctx); err == nil {
		b.WriteString(fmt.Sprintf("\n<b>Запросы</b>\nСегодня: %d (вчера %d, %+.1f%%)\n",
			summary.RequestsToday, summary.RequestsYesterday, summary.ChangePercent))
		b.WriteString(fmt.Sprintf("Активных за 7 дней: %d, новых: %d\n",
			summary.ActiveUsers7d, summary.NewUsers7d))
	} else {
		r.logger.Warnw("failed to load dashboard summary", "error", err)
	}

	if stats, err := r.usecases.GetTicketStats.Execute(ctx); err == nil {
		b.WriteString(fmt.Sprintf("\n<b>Обращения</b>\nВсего: %d, без исполнителя: %d\n",
			stats.Total, stats.Unassigned))
		for _, status := range []string{"open", "in_progress", "waiting", "resolved", "closed"} {
			if count := stats.ByStatus[status]; count > 0 {
				b.WriteString(fmt.Sprintf("%s: %d\n", statusTitle(status), count))
			}
		}
		if stats.AvgResolutionDays > 0 {
			b.WriteString(fmt.Sprintf("Среднее время решения: %.1f дн.\n", stats.AvgResolutionDays))
		}
	} else {
		r.logger.Warnw("failed to load ticket stats", "error", err)
	}

	if stats, err := r.usecases.GetUserStats.Execute(ctx); err == nil {
		b.WriteString(fmt.Sprintf("\n<b>Пользователи</b>\nВсего: %d, активных: %d, новых сегодня: %d\n",
			stats.Total, stats.Active, stats.NewToday))
	} else {
		r.logger.Warnw("failed to load user stats", "error", err)
	}

	if stats, err := r.usecases.GetFeedbackStats.Execute(ctx); err == nil {
		b.WriteString(fmt.Sprintf("\n<b>Отзывы</b>\nСредняя оценка: %.2f\n", stats.AvgRating))
		b.WriteString(fmt.Sprintf("Предложений: %d, жалоб: %d, не разобрано: %d\n",
			stats.SuggestionCount, stats.ComplaintCount, stats.Unprocessed))
	} else {
		r.logger.Warnw("failed to load feedback stats", "error", err)
	}

	r.send(sess.ChatID, b.String())
}

// handleRequestStats renders the request breakdown; the argument is the
// window in days, default one week.
func (r *Router) handleRequestStats(ctx context.Context, sess *session, args string) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	days := 0
	if args != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			r.send(sess.ChatID, "Укажите число дней: <code>/stats 30</code>")
			return
		}
		days = parsed
	}

	result, err := r.usecases.GetRequestStats.Execute(ctx, analyticsuc.GetRequestStatsQuery{Days: days})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>Статистика за %d дн.</b>\nВсего запросов: %d\n", result.Days, result.Total))
	if result.AvgResponseMs > 0 {
		b.WriteString(fmt.Sprintf("Среднее время ответа: %.0f мс\n", result.AvgResponseMs))
	}

	if len(result.ByType) > 0 {
		b.WriteString("\n<b>По типам</b>\n")
		for reqType, count := range result.ByType {
			b.WriteString(fmt.Sprintf("%s: %d\n", reqType, count))
		}
	}

	if len(result.TopCategories) > 0 {
		b.WriteString("\n<b>Популярные темы</b>\n")
		for _, c := range result.TopCategories {
			b.WriteString(fmt.Sprintf("%s: %d\n", telegram.EscapeHTML(c.Category), c.Count))
		}
	}

	r.send(sess.ChatID, b.String())
}

// handleFeedbackInbox lists unprocessed feedback with a done button per
// entry.
func (r *Router) handleFeedbackInbox(ctx context.Context, sess *session) {
	result, err := r.usecases.ListUnprocessedFeedback.Execute(ctx, feedbackuc.ListUnprocessedQuery{
		ActorRole: sess.Role,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Entries) == 0 {
		r.send(sess.ChatID, "Неразобранных отзывов нет. 🎉")
		return
	}

	var b strings.Builder
	b.WriteString("<b>Неразобранные отзывы</b>\n")
	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Entries))
	for i, entry := range result.Entries {
		b.WriteString(fmt.Sprintf("\n%d. ", i+1))
		switch entry.Type {
		case "rating":
			b.WriteString(fmt.Sprintf("Оценка %d/5", entry.Rating))
		case "complaint":
			b.WriteString("Жалоба: " + telegram.EscapeHTML(entry.Text))
		default:
			b.WriteString("Предложение: " + telegram.EscapeHTML(entry.Text))
		}
		b.WriteString("\n" + biztime.FormatInBizTimezone(entry.CreatedAt, "02.01.2006 15:04") + "\n")

		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(
				fmt.Sprintf("✅ %d разобрано", i+1),
				fmt.Sprintf("fb:done:%d", entry.ID),
			),
		))
	}

	r.sendWithKeyboard(sess.ChatID, b.String(), telegram.NewInlineKeyboard(rows...))
}

// --- broadcast ---

func (r *Router) startBroadcastWizard(ctx context.Context, sess *session) {
	if !sess.Role.IsAdmin() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	r.startWizard(ctx, sess, flowBroadcast, "title", nil)
	r.send(sess.ChatID, "📢 Новая рассылка.\nЗаголовок сообщения?\nОтмена: /cancel")
}

func (r *Router) continueBroadcast(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	switch state.Step {
	case "title":
		state.Set("title", text)
		r.advanceWizard(ctx, sess, state, "message")
		r.send(sess.ChatID, "Текст рассылки?")
	case "message":
		state.Set("message", text)
		r.advanceWizard(ctx, sess, state, "confirm")

		preview := fmt.Sprintf("📢 <b>%s</b>\n\n%s\n\nОтправить всем активным пользователям?",
			telegram.EscapeHTML(state.Value("title")),
			telegram.EscapeHTML(text),
		)
		r.sendWithKeyboard(sess.ChatID, preview, telegram.NewInlineKeyboard(
			telegram.NewInlineKeyboardRow(
				telegram.NewInlineKeyboardButton("✅ Отправить", "adm:bc:send"),
				telegram.NewInlineKeyboardButton("❌ Отмена", "adm:bc:cancel"),
			),
		))
	case "confirm":
		r.send(sess.ChatID, "Нажмите кнопку под предпросмотром или /cancel.")
	}
}

func (r *Router) dispatchAdminCallback(ctx context.Context, sess *session, parts []string) {
	if len(parts) != 2 {
		return
	}

	if parts[0] == "fc" {
		if id, ok := parseID(parts[1]); ok {
			r.faqItemCategoryChosen(ctx, sess, id)
		}
		return
	}

	if parts[0] != "bc" {
		return
	}

	state, err := r.wizards.Get(ctx, sess.TelegramID)
	if err != nil || state == nil || state.Flow != flowBroadcast {
		r.send(sess.ChatID, "Рассылка уже неактуальна, начните заново: /broadcast")
		return
	}

	if parts[1] == "cancel" {
		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Рассылка отменена.")
		return
	}

	created, err := r.usecases.CreateNotification.Execute(ctx, notifuc.CreateNotificationCommand{
		ActorRole: sess.Role,
		Title:     state.Value("title"),
		Message:   state.Value("message"),
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		r.finishWizard(ctx, sess)
		return
	}
	r.finishWizard(ctx, sess)

	result, err := r.usecases.DispatchNotification.Execute(ctx, notifuc.DispatchNotificationCommand{
		NotificationID: created.NotificationID,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	r.send(sess.ChatID, fmt.Sprintf("Рассылка отправлена: доставлено %d, не доставлено %d.",
		result.Sent, result.Failed))
}
