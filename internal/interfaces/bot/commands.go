package bot

import (
	"context"
	"strconv"
	"strings"
	"time"

	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/telegram"
)

func (r *Router) handleCommand(ctx context.Context, sess *session, text string) {
	started := time.Now()

	command, args := splitCommand(text)

	// Any command aborts a wizard in progress.
	if err := r.wizards.Clear(ctx, sess.TelegramID); err != nil {
		r.logger.Warnw("failed to clear wizard state", "error", err, "telegram_id", sess.TelegramID)
	}

	switch command {
	case "start":
		r.handleStart(ctx, sess)
	case "help":
		r.handleHelp(sess)
	case "faq":
		r.handleFAQCategories(ctx, sess)
	case "search":
		if args == "" {
			r.send(sess.ChatID, "Напишите запрос после команды: <code>/search стипендия</code>")
		} else {
			r.handleSearch(ctx, sess, args)
		}
	case "tickets":
		r.handleMyTickets(ctx, sess)
	case "newticket":
		r.startTicketWizard(ctx, sess)
	case "schedule":
		r.handleSchedule(ctx, sess, args)
	case "docs":
		r.handleDocuments(ctx, sess, args)
	case "profile":
		r.handleProfile(ctx, sess)
	case "notifications":
		r.handleToggleNotifications(ctx, sess)
	case "favorites":
		r.handleFavorites(ctx, sess)
	case "feedback":
		r.startFeedbackWizard(ctx, sess)
	case "cancel":
		r.send(sess.ChatID, "Действие отменено.")
	case "inbox":
		r.handleInbox(ctx, sess)
	case "reviews":
		r.handleFeedbackInbox(ctx, sess)
	case "admin":
		r.handleAdminDashboard(ctx, sess)
	case "stats":
		r.handleRequestStats(ctx, sess, args)
	case "broadcast":
		r.startBroadcastWizard(ctx, sess)
	case "newcategory":
		r.startCategoryWizard(ctx, sess)
	case "newfaq":
		r.startFAQItemWizard(ctx, sess)
	case "newdoc":
		r.startDocumentWizard(ctx, sess)
	case "deldoc":
		r.handleRemoveDocument(ctx, sess, args)
	case "role":
		r.handleChangeRole(ctx, sess, args)
	case "ban":
		r.handleSetUserActive(ctx, sess, args, false)
	case "unban":
		r.handleSetUserActive(ctx, sess, args, true)
	default:
		r.send(sess.ChatID, "Неизвестная команда. Список команд: /help")
		r.track(ctx, sess, analytics.RequestCommand, command, "", analytics.ResponseNoResults, started)
		return
	}

	r.track(ctx, sess, analytics.RequestCommand, command, "", analytics.ResponseAnswered, started)
}

func splitCommand(text string) (string, string) {
	fields := strings.SplitN(text, " ", 2)
	command := strings.TrimPrefix(fields[0], "/")
	// Commands in groups arrive as /cmd@botname.
	if at := strings.Index(command, "@"); at >= 0 {
		command = command[:at]
	}
	args := ""
	if len(fields) > 1 {
		args = strings.TrimSpace(fields[1])
	}
	return strings.ToLower(command), args
}

func (r *Router) handleStart(ctx context.Context, sess *session) {
	var b strings.Builder
	b.WriteString("👋 Привет! Я бот поддержки университета.\n\n")
	b.WriteString("Я помогу найти ответ на вопрос, создать обращение в поддержку, ")
	b.WriteString("посмотреть расписание и скачать нужный документ.\n\n")
	b.WriteString("Просто напишите свой вопрос или выберите команду: /help")

	r.send(sess.ChatID, b.String())

	// Staff get the extended command menu in their chat.
	if sess.Role.IsStaff() {
		if err := r.api.SetMyCommandsForChat(sess.ChatID, telegram.GetStaffCommands()); err != nil {
			r.logger.Warnw("failed to set staff commands", "error", err, "chat_id", sess.ChatID)
		}
	}

	if !sess.IsOnboarded {
		r.startOnboardingWizard(ctx, sess)
	}
}

func (r *Router) handleHelp(sess *session) {
	var b strings.Builder
	b.WriteString("<b>Команды</b>\n")
	b.WriteString("/faq — частые вопросы по категориям\n")
	b.WriteString("/search — поиск ответа\n")
	b.WriteString("/tickets — мои обращения\n")
	b.WriteString("/newticket — новое обращение\n")
	b.WriteString("/schedule — расписание на неделю\n")
	b.WriteString("/docs — документы и шаблоны\n")
	b.WriteString("/profile — мой профиль\n")
	b.WriteString("/notifications — вкл/выкл уведомления\n")
	b.WriteString("/favorites — избранные вопросы\n")
	b.WriteString("/feedback — оценить бота\n")
	b.WriteString("/cancel — отменить текущее действие\n")

	if sess.Role.IsStaff() {
		b.WriteString("\n<b>Для сотрудников</b>\n")
		b.WriteString("/inbox — открытые обращения\n")
		b.WriteString("/reviews — неразобранные отзывы\n")
		b.WriteString("/admin — сводка\n")
		b.WriteString("/stats — статистика запросов\n")
		b.WriteString("/newcategory — новый раздел FAQ\n")
		b.WriteString("/newfaq — добавить вопрос\n")
		b.WriteString("/newdoc — добавить документ\n")
		b.WriteString("/deldoc — скрыть документ\n")
	}
	if sess.Role == "admin" {
		b.WriteString("/broadcast — рассылка\n")
		b.WriteString("/role — сменить роль пользователя\n")
		b.WriteString("/ban и /unban — блокировка пользователя\n")
	}

	r.send(sess.ChatID, b.String())
}

func (r *Router) handleProfile(ctx context.Context, sess *session) {
	result, err := r.usecases.GetProfile.Execute(ctx, useruc.GetProfileQuery{UserID: sess.UserID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	p := result.Profile

	var b strings.Builder
	b.WriteString("<b>Профиль</b>\n")
	b.WriteString("Имя: " + telegram.EscapeHTML(p.DisplayName) + "\n")
	if p.GroupName != "" {
		b.WriteString("Группа: " + telegram.EscapeHTML(p.GroupName) + "\n")
	}
	if p.Course > 0 {
		b.WriteString("Курс: " + strconv.Itoa(p.Course) + "\n")
	}
	if p.Faculty != "" {
		b.WriteString("Факультет: " + telegram.EscapeHTML(p.Faculty) + "\n")
	}
	if p.StudentID != "" {
		b.WriteString("Студ. билет: " + telegram.EscapeHTML(p.StudentID) + "\n")
	}
	b.WriteString("Роль: " + telegram.EscapeHTML(p.Role) + "\n")
	if p.IsVerified {
		b.WriteString("Статус: ✅ подтверждён\n")
	} else {
		b.WriteString("Статус: не подтверждён\n")
	}
	if p.NotificationsEnabled {
		b.WriteString("Уведомления: 🔔 включены\n")
	} else {
		b.WriteString("Уведомления: 🔕 выключены\n")
	}
	b.WriteString("\nОбновить данные: /start → анкета. Уведомления: /notifications")

	r.send(sess.ChatID, b.String())
}

func (r *Router) handleToggleNotifications(ctx context.Context, sess *session) {
	result, err := r.usecases.ToggleNotifications.Execute(ctx, useruc.ToggleNotificationsCommand{UserID: sess.UserID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if result.Enabled {
		r.send(sess.ChatID, "🔔 Уведомления включены.")
	} else {
		r.send(sess.ChatID, "🔕 Уведомления выключены.")
	}
}
