package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	ticketuc "unibot/internal/application/ticket/usecases"
	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/biztime"
)

var statusTitles = map[string]string{
	"open":        "🆕 открыто",
	"in_progress": "⏳ в работе",
	"waiting":     "💬 ждёт ответа",
	"resolved":    "✅ решено",
	"closed":      "🔒 закрыто",
}

func statusTitle(status string) string {
	if title, ok := statusTitles[status]; ok {
		return title
	}
	return status
}

func (r *Router) handleMyTickets(ctx context.Context, sess *session) {
	started := time.Now()

	result, err := r.usecases.ListTickets.Execute(ctx, ticketuc.ListTicketsQuery{
		RequesterID: sess.UserID,
		Role:        sess.Role,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	if len(result.Tickets) == 0 {
		r.sendWithKeyboard(sess.ChatID, "У вас пока нет обращений.",
			telegram.NewInlineKeyboard(telegram.NewInlineKeyboardRow(
				telegram.NewInlineKeyboardButton("📨 Создать обращение", "ticket:new"),
			)))
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Tickets)+1)
	for _, t := range result.Tickets {
		label := fmt.Sprintf("%s · %s", t.Number, t.Subject)
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(label, fmt.Sprintf("ticket:view:%d", t.ID)),
		))
	}
	rows = append(rows, telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("📨 Новое обращение", "ticket:new"),
	))

	r.sendWithKeyboard(sess.ChatID, "<b>Мои обращения</b>", telegram.NewInlineKeyboard(rows...))
	r.track(ctx, sess, analytics.RequestTicket, "list", "", analytics.ResponseAnswered, started)
}

func (r *Router) handleTicketView(ctx context.Context, sess *session, ticketID uint) {
	result, err := r.usecases.GetTicket.Execute(ctx, ticketuc.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: sess.UserID,
		Role:        sess.Role,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	t := result.Ticket

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<b>%s</b> · %s\n", t.Number, statusTitle(t.Status)))
	b.WriteString("<b>" + telegram.EscapeHTML(t.Subject) + "</b>\n")
	b.WriteString("Создано: " + biztime.FormatInBizTimezone(t.CreatedAt, "02.01.2006 15:04") + "\n")

	for _, m := range t.Messages {
		author := "Вы"
		if m.IsFromStaff {
			author = "Поддержка"
		}
		if m.IsInternal {
			author = "🔒 " + author
		}
		b.WriteString(fmt.Sprintf("\n<b>%s</b> · %s\n%s\n",
			author,
			biztime.FormatInBizTimezone(m.CreatedAt, "02.01 15:04"),
			telegram.EscapeHTML(m.Body),
		))
	}
	rows := [][]telegram.InlineKeyboardButton{
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("✍️ Ответить", fmt.Sprintf("ticket:reply:%d", t.ID)),
		),
	}
	if t.Status == "resolved" && t.OwnerID == sess.UserID {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("↩️ Переоткрыть", fmt.Sprintf("ticket:reopen:%d", t.ID)),
		))
	}
	if sess.Role.IsStaff() {
		if t.AssigneeID == nil {
			rows = append(rows, telegram.NewInlineKeyboardRow(
				telegram.NewInlineKeyboardButton("👤 Взять себе", fmt.Sprintf("ticket:take:%d", t.ID)),
			))
		}
		rows = append(rows, staffStatusRow(t.ID, t.Status)...)
	}

	r.sendWithKeyboard(sess.ChatID, b.String(), telegram.NewInlineKeyboard(rows...))
}

func staffStatusRow(ticketID uint, current string) [][]telegram.InlineKeyboardButton {
	var buttons []telegram.InlineKeyboardButton
	for _, next := range []struct {
		status string
		label  string
	}{
		{"in_progress", "⏳ В работу"},
		{"waiting", "💬 Ждёт ответа"},
		{"resolved", "✅ Решено"},
		{"closed", "🔒 Закрыть"},
	} {
		if next.status == current {
			continue
		}
		buttons = append(buttons, telegram.NewInlineKeyboardButton(
			next.label, fmt.Sprintf("ticket:status:%d:%s", ticketID, next.status),
		))
	}
	return [][]telegram.InlineKeyboardButton{
		buttons[:2],
		buttons[2:],
	}
}

// handleTicketTake assigns the ticket to the staff member who pressed the
// button.
func (r *Router) handleTicketTake(ctx context.Context, sess *session, ticketID uint) {
	result, err := r.usecases.AssignTicket.Execute(ctx, ticketuc.AssignTicketCommand{
		TicketID:   ticketID,
		ActorRole:  sess.Role,
		AssigneeID: sess.UserID,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	r.send(sess.ChatID, fmt.Sprintf("Обращение закреплено за вами, статус: %s.", statusTitle(result.Status)))
}

func (r *Router) handleTicketReopen(ctx context.Context, sess *session, ticketID uint) {
	_, err := r.usecases.ReopenTicket.Execute(ctx, ticketuc.ReopenTicketCommand{
		TicketID:    ticketID,
		RequesterID: sess.UserID,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	r.send(sess.ChatID, "Обращение переоткрыто, поддержка увидит его снова.")
}

func (r *Router) handleTicketStatus(ctx context.Context, sess *session, ticketID uint, newStatus string) {
	result, err := r.usecases.ChangeStatus.Execute(ctx, ticketuc.ChangeStatusCommand{
		TicketID:  ticketID,
		ActorID:   sess.UserID,
		ActorRole: sess.Role,
		NewStatus: newStatus,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	r.send(sess.ChatID, fmt.Sprintf("Статус: %s → %s", statusTitle(result.OldStatus), statusTitle(result.NewStatus)))
}

// handleInbox lists unassigned and active tickets for staff triage.
func (r *Router) handleInbox(ctx context.Context, sess *session) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	result, err := r.usecases.ListTickets.Execute(ctx, ticketuc.ListTicketsQuery{
		RequesterID: sess.UserID,
		Role:        sess.Role,
		ActiveOnly:  true,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Tickets) == 0 {
		r.send(sess.ChatID, "Открытых обращений нет. 🎉")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		marker := ""
		if t.AssigneeID == nil {
			marker = "❗ "
		}
		label := fmt.Sprintf("%s%s · %s", marker, t.Number, t.Subject)
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(label, fmt.Sprintf("ticket:view:%d", t.ID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "<b>Открытые обращения</b>\n❗ — без исполнителя", telegram.NewInlineKeyboard(rows...))
}
