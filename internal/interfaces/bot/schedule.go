package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	docuc "unibot/internal/application/document/usecases"
	scheduc "unibot/internal/application/schedule/usecases"
	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/biztime"
)

var eventTypeIcons = map[string]string{
	"lesson":       "📚",
	"exam":         "📝",
	"consultation": "💬",
	"general":      "📣",
	"holiday":      "🏖",
	"deadline":     "⏰",
}

// handleSchedule shows the week for the caller's group; an argument narrows
// to one event type, e.g. /schedule exam, and "next" shows the nearest
// events regardless of the week boundary.
func (r *Router) handleSchedule(ctx context.Context, sess *session, args string) {
	started := time.Now()
	args = strings.TrimSpace(args)

	profile, err := r.usecases.GetProfile.Execute(ctx, useruc.GetProfileQuery{UserID: sess.UserID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	var result *scheduc.ListEventsResult
	title := "Расписание на неделю"
	if args == "next" || args == "ближайшие" {
		title = "Ближайшие события"
		result, err = r.usecases.ListUpcoming.Execute(ctx, scheduc.ListUpcomingQuery{
			GroupName: profile.Profile.GroupName,
			Faculty:   profile.Profile.Faculty,
			Course:    profile.Profile.Course,
		})
	} else {
		result, err = r.usecases.ListEvents.Execute(ctx, scheduc.ListEventsQuery{
			Type:      args,
			GroupName: profile.Profile.GroupName,
			Faculty:   profile.Profile.Faculty,
			Course:    profile.Profile.Course,
		})
	}
	if err != nil {
		r.replyError(sess.ChatID, err)
		r.track(ctx, sess, analytics.RequestSchedule, args, "", analytics.ResponseError, started)
		return
	}

	if len(result.Events) == 0 {
		r.send(sess.ChatID, "На ближайшую неделю событий нет.")
		r.track(ctx, sess, analytics.RequestSchedule, args, "", analytics.ResponseNoResults, started)
		return
	}

	var b strings.Builder
	b.WriteString("<b>" + title + "</b>\n")
	currentDay := ""
	for _, e := range result.Events {
		day := biztime.ToBizTimezone(e.StartsAt).Format("Mon 02.01")
		if day != currentDay {
			currentDay = day
			b.WriteString("\n<b>" + day + "</b>\n")
		}
		icon := eventTypeIcons[e.Type]
		if icon == "" {
			icon = "•"
		}
		b.WriteString(fmt.Sprintf("%s %s — %s",
			icon,
			biztime.ToBizTimezone(e.StartsAt).Format("15:04"),
			telegram.EscapeHTML(e.Title),
		))
		if e.Location != "" {
			b.WriteString(" (" + telegram.EscapeHTML(e.Location) + ")")
		}
		if e.IsRescheduled {
			b.WriteString(" ⚠️ перенесено")
		}
		b.WriteString("\n")
	}

	r.send(sess.ChatID, b.String())
	r.track(ctx, sess, analytics.RequestSchedule, args, "", analytics.ResponseAnswered, started)
}

// handleDocuments shows document categories; an argument is treated as a
// search query.
func (r *Router) handleDocuments(ctx context.Context, sess *session, args string) {
	started := time.Now()

	if args != "" {
		r.handleDocumentSearch(ctx, sess, args, started)
		return
	}

	categories, err := r.usecases.ListDocCategories.Execute(ctx)
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(categories.Categories) == 0 {
		r.send(sess.ChatID, "Документы пока не загружены.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(categories.Categories))
	for _, c := range categories.Categories {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("📂 "+c, "doc:cat:"+c),
		))
	}

	r.sendWithKeyboard(sess.ChatID,
		"<b>Документы</b>\nВыберите раздел или ищите: <code>/docs справка</code>",
		telegram.NewInlineKeyboard(rows...))
	r.track(ctx, sess, analytics.RequestDocument, "list", "", analytics.ResponseAnswered, started)
}

func (r *Router) handleDocumentCategory(ctx context.Context, sess *session, category string) {
	result, err := r.usecases.ListDocuments.Execute(ctx, docuc.ListDocumentsQuery{Category: category})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Documents) == 0 {
		r.send(sess.ChatID, "В этом разделе пока пусто.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Documents))
	for _, d := range result.Documents {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(d.Name, fmt.Sprintf("doc:get:%d", d.ID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID,
		"<b>"+telegram.EscapeHTML(category)+"</b>",
		telegram.NewInlineKeyboard(rows...))
}

func (r *Router) handleDocumentSearch(ctx context.Context, sess *session, query string, started time.Time) {
	result, err := r.usecases.SearchDocuments.Execute(ctx, docuc.SearchDocumentsQuery{Query: query})
	if err != nil {
		r.replyError(sess.ChatID, err)
		r.track(ctx, sess, analytics.RequestDocument, query, "", analytics.ResponseError, started)
		return
	}
	if len(result.Hits) == 0 {
		r.send(sess.ChatID, "Документов по запросу не нашлось.")
		r.track(ctx, sess, analytics.RequestDocument, query, "", analytics.ResponseNoResults, started)
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Hits))
	for _, hit := range result.Hits {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(hit.Name, fmt.Sprintf("doc:get:%d", hit.DocumentID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "Найденные документы:", telegram.NewInlineKeyboard(rows...))
	r.track(ctx, sess, analytics.RequestDocument, query, "", analytics.ResponseAnswered, started)
}

// handleDocumentGet delivers the file (or link) and counts the download.
func (r *Router) handleDocumentGet(ctx context.Context, sess *session, documentID uint) {
	result, err := r.usecases.GetDocument.Execute(ctx, docuc.GetDocumentQuery{
		DocumentID:    documentID,
		CountDownload: true,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	doc := result.Document

	if doc.HasFile {
		caption := doc.Name
		if doc.Description != "" {
			caption += "\n" + doc.Description
		}
		if err := r.api.SendDocument(sess.ChatID, doc.FileID, caption); err != nil {
			r.logger.Warnw("failed to send document", "error", err, "document_id", doc.ID)
			r.send(sess.ChatID, "Не удалось отправить файл, попробуйте позже.")
		}
		return
	}

	var b strings.Builder
	b.WriteString("<b>" + telegram.EscapeHTML(doc.Name) + "</b>\n")
	if doc.Description != "" {
		b.WriteString(telegram.EscapeHTML(doc.Description) + "\n")
	}
	if doc.URL != "" {
		b.WriteString("🔗 " + doc.URL)
	}
	r.send(sess.ChatID, b.String())
}
