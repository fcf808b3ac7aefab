package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	faquc "unibot/internal/application/faq/usecases"
	"unibot/internal/domain/analytics"
	"unibot/internal/infrastructure/telegram"
)

func (r *Router) handleFAQCategories(ctx context.Context, sess *session) {
	result, err := r.usecases.ListFAQCategories.Execute(ctx)
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Categories) == 0 {
		r.send(sess.ChatID, "Разделы пока не заполнены.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Categories)+1)
	rows = append(rows, telegram.NewInlineKeyboardRow(
		telegram.NewInlineKeyboardButton("🔥 Популярные вопросы", "faq:pop"),
	))
	for _, c := range result.Categories {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(c.Title, fmt.Sprintf("faq:cat:%d", c.ID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "<b>Частые вопросы</b>\nВыберите раздел:", telegram.NewInlineKeyboard(rows...))
}

// handlePopularFAQ shows the most viewed questions across all categories.
func (r *Router) handlePopularFAQ(ctx context.Context, sess *session) {
	result, err := r.usecases.ListPopularFAQ.Execute(ctx, faquc.ListPopularQuery{})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Items) == 0 {
		r.send(sess.ChatID, "Пока нечего показать, загляните в разделы: /faq")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(item.Question, fmt.Sprintf("faq:item:%d", item.ID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "<b>Популярные вопросы</b>", telegram.NewInlineKeyboard(rows...))
}

func (r *Router) handleFAQItems(ctx context.Context, sess *session, categoryID uint) {
	result, err := r.usecases.ListFAQItems.Execute(ctx, faquc.ListItemsQuery{CategoryID: categoryID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Items) == 0 {
		r.send(sess.ChatID, "В этом разделе пока нет вопросов.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Items))
	for _, item := range result.Items {
		label := item.Question
		if item.IsPinned {
			label = "📌 " + label
		}
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(label, fmt.Sprintf("faq:item:%d", item.ID)),
		))
	}

	title := "<b>" + telegram.EscapeHTML(result.CategoryTitle) + "</b>"
	r.sendWithKeyboard(sess.ChatID, title, telegram.NewInlineKeyboard(rows...))
}

func (r *Router) handleFAQItem(ctx context.Context, sess *session, itemID uint) {
	started := time.Now()

	result, err := r.usecases.GetFAQItem.Execute(ctx, faquc.GetItemQuery{ItemID: itemID, UserID: sess.UserID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		r.track(ctx, sess, analytics.RequestFAQView, "", "", analytics.ResponseError, started)
		return
	}
	item := result.Item

	var b strings.Builder
	b.WriteString("<b>" + telegram.EscapeHTML(item.Question) + "</b>\n\n")
	b.WriteString(item.AnswerHTML)
	for _, link := range item.Links {
		b.WriteString(fmt.Sprintf("\n🔗 <a href=\"%s\">%s</a>", link.URL, telegram.EscapeHTML(link.Label)))
	}

	favButton := telegram.NewInlineKeyboardButton("⭐ В избранное", fmt.Sprintf("faq:fav:add:%d", item.ID))
	if item.IsFavorite {
		favButton = telegram.NewInlineKeyboardButton("💔 Убрать из избранного", fmt.Sprintf("faq:fav:del:%d", item.ID))
	}
	keyboard := telegram.NewInlineKeyboard(
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(fmt.Sprintf("👍 %d", item.HelpfulCount), fmt.Sprintf("faq:rate:%d:up", item.ID)),
			telegram.NewInlineKeyboardButton(fmt.Sprintf("👎 %d", item.NotHelpfulCount), fmt.Sprintf("faq:rate:%d:down", item.ID)),
		),
		telegram.NewInlineKeyboardRow(favButton),
		telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton("📨 Не помогло → в поддержку", "ticket:new"),
		),
	)

	r.sendWithKeyboard(sess.ChatID, b.String(), keyboard)
	r.track(ctx, sess, analytics.RequestFAQView, item.Question, "", analytics.ResponseAnswered, started)
}

func (r *Router) handleSearch(ctx context.Context, sess *session, query string) {
	r.runSearch(ctx, sess, query, false)
}

// handleAutoSearch treats a plain text message as an implicit FAQ query with
// a raised match threshold.
func (r *Router) handleAutoSearch(ctx context.Context, sess *session, query string) {
	r.runSearch(ctx, sess, query, true)
}

func (r *Router) runSearch(ctx context.Context, sess *session, query string, auto bool) {
	started := time.Now()

	result, err := r.usecases.SearchFAQ.Execute(ctx, faquc.SearchFAQQuery{Query: query, Auto: auto})
	if err != nil {
		if auto {
			// Casual chatter that is too short to search is ignored.
			return
		}
		r.replyError(sess.ChatID, err)
		r.track(ctx, sess, analytics.RequestSearch, query, "", analytics.ResponseError, started)
		return
	}

	if len(result.Hits) == 0 {
		r.track(ctx, sess, analytics.RequestSearch, query, "", analytics.ResponseNoResults, started)
		if auto {
			r.sendWithKeyboard(sess.ChatID,
				"Не нашёл ответа на этот вопрос. Создать обращение в поддержку?",
				telegram.NewInlineKeyboard(telegram.NewInlineKeyboardRow(
					telegram.NewInlineKeyboardButton("📨 Создать обращение", "ticket:new"),
				)))
			return
		}
		r.send(sess.ChatID, "По запросу ничего не найдено. Попробуйте другие слова или /newticket.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Hits))
	for _, hit := range result.Hits {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(hit.Question, fmt.Sprintf("faq:item:%d", hit.ItemID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "Вот что удалось найти:", telegram.NewInlineKeyboard(rows...))
	r.track(ctx, sess, analytics.RequestSearch, query, "", analytics.ResponseAnswered, started)
}

func (r *Router) handleFavorites(ctx context.Context, sess *session) {
	result, err := r.usecases.ListFavorites.Execute(ctx, faquc.ListFavoritesQuery{UserID: sess.UserID})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Items) == 0 {
		r.send(sess.ChatID, "В избранном пока пусто. Добавляйте вопросы кнопкой ⭐.")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Items))
	for _, item := range result.Items {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(item.Question, fmt.Sprintf("faq:item:%d", item.ID)),
		))
	}

	r.sendWithKeyboard(sess.ChatID, "<b>Избранное</b>", telegram.NewInlineKeyboard(rows...))
}
