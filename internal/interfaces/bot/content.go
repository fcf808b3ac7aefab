package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	docuc "unibot/internal/application/document/usecases"
	faquc "unibot/internal/application/faq/usecases"
	useruc "unibot/internal/application/user/usecases"
	"unibot/internal/infrastructure/cache"
	"unibot/internal/infrastructure/telegram"
	"unibot/internal/shared/errors"
)

// skipValue turns the "-" placeholder reply into an empty field.
func skipValue(text string) string {
	if strings.TrimSpace(text) == "-" {
		return ""
	}
	return strings.TrimSpace(text)
}

// --- FAQ category creation ---

func (r *Router) startCategoryWizard(ctx context.Context, sess *session) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	r.startWizard(ctx, sess, flowFAQCategory, "name", nil)
	r.send(sess.ChatID, "🗂 Новый раздел FAQ.\nКак назвать раздел?\nОтмена: /cancel")
}

func (r *Router) continueCategoryWizard(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	switch state.Step {
	case "name":
		state.Set("name", text)
		r.advanceWizard(ctx, sess, state, "slug")
		r.send(sess.ChatID, "Короткий идентификатор латиницей, например <code>scholarship</code>:")
	case "slug":
		state.Set("slug", strings.ToLower(strings.TrimSpace(text)))
		r.advanceWizard(ctx, sess, state, "icon")
		r.send(sess.ChatID, "Эмодзи для раздела? Отправьте «-», чтобы пропустить.")
	case "icon":
		result, err := r.usecases.CreateFAQCategory.Execute(ctx, faquc.CreateCategoryCommand{
			ActorRole: sess.Role,
			Name:      state.Value("name"),
			Slug:      state.Value("slug"),
			Icon:      skipValue(text),
		})
		if err != nil {
			if errors.IsValidationError(err) {
				r.send(sess.ChatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err))+"\nНачните заново: /newcategory")
			} else {
				r.replyError(sess.ChatID, err)
			}
			r.finishWizard(ctx, sess)
			return
		}

		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Раздел «"+telegram.EscapeHTML(result.Title)+"» создан. Добавить вопрос: /newfaq")
	}
}

// --- FAQ item creation ---

func (r *Router) startFAQItemWizard(ctx context.Context, sess *session) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	result, err := r.usecases.ListFAQCategories.Execute(ctx)
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}
	if len(result.Categories) == 0 {
		r.send(sess.ChatID, "Сначала создайте раздел: /newcategory")
		return
	}

	rows := make([][]telegram.InlineKeyboardButton, 0, len(result.Categories))
	for _, c := range result.Categories {
		rows = append(rows, telegram.NewInlineKeyboardRow(
			telegram.NewInlineKeyboardButton(c.Title, fmt.Sprintf("adm:fc:%d", c.ID)),
		))
	}

	r.startWizard(ctx, sess, flowFAQItem, "category", nil)
	r.sendWithKeyboard(sess.ChatID,
		"❓ Новый вопрос.\nВ какой раздел добавить?\nОтмена: /cancel",
		telegram.NewInlineKeyboard(rows...))
}

// faqItemCategoryChosen records the category button press and moves the
// wizard to the question step.
func (r *Router) faqItemCategoryChosen(ctx context.Context, sess *session, categoryID uint) {
	state, err := r.wizards.Get(ctx, sess.TelegramID)
	if err != nil || state == nil || state.Flow != flowFAQItem {
		r.send(sess.ChatID, "Добавление вопроса уже неактуально, начните заново: /newfaq")
		return
	}

	state.Set("category_id", strconv.FormatUint(uint64(categoryID), 10))
	r.advanceWizard(ctx, sess, state, "question")
	r.send(sess.ChatID, "Текст вопроса?")
}

func (r *Router) continueFAQItemWizard(ctx context.Context, sess *session, state *cache.WizardState, text string) {
	switch state.Step {
	case "category":
		r.send(sess.ChatID, "Выберите раздел кнопкой выше или /cancel.")
	case "question":
		state.Set("question", text)
		r.advanceWizard(ctx, sess, state, "answer")
		r.send(sess.ChatID, "Текст ответа? Поддерживается markdown.")
	case "answer":
		state.Set("answer", text)
		r.advanceWizard(ctx, sess, state, "keywords")
		r.send(sess.ChatID, "Ключевые слова через запятую (для поиска). Отправьте «-», чтобы пропустить.")
	case "keywords":
		categoryID, ok := parseID(state.Value("category_id"))
		if !ok {
			r.finishWizard(ctx, sess)
			return
		}

		result, err := r.usecases.CreateFAQItem.Execute(ctx, faquc.CreateItemCommand{
			ActorRole:  sess.Role,
			CategoryID: categoryID,
			Question:   state.Value("question"),
			Answer:     state.Value("answer"),
			Keywords:   skipValue(text),
		})
		if err != nil {
			if errors.IsValidationError(err) {
				r.send(sess.ChatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err))+"\nНачните заново: /newfaq")
			} else {
				r.replyError(sess.ChatID, err)
			}
			r.finishWizard(ctx, sess)
			return
		}

		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Вопрос «"+telegram.EscapeHTML(result.Question)+"» добавлен. ✅")
	}
}

// --- document management ---

func (r *Router) startDocumentWizard(ctx context.Context, sess *session) {
	if !sess.Role.IsStaff() {
		r.send(sess.ChatID, "Недостаточно прав для этого действия.")
		return
	}

	r.startWizard(ctx, sess, flowDocument, "category", nil)
	r.send(sess.ChatID, "📎 Новый документ.\nВ какой раздел? Например: <code>Справки</code>\nОтмена: /cancel")
}

func (r *Router) continueDocumentWizard(ctx context.Context, sess *session, state *cache.WizardState, text string, attachment *telegram.Document) {
	switch state.Step {
	case "category":
		state.Set("category", text)
		r.advanceWizard(ctx, sess, state, "name")
		r.send(sess.ChatID, "Название документа?")
	case "name":
		state.Set("name", text)
		r.advanceWizard(ctx, sess, state, "description")
		r.send(sess.ChatID, "Краткое описание? Отправьте «-», чтобы пропустить.")
	case "description":
		state.Set("description", skipValue(text))
		r.advanceWizard(ctx, sess, state, "file")
		r.send(sess.ChatID, "Пришлите файл или ссылку на документ.")
	case "file":
		cmd := docuc.AddDocumentCommand{
			ActorRole:   sess.Role,
			Name:        state.Value("name"),
			Category:    state.Value("category"),
			Description: state.Value("description"),
		}
		switch {
		case attachment != nil:
			cmd.FileID = attachment.FileID
			cmd.FileType = attachment.MimeType
		case strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://"):
			cmd.URL = text
		default:
			r.send(sess.ChatID, "Нужен файл или ссылка, начинающаяся с http(s)://")
			return
		}

		result, err := r.usecases.AddDocument.Execute(ctx, cmd)
		if err != nil {
			if errors.IsValidationError(err) {
				r.send(sess.ChatID, "⚠️ "+telegram.EscapeHTML(appErrorMessage(err))+"\nНачните заново: /newdoc")
			} else {
				r.replyError(sess.ChatID, err)
			}
			r.finishWizard(ctx, sess)
			return
		}

		r.finishWizard(ctx, sess)
		r.send(sess.ChatID, "Документ «"+telegram.EscapeHTML(result.Name)+"» добавлен. ✅")
	}
}

// handleRemoveDocument hides a document from listings, keeping its stats.
func (r *Router) handleRemoveDocument(ctx context.Context, sess *session, args string) {
	id, ok := parseID(strings.TrimSpace(args))
	if !ok {
		r.send(sess.ChatID, "Укажите номер документа: <code>/deldoc 12</code>")
		return
	}

	if err := r.usecases.RemoveDocument.Execute(ctx, docuc.RemoveDocumentCommand{
		ActorRole:  sess.Role,
		DocumentID: id,
	}); err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	r.send(sess.ChatID, "Документ скрыт из каталога.")
}

// --- user management ---

// handleChangeRole handles "/role <telegram_id> <role>".
func (r *Router) handleChangeRole(ctx context.Context, sess *session, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		r.send(sess.ChatID, "Формат: <code>/role 123456789 moderator</code>\nРоли: student, teacher, moderator, admin")
		return
	}

	telegramID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		r.send(sess.ChatID, "Первый аргумент — числовой Telegram ID пользователя.")
		return
	}

	result, err := r.usecases.ChangeRole.Execute(ctx, useruc.ChangeRoleCommand{
		ActorRole:  sess.Role,
		TelegramID: telegramID,
		NewRole:    strings.ToLower(fields[1]),
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	r.send(sess.ChatID, fmt.Sprintf("Роль пользователя %s теперь: %s.",
		telegram.EscapeHTML(result.DisplayName), result.Role))
}

// handleSetUserActive handles "/ban <telegram_id>" and "/unban <telegram_id>".
func (r *Router) handleSetUserActive(ctx context.Context, sess *session, args string, active bool) {
	telegramID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		r.send(sess.ChatID, "Укажите числовой Telegram ID: <code>/ban 123456789</code>")
		return
	}

	result, err := r.usecases.SetUserActive.Execute(ctx, useruc.SetUserActiveCommand{
		ActorRole:  sess.Role,
		TelegramID: telegramID,
		Active:     active,
	})
	if err != nil {
		r.replyError(sess.ChatID, err)
		return
	}

	if result.IsActive {
		r.send(sess.ChatID, telegram.EscapeHTML(result.DisplayName)+" снова активен.")
	} else {
		r.send(sess.ChatID, telegram.EscapeHTML(result.DisplayName)+" заблокирован и исключён из рассылок.")
	}
}
