package telegram

import "strings"

// EscapeHTML escapes text for Telegram HTML parse mode.
// Only <, > and & are special in Telegram HTML.
func EscapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
