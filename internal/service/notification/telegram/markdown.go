package telegram

import "strings"

// Characters Telegram's MarkdownV2 dialect reserves. Any of these left
// unescaped in interpolated text makes the whole message rejected.
const markdownV2Reserved = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdownV2 prefixes every reserved MarkdownV2 character with a single
// backslash. Non-reserved characters pass through untouched.
func EscapeMarkdownV2(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownV2Reserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
