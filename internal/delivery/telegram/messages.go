// messages.go contains message constructors and formatting helpers for Telegram.

package telegram

import (
	"html"
	"slices"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	rlm = "\u200F"
	lrm = "\u200E"

	// Telegram rejects messages longer than 4096 characters.
	maxMessageLength = 4096
)

// escape escapes plain text for HTML parse mode.
func escape(s string) string {
	return html.EscapeString(s)
}

func bold(s string) string {
	return "<b>" + escape(s) + "</b>"
}

func code(s string) string {
	return "<code>" + escape(s) + "</code>"
}

func italic(s string) string {
	return "<i>" + escape(s) + "</i>"
}

// direction returns the mark that pins the paragraph direction for lang.
func direction(rtl bool) string {
	if rtl {
		return rlm
	}
	return lrm
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	return msg
}

func newHTMLEdit(chatID int64, messageID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true
	return edit
}

// paginate joins blocks into pages that fit into one message each.
// A single block longer than limit is split by splitHTML.
func paginate(blocks []string, sep string, limit int) []string {
	var (
		pages []string
		sb    strings.Builder
	)

	flush := func() {
		if sb.Len() > 0 {
			pages = append(pages, sb.String())
			sb.Reset()
		}
	}

	for _, b := range blocks {
		for _, chunk := range splitHTML(b, limit) {
			if sb.Len() > 0 && runeLen(sb.String())+runeLen(sep)+runeLen(chunk) > limit {
				flush()
			}
			if sb.Len() > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(chunk)
		}
	}
	flush()

	return pages
}

// splitHTML cuts an HTML fragment into chunks of at most limit runes.
// Cuts never fall inside a tag or an entity and prefer the last whitespace;
// tags open at a cut are closed at the end of the chunk and reopened in the next.
func splitHTML(s string, limit int) []string {
	if runeLen(s) <= limit {
		return []string{s}
	}

	var (
		tokens = htmlTokens(s)
		chunks []string
		sb     strings.Builder
		n      int      // runes in sb
		base   int      // runes of reopened tags at the start of sb
		open   []string // currently open tags
	)

	// The last whitespace seen in the current chunk.
	var (
		brk      = -1
		brkBytes int
		brkOpen  []string
	)

	begin := func() {
		sb.Reset()
		n, brk = 0, -1
		for _, tag := range open {
			sb.WriteString(tag)
			n += runeLen(tag)
		}
		base = n
	}
	begin()

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		next := applyTag(open, tok)

		if n > base && n+runeLen(tok)+runeLen(closeTags(next)) > limit {
			if brk >= 0 {
				chunks = append(chunks, sb.String()[:brkBytes]+closeTags(brkOpen))
				open = brkOpen
				i = brk - 1
			} else {
				chunks = append(chunks, sb.String()+closeTags(open))
				i--
			}
			begin()
			continue
		}

		sb.WriteString(tok)
		n += runeLen(tok)
		open = next

		if tok == " " || tok == "\n" {
			brk, brkBytes = i+1, sb.Len()
			brkOpen = slices.Clone(open)
		}
	}
	if n > base {
		chunks = append(chunks, sb.String()+closeTags(open))
	}

	return chunks
}

// htmlTokens splits s into tags, entities and single runes.
func htmlTokens(s string) []string {
	var tokens []string
	for len(s) > 0 {
		size := 0
		switch s[0] {
		case '<':
			if end := strings.IndexByte(s, '>'); end > 0 {
				size = end + 1
			}
		case '&':
			if end := strings.IndexByte(s, ';'); end > 0 && end <= 10 {
				size = end + 1
			}
		}
		if size == 0 {
			_, size = utf8.DecodeRuneInString(s)
		}
		tokens = append(tokens, s[:size])
		s = s[size:]
	}
	return tokens
}

// applyTag returns the open tags after tok.
func applyTag(open []string, tok string) []string {
	switch {
	case strings.HasPrefix(tok, "</"):
		if len(open) > 0 {
			return open[:len(open)-1]
		}
	case strings.HasPrefix(tok, "<") && len(tok) > 2:
		return append(slices.Clone(open), tok)
	}
	return open
}

// closeTags closes open tags in reverse order.
func closeTags(open []string) string {
	var sb strings.Builder
	for i := len(open) - 1; i >= 0; i-- {
		sb.WriteString("</" + tagName(open[i]) + ">")
	}
	return sb.String()
}

func tagName(tag string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return name
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
