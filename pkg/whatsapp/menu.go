package whatsapp

import (
	"strconv"
	"strings"
)

var numberEmojis = []string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣", "🔟"}

// NumberEmoji returns the keycap glyph for 1-10 and plain numerals beyond.
func NumberEmoji(n int) string {
	if n >= 1 && n <= len(numberEmojis) {
		return numberEmojis[n-1]
	}
	return strconv.Itoa(n)
}

// FormatMenu renders a lead-in plus a 1-based numbered option list the way
// a transport without native buttons shows choices.
func FormatMenu(lead string, options []string) string {
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString("\n\n")
	for i, opt := range options {
		b.WriteString(NumberEmoji(i + 1))
		b.WriteString(" ")
		b.WriteString(opt)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReply turns a reasoning reply into the outbound message body. A
// reply containing the marker is split into lead-in and pipe-delimited
// options and rendered as an interactive menu; anything else passes
// through unchanged.
func RenderReply(reply, marker string) string {
	if !strings.Contains(reply, marker) {
		return reply
	}
	parts := strings.SplitN(reply, marker, 2)
	lead := strings.TrimSpace(parts[0])
	options := make([]string, 0)
	for _, opt := range strings.Split(parts[1], "|") {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	if len(options) == 0 {
		return lead
	}
	return FormatMenu(lead, options)
}
