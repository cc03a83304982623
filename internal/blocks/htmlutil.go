package blocks

import (
	"fmt"
	"html"
	"strings"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// markup is a tiny write helper shared by the renderers.
type markup struct {
	b strings.Builder
}

func (m *markup) writef(format string, args ...any) {
	fmt.Fprintf(&m.b, format, args...)
}

func (m *markup) write(s string) {
	m.b.WriteString(s)
}

func (m *markup) String() string {
	return m.b.String()
}

// anchor renders a link when href is set, otherwise a span, so empty props
// never produce dead <a href=""> tags.
func anchor(href, label, class string) string {
	if href == "" {
		return fmt.Sprintf(`<span class="%s">%s</span>`, esc(class), esc(label))
	}
	return fmt.Sprintf(`<a class="%s" href="%s">%s</a>`, esc(class), esc(href), esc(label))
}

// stars renders a unicode star row for ratings "1".."5"; out-of-range input
// falls back to five stars.
func stars(rating string) string {
	n := 5
	switch rating {
	case "1":
		n = 1
	case "2":
		n = 2
	case "3":
		n = 3
	case "4":
		n = 4
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
