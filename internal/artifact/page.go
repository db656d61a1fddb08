package artifact

import "strings"

// BuildPage assembles a minimal HTML document from caller-supplied fragments.
// Fragments are inserted verbatim in order, with no escaping or sanitization:
// the caller is trusted to supply valid HTML. Changing this would alter
// observable output for existing callers.
func BuildPage(title string, elements []string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  <title>" + title + "</title>\n")
	b.WriteString("</head>\n<body>\n")
	for _, el := range elements {
		b.WriteString(el)
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
