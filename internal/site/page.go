package site

import (
	"html"
	"strings"

	"scriptdocs/internal/episode"
	"scriptdocs/internal/textnorm"
)

const (
	labelEnglish = "English"
	labelChinese = "中文"

	placeholderNotice = "No script is available for this episode yet."
)

// RenderPage builds the Markdown page for one episode. Both languages
// present renders a side-by-side table, one language a single labeled block,
// neither a placeholder notice.
func RenderPage(id episode.ID, english, chinese string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(id.Title(english))
	b.WriteString("\n\n")

	switch {
	case english != "" && chinese != "":
		writeSideBySide(&b, english, chinese)
	case english != "":
		writeBlock(&b, labelEnglish, english)
	case chinese != "":
		writeBlock(&b, labelChinese, chinese)
	default:
		b.WriteString(placeholderNotice)
		b.WriteString("\n")
	}
	return b.String()
}

// writeSideBySide emits a two-column HTML table. The texts arrive
// dedent-normalized so relative indentation survives; cells are escaped
// individually and newlines become explicit breaks.
func writeSideBySide(b *strings.Builder, english, chinese string) {
	b.WriteString("<table>\n")
	b.WriteString("<tr><th>" + labelEnglish + "</th><th>" + labelChinese + "</th></tr>\n")
	b.WriteString("<tr>\n")
	b.WriteString("<td>" + cell(english) + "</td>\n")
	b.WriteString("<td>" + cell(chinese) + "</td>\n")
	b.WriteString("</tr>\n")
	b.WriteString("</table>\n")
}

func cell(text string) string {
	return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>")
}

// writeBlock emits a single-language fenced block using the plain (fully
// left-stripped) normalization policy.
func writeBlock(b *strings.Builder, label, text string) {
	b.WriteString("## " + label + "\n\n")
	b.WriteString("```text\n")
	b.WriteString(textnorm.Block(text))
	b.WriteString("\n```\n")
}
