package richtext

import (
	"fmt"
	"html"
	"html/template"
	"strings"
)

// Render converts a document tree to read-only HTML. It is a pure function:
// the same tree always yields the same markup. Unknown node types degrade to
// their children (or plain text) instead of failing, so a document written by
// a newer editor still renders on public pages. A nil document renders to "".
func Render(doc *Node) template.HTML {
	if doc == nil {
		return ""
	}
	var b strings.Builder
	renderNode(&b, *doc)
	return template.HTML(b.String())
}

func renderNode(b *strings.Builder, n Node) {
	switch n.Type {
	case "doc":
		renderChildren(b, n)
	case "paragraph":
		wrap(b, "p", n)
	case "heading":
		level := n.attrInt("level")
		if level < 1 || level > 6 {
			level = 1
		}
		tag := fmt.Sprintf("h%d", level)
		wrap(b, tag, n)
	case "bulletList":
		wrap(b, "ul", n)
	case "orderedList":
		wrap(b, "ol", n)
	case "listItem":
		wrap(b, "li", n)
	case "blockquote":
		wrap(b, "blockquote", n)
	case "codeBlock":
		b.WriteString("<pre><code")
		if lang := n.attrString("language"); lang != "" {
			fmt.Fprintf(b, ` class="language-%s"`, html.EscapeString(lang))
		}
		b.WriteString(">")
		renderChildren(b, n)
		b.WriteString("</code></pre>")
	case "hardBreak":
		b.WriteString("<br>")
	case "horizontalRule":
		b.WriteString("<hr>")
	case "image":
		src := safeURL(n.attrString("src"))
		if src == "" {
			return
		}
		fmt.Fprintf(b, `<img src="%s"`, html.EscapeString(src))
		if alt := n.attrString("alt"); alt != "" {
			fmt.Fprintf(b, ` alt="%s"`, html.EscapeString(alt))
		}
		b.WriteString(">")
	case "text":
		renderText(b, n)
	default:
		// Unrecognized node: keep whatever content it carries.
		if n.Text != "" {
			b.WriteString(html.EscapeString(n.Text))
		}
		renderChildren(b, n)
	}
}

func renderChildren(b *strings.Builder, n Node) {
	for i := range n.Content {
		renderNode(b, n.Content[i])
	}
}

func wrap(b *strings.Builder, tag string, n Node) {
	b.WriteString("<" + tag + ">")
	renderChildren(b, n)
	b.WriteString("</" + tag + ">")
}

func renderText(b *strings.Builder, n Node) {
	open, close := markTags(n.Marks)
	b.WriteString(open)
	b.WriteString(html.EscapeString(n.Text))
	b.WriteString(close)
}

// markTags builds opening and closing tag runs for the node's marks.
// Unknown marks are skipped.
func markTags(marks []Mark) (string, string) {
	var open, close strings.Builder
	for _, m := range marks {
		switch m.Type {
		case "bold":
			open.WriteString("<strong>")
			close.WriteString("</strong>")
		case "italic":
			open.WriteString("<em>")
			close.WriteString("</em>")
		case "strike":
			open.WriteString("<s>")
			close.WriteString("</s>")
		case "underline":
			open.WriteString("<u>")
			close.WriteString("</u>")
		case "code":
			open.WriteString("<code>")
			close.WriteString("</code>")
		case "highlight":
			open.WriteString("<mark>")
			close.WriteString("</mark>")
		case "link":
			href := safeURL(m.attrString("href"))
			if href == "" {
				continue
			}
			open.WriteString(`<a href="` + html.EscapeString(href) + `" rel="noopener noreferrer">`)
			close.WriteString("</a>")
		}
	}
	// Closing tags must mirror opening order in reverse.
	return open.String(), reverseTags(close.String())
}

func reverseTags(s string) string {
	if s == "" {
		return s
	}
	var tags []string
	for _, part := range strings.SplitAfter(s, ">") {
		if part != "" {
			tags = append(tags, part)
		}
	}
	var b strings.Builder
	for i := len(tags) - 1; i >= 0; i-- {
		b.WriteString(tags[i])
	}
	return b.String()
}

// safeURL rejects script-bearing URL schemes. Relative URLs, fragments and
// the usual web schemes pass through unchanged.
func safeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	lower := strings.ToLower(u)
	for _, prefix := range []string{"http://", "https://", "mailto:", "tel:", "/", "#", "./", "../"} {
		if strings.HasPrefix(lower, prefix) {
			return u
		}
	}
	if !strings.Contains(lower, ":") {
		return u
	}
	return ""
}
