// Package richtext models the structured document tree produced by the
// admin rich-text editor and renders it to read-only HTML for public pages.
// The tree is stored as-is in the database (jsonb); this package is the only
// place that interprets it.
package richtext

// Node is a single element of the document tree. A complete document is a
// Node with Type "doc". Leaf text lives in nodes with Type "text".
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is inline formatting attached to a text node (bold, link, ...).
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Empty reports whether doc carries no renderable content. A nil document
// and a document of blank paragraphs both count as empty.
func Empty(doc *Node) bool {
	if doc == nil {
		return true
	}
	return !hasContent(*doc)
}

func hasContent(n Node) bool {
	if n.Text != "" {
		return true
	}
	switch n.Type {
	case "image", "horizontalRule":
		return true
	}
	for i := range n.Content {
		if hasContent(n.Content[i]) {
			return true
		}
	}
	return false
}

func (n Node) attrString(key string) string {
	if n.Attrs == nil {
		return ""
	}
	s, _ := n.Attrs[key].(string)
	return s
}

// attrInt reads a numeric attribute. JSON numbers decode as float64.
func (n Node) attrInt(key string) int {
	if n.Attrs == nil {
		return 0
	}
	switch v := n.Attrs[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func (m Mark) attrString(key string) string {
	if m.Attrs == nil {
		return ""
	}
	s, _ := m.Attrs[key].(string)
	return s
}
