package assets

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLToMarkdown converts the small HTML subset used by descriptions:
// headings, paragraphs, lists, emphasis, links and line breaks. Unknown
// elements contribute their text.
func HTMLToMarkdown(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	var c converter
	c.block(doc)
	return strings.Join(c.blocks, "\n\n") + "\n", nil
}

type converter struct {
	blocks []string
}

func (c *converter) emit(s string) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "  \n ", "  \n"))
	if s != "" {
		c.blocks = append(c.blocks, s)
	}
}

func (c *converter) block(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.emit(collapse(n.Data))
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Head, atom.Script, atom.Style:
			return
		case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			level := int(n.Data[1] - '0')
			c.emit(strings.Repeat("#", level) + " " + strings.TrimSpace(inline(n)))
			return
		case atom.P:
			c.emit(inline(n))
			return
		case atom.Ul, atom.Ol:
			c.list(n, n.DataAtom == atom.Ol)
			return
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.block(ch)
	}
}

func (c *converter) list(n *html.Node, ordered bool) {
	var lines []string
	i := 0
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode || ch.DataAtom != atom.Li {
			continue
		}
		i++
		marker := "-"
		if ordered {
			marker = fmt.Sprintf("%d.", i)
		}
		lines = append(lines, marker+" "+strings.TrimSpace(inline(ch)))
	}
	c.emit(strings.Join(lines, "\n"))
}

func inline(n *html.Node) string {
	var b strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.TextNode:
			b.WriteString(collapse(ch.Data))
		case html.ElementNode:
			inner := inline(ch)
			switch ch.DataAtom {
			case atom.Strong, atom.B:
				b.WriteString("**" + strings.TrimSpace(inner) + "**")
			case atom.Em, atom.I:
				b.WriteString("*" + strings.TrimSpace(inner) + "*")
			case atom.Code:
				b.WriteString("`" + inner + "`")
			case atom.A:
				href := attr(ch, "href")
				if href == "" {
					b.WriteString(inner)
				} else {
					b.WriteString("[" + strings.TrimSpace(inner) + "](" + href + ")")
				}
			case atom.Br:
				b.WriteString("  \n")
			default:
				b.WriteString(inner)
			}
		}
	}
	return b.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapse squeezes whitespace runs to one space, keeping a single space at
// either edge so adjacent inline elements stay separated.
func collapse(s string) string {
	if s == "" {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}
