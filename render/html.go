package render

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/rbtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML renders the tree s as a nested list: every node is a list item with
// class "red", "black" or "end", holding a label span and a list of its
// children. Missing children are rendered as empty items with class "nil".
func HTML[K, V any](s *rbtree.Shape[K, V], w io.Writer) error {
	if w == nil {
		return ordmap.ErrIllegalArguments
	}
	list := element(atom.Ul, "rbtree")
	if s != nil {
		list.AppendChild(htmlItem(s))
	}
	if err := html.Render(w, list); err != nil {
		tracer().Errorf("render HTML: %s", err.Error())
		return err
	}
	return nil
}

// HTMLDocument wraps the list of HTML in a minimal document with a
// stylesheet coloring the nodes.
func HTMLDocument[K, V any](s *rbtree.Shape[K, V], title string, w io.Writer) error {
	if w == nil {
		return ordmap.ErrIllegalArguments
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html, "")
	head := element(atom.Head, "")
	t := element(atom.Title, "")
	t.AppendChild(text(title))
	head.AppendChild(t)
	style := element(atom.Style, "")
	style.AppendChild(text(stylesheet))
	head.AppendChild(style)
	body := element(atom.Body, "")
	list := element(atom.Ul, "rbtree")
	if s != nil {
		list.AppendChild(htmlItem(s))
	}
	body.AppendChild(list)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	return html.Render(w, doc)
}

const stylesheet = `
ul.rbtree, ul.rbtree ul { list-style: none; padding-left: 1.5em; }
li.red > span { color: #c00; }
li.black > span { color: #222; }
li.end > span { color: #088; font-style: italic; }
li.nil > span { color: #aaa; }
`

func htmlItem[K, V any](s *rbtree.Shape[K, V]) *html.Node {
	if s == nil {
		li := element(atom.Li, "nil")
		span := element(atom.Span, "")
		span.AppendChild(text("·"))
		li.AppendChild(span)
		return li
	}
	class := "black"
	if s.Color == rbtree.Red {
		class = "red"
	}
	label := fmt.Sprintf("%v → %v (%d)", s.Key, s.Value, s.Size)
	if s.Sentinel {
		class, label = "end", "end"
	}
	li := element(atom.Li, class)
	span := element(atom.Span, "")
	span.AppendChild(text(label))
	li.AppendChild(span)
	if s.Left != nil || s.Right != nil {
		children := element(atom.Ul, "")
		children.AppendChild(htmlItem(s.Left))
		children.AppendChild(htmlItem(s.Right))
		li.AppendChild(children)
	}
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
