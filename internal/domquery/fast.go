package domquery

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ParseFast parses an HTML document with x/net/html's HTML5 parser and
// walks the resulting *html.Node tree directly, without building goquery
// Selection wrappers. It uses the same parser as the comprehensive
// backend, so both tolerate the same markup.
func ParseFast(body []byte) (Query, error) {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	return fastQuery{node: root}, nil
}

type fastQuery struct {
	node *html.Node
}

type fastNode struct {
	fastQuery
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func descendants(n *html.Node, out *[]*html.Node) {
	for _, c := range elementChildren(n) {
		*out = append(*out, c)
		descendants(c, out)
	}
}

func (q fastQuery) Nodes() []Node {
	var raw []*html.Node
	descendants(q.node, &raw)
	out := make([]Node, len(raw))
	for i, n := range raw {
		out[i] = fastNode{fastQuery{node: n}}
	}
	return out
}

func (q fastQuery) ChildNodes() []Node {
	raw := elementChildren(q.node)
	out := make([]Node, len(raw))
	for i, n := range raw {
		out[i] = fastNode{fastQuery{node: n}}
	}
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (q fastQuery) FirstNodeWithClasses(query ClassQuery) (Node, bool) {
	for _, n := range q.Nodes() {
		if query.Matches(n.Class()) {
			return n, true
		}
	}
	return nil, false
}

func (q fastQuery) FirstChildNodeWithClasses(query ClassQuery) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if query.Matches(n.Class()) {
			return n, true
		}
	}
	return nil, false
}

func (q fastQuery) NodesWithClasses(query ClassQuery) []Node {
	var out []Node
	for _, n := range q.Nodes() {
		if query.Matches(n.Class()) {
			out = append(out, n)
		}
	}
	return out
}

func (q fastQuery) ChildNodesWithClasses(query ClassQuery) []Node {
	var out []Node
	for _, n := range q.ChildNodes() {
		if query.Matches(n.Class()) {
			out = append(out, n)
		}
	}
	return out
}

// FirstNodeWithID uses a compiled cascadia id selector rather than a
// manual walk, since "#id" matching is exactly what cascadia is built for.
func (q fastQuery) FirstNodeWithID(id string) (Node, bool) {
	sel, err := cascadia.Compile(fmt.Sprintf("#%s", id))
	if err != nil {
		return nil, false
	}
	for _, m := range sel.MatchAll(q.node) {
		if m != q.node {
			return fastNode{fastQuery{node: m}}, true
		}
	}
	return nil, false
}

func (q fastQuery) FirstChildNodeWithID(id string) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if nodeID, ok := n.ID(); ok && nodeID == id {
			return n, true
		}
	}
	return nil, false
}

// FirstNodeWithTag uses a compiled cascadia type selector for the same
// reason as FirstNodeWithID.
func (q fastQuery) FirstNodeWithTag(tag string) (Node, bool) {
	sel, err := cascadia.Compile(tag)
	if err != nil {
		return nil, false
	}
	for _, m := range sel.MatchAll(q.node) {
		if m != q.node {
			return fastNode{fastQuery{node: m}}, true
		}
	}
	return nil, false
}

func (q fastQuery) FirstChildNodeWithTag(tag string) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if nodeTag, ok := n.Tag(); ok && nodeTag == tag {
			return n, true
		}
	}
	return nil, false
}

func (n fastNode) Class() (string, bool) {
	return attr(n.node, "class")
}

func (n fastNode) ID() (string, bool) {
	return attr(n.node, "id")
}

func (n fastNode) Tag() (string, bool) {
	if n.node.Type != html.ElementNode {
		return "", false
	}
	return n.node.Data, true
}

func (n fastNode) Text() (string, bool) {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n.node)
	text := strings.TrimSpace(b.String())
	return text, text != ""
}

func (n fastNode) ChildrenRawText() (string, bool) {
	var b strings.Builder
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	text := strings.TrimSpace(b.String())
	return text, text != ""
}

func (n fastNode) GetAttribute(key string) (string, bool) {
	return attr(n.node, key)
}

func (n fastNode) GetHref() (string, bool) {
	return attr(n.node, "href")
}
