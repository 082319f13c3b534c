package domquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseComprehensive parses an HTML document with goquery (itself built on
// x/net/html's HTML5 parser) and exposes it through goquery Selections.
// The aggregator parses every engine response with this backend.
func ParseComprehensive(body []byte) (Query, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	return comprehensiveQuery{sel: doc.Selection}, nil
}

// comprehensiveNode and comprehensiveQuery both wrap a *goquery.Selection;
// a Node is simply a one-element Selection that also satisfies Query over
// its own subtree.
type comprehensiveQuery struct {
	sel *goquery.Selection
}

type comprehensiveNode struct {
	comprehensiveQuery
}

func (q comprehensiveQuery) Nodes() []Node {
	var out []Node
	q.sel.Find("*").Each(func(_ int, s *goquery.Selection) {
		out = append(out, comprehensiveNode{comprehensiveQuery{sel: s}})
	})
	return out
}

func (q comprehensiveQuery) ChildNodes() []Node {
	var out []Node
	q.sel.Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, comprehensiveNode{comprehensiveQuery{sel: s}})
	})
	return out
}

func (q comprehensiveQuery) FirstNodeWithClasses(query ClassQuery) (Node, bool) {
	for _, n := range q.Nodes() {
		if query.Matches(n.Class()) {
			return n, true
		}
	}
	return nil, false
}

func (q comprehensiveQuery) FirstChildNodeWithClasses(query ClassQuery) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if query.Matches(n.Class()) {
			return n, true
		}
	}
	return nil, false
}

func (q comprehensiveQuery) NodesWithClasses(query ClassQuery) []Node {
	var out []Node
	for _, n := range q.Nodes() {
		if query.Matches(n.Class()) {
			out = append(out, n)
		}
	}
	return out
}

func (q comprehensiveQuery) ChildNodesWithClasses(query ClassQuery) []Node {
	var out []Node
	for _, n := range q.ChildNodes() {
		if query.Matches(n.Class()) {
			out = append(out, n)
		}
	}
	return out
}

func (q comprehensiveQuery) FirstNodeWithID(id string) (Node, bool) {
	for _, n := range q.Nodes() {
		if nodeID, ok := n.ID(); ok && nodeID == id {
			return n, true
		}
	}
	return nil, false
}

func (q comprehensiveQuery) FirstChildNodeWithID(id string) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if nodeID, ok := n.ID(); ok && nodeID == id {
			return n, true
		}
	}
	return nil, false
}

func (q comprehensiveQuery) FirstNodeWithTag(tag string) (Node, bool) {
	for _, n := range q.Nodes() {
		if nodeTag, ok := n.Tag(); ok && nodeTag == tag {
			return n, true
		}
	}
	return nil, false
}

func (q comprehensiveQuery) FirstChildNodeWithTag(tag string) (Node, bool) {
	for _, n := range q.ChildNodes() {
		if nodeTag, ok := n.Tag(); ok && nodeTag == tag {
			return n, true
		}
	}
	return nil, false
}

func (n comprehensiveNode) Class() (string, bool) {
	return n.sel.Attr("class")
}

func (n comprehensiveNode) ID() (string, bool) {
	return n.sel.Attr("id")
}

func (n comprehensiveNode) Tag() (string, bool) {
	if len(n.sel.Nodes) == 0 || n.sel.Nodes[0].Type != html.ElementNode {
		return "", false
	}
	return n.sel.Nodes[0].Data, true
}

func (n comprehensiveNode) Text() (string, bool) {
	text := strings.TrimSpace(n.sel.Text())
	return text, text != ""
}

func (n comprehensiveNode) ChildrenRawText() (string, bool) {
	if len(n.sel.Nodes) == 0 {
		return "", false
	}
	var b strings.Builder
	for c := n.sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	text := strings.TrimSpace(b.String())
	return text, text != ""
}

func (n comprehensiveNode) GetAttribute(key string) (string, bool) {
	return n.sel.Attr(key)
}

func (n comprehensiveNode) GetHref() (string, bool) {
	return n.sel.Attr("href")
}
