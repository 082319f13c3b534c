// Package domquery is a uniform, read-only navigation layer over parsed
// HTML. Engine adapters write their selector logic once against the Node /
// Query interfaces here and can run unchanged against either the
// goquery-backed comprehensive backend or the cascadia-backed fast
// backend.
package domquery

// Node is a single element in a parsed document. Both backends in this
// package satisfy it.
type Node interface {
	// Class returns the raw `class` attribute value, if any.
	Class() (string, bool)

	// ID returns the `id` attribute value, if any.
	ID() (string, bool)

	// Tag returns the element's tag name, lowercased, if this is an
	// element node.
	Tag() (string, bool)

	// Text returns the concatenated inner text of the subtree rooted at
	// this node. Returns false if the result is empty.
	Text() (string, bool)

	// ChildrenRawText concatenates text from direct text-node children
	// only, not from descendants. Returns false if the result is empty.
	ChildrenRawText() (string, bool)

	// GetAttribute looks up an arbitrary attribute by key.
	GetAttribute(key string) (string, bool)

	// GetHref returns the (HTML-entity-decoded) `href` attribute.
	GetHref() (string, bool)

	Query
}

// Query is implemented by both Node and the root document, giving access
// to descendant/child iteration and class/id/tag filtering.
type Query interface {
	// Nodes returns every descendant node in document order.
	Nodes() []Node

	// ChildNodes returns direct children only.
	ChildNodes() []Node

	// FirstNodeWithClasses returns the first descendant matching the
	// class query, or false if none match.
	FirstNodeWithClasses(q ClassQuery) (Node, bool)

	// FirstChildNodeWithClasses restricts the same search to direct
	// children.
	FirstChildNodeWithClasses(q ClassQuery) (Node, bool)

	// NodesWithClasses returns every descendant matching the class query.
	NodesWithClasses(q ClassQuery) []Node

	// ChildNodesWithClasses restricts the same search to direct children.
	ChildNodesWithClasses(q ClassQuery) []Node

	// FirstNodeWithID returns the first descendant with the given id.
	FirstNodeWithID(id string) (Node, bool)

	// FirstChildNodeWithID restricts the same search to direct children.
	FirstChildNodeWithID(id string) (Node, bool)

	// FirstNodeWithTag returns the first descendant with the given tag.
	FirstNodeWithTag(tag string) (Node, bool)

	// FirstChildNodeWithTag restricts the same search to direct children.
	FirstChildNodeWithTag(tag string) (Node, bool)
}

// Criteria selects how a ClassQuery's class set is matched against a
// node's space-delimited class list.
type Criteria int

const (
	// Any matches if the node has at least one of the query's classes.
	Any Criteria = iota
	// All matches if the node has every one of the query's classes
	// (extras on the node are allowed).
	All
	// Exact matches only if the node's class list, as a set, equals the
	// query's class set exactly (same cardinality, all present).
	Exact
)

// ClassQuery is a predicate over a node's space-delimited class list.
type ClassQuery struct {
	classes  map[string]struct{}
	criteria Criteria
}

// NewClassQuery builds a ClassQuery from a set of class names and a
// matching criteria. For a single class name, Any and Exact coincide;
// prefer Any in that case since it's cheaper.
func NewClassQuery(criteria Criteria, classes ...string) ClassQuery {
	set := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		set[c] = struct{}{}
	}
	return ClassQuery{classes: set, criteria: criteria}
}

// Matches reports whether the given raw class attribute value satisfies
// this query.
func (q ClassQuery) Matches(class string, ok bool) bool {
	if !ok {
		return false
	}

	fields := splitClassList(class)

	switch q.criteria {
	case Exact:
		seen := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			if _, present := q.classes[f]; !present {
				return false
			}
			seen[f] = struct{}{}
		}
		return len(seen) == len(q.classes)
	case All:
		seen := make(map[string]struct{}, len(q.classes))
		for _, f := range fields {
			if _, present := q.classes[f]; present {
				seen[f] = struct{}{}
			}
		}
		return len(seen) == len(q.classes)
	default: // Any
		for _, f := range fields {
			if _, present := q.classes[f]; present {
				return true
			}
		}
		return false
	}
}

func splitClassList(class string) []string {
	var fields []string
	start := -1
	for i, r := range class {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if start >= 0 {
				fields = append(fields, class[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, class[start:])
	}
	return fields
}
