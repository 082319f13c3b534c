package domquery

import "testing"

const sampleHTML = `
<html><body>
<ul class="results-standard">
  <li class="result">
    <h2><a class="title" href="https://example.com/a">Example A</a></h2>
    <p class="s">Summary A</p>
  </li>
  <li class="result">
    <h2><a class="title" href="https://example.com/b">Example B</a></h2>
    <p class="s">Summary B</p>
  </li>
</ul>
</body></html>
`

func TestParseComprehensive_WalksMojeekShapedMarkup(t *testing.T) {
	doc, err := ParseComprehensive([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("ParseComprehensive: %v", err)
	}

	wrapper, ok := doc.FirstNodeWithClasses(NewClassQuery(Any, "results-standard"))
	if !ok {
		t.Fatal("expected to find the results-standard wrapper")
	}

	children := wrapper.ChildNodes()
	if len(children) != 2 {
		t.Fatalf("expected 2 result children, got %d", len(children))
	}

	h2, ok := children[0].FirstChildNodeWithTag("h2")
	if !ok {
		t.Fatal("expected first result to have an h2")
	}
	title, ok := h2.FirstChildNodeWithClasses(NewClassQuery(Any, "title"))
	if !ok {
		t.Fatal("expected h2 to contain a title node")
	}
	if text, _ := title.Text(); text != "Example A" {
		t.Errorf("title text = %q, want %q", text, "Example A")
	}
	if href, _ := title.GetHref(); href != "https://example.com/a" {
		t.Errorf("href = %q, want %q", href, "https://example.com/a")
	}

	summary, ok := children[0].FirstChildNodeWithClasses(NewClassQuery(Any, "s"))
	if !ok {
		t.Fatal("expected first result to have a summary node")
	}
	if text, _ := summary.Text(); text != "Summary A" {
		t.Errorf("summary text = %q, want %q", text, "Summary A")
	}
}

func TestParseFast_WalksMojeekShapedMarkup(t *testing.T) {
	doc, err := ParseFast([]byte(sampleHTML))
	if err != nil {
		t.Fatalf("ParseFast: %v", err)
	}

	wrapper, ok := doc.FirstNodeWithClasses(NewClassQuery(Any, "results-standard"))
	if !ok {
		t.Fatal("expected to find the results-standard wrapper")
	}

	children := wrapper.ChildNodes()
	if len(children) != 2 {
		t.Fatalf("expected 2 result children, got %d", len(children))
	}

	titleNode, ok := wrapper.FirstNodeWithClasses(NewClassQuery(Any, "title"))
	if !ok {
		t.Fatal("expected to find a title node among descendants")
	}
	if text, _ := titleNode.Text(); text != "Example A" {
		t.Errorf("title text = %q, want %q", text, "Example A")
	}
}
