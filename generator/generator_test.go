package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/primarium/primarium/builder"
)

func testSite() Site {
	return Site{
		ID:         "f4a7c210-88a1-4a3f-9a12-6a2f5b6e0c11",
		Name:       "Giroc",
		Region:     "Timiș",
		Lat:        45.6914,
		Lng:        21.2367,
		APIBaseURL: "https://admin.example.ro/api/v1",
	}
}

func testInput(t *testing.T, extra ...builder.Type) Input {
	t.Helper()
	l := builder.Seed("Giroc")
	for _, typ := range extra {
		if _, err := l.Add(typ); err != nil {
			t.Fatalf("Add(%s) failed: %v", typ, err)
		}
	}
	return Input{
		Site:       testSite(),
		Components: l.Components(),
		Now:        time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateDeterministic(t *testing.T) {
	in := testInput(t, builder.TypeAbout, builder.TypeBlog, builder.TypeMap, builder.TypeContact)
	in.CustomCSS = ".header { background: #ff6b6b; }"

	first := Generate(in)
	second := Generate(in)

	if first != second {
		t.Error("Generate is not deterministic for identical inputs")
	}
}

func TestGenerateSingleHeaderAndFooter(t *testing.T) {
	in := testInput(t, builder.TypeAbout, builder.TypeServices, builder.TypeBlog)
	html := Generate(in).HTML

	if got := strings.Count(html, "<header class=\"header"); got != 1 {
		t.Errorf("header blocks = %d, want exactly 1", got)
	}
	if got := strings.Count(html, "<footer class=\"footer"); got != 1 {
		t.Errorf("footer blocks = %d, want exactly 1", got)
	}
}

func TestGenerateNavigationInferred(t *testing.T) {
	in := testInput(t, builder.TypeAbout, builder.TypeBlog)
	html := Generate(in).HTML

	for _, want := range []string{
		`<a href="index.html">Acasă</a>`,
		`<a href="#despre">Despre</a>`,
		`<a href="blog.html">Noutăți</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("generated HTML missing nav entry %q", want)
		}
	}
	// No contact section, so no Contact link.
	if strings.Contains(html, ">Contact</a>") {
		t.Error("nav contains Contact link without a contact section")
	}
	if !strings.Contains(html, `id="despre"`) {
		t.Error("about section missing its anchor id")
	}
}

func TestBlogPageNavAnchorsPointToIndex(t *testing.T) {
	in := testInput(t, builder.TypeAbout, builder.TypeBlog, builder.TypeContact)
	bundle := Generate(in)

	// The anchors live on the index page only; subpages must link back.
	for _, page := range []string{bundle.BlogHTML, bundle.PostHTML} {
		for _, want := range []string{
			`<a href="index.html#despre">Despre</a>`,
			`<a href="index.html#contact">Contact</a>`,
		} {
			if !strings.Contains(page, want) {
				t.Errorf("subpage nav missing %q", want)
			}
		}
		if strings.Contains(page, `href="#despre"`) || strings.Contains(page, `href="#contact"`) {
			t.Error("subpage nav carries a bare anchor that resolves nowhere")
		}
	}
	if !strings.Contains(bundle.HTML, `<a href="#despre">Despre</a>`) {
		t.Error("index nav should keep in-page anchors")
	}
}

func TestGenerateHeroExplicitEmpty(t *testing.T) {
	l := builder.Seed("Giroc")
	hero := l.Components()[1]
	empty := ""
	if err := l.SetContent(hero.ID, builder.HeroContent{Title: &empty}); err != nil {
		t.Fatalf("SetContent failed: %v", err)
	}
	in := Input{Site: testSite(), Components: l.Components(), Now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	html := Generate(in).HTML

	if strings.Contains(html, defaultHeroTitle) {
		t.Error("explicit-empty hero title fell back to the default")
	}
	// Unset subtitle still defaults.
	if !strings.Contains(html, defaultHeroSubtitle) {
		t.Error("unset hero subtitle did not use the default")
	}
}

func TestGenerateEscapesUserText(t *testing.T) {
	l := builder.Seed("Giroc")
	about, err := l.Add(builder.TypeAbout)
	if err != nil {
		t.Fatalf("Add(about) failed: %v", err)
	}
	payload := builder.AboutContent{}
	payload.Title = `<script>alert(1)</script>`
	payload.Body = `a & b < c`
	if err := l.SetContent(about.ID, payload); err != nil {
		t.Fatalf("SetContent failed: %v", err)
	}
	in := Input{Site: testSite(), Components: l.Components(), Now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	html := Generate(in).HTML

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("user title injected a live script tag")
	}
	if !strings.Contains(html, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("user title not escaped in generated HTML")
	}
	if !strings.Contains(html, "a &amp; b &lt; c") {
		t.Error("body text not escaped in generated HTML")
	}
}

func TestGenerateBlogPagesPresence(t *testing.T) {
	withBlog := Generate(testInput(t, builder.TypeBlog))
	if withBlog.BlogHTML == "" || withBlog.PostHTML == "" {
		t.Error("blog component present but blog/post pages missing")
	}
	files := withBlog.Files()
	if _, ok := files["blog.html"]; !ok {
		t.Error("files map missing blog.html")
	}
	if _, ok := files["post.html"]; !ok {
		t.Error("files map missing post.html")
	}

	without := Generate(testInput(t))
	if without.BlogHTML != "" || without.PostHTML != "" {
		t.Error("blog pages generated without a blog component")
	}
	if len(without.Files()) != 3 {
		t.Errorf("files map size = %d without blog, want 3", len(without.Files()))
	}
}

func TestGenerateScriptParameters(t *testing.T) {
	in := testInput(t, builder.TypeBlog, builder.TypeMap)
	js := Generate(in).JS

	for _, want := range []string{
		"var SETTLEMENT_ID = 'f4a7c210-88a1-4a3f-9a12-6a2f5b6e0c11';",
		"var API_URL = 'https://admin.example.ro/api/v1';",
		"var LOCATION = { lat: 45.6914, lng: 21.2367 };",
		"var BLOG_PAGE_SIZE = 9;",
		"var INDEX_TEASER_LIMIT = 5;",
		"function escapeHtml(value)",
		"function initBlogPage()",
		"function initMap(attempt)",
		"if (attempt < 10)",
	} {
		if !strings.Contains(js, want) {
			t.Errorf("generated script missing %q", want)
		}
	}
	// Teaser fields escaped, full post content inserted raw.
	if !strings.Contains(js, "escapeHtml(post.title)") {
		t.Error("script does not escape post titles")
	}
	if !strings.Contains(js, "escapeHtml(contentPreview(post))") {
		t.Error("script does not escape content previews")
	}
	if !strings.Contains(js, `'<div class="blog-post-content">' + post.content + '</div>'`) {
		t.Error("script does not render full post content verbatim")
	}
}

func TestGenerateScriptOmitsUnusedRuntime(t *testing.T) {
	js := Generate(testInput(t)).JS
	if strings.Contains(js, "initBlogPage") {
		t.Error("blog runtime emitted without a blog component")
	}
	if strings.Contains(js, "initMap") {
		t.Error("map runtime emitted without a map component")
	}
}

func TestGenerateLeafletOnlyWithMap(t *testing.T) {
	withMap := Generate(testInput(t, builder.TypeMap)).HTML
	if !strings.Contains(withMap, "leaflet.js") || !strings.Contains(withMap, "leaflet.css") {
		t.Error("map page missing Leaflet assets")
	}
	plain := Generate(testInput(t)).HTML
	if strings.Contains(plain, "leaflet") {
		t.Error("Leaflet assets referenced without a map component")
	}
}

func TestGenerateCustomCSSAppended(t *testing.T) {
	in := testInput(t)
	plain := Generate(in).CSS
	if strings.Contains(plain, "/* Custom Styles */") {
		t.Error("custom styles marker present without custom CSS")
	}

	in.CustomCSS = ".hero h1 { font-size: 60px; }"
	css := Generate(in).CSS
	if !strings.HasPrefix(css, plain) {
		t.Error("custom CSS must be appended after the unchanged base sheet")
	}
	if !strings.HasSuffix(css, in.CustomCSS) {
		t.Error("custom CSS not appended verbatim at the end")
	}
}

func TestGenerateFooterLine(t *testing.T) {
	in := testInput(t)
	html := Generate(in).HTML
	if !strings.Contains(html, "© 2025 Giroc. Toate drepturile rezervate.") {
		t.Error("footer line missing settlement name or year")
	}
}

func TestPagination(t *testing.T) {
	p := NewPagination(23)

	if got := p.PageCount(); got != 3 {
		t.Fatalf("PageCount(23) = %d, want 3", got)
	}
	if p.Page != 1 {
		t.Errorf("initial page = %d, want 1", p.Page)
	}
	if p.HasPrev() {
		t.Error("prev enabled on page 1")
	}
	if !p.HasNext() {
		t.Error("next disabled on page 1")
	}

	sizes := []int{9, 9, 5}
	for page := 1; page <= 3; page++ {
		p.Page = page
		start, end := p.Bounds()
		if end-start != sizes[page-1] {
			t.Errorf("page %d size = %d, want %d", page, end-start, sizes[page-1])
		}
	}

	p.Page = 3
	if p.HasNext() {
		t.Error("next enabled on last page")
	}
	if !p.HasPrev() {
		t.Error("prev disabled on last page")
	}
}

func TestPaginationClamp(t *testing.T) {
	p := NewPagination(10)
	p.Page = 7
	if got := p.Clamp().Page; got != 2 {
		t.Errorf("Clamp page = %d, want 2", got)
	}
	empty := NewPagination(0)
	if got := empty.PageCount(); got != 1 {
		t.Errorf("PageCount(0) = %d, want 1", got)
	}
	start, end := empty.Bounds()
	if start != 0 || end != 0 {
		t.Errorf("Bounds(0) = [%d, %d), want [0, 0)", start, end)
	}
}
