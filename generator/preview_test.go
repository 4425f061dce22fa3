package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/primarium/primarium/builder"
)

func previewInput(t *testing.T, posts []Post, extra ...builder.Type) Input {
	t.Helper()
	in := testInput(t, extra...)
	in.Posts = posts
	return in
}

func TestPreviewModeWidths(t *testing.T) {
	tests := []struct {
		mode PreviewMode
		want string
	}{
		{PreviewDesktop, "100%"},
		{PreviewTablet, "768px"},
		{PreviewMobile, "375px"},
		{PreviewMode("unknown"), "100%"},
	}
	for _, tt := range tests {
		if got := tt.mode.Width(); got != tt.want {
			t.Errorf("Width(%s) = %q, want %q", tt.mode, got, tt.want)
		}
	}

	in := previewInput(t, nil)
	out := RenderPreview(in, PreviewMobile)
	if !strings.Contains(out, "max-width: 375px") {
		t.Error("mobile preview frame missing fixed width")
	}
}

func TestPreviewEmptyComposition(t *testing.T) {
	in := Input{Site: testSite(), Now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	out := RenderPreview(in, PreviewDesktop)
	if !strings.Contains(out, "Preview-ul va apărea aici") {
		t.Error("empty composition should show the placeholder message")
	}
}

// The preview must resolve defaults exactly like the generated markup.
func TestPreviewMatchesGeneratedDefaults(t *testing.T) {
	in := previewInput(t, nil, builder.TypeAbout, builder.TypeServices, builder.TypeContact)
	html := Generate(in).HTML
	preview := RenderPreview(in, PreviewDesktop)

	for _, text := range []string{
		"Primăria Giroc",
		defaultHeroTitle,
		defaultHeroSubtitle,
		defaultAboutTitle,
		defaultAboutBody,
		defaultServicesTitle,
		defaultServicesBody,
		defaultContactTitle,
		defaultContactBody,
	} {
		if !strings.Contains(html, text) {
			t.Errorf("generated HTML missing %q", text)
		}
		if !strings.Contains(preview, text) {
			t.Errorf("preview missing %q", text)
		}
	}
}

func TestPreviewBlogTeaser(t *testing.T) {
	posts := make([]Post, 0, 7)
	for i := 0; i < 7; i++ {
		posts = append(posts, Post{
			ID:          string(rune('a' + i)),
			Title:       "Postare " + string(rune('A'+i)),
			Description: "Descriere scurtă",
			Content:     "Conținut",
			Date:        time.Date(2025, time.May, 10-i, 0, 0, 0, 0, time.UTC),
		})
	}
	in := previewInput(t, posts, builder.TypeBlog)
	out := RenderPreview(in, PreviewDesktop)

	if got := strings.Count(out, "preview-blog-post\""); got != IndexTeaserLimit {
		t.Errorf("teaser cards = %d, want %d", got, IndexTeaserLimit)
	}
	if !strings.Contains(out, "... și încă 2 postări") {
		t.Error("overflow hint missing for posts beyond the teaser limit")
	}
}

func TestPreviewBlogEmptyState(t *testing.T) {
	in := previewInput(t, nil, builder.TypeBlog)
	out := RenderPreview(in, PreviewDesktop)
	if !strings.Contains(out, "Nicio postare încă") {
		t.Error("empty blog preview missing the empty state")
	}
}

func TestPreviewEscapesPostFields(t *testing.T) {
	posts := []Post{{
		ID:          "p1",
		Title:       `<script>alert(1)</script>`,
		Description: `x < y`,
		Content:     "body",
		Date:        time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}}
	in := previewInput(t, posts, builder.TypeBlog)
	out := RenderPreview(in, PreviewDesktop)

	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("post title injected a live script tag into the preview")
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Error("post title not escaped in teaser")
	}
}

func TestPreviewCustomCSSInlined(t *testing.T) {
	in := previewInput(t, nil)
	in.CustomCSS = ".hero { background: black; }"
	out := RenderPreview(in, PreviewDesktop)
	if !strings.Contains(out, in.CustomCSS) {
		t.Error("custom CSS not inlined into preview")
	}
}

// The preview loads into an iframe, so it must be a self-contained document
// carrying its own stylesheet.
func TestPreviewIsCompleteDocument(t *testing.T) {
	out := RenderPreview(previewInput(t, nil), PreviewDesktop)

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("preview is not a full document")
	}
	for _, want := range []string{
		`<meta charset="utf-8"/>`,
		".preview-component {",
		"</body>",
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview document missing %q", want)
		}
	}
}
