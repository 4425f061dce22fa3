package generator

import (
	"fmt"
	"strings"

	"github.com/primarium/primarium/builder"
)

// PreviewMode selects the viewport width preset of the editor preview.
type PreviewMode string

const (
	PreviewDesktop PreviewMode = "desktop"
	PreviewTablet  PreviewMode = "tablet"
	PreviewMobile  PreviewMode = "mobile"
)

// Valid reports whether m is one of the three supported presets.
func (m PreviewMode) Valid() bool {
	switch m {
	case PreviewDesktop, PreviewTablet, PreviewMobile:
		return true
	}
	return false
}

// Width returns the CSS max-width of the preview frame: desktop is fluid,
// tablet and mobile are fixed device widths.
func (m PreviewMode) Width() string {
	switch m {
	case PreviewTablet:
		return "768px"
	case PreviewMobile:
		return "375px"
	default:
		return "100%"
	}
}

// RenderPreview renders the composition as an on-screen approximation of the
// published page. It resolves every default and fallback through the same
// helpers as Generate, so the preview and the generated markup can never
// disagree on content decisions. The result is a complete document: the
// editor loads it into an iframe, which inherits no styles from the admin
// page. The function is side-effect free.
func RenderPreview(in Input, mode PreviewMode) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"ro\">\n<head>\n")
	sb.WriteString("<meta charset=\"utf-8\"/>\n")
	fmt.Fprintf(&sb, "<style>\n%s</style>\n", previewCSS)
	if in.CustomCSS != "" {
		fmt.Fprintf(&sb, "<style>\n%s\n</style>\n", in.CustomCSS)
	}
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, `<div class="site-preview" style="max-width: %s; margin: 0 auto;">`, mode.Width())
	sb.WriteString("\n")
	if len(in.Components) == 0 {
		sb.WriteString(`  <p class="preview-empty">Preview-ul va apărea aici după ce adaugi componente</p>` + "\n")
	}
	for _, comp := range in.Components {
		sb.WriteString(previewComponent(comp, in))
		sb.WriteString("\n")
	}
	sb.WriteString("</div>\n</body>\n</html>")
	return sb.String()
}

func previewComponent(comp builder.Component, in Input) string {
	align := "align-" + string(comp.Alignment)
	switch content := comp.Content.(type) {
	case builder.HeaderContent:
		var nav strings.Builder
		for _, entry := range navEntries(in.Components, "") {
			fmt.Fprintf(&nav, `<span class="preview-nav-link">%s</span>`, entry.Label)
		}
		return fmt.Sprintf(`  <div class="preview-component component-header %s">
    <h3>%s</h3>
    <p class="preview-subtitle">%s</p>
    <div class="preview-nav">%s</div>
  </div>`, align, escapeHTML(headerTitle(content, in.Site.Name)), headerSubtitle, nav.String())
	case builder.HeroContent:
		return fmt.Sprintf(`  <div class="preview-component component-hero %s">
    <h1>%s</h1>
    <p>%s</p>
  </div>`, align, escapeHTML(heroTitle(content)), escapeHTML(heroSubtitle(content)))
	case builder.AboutContent:
		return previewTextSection("component-about", align, comp.Type, content.SectionContent)
	case builder.ServicesContent:
		return previewTextSection("component-services", align, comp.Type, content.SectionContent)
	case builder.ContactContent:
		return previewTextSection("component-contact", align, comp.Type, content.SectionContent)
	case builder.BlogContent:
		return previewBlog(content, align, in.Posts)
	case builder.MapContent:
		return fmt.Sprintf(`  <div class="preview-component component-map %s">
    <h2>%s</h2>
    <div class="preview-map-box">Hartă — %s (%s, %s)</div>
  </div>`, align, escapeHTML(mapTitle(content)), escapeHTML(siteTitle(in.Site)),
			formatCoord(in.Site.Lat), formatCoord(in.Site.Lng))
	case builder.FooterContent:
		return fmt.Sprintf(`  <div class="preview-component component-footer %s">
    <p>© %d %s. %s</p>
  </div>`, align, in.Now.Year(), escapeHTML(siteTitle(in.Site)), footerRights)
	}
	return ""
}

func previewTextSection(class, align string, t builder.Type, content builder.SectionContent) string {
	return fmt.Sprintf(`  <div class="preview-component %s %s">
    <h2>%s</h2>
    <p>%s</p>
  </div>`, class, align, escapeHTML(sectionTitle(t, content)), escapeHTML(sectionBody(t, content)))
}

// previewBlog shows the same first-five teaser the published index page
// loads at runtime, rendered from the posts already fetched by the editor.
func previewBlog(content builder.BlogContent, align string, posts []Post) string {
	var cards strings.Builder
	if len(posts) == 0 {
		cards.WriteString(`    <div class="preview-blog-empty">
      <p>Nicio postare încă</p>
      <p class="hint">Adaugă prima postare pentru a o vedea aici!</p>
    </div>`)
	} else {
		shown := posts
		if len(shown) > IndexTeaserLimit {
			shown = shown[:IndexTeaserLimit]
		}
		for _, post := range shown {
			fmt.Fprintf(&cards, `    <div class="preview-blog-post">
      <div class="preview-post-date">%s</div>
      <h4>%s</h4>
      <p>%s</p>
    </div>
`, post.Date.Format("02.01.2006"), escapeHTML(post.Title), escapeHTML(post.Description))
		}
		if rest := len(posts) - IndexTeaserLimit; rest > 0 {
			fmt.Fprintf(&cards, `    <p class="preview-blog-more">... și încă %d postări</p>
`, rest)
		}
	}
	return fmt.Sprintf(`  <div class="preview-component component-blog %s">
    <h2>%s</h2>
    <div class="preview-blog-posts">
%s
    </div>
  </div>`, align, escapeHTML(blogTitle(content)), strings.TrimSuffix(cards.String(), "\n"))
}

// previewCSS approximates the generated base stylesheet for the preview
// frame, keyed to the preview-component class names.
const previewCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
    line-height: 1.6;
    color: #333;
    background: #fff;
}
.align-left { text-align: left; }
.align-center { text-align: center; }
.align-right { text-align: right; }
.preview-component { padding: 24px 20px; }
.component-header { background: #10b981; color: #fff; }
.preview-subtitle { opacity: 0.9; font-size: 14px; }
.preview-nav { margin-top: 8px; }
.preview-nav-link {
    display: inline-block;
    margin: 0 8px;
    padding: 3px 8px;
    border-radius: 4px;
    background: rgba(255, 255, 255, 0.15);
    font-size: 13px;
}
.component-hero {
    background: linear-gradient(135deg, #10b981 0%, #047857 100%);
    color: #fff;
    padding: 48px 20px;
}
.component-hero h1 { font-size: 34px; margin-bottom: 10px; }
.component-about, .component-contact { background: #f9fafb; }
.preview-component h2 { margin-bottom: 10px; color: #065f46; }
.preview-blog-posts { display: grid; gap: 12px; margin-top: 8px; }
.preview-blog-post {
    background: #fff;
    border: 1px solid #e5e7eb;
    border-radius: 8px;
    padding: 12px;
    text-align: left;
}
.preview-post-date { font-size: 12px; color: #6b7280; }
.preview-blog-empty { color: #6b7280; padding: 16px; }
.preview-blog-empty .hint { font-size: 13px; }
.preview-blog-more { color: #6b7280; font-size: 13px; }
.preview-map-box {
    height: 180px;
    display: flex;
    align-items: center;
    justify-content: center;
    background: #e5e7eb;
    border-radius: 8px;
    color: #4b5563;
}
.component-footer { background: #064e3b; color: #fff; font-size: 14px; }
.preview-empty { padding: 40px 20px; text-align: center; color: #6b7280; }
`
