package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/primarium/primarium/builder"
)

// Site carries the settlement facts the generator bakes into the artifacts.
// Everything is an explicit parameter; the generated script has no ambient
// knowledge beyond what is written into it here.
type Site struct {
	ID     string
	Name   string
	Region string // county label, upper-cased into the publish bundle name
	Lat    float64
	Lng    float64

	// APIBaseURL is the public JSON API root the generated script fetches
	// blog posts from, e.g. "https://admin.primarium.ro/api/v1".
	APIBaseURL string
}

// Post is the read-only blog post view the generator and preview consume.
type Post struct {
	ID          string
	Title       string
	Description string
	Content     string
	Date        time.Time
}

// Input is the full input of one generation run.
type Input struct {
	Site       Site
	Components []builder.Component
	Posts      []Post
	CustomCSS  string

	// Now anchors the copyright year. Callers pass time.Now(); tests pass a
	// fixed instant so output is reproducible.
	Now time.Time
}

// Bundle holds the generated text artifacts. BlogHTML and PostHTML are empty
// unless the composition contains a blog section.
type Bundle struct {
	HTML     string
	CSS      string
	JS       string
	BlogHTML string
	PostHTML string
}

// Files returns the artifacts keyed by their published file names, the shape
// the publish webhook expects under "files-content".
func (b Bundle) Files() map[string]string {
	files := map[string]string{
		"index.html": b.HTML,
		"styles.css": b.CSS,
		"script.js":  b.JS,
	}
	if b.BlogHTML != "" {
		files["blog.html"] = b.BlogHTML
	}
	if b.PostHTML != "" {
		files["post.html"] = b.PostHTML
	}
	return files
}

// Generate renders the component composition into the static site bundle.
// It is deterministic: identical inputs produce byte-identical output.
// Posts are not pre-rendered into the index markup; the generated script
// fetches them at runtime, so a published site never shows stale content.
// They remain part of the input because the preview renders them through
// the same fallback rules.
func Generate(in Input) Bundle {
	hasBlog := hasType(in.Components, builder.TypeBlog)
	b := Bundle{
		HTML: renderIndexHTML(in),
		CSS:  renderCSS(in.CustomCSS),
		JS:   renderScript(in),
	}
	if hasBlog {
		b.BlogHTML = renderBlogHTML(in)
		b.PostHTML = renderPostHTML(in)
	}
	return b
}

func renderIndexHTML(in Input) string {
	var body strings.Builder
	for _, comp := range in.Components {
		section := renderComponent(comp, in)
		if section == "" {
			continue
		}
		body.WriteString(section)
		body.WriteString("\n\n")
	}
	return pageShell(in, escapeHTML(siteTitle(in.Site)), strings.TrimSuffix(body.String(), "\n"), hasType(in.Components, builder.TypeMap))
}

func siteTitle(s Site) string {
	if s.Name != "" {
		return s.Name
	}
	return "Website"
}

// pageShell wraps rendered body sections in the shared document skeleton.
// The Leaflet assets are only referenced when the page has a map section.
func pageShell(in Input, title, body string, withLeaflet bool) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html lang=\"ro\">\n<head>\n")
	sb.WriteString("    <meta charset=\"UTF-8\">\n")
	sb.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&sb, "    <title>%s</title>\n", title)
	if withLeaflet {
		sb.WriteString("    <link rel=\"stylesheet\" href=\"https://unpkg.com/leaflet@1.9.4/dist/leaflet.css\" />\n")
	}
	sb.WriteString("    <link rel=\"stylesheet\" href=\"styles.css\">\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("\n")
	if withLeaflet {
		sb.WriteString("    <script src=\"https://unpkg.com/leaflet@1.9.4/dist/leaflet.js\"></script>\n")
	}
	sb.WriteString("    <script src=\"script.js\"></script>\n")
	sb.WriteString("</body>\n</html>")
	return sb.String()
}

func renderComponent(comp builder.Component, in Input) string {
	switch content := comp.Content.(type) {
	case builder.HeaderContent:
		return renderHeader(content, comp.Alignment, in, "")
	case builder.HeroContent:
		return fmt.Sprintf(`    <section class="hero %s">
      <h1>%s</h1>
      <p>%s</p>
    </section>`, comp.Alignment, escapeHTML(heroTitle(content)), escapeHTML(heroSubtitle(content)))
	case builder.AboutContent:
		return renderTextSection("about", "despre", comp.Alignment, comp.Type, content.SectionContent)
	case builder.ServicesContent:
		return renderTextSection("services", "", comp.Alignment, comp.Type, content.SectionContent)
	case builder.ContactContent:
		return renderTextSection("contact", "contact", comp.Alignment, comp.Type, content.SectionContent)
	case builder.BlogContent:
		return fmt.Sprintf(`    <section class="blog %s" id="blog-section">
      <h2>%s</h2>
      <div class="blog-posts" id="blog-posts-container">
        <p class="loading">%s</p>
      </div>
      <p class="blog-more"><a href="blog.html">Vezi toate noutățile →</a></p>
    </section>`, comp.Alignment, escapeHTML(blogTitle(content)), blogLoadingText)
	case builder.MapContent:
		return fmt.Sprintf(`    <section class="map %s">
      <h2>%s</h2>
      <div id="map" style="width: 100%%; height: 400px; border-radius: 8px;"></div>
    </section>`, comp.Alignment, escapeHTML(mapTitle(content)))
	case builder.FooterContent:
		return renderFooter(comp.Alignment, in)
	}
	return ""
}

func renderHeader(content builder.HeaderContent, align builder.Alignment, in Input, anchorBase string) string {
	var nav strings.Builder
	for i, entry := range navEntries(in.Components, anchorBase) {
		if i > 0 {
			nav.WriteString("\n        ")
		}
		fmt.Fprintf(&nav, `<a href="%s">%s</a>`, entry.Href, entry.Label)
	}
	return fmt.Sprintf(`    <header class="header %s">
      <h1>%s</h1>
      <p class="header-subtitle">%s</p>
      <nav>
        %s
      </nav>
    </header>`, align, escapeHTML(headerTitle(content, in.Site.Name)), headerSubtitle, nav.String())
}

func renderTextSection(class, anchor string, align builder.Alignment, t builder.Type, content builder.SectionContent) string {
	id := ""
	if anchor != "" {
		id = fmt.Sprintf(` id="%s"`, anchor)
	}
	return fmt.Sprintf(`    <section class="%s %s"%s>
      <h2>%s</h2>
      <p>%s</p>
    </section>`, class, align, id, escapeHTML(sectionTitle(t, content)), escapeHTML(sectionBody(t, content)))
}

func renderFooter(align builder.Alignment, in Input) string {
	return fmt.Sprintf(`    <footer class="footer %s">
      <p>© %d %s. %s</p>
    </footer>`, align, in.Now.Year(), escapeHTML(siteTitle(in.Site)), footerRights)
}
