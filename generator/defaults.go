// Package generator turns a settlement's component composition into the
// static site artifacts that get published: index page, stylesheet, runtime
// script, and the blog/post pages when a blog section is present. Everything
// here is a pure function of its inputs so the output can be regenerated
// byte-for-byte anywhere.
package generator

import (
	"html"
	"strconv"
	"strings"

	"github.com/primarium/primarium/builder"
)

// Default strings for component fields left empty by the editor. The live
// preview and the generated markup both resolve fields through these helpers,
// so the two can never disagree on fallback content.
const (
	defaultHeroTitle      = "Bine ați venit"
	defaultHeroSubtitle   = "Portal oficial"
	defaultAboutTitle     = "Despre"
	defaultAboutBody      = "Descriere despre localitate..."
	defaultServicesTitle  = "Servicii"
	defaultServicesBody   = "Lista serviciilor disponibile..."
	defaultContactTitle   = "Contact"
	defaultContactBody    = "Informații de contact..."
	defaultBlogTitle      = "Ultimele Noutăți"
	defaultMapTitle       = "Localizare"
	headerSubtitle        = "Portal oficial al localității"
	footerRights          = "Toate drepturile rezervate."
	blogLoadingText       = "Se încarcă postările..."
	postLoadingText       = "Se încarcă postarea..."
)

func headerTitle(c builder.HeaderContent, settlementName string) string {
	if c.Title != "" {
		return c.Title
	}
	if settlementName != "" {
		return "Primăria " + settlementName
	}
	return "Primărie"
}

// heroTitle keeps explicitly set values verbatim, including the empty
// string; only an unset field falls back to the default.
func heroTitle(c builder.HeroContent) string {
	if c.Title != nil {
		return *c.Title
	}
	return defaultHeroTitle
}

func heroSubtitle(c builder.HeroContent) string {
	if c.Subtitle != nil {
		return *c.Subtitle
	}
	return defaultHeroSubtitle
}

func sectionTitle(t builder.Type, c builder.SectionContent) string {
	if c.Title != "" {
		return c.Title
	}
	switch t {
	case builder.TypeAbout:
		return defaultAboutTitle
	case builder.TypeServices:
		return defaultServicesTitle
	default:
		return defaultContactTitle
	}
}

func sectionBody(t builder.Type, c builder.SectionContent) string {
	if c.Body != "" {
		return c.Body
	}
	switch t {
	case builder.TypeAbout:
		return defaultAboutBody
	case builder.TypeServices:
		return defaultServicesBody
	default:
		return defaultContactBody
	}
}

func blogTitle(c builder.BlogContent) string {
	if c.Title != "" {
		return c.Title
	}
	return defaultBlogTitle
}

func mapTitle(c builder.MapContent) string {
	if c.Title != "" {
		return c.Title
	}
	return defaultMapTitle
}

// navEntry is one derived navigation link in the generated header.
type navEntry struct {
	Label string
	Href  string
}

// navEntries derives the header navigation from which section types are
// present on the page. Navigation is not authored by the editor. anchorBase
// is empty on the index page; the blog and post pages pass "index.html" so
// their section links lead back to the page that has the anchors.
func navEntries(components []builder.Component, anchorBase string) []navEntry {
	entries := []navEntry{{Label: "Acasă", Href: "index.html"}}
	for _, c := range components {
		switch c.Type {
		case builder.TypeAbout:
			entries = append(entries, navEntry{Label: "Despre", Href: anchorBase + "#despre"})
		case builder.TypeBlog:
			entries = append(entries, navEntry{Label: "Noutăți", Href: "blog.html"})
		case builder.TypeContact:
			entries = append(entries, navEntry{Label: "Contact", Href: anchorBase + "#contact"})
		}
	}
	return entries
}

// escapeHTML escapes user-supplied text before it is interpolated into
// generated markup. Published sites must never execute markup smuggled into
// a title or description field.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

// jsString escapes s for embedding inside a single-quoted JavaScript string
// literal in the generated runtime script.
func jsString(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		"\n", `\n`,
		"\r", `\r`,
		"</", `<\/`,
	)
	return r.Replace(s)
}

// formatCoord renders a coordinate with the shortest exact representation.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func hasType(components []builder.Component, t builder.Type) bool {
	for _, c := range components {
		if c.Type == t {
			return true
		}
	}
	return false
}
